package commands

import (
	"github.com/marekgalovic/mathlib";
	"github.com/marekgalovic/mathlib/math";

	"github.com/urfave/cli/v2";
	log "github.com/sirupsen/logrus";
)

func ListConstants(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	log.Debug("Listing constants")

	values := []struct {
		name string
		value float64
	} {
		{"pi", math.Pi},
		{"e", math.E},
		{"sqrt2", math.Sqrt2},
		{"sqrt1_2", math.Sqrt1_2},
		{"ln2", math.Ln2},
		{"ln10", math.Ln10},
		{"log2e", math.Log2E},
		{"log10e", math.Log10E},
		{"phi", math.Phi},
		{"psi", math.Psi()},
		{"phi_degree", math.PhiDegree()},
		{"psi_degree", math.PsiDegree()},
		{"magic_angle", math.MagicAngle},
	}

	rows := make([]namedValue, len(values))
	for i, v := range values {
		rows[i] = namedValue{v.name, formatValue(v.value, config.Precision)}
	}
	render(c, config, rows)
	return nil
}

func ListFictionum(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	log.Debug("Listing fictionum")

	render(c, config, []namedValue {
		{"alpha", formatValue(mathlib.Fictionum.Alpha(), config.Precision)},
		{"beta", formatValue(mathlib.Fictionum.Beta(), config.Precision)},
		{"gamma", formatValue(mathlib.Fictionum.Gamma(), config.Precision)},
	})
	return nil
}
