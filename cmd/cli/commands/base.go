package commands

import (
	"fmt";
	"strconv";

	"github.com/marekgalovic/mathlib";

	"github.com/urfave/cli/v2";
	"github.com/olekukonko/tablewriter";
	log "github.com/sirupsen/logrus";
)

func SetupLogging(c *cli.Context) error {
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func loadConfig(c *cli.Context) (*mathlib.Config, error) {
	config := mathlib.NewConfig()
	config.Precision = c.Int("precision")
	config.Format = c.String("format")
	config.Verbose = c.Bool("verbose")

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func parseFloatArgs(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("Invalid argument %q: %w", arg, err)
		}
		values[i] = value
	}
	return values, nil
}

func formatValue(value float64, precision int) string {
	return strconv.FormatFloat(value, 'g', precision, 64)
}

type namedValue struct {
	name string
	value string
}

func render(c *cli.Context, config *mathlib.Config, values []namedValue) {
	w := c.App.Writer

	if config.Format == mathlib.FormatPlain {
		for _, v := range values {
			fmt.Fprintf(w, "%s=%s\n", v.name, v.value)
		}
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"name", "value"})
	for _, v := range values {
		table.Append([]string{v.name, v.value})
	}
	table.Render()
}
