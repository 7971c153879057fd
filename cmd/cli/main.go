package main

import (
	"os";

	"github.com/marekgalovic/mathlib";
	"github.com/marekgalovic/mathlib/cmd/cli/commands";

	"github.com/urfave/cli/v2";
	log "github.com/sirupsen/logrus";
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	defaults := mathlib.NewConfig()

	return &cli.App {
		Name: "mathlib-cli",
		Usage: "Evaluate mathlib constants and functions",
		Flags: []cli.Flag {
			&cli.IntFlag{Name: "precision", Aliases: []string{"P"}, Value: defaults.Precision, Usage: "Significant digits of printed values"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: defaults.Format, Usage: "Output format (table, plain)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
		},
		Before: commands.SetupLogging,
		Commands: []*cli.Command {
			{
				Name: "constants",
				Usage: "List constants and derived values",
				Action: commands.ListConstants,
			},
			{
				Name: "factorial",
				Usage: "Compute n!",
				ArgsUsage: "N",
				Action: commands.Factorial,
			},
			{
				Name: "jump",
				Usage: "Fall time and impact velocity from a height in meters",
				ArgsUsage: "HEIGHT",
				Action: commands.Jump,
			},
			{
				Name: "fictionum",
				Usage: "List alpha, beta and gamma",
				Action: commands.ListFictionum,
			},
			{
				Name: "eval",
				Usage: "Evaluate an elementary function",
				ArgsUsage: "FUNC ARGS...",
				Action: commands.Eval,
			},
		},
	}
}
