package commands

import (
	"fmt";
	"sort";
	"strconv";
	"strings";
	"errors";

	"github.com/marekgalovic/mathlib";
	"github.com/marekgalovic/mathlib/math";

	"github.com/urfave/cli/v2";
	log "github.com/sirupsen/logrus";
)

var unaryFuncs = map[string]func(float64) float64 {
	"exp": math.Exp,
	"sin": math.Sin,
	"cos": math.Cos,
	"tan": math.Tan,
	"sqrt": math.Sqrt,
}

var binaryFuncs = map[string]func(float64, float64) float64 {
	"add": math.Add,
	"subtract": math.Subtract,
	"multiply": math.Multiply,
	"divide": math.Divide,
	"pow": math.Pow,
	"pythagr": math.Pythagr,
}

func funcNames() []string {
	names := make([]string, 0, len(unaryFuncs) + len(binaryFuncs))
	for name := range unaryFuncs {
		names = append(names, name)
	}
	for name := range binaryFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func evaluate(name string, args []float64) (float64, error) {
	if f, ok := unaryFuncs[name]; ok {
		if len(args) != 1 {
			return 0, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		return f(args[0]), nil
	}
	if f, ok := binaryFuncs[name]; ok {
		if len(args) != 2 {
			return 0, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
		}
		return f(args[0], args[1]), nil
	}
	return 0, fmt.Errorf("Unknown function %q (available: %s)", name, strings.Join(funcNames(), ", "))
}

func Eval(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("No function provided")
	}
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	name := c.Args().First()
	args, err := parseFloatArgs(c.Args().Tail())
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"func": name, "args": args}).Debug("Evaluating")

	result, err := evaluate(name, args)
	if err != nil {
		return err
	}

	render(c, config, []namedValue{{name, formatValue(result, config.Precision)}})
	return nil
}

func Factorial(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("Missing n")
	}
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("Invalid n: %w", err)
	}
	log.WithField("n", n).Debug("Computing factorial")

	value := "undefined"
	if result, ok := math.Factorial(n); ok {
		value = formatValue(result, config.Precision)
	}

	render(c, config, []namedValue{{"factorial", value}})
	return nil
}

func Jump(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("Missing height")
	}
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	args, err := parseFloatArgs(c.Args().Slice()[:1])
	if err != nil {
		return err
	}
	log.WithField("height", args[0]).Debug("Computing jump")

	result := mathlib.Physic.Jump(args[0])
	render(c, config, []namedValue {
		{"time", formatValue(result.Time, config.Precision)},
		{"velocity", formatValue(result.Velocity, config.Precision)},
	})
	return nil
}
