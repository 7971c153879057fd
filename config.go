package mathlib

import (
	"errors";
)

const (
	FormatTable = "table"
	FormatPlain = "plain"
)

type Config struct {
	Precision int
	Format string
	Verbose bool
}

func NewConfig() *Config {
	return &Config {
		Precision: 10,
		Format: FormatTable,
	}
}

func (this *Config) Validate() error {
	if this.Precision < 0 || this.Precision > 17 {
		return errors.New("Precision must be between 0 and 17")
	}
	if this.Format != FormatTable && this.Format != FormatPlain {
		return errors.New("Invalid output format")
	}
	return nil
}
