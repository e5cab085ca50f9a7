// Package config defines the application configuration and the functions
// for loading it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/eoq-calculator/internal/eoq"
	"github.com/iwvelando/eoq-calculator/internal/report"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/iwvelando/eoq-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for eoq-calculator.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Display  DisplayConfig  `yaml:"display,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// DefaultsConfig holds values applied to omitted input fields.
type DefaultsConfig struct {
	WorkDays float64 `yaml:"workDays,omitempty"`
}

// DisplayConfig holds presentation options.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Output:   OutputConfig{Format: constants.OutputFormatPretty},
		Defaults: DefaultsConfig{WorkDays: constants.DefaultWorkDays},
		Display:  DisplayConfig{CurrencySymbol: constants.DefaultCurrencySymbol},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.outputFile", def.Logging.OutputFile)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("defaults.workDays", def.Defaults.WorkDays)
	v.SetDefault("display.currencySymbol", def.Display.CurrencySymbol)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with EOQ_ override file
// values (e.g. EOQ_DISPLAY_CURRENCYSYMBOL).
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// LoadOptional loads configPath if it exists. A missing file yields the
// defaults, still subject to environment overrides.
func LoadOptional(configPath string) (*Configuration, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return LoadConfiguration(configPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}
	return decode(newViper())
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	validator := validation.ConfigValidator{
		LogLevel:        c.Logging.Level,
		LogFormat:       c.Logging.Format,
		OutputFormat:    c.Output.Format,
		DefaultWorkDays: c.Defaults.WorkDays,
		CurrencySymbol:  c.Display.CurrencySymbol,
	}
	return validator.ValidateAll()
}

// WorkDays returns the configured default work days, falling back to the
// built-in default when the configured value is unusable.
func (c *Configuration) WorkDays() float64 {
	if !(c.Defaults.WorkDays >= constants.MinWorkDays) {
		return constants.DefaultWorkDays
	}
	return c.Defaults.WorkDays
}

// Input assembles the parameters of one computation. A zero workDays means
// the field was omitted and the configured default applies.
func (c *Configuration) Input(annualDemand, orderCost, holdingCost, workDays float64) eoq.InputParameters {
	if workDays == 0 {
		workDays = c.WorkDays()
	}
	return eoq.InputParameters{
		AnnualDemand: annualDemand,
		OrderCost:    orderCost,
		HoldingCost:  holdingCost,
		WorkDays:     workDays,
	}
}

// ReportOptions returns the presentation options for the report package.
func (c *Configuration) ReportOptions() report.Options {
	return report.Options{CurrencySymbol: c.Display.CurrencySymbol}
}
