package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/eoq-calculator/pkg/constants"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eoq-config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := writeConfig(t, `logging:
  level: debug
  format: console
  outputFile: /tmp/eoq.log
output:
  format: csv
defaults:
  workDays: 250
display:
  currencySymbol: "$"
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" || conf.Logging.OutputFile != "/tmp/eoq.log" {
		t.Errorf("unexpected logging config %+v", conf.Logging)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("expected csv output, got %s", conf.Output.Format)
	}
	if conf.Defaults.WorkDays != 250 {
		t.Errorf("expected 250 work days, got %v", conf.Defaults.WorkDays)
	}
	if conf.Display.CurrencySymbol != "$" {
		t.Errorf("expected $ symbol, got %s", conf.Display.CurrencySymbol)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestLoadConfigurationPartialKeepsDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("logging:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Logging.Level != "warn" {
		t.Errorf("expected warn level, got %s", conf.Logging.Level)
	}
	if conf.Defaults.WorkDays != constants.DefaultWorkDays {
		t.Errorf("expected default work days, got %v", conf.Defaults.WorkDays)
	}
	if conf.Display.CurrencySymbol != constants.DefaultCurrencySymbol {
		t.Errorf("expected default currency symbol, got %s", conf.Display.CurrencySymbol)
	}
	if conf.Output.Format != constants.OutputFormatPretty {
		t.Errorf("expected pretty output, got %s", conf.Output.Format)
	}
}

func TestLoadConfigurationFromReaderInvalid(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader("logging: [unclosed")); err == nil {
		t.Fatal("expected error for invalid YAML but got nil")
	}
}

func TestLoadOptional(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		conf, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("LoadOptional() error = %v", err)
		}
		if conf.WorkDays() != constants.DefaultWorkDays {
			t.Errorf("expected default work days, got %v", conf.WorkDays())
		}
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		conf, err := LoadOptional(writeConfig(t, "defaults:\n  workDays: 300\n"))
		if err != nil {
			t.Fatalf("LoadOptional() error = %v", err)
		}
		if conf.WorkDays() != 300 {
			t.Errorf("expected 300 work days, got %v", conf.WorkDays())
		}
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("EOQ_DISPLAY_CURRENCYSYMBOL", "EUR")
		conf, err := LoadOptional("")
		if err != nil {
			t.Fatalf("LoadOptional() error = %v", err)
		}
		if conf.Display.CurrencySymbol != "EUR" {
			t.Errorf("expected EUR from environment, got %s", conf.Display.CurrencySymbol)
		}
	})
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := Default()
	conf.Logging.Level = "loud"
	conf.Defaults.WorkDays = -5

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if conf.WorkDays() != constants.DefaultWorkDays {
		t.Errorf("expected fallback to default work days, got %v", conf.WorkDays())
	}
}

func TestWorkDaysFallback(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"configured", 250, 250},
		{"unset", 0, constants.DefaultWorkDays},
		{"below minimum", 0.5, constants.DefaultWorkDays},
		{"NaN", math.NaN(), constants.DefaultWorkDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Default()
			conf.Defaults.WorkDays = tt.value
			if got := conf.WorkDays(); got != tt.expected {
				t.Errorf("WorkDays() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestInput(t *testing.T) {
	conf := Default()
	conf.Defaults.WorkDays = 300

	in := conf.Input(1200, 50, 2, 0)
	if in.WorkDays != 300 {
		t.Errorf("expected omitted work days to default to 300, got %v", in.WorkDays)
	}
	if in.AnnualDemand != 1200 || in.OrderCost != 50 || in.HoldingCost != 2 {
		t.Errorf("unexpected input %+v", in)
	}

	explicit := conf.Input(1200, 50, 2, 360)
	if explicit.WorkDays != 360 {
		t.Errorf("expected explicit work days to be kept, got %v", explicit.WorkDays)
	}

	if opts := conf.ReportOptions(); opts.CurrencySymbol != constants.DefaultCurrencySymbol {
		t.Errorf("unexpected report options %+v", opts)
	}
}

func TestExampleConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("..", "..", "eoq-config.yaml.example"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Output.Format != constants.OutputFormatPretty {
		t.Errorf("expected pretty output, got %q", conf.Output.Format)
	}
	if conf.WorkDays() != constants.DefaultWorkDays {
		t.Errorf("expected %v work days, got %v", constants.DefaultWorkDays, conf.WorkDays())
	}
	if conf.Display.CurrencySymbol != constants.DefaultCurrencySymbol {
		t.Errorf("expected currency symbol %q, got %q", constants.DefaultCurrencySymbol, conf.Display.CurrencySymbol)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("example configuration has warnings: %v", warnings)
	}
}
