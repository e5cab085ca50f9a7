package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/eoq-calculator/internal/eoq"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the root command with fresh flag state and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, c := range []*cobra.Command{rootCmd, computeCmd} {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	args = append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "--log-level", "error")
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestComputeJSON(t *testing.T) {
	out, err := execute(t, "compute", "--demand", "1200", "--order-cost", "50", "--holding-cost", "2", "--output-format", "json")
	if err != nil {
		t.Fatalf("compute error = %v", err)
	}

	var decoded struct {
		Result eoq.Result `json:"result"`
		Input  eoq.InputParameters
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if math.Abs(decoded.Result.EOQ-244.94897427831782) > 1e-9 {
		t.Errorf("unexpected eoq %v", decoded.Result.EOQ)
	}
	if decoded.Input.WorkDays != constants.DefaultWorkDays {
		t.Errorf("expected default work days, got %v", decoded.Input.WorkDays)
	}
}

func TestComputeCSV(t *testing.T) {
	out, err := execute(t, "compute", "--demand", "2", "--order-cost", "1", "--holding-cost", "1", "--work-days", "1", "--output-format", "csv")
	if err != nil {
		t.Fatalf("compute error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "parameter,value" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	// 1 header + 8 rows, blank line, 1 header + 3 curve points
	if len(lines) != 14 {
		t.Errorf("expected 14 lines, got %d:\n%s", len(lines), out)
	}
}

func TestComputePretty(t *testing.T) {
	out, err := execute(t, "compute", "--demand", "1200", "--order-cost", "50", "--holding-cost", "2")
	if err != nil {
		t.Fatalf("compute error = %v", err)
	}
	for _, want := range []string{"EOQ: 244.95 units", "Reorder Every: 73.48 days", "Total Cost"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{name: "demand below minimum", args: []string{"--demand", "0", "--order-cost", "1", "--holding-cost", "1"}, field: eoq.KeyAnnualDemand},
		{name: "explicit zero work days", args: []string{"--demand", "10", "--order-cost", "1", "--holding-cost", "1", "--work-days", "0"}, field: eoq.KeyWorkDays},
		{name: "bad output format", args: []string{"--demand", "10", "--order-cost", "1", "--holding-cost", "1", "--output-format", "xml"}},
		{name: "missing required flag", args: []string{"--demand", "10", "--order-cost", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"compute"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if out != "" {
				t.Errorf("expected no results on stdout, got %q", out)
			}
			if tt.field != "" {
				var validationErr *eoq.ValidationError
				if !errors.As(err, &validationErr) || validationErr.Field != tt.field {
					t.Errorf("expected validation error on %s, got %v", tt.field, err)
				}
			}
		})
	}
}

func TestComputeExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")
	_, err := execute(t, "compute", "--demand", "1200", "--order-cost", "50", "--holding-cost", "2", "--output-format", "json", "--export="+path)
	if err != nil {
		t.Fatalf("compute error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected workbook at %s: %v", path, err)
	}
}

func TestComputeExportFailureKeepsResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.xlsx")
	out, err := execute(t, "compute", "--demand", "1200", "--order-cost", "50", "--holding-cost", "2", "--output-format", "csv", "--export="+path)

	var exportErr *eoq.ExportError
	if !errors.As(err, &exportErr) {
		t.Fatalf("expected *eoq.ExportError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(out, "parameter,value") {
		t.Errorf("expected results printed before the export failure, got %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "eoq "+Version) {
		t.Errorf("unexpected version output %q", out)
	}
}
