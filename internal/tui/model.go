// Package tui implements the interactive terminal form for the calculator.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/eoq-calculator/internal/config"
	"github.com/iwvelando/eoq-calculator/internal/eoq"
	"github.com/iwvelando/eoq-calculator/internal/export"
	"github.com/iwvelando/eoq-calculator/internal/report"
	"github.com/iwvelando/eoq-calculator/pkg/format"
	"github.com/iwvelando/eoq-calculator/pkg/output"
	"go.uber.org/zap"
)

type field struct {
	key         string
	label       string
	placeholder string
}

var fields = []field{
	{key: eoq.KeyAnnualDemand, label: "Annual Demand (D)", placeholder: "units per year"},
	{key: eoq.KeyOrderCost, label: "Order Cost (S)", placeholder: "cost per order"},
	{key: eoq.KeyHoldingCost, label: "Holding Cost (H)", placeholder: "cost per unit per year"},
	{key: eoq.KeyWorkDays, label: "Work Days per Year", placeholder: "days"},
}

// exportDoneMsg reports the outcome of a workbook export.
type exportDoneMsg struct {
	path string
	err  error
}

// Model is the Bubble Tea model of the calculator form.
type Model struct {
	cfg        *config.Configuration
	logger     *zap.Logger
	exportPath string

	inputs []textinput.Model
	focus  int

	report    *report.Report
	err       error
	exportErr error
	status    string
	exporting bool
}

// NewModel creates the form. Work days start at the configured default.
func NewModel(cfg *config.Configuration, logger *zap.Logger, exportPath string) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Prompt = ""
		in.CharLimit = 24
		in.Width = 24
		inputs[i] = in
	}
	inputs[len(inputs)-1].SetValue(format.Whole(cfg.WorkDays()))
	inputs[0].Focus()

	return Model{
		cfg:        cfg,
		logger:     logger,
		exportPath: exportPath,
		inputs:     inputs,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		case "enter":
			if m.focus == len(m.inputs)-1 {
				m.compute()
				return m, nil
			}
			return m.moveFocus(1)
		case "ctrl+r":
			m.compute()
			return m, nil
		case "ctrl+s":
			return m.startExport()
		}

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.exportErr = msg.err
			m.logger.Error("export failed",
				zap.String("op", "tui.export"),
				zap.String("path", msg.path),
				zap.Error(msg.err),
			)
			return m, nil
		}
		m.exportErr = nil
		m.status = "Saved " + msg.path
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focus].Focus()
}

// compute runs the calculator on the form values. A failure leaves the
// previous result in place.
func (m *Model) compute() {
	const op = "tui.compute"

	in, err := m.input()
	if err == nil {
		var rep *report.Report
		rep, err = report.Compute(in, m.cfg.ReportOptions())
		if err == nil {
			m.report = rep
			m.err = nil
			m.exportErr = nil
			m.status = ""
			m.logger.Debug("eoq computed",
				zap.String("op", op),
				zap.Float64("eoq", rep.Result.EOQ),
			)
			return
		}
	}

	m.err = err
	m.logger.Debug("computation rejected",
		zap.String("op", op),
		zap.Error(err),
	)
}

// input parses the form. An empty work days field takes the configured
// default; every other field is required.
func (m Model) input() (eoq.InputParameters, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			if f.key == eoq.KeyWorkDays {
				values[i] = m.cfg.WorkDays()
				continue
			}
			return eoq.InputParameters{}, fmt.Errorf("%s is required", f.label)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return eoq.InputParameters{}, fmt.Errorf("%s must be a number, got %q", f.label, raw)
		}
		values[i] = v
	}

	return eoq.InputParameters{
		AnnualDemand: values[0],
		OrderCost:    values[1],
		HoldingCost:  values[2],
		WorkDays:     values[3],
	}, nil
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.report == nil {
		m.exportErr = errors.New("nothing to export, compute a result first")
		return m, nil
	}
	if m.exporting {
		return m, nil
	}

	m.exporting = true
	m.status = "Exporting..."
	rep, path := m.report, m.exportPath
	return m, func() tea.Msg {
		return exportDoneMsg{path: path, err: export.WriteFile(path, rep.Table(), rep.Curve)}
	}
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("EOQ Calculator"))
	b.WriteString("\n")

	for i, f := range fields {
		label := LabelStyle.Render(f.label)
		if i == m.focus {
			label = FocusedLabelStyle.Render(f.label)
		}
		b.WriteString(label + " " + m.inputs[i].View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	if m.report != nil {
		b.WriteString(ResultBoxStyle.Render(m.resultView()))
		b.WriteString("\n")
	}

	if m.exportErr != nil {
		b.WriteString(ErrorStyle.Render("Export: "+m.exportErr.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(StatusStyle.Render(m.status) + "\n")
	}

	b.WriteString(HelpStyle.Render("tab/shift+tab move • enter on last field or ctrl+r compute • ctrl+s export • esc quit"))
	return b.String()
}

func (m Model) resultView() string {
	rep := m.report
	lines := []string{SuccessStyle.Render(rep.Success)}
	for _, line := range rep.Info {
		lines = append(lines, InfoStyle.Render(line))
	}
	lines = append(lines, output.SummaryTable(rep))

	if best, ok := rep.Curve.Minimum(); ok {
		lines = append(lines, StatusStyle.Render(fmt.Sprintf("Lowest sampled total cost at Q=%d: %s",
			best.Q, format.Currency(m.cfg.Display.CurrencySymbol, best.TotalCost))))
	} else {
		lines = append(lines, StatusStyle.Render("EOQ is below one unit; no cost curve was sampled"))
	}
	return strings.Join(lines, "\n")
}
