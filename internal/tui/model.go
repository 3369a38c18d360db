package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fabiotcs/apptributario-sub000/internal/calculation"
	"github.com/fabiotcs/apptributario-sub000/internal/compare"
	"github.com/fabiotcs/apptributario-sub000/internal/config"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/fabiotcs/apptributario-sub000/internal/opportunity"
	"github.com/fabiotcs/apptributario-sub000/internal/output"
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	configPath string
	rulesPath  string
	report     *output.Report

	regimeTable      table.Model
	opportunityTable table.Model

	keys KeyMap
	help help.Model

	err     error
	loading bool
}

// NewModel creates a new application model. rulesPath may be empty.
func NewModel(configPath, rulesPath string) Model {
	return Model{
		currentScene:     SceneComparison,
		configPath:       configPath,
		rulesPath:        rulesPath,
		regimeTable:      newRegimeTable(),
		opportunityTable: newOpportunityTable(),
		keys:             DefaultKeyMap(),
		help:             help.New(),
		loading:          true,
		width:            80,
		height:           24,
	}
}

// Init loads and computes the report
func (m Model) Init() tea.Cmd {
	return loadReportCmd(m.configPath, m.rulesPath)
}

// CurrentScene returns the active scene
func (m Model) CurrentScene() Scene { return m.currentScene }

// Report returns the loaded report, or nil while loading
func (m Model) Report() *output.Report { return m.report }

func loadReportCmd(path, rulesPath string) tea.Cmd {
	return func() tea.Msg {
		report, err := BuildReport(path, rulesPath)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ReportLoadedMsg{Report: report}
	}
}

// BuildReport loads a company file and computes its report
func BuildReport(path, rulesPath string) (*output.Report, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	rules, err := parser.ResolveRules(cfg, rulesPath)
	if err != nil {
		return nil, err
	}

	generator := &output.ReportGenerator{
		Engine:     compare.NewEngine(calculation.NewRegimeCalculatorWithRules(rules)),
		Aggregator: opportunity.NewAggregator(),
	}
	return generator.Generate(cfg), nil
}

func newRegimeTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Regime", Width: 18},
			{Title: "Alíquota", Width: 9},
			{Title: "Imposto anual", Width: 18},
			{Title: "Mensal", Width: 16},
			{Title: "", Width: 3},
		}),
		table.WithHeight(5),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())
	return t
}

func newOpportunityTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Oportunidade", Width: 40},
			{Title: "Economia", Width: 16},
			{Title: "ROI", Width: 8},
			{Title: "Prio", Width: 4},
			{Title: "Risco", Width: 6},
		}),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(BorderStyle.GetBorderStyle()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(ColorAccent).
		Bold(true)
	return s
}

func regimeRows(rc *domain.RegimeComparison) []table.Row {
	rows := make([]table.Row, 0, len(domain.AllRegimes()))
	for _, r := range rc.Ordered() {
		marker := ""
		if r.Regime == rc.RecommendedRegime {
			marker = "*"
		}
		rows = append(rows, table.Row{
			r.Regime.DisplayName(),
			domain.FormatRate(r.EffectiveTaxRate),
			domain.FormatBRL(r.AnnualTaxLiability),
			domain.FormatBRL(r.AverageMonthlyPayment),
			marker,
		})
	}
	return rows
}

func opportunityRows(opportunities []domain.Opportunity) []table.Row {
	rows := make([]table.Row, 0, len(opportunities))
	for i, o := range opportunities {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			o.Title,
			domain.FormatBRL(o.EstimatedSavings),
			fmt.Sprintf("%.0f%%", o.ROI),
			fmt.Sprintf("%d", o.Priority),
			o.RiskLevel.String(),
		})
	}
	return rows
}

// selectedOpportunity returns the opportunity under the cursor
func (m Model) selectedOpportunity() (domain.Opportunity, bool) {
	if m.report == nil {
		return domain.Opportunity{}, false
	}
	i := m.opportunityTable.Cursor()
	if i < 0 || i >= len(m.report.Opportunities) {
		return domain.Opportunity{}, false
	}
	return m.report.Opportunities[i], true
}
