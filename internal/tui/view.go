package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = ErrorStyle.Render(fmt.Sprintf("Erro: %s", m.err)) + "\n\n" + SubtitleStyle.Render("Pressione q para sair.")
	case m.loading || m.report == nil:
		content = BorderStyle.Render("⠋ Calculando...")
	case m.currentScene == SceneOpportunities:
		content = m.renderOpportunities()
	default:
		content = m.renderComparison()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		content,
		m.help.View(m.keys),
	)
}

// renderTitleBar renders the application title and the company name
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("TAXOPT - Planejamento Tributário")
	if m.report == nil || m.report.Company.Name == "" {
		return title
	}
	company := m.report.Company.Name
	if code := m.report.Company.StateCode(); code != "" {
		company += " (" + code + ")"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", SubtitleStyle.Render(company))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, sceneCount)
	for s := Scene(0); int(s) < sceneCount; s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, s)
		if s == m.currentScene {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) renderComparison() string {
	rc := m.report.Comparison

	var sb strings.Builder
	sb.WriteString(BorderStyle.Render(m.regimeTable.View()))
	sb.WriteString("\n")
	sb.WriteString(MetricLabelStyle.Render("Regime recomendado: "))
	sb.WriteString(RecommendedStyle.Render(rc.RecommendedRegime.DisplayName()))
	sb.WriteString("\n")
	if rc.EstimatedSavings > 0 {
		sb.WriteString(MetricLabelStyle.Render("Economia estimada: "))
		sb.WriteString(MetricPositiveStyle.Render(domain.FormatBRL(rc.EstimatedSavings) + " por ano"))
		sb.WriteString("\n")
	}

	selected := rc.Ordered()[clampIndex(m.regimeTable.Cursor(), len(domain.AllRegimes()))]
	sb.WriteString("\n")
	sb.WriteString(renderRegimeDetail(selected))
	return sb.String()
}

func renderRegimeDetail(r domain.RegimeResult) string {
	var sb strings.Builder
	sb.WriteString(MetricValueStyle.Render(r.Regime.DisplayName()))
	sb.WriteString("\n")
	for _, a := range r.Advantages {
		sb.WriteString(MetricPositiveStyle.Render("+ ") + a + "\n")
	}
	for _, d := range r.Disadvantages {
		sb.WriteString(ErrorStyle.Render("- ") + d + "\n")
	}
	return BorderStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderOpportunities() string {
	s := m.report.Summary

	var sb strings.Builder
	sb.WriteString(BorderStyle.Render(m.opportunityTable.View()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s   %s %s   %s %d\n",
		MetricLabelStyle.Render("Economia total:"), MetricPositiveStyle.Render(domain.FormatBRL(s.TotalEstimatedSavings)),
		MetricLabelStyle.Render("Líquida:"), MetricValueStyle.Render(domain.FormatBRL(s.NetSavings)),
		MetricLabelStyle.Render("Ganhos rápidos:"), s.QuickWins))

	if o, ok := m.selectedOpportunity(); ok {
		sb.WriteString(renderOpportunityDetail(o, m.width))
	}
	return sb.String()
}

func renderOpportunityDetail(o domain.Opportunity, width int) string {
	var sb strings.Builder
	sb.WriteString(MetricValueStyle.Render(o.Title))
	sb.WriteString("\n")
	sb.WriteString(o.Description)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%s %s   %s %s   %s %s   %s %s\n",
		MetricLabelStyle.Render("Economia:"), domain.FormatBRL(o.EstimatedSavings),
		MetricLabelStyle.Render("Custo:"), domain.FormatBRL(o.ImplementationCost),
		MetricLabelStyle.Render("Risco:"), riskStyle(o.RiskLevel.String()).Render(o.RiskLevel.String()),
		MetricLabelStyle.Render("Prazo:"), o.Timeline)

	regimes := make([]string, len(o.ApplicableRegimes))
	for i, r := range o.ApplicableRegimes {
		regimes[i] = r.DisplayName()
	}
	fmt.Fprintf(&sb, "%s %s\n", MetricLabelStyle.Render("Regimes:"), strings.Join(regimes, ", "))

	if len(o.ActionItems) > 0 {
		sb.WriteString(MetricLabelStyle.Render("Ações:") + "\n")
		for _, item := range o.ActionItems {
			sb.WriteString("  • " + item + "\n")
		}
	}

	style := BorderStyle
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(strings.TrimRight(sb.String(), "\n"))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
