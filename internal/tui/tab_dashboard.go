package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/source"
	"github.com/theirongolddev/breakeven/internal/tui/components"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// assumptionField is one editable sales input on the dashboard.
type assumptionField struct {
	label       string
	placeholder string
	get         func(model.BusinessAssumptions) float64
	format      func(float64) string
	patch       func(raw string) model.AssumptionsPatch
}

var assumptionFields = []assumptionField{
	{
		label:       "Ticket Price",
		placeholder: "price per sale, e.g. 49.99",
		get:         func(a model.BusinessAssumptions) float64 { return a.TicketPrice },
		format:      cli.FormatCurrency,
		patch: func(raw string) model.AssumptionsPatch {
			return model.AssumptionsPatch{TicketPrice: model.Ptr(source.ParseNumber(raw))}
		},
	},
	{
		label:       "Potential Clients",
		placeholder: "monthly reach",
		get:         func(a model.BusinessAssumptions) float64 { return a.PotentialClients },
		format:      cli.FormatUnits,
		patch: func(raw string) model.AssumptionsPatch {
			return model.AssumptionsPatch{PotentialClients: model.Ptr(source.ParseNumber(raw))}
		},
	},
	{
		label:       "Conversion Rate",
		placeholder: "percent, e.g. 5",
		get:         func(a model.BusinessAssumptions) float64 { return a.ConversionRate },
		format:      cli.FormatPercent,
		patch: func(raw string) model.AssumptionsPatch {
			return model.AssumptionsPatch{ConversionRate: model.Ptr(source.ParseNumber(raw))}
		},
	},
}

func toneOf(v float64) components.Tone {
	if v < 0 {
		return components.ToneBad
	}
	return components.ToneNeutral
}

func (a App) renderDashboard(cw int) string {
	t := theme.Active
	p := a.projection

	var b strings.Builder
	b.WriteString(components.MetricRow([]components.Metric{
		{Label: "Fixed Costs", Value: cli.FormatCurrency(p.TotalFixedCosts), Note: "per month"},
		{Label: "Variable Cost", Value: cli.FormatCurrency(p.TotalVariableCostPerUnit), Note: "per unit"},
		{Label: "Margin", Value: cli.FormatCurrency(p.MarginPerSale), Note: "per sale", Tone: toneOf(p.MarginPerSale)},
		{Label: "Net Profit", Value: cli.FormatCurrency(p.NetProfit), Note: "per month", Tone: profitTone(p.NetProfit)},
	}, cw))
	b.WriteString("\n")

	if p.NegativeMarginAlert() {
		alert := lipgloss.NewStyle().Foreground(t.Loss).Background(t.Surface).Bold(true)
		body := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).
			Width(components.CardInnerWidth(cw))
		b.WriteString(components.ContentCard("", alert.Render("▲ Negative Margin Alert")+"\n"+
			body.Render(fmt.Sprintf("Variable costs (%s) exceed your ticket price (%s). Increase price or reduce unit costs to achieve profitability.",
				cli.FormatCurrency(p.TotalVariableCostPerUnit), cli.FormatCurrency(p.TicketPrice))), cw, false))
		b.WriteString("\n")
	}

	half := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Business Assumptions", a.renderAssumptions(half[0]), half[0], true),
		components.ContentCard("Variable Cost Breakdown", a.renderBreakdown(half[1]), half[1], false),
	}))
	b.WriteString("\n")
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Profitability", a.renderProfitability(half[0]), half[0], false),
		components.ContentCard("Breakeven Analysis", a.renderBreakeven(half[1]), half[1], false),
	}))

	return b.String()
}

func profitTone(v float64) components.Tone {
	if v > 0 {
		return components.ToneGood
	}
	return toneOf(v)
}

func (a App) renderAssumptions(outer int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outer)
	row := a.cursors[tabDashboard].row

	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selLabel := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	selValue := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	marker := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	lines := make([]string, len(assumptionFields))
	for i, f := range assumptionFields {
		name := fmt.Sprintf("%-18s ", f.label)
		switch {
		case a.editing && i == row:
			lines[i] = marker.Render("▸ ") + selLabel.Render(name) + a.input.View()
		case i == row:
			line := marker.Render("▸ ") + selLabel.Render(name) + selValue.Render(f.format(f.get(a.budget.Assumptions)))
			lines[i] = line + selValue.Render(strings.Repeat(" ", max(inner-lipgloss.Width(line), 0)))
		default:
			lines[i] = value.Render("  ") + label.Render(name) + value.Render(f.format(f.get(a.budget.Assumptions)))
		}
	}
	return strings.Join(lines, "\n")
}

func (a App) renderBreakdown(outer int) string {
	p := a.projection
	return components.ShareChart([]components.Slice{
		{Label: "Direct", Value: p.TotalDirect, Text: cli.FormatCurrency(p.TotalDirect)},
		{Label: "Collateral", Value: p.TotalCollateral, Text: cli.FormatCurrency(p.TotalCollateral)},
		{Label: "Services", Value: p.TotalServices, Text: cli.FormatCurrency(p.TotalServices)},
		{Label: "Marketing", Value: p.TotalMarketing, Text: cli.FormatCurrency(p.TotalMarketing)},
	}, components.CardInnerWidth(outer))
}

// metricLines renders label/value pairs with values right-aligned to width.
func metricLines(pairs [][2]string, tones []components.Tone, width int) string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	gap := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, len(pairs))
	for i, kv := range pairs {
		color := t.TextPrimary
		switch tones[i] {
		case components.ToneBad:
			color = t.Loss
		case components.ToneGood:
			color = t.Profit
		}
		v := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(kv[1])
		l := label.Render(kv[0])
		pad := max(width-lipgloss.Width(l)-lipgloss.Width(v), 1)
		lines[i] = l + gap.Render(strings.Repeat(" ", pad)) + v
	}
	return strings.Join(lines, "\n")
}

func (a App) renderProfitability(outer int) string {
	p := a.projection
	return metricLines([][2]string{
		{"Margin Per Sale", cli.FormatCurrency(p.MarginPerSale)},
		{"Projected Unit Sales", cli.FormatUnits(p.ProjectedUnitSales)},
		{"Gross Revenue", cli.FormatCurrency(p.GrossRevenue)},
		{"Gross Profit", cli.FormatCurrency(p.GrossProfit)},
		{"Net Profit", cli.FormatCurrency(p.NetProfit)},
	}, []components.Tone{
		toneOf(p.MarginPerSale),
		components.ToneNeutral,
		components.ToneNeutral,
		toneOf(p.GrossProfit),
		profitTone(p.NetProfit),
	}, components.CardInnerWidth(outer))
}

func (a App) renderBreakeven(outer int) string {
	t := theme.Active
	p := a.projection
	inner := components.CardInnerWidth(outer)

	if !p.BreakevenComputable {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(inner)
		return muted.Render(p.BreakevenState.Message())
	}

	body := metricLines([][2]string{
		{"Breakeven Units", cli.FormatUnits(p.BreakevenUnits)},
		{"Breakeven Revenue", cli.FormatCurrency(p.BreakevenRevenue)},
	}, []components.Tone{components.ToneNeutral, components.ToneNeutral}, inner)

	barW := max(inner-10-7, 10)
	return body + "\n\n" + components.CoverageBar("Coverage", p.Coverage(), 9, barW)
}
