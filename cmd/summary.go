package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dashboard report: costs, profitability and breakeven",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	renderSummary(os.Stdout, s.title(), s.store.Snapshot())
	return nil
}

func renderSummary(w io.Writer, name string, b model.Budget) {
	p := pipeline.AggregateBudget(b)
	a := b.Assumptions

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("BREAKEVEN  "+name))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Key Figures",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Fixed costs (monthly)", cli.FormatCurrency(p.TotalFixedCosts)},
			{"Variable cost per unit", cli.FormatCurrency(p.TotalVariableCostPerUnit)},
			{"Margin per sale", cli.FormatCurrency(p.MarginPerSale)},
			{"Net profit (monthly)", cli.FormatCurrency(p.NetProfit)},
		},
	}))
	fmt.Fprintln(w)

	if p.NegativeMarginAlert() {
		fmt.Fprintln(w, cli.RenderAlert(fmt.Sprintf(
			"Negative margin: variable costs (%s) exceed the ticket price (%s).",
			cli.FormatCurrency(p.TotalVariableCostPerUnit), cli.FormatCurrency(p.TicketPrice))))
		fmt.Fprintln(w, cli.RenderNote("Increase price or reduce unit costs to achieve profitability."))
		fmt.Fprintln(w)
	}

	categories := []struct {
		label string
		value float64
	}{
		{"Direct", p.TotalDirect},
		{"Collateral", p.TotalCollateral},
		{"Services", p.TotalServices},
		{"Marketing", p.TotalMarketing},
	}
	peak := 0.0
	for _, c := range categories {
		peak = max(peak, c.value)
	}
	fmt.Fprintln(w, cli.RenderNote("Variable cost per unit"))
	for _, c := range categories {
		fmt.Fprintln(w, cli.RenderHorizontalBar(c.label, c.value, peak, 10, 30))
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Business Assumptions",
		Headers: []string{"Input", "Value"},
		Rows: [][]string{
			{"Ticket price", cli.FormatCurrency(a.TicketPrice)},
			{"Potential clients", cli.FormatUnits(a.PotentialClients)},
			{"Conversion rate", cli.FormatPercent(a.ConversionRate)},
		},
	}))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Profitability",
		Headers: []string{"Metric", "Monthly"},
		Rows: [][]string{
			{"Projected unit sales", cli.FormatUnits(p.ProjectedUnitSales)},
			{"Gross revenue", cli.FormatCurrency(p.GrossRevenue)},
			{"Variable costs", cli.FormatCurrency(p.TotalMonthlyVariableCosts)},
			{"Gross profit", cli.FormatCurrency(p.GrossProfit)},
			{"---"},
			{"Net profit", cli.FormatCurrency(p.NetProfit)},
		},
	}))
	fmt.Fprintln(w)

	if !p.BreakevenComputable {
		fmt.Fprintln(w, cli.RenderNote("Breakeven: "+p.BreakevenState.Message()))
		return
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Breakeven",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Units", cli.FormatCount(p.BreakevenUnits)},
			{"Revenue", cli.FormatCurrency(p.BreakevenRevenue)},
		},
	}))
	fmt.Fprintln(w, cli.RenderProgressBar(p.Coverage(), 30))
}
