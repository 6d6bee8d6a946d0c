package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"

	"github.com/spf13/cobra"
)

var costsCmd = &cobra.Command{
	Use:       "costs [collection]",
	Short:     "Cost line tables with totals",
	Long:      "Show cost lines for every collection, or only one of: operating, direct, collateral, services, marketing.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: collectionNames(),
	RunE:      runCosts,
}

func init() {
	rootCmd.AddCommand(costsCmd)
}

func collectionNames() []string {
	names := make([]string, len(model.Collections))
	for i, c := range model.Collections {
		names[i] = string(c)
	}
	return names
}

func runCosts(_ *cobra.Command, args []string) error {
	which := model.Collections
	if len(args) == 1 {
		c, ok := model.ParseCollection(strings.ToLower(args[0]))
		if !ok {
			return fmt.Errorf("unknown collection %q (want one of %s)", args[0], strings.Join(collectionNames(), ", "))
		}
		which = []model.Collection{c}
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	b := s.store.Snapshot()
	fmt.Println()
	fmt.Println(cli.RenderTitle("COSTS  " + s.title()))
	for _, c := range which {
		fmt.Println()
		renderCollection(os.Stdout, c, b)
	}
	return nil
}

func renderCollection(w io.Writer, c model.Collection, b model.Budget) {
	if b.Len(c) == 0 {
		fmt.Fprintln(w, cli.RenderNote(c.Title()+": no lines"))
		return
	}

	if c == model.CollectionOperating {
		sum := pipeline.SummarizeOperating(b.Operating)
		rows := make([][]string, 0, len(sum.Lines)+4)
		for _, l := range sum.Lines {
			rows = append(rows, []string{l.Category, cli.FormatCurrency(l.Budgeted), cli.FormatCurrency(l.Actual), cli.FormatVariance(l.Variance)})
		}
		rows = append(rows,
			[]string{"---"},
			[]string{"Monthly", cli.FormatCurrency(sum.TotalBudgeted), cli.FormatCurrency(sum.TotalActual), cli.FormatVariance(sum.Variance)},
			[]string{"Annual", cli.FormatCurrency(sum.AnnualBudgeted), cli.FormatCurrency(sum.AnnualActual), ""},
		)
		fmt.Fprint(w, cli.RenderTable(cli.Table{
			Title:   c.Title(),
			Headers: []string{"Category", "Budgeted", "Actual", "Variance"},
			Rows:    rows,
		}))
		return
	}

	var lines []model.LineCost
	var total float64
	switch c {
	case model.CollectionDirect:
		lines, total = pipeline.DirectLines(b.Direct), pipeline.TotalDirect(b.Direct)
	case model.CollectionCollateral:
		lines, total = pipeline.CollateralLines(b.Collateral), pipeline.TotalCollateral(b.Collateral)
	case model.CollectionServices:
		lines, total = pipeline.ServiceLines(b.Services), pipeline.TotalServices(b.Services)
	case model.CollectionMarketing:
		lines, total = pipeline.MarketingLines(b.Marketing), pipeline.TotalMarketing(b.Marketing)
	}

	rows := make([][]string, 0, len(lines)+2)
	for _, l := range lines {
		share := ""
		if total > 0 {
			share = cli.FormatRatio(l.CostPerProduct / total)
		}
		rows = append(rows, []string{l.Name, cli.FormatCurrency(l.CostPerUnit), cli.FormatCurrency(l.CostPerProduct), share})
	}
	rows = append(rows, []string{"---"}, []string{"Per product", "", cli.FormatCurrency(total), ""})

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   c.Title(),
		Headers: []string{"Line", "Cost/Unit", "Cost/Product", "Share"},
		Rows:    rows,
	}))
}
