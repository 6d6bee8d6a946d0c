package cmd

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"
	"github.com/theirongolddev/breakeven/internal/source"

	"github.com/spf13/cobra"
)

var worksheetsCmd = &cobra.Command{
	Use:   "worksheets",
	Short: "List worksheets in the worksheet directory",
	RunE:  runWorksheets,
}

var worksheetsTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a commented starter worksheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), source.Template)
		return err
	},
}

func init() {
	worksheetsCmd.AddCommand(worksheetsTemplateCmd)
	rootCmd.AddCommand(worksheetsCmd)
}

func budgetLines(b model.Budget) int {
	n := 0
	for _, c := range model.Collections {
		n += b.Len(c)
	}
	return n
}

func runWorksheets(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := cfg.WorksheetDir()

	files, err := source.ScanDir(dir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(files) == 0 {
		fmt.Printf("\n  No worksheets in %s\n", dir)
		fmt.Println("  Start one with: breakeven worksheets template > " + dir + "/shop.toml")
		return nil
	}

	rows := make([][]string, 0, len(files))
	for _, f := range files {
		ws, err := source.LoadFile(f.Path)
		if err != nil {
			rows = append(rows, []string{f.Name, "-", "unreadable", ""})
			continue
		}
		p := pipeline.AggregateBudget(ws.Budget)
		be := "-"
		if p.BreakevenComputable {
			be = cli.FormatCount(p.BreakevenUnits)
		}
		rows = append(rows, []string{
			f.Name,
			cli.FormatNumber(int64(budgetLines(ws.Budget))),
			cli.FormatCurrency(p.NetProfit),
			be,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Worksheets in " + dir,
		Headers: []string{"Name", "Lines", "Net Profit", "Breakeven"},
		Rows:    rows,
	}))
	return nil
}
