package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/breakeven/internal/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the budget and projection to an .xlsx workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output file (default <worksheet>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	path := flagExportOutput
	if path == "" {
		path = strings.ReplaceAll(s.title(), "/", "-") + ".xlsx"
	}

	if err := export.SaveAs(path, s.store.Snapshot()); err != nil {
		return err
	}
	s.log.Debug("workbook written", zap.String("path", path))

	if !flagQuiet {
		fmt.Printf("  Wrote %s\n", path)
	}
	return nil
}
