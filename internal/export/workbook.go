// Package export writes budgets and their projections as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dashboardSheet = "Dashboard"

var currencyFmt = `"$"#,##0.00;-"$"#,##0.00`

type styles struct {
	header   int
	currency int
	total    int
}

// Workbook builds a workbook with a dashboard sheet and one sheet per
// collection. The caller must Close the returned file.
func Workbook(b model.Budget) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", dashboardSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	steps := []func(*excelize.File, styles, model.Budget) error{
		writeDashboard,
		writeOperating,
		writeDirect,
		writeCollateral,
		writeServices,
		writeMarketing,
	}
	for _, step := range steps {
		if err := step(f, st, b); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Write streams the workbook for b to w.
func Write(w io.Writer, b model.Budget) error {
	f, err := Workbook(b)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveAs writes the workbook for b to path.
func SaveAs(path string, b model.Budget) error {
	f, err := Workbook(b)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E6E4D9"}},
	})
	if err != nil {
		return st, fmt.Errorf("creating header style: %w", err)
	}
	st.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFmt})
	if err != nil {
		return st, fmt.Errorf("creating currency style: %w", err)
	}
	st.total, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &currencyFmt,
	})
	if err != nil {
		return st, fmt.Errorf("creating total style: %w", err)
	}
	return st, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// table writes headers and rows starting at A1. Columns listed in money are
// formatted as currency; a final bold total row sums those columns when
// totals is non-empty.
func table(f *excelize.File, st styles, sheet string, headers []string, rows [][]any, money []int, totals map[int]float64) error {
	if sheet != dashboardSheet {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %s: %w", sheet, err)
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("writing %s headers: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", cell(len(headers), 1), st.header); err != nil {
		return err
	}

	for i, row := range rows {
		if err := f.SetSheetRow(sheet, cell(1, i+2), &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}

	last := len(rows) + 1
	for _, col := range money {
		if len(rows) > 0 {
			if err := f.SetCellStyle(sheet, cell(col, 2), cell(col, last), st.currency); err != nil {
				return err
			}
		}
	}

	if len(totals) > 0 {
		totalRow := last + 1
		if err := f.SetCellValue(sheet, cell(1, totalRow), "Total"); err != nil {
			return err
		}
		for col, v := range totals {
			if err := f.SetCellValue(sheet, cell(col, totalRow), v); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell(col, totalRow), cell(col, totalRow), st.total); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheet, "A", "A", 28)
}

func writeDashboard(f *excelize.File, st styles, b model.Budget) error {
	p := pipeline.AggregateBudget(b)

	breakevenUnits := any(p.BreakevenUnits)
	breakevenRevenue := any(p.BreakevenRevenue)
	if !p.BreakevenComputable {
		breakevenUnits, breakevenRevenue = p.BreakevenState.Message(), ""
	}

	rows := [][]any{
		{"Total fixed costs (monthly)", p.TotalFixedCosts},
		{"Direct cost per unit", p.TotalDirect},
		{"Collateral cost per unit", p.TotalCollateral},
		{"Services cost per unit", p.TotalServices},
		{"Marketing cost per unit", p.TotalMarketing},
		{"Total variable cost per unit", p.TotalVariableCostPerUnit},
		{"Ticket price", b.Assumptions.TicketPrice},
		{"Margin per sale", p.MarginPerSale},
		{"Potential clients", b.Assumptions.PotentialClients},
		{"Conversion rate (%)", b.Assumptions.ConversionRate},
		{"Projected unit sales", p.ProjectedUnitSales},
		{"Gross revenue", p.GrossRevenue},
		{"Monthly variable costs", p.TotalMonthlyVariableCosts},
		{"Gross profit", p.GrossProfit},
		{"Net profit", p.NetProfit},
		{"Breakeven units", breakevenUnits},
		{"Breakeven revenue", breakevenRevenue},
	}
	if err := table(f, st, dashboardSheet, []string{"Metric", "Value"}, rows, nil, nil); err != nil {
		return err
	}

	// Currency everywhere except counts and percentages.
	for i, r := range rows {
		switch r[0] {
		case "Potential clients", "Conversion rate (%)", "Projected unit sales", "Breakeven units":
			continue
		}
		if err := f.SetCellStyle(dashboardSheet, cell(2, i+2), cell(2, i+2), st.currency); err != nil {
			return err
		}
	}
	return nil
}

func writeOperating(f *excelize.File, st styles, b model.Budget) error {
	s := pipeline.SummarizeOperating(b.Operating)
	rows := make([][]any, 0, len(s.Lines))
	for _, l := range s.Lines {
		rows = append(rows, []any{l.Category, l.Budgeted, l.Actual, l.Variance})
	}
	return table(f, st, model.CollectionOperating.Title(),
		[]string{"Category", "Budgeted Monthly", "Actual Monthly", "Variance"},
		rows, []int{2, 3, 4},
		map[int]float64{2: s.TotalBudgeted, 3: s.TotalActual, 4: s.Variance},
	)
}

func writeDirect(f *excelize.File, st styles, b model.Budget) error {
	lines := pipeline.DirectLines(b.Direct)
	rows := make([][]any, 0, len(lines))
	for i, d := range b.Direct {
		rows = append(rows, []any{d.Item, d.CostPerPurchase, d.UnitsPerPurchase, lines[i].CostPerUnit, d.AmountUsedPerProduct, lines[i].CostPerProduct})
	}
	return table(f, st, model.CollectionDirect.Title(),
		[]string{"Item", "Cost per Purchase", "Units per Purchase", "Cost per Unit", "Amount Used", "Cost per Product"},
		rows, []int{2, 4, 6},
		map[int]float64{6: pipeline.TotalDirect(b.Direct)},
	)
}

func writeCollateral(f *excelize.File, st styles, b model.Budget) error {
	lines := pipeline.CollateralLines(b.Collateral)
	rows := make([][]any, 0, len(lines))
	for i, c := range b.Collateral {
		rows = append(rows, []any{c.Item, c.CostPerPurchase, c.UnitsPerPurchase, lines[i].CostPerUnit, c.AmountUsedPerProduct, lines[i].CostPerProduct})
	}
	return table(f, st, model.CollectionCollateral.Title(),
		[]string{"Item", "Cost per Purchase", "Units per Purchase", "Cost per Unit", "Amount Used", "Cost per Product"},
		rows, []int{2, 4, 6},
		map[int]float64{6: pipeline.TotalCollateral(b.Collateral)},
	)
}

func writeServices(f *excelize.File, st styles, b model.Budget) error {
	lines := pipeline.ServiceLines(b.Services)
	rows := make([][]any, 0, len(lines))
	for i, s := range b.Services {
		rows = append(rows, []any{s.Service, s.CostPerUnit, s.AmountUsed, lines[i].CostPerProduct})
	}
	return table(f, st, model.CollectionServices.Title(),
		[]string{"Service", "Cost per Unit", "Amount Used", "Cost per Product"},
		rows, []int{2, 4},
		map[int]float64{4: pipeline.TotalServices(b.Services)},
	)
}

func writeMarketing(f *excelize.File, st styles, b model.Budget) error {
	lines := pipeline.MarketingLines(b.Marketing)
	rows := make([][]any, 0, len(lines))
	for i, m := range b.Marketing {
		rows = append(rows, []any{m.Channel, m.BudgetPerBatch, m.AmountPerBatch, lines[i].CostPerProduct})
	}
	return table(f, st, model.CollectionMarketing.Title(),
		[]string{"Channel", "Budget per Batch", "Amount per Batch", "Cost per Product"},
		rows, []int{2, 4},
		map[int]float64{4: pipeline.TotalMarketing(b.Marketing)},
	)
}
