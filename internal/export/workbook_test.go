package export

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/breakeven/internal/model"
)

func sampleBudget() model.Budget {
	return model.Budget{
		Operating: []model.OperatingCost{{ID: "rent", Category: "Rent", BudgetedMonthly: 1000, ActualMonthly: 1100}},
		Direct: []model.DirectCost{
			{ID: "d1", Item: "Flour", CostPerPurchase: 20, UnitsPerPurchase: 10, AmountUsedPerProduct: 3},
		},
		Marketing:   []model.MarketingCost{{ID: "m1", Channel: "Flyers", BudgetPerBatch: 100, AmountPerBatch: 50}},
		Assumptions: model.BusinessAssumptions{TicketPrice: 50, PotentialClients: 1000, ConversionRate: 10},
	}
}

func rawCell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s): %v", sheet, ref, err)
	}
	return v
}

func floatCell(t *testing.T, f *excelize.File, sheet, ref string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(rawCell(t, f, sheet, ref), 64)
	if err != nil {
		t.Fatalf("%s!%s not numeric: %v", sheet, ref, err)
	}
	return v
}

func TestWriteProducesAllSheets(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleBudget()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer func() { _ = f.Close() }()

	want := []string{"Dashboard", "Operating Costs", "Direct Costs", "Collateral Costs", "Production Services", "Marketing Costs"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sheets = %v, want %v", got, want)
		}
	}

	if v := rawCell(t, f, "Direct Costs", "A2"); v != "Flour" {
		t.Errorf("Direct A2 = %q, want Flour", v)
	}
	if v := floatCell(t, f, "Direct Costs", "F2"); v != 6 {
		t.Errorf("Direct cost per product = %v, want 6", v)
	}
	if v := floatCell(t, f, "Operating Costs", "D3"); v != -100 {
		t.Errorf("Operating total variance = %v, want -100", v)
	}
	if v := rawCell(t, f, "Dashboard", "A16"); v != "Net profit" {
		t.Errorf("Dashboard A16 = %q, want Net profit", v)
	}
	// (50 - 6 - 2) * 100 sales - 1100 fixed
	if v := floatCell(t, f, "Dashboard", "B16"); v != 3100 {
		t.Errorf("net profit = %v, want 3100", v)
	}
}

func TestWorkbookBreakevenMessage(t *testing.T) {
	b := sampleBudget()
	b.Assumptions.TicketPrice = 0

	f, err := Workbook(b)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	if v := rawCell(t, f, "Dashboard", "B17"); v != model.BreakevenNoPrice.Message() {
		t.Errorf("breakeven cell = %q", v)
	}
}

func TestSaveAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")
	if err := SaveAs(path, model.Budget{}); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	_ = f.Close()
}
