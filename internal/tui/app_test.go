package tui

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/store"
	"github.com/theirongolddev/breakeven/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, st *store.Store) App {
	t.Helper()
	n := 0
	a := NewApp(st, Options{
		Worksheet: "test",
		NewID: func() string {
			n++
			return fmt.Sprintf("row-%d", n)
		},
	})
	t.Cleanup(a.Close)
	return a
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		m, _ := a.Update(keyMsg(k))
		a = m.(App)
	}
	return a
}

// edit opens the selected cell, replaces its text, and saves.
func edit(t *testing.T, a App, value string) App {
	t.Helper()
	a = press(a, "enter")
	if !a.editing {
		t.Fatal("enter did not open an editor")
	}
	a.input.SetValue(value)
	return press(a, "enter")
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab %d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
		if got := a.tabAtX(pos + 50); got != -1 {
			t.Errorf("x past the last tab -> %d, want -1", got)
		}
	}
}

func TestDigitKeysSwitchTabs(t *testing.T) {
	a := newTestApp(t, store.New())
	a = press(a, "4")
	if a.collection() != model.CollectionCollateral {
		t.Fatalf("collection = %q, want collateral", a.collection())
	}
	a = press(a, "right", "right")
	if a.collection() != model.CollectionMarketing {
		t.Fatalf("collection = %q, want marketing", a.collection())
	}
	a = press(a, "right")
	if a.activeTab != tabDashboard {
		t.Fatalf("activeTab = %d, want wrap to dashboard", a.activeTab)
	}
}

func TestAddEditDeleteOperatingLine(t *testing.T) {
	st := store.New()
	a := newTestApp(t, st)

	a = press(a, "2", "a")
	ops := st.OperatingCosts()
	if len(ops) != 1 || ops[0].ID != "row-1" {
		t.Fatalf("operating = %+v, want one row-1 line", ops)
	}

	a = edit(t, a, "  Rent ")
	a = press(a, "l")
	a = edit(t, a, "$1,200")
	a = press(a, "tab")
	a = edit(t, a, "1100")

	got := st.OperatingCosts()[0]
	want := model.OperatingCost{ID: "row-1", Category: "Rent", BudgetedMonthly: 1200, ActualMonthly: 1100}
	if got != want {
		t.Fatalf("line = %+v, want %+v", got, want)
	}
	if a.projection.TotalFixedCosts != 1100 {
		t.Errorf("TotalFixedCosts = %v, want 1100", a.projection.TotalFixedCosts)
	}

	a = press(a, "x")
	if n := len(st.OperatingCosts()); n != 0 {
		t.Fatalf("len = %d after delete, want 0", n)
	}
	if a.cursors[a.activeTab].row != 0 {
		t.Errorf("cursor row = %d, want 0", a.cursors[a.activeTab].row)
	}
}

func TestColumnNavigationSkipsDerived(t *testing.T) {
	st := store.New()
	st.AddDirectCost(model.DirectCost{ID: "d", Item: "Flour", CostPerPurchase: 20, UnitsPerPurchase: 10, AmountUsedPerProduct: 3})
	a := newTestApp(t, st)

	a = press(a, "3", "l", "l", "l")
	if c := a.cursors[a.activeTab].col; c != 3 {
		t.Fatalf("col = %d, want 3", c)
	}
	a = press(a, "l")
	if c := a.cursors[a.activeTab].col; c != 0 {
		t.Fatalf("col = %d, want wrap past derived columns to 0", c)
	}
	a = press(a, "h")
	if c := a.cursors[a.activeTab].col; c != 3 {
		t.Fatalf("col = %d, want 3", c)
	}
}

func TestEscCancelsEdit(t *testing.T) {
	st := store.New()
	st.AddMarketingCost(model.MarketingCost{ID: "m", Channel: "Ads", BudgetPerBatch: 100, AmountPerBatch: 50})
	a := newTestApp(t, st)
	before := st.Version()

	a = press(a, "6", "enter")
	a.input.SetValue("Flyers")
	a = press(a, "esc")

	if a.editing {
		t.Fatal("still editing after esc")
	}
	if st.Version() != before {
		t.Fatalf("version moved from %d to %d", before, st.Version())
	}
	if st.MarketingCosts()[0].Channel != "Ads" {
		t.Fatalf("channel = %q, want Ads", st.MarketingCosts()[0].Channel)
	}
}

func TestDashboardEditsAssumptions(t *testing.T) {
	st := store.New()
	st.AddOperatingCost(model.OperatingCost{ID: "o", ActualMonthly: 1000})
	st.AddProductionService(model.ProductionService{ID: "s", CostPerUnit: 30, AmountUsed: 1})
	a := newTestApp(t, st)

	if a.projection.BreakevenState != model.BreakevenNoPrice {
		t.Fatalf("state = %v, want no-price", a.projection.BreakevenState)
	}

	a = edit(t, a, "$50")
	a = press(a, "j")
	a = edit(t, a, "1,000")
	a = press(a, "j")
	a = edit(t, a, "10%")

	want := model.BusinessAssumptions{TicketPrice: 50, PotentialClients: 1000, ConversionRate: 10}
	if got := st.Assumptions(); got != want {
		t.Fatalf("assumptions = %+v, want %+v", got, want)
	}
	p := a.projection
	if p.BreakevenState != model.BreakevenReachable || p.BreakevenUnits != 50 {
		t.Fatalf("breakeven = %v/%v, want reachable/50", p.BreakevenState, p.BreakevenUnits)
	}
	if p.ProjectedUnitSales != 100 {
		t.Errorf("ProjectedUnitSales = %v, want 100", p.ProjectedUnitSales)
	}
}

func TestDashboardOverflowRendersNotAvailable(t *testing.T) {
	st := store.New()
	st.AddProductionService(model.ProductionService{ID: "s", CostPerUnit: 30, AmountUsed: 1})
	a := newTestApp(t, st)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	a = edit(t, a, "1e400")
	if got := st.Assumptions().TicketPrice; got != 0 {
		t.Fatalf("TicketPrice = %v, want 0 for out-of-range input", got)
	}

	a = edit(t, a, "1e200")
	a = press(a, "j")
	a = edit(t, a, "1e200")
	a = press(a, "j")
	a = edit(t, a, "100")

	if !math.IsInf(a.projection.GrossRevenue, 1) {
		t.Fatalf("GrossRevenue = %v, want +Inf", a.projection.GrossRevenue)
	}
	if view := a.View(); !strings.Contains(view, "n/a") {
		t.Error("overflowed figures should render as n/a")
	}
}

func TestStoreChangeRefreshesProjection(t *testing.T) {
	st := store.New()
	a := newTestApp(t, st)

	st.SetAssumptions(model.AssumptionsPatch{TicketPrice: model.Ptr(10.0)})
	ev := <-a.events

	m, cmd := a.Update(StoreChangedMsg{Event: ev})
	a = m.(App)
	if cmd == nil {
		t.Fatal("expected a command waiting for the next change")
	}
	if a.projection.TicketPrice != 10 || a.version != st.Version() {
		t.Fatalf("projection not refreshed: price=%v version=%d", a.projection.TicketPrice, a.version)
	}
}

func TestViewRendersDashboardAndLines(t *testing.T) {
	st := store.New()
	st.AddDirectCost(model.DirectCost{ID: "d", Item: "Flour", CostPerPurchase: 20, UnitsPerPurchase: 10, AmountUsedPerProduct: 3})
	st.SetAssumptions(model.AssumptionsPatch{TicketPrice: model.Ptr(4.0)})
	a := newTestApp(t, st)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	view := a.View()
	for _, want := range []string{"Breakeven Analysis", "Negative Margin Alert", "Business Assumptions"} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard view missing %q", want)
		}
	}
	if n := strings.Count(view, "\n") + 1; n != 40 {
		t.Errorf("view has %d lines, want 40", n)
	}

	a = press(a, "3")
	view = a.View()
	for _, want := range []string{"Flour", "$6.00", "Direct Costs"} {
		if !strings.Contains(view, want) {
			t.Errorf("direct view missing %q", want)
		}
	}
}

func TestNarrowTerminal(t *testing.T) {
	a := newTestApp(t, store.New())
	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(m.(App).View(), "too narrow") {
		t.Error("expected the narrow terminal notice")
	}
}

func TestVisibleWindowKeepsSelection(t *testing.T) {
	tests := []struct {
		n, sel, height, start, end int
	}{
		{3, 0, 10, 0, 3},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
	}
	for _, tt := range tests {
		start, end := visibleWindow(tt.n, tt.sel, tt.height)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleWindow(%d, %d, %d) = %d, %d; want %d, %d",
				tt.n, tt.sel, tt.height, start, end, tt.start, tt.end)
		}
	}
}

func TestColumnWidthsFitInner(t *testing.T) {
	for _, inner := range []int{76, 100, 156} {
		for c, sh := range sheets {
			widths := columnWidths(sh, inner)
			total := len(widths) - 1
			for _, w := range widths {
				total += w
			}
			if total != inner {
				t.Errorf("%s at %d: widths %v sum to %d", c, inner, widths, total)
			}
		}
	}
}
