package model

import (
	"encoding/json"
	"testing"
)

func TestApplyMergesOnlySetFields(t *testing.T) {
	d := DirectCost{ID: "d1", Item: "Flour", CostPerPurchase: 20, UnitsPerPurchase: 10, AmountUsedPerProduct: 3}
	got := d.Apply(DirectCostPatch{CostPerPurchase: Ptr(25.0)})
	want := DirectCost{ID: "d1", Item: "Flour", CostPerPurchase: 25, UnitsPerPurchase: 10, AmountUsedPerProduct: 3}
	if got != want {
		t.Fatalf("Apply = %+v, want %+v", got, want)
	}
	if d.CostPerPurchase != 20 {
		t.Fatal("Apply modified its receiver")
	}
}

func TestApplyZeroIsAValue(t *testing.T) {
	a := BusinessAssumptions{TicketPrice: 50, PotentialClients: 1000, ConversionRate: 5}
	got := a.Apply(AssumptionsPatch{TicketPrice: Ptr(0.0)})
	if got.TicketPrice != 0 || got.PotentialClients != 1000 {
		t.Fatalf("Apply = %+v", got)
	}
}

func TestPatchJSONOmitsUnset(t *testing.T) {
	var p OperatingCostPatch
	if err := json.Unmarshal([]byte(`{"actualMonthly": 900}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Category != nil || p.BudgetedMonthly != nil {
		t.Fatalf("unset fields decoded as set: %+v", p)
	}
	got := OperatingCost{ID: "o", Category: "Rent", BudgetedMonthly: 1000}.Apply(p)
	if got.ActualMonthly != 900 || got.BudgetedMonthly != 1000 {
		t.Fatalf("Apply = %+v", got)
	}
}

func TestParseCollection(t *testing.T) {
	for _, c := range Collections {
		got, ok := ParseCollection(string(c))
		if !ok || got != c {
			t.Errorf("ParseCollection(%q) = %q, %v", c, got, ok)
		}
	}
	if _, ok := ParseCollection("assumptions"); ok {
		t.Error("assumptions is not a line-item collection")
	}
}

func TestBudgetLen(t *testing.T) {
	b := Budget{Direct: make([]DirectCost, 2), Marketing: make([]MarketingCost, 1)}
	if b.Len(CollectionDirect) != 2 || b.Len(CollectionMarketing) != 1 || b.Len(CollectionOperating) != 0 {
		t.Fatalf("Len mismatch for %+v", b)
	}
}

func TestBreakevenStateText(t *testing.T) {
	tests := []struct {
		s       BreakevenState
		name    string
		message bool
	}{
		{BreakevenReachable, "reachable", false},
		{BreakevenNoPrice, "no-price", true},
		{BreakevenNegativeMargin, "negative-margin", true},
	}
	for _, tt := range tests {
		if tt.s.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.s.String(), tt.name)
		}
		if (tt.s.Message() != "") != tt.message {
			t.Errorf("%s: Message() = %q", tt.name, tt.s.Message())
		}
	}

	data, err := json.Marshal(Projection{BreakevenState: BreakevenNoPrice})
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out["breakevenState"] != "no-price" {
		t.Errorf("breakevenState = %v, want no-price", out["breakevenState"])
	}
}

func TestCoverage(t *testing.T) {
	p := Projection{BreakevenComputable: true, BreakevenUnits: 50, ProjectedUnitSales: 100}
	if p.Coverage() != 2 {
		t.Errorf("Coverage() = %v, want 2", p.Coverage())
	}
	p.BreakevenComputable = false
	if p.Coverage() != 0 {
		t.Errorf("Coverage() = %v, want 0 when not computable", p.Coverage())
	}
}
