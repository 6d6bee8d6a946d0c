package store

import (
	"testing"

	"github.com/theirongolddev/breakeven/internal/model"
)

func directIDs(s *Store) []string {
	var ids []string
	for _, d := range s.DirectCosts() {
		ids = append(ids, d.ID)
	}
	return ids
}

func equalIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestNewStoreDefaults(t *testing.T) {
	s := New()
	if got := s.Assumptions(); got != (model.BusinessAssumptions{}) {
		t.Fatalf("default assumptions = %+v, want zero", got)
	}
	if s.DirectCosts() == nil {
		t.Fatal("DirectCosts() = nil, want empty slice")
	}
	if s.Version() != 0 {
		t.Fatalf("Version() = %d, want 0", s.Version())
	}
}

func TestAddAppendsInOrder(t *testing.T) {
	s := New()
	s.AddDirectCost(model.DirectCost{ID: "a"})
	s.AddDirectCost(model.DirectCost{ID: "b"})
	s.AddDirectCost(model.DirectCost{ID: "c"})
	equalIDs(t, directIDs(s), []string{"a", "b", "c"})
	if s.Version() != 3 {
		t.Fatalf("Version() = %d, want 3", s.Version())
	}
}

func TestUpdatePreservesOrder(t *testing.T) {
	s := New()
	s.AddDirectCost(model.DirectCost{ID: "a"})
	s.AddDirectCost(model.DirectCost{ID: "b", Item: "Flour"})
	s.AddDirectCost(model.DirectCost{ID: "c"})

	ok := s.UpdateDirectCost("b", model.DirectCostPatch{CostPerPurchase: model.Ptr(20.0)})
	if !ok {
		t.Fatal("UpdateDirectCost reported no match")
	}
	equalIDs(t, directIDs(s), []string{"a", "b", "c"})

	got := s.DirectCosts()[1]
	if got.CostPerPurchase != 20 {
		t.Errorf("CostPerPurchase = %v, want 20", got.CostPerPurchase)
	}
	if got.Item != "Flour" {
		t.Errorf("Item = %q, want untouched %q", got.Item, "Flour")
	}
}

func TestUpdateEmptyPatchLeavesRecord(t *testing.T) {
	s := New()
	orig := model.ProductionService{ID: "s1", Service: "Printing", CostPerUnit: 2, AmountUsed: 3}
	s.AddProductionService(orig)

	s.UpdateProductionService("s1", model.ProductionServicePatch{})
	if got := s.ProductionServices()[0]; got != orig {
		t.Fatalf("after empty patch = %+v, want %+v", got, orig)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.AddMarketingCost(model.MarketingCost{ID: "m1", BudgetPerBatch: 100})
	before := s.Version()

	if s.UpdateMarketingCost("missing", model.MarketingCostPatch{BudgetPerBatch: model.Ptr(5.0)}) {
		t.Fatal("UpdateMarketingCost reported a match for unknown id")
	}
	if s.Version() != before {
		t.Fatalf("Version() = %d, want unchanged %d", s.Version(), before)
	}
	if got := s.MarketingCosts()[0].BudgetPerBatch; got != 100 {
		t.Fatalf("BudgetPerBatch = %v, want 100", got)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := New()
	s.AddOperatingCost(model.OperatingCost{ID: "rent"})
	s.AddOperatingCost(model.OperatingCost{ID: "wifi"})

	if !s.RemoveOperatingCost("rent") {
		t.Fatal("first remove reported no match")
	}
	if s.RemoveOperatingCost("rent") {
		t.Fatal("second remove reported a match")
	}
	ops := s.OperatingCosts()
	if len(ops) != 1 || ops[0].ID != "wifi" {
		t.Fatalf("operating = %+v, want only wifi", ops)
	}
}

func TestDuplicateIDsFirstMatchWins(t *testing.T) {
	s := New()
	s.AddCollateralCost(model.CollateralCost{ID: "dup", Item: "first"})
	s.AddCollateralCost(model.CollateralCost{ID: "dup", Item: "second"})

	s.UpdateCollateralCost("dup", model.CollateralCostPatch{Item: model.Ptr("changed")})
	got := s.CollateralCosts()
	if got[0].Item != "changed" || got[1].Item != "second" {
		t.Fatalf("after update = %+v, want only first changed", got)
	}

	s.RemoveCollateralCost("dup")
	got = s.CollateralCosts()
	if len(got) != 1 || got[0].Item != "second" {
		t.Fatalf("after remove = %+v, want second remaining", got)
	}
}

func TestSnapshotIsCopyOnWrite(t *testing.T) {
	s := New()
	s.AddDirectCost(model.DirectCost{ID: "a", CostPerPurchase: 1})
	before := s.DirectCosts()

	s.UpdateDirectCost("a", model.DirectCostPatch{CostPerPurchase: model.Ptr(9.0)})
	s.AddDirectCost(model.DirectCost{ID: "b"})

	if len(before) != 1 || before[0].CostPerPurchase != 1 {
		t.Fatalf("earlier slice changed to %+v", before)
	}
	if after := s.DirectCosts(); len(after) != 2 || after[0].CostPerPurchase != 9 {
		t.Fatalf("current slice = %+v", after)
	}
}

func TestSetAssumptionsMerges(t *testing.T) {
	s := New()
	s.SetAssumptions(model.AssumptionsPatch{TicketPrice: model.Ptr(50.0)})
	s.SetAssumptions(model.AssumptionsPatch{ConversionRate: model.Ptr(10.0)})

	want := model.BusinessAssumptions{TicketPrice: 50, ConversionRate: 10}
	if got := s.Assumptions(); got != want {
		t.Fatalf("assumptions = %+v, want %+v", got, want)
	}
}

func TestLoadReplacesState(t *testing.T) {
	s := New()
	s.AddDirectCost(model.DirectCost{ID: "old"})

	src := []model.OperatingCost{{ID: "rent", ActualMonthly: 1000}}
	s.Load(model.Budget{
		Operating:   src,
		Assumptions: model.BusinessAssumptions{TicketPrice: 25},
	})
	src[0].ActualMonthly = 1

	snap := s.Snapshot()
	if len(snap.Direct) != 0 {
		t.Errorf("direct = %+v, want empty", snap.Direct)
	}
	if len(snap.Operating) != 1 || snap.Operating[0].ActualMonthly != 1000 {
		t.Errorf("operating = %+v, want rent at 1000", snap.Operating)
	}
	if snap.Assumptions.TicketPrice != 25 {
		t.Errorf("ticket price = %v, want 25", snap.Assumptions.TicketPrice)
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s := New()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.AddProductionService(model.ProductionService{ID: "svc"})
	s.RemoveProductionService("nope")
	s.SetAssumptions(model.AssumptionsPatch{PotentialClients: model.Ptr(100.0)})

	ev := <-ch
	if ev.Op != OpAdd || ev.Collection != model.CollectionServices || ev.ID != "svc" || ev.Version != 1 {
		t.Fatalf("first event = %+v", ev)
	}
	ev = <-ch
	if ev.Op != OpSet || ev.Collection != model.CollectionAssumptions || ev.Version != 2 {
		t.Fatalf("second event = %+v", ev)
	}
	select {
	case ev := <-ch:
		t.Fatalf("unexpected extra event %+v", ev)
	default:
	}
}

func TestSubscriberNeverBlocksWriters(t *testing.T) {
	s := New(WithSubscriberBuffer(1))
	ch, cancel := s.Subscribe()

	for i := 0; i < 10; i++ {
		s.SetAssumptions(model.AssumptionsPatch{TicketPrice: model.Ptr(float64(i))})
	}
	if s.Version() != 10 {
		t.Fatalf("Version() = %d, want 10", s.Version())
	}
	if ev := <-ch; ev.Version != 1 {
		t.Fatalf("buffered event version = %d, want 1", ev.Version)
	}

	cancel()
	cancel()
	if _, open := <-ch; open {
		t.Fatal("channel still open after unsubscribe")
	}
	if s.SubscriberCount() != 0 {
		t.Fatalf("SubscriberCount() = %d, want 0", s.SubscriberCount())
	}
}

func TestAddEmpty(t *testing.T) {
	s := New()
	for _, c := range model.Collections {
		if !s.AddEmpty(c, "x") {
			t.Fatalf("AddEmpty(%s) = false", c)
		}
	}
	snap := s.Snapshot()
	for _, c := range model.Collections {
		if snap.Len(c) != 1 {
			t.Errorf("%s len = %d, want 1", c, snap.Len(c))
		}
	}
	if s.AddEmpty(model.CollectionAssumptions, "x") {
		t.Error("AddEmpty(assumptions) = true, want false")
	}
}
