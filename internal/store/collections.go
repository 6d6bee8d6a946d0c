package store

import (
	"slices"

	"github.com/theirongolddev/breakeven/internal/model"
)

type lineItem interface {
	LineID() string
}

func appended[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

func patched[T lineItem](items []T, id string, apply func(T) T) ([]T, bool) {
	i := slices.IndexFunc(items, func(it T) bool { return it.LineID() == id })
	if i < 0 {
		return items, false
	}
	out := slices.Clone(items)
	out[i] = apply(out[i])
	return out, true
}

func removed[T lineItem](items []T, id string) ([]T, bool) {
	i := slices.IndexFunc(items, func(it T) bool { return it.LineID() == id })
	if i < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}

// Operating costs.

func (s *Store) AddOperatingCost(c model.OperatingCost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.Operating = appended(s.budget.Operating, c)
	s.commitLocked(model.CollectionOperating, OpAdd, c.ID)
}

func (s *Store) UpdateOperatingCost(id string, p model.OperatingCostPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := patched(s.budget.Operating, id, func(c model.OperatingCost) model.OperatingCost {
		return c.Apply(p)
	})
	if !ok {
		return false
	}
	s.budget.Operating = next
	s.commitLocked(model.CollectionOperating, OpUpdate, id)
	return true
}

func (s *Store) RemoveOperatingCost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := removed(s.budget.Operating, id)
	if !ok {
		return false
	}
	s.budget.Operating = next
	s.commitLocked(model.CollectionOperating, OpRemove, id)
	return true
}

// Direct costs.

func (s *Store) AddDirectCost(c model.DirectCost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.Direct = appended(s.budget.Direct, c)
	s.commitLocked(model.CollectionDirect, OpAdd, c.ID)
}

func (s *Store) UpdateDirectCost(id string, p model.DirectCostPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := patched(s.budget.Direct, id, func(c model.DirectCost) model.DirectCost {
		return c.Apply(p)
	})
	if !ok {
		return false
	}
	s.budget.Direct = next
	s.commitLocked(model.CollectionDirect, OpUpdate, id)
	return true
}

func (s *Store) RemoveDirectCost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := removed(s.budget.Direct, id)
	if !ok {
		return false
	}
	s.budget.Direct = next
	s.commitLocked(model.CollectionDirect, OpRemove, id)
	return true
}

// Collateral costs.

func (s *Store) AddCollateralCost(c model.CollateralCost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.Collateral = appended(s.budget.Collateral, c)
	s.commitLocked(model.CollectionCollateral, OpAdd, c.ID)
}

func (s *Store) UpdateCollateralCost(id string, p model.CollateralCostPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := patched(s.budget.Collateral, id, func(c model.CollateralCost) model.CollateralCost {
		return c.Apply(p)
	})
	if !ok {
		return false
	}
	s.budget.Collateral = next
	s.commitLocked(model.CollectionCollateral, OpUpdate, id)
	return true
}

func (s *Store) RemoveCollateralCost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := removed(s.budget.Collateral, id)
	if !ok {
		return false
	}
	s.budget.Collateral = next
	s.commitLocked(model.CollectionCollateral, OpRemove, id)
	return true
}

// Production services.

func (s *Store) AddProductionService(c model.ProductionService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.Services = appended(s.budget.Services, c)
	s.commitLocked(model.CollectionServices, OpAdd, c.ID)
}

func (s *Store) UpdateProductionService(id string, p model.ProductionServicePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := patched(s.budget.Services, id, func(c model.ProductionService) model.ProductionService {
		return c.Apply(p)
	})
	if !ok {
		return false
	}
	s.budget.Services = next
	s.commitLocked(model.CollectionServices, OpUpdate, id)
	return true
}

func (s *Store) RemoveProductionService(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := removed(s.budget.Services, id)
	if !ok {
		return false
	}
	s.budget.Services = next
	s.commitLocked(model.CollectionServices, OpRemove, id)
	return true
}

// Marketing costs.

func (s *Store) AddMarketingCost(c model.MarketingCost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.Marketing = appended(s.budget.Marketing, c)
	s.commitLocked(model.CollectionMarketing, OpAdd, c.ID)
}

func (s *Store) UpdateMarketingCost(id string, p model.MarketingCostPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := patched(s.budget.Marketing, id, func(c model.MarketingCost) model.MarketingCost {
		return c.Apply(p)
	})
	if !ok {
		return false
	}
	s.budget.Marketing = next
	s.commitLocked(model.CollectionMarketing, OpUpdate, id)
	return true
}

func (s *Store) RemoveMarketingCost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := removed(s.budget.Marketing, id)
	if !ok {
		return false
	}
	s.budget.Marketing = next
	s.commitLocked(model.CollectionMarketing, OpRemove, id)
	return true
}

// Remove deletes the line with the given id from collection c.
func (s *Store) Remove(c model.Collection, id string) bool {
	switch c {
	case model.CollectionOperating:
		return s.RemoveOperatingCost(id)
	case model.CollectionDirect:
		return s.RemoveDirectCost(id)
	case model.CollectionCollateral:
		return s.RemoveCollateralCost(id)
	case model.CollectionServices:
		return s.RemoveProductionService(id)
	case model.CollectionMarketing:
		return s.RemoveMarketingCost(id)
	}
	return false
}

// AddEmpty appends a zero-valued line with the given id to collection c.
func (s *Store) AddEmpty(c model.Collection, id string) bool {
	switch c {
	case model.CollectionOperating:
		s.AddOperatingCost(model.OperatingCost{ID: id})
	case model.CollectionDirect:
		s.AddDirectCost(model.DirectCost{ID: id})
	case model.CollectionCollateral:
		s.AddCollateralCost(model.CollateralCost{ID: id})
	case model.CollectionServices:
		s.AddProductionService(model.ProductionService{ID: id})
	case model.CollectionMarketing:
		s.AddMarketingCost(model.MarketingCost{ID: id})
	default:
		return false
	}
	return true
}
