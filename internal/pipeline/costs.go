package pipeline

import "github.com/theirongolddev/breakeven/internal/model"

// PurchaseCostPerUnit spreads a bulk purchase over the units it contains.
// A purchase with no units costs nothing per unit.
func PurchaseCostPerUnit(costPerPurchase, unitsPerPurchase float64) float64 {
	if unitsPerPurchase > 0 {
		return costPerPurchase / unitsPerPurchase
	}
	return 0
}

// DirectCostPerProduct is the material cost consumed by one product.
func DirectCostPerProduct(d model.DirectCost) float64 {
	return PurchaseCostPerUnit(d.CostPerPurchase, d.UnitsPerPurchase) * d.AmountUsedPerProduct
}

// CollateralCostPerProduct is the collateral cost consumed by one product.
func CollateralCostPerProduct(c model.CollateralCost) float64 {
	return PurchaseCostPerUnit(c.CostPerPurchase, c.UnitsPerPurchase) * c.AmountUsedPerProduct
}

// ServiceCostPerProduct is the service cost incurred by one product.
func ServiceCostPerProduct(s model.ProductionService) float64 {
	return s.CostPerUnit * s.AmountUsed
}

// MarketingCostPerProduct spreads a channel budget across a batch.
func MarketingCostPerProduct(m model.MarketingCost) float64 {
	if m.AmountPerBatch > 0 {
		return m.BudgetPerBatch / m.AmountPerBatch
	}
	return 0
}

func TotalDirect(items []model.DirectCost) float64 {
	var total float64
	for _, d := range items {
		total += DirectCostPerProduct(d)
	}
	return total
}

func TotalCollateral(items []model.CollateralCost) float64 {
	var total float64
	for _, c := range items {
		total += CollateralCostPerProduct(c)
	}
	return total
}

func TotalServices(items []model.ProductionService) float64 {
	var total float64
	for _, s := range items {
		total += ServiceCostPerProduct(s)
	}
	return total
}

func TotalMarketing(items []model.MarketingCost) float64 {
	var total float64
	for _, m := range items {
		total += MarketingCostPerProduct(m)
	}
	return total
}

// TotalFixedCosts sums actual (not budgeted) monthly overhead.
func TotalFixedCosts(items []model.OperatingCost) float64 {
	var total float64
	for _, o := range items {
		total += o.ActualMonthly
	}
	return total
}

// DirectLines returns per-line figures in input order.
func DirectLines(items []model.DirectCost) []model.LineCost {
	out := make([]model.LineCost, 0, len(items))
	for _, d := range items {
		out = append(out, model.LineCost{
			ID:             d.ID,
			Name:           d.Item,
			CostPerUnit:    PurchaseCostPerUnit(d.CostPerPurchase, d.UnitsPerPurchase),
			CostPerProduct: DirectCostPerProduct(d),
		})
	}
	return out
}

// CollateralLines returns per-line figures in input order.
func CollateralLines(items []model.CollateralCost) []model.LineCost {
	out := make([]model.LineCost, 0, len(items))
	for _, c := range items {
		out = append(out, model.LineCost{
			ID:             c.ID,
			Name:           c.Item,
			CostPerUnit:    PurchaseCostPerUnit(c.CostPerPurchase, c.UnitsPerPurchase),
			CostPerProduct: CollateralCostPerProduct(c),
		})
	}
	return out
}

// ServiceLines returns per-line figures in input order.
func ServiceLines(items []model.ProductionService) []model.LineCost {
	out := make([]model.LineCost, 0, len(items))
	for _, s := range items {
		out = append(out, model.LineCost{
			ID:             s.ID,
			Name:           s.Service,
			CostPerUnit:    s.CostPerUnit,
			CostPerProduct: ServiceCostPerProduct(s),
		})
	}
	return out
}

// MarketingLines returns per-line figures in input order. CostPerUnit and
// CostPerProduct are the same figure for marketing.
func MarketingLines(items []model.MarketingCost) []model.LineCost {
	out := make([]model.LineCost, 0, len(items))
	for _, m := range items {
		per := MarketingCostPerProduct(m)
		out = append(out, model.LineCost{
			ID:             m.ID,
			Name:           m.Channel,
			CostPerUnit:    per,
			CostPerProduct: per,
		})
	}
	return out
}

// SummarizeOperating computes budget variance and annual figures.
func SummarizeOperating(items []model.OperatingCost) model.OperatingSummary {
	s := model.OperatingSummary{Lines: make([]model.OperatingLine, 0, len(items))}
	for _, o := range items {
		s.Lines = append(s.Lines, model.OperatingLine{
			ID:       o.ID,
			Category: o.Category,
			Budgeted: o.BudgetedMonthly,
			Actual:   o.ActualMonthly,
			Variance: o.BudgetedMonthly - o.ActualMonthly,
		})
		s.TotalBudgeted += o.BudgetedMonthly
		s.TotalActual += o.ActualMonthly
	}
	s.Variance = s.TotalBudgeted - s.TotalActual
	s.AnnualBudgeted = s.TotalBudgeted * 12
	s.AnnualActual = s.TotalActual * 12
	return s
}
