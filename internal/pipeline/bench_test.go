package pipeline

import (
	"fmt"
	"testing"

	"github.com/theirongolddev/breakeven/internal/model"
)

func largeBudget(n int) model.Budget {
	var b model.Budget
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("line-%d", i)
		b.Operating = append(b.Operating, model.OperatingCost{ID: id, BudgetedMonthly: 100, ActualMonthly: 95})
		b.Direct = append(b.Direct, model.DirectCost{ID: id, CostPerPurchase: 12, UnitsPerPurchase: 24, AmountUsedPerProduct: 2})
		b.Collateral = append(b.Collateral, model.CollateralCost{ID: id, CostPerPurchase: 30, UnitsPerPurchase: 100, AmountUsedPerProduct: 1})
		b.Services = append(b.Services, model.ProductionService{ID: id, CostPerUnit: 0.5, AmountUsed: 3})
		b.Marketing = append(b.Marketing, model.MarketingCost{ID: id, BudgetPerBatch: 200, AmountPerBatch: 50})
	}
	b.Assumptions = model.BusinessAssumptions{TicketPrice: 500, PotentialClients: 10_000, ConversionRate: 2.5}
	return b
}

func BenchmarkAggregateBudget(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		budget := largeBudget(n)
		b.Run(fmt.Sprintf("lines=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = AggregateBudget(budget)
			}
		})
	}
}

func BenchmarkSummarizeOperating(b *testing.B) {
	budget := largeBudget(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SummarizeOperating(budget.Operating)
	}
}
