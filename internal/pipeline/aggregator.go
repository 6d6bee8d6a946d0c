// Package pipeline derives cost breakdowns, margin, breakeven and profit
// projections from budget inputs. Every function is pure and recomputes from
// scratch.
package pipeline

import (
	"math"

	"github.com/theirongolddev/breakeven/internal/model"
)

// Aggregate computes every derived figure from the five collections and the
// sales assumptions.
func Aggregate(
	operating []model.OperatingCost,
	direct []model.DirectCost,
	collateral []model.CollateralCost,
	services []model.ProductionService,
	marketing []model.MarketingCost,
	a model.BusinessAssumptions,
) model.Projection {
	totalDirect := TotalDirect(direct)
	totalCollateral := TotalCollateral(collateral)
	totalServices := TotalServices(services)
	totalMarketing := TotalMarketing(marketing)

	p := Project(
		TotalFixedCosts(operating),
		totalDirect+totalCollateral+totalServices+totalMarketing,
		a,
	)
	p.TotalDirect = totalDirect
	p.TotalCollateral = totalCollateral
	p.TotalServices = totalServices
	p.TotalMarketing = totalMarketing
	return p
}

// AggregateBudget is Aggregate over a store snapshot.
func AggregateBudget(b model.Budget) model.Projection {
	return Aggregate(b.Operating, b.Direct, b.Collateral, b.Services, b.Marketing, b.Assumptions)
}

// Project computes margin, sales, profit and breakeven from precomputed
// fixed overhead and variable cost per unit. Category totals are left zero.
func Project(totalFixed, variablePerUnit float64, a model.BusinessAssumptions) model.Projection {
	p := model.Projection{
		TotalFixedCosts:          totalFixed,
		TotalVariableCostPerUnit: variablePerUnit,
		TicketPrice:              a.TicketPrice,
	}

	p.MarginPerSale = a.TicketPrice - variablePerUnit
	p.IsNegativeMargin = variablePerUnit >= a.TicketPrice

	p.ProjectedUnitSales = a.PotentialClients * (a.ConversionRate / 100)
	p.GrossRevenue = p.ProjectedUnitSales * a.TicketPrice
	p.TotalMonthlyVariableCosts = p.ProjectedUnitSales * variablePerUnit
	p.GrossProfit = p.GrossRevenue - p.TotalMonthlyVariableCosts
	p.NetProfit = p.GrossProfit - totalFixed

	if !p.IsNegativeMargin && p.MarginPerSale > 0 {
		p.BreakevenComputable = true
		p.BreakevenUnits = math.Ceil(totalFixed / p.MarginPerSale)
		p.BreakevenRevenue = p.BreakevenUnits * a.TicketPrice
	}

	switch {
	case p.BreakevenComputable:
		p.BreakevenState = model.BreakevenReachable
	case a.TicketPrice == 0:
		p.BreakevenState = model.BreakevenNoPrice
	default:
		p.BreakevenState = model.BreakevenNegativeMargin
	}

	return p
}
