package tui

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"
	"github.com/theirongolddev/breakeven/internal/source"
	"github.com/theirongolddev/breakeven/internal/store"
)

// column describes one column of a line-item grid. Derived columns are
// computed and cannot be edited.
type column struct {
	title   string
	width   int
	numeric bool
	derived bool
}

// gridRow is one rendered line. cells holds display text; edit holds the
// value a text input starts with.
type gridRow struct {
	id    string
	cells []string
	edit  []string
}

// sheet binds a collection to its columns, rows, and write path.
type sheet struct {
	collection model.Collection
	columns    []column
	rows       func(b model.Budget) []gridRow
	total      func(b model.Budget) []string
	commit     func(st *store.Store, id string, col int, raw string) bool
}

var sheets = map[model.Collection]sheet{
	model.CollectionOperating:  operatingSheet,
	model.CollectionDirect:     purchaseSheet(model.CollectionDirect),
	model.CollectionCollateral: purchaseSheet(model.CollectionCollateral),
	model.CollectionServices:   servicesSheet,
	model.CollectionMarketing:  marketingSheet,
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func text(raw string) *string {
	s := strings.TrimSpace(raw)
	return &s
}

func parsed(raw string) *float64 {
	v := source.ParseNumber(raw)
	return &v
}

// editable reports whether col can take input.
func (s sheet) editable(col int) bool {
	return col >= 0 && col < len(s.columns) && !s.columns[col].derived
}

// step moves from col by dir, skipping derived columns and wrapping.
func (s sheet) step(col, dir int) int {
	n := len(s.columns)
	for i := 0; i < n; i++ {
		col = (col + dir + n) % n
		if s.editable(col) {
			return col
		}
	}
	return col
}

var operatingSheet = sheet{
	collection: model.CollectionOperating,
	columns: []column{
		{title: "Category", width: 24},
		{title: "Budgeted", width: 14, numeric: true},
		{title: "Actual", width: 14, numeric: true},
		{title: "Variance", width: 14, derived: true},
	},
	rows: func(b model.Budget) []gridRow {
		sum := pipeline.SummarizeOperating(b.Operating)
		rows := make([]gridRow, len(sum.Lines))
		for i, l := range sum.Lines {
			rows[i] = gridRow{
				id:    l.ID,
				cells: []string{l.Category, cli.FormatCurrency(l.Budgeted), cli.FormatCurrency(l.Actual), cli.FormatVariance(l.Variance)},
				edit:  []string{l.Category, num(l.Budgeted), num(l.Actual), ""},
			}
		}
		return rows
	},
	total: func(b model.Budget) []string {
		sum := pipeline.SummarizeOperating(b.Operating)
		return []string{"Monthly total", cli.FormatCurrency(sum.TotalBudgeted), cli.FormatCurrency(sum.TotalActual), cli.FormatVariance(sum.Variance)}
	},
	commit: func(st *store.Store, id string, col int, raw string) bool {
		var p model.OperatingCostPatch
		switch col {
		case 0:
			p.Category = text(raw)
		case 1:
			p.BudgetedMonthly = parsed(raw)
		case 2:
			p.ActualMonthly = parsed(raw)
		default:
			return false
		}
		return st.UpdateOperatingCost(id, p)
	},
}

// purchaseSheet serves direct and collateral costs, which share a shape.
func purchaseSheet(c model.Collection) sheet {
	lines := func(b model.Budget) []model.LineCost {
		if c == model.CollectionDirect {
			return pipeline.DirectLines(b.Direct)
		}
		return pipeline.CollateralLines(b.Collateral)
	}
	return sheet{
		collection: c,
		columns: []column{
			{title: "Item", width: 22},
			{title: "Cost/Purchase", width: 14, numeric: true},
			{title: "Units/Purchase", width: 14, numeric: true},
			{title: "Used/Product", width: 13, numeric: true},
			{title: "Cost/Unit", width: 12, derived: true},
			{title: "Cost/Product", width: 13, derived: true},
		},
		rows: func(b model.Budget) []gridRow {
			derived := lines(b)
			rows := make([]gridRow, len(derived))
			for i, l := range derived {
				var cost, units, used float64
				if c == model.CollectionDirect {
					d := b.Direct[i]
					cost, units, used = d.CostPerPurchase, d.UnitsPerPurchase, d.AmountUsedPerProduct
				} else {
					d := b.Collateral[i]
					cost, units, used = d.CostPerPurchase, d.UnitsPerPurchase, d.AmountUsedPerProduct
				}
				rows[i] = gridRow{
					id: l.ID,
					cells: []string{l.Name, cli.FormatCurrency(cost), num(units), num(used),
						cli.FormatCurrency(l.CostPerUnit), cli.FormatCurrency(l.CostPerProduct)},
					edit: []string{l.Name, num(cost), num(units), num(used), "", ""},
				}
			}
			return rows
		},
		total: func(b model.Budget) []string {
			t := pipeline.TotalCollateral(b.Collateral)
			if c == model.CollectionDirect {
				t = pipeline.TotalDirect(b.Direct)
			}
			return []string{"Per product", "", "", "", "", cli.FormatCurrency(t)}
		},
		commit: func(st *store.Store, id string, col int, raw string) bool {
			var item *string
			var cost, units, used *float64
			switch col {
			case 0:
				item = text(raw)
			case 1:
				cost = parsed(raw)
			case 2:
				units = parsed(raw)
			case 3:
				used = parsed(raw)
			default:
				return false
			}
			if c == model.CollectionDirect {
				return st.UpdateDirectCost(id, model.DirectCostPatch{
					Item: item, CostPerPurchase: cost, UnitsPerPurchase: units, AmountUsedPerProduct: used,
				})
			}
			return st.UpdateCollateralCost(id, model.CollateralCostPatch{
				Item: item, CostPerPurchase: cost, UnitsPerPurchase: units, AmountUsedPerProduct: used,
			})
		},
	}
}

var servicesSheet = sheet{
	collection: model.CollectionServices,
	columns: []column{
		{title: "Service", width: 24},
		{title: "Cost/Unit", width: 14, numeric: true},
		{title: "Amount Used", width: 14, numeric: true},
		{title: "Cost/Product", width: 14, derived: true},
	},
	rows: func(b model.Budget) []gridRow {
		lines := pipeline.ServiceLines(b.Services)
		rows := make([]gridRow, len(lines))
		for i, l := range lines {
			s := b.Services[i]
			rows[i] = gridRow{
				id:    l.ID,
				cells: []string{l.Name, cli.FormatCurrency(s.CostPerUnit), num(s.AmountUsed), cli.FormatCurrency(l.CostPerProduct)},
				edit:  []string{l.Name, num(s.CostPerUnit), num(s.AmountUsed), ""},
			}
		}
		return rows
	},
	total: func(b model.Budget) []string {
		return []string{"Per product", "", "", cli.FormatCurrency(pipeline.TotalServices(b.Services))}
	},
	commit: func(st *store.Store, id string, col int, raw string) bool {
		var p model.ProductionServicePatch
		switch col {
		case 0:
			p.Service = text(raw)
		case 1:
			p.CostPerUnit = parsed(raw)
		case 2:
			p.AmountUsed = parsed(raw)
		default:
			return false
		}
		return st.UpdateProductionService(id, p)
	},
}

var marketingSheet = sheet{
	collection: model.CollectionMarketing,
	columns: []column{
		{title: "Channel", width: 24},
		{title: "Budget/Batch", width: 14, numeric: true},
		{title: "Products/Batch", width: 15, numeric: true},
		{title: "Cost/Product", width: 14, derived: true},
	},
	rows: func(b model.Budget) []gridRow {
		lines := pipeline.MarketingLines(b.Marketing)
		rows := make([]gridRow, len(lines))
		for i, l := range lines {
			m := b.Marketing[i]
			rows[i] = gridRow{
				id:    l.ID,
				cells: []string{l.Name, cli.FormatCurrency(m.BudgetPerBatch), cli.FormatUnits(m.AmountPerBatch), cli.FormatCurrency(l.CostPerProduct)},
				edit:  []string{l.Name, num(m.BudgetPerBatch), num(m.AmountPerBatch), ""},
			}
		}
		return rows
	},
	total: func(b model.Budget) []string {
		return []string{"Per product", "", "", cli.FormatCurrency(pipeline.TotalMarketing(b.Marketing))}
	},
	commit: func(st *store.Store, id string, col int, raw string) bool {
		var p model.MarketingCostPatch
		switch col {
		case 0:
			p.Channel = text(raw)
		case 1:
			p.BudgetPerBatch = parsed(raw)
		case 2:
			p.AmountPerBatch = parsed(raw)
		default:
			return false
		}
		return st.UpdateMarketingCost(id, p)
	},
}
