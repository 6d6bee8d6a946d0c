// Package source discovers and parses budget worksheet files and normalizes
// numeric input.
package source

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/theirongolddev/breakeven/internal/model"
)

// Template is a commented starter worksheet.
//
//go:embed template.toml
var Template string

// IDFunc generates ids for lines that lack one.
type IDFunc func() string

// LoadFile reads and parses the worksheet at path.
func LoadFile(path string) (Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Worksheet{}, fmt.Errorf("reading worksheet: %w", err)
	}
	ws, err := Parse(data, uuid.NewString)
	if err != nil {
		return Worksheet{}, fmt.Errorf("%s: %w", path, err)
	}
	ws.Path = path
	if ws.Name == "" {
		ws.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ws, nil
}

// Parse decodes worksheet TOML. Lines without an id, or whose id repeats an
// earlier line in the same collection, get a fresh id from newID.
func Parse(data []byte, newID IDFunc) (Worksheet, error) {
	var f worksheetFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return Worksheet{}, fmt.Errorf("parsing worksheet: %w", err)
	}

	ws := Worksheet{Name: f.Name}
	b := &ws.Budget

	b.Assumptions = model.BusinessAssumptions{
		TicketPrice:      float64(f.Assumptions.TicketPrice),
		PotentialClients: float64(f.Assumptions.PotentialClients),
		ConversionRate:   float64(f.Assumptions.ConversionRate),
	}

	ids := newIDAssigner(newID, &ws.Warnings)

	for i, r := range f.Operating {
		b.Operating = append(b.Operating, model.OperatingCost{
			ID:              ids.assign(model.CollectionOperating, i, r.ID),
			Category:        r.Category,
			BudgetedMonthly: float64(r.BudgetedMonthly),
			ActualMonthly:   float64(r.ActualMonthly),
		})
	}
	for i, r := range f.Direct {
		b.Direct = append(b.Direct, model.DirectCost{
			ID:                   ids.assign(model.CollectionDirect, i, r.ID),
			Item:                 r.Item,
			CostPerPurchase:      float64(r.CostPerPurchase),
			UnitsPerPurchase:     float64(r.UnitsPerPurchase),
			AmountUsedPerProduct: float64(r.AmountUsedPerProduct),
		})
	}
	for i, r := range f.Collateral {
		b.Collateral = append(b.Collateral, model.CollateralCost{
			ID:                   ids.assign(model.CollectionCollateral, i, r.ID),
			Item:                 r.Item,
			CostPerPurchase:      float64(r.CostPerPurchase),
			UnitsPerPurchase:     float64(r.UnitsPerPurchase),
			AmountUsedPerProduct: float64(r.AmountUsedPerProduct),
		})
	}
	for i, r := range f.Services {
		b.Services = append(b.Services, model.ProductionService{
			ID:          ids.assign(model.CollectionServices, i, r.ID),
			Service:     r.Service,
			CostPerUnit: float64(r.CostPerUnit),
			AmountUsed:  float64(r.AmountUsed),
		})
	}
	for i, r := range f.Marketing {
		b.Marketing = append(b.Marketing, model.MarketingCost{
			ID:             ids.assign(model.CollectionMarketing, i, r.ID),
			Channel:        r.Channel,
			BudgetPerBatch: float64(r.BudgetPerBatch),
			AmountPerBatch: float64(r.AmountPerBatch),
		})
	}

	return ws, nil
}

type idAssigner struct {
	newID    IDFunc
	seen     map[model.Collection]map[string]struct{}
	warnings *[]string
}

func newIDAssigner(newID IDFunc, warnings *[]string) *idAssigner {
	if newID == nil {
		newID = uuid.NewString
	}
	return &idAssigner{
		newID:    newID,
		seen:     make(map[model.Collection]map[string]struct{}),
		warnings: warnings,
	}
}

func (a *idAssigner) assign(c model.Collection, idx int, id string) string {
	seen := a.seen[c]
	if seen == nil {
		seen = make(map[string]struct{})
		a.seen[c] = seen
	}

	if _, dup := seen[id]; dup {
		*a.warnings = append(*a.warnings, fmt.Sprintf("%s line %d: duplicate id %q replaced", c, idx+1, id))
		id = ""
	}
	if id == "" {
		id = a.newID()
	}
	seen[id] = struct{}{}
	return id
}
