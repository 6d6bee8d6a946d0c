package source

import "github.com/theirongolddev/breakeven/internal/model"

// worksheetFile mirrors the on-disk TOML layout of a worksheet.
type worksheetFile struct {
	Name        string         `toml:"name"`
	Assumptions rawAssumptions `toml:"assumptions"`
	Operating   []rawOperating `toml:"operating"`
	Direct      []rawPurchase  `toml:"direct"`
	Collateral  []rawPurchase  `toml:"collateral"`
	Services    []rawService   `toml:"services"`
	Marketing   []rawMarketing `toml:"marketing"`
}

type rawAssumptions struct {
	TicketPrice      Number `toml:"ticket_price"`
	PotentialClients Number `toml:"potential_clients"`
	ConversionRate   Number `toml:"conversion_rate"`
}

type rawOperating struct {
	ID              string `toml:"id"`
	Category        string `toml:"category"`
	BudgetedMonthly Number `toml:"budgeted_monthly"`
	ActualMonthly   Number `toml:"actual_monthly"`
}

type rawPurchase struct {
	ID                   string `toml:"id"`
	Item                 string `toml:"item"`
	CostPerPurchase      Number `toml:"cost_per_purchase"`
	UnitsPerPurchase     Number `toml:"units_per_purchase"`
	AmountUsedPerProduct Number `toml:"amount_used_per_product"`
}

type rawService struct {
	ID          string `toml:"id"`
	Service     string `toml:"service"`
	CostPerUnit Number `toml:"cost_per_unit"`
	AmountUsed  Number `toml:"amount_used"`
}

type rawMarketing struct {
	ID             string `toml:"id"`
	Channel        string `toml:"channel"`
	BudgetPerBatch Number `toml:"budget_per_batch"`
	AmountPerBatch Number `toml:"amount_per_batch"`
}

// Worksheet is a parsed worksheet ready to load into a store.
type Worksheet struct {
	Name   string
	Path   string
	Budget model.Budget

	// Warnings lists lines whose id was missing or repeated and was replaced.
	Warnings []string
}

// DiscoveredFile represents a worksheet found during directory scanning.
type DiscoveredFile struct {
	Path string
	Name string // path relative to the scanned dir, without ".toml"
}
