// Package model defines domain types for breakeven budgets and projections.
package model

// OperatingCost is a fixed monthly overhead line (rent, insurance, software).
type OperatingCost struct {
	ID              string  `json:"id" toml:"id"`
	Category        string  `json:"category" toml:"category"`
	BudgetedMonthly float64 `json:"budgetedMonthly" toml:"budgeted_monthly"`
	ActualMonthly   float64 `json:"actualMonthly" toml:"actual_monthly"`
}

// DirectCost is a material bought in bulk and consumed per product.
type DirectCost struct {
	ID                   string  `json:"id" toml:"id"`
	Item                 string  `json:"item" toml:"item"`
	CostPerPurchase      float64 `json:"costPerPurchase" toml:"cost_per_purchase"`
	UnitsPerPurchase     float64 `json:"unitsPerPurchase" toml:"units_per_purchase"`
	AmountUsedPerProduct float64 `json:"amountUsedPerProduct" toml:"amount_used_per_product"`
}

// CollateralCost is packaging or print material, shaped like DirectCost.
type CollateralCost struct {
	ID                   string  `json:"id" toml:"id"`
	Item                 string  `json:"item" toml:"item"`
	CostPerPurchase      float64 `json:"costPerPurchase" toml:"cost_per_purchase"`
	UnitsPerPurchase     float64 `json:"unitsPerPurchase" toml:"units_per_purchase"`
	AmountUsedPerProduct float64 `json:"amountUsedPerProduct" toml:"amount_used_per_product"`
}

// ProductionService is an outsourced service billed per unit of use.
type ProductionService struct {
	ID          string  `json:"id" toml:"id"`
	Service     string  `json:"service" toml:"service"`
	CostPerUnit float64 `json:"costPerUnit" toml:"cost_per_unit"`
	AmountUsed  float64 `json:"amountUsed" toml:"amount_used"`
}

// MarketingCost is a channel budget spread over a batch of products.
type MarketingCost struct {
	ID             string  `json:"id" toml:"id"`
	Channel        string  `json:"channel" toml:"channel"`
	BudgetPerBatch float64 `json:"budgetPerBatch" toml:"budget_per_batch"`
	AmountPerBatch float64 `json:"amountPerBatch" toml:"amount_per_batch"`
}

// BusinessAssumptions holds the sales inputs. The zero value is the default.
type BusinessAssumptions struct {
	TicketPrice      float64 `json:"ticketPrice" toml:"ticket_price"`
	PotentialClients float64 `json:"potentialClients" toml:"potential_clients"`
	ConversionRate   float64 `json:"conversionRate" toml:"conversion_rate"` // percent, 0-100
}

// LineID returns the caller-assigned identifier.
func (c OperatingCost) LineID() string { return c.ID }

// LineID returns the caller-assigned identifier.
func (c DirectCost) LineID() string { return c.ID }

// LineID returns the caller-assigned identifier.
func (c CollateralCost) LineID() string { return c.ID }

// LineID returns the caller-assigned identifier.
func (c ProductionService) LineID() string { return c.ID }

// LineID returns the caller-assigned identifier.
func (c MarketingCost) LineID() string { return c.ID }
