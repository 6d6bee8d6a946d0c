package model

// Patch types carry a partial update. A nil field leaves the stored value
// alone. IDs are never patched.

type OperatingCostPatch struct {
	Category        *string  `json:"category,omitempty"`
	BudgetedMonthly *float64 `json:"budgetedMonthly,omitempty"`
	ActualMonthly   *float64 `json:"actualMonthly,omitempty"`
}

type DirectCostPatch struct {
	Item                 *string  `json:"item,omitempty"`
	CostPerPurchase      *float64 `json:"costPerPurchase,omitempty"`
	UnitsPerPurchase     *float64 `json:"unitsPerPurchase,omitempty"`
	AmountUsedPerProduct *float64 `json:"amountUsedPerProduct,omitempty"`
}

type CollateralCostPatch struct {
	Item                 *string  `json:"item,omitempty"`
	CostPerPurchase      *float64 `json:"costPerPurchase,omitempty"`
	UnitsPerPurchase     *float64 `json:"unitsPerPurchase,omitempty"`
	AmountUsedPerProduct *float64 `json:"amountUsedPerProduct,omitempty"`
}

type ProductionServicePatch struct {
	Service     *string  `json:"service,omitempty"`
	CostPerUnit *float64 `json:"costPerUnit,omitempty"`
	AmountUsed  *float64 `json:"amountUsed,omitempty"`
}

type MarketingCostPatch struct {
	Channel        *string  `json:"channel,omitempty"`
	BudgetPerBatch *float64 `json:"budgetPerBatch,omitempty"`
	AmountPerBatch *float64 `json:"amountPerBatch,omitempty"`
}

type AssumptionsPatch struct {
	TicketPrice      *float64 `json:"ticketPrice,omitempty"`
	PotentialClients *float64 `json:"potentialClients,omitempty"`
	ConversionRate   *float64 `json:"conversionRate,omitempty"`
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T { return &v }

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Apply returns c with every non-nil patch field merged in.
func (c OperatingCost) Apply(p OperatingCostPatch) OperatingCost {
	set(&c.Category, p.Category)
	set(&c.BudgetedMonthly, p.BudgetedMonthly)
	set(&c.ActualMonthly, p.ActualMonthly)
	return c
}

// Apply returns c with every non-nil patch field merged in.
func (c DirectCost) Apply(p DirectCostPatch) DirectCost {
	set(&c.Item, p.Item)
	set(&c.CostPerPurchase, p.CostPerPurchase)
	set(&c.UnitsPerPurchase, p.UnitsPerPurchase)
	set(&c.AmountUsedPerProduct, p.AmountUsedPerProduct)
	return c
}

// Apply returns c with every non-nil patch field merged in.
func (c CollateralCost) Apply(p CollateralCostPatch) CollateralCost {
	set(&c.Item, p.Item)
	set(&c.CostPerPurchase, p.CostPerPurchase)
	set(&c.UnitsPerPurchase, p.UnitsPerPurchase)
	set(&c.AmountUsedPerProduct, p.AmountUsedPerProduct)
	return c
}

// Apply returns c with every non-nil patch field merged in.
func (c ProductionService) Apply(p ProductionServicePatch) ProductionService {
	set(&c.Service, p.Service)
	set(&c.CostPerUnit, p.CostPerUnit)
	set(&c.AmountUsed, p.AmountUsed)
	return c
}

// Apply returns c with every non-nil patch field merged in.
func (c MarketingCost) Apply(p MarketingCostPatch) MarketingCost {
	set(&c.Channel, p.Channel)
	set(&c.BudgetPerBatch, p.BudgetPerBatch)
	set(&c.AmountPerBatch, p.AmountPerBatch)
	return c
}

// Apply returns a with every non-nil patch field merged in.
func (a BusinessAssumptions) Apply(p AssumptionsPatch) BusinessAssumptions {
	set(&a.TicketPrice, p.TicketPrice)
	set(&a.PotentialClients, p.PotentialClients)
	set(&a.ConversionRate, p.ConversionRate)
	return a
}
