package model

// Collection names one of the five line-item collections.
type Collection string

const (
	CollectionOperating  Collection = "operating"
	CollectionDirect     Collection = "direct"
	CollectionCollateral Collection = "collateral"
	CollectionServices   Collection = "services"
	CollectionMarketing  Collection = "marketing"

	// CollectionAssumptions is used in change events for SetAssumptions.
	CollectionAssumptions Collection = "assumptions"
)

// Collections lists the line-item collections in display order.
var Collections = []Collection{
	CollectionOperating,
	CollectionDirect,
	CollectionCollateral,
	CollectionServices,
	CollectionMarketing,
}

// ParseCollection maps a slug to a line-item collection.
func ParseCollection(s string) (Collection, bool) {
	for _, c := range Collections {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Title returns a human label for the collection.
func (c Collection) Title() string {
	switch c {
	case CollectionOperating:
		return "Operating Costs"
	case CollectionDirect:
		return "Direct Costs"
	case CollectionCollateral:
		return "Collateral Costs"
	case CollectionServices:
		return "Production Services"
	case CollectionMarketing:
		return "Marketing Costs"
	case CollectionAssumptions:
		return "Business Assumptions"
	}
	return string(c)
}

// Budget is a complete snapshot of everything a user has entered.
type Budget struct {
	Operating   []OperatingCost     `json:"operatingCosts" toml:"operating"`
	Direct      []DirectCost        `json:"directCosts" toml:"direct"`
	Collateral  []CollateralCost    `json:"collateralCosts" toml:"collateral"`
	Services    []ProductionService `json:"productionServices" toml:"services"`
	Marketing   []MarketingCost     `json:"marketingCosts" toml:"marketing"`
	Assumptions BusinessAssumptions `json:"businessAssumptions" toml:"assumptions"`
}

// Len returns the number of line items in collection c.
func (b Budget) Len(c Collection) int {
	switch c {
	case CollectionOperating:
		return len(b.Operating)
	case CollectionDirect:
		return len(b.Direct)
	case CollectionCollateral:
		return len(b.Collateral)
	case CollectionServices:
		return len(b.Services)
	case CollectionMarketing:
		return len(b.Marketing)
	}
	return 0
}
