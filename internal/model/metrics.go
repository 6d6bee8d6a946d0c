package model

import "math"

// BreakevenState says whether a breakeven point can be shown.
type BreakevenState int

const (
	BreakevenReachable BreakevenState = iota
	BreakevenNoPrice
	BreakevenNegativeMargin
)

func (s BreakevenState) String() string {
	switch s {
	case BreakevenNoPrice:
		return "no-price"
	case BreakevenNegativeMargin:
		return "negative-margin"
	}
	return "reachable"
}

// Message is the text shown in place of a breakeven figure, or "" when
// the breakeven point is reachable.
func (s BreakevenState) Message() string {
	switch s {
	case BreakevenNoPrice:
		return "Set a ticket price to see breakeven analysis."
	case BreakevenNegativeMargin:
		return "Breakeven cannot be calculated with a negative margin."
	}
	return ""
}

// Projection holds every derived figure for one set of inputs.
type Projection struct {
	TotalFixedCosts float64 `json:"totalFixedCosts"`

	TotalDirect     float64 `json:"totalDirect"`
	TotalCollateral float64 `json:"totalCollateral"`
	TotalServices   float64 `json:"totalServices"`
	TotalMarketing  float64 `json:"totalMarketing"`

	TotalVariableCostPerUnit float64 `json:"totalVariableCostPerUnit"`
	MarginPerSale            float64 `json:"marginPerSale"`
	IsNegativeMargin         bool    `json:"isNegativeMargin"`

	TicketPrice               float64 `json:"ticketPrice"`
	ProjectedUnitSales        float64 `json:"projectedUnitSales"`
	GrossRevenue              float64 `json:"grossRevenue"`
	TotalMonthlyVariableCosts float64 `json:"totalMonthlyVariableCosts"`
	GrossProfit               float64 `json:"grossProfit"`
	NetProfit                 float64 `json:"netProfit"`

	// BreakevenUnits and BreakevenRevenue are 0 when BreakevenComputable
	// is false; presenters must branch on the flag, not on the value.
	BreakevenUnits      float64        `json:"breakevenUnits"`
	BreakevenRevenue    float64        `json:"breakevenRevenue"`
	BreakevenComputable bool           `json:"breakevenComputable"`
	BreakevenState      BreakevenState `json:"breakevenState"`
}

// NegativeMarginAlert reports whether a priced product loses money per sale.
func (p Projection) NegativeMarginAlert() bool {
	return p.IsNegativeMargin && p.TicketPrice > 0
}

// Coverage is projected sales as a fraction of breakeven units.
func (p Projection) Coverage() float64 {
	if !p.BreakevenComputable || p.BreakevenUnits <= 0 {
		return 0
	}
	r := p.ProjectedUnitSales / p.BreakevenUnits
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// LineCost is one variable-cost line with its derived per-unit figures.
type LineCost struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CostPerUnit    float64 `json:"costPerUnit"`
	CostPerProduct float64 `json:"costPerProduct"`
}

// OperatingLine is one overhead line with its budget variance.
type OperatingLine struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Budgeted float64 `json:"budgetedMonthly"`
	Actual   float64 `json:"actualMonthly"`
	Variance float64 `json:"variance"` // budgeted - actual; negative means over budget
}

// OperatingSummary holds overhead totals across all operating lines.
type OperatingSummary struct {
	Lines          []OperatingLine `json:"lines"`
	TotalBudgeted  float64         `json:"totalBudgeted"`
	TotalActual    float64         `json:"totalActual"`
	Variance       float64         `json:"variance"`
	AnnualBudgeted float64         `json:"annualBudgeted"`
	AnnualActual   float64         `json:"annualActual"`
}

// MarshalText encodes the state by name.
func (s BreakevenState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
