package models

// Default market assumptions applied when a ProjectionInput leaves them unset.
const (
	DefaultGrowthRate    = 0.06
	DefaultInflationRate = 0.025
)

// ProjectionInput is the subset of a questionnaire the projection engine needs.
type ProjectionInput struct {
	CurrentAge         int
	RetirementAge      int
	CurrentBalance     float64
	AnnualContribution float64
	// GrowthRate and InflationRate are nil when unspecified.
	GrowthRate    *float64
	InflationRate *float64
}

// Rates returns the growth and inflation rates with defaults applied.
func (in ProjectionInput) Rates() (growth, inflation float64) {
	growth, inflation = DefaultGrowthRate, DefaultInflationRate
	if in.GrowthRate != nil {
		growth = *in.GrowthRate
	}
	if in.InflationRate != nil {
		inflation = *in.InflationRate
	}
	return growth, inflation
}

// ProjectionResult is the year-by-year simulation output. It belongs to the
// request that produced it.
type ProjectionResult struct {
	YearsUntilRetirement int     `json:"years_until_retirement"`
	RealGrowthRate       float64 `json:"real_growth_rate"`
	FinalBalance         float64 `json:"projected_super_balance"`
	// YearlyBalances holds one cent-rounded balance per simulated year, oldest first.
	YearlyBalances []float64 `json:"yearly_balances"`
}
