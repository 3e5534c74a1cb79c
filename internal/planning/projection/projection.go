// Package projection simulates retirement savings growth year by year.
//
// Project is pure: identical inputs always yield identical results and no
// state survives between calls.
package projection

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"retireplan/internal/planning/models"
	dErrors "retireplan/pkg/domain-errors"
)

// Project runs the compounding simulation for in.
//
// For each year until retirement the balance grows by the inflation-adjusted
// (real) rate, the annual contribution is added, and the result is rounded to
// cents. The rounded balance is recorded and is also the base for the next
// year. When retirement is not in the future the sequence is empty and the
// final balance is the current balance. A balance that grows past the float64
// range is rejected rather than reported as infinite.
func Project(in models.ProjectionInput) (*models.ProjectionResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	growth, inflation := in.Rates()
	realRate := RealGrowthRate(growth, inflation)

	years := max(in.RetirementAge-in.CurrentAge, 0)
	balances := make([]float64, 0, years)
	balance := in.CurrentBalance
	for range years {
		// the conversion forces rounding of the product, so no fused multiply-add
		balance = RoundCents(float64(balance*(1+realRate)) + in.AnnualContribution)
		if !isFinite(balance) {
			return nil, invalid("projected balance overflows in year %d", len(balances)+1)
		}
		balances = append(balances, balance)
	}

	return &models.ProjectionResult{
		YearsUntilRetirement: years,
		RealGrowthRate:       realRate,
		FinalBalance:         balance,
		YearlyBalances:       balances,
	}, nil
}

// RealGrowthRate discounts a nominal growth rate by inflation.
func RealGrowthRate(growth, inflation float64) float64 {
	return (1+growth)/(1+inflation) - 1
}

// RoundCents rounds v to two decimal places, half to even, using the exact
// binary value of v. 2.675 is stored as 2.67499999... and rounds to 2.67.
func RoundCents(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	// 1100 fractional digits cover the longest exact float64 expansion (1074).
	exact, err := decimal.NewFromString(new(big.Float).SetFloat64(v).Text('f', 1100))
	if err != nil {
		return math.Round(v*100) / 100
	}
	return exact.RoundBank(2).InexactFloat64()
}

func validate(in models.ProjectionInput) error {
	switch {
	case in.CurrentAge < 0:
		return invalid("current age must not be negative, got %d", in.CurrentAge)
	case in.RetirementAge < 0:
		return invalid("retirement age must not be negative, got %d", in.RetirementAge)
	case !isFinite(in.CurrentBalance):
		return invalid("current balance must be a finite number")
	case !isFinite(in.AnnualContribution):
		return invalid("annual contribution must be a finite number")
	}

	growth, inflation := in.Rates()
	switch {
	case !isFinite(growth):
		return invalid("growth rate must be a finite number")
	case !isFinite(inflation):
		return invalid("inflation rate must be a finite number")
	case inflation <= -1:
		return invalid("inflation rate must be greater than -100%%")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf(format, args...))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
