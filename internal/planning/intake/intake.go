// Package intake gates questionnaires before any planning work starts.
package intake

import (
	"time"

	"retireplan/internal/planning/models"
	"retireplan/pkg/domain"
	dErrors "retireplan/pkg/domain-errors"
	"retireplan/pkg/platform/validation"
	reqvalidation "retireplan/pkg/validation"
)

// ConsentMessage is returned when either consent answer is missing.
const ConsentMessage = "Consent not given."

// Validator checks consent, validates answers and derives the projection input.
type Validator struct {
	now           func() time.Time
	growthRate    float64
	inflationRate float64
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used to derive the client's age.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// WithRates sets the market assumptions applied to every projection.
func WithRates(growth, inflation float64) Option {
	return func(v *Validator) {
		v.growthRate = growth
		v.inflationRate = inflation
	}
}

// New creates a Validator using the wall clock and default market assumptions.
func New(opts ...Option) *Validator {
	v := &Validator{
		now:           time.Now,
		growthRate:    models.DefaultGrowthRate,
		inflationRate: models.DefaultInflationRate,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check returns the projection input for q using the validator's clock.
func (v *Validator) Check(q *models.Questionnaire) (*models.ProjectionInput, error) {
	return v.CheckAt(q, v.now())
}

// CheckAt returns the projection input for q with the client's age taken at
// now. Consent is checked first so a rejected questionnaire is never validated
// or processed further.
func (v *Validator) CheckAt(q *models.Questionnaire, now time.Time) (*models.ProjectionInput, error) {
	if q == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "questionnaire is required")
	}
	if !q.HasConsent() {
		return nil, dErrors.New(dErrors.CodeMissingConsent, ConsentMessage)
	}
	if err := validateLengths(q); err != nil {
		return nil, err
	}
	if err := reqvalidation.Validate(q); err != nil {
		return nil, err
	}

	if q.DOB.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "dob is required")
	}
	if q.DOB.After(now) {
		return nil, dErrors.New(dErrors.CodeValidation, "dob must not be in the future")
	}

	growth, inflation := v.growthRate, v.inflationRate
	return &models.ProjectionInput{
		CurrentAge:         domain.AgeOn(q.DOB.Time, now),
		RetirementAge:      *q.RetirementAge,
		CurrentBalance:     *q.SuperBalance,
		AnnualContribution: *q.AnnualContributions,
		GrowthRate:         &growth,
		InflationRate:      &inflation,
	}, nil
}

type lengthRule struct {
	field string
	value string
	max   int
}

func validateLengths(q *models.Questionnaire) error {
	rules := []lengthRule{
		{"full_name", q.FullName, validation.MaxNameLength},
		{"email", q.Email, validation.MaxEmailLength},
		{"address", q.Address, validation.MaxFreeTextLength},
		{"retirement_location", q.RetirementLocation, validation.MaxFreeTextLength},
		{"retirement_activities", q.RetirementActivities, validation.MaxFreeTextLength},
		{"dependents_support", q.DependentsSupport, validation.MaxFreeTextLength},
	}
	for _, short := range []struct{ field, value string }{
		{"gender", q.Gender},
		{"marital_status", q.MaritalStatus},
		{"phone", q.Phone},
		{"employment_status", q.EmploymentStatus},
		{"occupation", q.Occupation},
		{"super_fund_name", q.SuperFundName},
		{"contribution_type", q.ContributionType},
		{"investment_option", q.InvestmentOption},
		{"multiple_super", q.MultipleSuper},
		{"downsize_property", q.DownsizeProperty},
		{"reverse_mortgage", q.ReverseMortgage},
		{"life_insurance", q.LifeInsurance},
		{"income_protection", q.IncomeProtection},
		{"tpd_insurance", q.TPDInsurance},
		{"has_will", q.HasWill},
		{"power_of_attorney", q.PowerOfAttorney},
	} {
		rules = append(rules, lengthRule{short.field, short.value, validation.MaxShortTextLength})
	}
	for _, r := range rules {
		if err := validation.CheckStringLength(r.field, r.value, r.max); err != nil {
			return err
		}
	}

	if err := validation.CheckOptionalStringLength("employer", q.Employer, validation.MaxShortTextLength); err != nil {
		return err
	}
	for _, opt := range []struct {
		field string
		value *string
	}{
		{"fees", q.Fees},
		{"health_concerns", q.HealthConcerns},
		{"other_goals", q.OtherGoals},
	} {
		if err := validation.CheckOptionalStringLength(opt.field, opt.value, validation.MaxFreeTextLength); err != nil {
			return err
		}
	}
	return nil
}
