package models

import (
	"retireplan/pkg/domain"
	s "retireplan/pkg/string"
)

// Questionnaire is the client's submitted planning form. It is decoded once
// per request and never mutated after Sanitize.
//
// Required answers carry validate tags. Numeric answers are pointers so an
// omitted answer fails "required" instead of decoding as zero. The optional
// free-text answers are pointers so "not answered" stays distinct from
// "answered with empty text". Amounts are bounded by MaxAmount.
type Questionnaire struct {
	// Personal
	FullName      string      `json:"fullName" validate:"required,notblank"`
	DOB           domain.Date `json:"dob"`
	Gender        string      `json:"gender" validate:"required,notblank"`
	MaritalStatus string      `json:"maritalStatus" validate:"required,notblank"`
	Dependents    *int        `json:"dependents" validate:"required,gte=0,lte=50"`
	Email         string      `json:"email" validate:"required,email"`
	Phone         string      `json:"phone" validate:"required,notblank"`
	Address       string      `json:"address" validate:"required,notblank"`

	// Employment
	EmploymentStatus        string   `json:"employmentStatus" validate:"required,notblank"`
	Occupation              string   `json:"occupation" validate:"required,notblank"`
	Employer                *string  `json:"employer,omitempty"`
	GrossIncome             *float64 `json:"grossIncome" validate:"required,finite,gte=0,lte=1e12"`
	NetIncome               *float64 `json:"netIncome" validate:"required,finite,gte=0,lte=1e12"`
	RetirementAge           *int     `json:"retirementAge" validate:"required,gte=0,lte=130"`
	DesiredRetirementIncome *float64 `json:"desiredRetirementIncome" validate:"required,finite,gte=0,lte=1e12"`

	// Superannuation
	SuperFundName       string   `json:"superFundName" validate:"required,notblank"`
	SuperBalance        *float64 `json:"superBalance" validate:"required,finite,gte=0,lte=1e12"`
	ContributionType    string   `json:"contributionType" validate:"required,notblank"`
	AnnualContributions *float64 `json:"annualContributions" validate:"required,finite,gte=0,lte=1e12"`
	InvestmentOption    string   `json:"investmentOption" validate:"required,notblank"`
	Fees                *string  `json:"fees,omitempty"`
	MultipleSuper       string   `json:"multipleSuper" validate:"required,notblank"`

	// Assets
	PrimaryResidence  *float64 `json:"primaryResidence" validate:"required,finite,gte=0,lte=1e12"`
	OtherProperty     *float64 `json:"otherProperty" validate:"required,finite,gte=0,lte=1e12"`
	CashSavings       *float64 `json:"cashSavings" validate:"required,finite,gte=0,lte=1e12"`
	Shares            *float64 `json:"shares" validate:"required,finite,gte=0,lte=1e12"`
	ManagedFunds      *float64 `json:"managedFunds" validate:"required,finite,gte=0,lte=1e12"`
	BusinessInterests *float64 `json:"businessInterests" validate:"required,finite,gte=0,lte=1e12"`
	PersonalProperty  *float64 `json:"personalProperty" validate:"required,finite,gte=0,lte=1e12"`

	// Liabilities
	Mortgage      *float64 `json:"mortgage" validate:"required,finite,gte=0,lte=1e12"`
	PropertyLoans *float64 `json:"propertyLoans" validate:"required,finite,gte=0,lte=1e12"`
	PersonalLoans *float64 `json:"personalLoans" validate:"required,finite,gte=0,lte=1e12"`
	CreditDebt    *float64 `json:"creditDebt" validate:"required,finite,gte=0,lte=1e12"`
	OtherDebts    *float64 `json:"otherDebts" validate:"required,finite,gte=0,lte=1e12"`

	// Retirement goals
	RetirementLocation   string   `json:"retirementLocation" validate:"required,notblank"`
	RetirementActivities string   `json:"retirementActivities" validate:"required,notblank"`
	LivingExpenses       *float64 `json:"livingExpenses" validate:"required,finite,gte=0,lte=1e12"`
	DownsizeProperty     string   `json:"downsizeProperty" validate:"required,notblank"`
	ReverseMortgage      string   `json:"reverseMortgage" validate:"required,notblank"`

	// Insurance and estate
	LifeInsurance    string `json:"lifeInsurance" validate:"required,notblank"`
	IncomeProtection string `json:"incomeProtection" validate:"required,notblank"`
	TPDInsurance     string `json:"tpdInsurance" validate:"required,notblank"`
	HasWill          string `json:"hasWill" validate:"required,notblank"`
	PowerOfAttorney  string `json:"powerOfAttorney" validate:"required,notblank"`

	// Other
	Inheritance       *float64 `json:"inheritance" validate:"required,finite,gte=0,lte=1e12"`
	DependentsSupport string   `json:"dependentsSupport" validate:"required,notblank"`
	HealthConcerns    *string  `json:"healthConcerns,omitempty"`
	OtherGoals        *string  `json:"otherGoals,omitempty"`

	// Consent
	ConfirmInfo  bool `json:"confirmInfo"`
	ConsentEmail bool `json:"consentEmail"`
}

// MaxAmount is the largest dollar amount any answer may carry. It keeps
// projected balances well inside the range that can be shown to the cent.
const MaxAmount = 1e12

// HasConsent reports whether both consent answers were given.
func (q *Questionnaire) HasConsent() bool {
	return q.ConfirmInfo && q.ConsentEmail
}

// Sanitize trims surrounding whitespace from text answers.
func (q *Questionnaire) Sanitize() {
	s.TrimStrings(
		&q.FullName, &q.Gender, &q.MaritalStatus, &q.Email, &q.Phone, &q.Address,
		&q.EmploymentStatus, &q.Occupation, q.Employer,
		&q.SuperFundName, &q.ContributionType, &q.InvestmentOption, q.Fees, &q.MultipleSuper,
		&q.RetirementLocation, &q.RetirementActivities, &q.DownsizeProperty, &q.ReverseMortgage,
		&q.LifeInsurance, &q.IncomeProtection, &q.TPDInsurance, &q.HasWill, &q.PowerOfAttorney,
		&q.DependentsSupport, q.HealthConcerns, q.OtherGoals,
	)
}
