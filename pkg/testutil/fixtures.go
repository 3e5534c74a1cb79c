package testutil

import (
	"time"

	"retireplan/internal/planning/models"
	"retireplan/pkg/domain"
)

// Now is a fixed clock reading for deterministic age derivation.
var Now = time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)

// Clock returns Now.
func Clock() time.Time { return Now }

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// QuestionnaireBuilder provides a fluent interface for building test questionnaires.
type QuestionnaireBuilder struct {
	q *models.Questionnaire
}

// NewQuestionnaireBuilder creates a builder with a complete, consenting
// questionnaire. The client turns 35 on Now.
func NewQuestionnaireBuilder() *QuestionnaireBuilder {
	return &QuestionnaireBuilder{
		q: &models.Questionnaire{
			FullName:                "Jane Doe",
			DOB:                     domain.NewDate(1990, time.June, 15),
			Gender:                  "Female",
			MaritalStatus:           "Single",
			Dependents:              Ptr(0),
			Email:                   "jane@example.com",
			Phone:                   "0400 000 000",
			Address:                 "1 Example St, Sydney NSW",
			EmploymentStatus:        "Full-time",
			Occupation:              "Engineer",
			GrossIncome:             Ptr(120000.0),
			NetIncome:               Ptr(90000.0),
			RetirementAge:           Ptr(65),
			DesiredRetirementIncome: Ptr(60000.0),
			SuperFundName:           "Example Super",
			SuperBalance:            Ptr(100000.0),
			ContributionType:        "Employer",
			AnnualContributions:     Ptr(5000.0),
			InvestmentOption:        "Balanced",
			MultipleSuper:           "No",
			PrimaryResidence:        Ptr(650000.0),
			OtherProperty:           Ptr(0.0),
			CashSavings:             Ptr(15000.0),
			Shares:                  Ptr(20000.0),
			ManagedFunds:            Ptr(0.0),
			BusinessInterests:       Ptr(0.0),
			PersonalProperty:        Ptr(30000.0),
			Mortgage:                Ptr(400000.0),
			PropertyLoans:           Ptr(0.0),
			PersonalLoans:           Ptr(0.0),
			CreditDebt:              Ptr(2000.0),
			OtherDebts:              Ptr(0.0),
			RetirementLocation:      "Coast",
			RetirementActivities:    "Travel",
			LivingExpenses:          Ptr(50000.0),
			DownsizeProperty:        "Maybe",
			ReverseMortgage:         "No",
			LifeInsurance:           "Yes",
			IncomeProtection:        "No",
			TPDInsurance:            "Yes",
			HasWill:                 "Yes",
			PowerOfAttorney:         "No",
			Inheritance:             Ptr(0.0),
			DependentsSupport:       "None",
			ConfirmInfo:             true,
			ConsentEmail:            true,
		},
	}
}

func (b *QuestionnaireBuilder) WithName(name string) *QuestionnaireBuilder {
	b.q.FullName = name
	return b
}

func (b *QuestionnaireBuilder) WithEmail(email string) *QuestionnaireBuilder {
	b.q.Email = email
	return b
}

func (b *QuestionnaireBuilder) WithDOB(year int, month time.Month, day int) *QuestionnaireBuilder {
	b.q.DOB = domain.NewDate(year, month, day)
	return b
}

func (b *QuestionnaireBuilder) WithRetirementAge(age int) *QuestionnaireBuilder {
	b.q.RetirementAge = &age
	return b
}

func (b *QuestionnaireBuilder) WithSuper(balance, annualContributions float64) *QuestionnaireBuilder {
	b.q.SuperBalance = &balance
	b.q.AnnualContributions = &annualContributions
	return b
}

func (b *QuestionnaireBuilder) WithConsent(confirmInfo, consentEmail bool) *QuestionnaireBuilder {
	b.q.ConfirmInfo = confirmInfo
	b.q.ConsentEmail = consentEmail
	return b
}

func (b *QuestionnaireBuilder) Build() *models.Questionnaire {
	return b.q
}
