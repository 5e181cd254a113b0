package domain

import "strings"

// Cadence is the pay-period frequency a monetary figure is expressed in.
type Cadence string

const (
	CadenceAnnual   Cadence = "ANNUAL"
	CadenceWeekly   Cadence = "WEEKLY"
	CadenceBiweekly Cadence = "BIWEEKLY"
	CadenceMonthly  Cadence = "MONTHLY"
)

// PeriodsPerYear returns how many pay periods of this cadence fit in a year.
// Unknown or empty cadences count as annual.
func (c Cadence) PeriodsPerYear() float64 {
	switch c {
	case CadenceWeekly:
		return 52
	case CadenceBiweekly:
		return 26
	case CadenceMonthly:
		return 12
	default:
		return 1
	}
}

// Label is the human readable name of the cadence.
func (c Cadence) Label() string {
	switch c {
	case CadenceWeekly:
		return "Weekly"
	case CadenceBiweekly:
		return "Bi-weekly"
	case CadenceMonthly:
		return "Monthly"
	default:
		return "Annual"
	}
}

// IsAnnual reports whether amounts in this cadence are already annual.
func (c Cadence) IsAnnual() bool {
	return c.PeriodsPerYear() == 1
}

type FilingStatus string

const (
	FilingSingle  FilingStatus = "SINGLE"
	FilingMarried FilingStatus = "MARRIED"
)

const CountryUS = "US"

// PreTaxInputs are deductions taken before tax. Every field is optional and
// left nil rather than zero when the user did not provide it.
type PreTaxInputs struct {
	PensionPercent *float64 `json:"pensionPercent,omitempty"` // fraction in (0,1]
	FixedAmount    *float64 `json:"fixedAmount,omitempty"`
	HSAAmount      *float64 `json:"hsaAmount,omitempty"`
}

func (p PreTaxInputs) isEmpty() bool {
	return p.PensionPercent == nil && p.FixedAmount == nil && p.HSAAmount == nil
}

type PostTaxInputs struct {
	FixedAmount     *float64 `json:"fixedAmount,omitempty"`
	StudentLoanPlan *string  `json:"studentLoanPlan,omitempty"`
}

func (p PostTaxInputs) isEmpty() bool {
	return p.FixedAmount == nil && p.StudentLoanPlan == nil
}

// JurisdictionOptions is the country specific parameter bundle sent with a
// calculation request.
type JurisdictionOptions interface {
	Country() string
}

// USOptions are the jurisdiction options for a United States calculation.
type USOptions struct {
	StateCode    string       `json:"stateCode"`
	FilingStatus FilingStatus `json:"filingStatus"`
	Allowances   *int         `json:"allowances,omitempty"`
}

func (USOptions) Country() string { return CountryUS }

// CalculationRequest is the normalized body sent to the remote calculation
// service. It is built once per submission and never mutated.
type CalculationRequest struct {
	Country             string              `json:"country"`
	TaxYear             int                 `json:"taxYear"`
	AnnualSalary        float64             `json:"annualSalary"`
	Cadence             Cadence             `json:"cadence"`
	PreTax              *PreTaxInputs       `json:"preTax,omitempty"`
	PostTax             *PostTaxInputs      `json:"postTax,omitempty"`
	JurisdictionOptions JurisdictionOptions `json:"jurisdictionOptions"`
}

// NewPreTax returns nil when none of the inputs are set.
func NewPreTax(p PreTaxInputs) *PreTaxInputs {
	if p.isEmpty() {
		return nil
	}
	return &p
}

// NewPostTax returns nil when none of the inputs are set.
func NewPostTax(p PostTaxInputs) *PostTaxInputs {
	if p.isEmpty() {
		return nil
	}
	return &p
}

// PaycheckInput holds the raw values entered in the salary form.
type PaycheckInput struct {
	Salary          string `json:"salary"`
	PayFrequency    string `json:"payFrequency"` // "weekly", "biweekly", "monthly"
	FilingStatus    string `json:"filingStatus"` // "single", "married"
	Allowances      int    `json:"allowances"`
	PensionPercent  string `json:"pensionPercent"` // whole percent, "5" means 5%
	HSAAmount       string `json:"hsaAmount"`
	PreTaxFixed     string `json:"preTaxFixed"`
	PostTaxFixed    string `json:"postTaxFixed"`
	StudentLoanPlan string `json:"studentLoanPlan"`
	State           string `json:"state"` // state name or 2-letter code from the location service
	TaxYear         int    `json:"taxYear"`
}

// Normalized trims surrounding whitespace from every text field.
func (in PaycheckInput) Normalized() PaycheckInput {
	in.Salary = strings.TrimSpace(in.Salary)
	in.PayFrequency = strings.TrimSpace(in.PayFrequency)
	in.FilingStatus = strings.TrimSpace(in.FilingStatus)
	in.PensionPercent = strings.TrimSpace(in.PensionPercent)
	in.HSAAmount = strings.TrimSpace(in.HSAAmount)
	in.PreTaxFixed = strings.TrimSpace(in.PreTaxFixed)
	in.PostTaxFixed = strings.TrimSpace(in.PostTaxFixed)
	in.StudentLoanPlan = strings.TrimSpace(in.StudentLoanPlan)
	in.State = strings.TrimSpace(in.State)
	return in
}
