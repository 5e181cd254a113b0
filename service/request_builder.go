package service

import (
	"math"
	"strconv"
	"strings"

	"paycheck-agent/domain"
)

// RequestBuilder maps raw form input to a CalculationRequest.
type RequestBuilder struct {
	defaultTaxYear int
}

func NewRequestBuilder(defaultTaxYear int) *RequestBuilder {
	return &RequestBuilder{defaultTaxYear: defaultTaxYear}
}

// Build validates the input and returns the request to send to the
// calculation service. Optional amounts that are empty, unparseable or not
// positive are left out of the request instead of being sent as zero.
func (b *RequestBuilder) Build(input domain.PaycheckInput) (domain.CalculationRequest, error) {
	input = input.Normalized()

	salary, ok := parseAmount(input.Salary)
	if !ok || salary <= 0 {
		return domain.CalculationRequest{}, domain.InvalidInput("salary must be a positive number")
	}
	if salary > MaxAnnualSalary {
		return domain.CalculationRequest{}, domain.InvalidInput("salary exceeds the maximum of %.2f", MaxAnnualSalary)
	}

	cadence, err := parseCadence(input.PayFrequency)
	if err != nil {
		return domain.CalculationRequest{}, err
	}

	status, err := parseFilingStatus(input.FilingStatus)
	if err != nil {
		return domain.CalculationRequest{}, err
	}

	if input.Allowances < 0 || input.Allowances > MaxAllowances {
		return domain.CalculationRequest{}, domain.InvalidInput("allowances must be between 0 and %d", MaxAllowances)
	}

	taxYear := b.defaultTaxYear
	if input.TaxYear != 0 {
		taxYear = input.TaxYear
	}
	if taxYear < MinTaxYear {
		return domain.CalculationRequest{}, domain.InvalidInput("tax year %d is not supported", taxYear)
	}

	stateCode, err := ResolveStateCode(input.State)
	if err != nil {
		return domain.CalculationRequest{}, err
	}

	var pension *float64
	if percent, ok := parseAmount(input.PensionPercent); ok && percent > 0 {
		if percent > MaxPensionPercent {
			return domain.CalculationRequest{}, domain.InvalidInput("pension percent must not exceed %.0f", MaxPensionPercent)
		}
		fraction := percent / 100
		pension = &fraction
	}

	preTax := domain.NewPreTax(domain.PreTaxInputs{
		PensionPercent: pension,
		FixedAmount:    positiveAmount(input.PreTaxFixed),
		HSAAmount:      positiveAmount(input.HSAAmount),
	})

	var loanPlan *string
	if input.StudentLoanPlan != "" {
		plan := input.StudentLoanPlan
		loanPlan = &plan
	}
	postTax := domain.NewPostTax(domain.PostTaxInputs{
		FixedAmount:     positiveAmount(input.PostTaxFixed),
		StudentLoanPlan: loanPlan,
	})

	var allowances *int
	if input.Allowances > 0 {
		n := input.Allowances
		allowances = &n
	}

	return domain.CalculationRequest{
		Country:      domain.CountryUS,
		TaxYear:      taxYear,
		AnnualSalary: salary,
		Cadence:      cadence,
		PreTax:       preTax,
		PostTax:      postTax,
		JurisdictionOptions: domain.USOptions{
			StateCode:    stateCode,
			FilingStatus: status,
			Allowances:   allowances,
		},
	}, nil
}

// parseAmount reads a number typed into a text field, ignoring currency
// symbols, thousands separators and percent signs.
func parseAmount(text string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(text)
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func positiveAmount(text string) *float64 {
	value, ok := parseAmount(text)
	if !ok || value <= 0 {
		return nil
	}
	return &value
}

func parseCadence(selection string) (domain.Cadence, error) {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(selection)) {
	case "", "annual", "annually", "yearly":
		return domain.CadenceAnnual, nil
	case "weekly":
		return domain.CadenceWeekly, nil
	case "biweekly":
		return domain.CadenceBiweekly, nil
	case "monthly":
		return domain.CadenceMonthly, nil
	default:
		return "", domain.InvalidInput("unknown pay frequency %q", selection)
	}
}

func parseFilingStatus(selection string) (domain.FilingStatus, error) {
	switch strings.ToLower(selection) {
	case "", "single":
		return domain.FilingSingle, nil
	case "married":
		return domain.FilingMarried, nil
	default:
		return "", domain.InvalidInput("unknown filing status %q", selection)
	}
}
