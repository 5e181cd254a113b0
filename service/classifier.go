package service

import (
	"math"
	"strings"

	"paycheck-agent/domain"
)

// Category is the bucket a response line item is filed under.
type Category int

const (
	CategoryFederalTax Category = iota + 1
	CategoryStateTax
	CategoryLocalTax
	CategorySocialSecurity
	CategoryMedicare
	CategoryAdditionalMedicare
	CategoryPreTaxDeduction
	CategoryPostTaxDeduction
)

func (c Category) String() string {
	switch c {
	case CategoryFederalTax:
		return "federal_tax"
	case CategoryStateTax:
		return "state_tax"
	case CategoryLocalTax:
		return "local_tax"
	case CategorySocialSecurity:
		return "social_security"
	case CategoryMedicare:
		return "medicare"
	case CategoryAdditionalMedicare:
		return "additional_medicare"
	case CategoryPreTaxDeduction:
		return "pre_tax_deduction"
	case CategoryPostTaxDeduction:
		return "post_tax_deduction"
	default:
		return "unknown"
	}
}

type classificationRule struct {
	category Category
	matches  func(name string) bool
}

func containsAny(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, sub := range subs {
			if strings.Contains(name, sub) {
				return true
			}
		}
		return false
	}
}

// classificationRules is evaluated top to bottom; the first match wins.
// Matching is case-sensitive.
var classificationRules = []classificationRule{
	{CategoryFederalTax, containsAny("Federal Income Tax")},
	{CategoryStateTax, containsAny("State Income Tax")},
	{CategoryLocalTax, func(name string) bool {
		return strings.Contains(name, "Local") && strings.Contains(name, "Tax")
	}},
	{CategorySocialSecurity, containsAny("Social Security", "FICA (Social Security)")},
	{CategoryMedicare, func(name string) bool {
		return strings.Contains(name, "Medicare") && !strings.Contains(name, "Additional")
	}},
	{CategoryAdditionalMedicare, containsAny("Additional Medicare")},
	{CategoryPreTaxDeduction, containsAny("Pre-tax Deductions", "Employee Pension", "HSA")},
	{CategoryPostTaxDeduction, containsAny("Post-tax Deductions")},
}

// ClassifyLineItem returns the category for a line item name. The second
// result is false for names no rule recognizes.
func ClassifyLineItem(name string) (Category, bool) {
	for _, rule := range classificationRules {
		if rule.matches(name) {
			return rule.category, true
		}
	}
	return 0, false
}

func taxItem(item domain.LineItem, rate *float64) *domain.TaxBreakdownItem {
	return &domain.TaxBreakdownItem{Amount: item.Amount, Rate: rate, Label: item.Name}
}

func rate(v float64) *float64 { return &v }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteOrZero keeps derived percentages encodable when the inputs overflow.
func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func amountOf(item *domain.TaxBreakdownItem) float64 {
	if item == nil {
		return 0
	}
	return item.Amount
}

// BuildBreakdown turns a calculation response into a Breakdown. Gross and net
// figures are annualized from the per-cadence scalars, line items are used as
// returned.
func BuildBreakdown(resp domain.CalculationResponse, cadence domain.Cadence) domain.Breakdown {
	periods := cadence.PeriodsPerYear()

	annualGross := resp.GrossPerCadence
	annualNet := resp.NetPerCadence
	if !cadence.IsAnnual() {
		annualGross = resp.GrossPerCadence * periods
		annualNet = resp.NetPerCadence * periods
	}

	var taxes domain.Taxes
	deductions := domain.Deductions{
		PreTaxItems:  []domain.DeductionItem{},
		PostTaxItems: []domain.DeductionItem{},
	}

	for _, item := range resp.LineItems {
		category, ok := ClassifyLineItem(item.Name)
		if !ok {
			continue
		}

		switch category {
		case CategoryFederalTax:
			taxes.Federal = taxItem(item, nil)
			taxes.TotalTaxes += item.Amount
		case CategoryStateTax:
			taxes.State = taxItem(item, nil)
			taxes.TotalTaxes += item.Amount
		case CategoryLocalTax:
			taxes.Local = taxItem(item, nil)
			taxes.TotalTaxes += item.Amount
		case CategorySocialSecurity:
			taxes.FICA.SocialSecurity = taxItem(item, rate(SocialSecurityRate))
			taxes.TotalTaxes += item.Amount
		case CategoryMedicare:
			taxes.FICA.Medicare = taxItem(item, rate(MedicareRate))
			taxes.TotalTaxes += item.Amount
		case CategoryAdditionalMedicare:
			taxes.FICA.AdditionalMedicare = taxItem(item, rate(AdditionalMedicareRate))
			taxes.TotalTaxes += item.Amount
		case CategoryPreTaxDeduction:
			if item.Amount > 0 {
				deductions.PreTaxItems = append(deductions.PreTaxItems, domain.DeductionItem{Name: item.Name, Amount: item.Amount})
				deductions.PreTaxTotal += item.Amount
			}
		case CategoryPostTaxDeduction:
			if item.Amount > 0 {
				deductions.PostTaxItems = append(deductions.PostTaxItems, domain.DeductionItem{Name: item.Name, Amount: item.Amount})
				deductions.PostTaxTotal += item.Amount
			}
		}
	}

	taxes.FICA.Total = amountOf(taxes.FICA.SocialSecurity) +
		amountOf(taxes.FICA.Medicare) +
		amountOf(taxes.FICA.AdditionalMedicare)
	deductions.Total = deductions.PreTaxTotal + deductions.PostTaxTotal

	var takeHome float64
	if annualGross > 0 && isFinite(annualGross) {
		// totalTaxes is scaled by periods even though line item granularity is
		// not fixed by the remote contract; kept for compatibility.
		taxes.EffectiveTaxRate = finiteOrZero(taxes.TotalTaxes * periods / annualGross * 100)
		takeHome = finiteOrZero(annualNet / annualGross * 100)
	}

	return domain.Breakdown{
		CalculationID:   resp.CalculationID,
		Cadence:         cadence,
		Currency:        resp.Currency,
		RulePackVersion: resp.RulePackVersion,
		GrossPay: domain.GrossPay{
			Annual:       annualGross,
			PerPeriod:    resp.GrossPerCadence,
			CadenceLabel: cadence.Label(),
		},
		Taxes:      taxes,
		Deductions: deductions,
		NetPay: domain.NetPay{
			Annual:             annualNet,
			PerPeriod:          resp.NetPerCadence,
			TakeHomePercentage: takeHome,
		},
		Explanation: resp.Explanation,
	}
}
