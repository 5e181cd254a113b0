package service

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paycheck-agent/domain"
)

func scenarioItems() []domain.LineItem {
	return []domain.LineItem{
		{Name: "Federal Income Tax", Amount: 5000},
		{Name: "FICA (Social Security)", Amount: 3720},
		{Name: "Medicare", Amount: 870},
	}
}

func TestClassifyLineItem(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		expected Category
		ok       bool
	}{
		{"federal", "Federal Income Tax", CategoryFederalTax, true},
		{"state", "State Income Tax (CA)", CategoryStateTax, true},
		{"local", "Local City Tax", CategoryLocalTax, true},
		{"local without tax", "Local Levy", 0, false},
		{"social security", "Social Security", CategorySocialSecurity, true},
		{"fica social security", "FICA (Social Security)", CategorySocialSecurity, true},
		{"medicare", "Medicare", CategoryMedicare, true},
		{"additional medicare", "Additional Medicare", CategoryAdditionalMedicare, true},
		{"pre-tax", "Pre-tax Deductions", CategoryPreTaxDeduction, true},
		{"pension", "Employee Pension", CategoryPreTaxDeduction, true},
		{"hsa", "HSA Contribution", CategoryPreTaxDeduction, true},
		{"post-tax", "Post-tax Deductions", CategoryPostTaxDeduction, true},
		{"unknown", "Union Dues", 0, false},
		{"case sensitive", "federal income tax", 0, false},
		{"federal beats state", "Federal Income Tax / State Income Tax", CategoryFederalTax, true},
		{"local tax beats medicare", "Local Medicare Tax", CategoryLocalTax, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := ClassifyLineItem(tt.item)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestBuildBreakdown_AnnualScenario(t *testing.T) {
	resp := domain.CalculationResponse{
		GrossPerCadence: 60000,
		NetPerCadence:   50410,
		LineItems:       scenarioItems(),
	}

	b := BuildBreakdown(resp, domain.CadenceAnnual)

	assert.Equal(t, 60000.0, b.GrossPay.Annual)
	assert.Equal(t, 60000.0, b.GrossPay.PerPeriod)
	assert.Equal(t, "Annual", b.GrossPay.CadenceLabel)
	assert.Equal(t, 9590.0, b.Taxes.TotalTaxes)
	assert.Equal(t, 4590.0, b.Taxes.FICA.Total)

	require.NotNil(t, b.Taxes.Federal)
	assert.Equal(t, 5000.0, b.Taxes.Federal.Amount)
	assert.Nil(t, b.Taxes.Federal.Rate)
	assert.Nil(t, b.Taxes.State)
	assert.Nil(t, b.Taxes.Local)

	require.NotNil(t, b.Taxes.FICA.SocialSecurity)
	require.NotNil(t, b.Taxes.FICA.SocialSecurity.Rate)
	assert.Equal(t, 6.2, *b.Taxes.FICA.SocialSecurity.Rate)
	require.NotNil(t, b.Taxes.FICA.Medicare)
	assert.Equal(t, 1.45, *b.Taxes.FICA.Medicare.Rate)
	assert.Nil(t, b.Taxes.FICA.AdditionalMedicare)

	assert.InDelta(t, 15.98, b.Taxes.EffectiveTaxRate, 0.01)
	assert.InDelta(t, 84.02, b.NetPay.TakeHomePercentage, 0.01)
	assert.Equal(t, 50410.0, b.NetPay.Annual)
}

func TestBuildBreakdown_MonthlyScenario(t *testing.T) {
	resp := domain.CalculationResponse{
		GrossPerCadence: 5000,
		NetPerCadence:   4200,
		LineItems:       scenarioItems(),
	}

	b := BuildBreakdown(resp, domain.CadenceMonthly)

	assert.Equal(t, 60000.0, b.GrossPay.Annual)
	assert.Equal(t, 5000.0, b.GrossPay.PerPeriod)
	assert.Equal(t, 50400.0, b.NetPay.Annual)
	assert.Equal(t, 4200.0, b.NetPay.PerPeriod)
	assert.Equal(t, "Monthly", b.GrossPay.CadenceLabel)
	assert.Equal(t, 9590.0, b.Taxes.TotalTaxes)
	assert.InDelta(t, 9590.0*12/60000*100, b.Taxes.EffectiveTaxRate, 1e-9)
	assert.InDelta(t, 84.0, b.NetPay.TakeHomePercentage, 1e-9)
}

func TestBuildBreakdown_Annualization(t *testing.T) {
	gross := 1234.56
	net := 987.65

	for _, cadence := range []domain.Cadence{domain.CadenceWeekly, domain.CadenceBiweekly, domain.CadenceMonthly} {
		t.Run(string(cadence), func(t *testing.T) {
			b := BuildBreakdown(domain.CalculationResponse{GrossPerCadence: gross, NetPerCadence: net}, cadence)
			assert.Equal(t, gross*cadence.PeriodsPerYear(), b.GrossPay.Annual)
			assert.Equal(t, net*cadence.PeriodsPerYear(), b.NetPay.Annual)
		})
	}

	b := BuildBreakdown(domain.CalculationResponse{GrossPerCadence: gross, NetPerCadence: net}, domain.CadenceAnnual)
	assert.Equal(t, gross, b.GrossPay.Annual)
	assert.Equal(t, net, b.NetPay.Annual)
}

func TestBuildBreakdown_UnknownCadenceIsAnnual(t *testing.T) {
	b := BuildBreakdown(domain.CalculationResponse{GrossPerCadence: 50000, NetPerCadence: 40000}, domain.Cadence("FORTNIGHTLY"))

	assert.Equal(t, 50000.0, b.GrossPay.Annual)
	assert.Equal(t, "Annual", b.GrossPay.CadenceLabel)
}

func TestBuildBreakdown_ZeroGross(t *testing.T) {
	resp := domain.CalculationResponse{
		GrossPerCadence: 0,
		NetPerCadence:   0,
		LineItems:       scenarioItems(),
	}

	b := BuildBreakdown(resp, domain.CadenceWeekly)

	assert.Equal(t, 0.0, b.Taxes.EffectiveTaxRate)
	assert.Equal(t, 0.0, b.NetPay.TakeHomePercentage)
	assert.Equal(t, 9590.0, b.Taxes.TotalTaxes)
}

func TestBuildBreakdown_OverflowingScalarsGiveZeroRates(t *testing.T) {
	resp := domain.CalculationResponse{
		GrossPerCadence: 1e308,
		NetPerCadence:   1e308,
		LineItems:       scenarioItems(),
	}

	b := BuildBreakdown(resp, domain.CadenceWeekly)

	assert.True(t, math.IsInf(b.GrossPay.Annual, 1))
	assert.Equal(t, 0.0, b.Taxes.EffectiveTaxRate)
	assert.Equal(t, 0.0, b.NetPay.TakeHomePercentage)
	assert.False(t, math.IsNaN(b.NetPay.TakeHomePercentage))
}

func TestBuildBreakdown_HugeNetAgainstFiniteGross(t *testing.T) {
	resp := domain.CalculationResponse{
		GrossPerCadence: 1000,
		NetPerCadence:   1e308,
	}

	b := BuildBreakdown(resp, domain.CadenceMonthly)

	assert.Equal(t, 12000.0, b.GrossPay.Annual)
	assert.Equal(t, 0.0, b.NetPay.TakeHomePercentage)
}

func TestBuildBreakdown_UnrecognizedItemDropped(t *testing.T) {
	base := domain.CalculationResponse{
		GrossPerCadence: 60000,
		NetPerCadence:   50410,
		LineItems:       scenarioItems(),
	}
	withDues := base
	withDues.LineItems = append(scenarioItems(), domain.LineItem{Name: "Union Dues", Amount: 200})

	expected := BuildBreakdown(base, domain.CadenceAnnual)
	actual := BuildBreakdown(withDues, domain.CadenceAnnual)

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("unrecognized item changed the breakdown (-want +got):\n%s", diff)
	}
}

func TestBuildBreakdown_Deductions(t *testing.T) {
	resp := domain.CalculationResponse{
		GrossPerCadence: 80000,
		NetPerCadence:   60000,
		LineItems: []domain.LineItem{
			{Name: "HSA Contribution", Amount: 1200},
			{Name: "Post-tax Deductions", Amount: 300},
			{Name: "Federal Income Tax", Amount: 9000},
			{Name: "Employee Pension", Amount: 0},
			{Name: "Pre-tax Deductions", Amount: 2400},
			{Name: "Post-tax Deductions (Roth)", Amount: 150},
			{Name: "Pre-tax Deductions (refund)", Amount: -50},
		},
	}

	b := BuildBreakdown(resp, domain.CadenceAnnual)

	assert.Equal(t, []domain.DeductionItem{
		{Name: "HSA Contribution", Amount: 1200},
		{Name: "Pre-tax Deductions", Amount: 2400},
	}, b.Deductions.PreTaxItems)
	assert.Equal(t, []domain.DeductionItem{
		{Name: "Post-tax Deductions", Amount: 300},
		{Name: "Post-tax Deductions (Roth)", Amount: 150},
	}, b.Deductions.PostTaxItems)
	assert.Equal(t, 3600.0, b.Deductions.PreTaxTotal)
	assert.Equal(t, 450.0, b.Deductions.PostTaxTotal)
	assert.Equal(t, 4050.0, b.Deductions.Total)
	assert.Equal(t, 9000.0, b.Taxes.TotalTaxes)
}

func TestBuildBreakdown_NoDeductionsHasEmptyLists(t *testing.T) {
	b := BuildBreakdown(domain.CalculationResponse{GrossPerCadence: 1000, NetPerCadence: 900}, domain.CadenceAnnual)

	assert.NotNil(t, b.Deductions.PreTaxItems)
	assert.Empty(t, b.Deductions.PreTaxItems)
	assert.NotNil(t, b.Deductions.PostTaxItems)
	assert.Equal(t, 0.0, b.Deductions.Total)
	assert.Equal(t, 0.0, b.Taxes.FICA.Total)
}

func TestBuildBreakdown_DuplicateCategoryLastWins(t *testing.T) {
	resp := domain.CalculationResponse{
		GrossPerCadence: 100000,
		NetPerCadence:   70000,
		LineItems: []domain.LineItem{
			{Name: "State Income Tax", Amount: 4000},
			{Name: "State Income Tax (supplemental)", Amount: 500},
			{Name: "Additional Medicare", Amount: 90},
		},
	}

	b := BuildBreakdown(resp, domain.CadenceAnnual)

	require.NotNil(t, b.Taxes.State)
	assert.Equal(t, 500.0, b.Taxes.State.Amount)
	assert.Equal(t, "State Income Tax (supplemental)", b.Taxes.State.Label)
	assert.Equal(t, 4590.0, b.Taxes.TotalTaxes)
	assert.Equal(t, 90.0, b.Taxes.FICA.Total)
	assert.Equal(t, 0.9, *b.Taxes.FICA.AdditionalMedicare.Rate)
}

func TestBuildBreakdown_Idempotent(t *testing.T) {
	resp := domain.CalculationResponse{
		CalculationID:   "calc-42",
		GrossPerCadence: 2307.69,
		NetPerCadence:   1800.12,
		LineItems: append(scenarioItems(),
			domain.LineItem{Name: "State Income Tax", Amount: 2100},
			domain.LineItem{Name: "Employee Pension", Amount: 3000},
		),
	}

	first := BuildBreakdown(resp, domain.CadenceBiweekly)
	second := BuildBreakdown(resp, domain.CadenceBiweekly)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("breakdown not idempotent (-first +second):\n%s", diff)
	}
}
