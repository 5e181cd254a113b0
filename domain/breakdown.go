package domain

type GrossPay struct {
	Annual       float64 `json:"annual"`
	PerPeriod    float64 `json:"perPeriod"`
	CadenceLabel string  `json:"cadenceLabel"`
}

// TaxBreakdownItem is a single tax line. Rate is informational only and is
// never derived from Amount.
type TaxBreakdownItem struct {
	Amount float64  `json:"amount"`
	Rate   *float64 `json:"rate,omitempty"`
	Label  string   `json:"label"`
}

type FicaTaxes struct {
	SocialSecurity     *TaxBreakdownItem `json:"socialSecurity,omitempty"`
	Medicare           *TaxBreakdownItem `json:"medicare,omitempty"`
	AdditionalMedicare *TaxBreakdownItem `json:"additionalMedicare,omitempty"`
	Total              float64           `json:"total"`
}

type Taxes struct {
	Federal          *TaxBreakdownItem `json:"federal,omitempty"`
	State            *TaxBreakdownItem `json:"state,omitempty"`
	Local            *TaxBreakdownItem `json:"local,omitempty"`
	FICA             FicaTaxes         `json:"fica"`
	TotalTaxes       float64           `json:"totalTaxes"`
	EffectiveTaxRate float64           `json:"effectiveTaxRate"`
}

type DeductionItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Deductions struct {
	PreTaxItems  []DeductionItem `json:"preTaxItems"`
	PostTaxItems []DeductionItem `json:"postTaxItems"`
	PreTaxTotal  float64         `json:"preTaxTotal"`
	PostTaxTotal float64         `json:"postTaxTotal"`
	Total        float64         `json:"total"`
}

type NetPay struct {
	Annual             float64 `json:"annual"`
	PerPeriod          float64 `json:"perPeriod"`
	TakeHomePercentage float64 `json:"takeHomePercentage"`
}

// Breakdown is the UI ready result of one calculation.
type Breakdown struct {
	CalculationID   string     `json:"calculationId,omitempty"`
	Cadence         Cadence    `json:"cadence"`
	Currency        string     `json:"currency,omitempty"`
	RulePackVersion string     `json:"rulePackVersion,omitempty"`
	GrossPay        GrossPay   `json:"grossPay"`
	Taxes           Taxes      `json:"taxes"`
	Deductions      Deductions `json:"deductions"`
	NetPay          NetPay     `json:"netPay"`
	Explanation     []string   `json:"explanation,omitempty"`
}
