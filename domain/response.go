package domain

// LineItem is one named amount returned by the remote calculation service.
type LineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CalculationResponse is the decoded body of a successful calculation call.
// Only GrossPerCadence, NetPerCadence and LineItems feed the breakdown.
type CalculationResponse struct {
	CalculationID   string     `json:"calculationId"`
	GrossPerCadence float64    `json:"grossPerCadence"`
	NetPerCadence   float64    `json:"netPerCadence"`
	Currency        string     `json:"currency"`
	RulePackVersion string     `json:"rulePackVersion"`
	LineItems       []LineItem `json:"lineItems"`
	Explanation     []string   `json:"explanation"`
}
