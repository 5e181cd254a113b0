package service

const (
	MaxAnnualSalary   = 1_000_000_000.0 // 1 billion
	MaxPensionPercent = 100.0           // whole percent
	MaxAllowances     = 99
	MinTaxYear        = 2000

	// Informational statutory rates attached to FICA line items.
	SocialSecurityRate     = 6.2
	MedicareRate           = 1.45
	AdditionalMedicareRate = 0.9
)
