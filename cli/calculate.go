package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"paycheck-agent/domain"
	"paycheck-agent/logger"
)

func newCalculateCommand() *cobra.Command {
	var input domain.PaycheckInput

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a single paycheck breakdown and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logger.WithCorrelationID(ctx, uuid.New().String())

			breakdown, err := svc.Calculate(ctx, input)
			if err != nil {
				return err
			}
			return printBreakdown(cmd.OutOrStdout(), breakdown)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Salary, "salary", "", "annual salary")
	flags.StringVar(&input.State, "state", "", "state name or 2-letter code")
	flags.StringVar(&input.PayFrequency, "frequency", "", "pay frequency: weekly, biweekly or monthly (default annual)")
	flags.StringVar(&input.FilingStatus, "filing-status", "single", "single or married")
	flags.IntVar(&input.Allowances, "allowances", 0, "withholding allowances")
	flags.StringVar(&input.PensionPercent, "pension", "", "pension contribution in whole percent")
	flags.StringVar(&input.HSAAmount, "hsa", "", "annual HSA contribution")
	flags.StringVar(&input.PreTaxFixed, "pre-tax", "", "other fixed pre-tax deductions")
	flags.StringVar(&input.PostTaxFixed, "post-tax", "", "fixed post-tax deductions")
	flags.StringVar(&input.StudentLoanPlan, "student-loan-plan", "", "student loan repayment plan")
	flags.IntVar(&input.TaxYear, "tax-year", 0, "tax year (defaults to DEFAULT_TAX_YEAR)")
	_ = cmd.MarkFlagRequired("salary")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func printBreakdown(w io.Writer, breakdown domain.Breakdown) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(breakdown)
}
