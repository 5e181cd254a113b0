package service

import (
	"context"

	"go.uber.org/zap"

	"paycheck-agent/domain"
	"paycheck-agent/logger"
	"paycheck-agent/repository"
)

//go:generate mockgen -source=paycheck_service.go -destination=../mocks/mock_tax_engine.go -package=mocks

// TaxEngine performs the remote calculation.
type TaxEngine interface {
	Calculate(ctx context.Context, req domain.CalculationRequest) (*domain.CalculationResponse, error)
}

type PaycheckService struct {
	builder *RequestBuilder
	engine  TaxEngine
	results repository.BreakdownRepository
	logger  *zap.Logger
}

// NewPaycheckService creates a PaycheckService.
func NewPaycheckService(
	builder *RequestBuilder,
	engine TaxEngine,
	results repository.BreakdownRepository,
) *PaycheckService {
	return &PaycheckService{
		builder: builder,
		engine:  engine,
		results: results,
		logger:  logger.Log,
	}
}

// Calculate builds the request for input, sends it to the tax engine and
// classifies the reply. The result replaces the latest stored breakdown only
// when every step succeeds.
func (s *PaycheckService) Calculate(ctx context.Context, input domain.PaycheckInput) (domain.Breakdown, error) {
	log := logger.WithContext(ctx, s.logger)

	req, err := s.builder.Build(input)
	if err != nil {
		log.Info("Rejected paycheck input", zap.Error(err))
		return domain.Breakdown{}, err
	}

	fields := []zap.Field{
		zap.Float64("annual_salary", req.AnnualSalary),
		zap.String("cadence", string(req.Cadence)),
		zap.String("country", req.Country),
		zap.Int("tax_year", req.TaxYear),
	}
	if opts, ok := req.JurisdictionOptions.(domain.USOptions); ok {
		fields = append(fields,
			zap.String("state", opts.StateCode),
			zap.String("filing_status", string(opts.FilingStatus)))
	}
	log.Info("Calculating paycheck", fields...)

	resp, err := s.engine.Calculate(ctx, req)
	if err != nil {
		return domain.Breakdown{}, err
	}
	if resp == nil {
		return domain.Breakdown{}, domain.NewError(domain.KindMalformedResponse, "empty response", nil)
	}

	breakdown := BuildBreakdown(*resp, req.Cadence)

	// Keeping the latest result is best effort.
	if err := s.results.Save(breakdown); err != nil {
		log.Warn("Failed to store latest breakdown", zap.Error(err))
	}

	log.Info("Paycheck calculated",
		zap.String("calculation_id", breakdown.CalculationID),
		zap.Float64("annual_gross", breakdown.GrossPay.Annual),
		zap.Float64("annual_net", breakdown.NetPay.Annual),
		zap.Float64("effective_tax_rate", breakdown.Taxes.EffectiveTaxRate))

	return breakdown, nil
}

// Latest returns the most recent successful breakdown.
func (s *PaycheckService) Latest() (domain.Breakdown, bool) {
	return s.results.Latest()
}

// Reset discards the most recent breakdown.
func (s *PaycheckService) Reset() {
	s.results.Reset()
}
