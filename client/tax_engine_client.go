package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"paycheck-agent/domain"
	"paycheck-agent/logger"
)

const (
	calculatePath       = "/v1/calculate"
	defaultTimeout      = 15 * time.Second
	maxResponseBytes    = 1 << 20
	CorrelationIDHeader = "X-Correlation-ID"
	APIKeyHeader        = "X-API-Key"
)

// maxResponseAmount bounds every amount in a response. Larger values cannot
// be annualized without overflowing, so they mark the payload as broken.
const maxResponseAmount = 1e12

// HTTPError describes a non-2xx reply from the calculation service.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

// Error leaves out Body; callers surface it separately.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %s", e.Method, e.URL, e.Status)
}

type ClientOption func(*TaxEngineClient)

// TaxEngineClient calls the remote tax calculation service.
type TaxEngineClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewTaxEngineClient creates a client for the service rooted at baseURL.
func NewTaxEngineClient(baseURL string, options ...ClientOption) *TaxEngineClient {
	c := &TaxEngineClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger.Log,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *TaxEngineClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func WithAPIKey(apiKey string) ClientOption {
	return func(c *TaxEngineClient) {
		c.apiKey = apiKey
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *TaxEngineClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithLogger(l *zap.Logger) ClientOption {
	return func(c *TaxEngineClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// Calculate posts req to the calculation endpoint and decodes the reply.
// Failures are reported as *domain.CalculationError of kind
// TransportFailure, RemoteServiceError or MalformedResponse.
func (c *TaxEngineClient) Calculate(ctx context.Context, req domain.CalculationRequest) (*domain.CalculationResponse, error) {
	log := logger.WithContext(ctx, c.logger)
	url := c.baseURL + calculatePath

	body, err := json.Marshal(req)
	if err != nil {
		return nil, domain.NewError(domain.KindTransportFailure, "failed to encode calculation request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewError(domain.KindTransportFailure, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set(APIKeyHeader, c.apiKey)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		httpReq.Header.Set(CorrelationIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		log.Error("Tax engine request failed",
			zap.String("url", url),
			zap.Error(err),
			zap.Duration("duration", duration))
		return nil, domain.NewError(domain.KindTransportFailure, "", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domain.NewError(domain.KindTransportFailure, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        url,
			Method:     http.MethodPost,
			Body:       string(respBody),
		}
		log.Warn("Tax engine returned an error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", httpErr.Body),
			zap.Duration("duration", duration))
		return nil, domain.NewError(domain.KindRemoteServiceError, httpErr.Body, httpErr)
	}

	var calcResp domain.CalculationResponse
	if err := json.Unmarshal(respBody, &calcResp); err != nil {
		log.Warn("Tax engine response could not be decoded", zap.Error(err))
		return nil, domain.NewError(domain.KindMalformedResponse, "", err)
	}

	if err := validateAmounts(calcResp); err != nil {
		log.Warn("Tax engine response has out of range amounts", zap.Error(err))
		return nil, domain.NewError(domain.KindMalformedResponse, "", err)
	}

	log.Info("Tax engine calculation succeeded",
		zap.String("calculation_id", calcResp.CalculationID),
		zap.String("rule_pack_version", calcResp.RulePackVersion),
		zap.Int("line_items", len(calcResp.LineItems)),
		zap.Duration("duration", duration))

	return &calcResp, nil
}

func validateAmounts(resp domain.CalculationResponse) error {
	if err := checkAmount("grossPerCadence", resp.GrossPerCadence); err != nil {
		return err
	}
	if err := checkAmount("netPerCadence", resp.NetPerCadence); err != nil {
		return err
	}
	for i, item := range resp.LineItems {
		if err := checkAmount(fmt.Sprintf("lineItems[%d].amount", i), item.Amount); err != nil {
			return err
		}
	}
	return nil
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxResponseAmount {
		return fmt.Errorf("%s out of range: %g", field, v)
	}
	return nil
}
