package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paycheck-agent/domain"
)

func TestCalculateCommand(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "BIWEEKLY", req["cadence"])

		_, _ = w.Write([]byte(`{
			"calculationId": "calc-cli",
			"grossPerCadence": 2000,
			"netPerCadence": 1500,
			"lineItems": [
				{"name": "Federal Income Tax", "amount": 250},
				{"name": "Employee Pension", "amount": 100}
			]
		}`))
	}))
	defer engine.Close()

	t.Setenv("TAX_ENGINE_URL", engine.URL)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"calculate", "--salary", "52000", "--state", "Oregon", "--frequency", "biweekly"})

	require.NoError(t, root.Execute())

	var breakdown domain.Breakdown
	require.NoError(t, json.Unmarshal(out.Bytes(), &breakdown))
	assert.Equal(t, "calc-cli", breakdown.CalculationID)
	assert.Equal(t, 52000.0, breakdown.GrossPay.Annual)
	assert.Equal(t, 39000.0, breakdown.NetPay.Annual)
	assert.Equal(t, []domain.DeductionItem{{Name: "Employee Pension", Amount: 100}}, breakdown.Deductions.PreTaxItems)
}

func TestCalculateCommand_InvalidInput(t *testing.T) {
	t.Setenv("TAX_ENGINE_URL", "http://127.0.0.1:1")
	t.Setenv("LOG_LEVEL", "error")

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"calculate", "--salary", "nope", "--state", "CA"})

	err := root.Execute()
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCalculateCommand_RequiresSalary(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"calculate", "--state", "CA"})

	assert.Error(t, root.Execute())
}
