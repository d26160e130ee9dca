package tron

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	model "github.com/wythers/tron-energy/model/tron"
)

const (
	fromAddress  = "TTi1GbniVgqxoz5EaWTsr9T3DgAyVpsJnH"
	heldAddress  = "TSLbRevWFn3hktZmfDrzRbDLfEA6RQjNwK"
	usdtContract = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	usdtDecimals = 6
)

var balanceResp = `{
  "result": {
    "result": true
  },
  "energy_used": 541,
  "constant_result": [
    "00000000000000000000000000000000000000000000000000000000000003e8"
  ]
}`

func TestGetTRC20Balance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/triggerconstantcontract", r.URL.Path)

		var req model.TriggerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.BalanceOfSelector, req.FunctionSelector)
		assert.Equal(t, heldAddress, req.OwnerAddress)
		assert.True(t, req.Visible)
		assert.Len(t, req.Parameter, 64)

		fmt.Fprint(w, balanceResp)
	}))
	defer server.Close()

	c := NewClient(context.Background(), server.URL)
	balance, err := c.GetTRC20Balance(heldAddress, usdtContract, usdtDecimals)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("0.001")), "got %s", balance)
}

func TestGetTRC20BalanceRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"code":"CONTRACT_VALIDATE_ERROR","message":"6e6f7065"}}`)
	}))
	defer server.Close()

	c := NewClient(context.Background(), server.URL)
	_, err := c.GetTRC20Balance(heldAddress, usdtContract, usdtDecimals)
	assert.ErrorIs(t, err, ErrSimulationRejected)
}

func TestGetTRC20BalanceHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(context.Background(), server.URL)
	_, err := c.GetTRC20Balance(heldAddress, usdtContract, usdtDecimals)
	assert.Error(t, err)
}

func TestGetTRC20BalanceMissingResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"result":true},"energy_used":541}`)
	}))
	defer server.Close()

	c := NewClient(context.Background(), server.URL)
	_, err := c.GetTRC20Balance(heldAddress, usdtContract, usdtDecimals)
	assert.ErrorIs(t, err, ErrEmptyConstantResult)
}

func TestEstimateTransferEnergy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req model.TriggerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.TransferSelector, req.FunctionSelector)
		assert.Equal(t, fromAddress, req.OwnerAddress)
		assert.Equal(t, usdtContract, req.ContractAddress)
		assert.True(t, req.Visible)
		assert.Len(t, req.Parameter, 128)
		assert.True(t, strings.HasSuffix(req.Parameter, "3e8"))

		fmt.Fprint(w, `{"result":{"result":true},"energy_used":130000}`)
	}))
	defer server.Close()

	c := NewClient(context.Background(), server.URL)
	energy, err := c.EstimateTransferEnergy(fromAddress, heldAddress, usdtContract, decimal.RequireFromString("0.001"), usdtDecimals)
	require.NoError(t, err)
	assert.EqualValues(t, 130000, energy)
}

func TestEstimateTransferEnergyZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"result":true},"energy_used":0}`)
	}))
	defer server.Close()

	c := NewClient(context.Background(), server.URL)
	energy, err := c.EstimateTransferEnergy(fromAddress, heldAddress, usdtContract, decimal.RequireFromString("0.001"), usdtDecimals)
	assert.ErrorIs(t, err, ErrNoEnergyEstimate)
	assert.Zero(t, energy)
}

func TestEstimateTransferEnergyMissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"result":true},"constant_result":["01"]}`)
	}))
	defer server.Close()

	c := NewClient(context.Background(), server.URL)
	energy, err := c.EstimateTransferEnergy(fromAddress, heldAddress, usdtContract, decimal.RequireFromString("0.001"), usdtDecimals)
	assert.ErrorIs(t, err, ErrNoEnergyEstimate)
	assert.Zero(t, energy)
}

func TestEstimateTransferEnergyNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClient(context.Background(), server.URL)
	energy, err := c.EstimateTransferEnergy(fromAddress, heldAddress, usdtContract, decimal.RequireFromString("0.001"), usdtDecimals)
	assert.Error(t, err)
	assert.Zero(t, energy)
}

func TestEstimateTransferEnergyInvalidRecipient(t *testing.T) {
	c := NewClient(context.Background(), "http://unused")
	energy, err := c.EstimateTransferEnergy(fromAddress, "bogus", usdtContract, decimal.RequireFromString("0.001"), usdtDecimals)
	assert.Error(t, err)
	assert.Zero(t, energy)
}

func TestGetAccountResource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/getaccountresource", r.URL.Path)
		fmt.Fprint(w, `{"EnergyUsed":1000,"EnergyLimit":50000,"TotalEnergyLimit":180000000000,"TotalEnergyWeight":9000000000}`)
	}))
	defer server.Close()

	c := NewClient(context.Background(), server.URL)
	res, err := c.GetAccountResource(fromAddress)
	require.NoError(t, err)
	assert.EqualValues(t, 50000, res.EnergyLimit)
	assert.EqualValues(t, 49000, res.Available())
}
