package tron

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	model "github.com/wythers/tron-energy/model/tron"
	util "github.com/wythers/tron-energy/util/tron"
)

var (
	ErrSimulationRejected  = errors.New("contract simulation rejected by node")
	ErrNoEnergyEstimate    = errors.New("simulation reported zero energy used")
	ErrEmptyConstantResult = errors.New("constant result missing from response")
)

type Client struct {
	http.Client

	Ctx context.Context

	Url string

	Log zerolog.Logger
}

func NewClient(ctx context.Context, url string) *Client {
	return &Client{
		Client: http.Client{},
		Ctx:    ctx,
		Url:    url,
		Log:    zerolog.Nop(),
	}
}

// TriggerConstantContract simulates a contract call against current chain
// state without broadcasting anything.
func (c *Client) TriggerConstantContract(req model.TriggerRequest) (*model.TriggerResult, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	response, status, err := c.jsonRPC(data, c.Url+"/wallet/triggerconstantcontract", "POST")
	if err != nil {
		return nil, err
	}
	if status != 200 {
		return nil, fmt.Errorf("triggerconstantcontract status: %d, body: %s", status, string(response))
	}

	var result model.TriggerResult
	if err := json.Unmarshal(response, &result); err != nil {
		return nil, err
	}

	c.Log.Debug().
		Str("selector", req.FunctionSelector).
		Str("contract", req.ContractAddress).
		Int64("energy_used", result.EnergyUsed).
		Bool("ok", result.Result.Result).
		Msg("triggerconstantcontract")

	if !result.Result.Result {
		if result.Result.Code != "" {
			return nil, fmt.Errorf("%w: %s %s", ErrSimulationRejected, result.Result.Code, result.Result.Message)
		}
		return nil, fmt.Errorf("%w: %s", ErrSimulationRejected, string(response))
	}

	return &result, nil
}

// GetTRC20Balance reads a token balance with a balanceOf(address) simulation.
func (c *Client) GetTRC20Balance(holder, contractAddr string, decimals int) (decimal.Decimal, error) {
	parameter, err := util.BalanceOfParams(holder)
	if err != nil {
		return decimal.Zero, err
	}

	result, err := c.TriggerConstantContract(model.TriggerRequest{
		OwnerAddress:     holder,
		ContractAddress:  contractAddr,
		FunctionSelector: model.BalanceOfSelector,
		Parameter:        parameter,
		Visible:          true,
	})
	if err != nil {
		return decimal.Zero, err
	}

	if len(result.ConstantResult) == 0 {
		return decimal.Zero, ErrEmptyConstantResult
	}

	balance, err := util.DecodeConstantWord(result.ConstantResult[0])
	if err != nil {
		return decimal.Zero, err
	}

	return util.BigIntToDecimal(balance, decimals), nil
}

// EstimateTransferEnergy simulates transfer(address,uint256) from the given
// owner and returns the energy the node predicts it would consume. A zero
// estimate on a successful simulation means the node never executed the
// contract, so it is returned as an error rather than a measurement.
func (c *Client) EstimateTransferEnergy(from, to, contractAddr string, amount decimal.Decimal, decimals int) (int64, error) {
	if !util.IsValidTronAddress(to) || !util.IsValidTronAddress(contractAddr) {
		return 0, errors.New("invalid tron to address")
	}

	parameter, err := util.TransferParams(to, amount, decimals)
	if err != nil {
		return 0, err
	}

	result, err := c.TriggerConstantContract(model.TriggerRequest{
		OwnerAddress:     from,
		ContractAddress:  contractAddr,
		FunctionSelector: model.TransferSelector,
		Parameter:        parameter,
		Visible:          true,
	})
	if err != nil {
		return 0, err
	}

	if result.EnergyUsed == 0 {
		return 0, ErrNoEnergyEstimate
	}

	return result.EnergyUsed, nil
}

func (c *Client) GetAccountResource(address string) (*model.AccountResource, error) {
	jsonStr := fmt.Sprintf(`{
		"address": "%s",
		"visible": true
	}`, address)
	data := []byte(jsonStr)

	body, statusCode, err := c.jsonRPC(data, c.Url+"/wallet/getaccountresource", "POST")
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status code: %d, body: %s", statusCode, string(body))
	}

	var resource model.AccountResource
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v, body: %s", err, string(body))
	}

	return &resource, nil
}

func (c *Client) jsonRPC(data []byte, url, requestType string) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(c.Ctx, 8*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, requestType, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}
