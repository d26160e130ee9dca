package tron

import (
	"github.com/shopspring/decimal"
)

const (
	// Mainnet defaults, overridable from the CLI.
	USDTContract    = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	USDTDecimals    = 6
	DefaultNodeURL  = "https://api.trongrid.io"
	DefaultPriceSun = 420

	TransferSelector  = "transfer(address,uint256)"
	BalanceOfSelector = "balanceOf(address)"
)

// TriggerRequest is the /wallet/triggerconstantcontract request body.
type TriggerRequest struct {
	OwnerAddress     string `json:"owner_address"`
	ContractAddress  string `json:"contract_address"`
	FunctionSelector string `json:"function_selector"`
	Parameter        string `json:"parameter"`
	Visible          bool   `json:"visible"`
}

// TriggerResult is the subset of the simulation response this tool consumes.
type TriggerResult struct {
	Result struct {
		Result  bool   `json:"result"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"result"`
	EnergyUsed     int64    `json:"energy_used"`
	EnergyPenalty  int64    `json:"energy_penalty"`
	ConstantResult []string `json:"constant_result"`
}

type AccountResource struct {
	FreeNetUsed       int64 `json:"freeNetUsed"`
	FreeNetLimit      int64 `json:"freeNetLimit"`
	TotalNetLimit     int64 `json:"TotalNetLimit"`
	TotalNetWeight    int64 `json:"TotalNetWeight"`
	TronPowerLimit    int64 `json:"tronPowerLimit"`
	EnergyUsed        int64 `json:"EnergyUsed"`
	EnergyLimit       int64 `json:"EnergyLimit"`
	TotalEnergyLimit  int64 `json:"TotalEnergyLimit"`
	TotalEnergyWeight int64 `json:"TotalEnergyWeight"`
}

// Available returns the energy the account can still spend from stake.
func (r *AccountResource) Available() int64 {
	return r.EnergyLimit - r.EnergyUsed
}

// Estimate is the outcome of one transfer simulation. HoldsToken is nil
// when the balance probe failed, which is distinct from a confirmed zero
// balance.
type Estimate struct {
	Recipient  string          `json:"recipient"`
	HoldsToken *bool           `json:"holds_token"`
	EnergyUsed int64           `json:"energy_used"`
	FeeTRX     decimal.Decimal `json:"fee_trx"`
}

// Comparison reports the energy cost of transferring to a token-holding
// recipient against a fresh one.
type Comparison struct {
	From       string          `json:"from"`
	Amount     decimal.Decimal `json:"amount"`
	PriceSun   int64           `json:"energy_price_sun"`
	Held       Estimate        `json:"held"`
	Fresh      Estimate        `json:"fresh"`
	EnergyDiff int64           `json:"energy_diff"`
	// Ratio is fresh/held energy, zero when the held estimate is zero.
	Ratio      decimal.Decimal `json:"ratio"`
}
