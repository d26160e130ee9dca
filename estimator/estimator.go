// Package estimator drives transfer(address,uint256) simulations against a
// full node and turns them into fee reports.
package estimator

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	client "github.com/wythers/tron-energy/client/tron"
	model "github.com/wythers/tron-energy/model/tron"
	util "github.com/wythers/tron-energy/util/tron"
)

type Estimator struct {
	Client   *client.Client
	Contract string
	Decimals int
	PriceSun int64

	Log zerolog.Logger
}

func New(c *client.Client, contract string, decimals int, priceSun int64) *Estimator {
	return &Estimator{
		Client:   c,
		Contract: contract,
		Decimals: decimals,
		PriceSun: priceSun,
		Log:      zerolog.Nop(),
	}
}

// Estimate probes whether the recipient already holds the token, then
// simulates the transfer. A failed balance probe degrades to an unknown
// holder status; a failed simulation aborts the estimate.
func (e *Estimator) Estimate(from, to string, amount decimal.Decimal) (model.Estimate, error) {
	est := model.Estimate{Recipient: to, FeeTRX: decimal.Zero}

	balance, err := e.Client.GetTRC20Balance(to, e.Contract, e.Decimals)
	if err != nil {
		e.Log.Warn().Err(err).Str("address", to).Msg("balance probe failed, holder status unknown")
	} else {
		holds := balance.IsPositive()
		est.HoldsToken = &holds
	}

	energy, err := e.Client.EstimateTransferEnergy(from, to, e.Contract, amount, e.Decimals)
	if err != nil {
		return est, fmt.Errorf("estimate transfer to %s: %w", to, err)
	}

	est.EnergyUsed = energy
	est.FeeTRX = util.EnergyFeeTRX(energy, e.PriceSun)
	return est, nil
}

// Compare runs two sequential estimates, the first against a recipient
// expected to hold the token and the second against one expected not to, and
// reports the difference storage allocation makes.
func (e *Estimator) Compare(from, toHeld, toFresh string, amount decimal.Decimal) (*model.Comparison, error) {
	held, err := e.Estimate(from, toHeld, amount)
	if err != nil {
		return nil, err
	}

	fresh, err := e.Estimate(from, toFresh, amount)
	if err != nil {
		return nil, err
	}

	cmp := &model.Comparison{
		From:       from,
		Amount:     amount,
		PriceSun:   e.PriceSun,
		Held:       held,
		Fresh:      fresh,
		EnergyDiff: fresh.EnergyUsed - held.EnergyUsed,
		Ratio:      decimal.Zero,
	}
	if held.EnergyUsed > 0 {
		cmp.Ratio = decimal.NewFromInt(fresh.EnergyUsed).
			Div(decimal.NewFromInt(held.EnergyUsed)).
			Round(2)
	}

	return cmp, nil
}
