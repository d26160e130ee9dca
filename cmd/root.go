package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	client "github.com/wythers/tron-energy/client/tron"
	"github.com/wythers/tron-energy/estimator"
	model "github.com/wythers/tron-energy/model/tron"
)

var (
	nodeURL      string
	contractAddr string
	decimals     int
	priceSun     int64
	logLevel     string
	historyPath  string
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tron-energy",
		Short: "Estimate the energy cost of TRC20 transfers",
		Long: `Simulates TRC20 transfers against a TRON full node to predict how much
energy they will consume and what that costs in TRX. Sending to an address
that does not yet hold the token pays extra energy for storage allocation;
the compare command measures that difference directly.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindEnv(cmd.Flags())
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&nodeURL, "node", model.DefaultNodeURL, "full node HTTP gateway URL")
	pf.StringVar(&contractAddr, "contract", model.USDTContract, "TRC20 contract address")
	pf.IntVar(&decimals, "decimals", model.USDTDecimals, "token decimal precision")
	pf.Int64Var(&priceSun, "energy-price", model.DefaultPriceSun, "energy price in SUN per unit")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&historyPath, "history", "", "sqlite file to append comparison runs to")

	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewEstimateCmd())
	rootCmd.AddCommand(NewBalanceCmd())
	rootCmd.AddCommand(NewHistoryCmd())

	return rootCmd
}

// bindEnv lets TRONENERGY_* variables stand in for flags that were not set
// on the command line, e.g. TRONENERGY_NODE or TRONENERGY_ENERGY_PRICE.
func bindEnv(flags *pflag.FlagSet) error {
	viper.SetEnvPrefix("TRONENERGY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !viper.IsSet(f.Name) {
			return
		}
		err = f.Value.Set(viper.GetString(f.Name))
	})
	return err
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func newEstimator(cmd *cobra.Command, log zerolog.Logger) *estimator.Estimator {
	c := client.NewClient(cmd.Context(), nodeURL)
	c.Log = log

	e := estimator.New(c, contractAddr, decimals, priceSun)
	e.Log = log
	return e
}
