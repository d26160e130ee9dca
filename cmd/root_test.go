package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindEnvFillsUnsetFlags(t *testing.T) {
	t.Setenv("TRONENERGY_NODE", "http://localhost:16667")
	t.Setenv("TRONENERGY_ENERGY_PRICE", "280")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	node := flags.String("node", "https://api.trongrid.io", "")
	price := flags.Int64("energy-price", 420, "")

	require.NoError(t, bindEnv(flags))
	assert.Equal(t, "http://localhost:16667", *node)
	assert.EqualValues(t, 280, *price)
}

func TestBindEnvKeepsExplicitFlags(t *testing.T) {
	t.Setenv("TRONENERGY_NODE", "http://localhost:16667")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	node := flags.String("node", "https://api.trongrid.io", "")
	require.NoError(t, flags.Set("node", "http://explicit:8090"))

	require.NoError(t, bindEnv(flags))
	assert.Equal(t, "http://explicit:8090", *node)
}

func TestHoldsLabel(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, "unknown", holdsLabel(nil))
	assert.Equal(t, "yes", holdsLabel(&yes))
	assert.Equal(t, "no", holdsLabel(&no))
}
