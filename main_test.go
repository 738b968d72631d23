package banksim_test

import (
	"os"
	"testing"

	"banksim"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// keep console output assertable
	color.NoColor = true
	os.Exit(m.Run())
}

func newTestRegistry(t *testing.T) *banksim.Registry {
	t.Helper()
	cfg := banksim.DefaultConfig()
	reg, err := banksim.NewRegistry(&cfg)
	require.NoError(t, err)
	return reg
}

func newTestService(t *testing.T) (*banksim.Service, *banksim.Registry) {
	t.Helper()
	reg := newTestRegistry(t)
	log := zerolog.Nop()
	return banksim.NewService(reg, &log), reg
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
