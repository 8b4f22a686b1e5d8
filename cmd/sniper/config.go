package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config holds the snipe command's settings, merged from flags and
// SNIPER_* environment variables.
type config struct {
	RPCURL        string
	JupiterURL    string
	Quote         string
	BaseToken     string
	BaseFeeBps    int
	BinStepBps    int
	InitialPrice  string
	PresetID      int
	MinPrice      string
	MaxPrice      string
	Deposit       string
	DepositOption string
	Wallet        string
	Out           string
	LogLevel      string
}

func loadConfig(flags *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetEnvPrefix("SNIPER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("quote", "SOL")
	v.SetDefault("out", "./data/creation_requests.jsonl")
	v.SetDefault("log-level", "info")

	if err := v.BindPFlags(flags); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	return config{
		RPCURL:        v.GetString("rpc"),
		JupiterURL:    v.GetString("jupiter-url"),
		Quote:         v.GetString("quote"),
		BaseToken:     v.GetString("base-token"),
		BaseFeeBps:    v.GetInt("base-fee"),
		BinStepBps:    v.GetInt("bin-step"),
		InitialPrice:  v.GetString("initial-price"),
		PresetID:      v.GetInt("preset"),
		MinPrice:      v.GetString("min-price"),
		MaxPrice:      v.GetString("max-price"),
		Deposit:       v.GetString("deposit"),
		DepositOption: v.GetString("deposit-option"),
		Wallet:        v.GetString("wallet"),
		Out:           v.GetString("out"),
		LogLevel:      v.GetString("log-level"),
	}, nil
}
