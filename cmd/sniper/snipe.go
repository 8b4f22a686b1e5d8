package main

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	dlmmsnipersdk "dlmmSniperSDK"
	"dlmmSniperSDK/constants"
	"dlmmSniperSDK/jupiter"
	"dlmmSniperSDK/storage"
	"dlmmSniperSDK/types"
)

func runSnipe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetLevel(level)
	log := logrus.WithField("component", "sniper")

	ctx := cmd.Context()
	sniper := dlmmsnipersdk.NewSniper()
	sniper.SetQuoteToken(types.QuoteToken(cfg.Quote))
	sniper.SetBaseToken(cfg.BaseToken)
	if cfg.BaseFeeBps > 0 {
		sniper.SetBaseFee(cfg.BaseFeeBps)
	}
	if cfg.BinStepBps > 0 {
		sniper.SetBinStep(cfg.BinStepBps)
	}

	jup := jupiter.NewClient(cfg.JupiterURL, logrus.WithField("component", "jupiter"))

	if cfg.BaseToken != "" {
		info, err := jup.Resolve(ctx, cfg.BaseToken)
		switch {
		case errors.Is(err, jupiter.ErrTokenNotFound):
			log.WithField("mint", cfg.BaseToken).Warn("base token not found on Jupiter")
		case err != nil:
			log.WithError(err).Warn("token lookup unavailable")
		default:
			log.WithFields(logrus.Fields{"symbol": info.Symbol, "name": info.Name}).
				Info("base token resolved")
		}

		price, err := jup.Quote(ctx, cfg.BaseToken, types.QuoteToken(cfg.Quote))
		sniper.SetMarketPrice(price, err == nil)
		if err != nil {
			log.WithError(err).Warn("market price unavailable")
		}
	}

	if cfg.InitialPrice != "" {
		p, err := decimal.NewFromString(cfg.InitialPrice)
		if err != nil {
			return fmt.Errorf("parse initial price: %w", err)
		}
		sniper.SetInitialPrice(p)
	} else if !sniper.ApplyMarketPrice() {
		return errors.New("no initial price given and market price unavailable")
	}

	if cfg.PresetID > 0 {
		if !sniper.ApplyPreset(cfg.PresetID) {
			return fmt.Errorf("preset %d could not be applied", cfg.PresetID)
		}
	}
	if cfg.MinPrice != "" {
		p, err := decimal.NewFromString(cfg.MinPrice)
		if err != nil {
			return fmt.Errorf("parse min price: %w", err)
		}
		sniper.SetMinPrice(p)
	}
	if cfg.MaxPrice != "" {
		p, err := decimal.NewFromString(cfg.MaxPrice)
		if err != nil {
			return fmt.Errorf("parse max price: %w", err)
		}
		sniper.SetMaxPrice(p)
	}
	if cfg.DepositOption != "" {
		sniper.SetDepositOption(types.DepositOption(cfg.DepositOption))
	}
	if cfg.Deposit != "" {
		amt, err := decimal.NewFromString(cfg.Deposit)
		if err != nil {
			return fmt.Errorf("parse deposit amount: %w", err)
		}
		sniper.SetDepositAmount(amt)
	}

	if cfg.Wallet != "" && cfg.RPCURL != "" {
		owner, err := solana.PublicKeyFromBase58(cfg.Wallet)
		if err != nil {
			return fmt.Errorf("parse wallet address: %w", err)
		}
		source := dlmmsnipersdk.RPCBalanceSource{Conn: rpc.New(cfg.RPCURL)}
		balance, err := source.BalanceOf(ctx, owner)
		sniper.SetWalletBalance(balance, err == nil)
		if err != nil {
			log.WithError(err).Warn("wallet balance unavailable")
		}
	}

	snap := sniper.Snapshot()
	log.WithFields(logrus.Fields{
		"bins":       snap.Derived.NumberOfBins,
		"minOffset":  snap.Derived.MinPriceOffsetPct.String(),
		"maxOffset":  snap.Derived.MaxPriceOffsetPct.String(),
		"poolValid":  snap.Derived.PoolValid,
		"posValid":   snap.Derived.PositionValid,
	}).Info("configuration ready")
	if snap.Derived.InsufficientBalance {
		log.Warn("deposit amount exceeds wallet balance")
	}

	coordinator := dlmmsnipersdk.NewCoordinator(
		dlmmsnipersdk.WalletKeyGenerator{},
		storage.NewJSONLSink(cfg.Out),
		log,
	)

	req, err := coordinator.Submit(ctx, sniper)
	if err != nil {
		var vErr *dlmmsnipersdk.ValidationFailedError
		if errors.As(err, &vErr) {
			for _, fe := range vErr.Errors {
				log.WithField("field", fe.Path).Error(fe.Message)
			}
		}
		return err
	}

	log.WithFields(logrus.Fields{
		"pool":     req.PoolAddress.String(),
		"position": req.PositionAddress.String(),
		"out":      cfg.Out,
	}).Info("pool + position creation request recorded")
	return nil
}

func runPresets(*cobra.Command, []string) {
	for _, p := range constants.Presets {
		marker := " "
		if p.QuickAccess {
			marker = "*"
		}
		fmt.Printf("%s %d  %-8s %-14s -%s%%/+%s%%  deposit %s\n",
			marker, p.ID, p.Code, p.Name,
			p.LowerPercentage.String(), p.UpperPercentage.String(),
			p.DepositAmount.String(),
		)
	}
}
