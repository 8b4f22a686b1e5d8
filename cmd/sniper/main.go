package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "sniper",
		Short:        "DLMM pool sniper",
		SilenceUsage: true,
	}

	snipeCmd := &cobra.Command{
		Use:   "snipe",
		Short: "Configure and submit a pool + position creation request",
		RunE:  runSnipe,
	}

	snipeCmd.Flags().String("rpc", "", "Solana RPC URL (enables the wallet balance check)")
	snipeCmd.Flags().String("jupiter-url", "", "Jupiter lite API base URL")
	snipeCmd.Flags().String("quote", "SOL", "quote token (SOL or USDC)")
	snipeCmd.Flags().String("base-token", "", "base token mint address")
	snipeCmd.Flags().Int("base-fee", 0, "base fee in bps (0 = unset)")
	snipeCmd.Flags().Int("bin-step", 0, "bin step in bps")
	snipeCmd.Flags().String("initial-price", "", "initial price; empty = apply the market price")
	snipeCmd.Flags().Int("preset", 0, "range preset id (0 = custom range)")
	snipeCmd.Flags().String("min-price", "", "min price (custom range)")
	snipeCmd.Flags().String("max-price", "", "max price (custom range)")
	snipeCmd.Flags().String("deposit", "", "deposit amount in quote-token units")
	snipeCmd.Flags().String("deposit-option", "", "fixed deposit option (0.5, 1, 5) or CUSTOM")
	snipeCmd.Flags().String("wallet", "", "wallet address for the balance warning")
	snipeCmd.Flags().String("out", "./data/creation_requests.jsonl", "output JSONL path")
	snipeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(snipeCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List the range presets",
		Run:   runPresets,
	}
	root.AddCommand(presetsCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
