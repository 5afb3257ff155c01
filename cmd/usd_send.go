package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
	"github.com/pooofdevelopment/go-hl-client/pkg/utilities"
)

func newUsdSendCmd(v *viper.Viper) *cobra.Command {
	var (
		destination string
		amount      string
		chainID     uint64
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "usd-send",
		Short: "Transfer USDC to another account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			key, err := newSigner(cfg)
			if err != nil {
				return err
			}
			ex, release, err := newExchangeClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer release()

			nonce := ex.NextNonce()
			action, err := ex.BuildWithNonce(actions.UsdSend{
				SignatureChainID: actions.ChainID(chainID),
				HyperliquidChain: ex.Network().ChainName(),
				Destination:      utilities.NormalizeAddress(destination),
				Amount:           amount,
				Time:             nonce,
			}, nonce)
			if err != nil {
				return err
			}
			signed, err := action.Sign(key)
			if err != nil {
				return err
			}
			return finish(cmd, signed, !dryRun)
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "recipient address")
	cmd.Flags().StringVar(&amount, "amount", "", "USDC amount, e.g. 1.5")
	cmd.Flags().Uint64Var(&chainID, "chain-id", types.DefaultSignatureChainID, "EIP-712 signature chain id")
	cmd.Flags().BoolVar(&dryRun, dryRunFlag, false, "print the signed payload instead of sending it")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
