package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pooofdevelopment/go-hl-client/pkg/config"
)

const (
	networkFlag      = "network"
	baseURLFlag      = "base-url"
	vaultAddressFlag = "vault-address"
	transportFlag    = "transport"
	timeoutFlag      = "timeout"
	debugFlag        = "debug"
)

// NewRootCmd builds the command tree around a viper instance.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hlsign",
		Short: "Build, sign and submit Hyperliquid exchange actions",
		Long: `Build, sign and submit Hyperliquid exchange actions.

The signing key is read from HL_PRIVATE_KEY. Every flag can also be set
through the environment, e.g. HL_NETWORK=testnet or HL_VAULT_ADDRESS=0x...`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if v.GetBool(debugFlag) {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(networkFlag, "mainnet", "network to sign for: mainnet, testnet or local")
	flags.String(baseURLFlag, "", "API base URL, overrides the network default")
	flags.String(vaultAddressFlag, "", "act on behalf of this vault or sub-account")
	flags.String(transportFlag, config.TransportHTTP, "submission transport: http or ws")
	flags.Duration(timeoutFlag, 30*time.Second, "request timeout")
	flags.Bool(debugFlag, false, "enable debug logging")

	_ = v.BindPFlag("network", flags.Lookup(networkFlag))
	_ = v.BindPFlag("base_url", flags.Lookup(baseURLFlag))
	_ = v.BindPFlag("vault_address", flags.Lookup(vaultAddressFlag))
	_ = v.BindPFlag("transport", flags.Lookup(transportFlag))
	_ = v.BindPFlag("timeout", flags.Lookup(timeoutFlag))
	_ = v.BindPFlag(debugFlag, flags.Lookup(debugFlag))

	rootCmd.AddCommand(
		newUsdSendCmd(v),
		newSignCmd(v),
		newHashCmd(v),
		newAttachCmd(v),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := NewRootCmd(config.NewViper()).Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
