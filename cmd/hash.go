package cmd

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pooofdevelopment/go-hl-client/pkg/exchange"
)

type hashOutput struct {
	Type         string       `json:"type"`
	Mode         string       `json:"mode"`
	Nonce        uint64       `json:"nonce"`
	ConnectionID *common.Hash `json:"connectionId,omitempty"`
	Digest       common.Hash  `json:"digest"`
}

func newHashCmd(v *viper.Viper) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the digest an external signer has to sign for an action",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			a, err := readAction(cmd, file)
			if err != nil {
				return err
			}
			ex := exchange.NewExchangeClient(cfg.APIURL(), vaultOptions(cfg.Vault())...)
			action, err := buildAction(cmd, ex, a)
			if err != nil {
				return err
			}

			out := hashOutput{
				Type:   action.Type(),
				Mode:   action.SigningData().Mode().String(),
				Nonce:  action.Nonce(),
				Digest: action.Digest(),
			}
			if hb, ok := action.SigningData().(exchange.HashBased); ok {
				out.ConnectionID = &hb.ConnectionID
			}
			return printJSON(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&file, fileFlag, "f", "-", "action JSON file, - for stdin")
	cmd.Flags().Uint64(nonceFlag, 0, "nonce in milliseconds, defaults to now")
	return cmd
}

func vaultOptions(vault *common.Address) []exchange.ClientOption {
	if vault == nil {
		return nil
	}
	return []exchange.ClientOption{exchange.WithVaultAddress(*vault)}
}
