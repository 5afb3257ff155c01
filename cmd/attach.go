package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pooofdevelopment/go-hl-client/pkg/signer"
)

func newAttachCmd(v *viper.Viper) *cobra.Command {
	var (
		file      string
		signature string
		send      bool
	)

	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach an externally produced signature to an action",
		Long: `Attach an externally produced signature to an action.

Run "hash" first with the same --nonce, sign the printed digest elsewhere,
then pass the 65-byte hex signature here.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			sig, err := signer.ParseSignature(signature)
			if err != nil {
				return err
			}
			a, err := readAction(cmd, file)
			if err != nil {
				return err
			}
			ex, release, err := newExchangeClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer release()

			action, err := buildAction(cmd, ex, a)
			if err != nil {
				return err
			}
			return finish(cmd, action.WithSignature(sig), send)
		},
	}

	cmd.Flags().StringVarP(&file, fileFlag, "f", "-", "action JSON file, - for stdin")
	cmd.Flags().Uint64(nonceFlag, 0, "nonce the digest was computed with")
	cmd.Flags().StringVar(&signature, "signature", "", "0x-prefixed r || s || v signature")
	cmd.Flags().BoolVar(&send, sendFlag, false, "submit the signed action")
	_ = cmd.MarkFlagRequired(nonceFlag)
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
