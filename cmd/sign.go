package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSignCmd(v *viper.Viper) *cobra.Command {
	var (
		file string
		send bool
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a JSON action and print the /exchange payload",
		Long: `Sign a JSON action and print the /exchange payload.

The action is a tagged object such as {"type":"scheduleCancel","time":1700000000000}.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			key, err := newSigner(cfg)
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
			signed, err := action.Sign(key)
			if err != nil {
				return err
			}
			return finish(cmd, signed, send)
		},
	}

	cmd.Flags().StringVarP(&file, fileFlag, "f", "-", "action JSON file, - for stdin")
	cmd.Flags().Uint64(nonceFlag, 0, "nonce in milliseconds, defaults to now")
	cmd.Flags().BoolVar(&send, sendFlag, false, "submit the signed action")
	return cmd
}
