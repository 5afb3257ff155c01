package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	"github.com/pooofdevelopment/go-hl-client/pkg/config"
	"github.com/pooofdevelopment/go-hl-client/pkg/exchange"
	"github.com/pooofdevelopment/go-hl-client/pkg/httpclient"
	"github.com/pooofdevelopment/go-hl-client/pkg/signer"
	"github.com/pooofdevelopment/go-hl-client/pkg/websocket"
)

const (
	fileFlag   = "file"
	nonceFlag  = "nonce"
	sendFlag   = "send"
	dryRunFlag = "dry-run"
)

// newExchangeClient wires the configured transport. The returned func releases it.
func newExchangeClient(ctx context.Context, cfg *config.Config) (*exchange.ExchangeClient, func(), error) {
	var opts []exchange.ClientOption
	if vault := cfg.Vault(); vault != nil {
		opts = append(opts, exchange.WithVaultAddress(*vault))
	}

	release := func() {}
	switch cfg.Transport {
	case config.TransportWS:
		dialCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		ws, err := websocket.Dial(dialCtx, cfg.APIURL())
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, exchange.WithTransport(ws))
		release = func() { _ = ws.Close() }
	default:
		opts = append(opts, exchange.WithTransport(
			httpclient.NewClientWithHTTPClient(cfg.APIURL(), &http.Client{Timeout: cfg.Timeout}),
		))
	}
	return exchange.NewExchangeClient(cfg.APIURL(), opts...), release, nil
}

func newSigner(cfg *config.Config) (*signer.Signer, error) {
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("HL_PRIVATE_KEY is not set")
	}
	return signer.NewSigner(cfg.PrivateKey)
}

// readAction decodes a tagged action from a file, or from stdin when path is "-".
func readAction(cmd *cobra.Command, path string) (actions.Action, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return actions.UnmarshalJSON(data)
}

// buildAction builds with --nonce when given, with a fresh nonce otherwise.
func buildAction(cmd *cobra.Command, ex *exchange.ExchangeClient, a actions.Action) (*exchange.Action, error) {
	if cmd.Flags().Changed(nonceFlag) {
		nonce, err := cmd.Flags().GetUint64(nonceFlag)
		if err != nil {
			return nil, err
		}
		return ex.BuildWithNonce(a, nonce)
	}
	return ex.Build(a)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// finish prints the payload, or sends it and prints the response.
func finish(cmd *cobra.Command, signed *exchange.SignedAction, send bool) error {
	if !send {
		return printJSON(cmd, signed)
	}
	resp, err := signed.Send(cmd.Context())
	if err != nil {
		return err
	}
	if err := printJSON(cmd, resp); err != nil {
		return err
	}
	return resp.Err()
}

func loadConfig(v *viper.Viper) (*config.Config, error) {
	return config.Load(v)
}
