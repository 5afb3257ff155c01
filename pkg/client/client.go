package client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
	"github.com/pooofdevelopment/go-hl-client/pkg/exchange"
	"github.com/pooofdevelopment/go-hl-client/pkg/orderbuilder"
	"github.com/pooofdevelopment/go-hl-client/pkg/signer"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// Client builds, signs and sends exchange actions with a single key.
type Client struct {
	exchange         *exchange.ExchangeClient
	signer           signer.HashSigner
	builder          *orderbuilder.OrderBuilder
	signatureChainID actions.ChainID
}

// ClientOption is a functional option for configuring the Client
type ClientOption func(*Client)

// WithSignatureChainID overrides the chain id user-signed actions are signed against.
func WithSignatureChainID(chainID uint64) ClientOption {
	return func(c *Client) {
		c.signatureChainID = actions.ChainID(chainID)
	}
}

// NewClient creates a client around an exchange client and a signer.
func NewClient(ex *exchange.ExchangeClient, s signer.HashSigner, opts ...ClientOption) (*Client, error) {
	if ex == nil {
		return nil, fmt.Errorf("exchange client is required")
	}
	if s == nil {
		return nil, hlerrors.ErrNoSigner
	}
	c := &Client{
		exchange:         ex,
		signer:           s,
		builder:          orderbuilder.NewOrderBuilder(ex),
		signatureChainID: actions.ChainID(types.DefaultSignatureChainID),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewClientFromKey creates a client for baseURL signing with a hex private key.
func NewClientFromKey(baseURL, privateKey string, opts ...exchange.ClientOption) (*Client, error) {
	s, err := signer.NewSigner(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}
	return NewClient(exchange.NewExchangeClient(baseURL, opts...), s)
}

// Address returns the public address of the signer
func (c *Client) Address() common.Address {
	return c.signer.Address()
}

func (c *Client) Exchange() *exchange.ExchangeClient {
	return c.exchange
}

func (c *Client) OrderBuilder() *orderbuilder.OrderBuilder {
	return c.builder
}

// Execute builds, signs and sends an action with a fresh nonce. An "err"
// response is returned together with an APIError.
func (c *Client) Execute(ctx context.Context, a actions.Action) (*exchange.ExchangeResponse, error) {
	return c.ExecuteWithNonce(ctx, a, c.exchange.NextNonce())
}

// ExecuteWithNonce is Execute with a caller-chosen nonce.
func (c *Client) ExecuteWithNonce(ctx context.Context, a actions.Action, nonce uint64) (*exchange.ExchangeResponse, error) {
	action, err := c.exchange.BuildWithNonce(a, nonce)
	if err != nil {
		return nil, err
	}
	signed, err := action.Sign(c.signer)
	if err != nil {
		return nil, err
	}
	resp, err := signed.Send(ctx)
	if err != nil {
		return nil, err
	}

	if !resp.IsOK() {
		log.Info().Str("action", a.Type()).Uint64("nonce", nonce).Str("error", resp.Error).Msg("action rejected")
		return resp, resp.Err()
	}
	log.Info().Str("action", a.Type()).Uint64("nonce", nonce).Msg("action accepted")
	return resp, nil
}

func (c *Client) chainName() string {
	return c.exchange.Network().ChainName()
}

func (c *Client) asset(coin string) (uint32, error) {
	asset, ok := c.exchange.AssetFor(coin)
	if !ok {
		return 0, fmt.Errorf("%w: %s", hlerrors.ErrUnknownAsset, coin)
	}
	return asset, nil
}
