package exchange

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	"github.com/pooofdevelopment/go-hl-client/pkg/httpclient"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// ExchangeClient holds the configuration actions are built against. It is
// read-only after construction and safe for concurrent use.
type ExchangeClient struct {
	baseURL      string
	network      types.Network
	vaultAddress *common.Address
	coinToAsset  map[string]uint32
	transport    Transport
	nonces       NonceSource
}

// ClientOption configures an ExchangeClient
type ClientOption func(*ExchangeClient)

// WithVaultAddress signs and submits every action on behalf of a vault or sub-account.
func WithVaultAddress(addr common.Address) ClientOption {
	return func(c *ExchangeClient) {
		c.vaultAddress = &addr
	}
}

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) ClientOption {
	return func(c *ExchangeClient) {
		c.transport = t
	}
}

func WithNonceSource(n NonceSource) ClientOption {
	return func(c *ExchangeClient) {
		c.nonces = n
	}
}

// WithCoinToAsset sets the coin name to asset index table. The map is copied.
func WithCoinToAsset(m map[string]uint32) ClientOption {
	return func(c *ExchangeClient) {
		c.coinToAsset = make(map[string]uint32, len(m))
		for k, v := range m {
			c.coinToAsset[k] = v
		}
	}
}

// NewExchangeClient creates a client for a base URL; an empty URL means mainnet.
// Only the mainnet URL signs as mainnet.
func NewExchangeClient(baseURL string, opts ...ClientOption) *ExchangeClient {
	if baseURL == "" {
		baseURL = types.MainnetAPIURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	c := &ExchangeClient{
		baseURL:     baseURL,
		network:     types.NetworkFromBaseURL(baseURL),
		coinToAsset: map[string]uint32{},
		nonces:      ClockNonce{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = httpclient.NewClient(baseURL)
	}
	return c
}

func (c *ExchangeClient) BaseURL() string {
	return c.baseURL
}

func (c *ExchangeClient) Network() types.Network {
	return c.network
}

func (c *ExchangeClient) IsMainnet() bool {
	return c.network.IsMainnet()
}

func (c *ExchangeClient) VaultAddress() *common.Address {
	return copyAddress(c.vaultAddress)
}

// AssetFor resolves a coin name to its asset index.
func (c *ExchangeClient) AssetFor(coin string) (uint32, bool) {
	asset, ok := c.coinToAsset[coin]
	return asset, ok
}

// NextNonce draws a nonce from the client's source.
func (c *ExchangeClient) NextNonce() uint64 {
	return c.nonces.Next()
}

func (c *ExchangeClient) buildContext() BuildContext {
	return BuildContext{
		VaultAddress: c.vaultAddress,
		Network:      c.network,
		Nonces:       c.nonces,
		Transport:    c.transport,
	}
}

// Build builds an action with a fresh nonce.
func (c *ExchangeClient) Build(a actions.Action) (*Action, error) {
	return Build(a, c.buildContext())
}

// BuildWithNonce builds an action with a caller-chosen nonce.
func (c *ExchangeClient) BuildWithNonce(a actions.Action, nonce uint64) (*Action, error) {
	return BuildWithNonce(a, nonce, c.buildContext())
}
