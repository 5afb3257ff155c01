package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// Transports
const (
	TransportHTTP = "http"
	TransportWS   = "ws"
)

// NetworkConfig describes the endpoints of a network.
type NetworkConfig struct {
	Network          types.Network
	APIURL           string
	HyperliquidChain string
	SignatureChainID uint64
}

// GetNetworkConfig returns the configuration for a network name.
func GetNetworkConfig(name string) (*NetworkConfig, error) {
	configs := map[string]*NetworkConfig{
		"mainnet": {
			Network:          types.Mainnet,
			APIURL:           types.MainnetAPIURL,
			HyperliquidChain: types.MainnetChainName,
			SignatureChainID: types.DefaultSignatureChainID,
		},
		"testnet": {
			Network:          types.Testnet,
			APIURL:           types.TestnetAPIURL,
			HyperliquidChain: types.TestnetChainName,
			SignatureChainID: types.DefaultSignatureChainID,
		},
		"local": {
			Network:          types.Testnet,
			APIURL:           types.LocalAPIURL,
			HyperliquidChain: types.TestnetChainName,
			SignatureChainID: types.DefaultSignatureChainID,
		},
	}

	config := configs[strings.ToLower(name)]
	if config == nil {
		return nil, fmt.Errorf("invalid network: %q", name)
	}
	return config, nil
}

// Config is the runtime configuration of the client and CLI.
type Config struct {
	PrivateKey   string
	Network      string
	BaseURL      string
	VaultAddress string
	Transport    string
	Timeout      time.Duration
}

// NewViper returns a viper instance reading HL_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("HL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("network", "mainnet")
	v.SetDefault("transport", TransportHTTP)
	v.SetDefault("timeout", 30*time.Second)
}

// Load reads and validates the configuration.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		PrivateKey:   v.GetString("private_key"),
		Network:      v.GetString("network"),
		BaseURL:      v.GetString("base_url"),
		VaultAddress: v.GetString("vault_address"),
		Transport:    v.GetString("transport"),
		Timeout:      v.GetDuration("timeout"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := GetNetworkConfig(c.Network); err != nil {
		return err
	}
	switch c.Transport {
	case TransportHTTP, TransportWS:
	default:
		return fmt.Errorf("invalid transport: %q", c.Transport)
	}
	if c.VaultAddress != "" && !common.IsHexAddress(c.VaultAddress) {
		return fmt.Errorf("invalid vault address: %q", c.VaultAddress)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// APIURL is the explicit base URL, or the network's default.
func (c *Config) APIURL() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	nc, err := GetNetworkConfig(c.Network)
	if err != nil {
		return types.MainnetAPIURL
	}
	return nc.APIURL
}

// Vault returns the parsed vault address, or nil when none is set.
func (c *Config) Vault() *common.Address {
	if c.VaultAddress == "" {
		return nil
	}
	addr := common.HexToAddress(c.VaultAddress)
	return &addr
}
