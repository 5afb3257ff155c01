package types

import "strings"

// Network selects which chain an action is signed for.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

// NetworkFromBaseURL reports Mainnet only for the exact mainnet API URL.
// Local and testnet hosts both sign as testnet.
func NetworkFromBaseURL(baseURL string) Network {
	if strings.TrimSuffix(baseURL, "/") == MainnetAPIURL {
		return Mainnet
	}
	return Testnet
}

// ParseNetwork maps a config value onto a Network.
func ParseNetwork(name string) (Network, bool) {
	switch strings.ToLower(name) {
	case "mainnet", "":
		return Mainnet, true
	case "testnet", "local":
		return Testnet, true
	}
	return Testnet, false
}

func (n Network) IsMainnet() bool {
	return n == Mainnet
}

// AgentSource is the source field of the phantom agent.
func (n Network) AgentSource() string {
	if n.IsMainnet() {
		return MainnetAgentSource
	}
	return TestnetAgentSource
}

// ChainName is the hyperliquidChain value for user-signed actions.
func (n Network) ChainName() string {
	if n.IsMainnet() {
		return MainnetChainName
	}
	return TestnetChainName
}

func (n Network) String() string {
	if n.IsMainnet() {
		return "mainnet"
	}
	return "testnet"
}
