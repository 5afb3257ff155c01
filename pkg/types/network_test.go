package types

import "testing"

func TestNetworkFromBaseURL(t *testing.T) {
	tests := []struct {
		baseURL string
		want    Network
	}{
		{baseURL: MainnetAPIURL, want: Mainnet},
		{baseURL: MainnetAPIURL + "/", want: Mainnet},
		{baseURL: TestnetAPIURL, want: Testnet},
		{baseURL: LocalAPIURL, want: Testnet},
		{baseURL: "https://api.hyperliquid.xyz.example.com", want: Testnet},
	}

	for _, tt := range tests {
		t.Run(tt.baseURL, func(t *testing.T) {
			if got := NetworkFromBaseURL(tt.baseURL); got != tt.want {
				t.Errorf("NetworkFromBaseURL(%q) = %v, want %v", tt.baseURL, got, tt.want)
			}
		})
	}
}

func TestNetworkFields(t *testing.T) {
	if Mainnet.AgentSource() != "a" || Testnet.AgentSource() != "b" {
		t.Errorf("agent sources = %q, %q", Mainnet.AgentSource(), Testnet.AgentSource())
	}
	if Mainnet.ChainName() != "Mainnet" || Testnet.ChainName() != "Testnet" {
		t.Errorf("chain names = %q, %q", Mainnet.ChainName(), Testnet.ChainName())
	}
}

func TestParseNetwork(t *testing.T) {
	for _, name := range []string{"mainnet", "Testnet", "local", ""} {
		if _, ok := ParseNetwork(name); !ok {
			t.Errorf("ParseNetwork(%q) failed", name)
		}
	}
	if _, ok := ParseNetwork("devnet"); ok {
		t.Error("ParseNetwork accepted devnet")
	}
}
