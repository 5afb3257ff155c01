package actions

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ChainID is the EIP-712 chain id of a user-signed action. It is written as a
// hex string and accepts hex or decimal on input.
type ChainID uint64

func (c ChainID) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.EncodeUint64(uint64(c)))
}

func (c *ChainID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n uint64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid chain id %s", data)
		}
		*c = ChainID(n)
		return nil
	}
	var (
		n   uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		n, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return fmt.Errorf("invalid chain id %q: %w", s, err)
	}
	*c = ChainID(n)
	return nil
}

// UsdSend transfers USDC between perp accounts.
type UsdSend struct {
	SignatureChainID ChainID `json:"signatureChainId"`
	HyperliquidChain string  `json:"hyperliquidChain"`
	Destination      string  `json:"destination"`
	Amount           string  `json:"amount"`
	Time             uint64  `json:"time"`
}

// Withdraw3 withdraws USDC to the bridge on the settlement chain.
type Withdraw3 struct {
	SignatureChainID ChainID `json:"signatureChainId"`
	HyperliquidChain string  `json:"hyperliquidChain"`
	Destination      string  `json:"destination"`
	Amount           string  `json:"amount"`
	Time             uint64  `json:"time"`
}

type SpotSend struct {
	SignatureChainID ChainID `json:"signatureChainId"`
	HyperliquidChain string  `json:"hyperliquidChain"`
	Destination      string  `json:"destination"`
	Token            string  `json:"token"`
	Amount           string  `json:"amount"`
	Time             uint64  `json:"time"`
}

// SendAsset moves a token between dexes and sub-accounts.
type SendAsset struct {
	SignatureChainID ChainID `json:"signatureChainId"`
	HyperliquidChain string  `json:"hyperliquidChain"`
	Destination      string  `json:"destination"`
	SourceDex        string  `json:"sourceDex"`
	DestinationDex   string  `json:"destinationDex"`
	Token            string  `json:"token"`
	Amount           string  `json:"amount"`
	FromSubAccount   string  `json:"fromSubAccount"`
	Nonce            uint64  `json:"nonce"`
}

// ApproveAgent authorizes an agent key. An empty AgentName is omitted from
// the payload and signed as the empty string.
type ApproveAgent struct {
	SignatureChainID ChainID `json:"signatureChainId"`
	HyperliquidChain string  `json:"hyperliquidChain"`
	AgentAddress     string  `json:"agentAddress"`
	AgentName        string  `json:"agentName,omitempty"`
	Nonce            uint64  `json:"nonce"`
}

// ApproveBuilderFee caps the fee a builder may charge, e.g. "0.001%".
type ApproveBuilderFee struct {
	SignatureChainID ChainID `json:"signatureChainId"`
	HyperliquidChain string  `json:"hyperliquidChain"`
	MaxFeeRate       string  `json:"maxFeeRate"`
	Builder          string  `json:"builder"`
	Nonce            uint64  `json:"nonce"`
}
