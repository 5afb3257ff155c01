package exchange

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	"github.com/pooofdevelopment/go-hl-client/pkg/signer"
	"github.com/pooofdevelopment/go-hl-client/pkg/utilities"
)

// ExchangePayload is the JSON body of a POST to /exchange.
type ExchangePayload struct {
	Action       json.RawMessage  `json:"action"`
	Signature    signer.Signature `json:"signature"`
	Nonce        uint64           `json:"nonce"`
	VaultAddress *common.Address  `json:"vaultAddress,omitempty"`
}

// Encode writes the payload with the action bytes untouched.
func (p ExchangePayload) Encode() ([]byte, error) {
	return utilities.MarshalJSON(p)
}

// DecodeExchangePayload parses a request body, as a server or a test would see it.
func DecodeExchangePayload(data []byte) (*ExchangePayload, error) {
	var p ExchangePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeAction parses the action carried in the payload.
func (p *ExchangePayload) DecodeAction() (actions.Action, error) {
	return actions.UnmarshalJSON(p.Action)
}
