package utilities

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// MarshalJSON encodes v without HTML escaping and without a trailing newline.
func MarshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// NormalizeAddress lowercases a hex address the way the exchange stores it.
func NormalizeAddress(addr string) string {
	return strings.ToLower(addr)
}

// ParseAddress validates a hex address.
func ParseAddress(addr string) (common.Address, bool) {
	if !common.IsHexAddress(addr) {
		return common.Address{}, false
	}
	return common.HexToAddress(addr), true
}

// CloidToHex renders a client order id as 0x followed by 32 hex characters.
func CloidToHex(id uuid.UUID) string {
	return "0x" + hex.EncodeToString(id[:])
}

// NewCloid returns a random client order id.
func NewCloid() uuid.UUID {
	return uuid.New()
}
