package signer

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"

	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
)

// Signature is a recoverable secp256k1 signature.
type Signature struct {
	R          *big.Int
	S          *big.Int
	RecoveryID byte
}

type signatureJSON struct {
	R string `json:"r"`
	S string `json:"s"`
	V uint64 `json:"v"`
}

// V is the Ethereum-style recovery value, always 27 or 28.
func (s Signature) V() uint64 {
	return 27 + uint64(s.RecoveryID&1)
}

// SignatureFromBytes parses a 65-byte r || s || v signature. v may be 0/1 or 27/28.
func SignatureFromBytes(sig []byte) (Signature, error) {
	if len(sig) != crypto.SignatureLength {
		return Signature{}, hlerrors.NewSignatureError(nil, "invalid signature length: expected %d, got %d", crypto.SignatureLength, len(sig))
	}
	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return Signature{}, hlerrors.NewSignatureError(nil, "invalid recovery id %d", sig[64])
	}
	return Signature{
		R:          new(big.Int).SetBytes(sig[:32]),
		S:          new(big.Int).SetBytes(sig[32:64]),
		RecoveryID: v,
	}, nil
}

// ParseSignature parses a 0x-prefixed 65-byte hex signature.
func ParseSignature(hexSig string) (Signature, error) {
	sig, err := hexutil.Decode(hexSig)
	if err != nil {
		return Signature{}, hlerrors.NewSignatureError(err, "invalid signature hex")
	}
	return SignatureFromBytes(sig)
}

// Bytes returns r || s || recovery id, the layout crypto.Ecrecover expects.
func (s Signature) Bytes() []byte {
	out := make([]byte, 0, crypto.SignatureLength)
	out = append(out, math.PaddedBigBytes(orZero(s.R), 32)...)
	out = append(out, math.PaddedBigBytes(orZero(s.S), 32)...)
	return append(out, s.RecoveryID&1)
}

// Recover returns the address that produced the signature over hash.
func (s Signature) Recover(hash common.Hash) (common.Address, error) {
	pub, err := crypto.SigToPub(hash.Bytes(), s.Bytes())
	if err != nil {
		return common.Address{}, hlerrors.NewSignatureError(err, "failed to recover signer")
	}
	return crypto.PubkeyToAddress(*pub), nil
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(signatureJSON{
		R: hexutil.EncodeBig(orZero(s.R)),
		S: hexutil.EncodeBig(orZero(s.S)),
		V: s.V(),
	})
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	var raw signatureJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r, err := hexutil.DecodeBig(raw.R)
	if err != nil {
		return fmt.Errorf("invalid r: %w", err)
	}
	sv, err := hexutil.DecodeBig(raw.S)
	if err != nil {
		return fmt.Errorf("invalid s: %w", err)
	}
	if raw.V != 27 && raw.V != 28 {
		return fmt.Errorf("invalid v %d", raw.V)
	}
	s.R, s.S, s.RecoveryID = r, sv, byte(raw.V-27)
	return nil
}

func orZero(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}
