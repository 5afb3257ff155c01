package exchange

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
	"github.com/pooofdevelopment/go-hl-client/pkg/signer"
	"github.com/pooofdevelopment/go-hl-client/pkg/signing"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// SigningData is what has to be signed to authorize an action: HashBased or TypedData.
type SigningData interface {
	// Digest is the 32-byte hash handed to the key.
	Digest() common.Hash
	Mode() SigningMode
}

// HashBased carries the connection id of an action authorized through a phantom agent.
type HashBased struct {
	ConnectionID common.Hash
	Network      types.Network
}

func (h HashBased) Digest() common.Hash {
	return signing.AgentSigningHash(h.ConnectionID, h.Network)
}

func (HashBased) Mode() SigningMode { return ModeHashBased }

// TypedData carries the EIP-712 hash of a user-signed action.
type TypedData struct {
	SigningHash common.Hash
}

func (t TypedData) Digest() common.Hash {
	return t.SigningHash
}

func (TypedData) Mode() SigningMode { return ModeTypedData }

// Action is a built, unsigned action. Its payload bytes are fixed at build
// time and are the exact bytes sent.
type Action struct {
	actionType   string
	payload      json.RawMessage
	nonce        uint64
	vaultAddress *common.Address
	signingData  SigningData
	transport    Transport
}

func (a *Action) Type() string {
	return a.actionType
}

// Payload returns a copy of the canonical JSON of the action.
func (a *Action) Payload() json.RawMessage {
	return append(json.RawMessage(nil), a.payload...)
}

func (a *Action) Nonce() uint64 {
	return a.nonce
}

func (a *Action) VaultAddress() *common.Address {
	return copyAddress(a.vaultAddress)
}

func (a *Action) SigningData() SigningData {
	return a.signingData
}

// Digest is the hash an external signer has to sign for WithSignature.
func (a *Action) Digest() common.Hash {
	return a.signingData.Digest()
}

// Sign signs the action with a key. Key failures are returned, never retried.
func (a *Action) Sign(key signer.HashSigner) (*SignedAction, error) {
	if key == nil {
		return nil, hlerrors.NewSignatureError(hlerrors.ErrNoSigner, "cannot sign %s", a.actionType)
	}
	sig, err := key.SignHash(a.Digest())
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("action", a.actionType).
		Uint64("nonce", a.nonce).
		Str("mode", a.signingData.Mode().String()).
		Str("signer", key.Address().Hex()).
		Msg("signed action")
	return a.WithSignature(sig), nil
}

// WithSignature attaches a signature produced elsewhere. It is not verified.
func (a *Action) WithSignature(sig signer.Signature) *SignedAction {
	return &SignedAction{
		actionType:   a.actionType,
		payload:      a.payload,
		nonce:        a.nonce,
		vaultAddress: copyAddress(a.vaultAddress),
		signature:    sig,
		transport:    a.transport,
	}
}

// SignedAction is an action ready for submission. It can be sent once.
type SignedAction struct {
	actionType   string
	payload      json.RawMessage
	nonce        uint64
	vaultAddress *common.Address
	signature    signer.Signature
	transport    Transport
	sent         atomic.Bool
}

func (s *SignedAction) Type() string {
	return s.actionType
}

func (s *SignedAction) Nonce() uint64 {
	return s.nonce
}

func (s *SignedAction) Signature() signer.Signature {
	return s.signature
}

// ExchangePayload returns the request body sent to /exchange.
func (s *SignedAction) ExchangePayload() ExchangePayload {
	return ExchangePayload{
		Action:       s.payload,
		Signature:    s.signature,
		Nonce:        s.nonce,
		VaultAddress: copyAddress(s.vaultAddress),
	}
}

func (s *SignedAction) MarshalJSON() ([]byte, error) {
	return s.ExchangePayload().Encode()
}

// Send posts the action. The action is consumed by the first call, whether
// or not it succeeds; later calls return ErrAlreadySent.
func (s *SignedAction) Send(ctx context.Context) (*ExchangeResponse, error) {
	if s.transport == nil {
		return nil, hlerrors.NewTransportError(hlerrors.ErrNoTransport, "cannot send %s", s.actionType)
	}
	if !s.sent.CompareAndSwap(false, true) {
		return nil, hlerrors.ErrAlreadySent
	}

	body, err := s.MarshalJSON()
	if err != nil {
		return nil, hlerrors.NewEncodingError(err, "failed to encode %s payload", s.actionType)
	}

	log.Debug().Str("action", s.actionType).Uint64("nonce", s.nonce).Msg("sending action")
	raw, err := s.transport.PostExchange(ctx, body)
	if err != nil {
		return nil, hlerrors.NewTransportError(err, "failed to send %s", s.actionType)
	}

	resp, err := DecodeResponse(raw)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("action", s.actionType).Str("status", resp.Status).Msg("exchange response")
	return resp, nil
}

func copyAddress(addr *common.Address) *common.Address {
	if addr == nil {
		return nil
	}
	c := *addr
	return &c
}
