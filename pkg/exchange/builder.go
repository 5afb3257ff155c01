package exchange

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
	"github.com/pooofdevelopment/go-hl-client/pkg/signing"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// BuildContext is the client state an action is built against.
type BuildContext struct {
	VaultAddress *common.Address
	Network      types.Network
	Nonces       NonceSource
	Transport    Transport
}

// Build draws a nonce and builds the action.
func Build(a actions.Action, bc BuildContext) (*Action, error) {
	nonces := bc.Nonces
	if nonces == nil {
		nonces = ClockNonce{}
	}
	return BuildWithNonce(a, nonces.Next(), bc)
}

// BuildWithNonce builds the action with a caller-chosen nonce. Building the
// same action twice with the same nonce and context yields identical bytes.
func BuildWithNonce(a actions.Action, nonce uint64, bc BuildContext) (*Action, error) {
	mode, err := Classify(a)
	if err != nil {
		return nil, err
	}
	if err := actions.Validate(a); err != nil {
		return nil, hlerrors.NewEncodingError(err, "invalid %s action", a.Type())
	}

	var signingData SigningData
	switch mode {
	case ModeHashBased:
		connectionID, err := HashAction(a, nonce, bc.VaultAddress)
		if err != nil {
			return nil, err
		}
		signingData = HashBased{ConnectionID: connectionID, Network: bc.Network}
	case ModeTypedData:
		hash, err := signing.UserSignedHash(a)
		if err != nil {
			return nil, err
		}
		signingData = TypedData{SigningHash: hash}
	}

	payload, err := actions.MarshalJSON(a)
	if err != nil {
		return nil, hlerrors.NewEncodingError(err, "failed to encode %s", a.Type())
	}

	log.Debug().
		Str("action", a.Type()).
		Uint64("nonce", nonce).
		Str("mode", mode.String()).
		Bool("vault", bc.VaultAddress != nil).
		Msg("built action")

	return &Action{
		actionType:   a.Type(),
		payload:      payload,
		nonce:        nonce,
		vaultAddress: copyAddress(bc.VaultAddress),
		signingData:  signingData,
		transport:    bc.Transport,
	}, nil
}
