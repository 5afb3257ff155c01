package exchange

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
	"github.com/pooofdevelopment/go-hl-client/pkg/signing"
)

// HashAction computes the connection id of a hash-based action.
func HashAction(a actions.Action, nonce uint64, vaultAddress *common.Address) (common.Hash, error) {
	encoded, err := actions.MarshalMsgpack(a)
	if err != nil {
		return common.Hash{}, hlerrors.NewEncodingError(err, "failed to msgpack %s", actionType(a))
	}
	return signing.ConnectionID(encoded, nonce, vaultAddress), nil
}

func actionType(a actions.Action) string {
	if a == nil {
		return "<nil>"
	}
	return a.Type()
}
