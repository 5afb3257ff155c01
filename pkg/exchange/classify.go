package exchange

import (
	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
)

// SigningMode is the protocol an action is authorized under.
type SigningMode int

const (
	// ModeHashBased signs a phantom agent over the action's connection id.
	ModeHashBased SigningMode = iota + 1
	// ModeTypedData signs the action's own EIP-712 struct.
	ModeTypedData
)

func (m SigningMode) String() string {
	switch m {
	case ModeHashBased:
		return "hash-based"
	case ModeTypedData:
		return "typed-data"
	}
	return "unknown"
}

// Classify routes an action to its signing mode. Every action type is listed
// explicitly; anything else is rejected rather than defaulted.
func Classify(a actions.Action) (SigningMode, error) {
	switch a.(type) {
	case actions.BulkOrder,
		actions.BulkCancel,
		actions.BulkCancelCloid,
		actions.BulkModify,
		actions.UpdateLeverage,
		actions.UpdateIsolatedMargin,
		actions.SpotUser,
		actions.VaultTransfer,
		actions.SetReferrer,
		actions.EvmUserModify,
		actions.ScheduleCancel,
		actions.ClaimRewards,
		actions.PerpDeploy:
		return ModeHashBased, nil
	case actions.UsdSend,
		actions.Withdraw3,
		actions.SpotSend,
		actions.SendAsset,
		actions.ApproveAgent,
		actions.ApproveBuilderFee:
		return ModeTypedData, nil
	case nil:
		return 0, hlerrors.NewUnsupportedSigningModeError("<nil>")
	}
	return 0, hlerrors.NewUnsupportedSigningModeError(a.Type())
}
