// Package actions defines the closed set of exchange actions and their
// canonical JSON and msgpack encodings.
package actions

// Action is a mutating exchange request. Only types declared in this package
// implement it. Actions are plain values: pass them by value, not by pointer.
type Action interface {
	// Type is the wire discriminant written first as the "type" field.
	Type() string
	isAction()
}

// Wire discriminants
const (
	TypeUsdSend              = "usdSend"
	TypeUpdateLeverage       = "updateLeverage"
	TypeUpdateIsolatedMargin = "updateIsolatedMargin"
	TypeOrder                = "order"
	TypeCancel               = "cancel"
	TypeCancelByCloid        = "cancelByCloid"
	TypeBatchModify          = "batchModify"
	TypeApproveAgent         = "approveAgent"
	TypeWithdraw3            = "withdraw3"
	TypeSpotUser             = "spotUser"
	TypeSendAsset            = "sendAsset"
	TypeVaultTransfer        = "vaultTransfer"
	TypeSpotSend             = "spotSend"
	TypeSetReferrer          = "setReferrer"
	TypeApproveBuilderFee    = "approveBuilderFee"
	TypeEvmUserModify        = "evmUserModify"
	TypeScheduleCancel       = "scheduleCancel"
	TypeClaimRewards         = "claimRewards"
	TypePerpDeploy           = "perpDeploy"
)

// validator is implemented by actions with structural requirements beyond their types.
type validator interface {
	validate() error
}

func (BulkOrder) Type() string            { return TypeOrder }
func (BulkCancel) Type() string           { return TypeCancel }
func (BulkCancelCloid) Type() string      { return TypeCancelByCloid }
func (BulkModify) Type() string           { return TypeBatchModify }
func (UpdateLeverage) Type() string       { return TypeUpdateLeverage }
func (UpdateIsolatedMargin) Type() string { return TypeUpdateIsolatedMargin }
func (SpotUser) Type() string             { return TypeSpotUser }
func (VaultTransfer) Type() string        { return TypeVaultTransfer }
func (SetReferrer) Type() string          { return TypeSetReferrer }
func (EvmUserModify) Type() string        { return TypeEvmUserModify }
func (ScheduleCancel) Type() string       { return TypeScheduleCancel }
func (ClaimRewards) Type() string         { return TypeClaimRewards }
func (PerpDeploy) Type() string           { return TypePerpDeploy }
func (UsdSend) Type() string              { return TypeUsdSend }
func (Withdraw3) Type() string            { return TypeWithdraw3 }
func (SpotSend) Type() string             { return TypeSpotSend }
func (SendAsset) Type() string            { return TypeSendAsset }
func (ApproveAgent) Type() string         { return TypeApproveAgent }
func (ApproveBuilderFee) Type() string    { return TypeApproveBuilderFee }

func (BulkOrder) isAction()            {}
func (BulkCancel) isAction()           {}
func (BulkCancelCloid) isAction()      {}
func (BulkModify) isAction()           {}
func (UpdateLeverage) isAction()       {}
func (UpdateIsolatedMargin) isAction() {}
func (SpotUser) isAction()             {}
func (VaultTransfer) isAction()        {}
func (SetReferrer) isAction()          {}
func (EvmUserModify) isAction()        {}
func (ScheduleCancel) isAction()       {}
func (ClaimRewards) isAction()         {}
func (PerpDeploy) isAction()           {}
func (UsdSend) isAction()              {}
func (Withdraw3) isAction()            {}
func (SpotSend) isAction()             {}
func (SendAsset) isAction()            {}
func (ApproveAgent) isAction()         {}
func (ApproveBuilderFee) isAction()    {}
