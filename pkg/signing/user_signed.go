package signing

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	pkgerrors "github.com/pkg/errors"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// Primary types of user-signed actions
const (
	USD_SEND_TYPE            = "HyperliquidTransaction:UsdSend"
	WITHDRAW_TYPE            = "HyperliquidTransaction:Withdraw"
	SPOT_SEND_TYPE           = "HyperliquidTransaction:SpotSend"
	SEND_ASSET_TYPE          = "HyperliquidTransaction:SendAsset"
	APPROVE_AGENT_TYPE       = "HyperliquidTransaction:ApproveAgent"
	APPROVE_BUILDER_FEE_TYPE = "HyperliquidTransaction:ApproveBuilderFee"
)

var eip712DomainType = []apitypes.Type{
	{Name: "name", Type: "string"},
	{Name: "version", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

var (
	usdSendTypes = []apitypes.Type{
		{Name: "hyperliquidChain", Type: "string"},
		{Name: "destination", Type: "string"},
		{Name: "amount", Type: "string"},
		{Name: "time", Type: "uint64"},
	}
	withdrawTypes = usdSendTypes
	spotSendTypes = []apitypes.Type{
		{Name: "hyperliquidChain", Type: "string"},
		{Name: "destination", Type: "string"},
		{Name: "token", Type: "string"},
		{Name: "amount", Type: "string"},
		{Name: "time", Type: "uint64"},
	}
	sendAssetTypes = []apitypes.Type{
		{Name: "hyperliquidChain", Type: "string"},
		{Name: "destination", Type: "string"},
		{Name: "sourceDex", Type: "string"},
		{Name: "destinationDex", Type: "string"},
		{Name: "token", Type: "string"},
		{Name: "amount", Type: "string"},
		{Name: "fromSubAccount", Type: "string"},
		{Name: "nonce", Type: "uint64"},
	}
	approveAgentTypes = []apitypes.Type{
		{Name: "hyperliquidChain", Type: "string"},
		{Name: "agentAddress", Type: "address"},
		{Name: "agentName", Type: "string"},
		{Name: "nonce", Type: "uint64"},
	}
	approveBuilderFeeTypes = []apitypes.Type{
		{Name: "hyperliquidChain", Type: "string"},
		{Name: "maxFeeRate", Type: "string"},
		{Name: "builder", Type: "address"},
		{Name: "nonce", Type: "uint64"},
	}
)

// UserSignedTypedData returns the EIP-712 document a user-signed action is signed as.
func UserSignedTypedData(a actions.Action) (apitypes.TypedData, error) {
	switch v := a.(type) {
	case actions.UsdSend:
		return userSignedTypedData(USD_SEND_TYPE, usdSendTypes, v.SignatureChainID, apitypes.TypedDataMessage{
			"hyperliquidChain": v.HyperliquidChain,
			"destination":      v.Destination,
			"amount":           v.Amount,
			"time":             new(big.Int).SetUint64(v.Time),
		}), nil
	case actions.Withdraw3:
		return userSignedTypedData(WITHDRAW_TYPE, withdrawTypes, v.SignatureChainID, apitypes.TypedDataMessage{
			"hyperliquidChain": v.HyperliquidChain,
			"destination":      v.Destination,
			"amount":           v.Amount,
			"time":             new(big.Int).SetUint64(v.Time),
		}), nil
	case actions.SpotSend:
		return userSignedTypedData(SPOT_SEND_TYPE, spotSendTypes, v.SignatureChainID, apitypes.TypedDataMessage{
			"hyperliquidChain": v.HyperliquidChain,
			"destination":      v.Destination,
			"token":            v.Token,
			"amount":           v.Amount,
			"time":             new(big.Int).SetUint64(v.Time),
		}), nil
	case actions.SendAsset:
		return userSignedTypedData(SEND_ASSET_TYPE, sendAssetTypes, v.SignatureChainID, apitypes.TypedDataMessage{
			"hyperliquidChain": v.HyperliquidChain,
			"destination":      v.Destination,
			"sourceDex":        v.SourceDex,
			"destinationDex":   v.DestinationDex,
			"token":            v.Token,
			"amount":           v.Amount,
			"fromSubAccount":   v.FromSubAccount,
			"nonce":            new(big.Int).SetUint64(v.Nonce),
		}), nil
	case actions.ApproveAgent:
		return userSignedTypedData(APPROVE_AGENT_TYPE, approveAgentTypes, v.SignatureChainID, apitypes.TypedDataMessage{
			"hyperliquidChain": v.HyperliquidChain,
			"agentAddress":     v.AgentAddress,
			"agentName":        v.AgentName,
			"nonce":            new(big.Int).SetUint64(v.Nonce),
		}), nil
	case actions.ApproveBuilderFee:
		return userSignedTypedData(APPROVE_BUILDER_FEE_TYPE, approveBuilderFeeTypes, v.SignatureChainID, apitypes.TypedDataMessage{
			"hyperliquidChain": v.HyperliquidChain,
			"maxFeeRate":       v.MaxFeeRate,
			"builder":          v.Builder,
			"nonce":            new(big.Int).SetUint64(v.Nonce),
		}), nil
	}
	if a == nil {
		return apitypes.TypedData{}, hlerrors.NewUnsupportedSigningModeError("<nil>")
	}
	return apitypes.TypedData{}, hlerrors.NewUnsupportedSigningModeError(a.Type())
}

func userSignedTypedData(primaryType string, fields []apitypes.Type, chainID actions.ChainID, message apitypes.TypedDataMessage) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": eip712DomainType,
			primaryType:    fields,
		},
		PrimaryType: primaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              USER_SIGNED_DOMAIN_NAME,
			Version:           USER_SIGNED_VERSION,
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).SetUint64(uint64(chainID))),
			VerifyingContract: types.ZeroAddress,
		},
		Message: message,
	}
}

// TypedDataHash hashes an EIP-712 document: keccak256(0x1901 || domainSeparator || hashStruct(message)).
func TypedDataHash(typedData apitypes.TypedData) (common.Hash, error) {
	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return common.Hash{}, pkgerrors.Wrap(err, "failed to hash domain")
	}
	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return common.Hash{}, pkgerrors.Wrapf(err, "failed to hash %s", typedData.PrimaryType)
	}
	return crypto.Keccak256Hash([]byte("\x19\x01"), domainSeparator, messageHash), nil
}

// UserSignedHash is the digest signed for a user-signed action.
func UserSignedHash(a actions.Action) (common.Hash, error) {
	typedData, err := UserSignedTypedData(a)
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := TypedDataHash(typedData)
	if err != nil {
		return common.Hash{}, hlerrors.NewEncodingError(err, "%s typed data", a.Type())
	}
	return hash, nil
}
