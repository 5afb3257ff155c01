package actions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// selfTagged actions write their own "type" field.
type selfTagged interface {
	selfTagged()
}

// Validate checks the structural requirements of an action.
func Validate(a Action) error {
	if a == nil {
		return fmt.Errorf("nil action")
	}
	if v, ok := a.(validator); ok {
		return v.validate()
	}
	return nil
}

// MarshalJSON encodes a as a JSON object whose first key is "type",
// followed by the action's fields in declaration order.
func MarshalJSON(a Action) (json.RawMessage, error) {
	if err := Validate(a); err != nil {
		return nil, err
	}
	if _, ok := a.(selfTagged); ok {
		return marshalJSON(a)
	}
	body, err := marshalJSON(a)
	if err != nil {
		return nil, err
	}
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("%s did not encode as a JSON object", a.Type())
	}
	tag, err := marshalJSON(a.Type())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(body) + len(tag) + 9)
	buf.WriteString(`{"type":`)
	buf.Write(tag)
	if len(body) > 2 {
		buf.WriteByte(',')
	}
	buf.Write(body[1:])
	return buf.Bytes(), nil
}

// MarshalMsgpack encodes a as a msgpack map: "type" first, then the fields in
// declaration order. Integers use the smallest representation.
func MarshalMsgpack(a Action) ([]byte, error) {
	if err := Validate(a); err != nil {
		return nil, err
	}
	body, err := encodeMsgpack(a)
	if err != nil {
		return nil, err
	}
	if _, ok := a.(selfTagged); ok {
		return body, nil
	}

	r := bytes.NewReader(body)
	n, err := msgpack.NewDecoder(r).DecodeMapLen()
	if err != nil {
		return nil, fmt.Errorf("%s did not encode as a msgpack map: %w", a.Type(), err)
	}
	fields := body[len(body)-r.Len():]

	var buf bytes.Buffer
	enc := newMsgpackEncoder(&buf)
	if err := enc.EncodeMapLen(n + 1); err != nil {
		return nil, err
	}
	if err := enc.EncodeString("type"); err != nil {
		return nil, err
	}
	if err := enc.EncodeString(a.Type()); err != nil {
		return nil, err
	}
	buf.Write(fields)
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a tagged action produced by MarshalJSON.
func UnmarshalJSON(data []byte) (Action, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("invalid action: %w", err)
	}
	decode, ok := decoders[head.Type]
	if !ok {
		return nil, fmt.Errorf("unknown action type %q", head.Type)
	}
	a, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid %s action: %w", head.Type, err)
	}
	return a, nil
}

// Types lists every registered action discriminant.
func Types() []string {
	types := make([]string, 0, len(decoders))
	for t := range decoders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

var decoders = map[string]func([]byte) (Action, error){
	TypeUsdSend:              decodeAs[UsdSend],
	TypeUpdateLeverage:       decodeAs[UpdateLeverage],
	TypeUpdateIsolatedMargin: decodeAs[UpdateIsolatedMargin],
	TypeOrder:                decodeAs[BulkOrder],
	TypeCancel:               decodeAs[BulkCancel],
	TypeCancelByCloid:        decodeAs[BulkCancelCloid],
	TypeBatchModify:          decodeAs[BulkModify],
	TypeApproveAgent:         decodeAs[ApproveAgent],
	TypeWithdraw3:            decodeAs[Withdraw3],
	TypeSpotUser:             decodeAs[SpotUser],
	TypeSendAsset:            decodeAs[SendAsset],
	TypeVaultTransfer:        decodeAs[VaultTransfer],
	TypeSpotSend:             decodeAs[SpotSend],
	TypeSetReferrer:          decodeAs[SetReferrer],
	TypeApproveBuilderFee:    decodeAs[ApproveBuilderFee],
	TypeEvmUserModify:        decodeAs[EvmUserModify],
	TypeScheduleCancel:       decodeAs[ScheduleCancel],
	TypeClaimRewards:         decodeAs[ClaimRewards],
	TypePerpDeploy:           decodeAs[PerpDeploy],
}

func decodeAs[T Action](data []byte) (Action, error) {
	var a T
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a, nil
}

func marshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func newMsgpackEncoder(buf *bytes.Buffer) *msgpack.Encoder {
	enc := msgpack.NewEncoder(buf)
	enc.UseCompactInts(true)
	return enc
}

func encodeMsgpack(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := newMsgpackEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
