package actions

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

type RegisterAssetRequest struct {
	Coin          string `json:"coin" msgpack:"coin"`
	SzDecimals    uint32 `json:"szDecimals" msgpack:"szDecimals"`
	OraclePx      string `json:"oraclePx" msgpack:"oraclePx"`
	MarginTableID uint32 `json:"marginTableId" msgpack:"marginTableId"`
	OnlyIsolated  bool   `json:"onlyIsolated" msgpack:"onlyIsolated"`
}

type PerpDexSchemaInput struct {
	FullName        string `json:"fullName" msgpack:"fullName"`
	CollateralToken int32  `json:"collateralToken" msgpack:"collateralToken"`
	OracleUpdater   string `json:"oracleUpdater,omitempty" msgpack:"oracleUpdater,omitempty"`
}

type RegisterAsset struct {
	MaxGas       string               `json:"maxGas,omitempty" msgpack:"maxGas,omitempty"`
	AssetRequest RegisterAssetRequest `json:"assetRequest" msgpack:"assetRequest"`
	Dex          string               `json:"dex" msgpack:"dex"`
	Schema       *PerpDexSchemaInput  `json:"schema,omitempty" msgpack:"schema,omitempty"`
}

// SetOracle pairs are [coin, price].
type SetOracle struct {
	Dex             string        `json:"dex" msgpack:"dex"`
	OraclePxs       [][2]string   `json:"oraclePxs" msgpack:"oraclePxs"`
	MarkPxs         [][][2]string `json:"markPxs" msgpack:"markPxs"`
	ExternalPerpPxs [][2]string   `json:"externalPerpPxs" msgpack:"externalPerpPxs"`
}

type SetFundingMultipliers struct {
	Multipliers [][2]string `json:"multipliers" msgpack:"multipliers"`
}

type HaltTrading struct {
	Coin     string `json:"coin" msgpack:"coin"`
	IsHalted bool   `json:"isHalted" msgpack:"isHalted"`
}

// MarginTableAssignment encodes as the pair [coin, marginTableId].
type MarginTableAssignment struct {
	Coin          string
	MarginTableID uint32
}

func (m MarginTableAssignment) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{m.Coin, m.MarginTableID})
}

func (m *MarginTableAssignment) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("margin table assignment must have 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &m.Coin); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &m.MarginTableID)
}

func (m MarginTableAssignment) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeString(m.Coin); err != nil {
		return err
	}
	return enc.EncodeUint(uint64(m.MarginTableID))
}

type SetMarginTableIds struct {
	Ids []MarginTableAssignment `json:"ids" msgpack:"ids"`
}

type SetFeeRecipient struct {
	Dex          string `json:"dex" msgpack:"dex"`
	FeeRecipient string `json:"feeRecipient" msgpack:"feeRecipient"`
}

type SetOpenInterestCaps struct {
	Caps [][2]string `json:"caps" msgpack:"caps"`
}

type RawMarginTier struct {
	LowerBound  int64  `json:"lowerBound" msgpack:"lowerBound"`
	MaxLeverage uint32 `json:"maxLeverage" msgpack:"maxLeverage"`
}

type RawMarginTable struct {
	Description string          `json:"description" msgpack:"description"`
	MarginTiers []RawMarginTier `json:"marginTiers" msgpack:"marginTiers"`
}

type InsertMarginTable struct {
	Dex         string         `json:"dex" msgpack:"dex"`
	MarginTable RawMarginTable `json:"marginTable" msgpack:"marginTable"`
}

// PerpDeployOp is one of the perp deployment operations.
type PerpDeployOp interface {
	perpDeployField() string
}

func (RegisterAsset) perpDeployField() string         { return "registerAsset" }
func (SetOracle) perpDeployField() string             { return "setOracle" }
func (SetFundingMultipliers) perpDeployField() string { return "setFundingMultipliers" }
func (HaltTrading) perpDeployField() string           { return "haltTrading" }
func (SetMarginTableIds) perpDeployField() string     { return "setMarginTableIds" }
func (SetFeeRecipient) perpDeployField() string       { return "setFeeRecipient" }
func (SetOpenInterestCaps) perpDeployField() string   { return "setOpenInterestCaps" }
func (InsertMarginTable) perpDeployField() string     { return "insertMarginTable" }

// perpDeployFields lists the operation keys in decode precedence order.
var perpDeployFields = []struct {
	key    string
	decode func([]byte) (PerpDeployOp, error)
}{
	{"registerAsset", decodeOp[RegisterAsset]},
	{"setOracle", decodeOp[SetOracle]},
	{"setFundingMultipliers", decodeOp[SetFundingMultipliers]},
	{"haltTrading", decodeOp[HaltTrading]},
	{"setMarginTableIds", decodeOp[SetMarginTableIds]},
	{"setFeeRecipient", decodeOp[SetFeeRecipient]},
	{"setOpenInterestCaps", decodeOp[SetOpenInterestCaps]},
	{"insertMarginTable", decodeOp[InsertMarginTable]},
}

func decodeOp[T PerpDeployOp](data []byte) (PerpDeployOp, error) {
	var op T
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, err
	}
	return op, nil
}

// PerpDeploy wraps a single deployment operation. It encodes as
// {"type":"perpDeploy","<operation>":{...}}.
type PerpDeploy struct {
	Op PerpDeployOp
}

func (PerpDeploy) selfTagged() {}

func (p PerpDeploy) validate() error {
	if p.Op == nil {
		return fmt.Errorf("perpDeploy requires an operation")
	}
	return nil
}

func (p PerpDeploy) MarshalJSON() ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	body, err := marshalJSON(p.Op)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":"` + TypePerpDeploy + `","` + p.Op.perpDeployField() + `":`)
	buf.Write(body)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *PerpDeploy) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var tag string
	if raw, ok := fields["type"]; ok {
		if err := json.Unmarshal(raw, &tag); err != nil {
			return fmt.Errorf("invalid perpDeploy type: %w", err)
		}
	}
	if tag != TypePerpDeploy {
		return fmt.Errorf("invalid value %q for type, expected %q", tag, TypePerpDeploy)
	}
	for _, f := range perpDeployFields {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		op, err := f.decode(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.key, err)
		}
		p.Op = op
		return nil
	}
	return fmt.Errorf("missing field: one of the perpDeploy action fields")
}

func (p PerpDeploy) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := p.validate(); err != nil {
		return err
	}
	if err := enc.EncodeMapLen(2); err != nil {
		return err
	}
	if err := enc.EncodeString("type"); err != nil {
		return err
	}
	if err := enc.EncodeString(TypePerpDeploy); err != nil {
		return err
	}
	if err := enc.EncodeString(p.Op.perpDeployField()); err != nil {
		return err
	}
	return enc.Encode(p.Op)
}
