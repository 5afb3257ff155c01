package actions

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func limitOrder(asset uint32) OrderRequest {
	return OrderRequest{
		Asset:     asset,
		IsBuy:     true,
		LimitPx:   "1100",
		Sz:        "0.2",
		OrderType: OrderType{Limit: &Limit{Tif: "Gtc"}},
	}
}

// samples holds one well-formed value of every registered action.
func samples() map[string]Action {
	cancelTime := uint64(1700000000000)
	return map[string]Action{
		TypeOrder:                BulkOrder{Orders: []OrderRequest{limitOrder(0)}, Grouping: "na"},
		TypeCancel:               BulkCancel{Cancels: []CancelRequest{{Asset: 1, Oid: 42}}},
		TypeCancelByCloid:        BulkCancelCloid{Cancels: []CancelRequestCloid{{Asset: 1, Cloid: "0x00000000000000000000000000000001"}}},
		TypeBatchModify:          BulkModify{Modifies: []ModifyRequest{{Oid: 7, Order: limitOrder(2)}}},
		TypeUpdateLeverage:       UpdateLeverage{Asset: 3, IsCross: true, Leverage: 10},
		TypeUpdateIsolatedMargin: UpdateIsolatedMargin{Asset: 3, IsBuy: true, Ntli: -1000000},
		TypeSpotUser:             SpotUser{ClassTransfer: ClassTransfer{Usdc: 5000000, ToPerp: true}},
		TypeVaultTransfer:        VaultTransfer{VaultAddress: "0xa15099a30bbf2e68942d6f4c43d70d04faeab0a0", IsDeposit: true, Usd: 1000000},
		TypeSetReferrer:          SetReferrer{Code: "ABC"},
		TypeEvmUserModify:        EvmUserModify{UsingBigBlocks: true},
		TypeScheduleCancel:       ScheduleCancel{Time: &cancelTime},
		TypeClaimRewards:         ClaimRewards{},
		TypePerpDeploy:           PerpDeploy{Op: HaltTrading{Coin: "dex:BTC", IsHalted: true}},
		TypeUsdSend:              UsdSend{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: "0x1234567890123456789012345678901234567890", Amount: "100", Time: 1690393044548},
		TypeWithdraw3:            Withdraw3{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: "0x1234567890123456789012345678901234567890", Amount: "5", Time: 1690393044548},
		TypeSpotSend:             SpotSend{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: "0x1234567890123456789012345678901234567890", Token: "PURR:0xc4bf3f870c0e9465323c0b6ed28096c2", Amount: "1", Time: 1690393044548},
		TypeSendAsset:            SendAsset{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: "0x1234567890123456789012345678901234567890", Token: "USDC", Amount: "1", Nonce: 1690393044548},
		TypeApproveAgent:         ApproveAgent{SignatureChainID: 421614, HyperliquidChain: "Testnet", AgentAddress: "0x1234567890123456789012345678901234567890", AgentName: "bot", Nonce: 1690393044548},
		TypeApproveBuilderFee:    ApproveBuilderFee{SignatureChainID: 421614, HyperliquidChain: "Testnet", MaxFeeRate: "0.001%", Builder: "0x1234567890123456789012345678901234567890", Nonce: 1690393044548},
	}
}

func TestSamplesCoverEveryType(t *testing.T) {
	s := samples()
	assert.Len(t, s, len(Types()))
	for _, typ := range Types() {
		a, ok := s[typ]
		require.True(t, ok, "missing sample for %s", typ)
		assert.Equal(t, typ, a.Type())
	}
}

func TestMarshalJSONTypeFirst(t *testing.T) {
	for typ, a := range samples() {
		t.Run(typ, func(t *testing.T) {
			data, err := MarshalJSON(a)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), `{"type":"`+typ+`"`), string(data))
			assert.True(t, json.Valid(data))
		})
	}
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	for typ, a := range samples() {
		t.Run(typ, func(t *testing.T) {
			data, err := MarshalJSON(a)
			require.NoError(t, err)

			decoded, err := UnmarshalJSON(data)
			require.NoError(t, err)
			assert.Equal(t, a, decoded)

			again, err := MarshalJSON(decoded)
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
		})
	}
}

func TestMarshalJSONExact(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{
			name:   "empty action",
			action: ClaimRewards{},
			want:   `{"type":"claimRewards"}`,
		},
		{
			name:   "cleared schedule cancel",
			action: ScheduleCancel{},
			want:   `{"type":"scheduleCancel"}`,
		},
		{
			name:   "order field order",
			action: BulkOrder{Orders: []OrderRequest{limitOrder(0)}, Grouping: "na"},
			want:   `{"type":"order","orders":[{"a":0,"b":true,"p":"1100","s":"0.2","r":false,"t":{"limit":{"tif":"Gtc"}}}],"grouping":"na"}`,
		},
		{
			name:   "chain id as hex",
			action: UsdSend{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: "0x1234567890123456789012345678901234567890", Amount: "100", Time: 1690393044548},
			want:   `{"type":"usdSend","signatureChainId":"0x66eee","hyperliquidChain":"Testnet","destination":"0x1234567890123456789012345678901234567890","amount":"100","time":1690393044548}`,
		},
		{
			name:   "unnamed agent",
			action: ApproveAgent{SignatureChainID: 42161, HyperliquidChain: "Mainnet", AgentAddress: "0x1234567890123456789012345678901234567890", Nonce: 1},
			want:   `{"type":"approveAgent","signatureChainId":"0xa4b1","hyperliquidChain":"Mainnet","agentAddress":"0x1234567890123456789012345678901234567890","nonce":1}`,
		},
		{
			name:   "perp deploy",
			action: PerpDeploy{Op: SetMarginTableIds{Ids: []MarginTableAssignment{{Coin: "dex:BTC", MarginTableID: 3}}}},
			want:   `{"type":"perpDeploy","setMarginTableIds":{"ids":[["dex:BTC",3]]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalJSON(tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestMarshalMsgpackExact(t *testing.T) {
	data, err := MarshalMsgpack(SetReferrer{Code: "ABC"})
	require.NoError(t, err)

	want := []byte{0x82, 0xa4}
	want = append(want, "type"...)
	want = append(want, 0xab)
	want = append(want, "setReferrer"...)
	want = append(want, 0xa4)
	want = append(want, "code"...)
	want = append(want, 0xa3)
	want = append(want, "ABC"...)
	assert.Equal(t, want, data)
}

func TestMarshalMsgpackEmptyAction(t *testing.T) {
	data, err := MarshalMsgpack(ClaimRewards{})
	require.NoError(t, err)

	want := []byte{0x81, 0xa4}
	want = append(want, "type"...)
	want = append(want, 0xac)
	want = append(want, "claimRewards"...)
	assert.Equal(t, want, data)
}

func TestMarshalMsgpackFieldOrder(t *testing.T) {
	data, err := MarshalMsgpack(BulkOrder{Orders: []OrderRequest{limitOrder(0)}, Grouping: "na"})
	require.NoError(t, err)

	keys := []string{"type", "orders", "a", "b", "p", "s", "r", "t", "limit", "tif", "grouping"}
	last := -1
	for _, k := range keys {
		idx := bytes.Index(data[last+1:], append([]byte{0xa0 | byte(len(k))}, k...))
		require.GreaterOrEqual(t, idx, 0, "key %q not found after offset %d", k, last)
		last += 1 + idx
	}
	assert.Equal(t, byte(0x83), data[0], "type, orders, grouping")
}

func TestMarshalMsgpackCompactInts(t *testing.T) {
	data, err := MarshalMsgpack(BulkCancel{Cancels: []CancelRequest{{Asset: 1, Oid: 42}}})
	require.NoError(t, err)

	// "a" then positive fixint 1, "o" then positive fixint 42
	assert.True(t, bytes.Contains(data, []byte{0xa1, 'a', 0x01, 0xa1, 'o', 0x2a}), "% x", data)

	data, err = MarshalMsgpack(UpdateIsolatedMargin{Asset: 0, IsBuy: false, Ntli: -1})
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte{0xa4, 'n', 't', 'l', 'i', 0xff}), "% x", data)
}

func TestMarshalMsgpackDecodesAsMap(t *testing.T) {
	for _, typ := range []string{TypeOrder, TypeBatchModify, TypeVaultTransfer, TypeScheduleCancel, TypePerpDeploy} {
		t.Run(typ, func(t *testing.T) {
			data, err := MarshalMsgpack(samples()[typ])
			require.NoError(t, err)

			var m map[string]interface{}
			require.NoError(t, msgpack.Unmarshal(data, &m))
			assert.Equal(t, typ, m["type"])
		})
	}
}

func TestPerpDeployMsgpack(t *testing.T) {
	data, err := MarshalMsgpack(PerpDeploy{Op: HaltTrading{Coin: "dex:BTC", IsHalted: true}})
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, msgpack.Unmarshal(data, &m))
	assert.Len(t, m, 2)
	assert.Equal(t, TypePerpDeploy, m["type"])
	assert.Equal(t, map[string]interface{}{"coin": "dex:BTC", "isHalted": true}, m["haltTrading"])
}

func TestPerpDeployUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PerpDeployOp
		wantErr string
	}{
		{
			name:  "halt trading",
			input: `{"type":"perpDeploy","haltTrading":{"coin":"dex:BTC","isHalted":false}}`,
			want:  HaltTrading{Coin: "dex:BTC"},
		},
		{
			name:  "fee recipient",
			input: `{"type":"perpDeploy","setFeeRecipient":{"dex":"dex","feeRecipient":"0x1234567890123456789012345678901234567890"}}`,
			want:  SetFeeRecipient{Dex: "dex", FeeRecipient: "0x1234567890123456789012345678901234567890"},
		},
		{
			name:    "wrong type",
			input:   `{"type":"order","haltTrading":{"coin":"dex:BTC","isHalted":true}}`,
			wantErr: "invalid value",
		},
		{
			name:    "missing type",
			input:   `{"haltTrading":{"coin":"dex:BTC","isHalted":true}}`,
			wantErr: "invalid value",
		},
		{
			name:    "missing operation",
			input:   `{"type":"perpDeploy"}`,
			wantErr: "missing field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PerpDeploy
			err := json.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Op)
		})
	}
}

func TestUnmarshalJSONRejectsUnknownType(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{"type":"twapOrder","twap":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action type")

	_, err = UnmarshalJSON([]byte(`not json`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{name: "nil", action: nil},
		{name: "empty orders", action: BulkOrder{Grouping: "na"}},
		{name: "missing grouping", action: BulkOrder{Orders: []OrderRequest{limitOrder(0)}}},
		{name: "order without type", action: BulkOrder{Orders: []OrderRequest{{Asset: 1}}, Grouping: "na"}},
		{name: "order with both types", action: BulkOrder{Orders: []OrderRequest{{OrderType: OrderType{Limit: &Limit{Tif: "Gtc"}, Trigger: &Trigger{Tpsl: "tp"}}}}, Grouping: "na"}},
		{name: "empty cancels", action: BulkCancel{}},
		{name: "empty cloid cancels", action: BulkCancelCloid{}},
		{name: "empty modifies", action: BulkModify{}},
		{name: "bad modify", action: BulkModify{Modifies: []ModifyRequest{{Oid: 1}}}},
		{name: "perp deploy without op", action: PerpDeploy{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, Validate(tt.action))
			_, err := MarshalJSON(tt.action)
			require.Error(t, err)
			_, err = MarshalMsgpack(tt.action)
			require.Error(t, err)
		})
	}
}

func TestChainIDUnmarshal(t *testing.T) {
	tests := []struct {
		input   string
		want    ChainID
		wantErr bool
	}{
		{input: `"0x66eee"`, want: 421614},
		{input: `"0xa4b1"`, want: 42161},
		{input: `"421614"`, want: 421614},
		{input: `421614`, want: 421614},
		{input: `"0xzz"`, wantErr: true},
		{input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var c ChainID
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}
