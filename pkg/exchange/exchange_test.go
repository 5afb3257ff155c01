package exchange

import (
	"context"
	"sync"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
)

const (
	testPrivateKey  = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testDestination = "0x1234567890123456789012345678901234567890"
	testNonce       = uint64(1690393044548)
)

// fakeTransport records posted bodies and answers with a fixed response.
type fakeTransport struct {
	mu       sync.Mutex
	bodies   [][]byte
	response []byte
	err      error
}

func (f *fakeTransport) PostExchange(ctx context.Context, body []byte) ([]byte, error) {
	f.mu.Lock()
	f.bodies = append(f.bodies, append([]byte(nil), body...))
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeTransport) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bodies)
}

func limitOrder(asset uint32) actions.OrderRequest {
	return actions.OrderRequest{
		Asset:     asset,
		IsBuy:     true,
		LimitPx:   "1100",
		Sz:        "0.2",
		OrderType: actions.OrderType{Limit: &actions.Limit{Tif: "Gtc"}},
	}
}

func hashBasedSamples() []actions.Action {
	cancelTime := uint64(1700000000000)
	return []actions.Action{
		actions.BulkOrder{Orders: []actions.OrderRequest{limitOrder(0)}, Grouping: "na"},
		actions.BulkCancel{Cancels: []actions.CancelRequest{{Asset: 1, Oid: 42}}},
		actions.BulkCancelCloid{Cancels: []actions.CancelRequestCloid{{Asset: 1, Cloid: "0x00000000000000000000000000000001"}}},
		actions.BulkModify{Modifies: []actions.ModifyRequest{{Oid: 7, Order: limitOrder(2)}}},
		actions.UpdateLeverage{Asset: 3, IsCross: true, Leverage: 10},
		actions.UpdateIsolatedMargin{Asset: 3, IsBuy: true, Ntli: 1000000},
		actions.SpotUser{ClassTransfer: actions.ClassTransfer{Usdc: 5000000, ToPerp: true}},
		actions.VaultTransfer{VaultAddress: "0xa15099a30bbf2e68942d6f4c43d70d04faeab0a0", IsDeposit: true, Usd: 1000000},
		actions.SetReferrer{Code: "ABC"},
		actions.EvmUserModify{UsingBigBlocks: true},
		actions.ScheduleCancel{Time: &cancelTime},
		actions.ClaimRewards{},
		actions.PerpDeploy{Op: actions.HaltTrading{Coin: "dex:BTC", IsHalted: true}},
	}
}

func typedDataSamples() []actions.Action {
	return []actions.Action{
		actions.UsdSend{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: testDestination, Amount: "100", Time: testNonce},
		actions.Withdraw3{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: testDestination, Amount: "5", Time: testNonce},
		actions.SpotSend{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: testDestination, Token: "USDC", Amount: "1", Time: testNonce},
		actions.SendAsset{SignatureChainID: 421614, HyperliquidChain: "Testnet", Destination: testDestination, Token: "USDC", Amount: "1", Nonce: testNonce},
		actions.ApproveAgent{SignatureChainID: 421614, HyperliquidChain: "Testnet", AgentAddress: testDestination, Nonce: testNonce},
		actions.ApproveBuilderFee{SignatureChainID: 421614, HyperliquidChain: "Testnet", MaxFeeRate: "0.001%", Builder: testDestination, Nonce: testNonce},
	}
}
