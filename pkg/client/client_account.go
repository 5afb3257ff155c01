package client

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	"github.com/pooofdevelopment/go-hl-client/pkg/exchange"
	"github.com/pooofdevelopment/go-hl-client/pkg/utilities"
)

func (c *Client) UpdateLeverage(ctx context.Context, leverage uint32, coin string, isCross bool) (*exchange.ExchangeResponse, error) {
	asset, err := c.asset(coin)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, actions.UpdateLeverage{Asset: asset, IsCross: isCross, Leverage: leverage})
}

// UpdateIsolatedMargin adds amount USD of margin to an isolated position, or removes it when negative.
func (c *Client) UpdateIsolatedMargin(ctx context.Context, amount float64, coin string, isBuy bool) (*exchange.ExchangeResponse, error) {
	asset, err := c.asset(coin)
	if err != nil {
		return nil, err
	}
	ntli, err := utilities.FloatToUsdInt(amount)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, actions.UpdateIsolatedMargin{Asset: asset, IsBuy: isBuy, Ntli: ntli})
}

// UsdTransfer sends USDC to another perp account.
func (c *Client) UsdTransfer(ctx context.Context, amount, destination string) (*exchange.ExchangeResponse, error) {
	nonce := c.exchange.NextNonce()
	return c.ExecuteWithNonce(ctx, actions.UsdSend{
		SignatureChainID: c.signatureChainID,
		HyperliquidChain: c.chainName(),
		Destination:      utilities.NormalizeAddress(destination),
		Amount:           amount,
		Time:             nonce,
	}, nonce)
}

// Withdraw moves USDC out through the bridge.
func (c *Client) Withdraw(ctx context.Context, amount, destination string) (*exchange.ExchangeResponse, error) {
	nonce := c.exchange.NextNonce()
	return c.ExecuteWithNonce(ctx, actions.Withdraw3{
		SignatureChainID: c.signatureChainID,
		HyperliquidChain: c.chainName(),
		Destination:      utilities.NormalizeAddress(destination),
		Amount:           amount,
		Time:             nonce,
	}, nonce)
}

// SpotTransfer sends a spot token, named as "NAME:0x<token id>".
func (c *Client) SpotTransfer(ctx context.Context, amount, destination, token string) (*exchange.ExchangeResponse, error) {
	nonce := c.exchange.NextNonce()
	return c.ExecuteWithNonce(ctx, actions.SpotSend{
		SignatureChainID: c.signatureChainID,
		HyperliquidChain: c.chainName(),
		Destination:      utilities.NormalizeAddress(destination),
		Token:            token,
		Amount:           amount,
		Time:             nonce,
	}, nonce)
}

// SendAsset moves a token between dexes; an empty dex name is the default perp dex.
func (c *Client) SendAsset(ctx context.Context, destination, sourceDex, destinationDex, token, amount, fromSubAccount string) (*exchange.ExchangeResponse, error) {
	nonce := c.exchange.NextNonce()
	return c.ExecuteWithNonce(ctx, actions.SendAsset{
		SignatureChainID: c.signatureChainID,
		HyperliquidChain: c.chainName(),
		Destination:      utilities.NormalizeAddress(destination),
		SourceDex:        sourceDex,
		DestinationDex:   destinationDex,
		Token:            token,
		Amount:           amount,
		FromSubAccount:   fromSubAccount,
		Nonce:            nonce,
	}, nonce)
}

// ClassTransfer moves USDC between the spot and perp balances.
func (c *Client) ClassTransfer(ctx context.Context, usdc float64, toPerp bool) (*exchange.ExchangeResponse, error) {
	amount, err := utilities.FloatToUsdInt(usdc)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, fmt.Errorf("class transfer amount must not be negative: %v", usdc)
	}
	return c.Execute(ctx, actions.SpotUser{ClassTransfer: actions.ClassTransfer{Usdc: uint64(amount), ToPerp: toPerp}})
}

// VaultTransfer deposits into or withdraws from a vault, in micro-USD.
func (c *Client) VaultTransfer(ctx context.Context, vault common.Address, isDeposit bool, usd uint64) (*exchange.ExchangeResponse, error) {
	return c.Execute(ctx, actions.VaultTransfer{
		VaultAddress: utilities.NormalizeAddress(vault.Hex()),
		IsDeposit:    isDeposit,
		Usd:          usd,
	})
}

// ApproveAgent generates a fresh agent key and authorizes it. The returned
// hex key is the only copy.
func (c *Client) ApproveAgent(ctx context.Context, name string) (string, *exchange.ExchangeResponse, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", nil, err
	}
	agent := crypto.PubkeyToAddress(key.PublicKey)

	nonce := c.exchange.NextNonce()
	resp, err := c.ExecuteWithNonce(ctx, actions.ApproveAgent{
		SignatureChainID: c.signatureChainID,
		HyperliquidChain: c.chainName(),
		AgentAddress:     utilities.NormalizeAddress(agent.Hex()),
		AgentName:        name,
		Nonce:            nonce,
	}, nonce)
	return hexutil.Encode(crypto.FromECDSA(key)), resp, err
}

// ApproveBuilderFee lets builder charge up to maxFeeRate, e.g. "0.001%".
func (c *Client) ApproveBuilderFee(ctx context.Context, builder common.Address, maxFeeRate string) (*exchange.ExchangeResponse, error) {
	nonce := c.exchange.NextNonce()
	return c.ExecuteWithNonce(ctx, actions.ApproveBuilderFee{
		SignatureChainID: c.signatureChainID,
		HyperliquidChain: c.chainName(),
		MaxFeeRate:       maxFeeRate,
		Builder:          utilities.NormalizeAddress(builder.Hex()),
		Nonce:            nonce,
	}, nonce)
}

func (c *Client) SetReferrer(ctx context.Context, code string) (*exchange.ExchangeResponse, error) {
	return c.Execute(ctx, actions.SetReferrer{Code: code})
}

// ScheduleCancel cancels all open orders at t; a nil t clears the schedule.
func (c *Client) ScheduleCancel(ctx context.Context, t *time.Time) (*exchange.ExchangeResponse, error) {
	var action actions.ScheduleCancel
	if t != nil {
		ms := uint64(t.UnixMilli())
		action.Time = &ms
	}
	return c.Execute(ctx, action)
}

func (c *Client) ClaimRewards(ctx context.Context) (*exchange.ExchangeResponse, error) {
	return c.Execute(ctx, actions.ClaimRewards{})
}

// UseBigBlocks switches the account's HyperEVM transactions to big blocks.
func (c *Client) UseBigBlocks(ctx context.Context, enable bool) (*exchange.ExchangeResponse, error) {
	return c.Execute(ctx, actions.EvmUserModify{UsingBigBlocks: enable})
}

// PerpDeploy submits a perp deployment operation.
func (c *Client) PerpDeploy(ctx context.Context, op actions.PerpDeployOp) (*exchange.ExchangeResponse, error) {
	return c.Execute(ctx, actions.PerpDeploy{Op: op})
}
