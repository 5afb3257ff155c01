package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	"github.com/pooofdevelopment/go-hl-client/pkg/exchange"
	"github.com/pooofdevelopment/go-hl-client/pkg/orderbuilder"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// Order places a single order.
func (c *Client) Order(ctx context.Context, req orderbuilder.ClientOrderRequest, builder *actions.BuilderInfo) (*exchange.ExchangeResponse, error) {
	return c.BulkOrders(ctx, []orderbuilder.ClientOrderRequest{req}, types.GroupingNa, builder)
}

// BulkOrders places several orders in one action.
func (c *Client) BulkOrders(ctx context.Context, reqs []orderbuilder.ClientOrderRequest, grouping string, builder *actions.BuilderInfo) (*exchange.ExchangeResponse, error) {
	action, err := c.builder.BuildBulkOrder(reqs, grouping, builder)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, action)
}

func (c *Client) Cancel(ctx context.Context, coin string, oid uint64) (*exchange.ExchangeResponse, error) {
	return c.BulkCancel(ctx, []orderbuilder.ClientCancelRequest{{Coin: coin, Oid: oid}})
}

func (c *Client) BulkCancel(ctx context.Context, reqs []orderbuilder.ClientCancelRequest) (*exchange.ExchangeResponse, error) {
	action, err := c.builder.BuildCancels(reqs)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, action)
}

func (c *Client) CancelByCloid(ctx context.Context, coin string, cloid uuid.UUID) (*exchange.ExchangeResponse, error) {
	return c.BulkCancelByCloid(ctx, []orderbuilder.ClientCancelRequestCloid{{Coin: coin, Cloid: cloid}})
}

func (c *Client) BulkCancelByCloid(ctx context.Context, reqs []orderbuilder.ClientCancelRequestCloid) (*exchange.ExchangeResponse, error) {
	action, err := c.builder.BuildCancelsByCloid(reqs)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, action)
}

// Modify replaces a resting order.
func (c *Client) Modify(ctx context.Context, oid uint64, req orderbuilder.ClientOrderRequest) (*exchange.ExchangeResponse, error) {
	return c.BulkModify(ctx, []orderbuilder.ClientModifyRequest{{Oid: oid, Order: req}})
}

func (c *Client) BulkModify(ctx context.Context, reqs []orderbuilder.ClientModifyRequest) (*exchange.ExchangeResponse, error) {
	action, err := c.builder.BuildModifies(reqs)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, action)
}
