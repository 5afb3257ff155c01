package orderbuilder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pooofdevelopment/go-hl-client/pkg/actions"
	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
	"github.com/pooofdevelopment/go-hl-client/pkg/utilities"
)

// AssetResolver maps a coin name to its asset index.
type AssetResolver interface {
	AssetFor(coin string) (uint32, bool)
}

// ClientLimit is a resting limit order with a time in force.
type ClientLimit struct {
	Tif string
}

// ClientTrigger is a take-profit or stop-loss order.
type ClientTrigger struct {
	IsMarket  bool
	TriggerPx float64
	Tpsl      string
}

// ClientOrder holds exactly one of Limit or Trigger.
type ClientOrder struct {
	Limit   *ClientLimit
	Trigger *ClientTrigger
}

// ClientOrderRequest is an order in caller terms: coin name and float prices.
type ClientOrderRequest struct {
	Coin       string
	IsBuy      bool
	ReduceOnly bool
	LimitPx    float64
	Sz         float64
	Cloid      *uuid.UUID
	OrderType  ClientOrder
}

type ClientCancelRequest struct {
	Coin string
	Oid  uint64
}

type ClientCancelRequestCloid struct {
	Coin  string
	Cloid uuid.UUID
}

type ClientModifyRequest struct {
	Oid   uint64
	Order ClientOrderRequest
}

// OrderBuilder converts client requests into wire requests
type OrderBuilder struct {
	assets AssetResolver
}

// NewOrderBuilder creates a new order builder
func NewOrderBuilder(assets AssetResolver) *OrderBuilder {
	return &OrderBuilder{assets: assets}
}

func (ob *OrderBuilder) asset(coin string) (uint32, error) {
	asset, ok := ob.assets.AssetFor(coin)
	if !ok {
		return 0, fmt.Errorf("%w: %s", hlerrors.ErrUnknownAsset, coin)
	}
	return asset, nil
}

// BuildOrder resolves the coin and converts prices and sizes to wire strings.
func (ob *OrderBuilder) BuildOrder(req ClientOrderRequest) (actions.OrderRequest, error) {
	asset, err := ob.asset(req.Coin)
	if err != nil {
		return actions.OrderRequest{}, err
	}
	limitPx, err := utilities.FloatToWire(req.LimitPx)
	if err != nil {
		return actions.OrderRequest{}, fmt.Errorf("limit price: %w", err)
	}
	sz, err := utilities.FloatToWire(req.Sz)
	if err != nil {
		return actions.OrderRequest{}, fmt.Errorf("size: %w", err)
	}
	orderType, err := buildOrderType(req.OrderType)
	if err != nil {
		return actions.OrderRequest{}, err
	}

	order := actions.OrderRequest{
		Asset:      asset,
		IsBuy:      req.IsBuy,
		LimitPx:    limitPx,
		Sz:         sz,
		ReduceOnly: req.ReduceOnly,
		OrderType:  orderType,
	}
	if req.Cloid != nil {
		order.Cloid = utilities.CloidToHex(*req.Cloid)
	}
	return order, nil
}

func buildOrderType(o ClientOrder) (actions.OrderType, error) {
	switch {
	case o.Limit != nil && o.Trigger == nil:
		return actions.OrderType{Limit: &actions.Limit{Tif: o.Limit.Tif}}, nil
	case o.Trigger != nil && o.Limit == nil:
		triggerPx, err := utilities.FloatToWire(o.Trigger.TriggerPx)
		if err != nil {
			return actions.OrderType{}, fmt.Errorf("trigger price: %w", err)
		}
		return actions.OrderType{Trigger: &actions.Trigger{
			IsMarket:  o.Trigger.IsMarket,
			TriggerPx: triggerPx,
			Tpsl:      o.Trigger.Tpsl,
		}}, nil
	}
	return actions.OrderType{}, fmt.Errorf("order must set exactly one of limit or trigger")
}

// BuildBulkOrder converts a batch of orders sharing one grouping.
func (ob *OrderBuilder) BuildBulkOrder(reqs []ClientOrderRequest, grouping string, builder *actions.BuilderInfo) (actions.BulkOrder, error) {
	orders := make([]actions.OrderRequest, 0, len(reqs))
	for _, req := range reqs {
		order, err := ob.BuildOrder(req)
		if err != nil {
			return actions.BulkOrder{}, err
		}
		orders = append(orders, order)
	}
	return actions.BulkOrder{Orders: orders, Grouping: grouping, Builder: builder}, nil
}

func (ob *OrderBuilder) BuildCancels(reqs []ClientCancelRequest) (actions.BulkCancel, error) {
	cancels := make([]actions.CancelRequest, 0, len(reqs))
	for _, req := range reqs {
		asset, err := ob.asset(req.Coin)
		if err != nil {
			return actions.BulkCancel{}, err
		}
		cancels = append(cancels, actions.CancelRequest{Asset: asset, Oid: req.Oid})
	}
	return actions.BulkCancel{Cancels: cancels}, nil
}

func (ob *OrderBuilder) BuildCancelsByCloid(reqs []ClientCancelRequestCloid) (actions.BulkCancelCloid, error) {
	cancels := make([]actions.CancelRequestCloid, 0, len(reqs))
	for _, req := range reqs {
		asset, err := ob.asset(req.Coin)
		if err != nil {
			return actions.BulkCancelCloid{}, err
		}
		cancels = append(cancels, actions.CancelRequestCloid{Asset: asset, Cloid: utilities.CloidToHex(req.Cloid)})
	}
	return actions.BulkCancelCloid{Cancels: cancels}, nil
}

func (ob *OrderBuilder) BuildModifies(reqs []ClientModifyRequest) (actions.BulkModify, error) {
	modifies := make([]actions.ModifyRequest, 0, len(reqs))
	for _, req := range reqs {
		order, err := ob.BuildOrder(req.Order)
		if err != nil {
			return actions.BulkModify{}, err
		}
		modifies = append(modifies, actions.ModifyRequest{Oid: req.Oid, Order: order})
	}
	return actions.BulkModify{Modifies: modifies}, nil
}
