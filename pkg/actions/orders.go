package actions

import "fmt"

type Limit struct {
	Tif string `json:"tif" msgpack:"tif"`
}

type Trigger struct {
	IsMarket  bool   `json:"isMarket" msgpack:"isMarket"`
	TriggerPx string `json:"triggerPx" msgpack:"triggerPx"`
	Tpsl      string `json:"tpsl" msgpack:"tpsl"`
}

// OrderType holds exactly one of Limit or Trigger.
type OrderType struct {
	Limit   *Limit   `json:"limit,omitempty" msgpack:"limit,omitempty"`
	Trigger *Trigger `json:"trigger,omitempty" msgpack:"trigger,omitempty"`
}

// OrderRequest is an order in wire form: asset index, prices and sizes as decimal strings.
type OrderRequest struct {
	Asset      uint32    `json:"a" msgpack:"a"`
	IsBuy      bool      `json:"b" msgpack:"b"`
	LimitPx    string    `json:"p" msgpack:"p"`
	Sz         string    `json:"s" msgpack:"s"`
	ReduceOnly bool      `json:"r" msgpack:"r"`
	OrderType  OrderType `json:"t" msgpack:"t"`
	Cloid      string    `json:"c,omitempty" msgpack:"c,omitempty"`
}

func (o OrderRequest) validate() error {
	if (o.OrderType.Limit == nil) == (o.OrderType.Trigger == nil) {
		return fmt.Errorf("order for asset %d must set exactly one of limit or trigger", o.Asset)
	}
	return nil
}

// BuilderInfo routes a builder fee, in tenths of a basis point.
type BuilderInfo struct {
	Builder string `json:"b" msgpack:"b"`
	Fee     uint64 `json:"f" msgpack:"f"`
}

type BulkOrder struct {
	Orders   []OrderRequest `json:"orders" msgpack:"orders"`
	Grouping string         `json:"grouping" msgpack:"grouping"`
	Builder  *BuilderInfo   `json:"builder,omitempty" msgpack:"builder,omitempty"`
}

func (b BulkOrder) validate() error {
	if len(b.Orders) == 0 {
		return fmt.Errorf("at least one order is required")
	}
	if b.Grouping == "" {
		return fmt.Errorf("order grouping is required")
	}
	for _, o := range b.Orders {
		if err := o.validate(); err != nil {
			return err
		}
	}
	return nil
}

type CancelRequest struct {
	Asset uint32 `json:"a" msgpack:"a"`
	Oid   uint64 `json:"o" msgpack:"o"`
}

type BulkCancel struct {
	Cancels []CancelRequest `json:"cancels" msgpack:"cancels"`
}

func (b BulkCancel) validate() error {
	if len(b.Cancels) == 0 {
		return fmt.Errorf("at least one cancel is required")
	}
	return nil
}

type CancelRequestCloid struct {
	Asset uint32 `json:"asset" msgpack:"asset"`
	Cloid string `json:"cloid" msgpack:"cloid"`
}

type BulkCancelCloid struct {
	Cancels []CancelRequestCloid `json:"cancels" msgpack:"cancels"`
}

func (b BulkCancelCloid) validate() error {
	if len(b.Cancels) == 0 {
		return fmt.Errorf("at least one cancel is required")
	}
	return nil
}

type ModifyRequest struct {
	Oid   uint64       `json:"oid" msgpack:"oid"`
	Order OrderRequest `json:"order" msgpack:"order"`
}

type BulkModify struct {
	Modifies []ModifyRequest `json:"modifies" msgpack:"modifies"`
}

func (b BulkModify) validate() error {
	if len(b.Modifies) == 0 {
		return fmt.Errorf("at least one modify is required")
	}
	for _, m := range b.Modifies {
		if err := m.Order.validate(); err != nil {
			return err
		}
	}
	return nil
}
