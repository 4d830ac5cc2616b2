package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var OrderAccountDiscriminator = Discriminator{0x86, 0xad, 0xdf, 0xb9, 0x4d, 0x56, 0x1c, 0x33}

const (
	OrderAccountSize = (8 + // discriminator
		32 + // owner
		32 + // margin_account
		32 + // market
		8 + // order_id
		8 + // client_order_id
		8 + // size
		8 + // filled_size
		8 + // limit_rate
		8 + // trigger_rate
		8 + // expiry_ts
		8 + // created_ts
		1 + // order_type
		1 + // side
		1 + // status
		1 + // reduce_only
		1 + // bump
		3) // padding
)

// OrderAccount is a zero-copy view over Order account data (C layout).
type OrderAccount struct {
	data []byte
}

// LoadOrderAccount validates the discriminator and returns a view aliasing data.
// Writes through the view modify data.
func LoadOrderAccount(data []byte) (OrderAccount, error) {
	payload, err := loadPod("order", data, OrderAccountDiscriminator, OrderAccountSize)
	if err != nil {
		return OrderAccount{}, err
	}
	return OrderAccount{data: payload}, nil
}

// InitOrderAccount stamps the discriminator into data and returns a view over the payload.
func InitOrderAccount(data []byte) (OrderAccount, error) {
	payload, err := initPod("order", data, OrderAccountDiscriminator, OrderAccountSize)
	if err != nil {
		return OrderAccount{}, err
	}
	return OrderAccount{data: payload}, nil
}

// Bytes returns the payload, excluding the discriminator.
func (a OrderAccount) Bytes() []byte { return a.data }

const (
	orderOwnerOffset         = 0
	orderMarginAccountOffset = 32
	orderMarketOffset        = 64
	orderOrderIDOffset       = 96
	orderClientOrderIDOffset = 104
	orderSizeOffset          = 112
	orderFilledSizeOffset    = 120
	orderLimitRateOffset     = 128
	orderTriggerRateOffset   = 136
	orderExpiryTsOffset      = 144
	orderCreatedTsOffset     = 152
	orderOrderTypeOffset     = 160
	orderSideOffset          = 161
	orderStatusOffset        = 162
	orderReduceOnlyOffset    = 163
	orderBumpOffset          = 164
)

func (a OrderAccount) Owner() ed25519.PublicKey { return binary.KeyAt(a.data, orderOwnerOffset) }
func (a OrderAccount) SetOwner(v ed25519.PublicKey) { binary.PutKeyAt(a.data, orderOwnerOffset, v) }
func (a OrderAccount) MarginAccount() ed25519.PublicKey { return binary.KeyAt(a.data, orderMarginAccountOffset) }
func (a OrderAccount) SetMarginAccount(v ed25519.PublicKey) { binary.PutKeyAt(a.data, orderMarginAccountOffset, v) }
func (a OrderAccount) Market() ed25519.PublicKey { return binary.KeyAt(a.data, orderMarketOffset) }
func (a OrderAccount) SetMarket(v ed25519.PublicKey) { binary.PutKeyAt(a.data, orderMarketOffset, v) }
func (a OrderAccount) OrderID() uint64 { return binary.Uint64At(a.data, orderOrderIDOffset) }
func (a OrderAccount) SetOrderID(v uint64) { binary.PutUint64At(a.data, orderOrderIDOffset, v) }
func (a OrderAccount) ClientOrderID() uint64 { return binary.Uint64At(a.data, orderClientOrderIDOffset) }
func (a OrderAccount) SetClientOrderID(v uint64) { binary.PutUint64At(a.data, orderClientOrderIDOffset, v) }
func (a OrderAccount) Size() uint64 { return binary.Uint64At(a.data, orderSizeOffset) }
func (a OrderAccount) SetSize(v uint64) { binary.PutUint64At(a.data, orderSizeOffset, v) }
func (a OrderAccount) FilledSize() uint64 { return binary.Uint64At(a.data, orderFilledSizeOffset) }
func (a OrderAccount) SetFilledSize(v uint64) { binary.PutUint64At(a.data, orderFilledSizeOffset, v) }
func (a OrderAccount) LimitRate() uint64 { return binary.Uint64At(a.data, orderLimitRateOffset) }
func (a OrderAccount) SetLimitRate(v uint64) { binary.PutUint64At(a.data, orderLimitRateOffset, v) }
func (a OrderAccount) TriggerRate() uint64 { return binary.Uint64At(a.data, orderTriggerRateOffset) }
func (a OrderAccount) SetTriggerRate(v uint64) { binary.PutUint64At(a.data, orderTriggerRateOffset, v) }
func (a OrderAccount) ExpiryTs() int64 { return binary.Int64At(a.data, orderExpiryTsOffset) }
func (a OrderAccount) SetExpiryTs(v int64) { binary.PutInt64At(a.data, orderExpiryTsOffset, v) }
func (a OrderAccount) CreatedTs() int64 { return binary.Int64At(a.data, orderCreatedTsOffset) }
func (a OrderAccount) SetCreatedTs(v int64) { binary.PutInt64At(a.data, orderCreatedTsOffset, v) }
func (a OrderAccount) OrderType() OrderType { return OrderType(a.data[orderOrderTypeOffset]) }
func (a OrderAccount) SetOrderType(v OrderType) { a.data[orderOrderTypeOffset] = uint8(v) }
func (a OrderAccount) Side() OrderSide { return OrderSide(a.data[orderSideOffset]) }
func (a OrderAccount) SetSide(v OrderSide) { a.data[orderSideOffset] = uint8(v) }
func (a OrderAccount) Status() OrderStatus { return OrderStatus(a.data[orderStatusOffset]) }
func (a OrderAccount) SetStatus(v OrderStatus) { a.data[orderStatusOffset] = uint8(v) }
func (a OrderAccount) ReduceOnly() uint8 { return a.data[orderReduceOnlyOffset] }
func (a OrderAccount) SetReduceOnly(v uint8) { a.data[orderReduceOnlyOffset] = v }
func (a OrderAccount) Bump() uint8 { return a.data[orderBumpOffset] }
func (a OrderAccount) SetBump(v uint8) { a.data[orderBumpOffset] = v }

func (a OrderAccount) Fields() []Field {
	return []Field{
		{Name: "owner", Value: a.Owner()},
		{Name: "margin_account", Value: a.MarginAccount()},
		{Name: "market", Value: a.Market()},
		{Name: "order_id", Value: a.OrderID()},
		{Name: "client_order_id", Value: a.ClientOrderID()},
		{Name: "size", Value: a.Size()},
		{Name: "filled_size", Value: a.FilledSize()},
		{Name: "limit_rate", Value: a.LimitRate()},
		{Name: "trigger_rate", Value: a.TriggerRate()},
		{Name: "expiry_ts", Value: a.ExpiryTs()},
		{Name: "created_ts", Value: a.CreatedTs()},
		{Name: "order_type", Value: a.OrderType()},
		{Name: "side", Value: a.Side()},
		{Name: "status", Value: a.Status()},
		{Name: "reduce_only", Value: a.ReduceOnly()},
		{Name: "bump", Value: a.Bump()},
	}
}
