package yieldex

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var OrderBookAccountDiscriminator = Discriminator{0x37, 0xe6, 0x7d, 0xda, 0x95, 0x27, 0x41, 0xf8}

type OrderBookAccount struct {
	Market       ed25519.PublicKey
	NextOrderID  uint64
	MinOrderSize uint64
	RateTick     uint64
	OpenOrders   []OpenOrderEntry
	Bump         uint8
}

// Marshal encodes the account, discriminator included.
func (obj *OrderBookAccount) Marshal() []byte {
	e := binary.NewEncoder(69)
	e.PutFixed(OrderBookAccountDiscriminator[:])
	e.PutKey(obj.Market)
	e.PutUint64(obj.NextOrderID)
	e.PutUint64(obj.MinOrderSize)
	e.PutUint64(obj.RateTick)
	binary.PutVec(e, obj.OpenOrders, putOpenOrderEntry)
	e.PutUint8(obj.Bump)
	return e.Bytes()
}

func (obj *OrderBookAccount) Unmarshal(data []byte) (err error) {
	if len(data) < len(OrderBookAccountDiscriminator) {
		return newAccountDataError("order_book", ErrInsufficientLength)
	}
	if !bytes.Equal(data[:len(OrderBookAccountDiscriminator)], OrderBookAccountDiscriminator[:]) {
		return newAccountDataError("order_book", ErrDiscriminatorMismatch)
	}

	d := binary.NewDecoder(data[len(OrderBookAccountDiscriminator):])
	if obj.Market, err = d.GetKey(); err != nil {
		return newAccountDataError("order_book", errors.Wrap(err, "market"))
	}
	if obj.NextOrderID, err = d.GetUint64(); err != nil {
		return newAccountDataError("order_book", errors.Wrap(err, "next_order_id"))
	}
	if obj.MinOrderSize, err = d.GetUint64(); err != nil {
		return newAccountDataError("order_book", errors.Wrap(err, "min_order_size"))
	}
	if obj.RateTick, err = d.GetUint64(); err != nil {
		return newAccountDataError("order_book", errors.Wrap(err, "rate_tick"))
	}
	if obj.OpenOrders, err = binary.GetVec(d, 57, getOpenOrderEntry); err != nil {
		return newAccountDataError("order_book", errors.Wrap(err, "open_orders"))
	}
	if obj.Bump, err = d.GetUint8(); err != nil {
		return newAccountDataError("order_book", errors.Wrap(err, "bump"))
	}
	return nil
}
