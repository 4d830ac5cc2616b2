package yieldex

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var ExchangeAccountDiscriminator = Discriminator{0x1e, 0xc8, 0xdc, 0x95, 0x03, 0x3d, 0x68, 0x32}

// ExchangeAccount holds the global configuration of the exchange.
type ExchangeAccount struct {
	Admin            ed25519.PublicKey
	PendingAdmin     *ed25519.PublicKey
	FeeReceiver      ed25519.PublicKey
	ProtocolFeeBps   uint16
	LiquidatorFeeBps uint16
	Paused           bool
	MarketGroupCount uint16
	MarketCount      uint16
	Keepers          []ed25519.PublicKey
	Collaterals      []CollateralConfig
	InsuranceFund    *ed25519.PublicKey
	Bump             uint8
}

// Marshal encodes the account, discriminator included.
func (obj *ExchangeAccount) Marshal() []byte {
	e := binary.NewEncoder(92)
	e.PutFixed(ExchangeAccountDiscriminator[:])
	e.PutKey(obj.Admin)
	binary.PutOption(e, obj.PendingAdmin, (*binary.Encoder).PutKey)
	e.PutKey(obj.FeeReceiver)
	e.PutUint16(obj.ProtocolFeeBps)
	e.PutUint16(obj.LiquidatorFeeBps)
	e.PutBool(obj.Paused)
	e.PutUint16(obj.MarketGroupCount)
	e.PutUint16(obj.MarketCount)
	binary.PutVec(e, obj.Keepers, (*binary.Encoder).PutKey)
	binary.PutVec(e, obj.Collaterals, putCollateralConfig)
	binary.PutOption(e, obj.InsuranceFund, (*binary.Encoder).PutKey)
	e.PutUint8(obj.Bump)
	return e.Bytes()
}

func (obj *ExchangeAccount) Unmarshal(data []byte) (err error) {
	if len(data) < len(ExchangeAccountDiscriminator) {
		return newAccountDataError("exchange", ErrInsufficientLength)
	}
	if !bytes.Equal(data[:len(ExchangeAccountDiscriminator)], ExchangeAccountDiscriminator[:]) {
		return newAccountDataError("exchange", ErrDiscriminatorMismatch)
	}

	d := binary.NewDecoder(data[len(ExchangeAccountDiscriminator):])
	if obj.Admin, err = d.GetKey(); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "admin"))
	}
	if obj.PendingAdmin, err = binary.GetOption(d, (*binary.Decoder).GetKey); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "pending_admin"))
	}
	if obj.FeeReceiver, err = d.GetKey(); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "fee_receiver"))
	}
	if obj.ProtocolFeeBps, err = d.GetUint16(); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "protocol_fee_bps"))
	}
	if obj.LiquidatorFeeBps, err = d.GetUint16(); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "liquidator_fee_bps"))
	}
	if obj.Paused, err = d.GetBool(); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "paused"))
	}
	if obj.MarketGroupCount, err = d.GetUint16(); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "market_group_count"))
	}
	if obj.MarketCount, err = d.GetUint16(); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "market_count"))
	}
	if obj.Keepers, err = binary.GetVec(d, 32, (*binary.Decoder).GetKey); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "keepers"))
	}
	if obj.Collaterals, err = binary.GetVec(d, 68, getCollateralConfig); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "collaterals"))
	}
	if obj.InsuranceFund, err = binary.GetOption(d, (*binary.Decoder).GetKey); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "insurance_fund"))
	}
	if obj.Bump, err = d.GetUint8(); err != nil {
		return newAccountDataError("exchange", errors.Wrap(err, "bump"))
	}
	return nil
}
