package yieldex

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var MarketGroupAccountDiscriminator = Discriminator{0x83, 0xcd, 0x8d, 0x57, 0x94, 0xd2, 0x21, 0x24}

// MarketGroupAccount holds the markets sharing an underlying asset.
type MarketGroupAccount struct {
	Exchange          ed25519.PublicKey
	Name              string
	UnderlyingMint    ed25519.PublicKey
	EpochDurationSecs int64
	Markets           []ed25519.PublicKey
	Bump              uint8
}

// Marshal encodes the account, discriminator included.
func (obj *MarketGroupAccount) Marshal() []byte {
	e := binary.NewEncoder(89)
	e.PutFixed(MarketGroupAccountDiscriminator[:])
	e.PutKey(obj.Exchange)
	e.PutString(obj.Name)
	e.PutKey(obj.UnderlyingMint)
	e.PutInt64(obj.EpochDurationSecs)
	binary.PutVec(e, obj.Markets, (*binary.Encoder).PutKey)
	e.PutUint8(obj.Bump)
	return e.Bytes()
}

func (obj *MarketGroupAccount) Unmarshal(data []byte) (err error) {
	if len(data) < len(MarketGroupAccountDiscriminator) {
		return newAccountDataError("market_group", ErrInsufficientLength)
	}
	if !bytes.Equal(data[:len(MarketGroupAccountDiscriminator)], MarketGroupAccountDiscriminator[:]) {
		return newAccountDataError("market_group", ErrDiscriminatorMismatch)
	}

	d := binary.NewDecoder(data[len(MarketGroupAccountDiscriminator):])
	if obj.Exchange, err = d.GetKey(); err != nil {
		return newAccountDataError("market_group", errors.Wrap(err, "exchange"))
	}
	if obj.Name, err = d.GetString(); err != nil {
		return newAccountDataError("market_group", errors.Wrap(err, "name"))
	}
	if obj.UnderlyingMint, err = d.GetKey(); err != nil {
		return newAccountDataError("market_group", errors.Wrap(err, "underlying_mint"))
	}
	if obj.EpochDurationSecs, err = d.GetInt64(); err != nil {
		return newAccountDataError("market_group", errors.Wrap(err, "epoch_duration_secs"))
	}
	if obj.Markets, err = binary.GetVec(d, 32, (*binary.Decoder).GetKey); err != nil {
		return newAccountDataError("market_group", errors.Wrap(err, "markets"))
	}
	if obj.Bump, err = d.GetUint8(); err != nil {
		return newAccountDataError("market_group", errors.Wrap(err, "bump"))
	}
	return nil
}
