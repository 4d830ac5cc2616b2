package yieldex

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var InsuranceFundAccountDiscriminator = Discriminator{0x2b, 0x86, 0xaa, 0x57, 0x66, 0x10, 0x8e, 0x93}

type InsuranceFundAccount struct {
	Exchange     ed25519.PublicKey
	Vault        ed25519.PublicKey
	Balance      uint64
	TotalCovered uint64
	Bump         uint8
}

// Marshal encodes the account, discriminator included.
func (obj *InsuranceFundAccount) Marshal() []byte {
	e := binary.NewEncoder(89)
	e.PutFixed(InsuranceFundAccountDiscriminator[:])
	e.PutKey(obj.Exchange)
	e.PutKey(obj.Vault)
	e.PutUint64(obj.Balance)
	e.PutUint64(obj.TotalCovered)
	e.PutUint8(obj.Bump)
	return e.Bytes()
}

func (obj *InsuranceFundAccount) Unmarshal(data []byte) (err error) {
	if len(data) < len(InsuranceFundAccountDiscriminator) {
		return newAccountDataError("insurance_fund", ErrInsufficientLength)
	}
	if !bytes.Equal(data[:len(InsuranceFundAccountDiscriminator)], InsuranceFundAccountDiscriminator[:]) {
		return newAccountDataError("insurance_fund", ErrDiscriminatorMismatch)
	}

	d := binary.NewDecoder(data[len(InsuranceFundAccountDiscriminator):])
	if obj.Exchange, err = d.GetKey(); err != nil {
		return newAccountDataError("insurance_fund", errors.Wrap(err, "exchange"))
	}
	if obj.Vault, err = d.GetKey(); err != nil {
		return newAccountDataError("insurance_fund", errors.Wrap(err, "vault"))
	}
	if obj.Balance, err = d.GetUint64(); err != nil {
		return newAccountDataError("insurance_fund", errors.Wrap(err, "balance"))
	}
	if obj.TotalCovered, err = d.GetUint64(); err != nil {
		return newAccountDataError("insurance_fund", errors.Wrap(err, "total_covered"))
	}
	if obj.Bump, err = d.GetUint8(); err != nil {
		return newAccountDataError("insurance_fund", errors.Wrap(err, "bump"))
	}
	return nil
}
