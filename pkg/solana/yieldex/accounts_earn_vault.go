package yieldex

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var EarnVaultAccountDiscriminator = Discriminator{0x32, 0x76, 0x1f, 0x18, 0xc8, 0xa3, 0xae, 0x9c}

type EarnVaultAccount struct {
	Exchange        ed25519.PublicKey
	Market          ed25519.PublicKey
	ShareMint       ed25519.PublicKey
	TotalShares     uint64
	TotalAssets     uint64
	RewardRate      uint64
	RewardsPerShare binary.Uint128
	LastHarvestTs   int64
	Bump            uint8
}

// Marshal encodes the account, discriminator included.
func (obj *EarnVaultAccount) Marshal() []byte {
	e := binary.NewEncoder(153)
	e.PutFixed(EarnVaultAccountDiscriminator[:])
	e.PutKey(obj.Exchange)
	e.PutKey(obj.Market)
	e.PutKey(obj.ShareMint)
	e.PutUint64(obj.TotalShares)
	e.PutUint64(obj.TotalAssets)
	e.PutUint64(obj.RewardRate)
	e.PutUint128(obj.RewardsPerShare)
	e.PutInt64(obj.LastHarvestTs)
	e.PutUint8(obj.Bump)
	return e.Bytes()
}

func (obj *EarnVaultAccount) Unmarshal(data []byte) (err error) {
	if len(data) < len(EarnVaultAccountDiscriminator) {
		return newAccountDataError("earn_vault", ErrInsufficientLength)
	}
	if !bytes.Equal(data[:len(EarnVaultAccountDiscriminator)], EarnVaultAccountDiscriminator[:]) {
		return newAccountDataError("earn_vault", ErrDiscriminatorMismatch)
	}

	d := binary.NewDecoder(data[len(EarnVaultAccountDiscriminator):])
	if obj.Exchange, err = d.GetKey(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "exchange"))
	}
	if obj.Market, err = d.GetKey(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "market"))
	}
	if obj.ShareMint, err = d.GetKey(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "share_mint"))
	}
	if obj.TotalShares, err = d.GetUint64(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "total_shares"))
	}
	if obj.TotalAssets, err = d.GetUint64(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "total_assets"))
	}
	if obj.RewardRate, err = d.GetUint64(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "reward_rate"))
	}
	if obj.RewardsPerShare, err = d.GetUint128(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "rewards_per_share"))
	}
	if obj.LastHarvestTs, err = d.GetInt64(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "last_harvest_ts"))
	}
	if obj.Bump, err = d.GetUint8(); err != nil {
		return newAccountDataError("earn_vault", errors.Wrap(err, "bump"))
	}
	return nil
}
