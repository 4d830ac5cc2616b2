package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var LpPositionAccountDiscriminator = Discriminator{0x69, 0xf1, 0x25, 0xc8, 0xe0, 0x02, 0xfc, 0x5a}

const (
	LpPositionAccountSize = (8 + // discriminator
		32 + // owner
		32 + // market
		32 + // margin_account
		4 + // position_id
		4 + // tick_lower
		4 + // tick_upper
		16 + // liquidity
		16 + // fee_growth_inside_last
		8 + // fees_owed
		8 + // margin
		1 + // bump
		7) // padding
)

// LpPositionAccount is a zero-copy view over LpPosition account data (packed layout).
type LpPositionAccount struct {
	data []byte
}

// LoadLpPositionAccount validates the discriminator and returns a view aliasing data.
// Writes through the view modify data.
func LoadLpPositionAccount(data []byte) (LpPositionAccount, error) {
	payload, err := loadPod("lp_position", data, LpPositionAccountDiscriminator, LpPositionAccountSize)
	if err != nil {
		return LpPositionAccount{}, err
	}
	return LpPositionAccount{data: payload}, nil
}

// InitLpPositionAccount stamps the discriminator into data and returns a view over the payload.
func InitLpPositionAccount(data []byte) (LpPositionAccount, error) {
	payload, err := initPod("lp_position", data, LpPositionAccountDiscriminator, LpPositionAccountSize)
	if err != nil {
		return LpPositionAccount{}, err
	}
	return LpPositionAccount{data: payload}, nil
}

// Bytes returns the payload, excluding the discriminator.
func (a LpPositionAccount) Bytes() []byte { return a.data }

const (
	lpPositionOwnerOffset               = 0
	lpPositionMarketOffset              = 32
	lpPositionMarginAccountOffset       = 64
	lpPositionPositionIDOffset          = 96
	lpPositionTickLowerOffset           = 100
	lpPositionTickUpperOffset           = 104
	lpPositionLiquidityOffset           = 108
	lpPositionFeeGrowthInsideLastOffset = 124
	lpPositionFeesOwedOffset            = 140
	lpPositionMarginOffset              = 148
	lpPositionBumpOffset                = 156
)

func (a LpPositionAccount) Owner() ed25519.PublicKey { return binary.KeyAt(a.data, lpPositionOwnerOffset) }
func (a LpPositionAccount) SetOwner(v ed25519.PublicKey) { binary.PutKeyAt(a.data, lpPositionOwnerOffset, v) }
func (a LpPositionAccount) Market() ed25519.PublicKey { return binary.KeyAt(a.data, lpPositionMarketOffset) }
func (a LpPositionAccount) SetMarket(v ed25519.PublicKey) { binary.PutKeyAt(a.data, lpPositionMarketOffset, v) }
func (a LpPositionAccount) MarginAccount() ed25519.PublicKey { return binary.KeyAt(a.data, lpPositionMarginAccountOffset) }
func (a LpPositionAccount) SetMarginAccount(v ed25519.PublicKey) { binary.PutKeyAt(a.data, lpPositionMarginAccountOffset, v) }
func (a LpPositionAccount) PositionID() uint32 { return binary.Uint32At(a.data, lpPositionPositionIDOffset) }
func (a LpPositionAccount) SetPositionID(v uint32) { binary.PutUint32At(a.data, lpPositionPositionIDOffset, v) }
func (a LpPositionAccount) TickLower() int32 { return binary.Int32At(a.data, lpPositionTickLowerOffset) }
func (a LpPositionAccount) SetTickLower(v int32) { binary.PutInt32At(a.data, lpPositionTickLowerOffset, v) }
func (a LpPositionAccount) TickUpper() int32 { return binary.Int32At(a.data, lpPositionTickUpperOffset) }
func (a LpPositionAccount) SetTickUpper(v int32) { binary.PutInt32At(a.data, lpPositionTickUpperOffset, v) }
func (a LpPositionAccount) Liquidity() binary.Uint128 { return binary.Uint128At(a.data, lpPositionLiquidityOffset) }
func (a LpPositionAccount) SetLiquidity(v binary.Uint128) { binary.PutUint128At(a.data, lpPositionLiquidityOffset, v) }
func (a LpPositionAccount) FeeGrowthInsideLast() binary.Uint128 { return binary.Uint128At(a.data, lpPositionFeeGrowthInsideLastOffset) }
func (a LpPositionAccount) SetFeeGrowthInsideLast(v binary.Uint128) { binary.PutUint128At(a.data, lpPositionFeeGrowthInsideLastOffset, v) }
func (a LpPositionAccount) FeesOwed() uint64 { return binary.Uint64At(a.data, lpPositionFeesOwedOffset) }
func (a LpPositionAccount) SetFeesOwed(v uint64) { binary.PutUint64At(a.data, lpPositionFeesOwedOffset, v) }
func (a LpPositionAccount) Margin() uint64 { return binary.Uint64At(a.data, lpPositionMarginOffset) }
func (a LpPositionAccount) SetMargin(v uint64) { binary.PutUint64At(a.data, lpPositionMarginOffset, v) }
func (a LpPositionAccount) Bump() uint8 { return a.data[lpPositionBumpOffset] }
func (a LpPositionAccount) SetBump(v uint8) { a.data[lpPositionBumpOffset] = v }

func (a LpPositionAccount) Fields() []Field {
	return []Field{
		{Name: "owner", Value: a.Owner()},
		{Name: "market", Value: a.Market()},
		{Name: "margin_account", Value: a.MarginAccount()},
		{Name: "position_id", Value: a.PositionID()},
		{Name: "tick_lower", Value: a.TickLower()},
		{Name: "tick_upper", Value: a.TickUpper()},
		{Name: "liquidity", Value: a.Liquidity()},
		{Name: "fee_growth_inside_last", Value: a.FeeGrowthInsideLast()},
		{Name: "fees_owed", Value: a.FeesOwed()},
		{Name: "margin", Value: a.Margin()},
		{Name: "bump", Value: a.Bump()},
	}
}
