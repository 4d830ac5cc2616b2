package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var MarginAccountDiscriminator = Discriminator{0x85, 0xdc, 0xad, 0xd5, 0xb3, 0xd3, 0x2b, 0xee}

const (
	MarginAccountSize = (8 + // discriminator
		32 + // owner
		32 + // exchange
		32 + // delegate
		32 + // name
		2 + // sub_account_id
		1 + // margin_type
		1 + // bump
		1 + // being_liquidated
		1 + // position_count
		1 + // collateral_count
		1 + // open_order_count
		2 + // lp_position_count
		8 + // last_active_ts
		4*CollateralBalanceSize + // collaterals
		8*YieldPositionSize + // positions
		32) // padding
)

// MarginAccount is a zero-copy view over MarginAccount account data (packed layout).
type MarginAccount struct {
	data []byte
}

// LoadMarginAccount validates the discriminator and returns a view aliasing data.
// Writes through the view modify data.
func LoadMarginAccount(data []byte) (MarginAccount, error) {
	payload, err := loadPod("margin_account", data, MarginAccountDiscriminator, MarginAccountSize)
	if err != nil {
		return MarginAccount{}, err
	}
	return MarginAccount{data: payload}, nil
}

// InitMarginAccount stamps the discriminator into data and returns a view over the payload.
func InitMarginAccount(data []byte) (MarginAccount, error) {
	payload, err := initPod("margin_account", data, MarginAccountDiscriminator, MarginAccountSize)
	if err != nil {
		return MarginAccount{}, err
	}
	return MarginAccount{data: payload}, nil
}

// Bytes returns the payload, excluding the discriminator.
func (a MarginAccount) Bytes() []byte { return a.data }

const (
	marginAccountOwnerOffset           = 0
	marginAccountExchangeOffset        = 32
	marginAccountDelegateOffset        = 64
	marginAccountNameOffset            = 96
	marginAccountSubAccountIDOffset    = 128
	marginAccountMarginTypeOffset      = 130
	marginAccountBumpOffset            = 131
	marginAccountBeingLiquidatedOffset = 132
	marginAccountPositionCountOffset   = 133
	marginAccountCollateralCountOffset = 134
	marginAccountOpenOrderCountOffset  = 135
	marginAccountLpPositionCountOffset = 136
	marginAccountLastActiveTsOffset    = 138
	marginAccountCollateralsOffset     = 146
	marginAccountPositionsOffset       = 338
)

func (a MarginAccount) Owner() ed25519.PublicKey { return binary.KeyAt(a.data, marginAccountOwnerOffset) }
func (a MarginAccount) SetOwner(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marginAccountOwnerOffset, v) }
func (a MarginAccount) Exchange() ed25519.PublicKey { return binary.KeyAt(a.data, marginAccountExchangeOffset) }
func (a MarginAccount) SetExchange(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marginAccountExchangeOffset, v) }
func (a MarginAccount) Delegate() ed25519.PublicKey { return binary.KeyAt(a.data, marginAccountDelegateOffset) }
func (a MarginAccount) SetDelegate(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marginAccountDelegateOffset, v) }
func (a MarginAccount) Name() []byte { return a.data[marginAccountNameOffset : marginAccountNameOffset+32 : marginAccountNameOffset+32] }
func (a MarginAccount) SetName(v []byte) { copy(a.data[marginAccountNameOffset:marginAccountNameOffset+32], v) }
func (a MarginAccount) SubAccountID() uint16 { return binary.Uint16At(a.data, marginAccountSubAccountIDOffset) }
func (a MarginAccount) SetSubAccountID(v uint16) { binary.PutUint16At(a.data, marginAccountSubAccountIDOffset, v) }
func (a MarginAccount) MarginType() MarginType { return MarginType(a.data[marginAccountMarginTypeOffset]) }
func (a MarginAccount) SetMarginType(v MarginType) { a.data[marginAccountMarginTypeOffset] = uint8(v) }
func (a MarginAccount) Bump() uint8 { return a.data[marginAccountBumpOffset] }
func (a MarginAccount) SetBump(v uint8) { a.data[marginAccountBumpOffset] = v }
func (a MarginAccount) BeingLiquidated() uint8 { return a.data[marginAccountBeingLiquidatedOffset] }
func (a MarginAccount) SetBeingLiquidated(v uint8) { a.data[marginAccountBeingLiquidatedOffset] = v }
func (a MarginAccount) PositionCount() uint8 { return a.data[marginAccountPositionCountOffset] }
func (a MarginAccount) SetPositionCount(v uint8) { a.data[marginAccountPositionCountOffset] = v }
func (a MarginAccount) CollateralCount() uint8 { return a.data[marginAccountCollateralCountOffset] }
func (a MarginAccount) SetCollateralCount(v uint8) { a.data[marginAccountCollateralCountOffset] = v }
func (a MarginAccount) OpenOrderCount() uint8 { return a.data[marginAccountOpenOrderCountOffset] }
func (a MarginAccount) SetOpenOrderCount(v uint8) { a.data[marginAccountOpenOrderCountOffset] = v }
func (a MarginAccount) LpPositionCount() uint16 { return binary.Uint16At(a.data, marginAccountLpPositionCountOffset) }
func (a MarginAccount) SetLpPositionCount(v uint16) { binary.PutUint16At(a.data, marginAccountLpPositionCountOffset, v) }
func (a MarginAccount) LastActiveTs() int64 { return binary.Int64At(a.data, marginAccountLastActiveTsOffset) }
func (a MarginAccount) SetLastActiveTs(v int64) { binary.PutInt64At(a.data, marginAccountLastActiveTsOffset, v) }

const MarginAccountCollateralsLen = 4

// Collateral returns a view of the i-th entry of collaterals.
func (a MarginAccount) Collateral(i int) CollateralBalance {
	start := marginAccountCollateralsOffset + i*CollateralBalanceSize
	return CollateralBalance{data: a.data[start : start+CollateralBalanceSize : start+CollateralBalanceSize]}
}

const MarginAccountPositionsLen = 8

// Position returns a view of the i-th entry of positions.
func (a MarginAccount) Position(i int) YieldPosition {
	start := marginAccountPositionsOffset + i*YieldPositionSize
	return YieldPosition{data: a.data[start : start+YieldPositionSize : start+YieldPositionSize]}
}

func (a MarginAccount) Fields() []Field {
	collaterals := make([][]Field, MarginAccountCollateralsLen)
	for i := range collaterals {
		collaterals[i] = a.Collateral(i).Fields()
	}

	positions := make([][]Field, MarginAccountPositionsLen)
	for i := range positions {
		positions[i] = a.Position(i).Fields()
	}

	return []Field{
		{Name: "owner", Value: a.Owner()},
		{Name: "exchange", Value: a.Exchange()},
		{Name: "delegate", Value: a.Delegate()},
		{Name: "name", Value: a.Name()},
		{Name: "sub_account_id", Value: a.SubAccountID()},
		{Name: "margin_type", Value: a.MarginType()},
		{Name: "bump", Value: a.Bump()},
		{Name: "being_liquidated", Value: a.BeingLiquidated()},
		{Name: "position_count", Value: a.PositionCount()},
		{Name: "collateral_count", Value: a.CollateralCount()},
		{Name: "open_order_count", Value: a.OpenOrderCount()},
		{Name: "lp_position_count", Value: a.LpPositionCount()},
		{Name: "last_active_ts", Value: a.LastActiveTs()},
		{Name: "collaterals", Value: collaterals},
		{Name: "positions", Value: positions},
	}
}
