package yieldex

import "github.com/yieldex-labs/yieldex-go/pkg/solana/binary"

const (
	TickSize = (1 + // initialized
		16 + // liquidity_net
		16 + // liquidity_gross
		16) // fee_growth_outside
)

// Tick is a zero-copy view over a single packed record of 49 bytes.
type Tick struct {
	data []byte
}

func (t Tick) Bytes() []byte { return t.data }

const (
	tickInitializedOffset      = 0
	tickLiquidityNetOffset     = 1
	tickLiquidityGrossOffset   = 17
	tickFeeGrowthOutsideOffset = 33
)

func (t Tick) Initialized() uint8 { return t.data[tickInitializedOffset] }
func (t Tick) SetInitialized(v uint8) { t.data[tickInitializedOffset] = v }
func (t Tick) LiquidityNet() binary.Int128 { return binary.Int128At(t.data, tickLiquidityNetOffset) }
func (t Tick) SetLiquidityNet(v binary.Int128) { binary.PutInt128At(t.data, tickLiquidityNetOffset, v) }
func (t Tick) LiquidityGross() binary.Uint128 { return binary.Uint128At(t.data, tickLiquidityGrossOffset) }
func (t Tick) SetLiquidityGross(v binary.Uint128) { binary.PutUint128At(t.data, tickLiquidityGrossOffset, v) }
func (t Tick) FeeGrowthOutside() binary.Uint128 { return binary.Uint128At(t.data, tickFeeGrowthOutsideOffset) }
func (t Tick) SetFeeGrowthOutside(v binary.Uint128) { binary.PutUint128At(t.data, tickFeeGrowthOutsideOffset, v) }

func (t Tick) Fields() []Field {
	return []Field{
		{Name: "initialized", Value: t.Initialized()},
		{Name: "liquidity_net", Value: t.LiquidityNet()},
		{Name: "liquidity_gross", Value: t.LiquidityGross()},
		{Name: "fee_growth_outside", Value: t.FeeGrowthOutside()},
	}
}
