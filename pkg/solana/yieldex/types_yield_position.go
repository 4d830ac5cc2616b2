package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

const (
	YieldPositionSize = (32 + // market
		8 + // pt_amount
		8 + // yt_amount
		16 + // last_cumulative_funding
		8 + // realized_pnl
		8 + // margin
		1 + // open_orders
		7) // padding
)

// YieldPosition is a zero-copy view over a single packed record of 88 bytes.
// Yield position held by a margin account in one market.
type YieldPosition struct {
	data []byte
}

func (y YieldPosition) Bytes() []byte { return y.data }

const (
	yieldPositionMarketOffset                = 0
	yieldPositionPtAmountOffset              = 32
	yieldPositionYtAmountOffset              = 40
	yieldPositionLastCumulativeFundingOffset = 48
	yieldPositionRealizedPnlOffset           = 64
	yieldPositionMarginOffset                = 72
	yieldPositionOpenOrdersOffset            = 80
)

func (y YieldPosition) Market() ed25519.PublicKey { return binary.KeyAt(y.data, yieldPositionMarketOffset) }
func (y YieldPosition) SetMarket(v ed25519.PublicKey) { binary.PutKeyAt(y.data, yieldPositionMarketOffset, v) }
func (y YieldPosition) PtAmount() int64 { return binary.Int64At(y.data, yieldPositionPtAmountOffset) }
func (y YieldPosition) SetPtAmount(v int64) { binary.PutInt64At(y.data, yieldPositionPtAmountOffset, v) }
func (y YieldPosition) YtAmount() int64 { return binary.Int64At(y.data, yieldPositionYtAmountOffset) }
func (y YieldPosition) SetYtAmount(v int64) { binary.PutInt64At(y.data, yieldPositionYtAmountOffset, v) }
func (y YieldPosition) LastCumulativeFunding() binary.Int128 { return binary.Int128At(y.data, yieldPositionLastCumulativeFundingOffset) }
func (y YieldPosition) SetLastCumulativeFunding(v binary.Int128) { binary.PutInt128At(y.data, yieldPositionLastCumulativeFundingOffset, v) }
func (y YieldPosition) RealizedPnl() int64 { return binary.Int64At(y.data, yieldPositionRealizedPnlOffset) }
func (y YieldPosition) SetRealizedPnl(v int64) { binary.PutInt64At(y.data, yieldPositionRealizedPnlOffset, v) }
func (y YieldPosition) Margin() uint64 { return binary.Uint64At(y.data, yieldPositionMarginOffset) }
func (y YieldPosition) SetMargin(v uint64) { binary.PutUint64At(y.data, yieldPositionMarginOffset, v) }
func (y YieldPosition) OpenOrders() uint8 { return y.data[yieldPositionOpenOrdersOffset] }
func (y YieldPosition) SetOpenOrders(v uint8) { y.data[yieldPositionOpenOrdersOffset] = v }

func (y YieldPosition) Fields() []Field {
	return []Field{
		{Name: "market", Value: y.Market()},
		{Name: "pt_amount", Value: y.PtAmount()},
		{Name: "yt_amount", Value: y.YtAmount()},
		{Name: "last_cumulative_funding", Value: y.LastCumulativeFunding()},
		{Name: "realized_pnl", Value: y.RealizedPnl()},
		{Name: "margin", Value: y.Margin()},
		{Name: "open_orders", Value: y.OpenOrders()},
	}
}
