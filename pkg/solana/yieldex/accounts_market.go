package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var MarketAccountDiscriminator = Discriminator{0xdb, 0xbe, 0xd5, 0x37, 0x00, 0xe3, 0xc6, 0x9a}

const (
	MarketAccountSize = (8 + // discriminator
		32 + // exchange
		32 + // market_group
		32 + // oracle
		32 + // pt_mint
		32 + // yt_mint
		32 + // quote_mint
		32 + // pt_vault
		32 + // quote_vault
		2 + // market_index
		1 + // status
		1 + // kind
		1 + // bump
		2 + // tick_spacing
		2 + // max_leverage
		2 + // maker_fee_bps
		2 + // taker_fee_bps
		2 + // protocol_fee_share_bps
		8 + // maturity_ts
		8 + // start_ts
		4 + // epoch
		4 + // current_tick
		16 + // sqrt_price
		16 + // liquidity
		16 + // fee_growth_global
		8 + // protocol_fees_owed
		8 + // open_interest_long
		8 + // open_interest_short
		16 + // cumulative_funding_rate
		8 + // last_rate
		8 + // last_update_ts
		8 + // settlement_rate
		16 + // name
		64) // padding
)

// MarketAccount is a zero-copy view over Market account data (packed layout).
// Concentrated-liquidity market for one principal/yield token pair.
type MarketAccount struct {
	data []byte
}

// LoadMarketAccount validates the discriminator and returns a view aliasing data.
// Writes through the view modify data.
func LoadMarketAccount(data []byte) (MarketAccount, error) {
	payload, err := loadPod("market", data, MarketAccountDiscriminator, MarketAccountSize)
	if err != nil {
		return MarketAccount{}, err
	}
	return MarketAccount{data: payload}, nil
}

// InitMarketAccount stamps the discriminator into data and returns a view over the payload.
func InitMarketAccount(data []byte) (MarketAccount, error) {
	payload, err := initPod("market", data, MarketAccountDiscriminator, MarketAccountSize)
	if err != nil {
		return MarketAccount{}, err
	}
	return MarketAccount{data: payload}, nil
}

// Bytes returns the payload, excluding the discriminator.
func (a MarketAccount) Bytes() []byte { return a.data }

const (
	marketExchangeOffset              = 0
	marketMarketGroupOffset           = 32
	marketOracleOffset                = 64
	marketPtMintOffset                = 96
	marketYtMintOffset                = 128
	marketQuoteMintOffset             = 160
	marketPtVaultOffset               = 192
	marketQuoteVaultOffset            = 224
	marketMarketIndexOffset           = 256
	marketStatusOffset                = 258
	marketKindOffset                  = 259
	marketBumpOffset                  = 260
	marketTickSpacingOffset           = 261
	marketMaxLeverageOffset           = 263
	marketMakerFeeBpsOffset           = 265
	marketTakerFeeBpsOffset           = 267
	marketProtocolFeeShareBpsOffset   = 269
	marketMaturityTsOffset            = 271
	marketStartTsOffset               = 279
	marketEpochOffset                 = 287
	marketCurrentTickOffset           = 291
	marketSqrtPriceOffset             = 295
	marketLiquidityOffset             = 311
	marketFeeGrowthGlobalOffset       = 327
	marketProtocolFeesOwedOffset      = 343
	marketOpenInterestLongOffset      = 351
	marketOpenInterestShortOffset     = 359
	marketCumulativeFundingRateOffset = 367
	marketLastRateOffset              = 383
	marketLastUpdateTsOffset          = 391
	marketSettlementRateOffset        = 399
	marketNameOffset                  = 407
)

func (a MarketAccount) Exchange() ed25519.PublicKey { return binary.KeyAt(a.data, marketExchangeOffset) }
func (a MarketAccount) SetExchange(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marketExchangeOffset, v) }
func (a MarketAccount) MarketGroup() ed25519.PublicKey { return binary.KeyAt(a.data, marketMarketGroupOffset) }
func (a MarketAccount) SetMarketGroup(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marketMarketGroupOffset, v) }
func (a MarketAccount) Oracle() ed25519.PublicKey { return binary.KeyAt(a.data, marketOracleOffset) }
func (a MarketAccount) SetOracle(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marketOracleOffset, v) }
func (a MarketAccount) PtMint() ed25519.PublicKey { return binary.KeyAt(a.data, marketPtMintOffset) }
func (a MarketAccount) SetPtMint(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marketPtMintOffset, v) }
func (a MarketAccount) YtMint() ed25519.PublicKey { return binary.KeyAt(a.data, marketYtMintOffset) }
func (a MarketAccount) SetYtMint(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marketYtMintOffset, v) }
func (a MarketAccount) QuoteMint() ed25519.PublicKey { return binary.KeyAt(a.data, marketQuoteMintOffset) }
func (a MarketAccount) SetQuoteMint(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marketQuoteMintOffset, v) }
func (a MarketAccount) PtVault() ed25519.PublicKey { return binary.KeyAt(a.data, marketPtVaultOffset) }
func (a MarketAccount) SetPtVault(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marketPtVaultOffset, v) }
func (a MarketAccount) QuoteVault() ed25519.PublicKey { return binary.KeyAt(a.data, marketQuoteVaultOffset) }
func (a MarketAccount) SetQuoteVault(v ed25519.PublicKey) { binary.PutKeyAt(a.data, marketQuoteVaultOffset, v) }
func (a MarketAccount) MarketIndex() uint16 { return binary.Uint16At(a.data, marketMarketIndexOffset) }
func (a MarketAccount) SetMarketIndex(v uint16) { binary.PutUint16At(a.data, marketMarketIndexOffset, v) }
func (a MarketAccount) Status() MarketStatus { return MarketStatus(a.data[marketStatusOffset]) }
func (a MarketAccount) SetStatus(v MarketStatus) { a.data[marketStatusOffset] = uint8(v) }
func (a MarketAccount) Kind() MarketKind { return MarketKind(a.data[marketKindOffset]) }
func (a MarketAccount) SetKind(v MarketKind) { a.data[marketKindOffset] = uint8(v) }
func (a MarketAccount) Bump() uint8 { return a.data[marketBumpOffset] }
func (a MarketAccount) SetBump(v uint8) { a.data[marketBumpOffset] = v }
func (a MarketAccount) TickSpacing() uint16 { return binary.Uint16At(a.data, marketTickSpacingOffset) }
func (a MarketAccount) SetTickSpacing(v uint16) { binary.PutUint16At(a.data, marketTickSpacingOffset, v) }
func (a MarketAccount) MaxLeverage() uint16 { return binary.Uint16At(a.data, marketMaxLeverageOffset) }
func (a MarketAccount) SetMaxLeverage(v uint16) { binary.PutUint16At(a.data, marketMaxLeverageOffset, v) }
func (a MarketAccount) MakerFeeBps() int16 { return binary.Int16At(a.data, marketMakerFeeBpsOffset) }
func (a MarketAccount) SetMakerFeeBps(v int16) { binary.PutInt16At(a.data, marketMakerFeeBpsOffset, v) }
func (a MarketAccount) TakerFeeBps() int16 { return binary.Int16At(a.data, marketTakerFeeBpsOffset) }
func (a MarketAccount) SetTakerFeeBps(v int16) { binary.PutInt16At(a.data, marketTakerFeeBpsOffset, v) }
func (a MarketAccount) ProtocolFeeShareBps() uint16 { return binary.Uint16At(a.data, marketProtocolFeeShareBpsOffset) }
func (a MarketAccount) SetProtocolFeeShareBps(v uint16) { binary.PutUint16At(a.data, marketProtocolFeeShareBpsOffset, v) }
func (a MarketAccount) MaturityTs() int64 { return binary.Int64At(a.data, marketMaturityTsOffset) }
func (a MarketAccount) SetMaturityTs(v int64) { binary.PutInt64At(a.data, marketMaturityTsOffset, v) }
func (a MarketAccount) StartTs() int64 { return binary.Int64At(a.data, marketStartTsOffset) }
func (a MarketAccount) SetStartTs(v int64) { binary.PutInt64At(a.data, marketStartTsOffset, v) }
func (a MarketAccount) Epoch() uint32 { return binary.Uint32At(a.data, marketEpochOffset) }
func (a MarketAccount) SetEpoch(v uint32) { binary.PutUint32At(a.data, marketEpochOffset, v) }
func (a MarketAccount) CurrentTick() int32 { return binary.Int32At(a.data, marketCurrentTickOffset) }
func (a MarketAccount) SetCurrentTick(v int32) { binary.PutInt32At(a.data, marketCurrentTickOffset, v) }
func (a MarketAccount) SqrtPrice() binary.Uint128 { return binary.Uint128At(a.data, marketSqrtPriceOffset) }
func (a MarketAccount) SetSqrtPrice(v binary.Uint128) { binary.PutUint128At(a.data, marketSqrtPriceOffset, v) }
func (a MarketAccount) Liquidity() binary.Uint128 { return binary.Uint128At(a.data, marketLiquidityOffset) }
func (a MarketAccount) SetLiquidity(v binary.Uint128) { binary.PutUint128At(a.data, marketLiquidityOffset, v) }
func (a MarketAccount) FeeGrowthGlobal() binary.Uint128 { return binary.Uint128At(a.data, marketFeeGrowthGlobalOffset) }
func (a MarketAccount) SetFeeGrowthGlobal(v binary.Uint128) { binary.PutUint128At(a.data, marketFeeGrowthGlobalOffset, v) }
func (a MarketAccount) ProtocolFeesOwed() uint64 { return binary.Uint64At(a.data, marketProtocolFeesOwedOffset) }
func (a MarketAccount) SetProtocolFeesOwed(v uint64) { binary.PutUint64At(a.data, marketProtocolFeesOwedOffset, v) }
func (a MarketAccount) OpenInterestLong() uint64 { return binary.Uint64At(a.data, marketOpenInterestLongOffset) }
func (a MarketAccount) SetOpenInterestLong(v uint64) { binary.PutUint64At(a.data, marketOpenInterestLongOffset, v) }
func (a MarketAccount) OpenInterestShort() uint64 { return binary.Uint64At(a.data, marketOpenInterestShortOffset) }
func (a MarketAccount) SetOpenInterestShort(v uint64) { binary.PutUint64At(a.data, marketOpenInterestShortOffset, v) }
func (a MarketAccount) CumulativeFundingRate() binary.Int128 { return binary.Int128At(a.data, marketCumulativeFundingRateOffset) }
func (a MarketAccount) SetCumulativeFundingRate(v binary.Int128) { binary.PutInt128At(a.data, marketCumulativeFundingRateOffset, v) }
func (a MarketAccount) LastRate() uint64 { return binary.Uint64At(a.data, marketLastRateOffset) }
func (a MarketAccount) SetLastRate(v uint64) { binary.PutUint64At(a.data, marketLastRateOffset, v) }
func (a MarketAccount) LastUpdateTs() int64 { return binary.Int64At(a.data, marketLastUpdateTsOffset) }
func (a MarketAccount) SetLastUpdateTs(v int64) { binary.PutInt64At(a.data, marketLastUpdateTsOffset, v) }
func (a MarketAccount) SettlementRate() uint64 { return binary.Uint64At(a.data, marketSettlementRateOffset) }
func (a MarketAccount) SetSettlementRate(v uint64) { binary.PutUint64At(a.data, marketSettlementRateOffset, v) }
func (a MarketAccount) Name() []byte { return a.data[marketNameOffset : marketNameOffset+16 : marketNameOffset+16] }
func (a MarketAccount) SetName(v []byte) { copy(a.data[marketNameOffset:marketNameOffset+16], v) }

func (a MarketAccount) Fields() []Field {
	return []Field{
		{Name: "exchange", Value: a.Exchange()},
		{Name: "market_group", Value: a.MarketGroup()},
		{Name: "oracle", Value: a.Oracle()},
		{Name: "pt_mint", Value: a.PtMint()},
		{Name: "yt_mint", Value: a.YtMint()},
		{Name: "quote_mint", Value: a.QuoteMint()},
		{Name: "pt_vault", Value: a.PtVault()},
		{Name: "quote_vault", Value: a.QuoteVault()},
		{Name: "market_index", Value: a.MarketIndex()},
		{Name: "status", Value: a.Status()},
		{Name: "kind", Value: a.Kind()},
		{Name: "bump", Value: a.Bump()},
		{Name: "tick_spacing", Value: a.TickSpacing()},
		{Name: "max_leverage", Value: a.MaxLeverage()},
		{Name: "maker_fee_bps", Value: a.MakerFeeBps()},
		{Name: "taker_fee_bps", Value: a.TakerFeeBps()},
		{Name: "protocol_fee_share_bps", Value: a.ProtocolFeeShareBps()},
		{Name: "maturity_ts", Value: a.MaturityTs()},
		{Name: "start_ts", Value: a.StartTs()},
		{Name: "epoch", Value: a.Epoch()},
		{Name: "current_tick", Value: a.CurrentTick()},
		{Name: "sqrt_price", Value: a.SqrtPrice()},
		{Name: "liquidity", Value: a.Liquidity()},
		{Name: "fee_growth_global", Value: a.FeeGrowthGlobal()},
		{Name: "protocol_fees_owed", Value: a.ProtocolFeesOwed()},
		{Name: "open_interest_long", Value: a.OpenInterestLong()},
		{Name: "open_interest_short", Value: a.OpenInterestShort()},
		{Name: "cumulative_funding_rate", Value: a.CumulativeFundingRate()},
		{Name: "last_rate", Value: a.LastRate()},
		{Name: "last_update_ts", Value: a.LastUpdateTs()},
		{Name: "settlement_rate", Value: a.SettlementRate()},
		{Name: "name", Value: a.Name()},
	}
}
