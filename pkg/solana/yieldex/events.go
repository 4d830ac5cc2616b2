package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var CollateralEventDiscriminator = Discriminator{0x7c, 0x74, 0xde, 0x4b, 0x92, 0x1b, 0xe1, 0x1e}

type CollateralEvent struct {
	MarginAccount ed25519.PublicKey
	Owner         ed25519.PublicKey
	Mint          ed25519.PublicKey
	Amount        uint64
	Direction     DepositDirection
	Timestamp     int64
}

func (*CollateralEvent) EventName() string { return "CollateralEvent" }

func (ev *CollateralEvent) Marshal() []byte {
	e := binary.NewEncoder(121)
	e.PutFixed(CollateralEventDiscriminator[:])
	e.PutKey(ev.MarginAccount)
	e.PutKey(ev.Owner)
	e.PutKey(ev.Mint)
	e.PutUint64(ev.Amount)
	putDepositDirection(e, ev.Direction)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *CollateralEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.MarginAccount, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "margin_account")
	}
	if ev.Owner, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if ev.Mint, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if ev.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if ev.Direction, err = getDepositDirection(d); err != nil {
		return errors.Wrap(err, "direction")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var OrderPlacedEventDiscriminator = Discriminator{0xf5, 0xc6, 0xca, 0xf7, 0x6e, 0xe7, 0xfe, 0x9c}

type OrderPlacedEvent struct {
	OrderID       uint64
	Owner         ed25519.PublicKey
	Market        ed25519.PublicKey
	OrderType     OrderType
	Side          OrderSide
	Size          uint64
	LimitRate     uint64
	ClientOrderID uint64
	Timestamp     int64
}

func (*OrderPlacedEvent) EventName() string { return "OrderPlacedEvent" }

func (ev *OrderPlacedEvent) Marshal() []byte {
	e := binary.NewEncoder(114)
	e.PutFixed(OrderPlacedEventDiscriminator[:])
	e.PutUint64(ev.OrderID)
	e.PutKey(ev.Owner)
	e.PutKey(ev.Market)
	putOrderType(e, ev.OrderType)
	putOrderSide(e, ev.Side)
	e.PutUint64(ev.Size)
	e.PutUint64(ev.LimitRate)
	e.PutUint64(ev.ClientOrderID)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *OrderPlacedEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.OrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "order_id")
	}
	if ev.Owner, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.OrderType, err = getOrderType(d); err != nil {
		return errors.Wrap(err, "order_type")
	}
	if ev.Side, err = getOrderSide(d); err != nil {
		return errors.Wrap(err, "side")
	}
	if ev.Size, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "size")
	}
	if ev.LimitRate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "limit_rate")
	}
	if ev.ClientOrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "client_order_id")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var OrderFilledEventDiscriminator = Discriminator{0xda, 0x61, 0x99, 0xd1, 0x38, 0x38, 0xfb, 0x85}

type OrderFilledEvent struct {
	OrderID   uint64
	Maker     ed25519.PublicKey
	Taker     ed25519.PublicKey
	Market    ed25519.PublicKey
	FillSize  uint64
	FillRate  uint64
	MakerFee  int64
	TakerFee  int64
	Timestamp int64
}

func (*OrderFilledEvent) EventName() string { return "OrderFilledEvent" }

func (ev *OrderFilledEvent) Marshal() []byte {
	e := binary.NewEncoder(152)
	e.PutFixed(OrderFilledEventDiscriminator[:])
	e.PutUint64(ev.OrderID)
	e.PutKey(ev.Maker)
	e.PutKey(ev.Taker)
	e.PutKey(ev.Market)
	e.PutUint64(ev.FillSize)
	e.PutUint64(ev.FillRate)
	e.PutInt64(ev.MakerFee)
	e.PutInt64(ev.TakerFee)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *OrderFilledEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.OrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "order_id")
	}
	if ev.Maker, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if ev.Taker, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "taker")
	}
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.FillSize, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "fill_size")
	}
	if ev.FillRate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "fill_rate")
	}
	if ev.MakerFee, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "maker_fee")
	}
	if ev.TakerFee, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "taker_fee")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var OrderCancelledEventDiscriminator = Discriminator{0xc8, 0x49, 0xb3, 0x91, 0xf7, 0xb0, 0x0a, 0x65}

type OrderCancelledEvent struct {
	OrderID       uint64
	Owner         ed25519.PublicKey
	Market        ed25519.PublicKey
	RemainingSize uint64
	Status        OrderStatus
	Timestamp     int64
}

func (*OrderCancelledEvent) EventName() string { return "OrderCancelledEvent" }

func (ev *OrderCancelledEvent) Marshal() []byte {
	e := binary.NewEncoder(97)
	e.PutFixed(OrderCancelledEventDiscriminator[:])
	e.PutUint64(ev.OrderID)
	e.PutKey(ev.Owner)
	e.PutKey(ev.Market)
	e.PutUint64(ev.RemainingSize)
	putOrderStatus(e, ev.Status)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *OrderCancelledEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.OrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "order_id")
	}
	if ev.Owner, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.RemainingSize, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "remaining_size")
	}
	if ev.Status, err = getOrderStatus(d); err != nil {
		return errors.Wrap(err, "status")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var LiquidationEventDiscriminator = Discriminator{0x03, 0x0d, 0x15, 0x5d, 0xad, 0x88, 0x48, 0x90}

type LiquidationEvent struct {
	MarginAccount    ed25519.PublicKey
	Liquidator       ed25519.PublicKey
	Market           *ed25519.PublicKey
	SizeLiquidated   uint64
	CollateralSeized uint64
	LiquidatorFee    uint64
	Bankrupt         bool
	Timestamp        int64
}

func (*LiquidationEvent) EventName() string { return "LiquidationEvent" }

func (ev *LiquidationEvent) Marshal() []byte {
	e := binary.NewEncoder(106)
	e.PutFixed(LiquidationEventDiscriminator[:])
	e.PutKey(ev.MarginAccount)
	e.PutKey(ev.Liquidator)
	binary.PutOption(e, ev.Market, (*binary.Encoder).PutKey)
	e.PutUint64(ev.SizeLiquidated)
	e.PutUint64(ev.CollateralSeized)
	e.PutUint64(ev.LiquidatorFee)
	e.PutBool(ev.Bankrupt)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *LiquidationEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.MarginAccount, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "margin_account")
	}
	if ev.Liquidator, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "liquidator")
	}
	if ev.Market, err = binary.GetOption(d, (*binary.Decoder).GetKey); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.SizeLiquidated, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "size_liquidated")
	}
	if ev.CollateralSeized, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "collateral_seized")
	}
	if ev.LiquidatorFee, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "liquidator_fee")
	}
	if ev.Bankrupt, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "bankrupt")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var EpochUpdatedEventDiscriminator = Discriminator{0x8a, 0xac, 0x75, 0xb4, 0xd0, 0x98, 0x03, 0x0c}

type EpochUpdatedEvent struct {
	Market         ed25519.PublicKey
	Epoch          uint32
	Phase          EpochUpdatePhase
	SettlementRate uint64
	Timestamp      int64
}

func (*EpochUpdatedEvent) EventName() string { return "EpochUpdatedEvent" }

func (ev *EpochUpdatedEvent) Marshal() []byte {
	e := binary.NewEncoder(61)
	e.PutFixed(EpochUpdatedEventDiscriminator[:])
	e.PutKey(ev.Market)
	e.PutUint32(ev.Epoch)
	putEpochUpdatePhase(e, ev.Phase)
	e.PutUint64(ev.SettlementRate)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *EpochUpdatedEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.Epoch, err = d.GetUint32(); err != nil {
		return errors.Wrap(err, "epoch")
	}
	if ev.Phase, err = getEpochUpdatePhase(d); err != nil {
		return errors.Wrap(err, "phase")
	}
	if ev.SettlementRate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "settlement_rate")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var LiquidityChangedEventDiscriminator = Discriminator{0xf4, 0xf0, 0x17, 0x43, 0x21, 0x43, 0xb9, 0x7d}

type LiquidityChangedEvent struct {
	LpPosition     ed25519.PublicKey
	Market         ed25519.PublicKey
	Direction      LpDirection
	LiquidityDelta binary.Uint128
	PtAmount       uint64
	QuoteAmount    uint64
	TickLower      int32
	TickUpper      int32
	Timestamp      int64
}

func (*LiquidityChangedEvent) EventName() string { return "LiquidityChangedEvent" }

func (ev *LiquidityChangedEvent) Marshal() []byte {
	e := binary.NewEncoder(121)
	e.PutFixed(LiquidityChangedEventDiscriminator[:])
	e.PutKey(ev.LpPosition)
	e.PutKey(ev.Market)
	putLpDirection(e, ev.Direction)
	e.PutUint128(ev.LiquidityDelta)
	e.PutUint64(ev.PtAmount)
	e.PutUint64(ev.QuoteAmount)
	e.PutInt32(ev.TickLower)
	e.PutInt32(ev.TickUpper)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *LiquidityChangedEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.LpPosition, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "lp_position")
	}
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.Direction, err = getLpDirection(d); err != nil {
		return errors.Wrap(err, "direction")
	}
	if ev.LiquidityDelta, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "liquidity_delta")
	}
	if ev.PtAmount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "pt_amount")
	}
	if ev.QuoteAmount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "quote_amount")
	}
	if ev.TickLower, err = d.GetInt32(); err != nil {
		return errors.Wrap(err, "tick_lower")
	}
	if ev.TickUpper, err = d.GetInt32(); err != nil {
		return errors.Wrap(err, "tick_upper")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var SwapEventDiscriminator = Discriminator{0x40, 0xc6, 0xcd, 0xe8, 0x26, 0x08, 0x71, 0xe2}

type SwapEvent struct {
	Market         ed25519.PublicKey
	Trader         ed25519.PublicKey
	PtToQuote      bool
	AmountIn       uint64
	AmountOut      uint64
	Fee            uint64
	SqrtPriceAfter binary.Uint128
	TickAfter      int32
	Timestamp      int64
}

func (*SwapEvent) EventName() string { return "SwapEvent" }

func (ev *SwapEvent) Marshal() []byte {
	e := binary.NewEncoder(125)
	e.PutFixed(SwapEventDiscriminator[:])
	e.PutKey(ev.Market)
	e.PutKey(ev.Trader)
	e.PutBool(ev.PtToQuote)
	e.PutUint64(ev.AmountIn)
	e.PutUint64(ev.AmountOut)
	e.PutUint64(ev.Fee)
	e.PutUint128(ev.SqrtPriceAfter)
	e.PutInt32(ev.TickAfter)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *SwapEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.Trader, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "trader")
	}
	if ev.PtToQuote, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "pt_to_quote")
	}
	if ev.AmountIn, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount_in")
	}
	if ev.AmountOut, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount_out")
	}
	if ev.Fee, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "fee")
	}
	if ev.SqrtPriceAfter, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "sqrt_price_after")
	}
	if ev.TickAfter, err = d.GetInt32(); err != nil {
		return errors.Wrap(err, "tick_after")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var YieldTradeEventDiscriminator = Discriminator{0x6a, 0xa5, 0x09, 0x2b, 0x35, 0xdd, 0xf6, 0x26}

type YieldTradeEvent struct {
	Market        ed25519.PublicKey
	MarginAccount ed25519.PublicKey
	Side          OrderSide
	PtDelta       int64
	YtDelta       int64
	ImpliedRate   uint64
	Fee           uint64
	Timestamp     int64
}

func (*YieldTradeEvent) EventName() string { return "YieldTradeEvent" }

func (ev *YieldTradeEvent) Marshal() []byte {
	e := binary.NewEncoder(113)
	e.PutFixed(YieldTradeEventDiscriminator[:])
	e.PutKey(ev.Market)
	e.PutKey(ev.MarginAccount)
	putOrderSide(e, ev.Side)
	e.PutInt64(ev.PtDelta)
	e.PutInt64(ev.YtDelta)
	e.PutUint64(ev.ImpliedRate)
	e.PutUint64(ev.Fee)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *YieldTradeEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.MarginAccount, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "margin_account")
	}
	if ev.Side, err = getOrderSide(d); err != nil {
		return errors.Wrap(err, "side")
	}
	if ev.PtDelta, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "pt_delta")
	}
	if ev.YtDelta, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "yt_delta")
	}
	if ev.ImpliedRate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "implied_rate")
	}
	if ev.Fee, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "fee")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var FeesCollectedEventDiscriminator = Discriminator{0xe4, 0xee, 0x37, 0xdb, 0x25, 0x55, 0x52, 0x36}

type FeesCollectedEvent struct {
	Market    ed25519.PublicKey
	Recipient ed25519.PublicKey
	Amount    uint64
	Protocol  bool
	Timestamp int64
}

func (*FeesCollectedEvent) EventName() string { return "FeesCollectedEvent" }

func (ev *FeesCollectedEvent) Marshal() []byte {
	e := binary.NewEncoder(89)
	e.PutFixed(FeesCollectedEventDiscriminator[:])
	e.PutKey(ev.Market)
	e.PutKey(ev.Recipient)
	e.PutUint64(ev.Amount)
	e.PutBool(ev.Protocol)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *FeesCollectedEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.Recipient, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if ev.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if ev.Protocol, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "protocol")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var OracleUpdatedEventDiscriminator = Discriminator{0xf3, 0xaa, 0xce, 0xb4, 0x10, 0x1d, 0xca, 0xbe}

type OracleUpdatedEvent struct {
	Oracle     ed25519.PublicKey
	Rate       uint64
	Confidence uint64
	Source     OracleSource
	Timestamp  int64
}

func (*OracleUpdatedEvent) EventName() string { return "OracleUpdatedEvent" }

func (ev *OracleUpdatedEvent) Marshal() []byte {
	e := binary.NewEncoder(65)
	e.PutFixed(OracleUpdatedEventDiscriminator[:])
	e.PutKey(ev.Oracle)
	e.PutUint64(ev.Rate)
	e.PutUint64(ev.Confidence)
	putOracleSource(e, ev.Source)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *OracleUpdatedEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.Oracle, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "oracle")
	}
	if ev.Rate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "rate")
	}
	if ev.Confidence, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "confidence")
	}
	if ev.Source, err = getOracleSource(d); err != nil {
		return errors.Wrap(err, "source")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var EarnEventDiscriminator = Discriminator{0xad, 0x51, 0x5b, 0x2f, 0xb4, 0x17, 0x93, 0x37}

type EarnEvent struct {
	EarnVault ed25519.PublicKey
	User      ed25519.PublicKey
	Direction EarnDirection
	Amount    uint64
	Shares    uint64
	Timestamp int64
}

func (*EarnEvent) EventName() string { return "EarnEvent" }

func (ev *EarnEvent) Marshal() []byte {
	e := binary.NewEncoder(97)
	e.PutFixed(EarnEventDiscriminator[:])
	e.PutKey(ev.EarnVault)
	e.PutKey(ev.User)
	putEarnDirection(e, ev.Direction)
	e.PutUint64(ev.Amount)
	e.PutUint64(ev.Shares)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *EarnEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.EarnVault, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "earn_vault")
	}
	if ev.User, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "user")
	}
	if ev.Direction, err = getEarnDirection(d); err != nil {
		return errors.Wrap(err, "direction")
	}
	if ev.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if ev.Shares, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "shares")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var MarketStatusChangedEventDiscriminator = Discriminator{0xbd, 0x39, 0xc7, 0x82, 0xb3, 0x22, 0x27, 0x35}

type MarketStatusChangedEvent struct {
	Market    ed25519.PublicKey
	OldStatus MarketStatus
	NewStatus MarketStatus
	Timestamp int64
}

func (*MarketStatusChangedEvent) EventName() string { return "MarketStatusChangedEvent" }

func (ev *MarketStatusChangedEvent) Marshal() []byte {
	e := binary.NewEncoder(50)
	e.PutFixed(MarketStatusChangedEventDiscriminator[:])
	e.PutKey(ev.Market)
	putMarketStatus(e, ev.OldStatus)
	putMarketStatus(e, ev.NewStatus)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *MarketStatusChangedEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.OldStatus, err = getMarketStatus(d); err != nil {
		return errors.Wrap(err, "old_status")
	}
	if ev.NewStatus, err = getMarketStatus(d); err != nil {
		return errors.Wrap(err, "new_status")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var PositionSettledEventDiscriminator = Discriminator{0x34, 0x4b, 0x55, 0x52, 0x8d, 0x1d, 0x02, 0x96}

type PositionSettledEvent struct {
	MarginAccount ed25519.PublicKey
	Market        ed25519.PublicKey
	RealizedPnl   int64
	FundingPaid   int64
	YieldClaimed  uint64
	Timestamp     int64
}

func (*PositionSettledEvent) EventName() string { return "PositionSettledEvent" }

func (ev *PositionSettledEvent) Marshal() []byte {
	e := binary.NewEncoder(104)
	e.PutFixed(PositionSettledEventDiscriminator[:])
	e.PutKey(ev.MarginAccount)
	e.PutKey(ev.Market)
	e.PutInt64(ev.RealizedPnl)
	e.PutInt64(ev.FundingPaid)
	e.PutUint64(ev.YieldClaimed)
	e.PutInt64(ev.Timestamp)
	return e.Bytes()
}

func (ev *PositionSettledEvent) unmarshal(d *binary.Decoder) (err error) {
	if ev.MarginAccount, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "margin_account")
	}
	if ev.Market, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "market")
	}
	if ev.RealizedPnl, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "realized_pnl")
	}
	if ev.FundingPaid, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "funding_paid")
	}
	if ev.YieldClaimed, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "yield_claimed")
	}
	if ev.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

var eventDefs = []*eventDef{
	{name: "CollateralEvent", discriminator: CollateralEventDiscriminator, newEvent: func() Event { return new(CollateralEvent) }},
	{name: "OrderPlacedEvent", discriminator: OrderPlacedEventDiscriminator, newEvent: func() Event { return new(OrderPlacedEvent) }},
	{name: "OrderFilledEvent", discriminator: OrderFilledEventDiscriminator, newEvent: func() Event { return new(OrderFilledEvent) }},
	{name: "OrderCancelledEvent", discriminator: OrderCancelledEventDiscriminator, newEvent: func() Event { return new(OrderCancelledEvent) }},
	{name: "LiquidationEvent", discriminator: LiquidationEventDiscriminator, newEvent: func() Event { return new(LiquidationEvent) }},
	{name: "EpochUpdatedEvent", discriminator: EpochUpdatedEventDiscriminator, newEvent: func() Event { return new(EpochUpdatedEvent) }},
	{name: "LiquidityChangedEvent", discriminator: LiquidityChangedEventDiscriminator, newEvent: func() Event { return new(LiquidityChangedEvent) }},
	{name: "SwapEvent", discriminator: SwapEventDiscriminator, newEvent: func() Event { return new(SwapEvent) }},
	{name: "YieldTradeEvent", discriminator: YieldTradeEventDiscriminator, newEvent: func() Event { return new(YieldTradeEvent) }},
	{name: "FeesCollectedEvent", discriminator: FeesCollectedEventDiscriminator, newEvent: func() Event { return new(FeesCollectedEvent) }},
	{name: "OracleUpdatedEvent", discriminator: OracleUpdatedEventDiscriminator, newEvent: func() Event { return new(OracleUpdatedEvent) }},
	{name: "EarnEvent", discriminator: EarnEventDiscriminator, newEvent: func() Event { return new(EarnEvent) }},
	{name: "MarketStatusChangedEvent", discriminator: MarketStatusChangedEventDiscriminator, newEvent: func() Event { return new(MarketStatusChangedEvent) }},
	{name: "PositionSettledEvent", discriminator: PositionSettledEventDiscriminator, newEvent: func() Event { return new(PositionSettledEvent) }},
}
