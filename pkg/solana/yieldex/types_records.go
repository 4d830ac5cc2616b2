package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

// CollateralConfig describes a collateral mint accepted by the exchange.
type CollateralConfig struct {
	Mint       ed25519.PublicKey
	Vault      ed25519.PublicKey
	HaircutBps uint16
	Decimals   uint8
	Enabled    bool
}

func putCollateralConfig(e *binary.Encoder, v CollateralConfig) {
	e.PutKey(v.Mint)
	e.PutKey(v.Vault)
	e.PutUint16(v.HaircutBps)
	e.PutUint8(v.Decimals)
	e.PutBool(v.Enabled)
}

func getCollateralConfig(d *binary.Decoder) (v CollateralConfig, err error) {
	if v.Mint, err = d.GetKey(); err != nil {
		return v, errors.Wrap(err, "mint")
	}
	if v.Vault, err = d.GetKey(); err != nil {
		return v, errors.Wrap(err, "vault")
	}
	if v.HaircutBps, err = d.GetUint16(); err != nil {
		return v, errors.Wrap(err, "haircut_bps")
	}
	if v.Decimals, err = d.GetUint8(); err != nil {
		return v, errors.Wrap(err, "decimals")
	}
	if v.Enabled, err = d.GetBool(); err != nil {
		return v, errors.Wrap(err, "enabled")
	}
	return v, nil
}

type InitializeMarketParams struct {
	MarketIndex      uint16
	Kind             MarketKind
	MaturityTs       int64
	TickSpacing      uint16
	MaxLeverage      uint16
	MakerFeeBps      int16
	TakerFeeBps      int16
	InitialSqrtPrice binary.Uint128
	Name             [16]byte
}

func putInitializeMarketParams(e *binary.Encoder, v InitializeMarketParams) {
	e.PutUint16(v.MarketIndex)
	putMarketKind(e, v.Kind)
	e.PutInt64(v.MaturityTs)
	e.PutUint16(v.TickSpacing)
	e.PutUint16(v.MaxLeverage)
	e.PutInt16(v.MakerFeeBps)
	e.PutInt16(v.TakerFeeBps)
	e.PutUint128(v.InitialSqrtPrice)
	e.PutFixed(v.Name[:])
}

func getInitializeMarketParams(d *binary.Decoder) (v InitializeMarketParams, err error) {
	if v.MarketIndex, err = d.GetUint16(); err != nil {
		return v, errors.Wrap(err, "market_index")
	}
	if v.Kind, err = getMarketKind(d); err != nil {
		return v, errors.Wrap(err, "kind")
	}
	if v.MaturityTs, err = d.GetInt64(); err != nil {
		return v, errors.Wrap(err, "maturity_ts")
	}
	if v.TickSpacing, err = d.GetUint16(); err != nil {
		return v, errors.Wrap(err, "tick_spacing")
	}
	if v.MaxLeverage, err = d.GetUint16(); err != nil {
		return v, errors.Wrap(err, "max_leverage")
	}
	if v.MakerFeeBps, err = d.GetInt16(); err != nil {
		return v, errors.Wrap(err, "maker_fee_bps")
	}
	if v.TakerFeeBps, err = d.GetInt16(); err != nil {
		return v, errors.Wrap(err, "taker_fee_bps")
	}
	if v.InitialSqrtPrice, err = d.GetUint128(); err != nil {
		return v, errors.Wrap(err, "initial_sqrt_price")
	}
	if err = d.GetFixed(v.Name[:]); err != nil {
		return v, errors.Wrap(err, "name")
	}
	return v, nil
}

type OrderParams struct {
	OrderType     OrderType
	Side          OrderSide
	Size          uint64
	LimitRate     uint64
	TriggerRate   *uint64
	ExpiryTs      *int64
	ClientOrderID uint64
	ReduceOnly    bool
}

func putOrderParams(e *binary.Encoder, v OrderParams) {
	putOrderType(e, v.OrderType)
	putOrderSide(e, v.Side)
	e.PutUint64(v.Size)
	e.PutUint64(v.LimitRate)
	binary.PutOption(e, v.TriggerRate, (*binary.Encoder).PutUint64)
	binary.PutOption(e, v.ExpiryTs, (*binary.Encoder).PutInt64)
	e.PutUint64(v.ClientOrderID)
	e.PutBool(v.ReduceOnly)
}

func getOrderParams(d *binary.Decoder) (v OrderParams, err error) {
	if v.OrderType, err = getOrderType(d); err != nil {
		return v, errors.Wrap(err, "order_type")
	}
	if v.Side, err = getOrderSide(d); err != nil {
		return v, errors.Wrap(err, "side")
	}
	if v.Size, err = d.GetUint64(); err != nil {
		return v, errors.Wrap(err, "size")
	}
	if v.LimitRate, err = d.GetUint64(); err != nil {
		return v, errors.Wrap(err, "limit_rate")
	}
	if v.TriggerRate, err = binary.GetOption(d, (*binary.Decoder).GetUint64); err != nil {
		return v, errors.Wrap(err, "trigger_rate")
	}
	if v.ExpiryTs, err = binary.GetOption(d, (*binary.Decoder).GetInt64); err != nil {
		return v, errors.Wrap(err, "expiry_ts")
	}
	if v.ClientOrderID, err = d.GetUint64(); err != nil {
		return v, errors.Wrap(err, "client_order_id")
	}
	if v.ReduceOnly, err = d.GetBool(); err != nil {
		return v, errors.Wrap(err, "reduce_only")
	}
	return v, nil
}

type ModifyOrderParams struct {
	NewSize      *uint64
	NewLimitRate *uint64
	NewExpiryTs  *int64
}

func putModifyOrderParams(e *binary.Encoder, v ModifyOrderParams) {
	binary.PutOption(e, v.NewSize, (*binary.Encoder).PutUint64)
	binary.PutOption(e, v.NewLimitRate, (*binary.Encoder).PutUint64)
	binary.PutOption(e, v.NewExpiryTs, (*binary.Encoder).PutInt64)
}

func getModifyOrderParams(d *binary.Decoder) (v ModifyOrderParams, err error) {
	if v.NewSize, err = binary.GetOption(d, (*binary.Decoder).GetUint64); err != nil {
		return v, errors.Wrap(err, "new_size")
	}
	if v.NewLimitRate, err = binary.GetOption(d, (*binary.Decoder).GetUint64); err != nil {
		return v, errors.Wrap(err, "new_limit_rate")
	}
	if v.NewExpiryTs, err = binary.GetOption(d, (*binary.Decoder).GetInt64); err != nil {
		return v, errors.Wrap(err, "new_expiry_ts")
	}
	return v, nil
}

type OracleObservationUpdate struct {
	Rate       uint64
	Confidence uint64
	Timestamp  int64
}

func putOracleObservationUpdate(e *binary.Encoder, v OracleObservationUpdate) {
	e.PutUint64(v.Rate)
	e.PutUint64(v.Confidence)
	e.PutInt64(v.Timestamp)
}

func getOracleObservationUpdate(d *binary.Decoder) (v OracleObservationUpdate, err error) {
	if v.Rate, err = d.GetUint64(); err != nil {
		return v, errors.Wrap(err, "rate")
	}
	if v.Confidence, err = d.GetUint64(); err != nil {
		return v, errors.Wrap(err, "confidence")
	}
	if v.Timestamp, err = d.GetInt64(); err != nil {
		return v, errors.Wrap(err, "timestamp")
	}
	return v, nil
}

// OpenOrderEntry describes a resting order tracked by an order book.
type OpenOrderEntry struct {
	OrderID       uint64
	Owner         ed25519.PublicKey
	Side          OrderSide
	LimitRate     uint64
	RemainingSize uint64
}

func putOpenOrderEntry(e *binary.Encoder, v OpenOrderEntry) {
	e.PutUint64(v.OrderID)
	e.PutKey(v.Owner)
	putOrderSide(e, v.Side)
	e.PutUint64(v.LimitRate)
	e.PutUint64(v.RemainingSize)
}

func getOpenOrderEntry(d *binary.Decoder) (v OpenOrderEntry, err error) {
	if v.OrderID, err = d.GetUint64(); err != nil {
		return v, errors.Wrap(err, "order_id")
	}
	if v.Owner, err = d.GetKey(); err != nil {
		return v, errors.Wrap(err, "owner")
	}
	if v.Side, err = getOrderSide(d); err != nil {
		return v, errors.Wrap(err, "side")
	}
	if v.LimitRate, err = d.GetUint64(); err != nil {
		return v, errors.Wrap(err, "limit_rate")
	}
	if v.RemainingSize, err = d.GetUint64(); err != nil {
		return v, errors.Wrap(err, "remaining_size")
	}
	return v, nil
}
