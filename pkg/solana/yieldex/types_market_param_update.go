package yieldex

import (
	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

// MarketParamUpdate is a single market parameter change applied by
// update_market_param. The concrete type selects the parameter.
type MarketParamUpdate interface {
	paramTag() uint8
	marshal(e *binary.Encoder)
}

type MarketParamMaxLeverage struct {
	Value uint16
}

type MarketParamFees struct {
	MakerFeeBps int16
	TakerFeeBps int16
}

type MarketParamTickSpacing struct {
	Value uint16
}

type MarketParamOracleMaxStaleness struct {
	Secs uint32
}

type MarketParamStatus struct {
	Status MarketStatus
}

type MarketParamProtocolFeeShare struct {
	Bps uint16
}

const (
	marketParamMaxLeverageTag uint8 = iota
	marketParamFeesTag
	marketParamTickSpacingTag
	marketParamOracleMaxStalenessTag
	marketParamStatusTag
	marketParamProtocolFeeShareTag

	marketParamVariants = int(marketParamProtocolFeeShareTag) + 1
)

func (MarketParamMaxLeverage) paramTag() uint8        { return marketParamMaxLeverageTag }
func (MarketParamFees) paramTag() uint8               { return marketParamFeesTag }
func (MarketParamTickSpacing) paramTag() uint8        { return marketParamTickSpacingTag }
func (MarketParamOracleMaxStaleness) paramTag() uint8 { return marketParamOracleMaxStalenessTag }
func (MarketParamStatus) paramTag() uint8             { return marketParamStatusTag }
func (MarketParamProtocolFeeShare) paramTag() uint8   { return marketParamProtocolFeeShareTag }

func (p MarketParamMaxLeverage) marshal(e *binary.Encoder) {
	e.PutUint16(p.Value)
}

func (p MarketParamFees) marshal(e *binary.Encoder) {
	e.PutInt16(p.MakerFeeBps)
	e.PutInt16(p.TakerFeeBps)
}

func (p MarketParamTickSpacing) marshal(e *binary.Encoder) {
	e.PutUint16(p.Value)
}

func (p MarketParamOracleMaxStaleness) marshal(e *binary.Encoder) {
	e.PutUint32(p.Secs)
}

func (p MarketParamStatus) marshal(e *binary.Encoder) {
	putMarketStatus(e, p.Status)
}

func (p MarketParamProtocolFeeShare) marshal(e *binary.Encoder) {
	e.PutUint16(p.Bps)
}

func putMarketParamUpdate(e *binary.Encoder, v MarketParamUpdate) {
	e.PutEnumTag(v.paramTag())
	v.marshal(e)
}

func getMarketParamUpdate(d *binary.Decoder) (MarketParamUpdate, error) {
	tag, err := d.GetEnumTag(marketParamVariants)
	if err != nil {
		return nil, err
	}

	switch tag {
	case marketParamMaxLeverageTag:
		var p MarketParamMaxLeverage
		if p.Value, err = d.GetUint16(); err != nil {
			return nil, errors.Wrap(err, "max_leverage")
		}
		return p, nil
	case marketParamFeesTag:
		var p MarketParamFees
		if p.MakerFeeBps, err = d.GetInt16(); err != nil {
			return nil, errors.Wrap(err, "fees.maker_fee_bps")
		}
		if p.TakerFeeBps, err = d.GetInt16(); err != nil {
			return nil, errors.Wrap(err, "fees.taker_fee_bps")
		}
		return p, nil
	case marketParamTickSpacingTag:
		var p MarketParamTickSpacing
		if p.Value, err = d.GetUint16(); err != nil {
			return nil, errors.Wrap(err, "tick_spacing")
		}
		return p, nil
	case marketParamOracleMaxStalenessTag:
		var p MarketParamOracleMaxStaleness
		if p.Secs, err = d.GetUint32(); err != nil {
			return nil, errors.Wrap(err, "oracle_max_staleness")
		}
		return p, nil
	case marketParamStatusTag:
		var p MarketParamStatus
		if p.Status, err = getMarketStatus(d); err != nil {
			return nil, errors.Wrap(err, "status")
		}
		return p, nil
	default:
		var p MarketParamProtocolFeeShare
		if p.Bps, err = d.GetUint16(); err != nil {
			return nil, errors.Wrap(err, "protocol_fee_share")
		}
		return p, nil
	}
}
