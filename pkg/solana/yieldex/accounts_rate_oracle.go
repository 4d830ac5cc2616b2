package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var RateOracleAccountDiscriminator = Discriminator{0x7a, 0x35, 0xda, 0xd8, 0x70, 0xe6, 0x7d, 0x60}

const (
	RateOracleAccountSize = (8 + // discriminator
		32 + // market
		32 + // authority
		32 + // source_feed
		1 + // source
		1 + // bump
		2 + // observation_index
		2 + // observation_count
		4 + // max_staleness_secs
		8 + // last_rate
		8 + // last_confidence
		8 + // last_update_ts
		32*ObservationSize) // observations
)

// RateOracleAccount is a zero-copy view over RateOracle account data (packed layout).
type RateOracleAccount struct {
	data []byte
}

// LoadRateOracleAccount validates the discriminator and returns a view aliasing data.
// Writes through the view modify data.
func LoadRateOracleAccount(data []byte) (RateOracleAccount, error) {
	payload, err := loadPod("rate_oracle", data, RateOracleAccountDiscriminator, RateOracleAccountSize)
	if err != nil {
		return RateOracleAccount{}, err
	}
	return RateOracleAccount{data: payload}, nil
}

// InitRateOracleAccount stamps the discriminator into data and returns a view over the payload.
func InitRateOracleAccount(data []byte) (RateOracleAccount, error) {
	payload, err := initPod("rate_oracle", data, RateOracleAccountDiscriminator, RateOracleAccountSize)
	if err != nil {
		return RateOracleAccount{}, err
	}
	return RateOracleAccount{data: payload}, nil
}

// Bytes returns the payload, excluding the discriminator.
func (a RateOracleAccount) Bytes() []byte { return a.data }

const (
	rateOracleMarketOffset           = 0
	rateOracleAuthorityOffset        = 32
	rateOracleSourceFeedOffset       = 64
	rateOracleSourceOffset           = 96
	rateOracleBumpOffset             = 97
	rateOracleObservationIndexOffset = 98
	rateOracleObservationCountOffset = 100
	rateOracleMaxStalenessSecsOffset = 102
	rateOracleLastRateOffset         = 106
	rateOracleLastConfidenceOffset   = 114
	rateOracleLastUpdateTsOffset     = 122
	rateOracleObservationsOffset     = 130
)

func (a RateOracleAccount) Market() ed25519.PublicKey { return binary.KeyAt(a.data, rateOracleMarketOffset) }
func (a RateOracleAccount) SetMarket(v ed25519.PublicKey) { binary.PutKeyAt(a.data, rateOracleMarketOffset, v) }
func (a RateOracleAccount) Authority() ed25519.PublicKey { return binary.KeyAt(a.data, rateOracleAuthorityOffset) }
func (a RateOracleAccount) SetAuthority(v ed25519.PublicKey) { binary.PutKeyAt(a.data, rateOracleAuthorityOffset, v) }
func (a RateOracleAccount) SourceFeed() ed25519.PublicKey { return binary.KeyAt(a.data, rateOracleSourceFeedOffset) }
func (a RateOracleAccount) SetSourceFeed(v ed25519.PublicKey) { binary.PutKeyAt(a.data, rateOracleSourceFeedOffset, v) }
func (a RateOracleAccount) Source() OracleSource { return OracleSource(a.data[rateOracleSourceOffset]) }
func (a RateOracleAccount) SetSource(v OracleSource) { a.data[rateOracleSourceOffset] = uint8(v) }
func (a RateOracleAccount) Bump() uint8 { return a.data[rateOracleBumpOffset] }
func (a RateOracleAccount) SetBump(v uint8) { a.data[rateOracleBumpOffset] = v }
func (a RateOracleAccount) ObservationIndex() uint16 { return binary.Uint16At(a.data, rateOracleObservationIndexOffset) }
func (a RateOracleAccount) SetObservationIndex(v uint16) { binary.PutUint16At(a.data, rateOracleObservationIndexOffset, v) }
func (a RateOracleAccount) ObservationCount() uint16 { return binary.Uint16At(a.data, rateOracleObservationCountOffset) }
func (a RateOracleAccount) SetObservationCount(v uint16) { binary.PutUint16At(a.data, rateOracleObservationCountOffset, v) }
func (a RateOracleAccount) MaxStalenessSecs() uint32 { return binary.Uint32At(a.data, rateOracleMaxStalenessSecsOffset) }
func (a RateOracleAccount) SetMaxStalenessSecs(v uint32) { binary.PutUint32At(a.data, rateOracleMaxStalenessSecsOffset, v) }
func (a RateOracleAccount) LastRate() uint64 { return binary.Uint64At(a.data, rateOracleLastRateOffset) }
func (a RateOracleAccount) SetLastRate(v uint64) { binary.PutUint64At(a.data, rateOracleLastRateOffset, v) }
func (a RateOracleAccount) LastConfidence() uint64 { return binary.Uint64At(a.data, rateOracleLastConfidenceOffset) }
func (a RateOracleAccount) SetLastConfidence(v uint64) { binary.PutUint64At(a.data, rateOracleLastConfidenceOffset, v) }
func (a RateOracleAccount) LastUpdateTs() int64 { return binary.Int64At(a.data, rateOracleLastUpdateTsOffset) }
func (a RateOracleAccount) SetLastUpdateTs(v int64) { binary.PutInt64At(a.data, rateOracleLastUpdateTsOffset, v) }

const RateOracleAccountObservationsLen = 32

// Observation returns a view of the i-th entry of observations.
func (a RateOracleAccount) Observation(i int) Observation {
	start := rateOracleObservationsOffset + i*ObservationSize
	return Observation{data: a.data[start : start+ObservationSize : start+ObservationSize]}
}

func (a RateOracleAccount) Fields() []Field {
	observations := make([][]Field, RateOracleAccountObservationsLen)
	for i := range observations {
		observations[i] = a.Observation(i).Fields()
	}

	return []Field{
		{Name: "market", Value: a.Market()},
		{Name: "authority", Value: a.Authority()},
		{Name: "source_feed", Value: a.SourceFeed()},
		{Name: "source", Value: a.Source()},
		{Name: "bump", Value: a.Bump()},
		{Name: "observation_index", Value: a.ObservationIndex()},
		{Name: "observation_count", Value: a.ObservationCount()},
		{Name: "max_staleness_secs", Value: a.MaxStalenessSecs()},
		{Name: "last_rate", Value: a.LastRate()},
		{Name: "last_confidence", Value: a.LastConfidence()},
		{Name: "last_update_ts", Value: a.LastUpdateTs()},
		{Name: "observations", Value: observations},
	}
}
