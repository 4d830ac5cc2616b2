package yieldex

import "github.com/yieldex-labs/yieldex-go/pkg/solana/binary"

const (
	ObservationSize = (8 + // timestamp
		8 + // rate
		16) // rate_cumulative
)

// Observation is a zero-copy view over a single packed record of 32 bytes.
type Observation struct {
	data []byte
}

func (o Observation) Bytes() []byte { return o.data }

const (
	observationTimestampOffset      = 0
	observationRateOffset           = 8
	observationRateCumulativeOffset = 16
)

func (o Observation) Timestamp() int64 { return binary.Int64At(o.data, observationTimestampOffset) }
func (o Observation) SetTimestamp(v int64) { binary.PutInt64At(o.data, observationTimestampOffset, v) }
func (o Observation) Rate() uint64 { return binary.Uint64At(o.data, observationRateOffset) }
func (o Observation) SetRate(v uint64) { binary.PutUint64At(o.data, observationRateOffset, v) }
func (o Observation) RateCumulative() binary.Uint128 { return binary.Uint128At(o.data, observationRateCumulativeOffset) }
func (o Observation) SetRateCumulative(v binary.Uint128) { binary.PutUint128At(o.data, observationRateCumulativeOffset, v) }

func (o Observation) Fields() []Field {
	return []Field{
		{Name: "timestamp", Value: o.Timestamp()},
		{Name: "rate", Value: o.Rate()},
		{Name: "rate_cumulative", Value: o.RateCumulative()},
	}
}
