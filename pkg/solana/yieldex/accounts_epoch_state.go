package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var EpochStateAccountDiscriminator = Discriminator{0xbf, 0x3f, 0x8b, 0xed, 0x90, 0x0c, 0xdf, 0xd2}

const (
	EpochStateAccountSize = (8 + // discriminator
		32 + // market
		4 + // epoch
		1 + // phase
		1 + // bump
		2 + // padding
		8 + // start_ts
		8 + // end_ts
		8 + // epoch_duration_secs
		4 + // processed_positions
		4 + // total_positions
		8) // snapshot_rate
)

// EpochStateAccount is a zero-copy view over EpochState account data (C layout).
type EpochStateAccount struct {
	data []byte
}

// LoadEpochStateAccount validates the discriminator and returns a view aliasing data.
// Writes through the view modify data.
func LoadEpochStateAccount(data []byte) (EpochStateAccount, error) {
	payload, err := loadPod("epoch_state", data, EpochStateAccountDiscriminator, EpochStateAccountSize)
	if err != nil {
		return EpochStateAccount{}, err
	}
	return EpochStateAccount{data: payload}, nil
}

// InitEpochStateAccount stamps the discriminator into data and returns a view over the payload.
func InitEpochStateAccount(data []byte) (EpochStateAccount, error) {
	payload, err := initPod("epoch_state", data, EpochStateAccountDiscriminator, EpochStateAccountSize)
	if err != nil {
		return EpochStateAccount{}, err
	}
	return EpochStateAccount{data: payload}, nil
}

// Bytes returns the payload, excluding the discriminator.
func (a EpochStateAccount) Bytes() []byte { return a.data }

const (
	epochStateMarketOffset             = 0
	epochStateEpochOffset              = 32
	epochStatePhaseOffset              = 36
	epochStateBumpOffset               = 37
	epochStateStartTsOffset            = 40
	epochStateEndTsOffset              = 48
	epochStateEpochDurationSecsOffset  = 56
	epochStateProcessedPositionsOffset = 64
	epochStateTotalPositionsOffset     = 68
	epochStateSnapshotRateOffset       = 72
)

func (a EpochStateAccount) Market() ed25519.PublicKey { return binary.KeyAt(a.data, epochStateMarketOffset) }
func (a EpochStateAccount) SetMarket(v ed25519.PublicKey) { binary.PutKeyAt(a.data, epochStateMarketOffset, v) }
func (a EpochStateAccount) Epoch() uint32 { return binary.Uint32At(a.data, epochStateEpochOffset) }
func (a EpochStateAccount) SetEpoch(v uint32) { binary.PutUint32At(a.data, epochStateEpochOffset, v) }
func (a EpochStateAccount) Phase() EpochUpdatePhase { return EpochUpdatePhase(a.data[epochStatePhaseOffset]) }
func (a EpochStateAccount) SetPhase(v EpochUpdatePhase) { a.data[epochStatePhaseOffset] = uint8(v) }
func (a EpochStateAccount) Bump() uint8 { return a.data[epochStateBumpOffset] }
func (a EpochStateAccount) SetBump(v uint8) { a.data[epochStateBumpOffset] = v }
func (a EpochStateAccount) StartTs() int64 { return binary.Int64At(a.data, epochStateStartTsOffset) }
func (a EpochStateAccount) SetStartTs(v int64) { binary.PutInt64At(a.data, epochStateStartTsOffset, v) }
func (a EpochStateAccount) EndTs() int64 { return binary.Int64At(a.data, epochStateEndTsOffset) }
func (a EpochStateAccount) SetEndTs(v int64) { binary.PutInt64At(a.data, epochStateEndTsOffset, v) }
func (a EpochStateAccount) EpochDurationSecs() int64 { return binary.Int64At(a.data, epochStateEpochDurationSecsOffset) }
func (a EpochStateAccount) SetEpochDurationSecs(v int64) { binary.PutInt64At(a.data, epochStateEpochDurationSecsOffset, v) }
func (a EpochStateAccount) ProcessedPositions() uint32 { return binary.Uint32At(a.data, epochStateProcessedPositionsOffset) }
func (a EpochStateAccount) SetProcessedPositions(v uint32) { binary.PutUint32At(a.data, epochStateProcessedPositionsOffset, v) }
func (a EpochStateAccount) TotalPositions() uint32 { return binary.Uint32At(a.data, epochStateTotalPositionsOffset) }
func (a EpochStateAccount) SetTotalPositions(v uint32) { binary.PutUint32At(a.data, epochStateTotalPositionsOffset, v) }
func (a EpochStateAccount) SnapshotRate() uint64 { return binary.Uint64At(a.data, epochStateSnapshotRateOffset) }
func (a EpochStateAccount) SetSnapshotRate(v uint64) { binary.PutUint64At(a.data, epochStateSnapshotRateOffset, v) }

func (a EpochStateAccount) Fields() []Field {
	return []Field{
		{Name: "market", Value: a.Market()},
		{Name: "epoch", Value: a.Epoch()},
		{Name: "phase", Value: a.Phase()},
		{Name: "bump", Value: a.Bump()},
		{Name: "start_ts", Value: a.StartTs()},
		{Name: "end_ts", Value: a.EndTs()},
		{Name: "epoch_duration_secs", Value: a.EpochDurationSecs()},
		{Name: "processed_positions", Value: a.ProcessedPositions()},
		{Name: "total_positions", Value: a.TotalPositions()},
		{Name: "snapshot_rate", Value: a.SnapshotRate()},
	}
}
