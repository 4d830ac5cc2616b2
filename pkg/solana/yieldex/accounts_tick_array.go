package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var TickArrayAccountDiscriminator = Discriminator{0x45, 0x61, 0xbd, 0xbe, 0x6e, 0x07, 0x42, 0xbb}

const (
	TickArrayAccountSize = (8 + // discriminator
		32 + // market
		4 + // start_tick_index
		60*TickSize) // ticks
)

// TickArrayAccount is a zero-copy view over TickArray account data (packed layout).
type TickArrayAccount struct {
	data []byte
}

// LoadTickArrayAccount validates the discriminator and returns a view aliasing data.
// Writes through the view modify data.
func LoadTickArrayAccount(data []byte) (TickArrayAccount, error) {
	payload, err := loadPod("tick_array", data, TickArrayAccountDiscriminator, TickArrayAccountSize)
	if err != nil {
		return TickArrayAccount{}, err
	}
	return TickArrayAccount{data: payload}, nil
}

// InitTickArrayAccount stamps the discriminator into data and returns a view over the payload.
func InitTickArrayAccount(data []byte) (TickArrayAccount, error) {
	payload, err := initPod("tick_array", data, TickArrayAccountDiscriminator, TickArrayAccountSize)
	if err != nil {
		return TickArrayAccount{}, err
	}
	return TickArrayAccount{data: payload}, nil
}

// Bytes returns the payload, excluding the discriminator.
func (a TickArrayAccount) Bytes() []byte { return a.data }

const (
	tickArrayMarketOffset         = 0
	tickArrayStartTickIndexOffset = 32
	tickArrayTicksOffset          = 36
)

func (a TickArrayAccount) Market() ed25519.PublicKey { return binary.KeyAt(a.data, tickArrayMarketOffset) }
func (a TickArrayAccount) SetMarket(v ed25519.PublicKey) { binary.PutKeyAt(a.data, tickArrayMarketOffset, v) }
func (a TickArrayAccount) StartTickIndex() int32 { return binary.Int32At(a.data, tickArrayStartTickIndexOffset) }
func (a TickArrayAccount) SetStartTickIndex(v int32) { binary.PutInt32At(a.data, tickArrayStartTickIndexOffset, v) }

const TickArrayAccountTicksLen = 60

// Tick returns a view of the i-th entry of ticks.
func (a TickArrayAccount) Tick(i int) Tick {
	start := tickArrayTicksOffset + i*TickSize
	return Tick{data: a.data[start : start+TickSize : start+TickSize]}
}

func (a TickArrayAccount) Fields() []Field {
	ticks := make([][]Field, TickArrayAccountTicksLen)
	for i := range ticks {
		ticks[i] = a.Tick(i).Fields()
	}

	return []Field{
		{Name: "market", Value: a.Market()},
		{Name: "start_tick_index", Value: a.StartTickIndex()},
		{Name: "ticks", Value: ticks},
	}
}
