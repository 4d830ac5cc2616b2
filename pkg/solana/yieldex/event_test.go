package yieldex

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

func TestEvents_Discriminators(t *testing.T) {
	names := EventNames()
	require.Len(t, names, len(eventCases()))

	for _, ev := range eventCases() {
		def, ok := eventsByDiscriminator[ComputeDiscriminator("event", ev.EventName())]
		require.True(t, ok, ev.EventName())
		assert.Equal(t, ev.EventName(), def.name)
	}
}

func TestEvents_RoundTrip(t *testing.T) {
	for _, ev := range eventCases() {
		data := ev.Marshal()

		decoded, err := DecodeEvent(data)
		require.NoError(t, err, ev.EventName())
		assert.Equal(t, ev, decoded)

		decoded, err = DecodeEventInstructionData(EncodeEventInstructionData(ev))
		require.NoError(t, err, ev.EventName())
		assert.Equal(t, ev, decoded)

		for n := 0; n < len(data); n++ {
			_, err := DecodeEvent(data[:n])
			assert.Error(t, err, "%s truncated to %d bytes", ev.EventName(), n)
		}
	}
}

func TestDecodeEvent_Unknown(t *testing.T) {
	_, err := DecodeEvent(make([]byte, 16))
	assert.Equal(t, ErrUnknownEvent, err)

	_, err = DecodeEvent([]byte{1})
	assert.ErrorIs(t, err, binary.ErrEndOfInput)

	_, err = DecodeEventInstructionData(make([]byte, 16))
	assert.Equal(t, ErrInvalidDiscriminator, err)
}

func TestParseProgramDataLogs(t *testing.T) {
	swap := &SwapEvent{
		Market:         testKey(1),
		Trader:         testKey(2),
		PtToQuote:      true,
		AmountIn:       1_000,
		AmountOut:      990,
		Fee:            3,
		SqrtPriceAfter: binary.Uint128{Lo: 77},
		TickAfter:      -12,
		Timestamp:      1_700_000_000,
	}
	statusChanged := &MarketStatusChangedEvent{
		Market:    testKey(3),
		OldStatus: MarketStatusActive,
		NewStatus: MarketStatusPaused,
		Timestamp: 1_700_000_100,
	}

	logs := []string{
		"Program 4ydriYXG8818H9WoHijuzuLUDNPug5rVqD6VyyF2EEjx invoke [1]",
		"Program log: Instruction: Swap",
		"Program data: " + base64.StdEncoding.EncodeToString(swap.Marshal()),
		"Program data: not base64!",
		"Program data: " + base64.StdEncoding.EncodeToString([]byte("some other program's event")),
		"Program data: " + base64.StdEncoding.EncodeToString(statusChanged.Marshal()),
		"Program 4ydriYXG8818H9WoHijuzuLUDNPug5rVqD6VyyF2EEjx success",
	}

	events, err := ParseProgramDataLogs(logs)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, swap, events[0])
	assert.Equal(t, statusChanged, events[1])

	truncated := swap.Marshal()
	_, err = ParseProgramDataLogs([]string{"Program data: " + base64.StdEncoding.EncodeToString(truncated[:20])})
	assert.ErrorIs(t, err, binary.ErrEndOfInput)
}
