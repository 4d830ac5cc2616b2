package yieldex

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

// EventInstructionTag prefixes event payloads emitted through a self
// invocation of the program by its event authority.
var EventInstructionTag = Discriminator{0xe4, 0x45, 0xa5, 0x2e, 0x51, 0xcb, 0x9a, 0x1d}

const programDataLogPrefix = "Program data: "

// Event is implemented by every event record emitted by the program.
type Event interface {
	EventName() string
	// Marshal encodes the event, discriminator included.
	Marshal() []byte

	unmarshal(d *binary.Decoder) error
}

type eventDef struct {
	name          string
	discriminator Discriminator
	newEvent      func() Event
}

var eventsByDiscriminator = func() map[Discriminator]*eventDef {
	m := make(map[Discriminator]*eventDef, len(eventDefs))
	for _, def := range eventDefs {
		m[def.discriminator] = def
	}
	return m
}()

// EventNames lists every event the program emits.
func EventNames() []string {
	names := make([]string, 0, len(eventDefs))
	for _, def := range eventDefs {
		names = append(names, def.name)
	}
	return names
}

// DecodeEvent decodes an event payload: discriminator followed by the Borsh
// encoded record.
func DecodeEvent(data []byte) (Event, error) {
	d := binary.NewDecoder(data)

	var discriminator Discriminator
	if err := d.GetFixed(discriminator[:]); err != nil {
		return nil, errors.Wrap(err, "discriminator")
	}

	def, ok := eventsByDiscriminator[discriminator]
	if !ok {
		return nil, ErrUnknownEvent
	}

	ev := def.newEvent()
	if err := ev.unmarshal(d); err != nil {
		return nil, errors.Wrap(err, def.name)
	}
	return ev, nil
}

// DecodeEventInstructionData decodes the data of an event self-invocation
// instruction.
func DecodeEventInstructionData(data []byte) (Event, error) {
	if len(data) < len(EventInstructionTag) || Discriminator(data[:len(EventInstructionTag)]) != EventInstructionTag {
		return nil, ErrInvalidDiscriminator
	}
	return DecodeEvent(data[len(EventInstructionTag):])
}

// EncodeEventInstructionData wraps an event the way the program does when
// emitting it through its event authority.
func EncodeEventInstructionData(ev Event) []byte {
	payload := ev.Marshal()
	data := make([]byte, 0, len(EventInstructionTag)+len(payload))
	data = append(data, EventInstructionTag[:]...)
	return append(data, payload...)
}

// ParseProgramDataLogs decodes the events found in "Program data:" log lines.
// Lines that are not base64, or carry data of other programs, are skipped.
func ParseProgramDataLogs(logs []string) ([]Event, error) {
	var events []Event
	for _, line := range logs {
		encoded, ok := strings.CutPrefix(line, programDataLogPrefix)
		if !ok {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
		if err != nil || len(data) < len(Discriminator{}) {
			continue
		}
		if _, known := eventsByDiscriminator[Discriminator(data[:8])]; !known {
			continue
		}

		ev, err := DecodeEvent(data)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
