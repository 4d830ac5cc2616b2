package binary

import (
	"crypto/ed25519"
	"encoding/binary"
	"math"
)

// Encoder appends Borsh encoded values to a growing buffer. Encoding never
// fails: every value representable by the Go type has a valid encoding.
type Encoder struct {
	buf []byte
}

func NewEncoder(capacity int) *Encoder {
	return &Encoder{buf: make([]byte, 0, capacity)}
}

func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Len() int {
	return len(e.buf)
}

func (e *Encoder) PutUint8(v uint8) {
	e.buf = append(e.buf, v)
}

func (e *Encoder) PutInt8(v int8) {
	e.buf = append(e.buf, uint8(v))
}

func (e *Encoder) PutUint16(v uint16) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

func (e *Encoder) PutInt16(v int16) {
	e.PutUint16(uint16(v))
}

func (e *Encoder) PutUint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *Encoder) PutInt32(v int32) {
	e.PutUint32(uint32(v))
}

func (e *Encoder) PutUint64(v uint64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

func (e *Encoder) PutInt64(v int64) {
	e.PutUint64(uint64(v))
}

func (e *Encoder) PutUint128(v Uint128) {
	e.PutUint64(v.Lo)
	e.PutUint64(v.Hi)
}

func (e *Encoder) PutInt128(v Int128) {
	e.PutUint64(v.Lo)
	e.PutUint64(v.Hi)
}

func (e *Encoder) PutBool(v bool) {
	if v {
		e.PutUint8(1)
	} else {
		e.PutUint8(0)
	}
}

// PutKey writes a 32 byte public key. Short keys are zero padded.
func (e *Encoder) PutKey(v ed25519.PublicKey) {
	var key [ed25519.PublicKeySize]byte
	copy(key[:], v)
	e.buf = append(e.buf, key[:]...)
}

// PutFixed writes v verbatim, without a length prefix.
func (e *Encoder) PutFixed(v []byte) {
	e.buf = append(e.buf, v...)
}

// PutLength writes a u32 element count.
func (e *Encoder) PutLength(n int) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		panic("binary: length does not fit in u32")
	}
	e.PutUint32(uint32(n))
}

func (e *Encoder) PutBytes(v []byte) {
	e.PutLength(len(v))
	e.PutFixed(v)
}

func (e *Encoder) PutString(v string) {
	e.PutLength(len(v))
	e.buf = append(e.buf, v...)
}

func (e *Encoder) PutOptionTag(some bool) {
	e.PutBool(some)
}

func (e *Encoder) PutEnumTag(tag uint8) {
	e.PutUint8(tag)
}

// PutVec writes a u32 count followed by each element.
func PutVec[T any](e *Encoder, v []T, put func(*Encoder, T)) {
	e.PutLength(len(v))
	for _, elem := range v {
		put(e, elem)
	}
}

// PutOption writes a one byte tag, followed by the value when v is non-nil.
func PutOption[T any](e *Encoder, v *T, put func(*Encoder, T)) {
	if v == nil {
		e.PutOptionTag(false)
		return
	}
	e.PutOptionTag(true)
	put(e, *v)
}
