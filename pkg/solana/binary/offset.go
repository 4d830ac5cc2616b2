package binary

import (
	"crypto/ed25519"
	"encoding/binary"
)

// Fixed offset accessors for zero-copy account views. Callers guarantee
// that data covers the accessed range.

func Uint16At(data []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(data[offset:])
}

func PutUint16At(data []byte, offset int, v uint16) {
	binary.LittleEndian.PutUint16(data[offset:], v)
}

func Int16At(data []byte, offset int) int16 {
	return int16(Uint16At(data, offset))
}

func PutInt16At(data []byte, offset int, v int16) {
	PutUint16At(data, offset, uint16(v))
}

func Uint32At(data []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(data[offset:])
}

func PutUint32At(data []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(data[offset:], v)
}

func Int32At(data []byte, offset int) int32 {
	return int32(Uint32At(data, offset))
}

func PutInt32At(data []byte, offset int, v int32) {
	PutUint32At(data, offset, uint32(v))
}

func Uint64At(data []byte, offset int) uint64 {
	return binary.LittleEndian.Uint64(data[offset:])
}

func PutUint64At(data []byte, offset int, v uint64) {
	binary.LittleEndian.PutUint64(data[offset:], v)
}

func Int64At(data []byte, offset int) int64 {
	return int64(Uint64At(data, offset))
}

func PutInt64At(data []byte, offset int, v int64) {
	PutUint64At(data, offset, uint64(v))
}

func Uint128At(data []byte, offset int) Uint128 {
	return Uint128{
		Lo: binary.LittleEndian.Uint64(data[offset:]),
		Hi: binary.LittleEndian.Uint64(data[offset+8:]),
	}
}

func PutUint128At(data []byte, offset int, v Uint128) {
	binary.LittleEndian.PutUint64(data[offset:], v.Lo)
	binary.LittleEndian.PutUint64(data[offset+8:], v.Hi)
}

func Int128At(data []byte, offset int) Int128 {
	return Int128(Uint128At(data, offset))
}

func PutInt128At(data []byte, offset int, v Int128) {
	PutUint128At(data, offset, Uint128(v))
}

// KeyAt returns the public key stored at offset. The result aliases data.
func KeyAt(data []byte, offset int) ed25519.PublicKey {
	end := offset + ed25519.PublicKeySize
	return ed25519.PublicKey(data[offset:end:end])
}

func PutKeyAt(data []byte, offset int, v ed25519.PublicKey) {
	dst := data[offset : offset+ed25519.PublicKeySize]
	n := copy(dst, v)
	clear(dst[n:])
}
