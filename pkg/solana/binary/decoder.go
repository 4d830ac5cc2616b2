package binary

import (
	"crypto/ed25519"
	"encoding/binary"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Decoder reads Borsh encoded values from a byte slice, tracking the offset
// of the next unread byte. All failures are reported as *DecodeError.
type Decoder struct {
	data   []byte
	offset int
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

func (d *Decoder) Offset() int {
	return d.offset
}

func (d *Decoder) Remaining() int {
	return len(d.data) - d.offset
}

func (d *Decoder) fail(err error) error {
	return &DecodeError{Offset: d.offset, Err: err}
}

func (d *Decoder) next(n int) ([]byte, error) {
	if d.Remaining() < n {
		return nil, d.fail(ErrEndOfInput)
	}
	b := d.data[d.offset : d.offset+n]
	d.offset += n
	return b, nil
}

func (d *Decoder) GetUint8() (uint8, error) {
	b, err := d.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) GetInt8() (int8, error) {
	v, err := d.GetUint8()
	return int8(v), err
}

func (d *Decoder) GetUint16() (uint16, error) {
	b, err := d.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (d *Decoder) GetInt16() (int16, error) {
	v, err := d.GetUint16()
	return int16(v), err
}

func (d *Decoder) GetUint32() (uint32, error) {
	b, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *Decoder) GetInt32() (int32, error) {
	v, err := d.GetUint32()
	return int32(v), err
}

func (d *Decoder) GetUint64() (uint64, error) {
	b, err := d.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *Decoder) GetInt64() (int64, error) {
	v, err := d.GetUint64()
	return int64(v), err
}

func (d *Decoder) GetUint128() (Uint128, error) {
	b, err := d.next(16)
	if err != nil {
		return Uint128{}, err
	}
	return Uint128At(b, 0), nil
}

func (d *Decoder) GetInt128() (Int128, error) {
	b, err := d.next(16)
	if err != nil {
		return Int128{}, err
	}
	return Int128At(b, 0), nil
}

// GetBool accepts only 0 and 1.
func (d *Decoder) GetBool() (bool, error) {
	start := d.offset
	v, err := d.GetUint8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &DecodeError{Offset: start, Err: ErrInvalidBool}
	}
}

// GetKey returns a copy of the next 32 bytes.
func (d *Decoder) GetKey() (ed25519.PublicKey, error) {
	b, err := d.next(ed25519.PublicKeySize)
	if err != nil {
		return nil, err
	}
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(key, b)
	return key, nil
}

// GetFixed fills dst from the input.
func (d *Decoder) GetFixed(dst []byte) error {
	b, err := d.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// GetLength reads a u32 element count. When minElemSize is positive, counts
// that could not possibly fit in the remaining input are rejected before
// any allocation happens.
func (d *Decoder) GetLength(minElemSize int) (int, error) {
	start := d.offset
	n, err := d.GetUint32()
	if err != nil {
		return 0, err
	}
	if minElemSize > 0 && uint64(n)*uint64(minElemSize) > uint64(d.Remaining()) {
		return 0, &DecodeError{Offset: start, Err: ErrLengthExceeded}
	}
	return int(n), nil
}

func (d *Decoder) GetBytes() ([]byte, error) {
	n, err := d.GetLength(1)
	if err != nil {
		return nil, err
	}
	b, err := d.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// GetString reads a length prefixed string that must be valid UTF-8.
func (d *Decoder) GetString() (string, error) {
	start := d.offset
	n, err := d.GetLength(1)
	if err != nil {
		return "", err
	}
	b, err := d.next(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &DecodeError{Offset: start, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}

func (d *Decoder) GetOptionTag() (bool, error) {
	start := d.offset
	v, err := d.GetUint8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &DecodeError{Offset: start, Err: ErrInvalidTag}
	}
}

// GetEnumTag reads a variant tag, rejecting values >= variants.
func (d *Decoder) GetEnumTag(variants int) (uint8, error) {
	start := d.offset
	v, err := d.GetUint8()
	if err != nil {
		return 0, err
	}
	if int(v) >= variants {
		return 0, &DecodeError{Offset: start, Err: ErrInvalidTag}
	}
	return v, nil
}

// GetVec reads a u32 count followed by that many elements. An empty vector
// decodes to nil.
func GetVec[T any](d *Decoder, minElemSize int, get func(*Decoder) (T, error)) ([]T, error) {
	n, err := d.GetLength(minElemSize)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	out := make([]T, n)
	for i := range out {
		if out[i], err = get(d); err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
	}
	return out, nil
}

func GetOption[T any](d *Decoder, get func(*Decoder) (T, error)) (*T, error) {
	some, err := d.GetOptionTag()
	if err != nil || !some {
		return nil, err
	}
	v, err := get(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
