// Package shortvec implements the compact-u16 length prefix used by the
// transaction message format. Values are written 7 bits at a time, low bits
// first, with the high bit of each byte set when another byte follows.
package shortvec

import (
	"math"

	"github.com/pkg/errors"
)

// MaxEncodedLen is the largest number of bytes a compact-u16 occupies.
const MaxEncodedLen = 3

var (
	ErrTruncated    = errors.New("shortvec: truncated length")
	ErrOverflow     = errors.New("shortvec: length exceeds u16")
	ErrNonCanonical = errors.New("shortvec: non-canonical encoding")
)

// AppendLen appends the compact encoding of n to dst.
func AppendLen(dst []byte, n int) ([]byte, error) {
	if n < 0 || n > math.MaxUint16 {
		return dst, errors.Wrapf(ErrOverflow, "len %d", n)
	}

	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n == 0 {
			return append(dst, b), nil
		}
		dst = append(dst, b|0x80)
	}
}

// DecodeLen reads a compact-u16 from the front of data, returning the value
// and the number of bytes consumed.
func DecodeLen(data []byte) (n int, size int, err error) {
	for i := 0; i < MaxEncodedLen; i++ {
		if i >= len(data) {
			return 0, 0, ErrTruncated
		}

		b := data[i]
		n |= int(b&0x7f) << (7 * i)
		if b&0x80 != 0 {
			continue
		}

		// a zero continuation byte would encode the same value in fewer bytes
		if b == 0 && i > 0 {
			return 0, 0, ErrNonCanonical
		}
		if n > math.MaxUint16 {
			return 0, 0, ErrOverflow
		}
		return n, i + 1, nil
	}

	return 0, 0, ErrOverflow
}
