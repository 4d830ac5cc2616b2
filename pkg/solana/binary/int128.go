package binary

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

var (
	two64      = new(big.Int).Lsh(big.NewInt(1), 64)
	two128     = new(big.Int).Lsh(big.NewInt(1), 128)
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxUint128 = new(big.Int).Sub(two128, big.NewInt(1))
)

// Uint128 is an unsigned 128-bit integer split into 64-bit halves.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

func NewUint128(v uint64) Uint128 {
	return Uint128{Lo: v}
}

func Uint128FromBig(v *big.Int) (Uint128, error) {
	if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return Uint128{}, ErrValueOutOfRange
	}
	lo := new(big.Int).And(v, new(big.Int).SetUint64(math.MaxUint64))
	hi := new(big.Int).Rsh(v, 64)
	return Uint128{Lo: lo.Uint64(), Hi: hi.Uint64()}, nil
}

func (u Uint128) BigInt() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

func (u Uint128) String() string {
	return u.BigInt().String()
}

func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint128) UnmarshalText(text []byte) error {
	v, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		return errors.Errorf("invalid u128: %q", text)
	}
	parsed, err := Uint128FromBig(v)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Int128 is a two's complement signed 128-bit integer split into 64-bit
// halves.
type Int128 struct {
	Lo uint64
	Hi uint64
}

func NewInt128(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = math.MaxUint64
	}
	return Int128{Lo: uint64(v), Hi: hi}
}

func Int128FromBig(v *big.Int) (Int128, error) {
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return Int128{}, ErrValueOutOfRange
	}
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	lo := new(big.Int).Mod(u, two64)
	hi := new(big.Int).Rsh(u, 64)
	return Int128{Lo: lo.Uint64(), Hi: hi.Uint64()}, nil
}

func (i Int128) BigInt() *big.Int {
	v := Uint128(i).BigInt()
	if i.Hi>>63 == 1 {
		v.Sub(v, two128)
	}
	return v
}

func (i Int128) String() string {
	return i.BigInt().String()
}

func (i Int128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int128) UnmarshalText(text []byte) error {
	v, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		return errors.Errorf("invalid i128: %q", text)
	}
	parsed, err := Int128FromBig(v)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
