package binary

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Scalars(t *testing.T) {
	e := NewEncoder(0)
	e.PutUint8(0xab)
	e.PutInt8(-1)
	e.PutUint16(0x0102)
	e.PutInt16(-2)
	e.PutUint32(0x01020304)
	e.PutInt32(-3)
	e.PutUint64(0x0102030405060708)
	e.PutInt64(-4)
	e.PutBool(true)
	e.PutBool(false)

	expected := []byte{
		0xab,
		0xff,
		0x02, 0x01,
		0xfe, 0xff,
		0x04, 0x03, 0x02, 0x01,
		0xfd, 0xff, 0xff, 0xff,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0xfc, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x01,
		0x00,
	}
	assert.Equal(t, expected, e.Bytes())
	assert.Equal(t, len(expected), e.Len())
}

func TestEncoder_Int128(t *testing.T) {
	e := NewEncoder(32)
	e.PutUint128(Uint128{Lo: 1, Hi: 2})
	e.PutInt128(NewInt128(-1))

	expected := append([]byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0}, bytes.Repeat([]byte{0xff}, 16)...)
	assert.Equal(t, expected, e.Bytes())
}

func TestEncoder_Key(t *testing.T) {
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := range key {
		key[i] = byte(i)
	}

	e := NewEncoder(64)
	e.PutKey(key)
	e.PutKey(nil)

	assert.Equal(t, []byte(key), e.Bytes()[:32])
	assert.Equal(t, make([]byte, 32), e.Bytes()[32:])
}

func TestEncoder_VecAndOption(t *testing.T) {
	e := NewEncoder(0)
	PutVec(e, []uint32{1, 2}, (*Encoder).PutUint32)
	PutVec[uint16](e, nil, (*Encoder).PutUint16)

	v := uint16(7)
	PutOption(e, &v, (*Encoder).PutUint16)
	PutOption[uint16](e, nil, (*Encoder).PutUint16)

	expected := []byte{
		2, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0,
		0, 0, 0, 0,
		1, 7, 0,
		0,
	}
	assert.Equal(t, expected, e.Bytes())
}

type crossCheck struct {
	Amount   uint64
	Delta    int16
	Enabled  bool
	Name     string
	Stamps   []uint32
	Key      [32]byte
	Optional *uint32
	Missing  *uint64
}

func encodeCrossCheck(v crossCheck) []byte {
	e := NewEncoder(0)
	e.PutUint64(v.Amount)
	e.PutInt16(v.Delta)
	e.PutBool(v.Enabled)
	e.PutString(v.Name)
	PutVec(e, v.Stamps, (*Encoder).PutUint32)
	e.PutFixed(v.Key[:])
	PutOption(e, v.Optional, (*Encoder).PutUint32)
	PutOption(e, v.Missing, (*Encoder).PutUint64)
	return e.Bytes()
}

func TestEncoder_MatchesBorshGo(t *testing.T) {
	optional := uint32(99)
	v := crossCheck{
		Amount:   1_000_000,
		Delta:    -20,
		Enabled:  true,
		Name:     "fixed-rate",
		Stamps:   []uint32{10, 20, 30},
		Key:      [32]byte{1, 2, 3},
		Optional: &optional,
	}

	expected, err := borsh.Serialize(v)
	require.NoError(t, err)
	assert.Equal(t, expected, encodeCrossCheck(v))

	var decoded crossCheck
	require.NoError(t, borsh.Deserialize(&decoded, encodeCrossCheck(v)))
	assert.Equal(t, v, decoded)
}

type binCrossCheck struct {
	Amount  uint64
	Delta   int32
	Enabled bool
	Name    string
	Stamps  []uint16
	Key     [32]byte
}

func TestEncoder_MatchesGagliardettoBinary(t *testing.T) {
	v := binCrossCheck{
		Amount:  42,
		Delta:   -7,
		Enabled: true,
		Name:    "pt",
		Stamps:  []uint16{3, 4},
		Key:     [32]byte{9},
	}

	var buf bytes.Buffer
	require.NoError(t, bin.NewBorshEncoder(&buf).Encode(v))

	e := NewEncoder(0)
	e.PutUint64(v.Amount)
	e.PutInt32(v.Delta)
	e.PutBool(v.Enabled)
	e.PutString(v.Name)
	PutVec(e, v.Stamps, (*Encoder).PutUint16)
	e.PutFixed(v.Key[:])
	assert.Equal(t, buf.Bytes(), e.Bytes())

	var decoded binCrossCheck
	require.NoError(t, bin.NewBorshDecoder(e.Bytes()).Decode(&decoded))
	assert.Equal(t, v, decoded)
}
