package yieldex

import (
	"crypto/ed25519"
	"crypto/sha256"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

type instructionCase struct {
	def      *InstructionDef
	args     InstructionArgs
	pack     func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction
	project  func(indexes []byte) ([]int, []int, error)
	accounts interface{}
}

func testKey(n int) ed25519.PublicKey {
	h := sha256.Sum256([]byte{byte(n), byte(n >> 8)})
	return ed25519.PublicKey(h[:])
}

func testKeys(n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := range keys {
		keys[i] = testKey(1000 + i)
	}
	return keys
}

func assignKeys(fields []*ed25519.PublicKey, keys []ed25519.PublicKey) {
	for i, field := range fields {
		*field = keys[i]
	}
}

func collectIndexes(fields []*int) []int {
	out := make([]int, len(fields))
	for i, field := range fields {
		out[i] = *field
	}
	return out
}

func goFieldName(role string) string {
	var sb strings.Builder
	for _, part := range strings.Split(role, "_") {
		if part == "id" {
			sb.WriteString("ID")
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}

func TestInstructionTable(t *testing.T) {
	defs := Instructions()
	require.Len(t, instructionCases, len(defs))

	seenNames := make(map[string]bool)
	seenDiscriminators := make(map[Discriminator]bool)
	for i, def := range defs {
		assert.Same(t, def, instructionCases[i].def)
		assert.Equal(t, ComputeDiscriminator("global", def.Name), def.Discriminator, def.Name)
		assert.NotEmpty(t, def.Accounts, def.Name)

		assert.False(t, seenNames[def.Name], def.Name)
		assert.False(t, seenDiscriminators[def.Discriminator], def.Name)
		seenNames[def.Name] = true
		seenDiscriminators[def.Discriminator] = true

		byName, ok := LookupInstruction(def.Name)
		require.True(t, ok)
		assert.Same(t, def, byName)

		byDiscriminator, ok := LookupInstructionByDiscriminator(def.Discriminator)
		require.True(t, ok)
		assert.Same(t, def, byDiscriminator)
	}

	_, ok := LookupInstruction("does_not_exist")
	assert.False(t, ok)
}

func TestInstructionArgs_RoundTrip(t *testing.T) {
	for _, tc := range instructionCases {
		data := EncodeInstructionData(tc.args)
		require.True(t, len(data) >= 8, tc.def.Name)
		assert.Equal(t, tc.def.Discriminator[:], data[:8], tc.def.Name)

		decoded, err := DecodeInstructionData(data)
		require.NoError(t, err, tc.def.Name)
		assert.Same(t, tc.def, decoded.Def)
		assert.Equal(t, tc.args, decoded.Args, tc.def.Name)

		// Extra bytes after the arguments are ignored.
		decoded, err = DecodeInstructionData(append(append([]byte(nil), data...), 0xff, 0xff))
		require.NoError(t, err, tc.def.Name)
		assert.Equal(t, tc.args, decoded.Args, tc.def.Name)
	}
}

func TestInstructionArgs_Truncated(t *testing.T) {
	for _, tc := range instructionCases {
		data := EncodeInstructionData(tc.args)
		for n := 0; n < len(data); n++ {
			_, err := DecodeInstructionData(data[:n])
			assert.Error(t, err, "%s truncated to %d bytes", tc.def.Name, n)
		}
	}
}

func TestNewInstruction(t *testing.T) {
	for _, tc := range instructionCases {
		keys := testKeys(len(tc.def.Accounts))

		ix := tc.pack(tc.args, keys)
		assert.EqualValues(t, PROGRAM_ID, ix.Program, tc.def.Name)
		assert.Equal(t, EncodeInstructionData(tc.args), ix.Data, tc.def.Name)
		require.Len(t, ix.Accounts, len(tc.def.Accounts), tc.def.Name)
		for i, role := range tc.def.Accounts {
			assert.EqualValues(t, keys[i], ix.Accounts[i].PublicKey, "%s.%s", tc.def.Name, role.Name)
			assert.Equal(t, role.IsSigner, ix.Accounts[i].IsSigner, "%s.%s", tc.def.Name, role.Name)
			assert.Equal(t, role.IsWritable, ix.Accounts[i].IsWritable, "%s.%s", tc.def.Name, role.Name)
		}
	}
}

func TestNewInstruction_Options(t *testing.T) {
	programID := testKey(42)
	extra := solana.NewAccountMeta(testKey(43), false)

	for _, tc := range instructionCases {
		ix := tc.pack(tc.args, testKeys(len(tc.def.Accounts)), WithProgramID(programID), WithRemainingAccounts(extra))
		assert.EqualValues(t, programID, ix.Program)
		require.Len(t, ix.Accounts, len(tc.def.Accounts)+1)
		assert.Equal(t, extra, ix.Accounts[len(ix.Accounts)-1])
	}
}

func TestAccountsStructMatchesRoles(t *testing.T) {
	for _, tc := range instructionCases {
		typ := reflect.TypeOf(tc.accounts)
		require.Equal(t, len(tc.def.Accounts), typ.NumField(), tc.def.Name)
		for i, role := range tc.def.Accounts {
			assert.Equal(t, goFieldName(role.Name), typ.Field(i).Name, tc.def.Name)
		}
	}
}

func TestAccountIndexProjection(t *testing.T) {
	for _, tc := range instructionCases {
		n := len(tc.def.Accounts)

		indexes := make([]byte, n)
		expected := make([]int, n)
		for i := range indexes {
			indexes[i] = byte(n - i)
			expected[i] = n - i
		}

		named, trailing, err := tc.project(indexes)
		require.NoError(t, err, tc.def.Name)
		assert.Equal(t, expected, named, tc.def.Name)
		assert.Empty(t, trailing, tc.def.Name)

		named, trailing, err = tc.project(append(indexes, 200, 201))
		require.NoError(t, err, tc.def.Name)
		assert.Equal(t, expected, named, tc.def.Name)
		assert.Equal(t, []int{200, 201}, trailing, tc.def.Name)

		_, _, err = tc.project(indexes[:n-1])
		var missing *MissingAccountIndexError
		require.True(t, errors.As(err, &missing), tc.def.Name)
		assert.Equal(t, tc.def.Name, missing.Instruction)
		assert.Equal(t, tc.def.Accounts[n-1].Name, missing.Field)
		assert.Equal(t, n-1, missing.Position)
	}
}

func TestKeeperHeartbeat(t *testing.T) {
	keeper := testKey(1)
	ix := NewKeeperHeartbeatInstruction(&KeeperHeartbeatInstructionAccounts{Keeper: keeper})

	assert.Equal(t, KeeperHeartbeatInstructionDiscriminator[:], ix.Data)
	require.Len(t, ix.Accounts, 1)
	assert.EqualValues(t, keeper, ix.Accounts[0].PublicKey)
	assert.True(t, ix.Accounts[0].IsSigner)
	assert.False(t, ix.Accounts[0].IsWritable)

	decoded, err := DecodeInstructionData(ix.Data)
	require.NoError(t, err)
	assert.IsType(t, &KeeperHeartbeatInstructionArgs{}, decoded.Args)
}

func TestAdjustPositionMargin_Encoding(t *testing.T) {
	data := EncodeInstructionData(&AdjustPositionMarginInstructionArgs{Amount: -5, ReduceOnly: true})

	expected := append(AdjustPositionMarginInstructionDiscriminator[:],
		0xfb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x01,
	)
	assert.Equal(t, expected, data)

	// A bool byte other than 0 or 1 is rejected.
	data[len(data)-1] = 2
	_, err := DecodeInstructionData(data)
	assert.ErrorIs(t, err, binary.ErrInvalidBool)
}

func TestPurgeOracleObservations_Encoding(t *testing.T) {
	data := EncodeInstructionData(&PurgeOracleObservationsInstructionArgs{Stamps: []uint32{100, 200, 300}})

	expected := append(PurgeOracleObservationsInstructionDiscriminator[:],
		0x03, 0x00, 0x00, 0x00,
		0x64, 0x00, 0x00, 0x00,
		0xc8, 0x00, 0x00, 0x00,
		0x2c, 0x01, 0x00, 0x00,
	)
	assert.Equal(t, expected, data)

	// The count announces three elements but only two follow.
	_, err := DecodeInstructionData(expected[:len(expected)-4])
	assert.ErrorIs(t, err, binary.ErrLengthExceeded)
}

func TestSetMarketStatus_Encoding(t *testing.T) {
	data := EncodeInstructionData(&SetMarketStatusInstructionArgs{Status: MarketStatusPaused})
	assert.Equal(t, append(SetMarketStatusInstructionDiscriminator[:], 0x02), data)

	decoded, err := DecodeInstructionData(data)
	require.NoError(t, err)
	assert.Equal(t, MarketStatusPaused, decoded.Args.(*SetMarketStatusInstructionArgs).Status)

	data[8] = byte(len(marketStatusNames))
	_, err = DecodeInstructionData(data)
	assert.ErrorIs(t, err, binary.ErrInvalidTag)
}

func TestSetOracleSource_AccountIndexes(t *testing.T) {
	indexes, err := ParseSetOracleSourceAccountIndexes([]byte{3, 0, 7, 2})
	require.NoError(t, err)
	assert.Equal(t, SetOracleSourceAccounts[int]{Admin: 3, Exchange: 0, Oracle: 7, SourceFeed: 2}, indexes.Accounts)
	assert.Empty(t, indexes.Trailing)

	indexes, err = ParseSetOracleSourceAccountIndexes([]byte{3, 0, 7, 2, 9})
	require.NoError(t, err)
	assert.Equal(t, []int{9}, indexes.Trailing)

	_, err = ParseSetOracleSourceAccountIndexes([]byte{3, 0, 7})
	var missing *MissingAccountIndexError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "source_feed", missing.Field)
	assert.Equal(t, 3, missing.Position)
}

func TestRoleFlagsVaryByVariant(t *testing.T) {
	assert.Equal(t, AccountRole{Name: "admin", IsSigner: true}, SetExchangePausedInstruction.Accounts[0])
	assert.Equal(t, AccountRole{Name: "admin", IsSigner: true, IsWritable: true}, TransferExchangeAdminInstruction.Accounts[0])
	assert.Equal(t, AccountRole{Name: "admin", IsSigner: true, IsWritable: true}, SetMarketStatusInstruction.Accounts[0])
}

func TestDecodeInstructionData_UnknownDiscriminator(t *testing.T) {
	_, err := DecodeInstructionData([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
	assert.Equal(t, ErrInvalidDiscriminator, err)

	_, err = DecodeInstructionData([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, binary.ErrEndOfInput)
}

func TestMarketParamUpdate_RoundTrip(t *testing.T) {
	for i, param := range []MarketParamUpdate{
		MarketParamMaxLeverage{Value: 20},
		MarketParamFees{MakerFeeBps: -1, TakerFeeBps: 4},
		MarketParamTickSpacing{Value: 8},
		MarketParamOracleMaxStaleness{Secs: 120},
		MarketParamStatus{Status: MarketStatusReduceOnly},
		MarketParamProtocolFeeShare{Bps: 2500},
	} {
		args := &UpdateMarketParamInstructionArgs{Param: param}
		data := EncodeInstructionData(args)
		assert.EqualValues(t, i, data[8])

		decoded, err := DecodeInstructionData(data)
		require.NoError(t, err)
		assert.Equal(t, args, decoded.Args)
	}

	_, err := DecodeInstructionData(append(UpdateMarketParamInstructionDiscriminator[:], 6))
	assert.ErrorIs(t, err, binary.ErrInvalidTag)
}
