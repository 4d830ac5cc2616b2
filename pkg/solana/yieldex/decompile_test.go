package yieldex

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
)

func TestDecompileInstruction(t *testing.T) {
	payer := testKey(1)
	accounts := &SetOracleSourceInstructionAccounts{
		Admin:      testKey(2),
		Exchange:   testKey(3),
		Oracle:     testKey(4),
		SourceFeed: testKey(5),
	}
	args := &SetOracleSourceInstructionArgs{Source: OracleSourceSwitchboard}
	remaining := solana.NewReadonlyAccountMeta(testKey(6), false)

	tx := solana.NewTransaction(
		payer,
		NewKeeperHeartbeatInstruction(&KeeperHeartbeatInstructionAccounts{Keeper: payer}),
		NewSetOracleSourceInstruction(accounts, args, WithRemainingAccounts(remaining)),
	)

	decompiled, err := DecompileInstruction(tx.Message, 1)
	require.NoError(t, err)
	assert.Same(t, SetOracleSourceInstruction, decompiled.Def)
	assert.Equal(t, args, decompiled.Args)

	require.Len(t, decompiled.Accounts, 4)
	for i, role := range SetOracleSourceInstruction.Accounts {
		assert.Equal(t, role, decompiled.Accounts[i].Role)
	}
	assert.EqualValues(t, accounts.Admin, decompiled.Accounts[0].PublicKey)
	assert.EqualValues(t, accounts.SourceFeed, decompiled.Accounts[3].PublicKey)

	sourceFeed, ok := decompiled.Account("source_feed")
	require.True(t, ok)
	assert.EqualValues(t, accounts.SourceFeed, sourceFeed)

	require.Len(t, decompiled.Remaining, 1)
	assert.EqualValues(t, remaining.PublicKey, decompiled.Remaining[0])

	heartbeat, err := DecompileInstruction(tx.Message, 0)
	require.NoError(t, err)
	assert.Same(t, KeeperHeartbeatInstruction, heartbeat.Def)
}

func TestDecompileInstruction_Invalid(t *testing.T) {
	payer := testKey(1)
	other := testKey(99)

	tx := solana.NewTransaction(
		payer,
		NewKeeperHeartbeatInstruction(&KeeperHeartbeatInstructionAccounts{Keeper: payer}, WithProgramID(other)),
	)

	_, err := DecompileInstruction(tx.Message, 0)
	assert.Equal(t, solana.ErrIncorrectProgram, err)

	decompiled, err := DecompileInstructionForProgram(other, tx.Message, 0)
	require.NoError(t, err)
	assert.Same(t, KeeperHeartbeatInstruction, decompiled.Def)

	_, err = DecompileInstruction(tx.Message, 1)
	assert.Error(t, err)

	tx.Message.Instructions[0].Accounts = nil
	_, err = DecompileInstructionForProgram(other, tx.Message, 0)
	var missing *MissingAccountIndexError
	assert.ErrorAs(t, err, &missing)
}

func TestDecompileLoadedInstruction(t *testing.T) {
	payer := testKey(1)
	accounts := &SetOracleSourceInstructionAccounts{
		Admin:      payer,
		Exchange:   testKey(3),
		Oracle:     testKey(4),
		SourceFeed: testKey(5),
	}
	args := &SetOracleSourceInstructionArgs{Source: OracleSourceSwitchboard}

	// move oracle and source feed into a lookup table: static keys are the
	// payer, the exchange and the program
	m := solana.Message{
		Version:  solana.MessageVersion0,
		Header:   solana.Header{NumSignatures: 1, NumReadOnly: 2},
		Accounts: []ed25519.PublicKey{payer, accounts.Exchange, PROGRAM_ID},
		Instructions: []solana.CompiledInstruction{{
			ProgramIndex: 2,
			Accounts:     []byte{0, 1, 3, 4},
			Data:         EncodeInstructionData(args),
		}},
		AddressTableLookups: []solana.MessageAddressTableLookup{
			{PublicKey: testKey(50), WritableIndexes: []byte{7}, ReadonlyIndexes: []byte{8}},
		},
	}
	loaded := solana.LoadedAddresses{
		Writable: []ed25519.PublicKey{accounts.Oracle},
		Readonly: []ed25519.PublicKey{accounts.SourceFeed},
	}

	_, err := DecompileInstruction(m, 0)
	assert.Error(t, err)

	decompiled, err := DecompileLoadedInstruction(PROGRAM_ID, m, loaded, 0)
	require.NoError(t, err)
	assert.Equal(t, args, decompiled.Args)

	oracle, ok := decompiled.Account("oracle")
	require.True(t, ok)
	assert.EqualValues(t, accounts.Oracle, oracle)

	sourceFeed, ok := decompiled.Account("source_feed")
	require.True(t, ok)
	assert.EqualValues(t, accounts.SourceFeed, sourceFeed)

	_, err = DecompileLoadedInstruction(PROGRAM_ID, m, solana.LoadedAddresses{}, 0)
	assert.Error(t, err)
}
