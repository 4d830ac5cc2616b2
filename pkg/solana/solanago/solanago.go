// Package solanago converts between this module's transport types and those of
// github.com/gagliardetto/solana-go, so instructions built here can be sent
// with its RPC client and transactions fetched with it can be decompiled.
package solanago

import (
	"crypto/ed25519"
	"math"

	sgo "github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
)

// PublicKey converts a key, zero padding keys shorter than 32 bytes.
func PublicKey(key ed25519.PublicKey) sgo.PublicKey {
	return sgo.PublicKeyFromBytes(key)
}

func ToAccountMeta(meta solana.AccountMeta) *sgo.AccountMeta {
	return sgo.NewAccountMeta(PublicKey(meta.PublicKey), meta.IsWritable, meta.IsSigner)
}

func FromAccountMeta(meta *sgo.AccountMeta) solana.AccountMeta {
	return solana.AccountMeta{
		PublicKey:  ed25519.PublicKey(meta.PublicKey.Bytes()),
		IsSigner:   meta.IsSigner,
		IsWritable: meta.IsWritable,
	}
}

// ToGeneric converts an instruction for use with solana-go transaction
// builders.
func ToGeneric(ix solana.Instruction) *sgo.GenericInstruction {
	accounts := make(sgo.AccountMetaSlice, len(ix.Accounts))
	for i, meta := range ix.Accounts {
		accounts[i] = ToAccountMeta(meta)
	}
	return sgo.NewInstruction(PublicKey(ix.Program), accounts, ix.Data)
}

// FromGeneric converts any solana-go instruction.
func FromGeneric(ix sgo.Instruction) (solana.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode instruction data")
	}

	program := ix.ProgramID()
	metas := ix.Accounts()
	accounts := make([]solana.AccountMeta, len(metas))
	for i, meta := range metas {
		if meta == nil {
			return solana.Instruction{}, errors.Errorf("nil account meta at %d", i)
		}
		accounts[i] = FromAccountMeta(meta)
	}
	return solana.NewInstruction(ed25519.PublicKey(program.Bytes()), data, accounts...), nil
}

// FromMessage converts a legacy or v0 message so its instructions can be
// decompiled.
func FromMessage(m *sgo.Message) (solana.Message, error) {
	out := solana.Message{
		Header: solana.Header{
			NumSignatures:     m.Header.NumRequiredSignatures,
			NumReadonlySigned: m.Header.NumReadonlySignedAccounts,
			NumReadOnly:       m.Header.NumReadonlyUnsignedAccounts,
		},
		RecentBlockhash: solana.Blockhash(m.RecentBlockhash),
	}
	if m.IsVersioned() {
		out.Version = solana.MessageVersion0
	}

	for _, key := range m.AccountKeys {
		out.Accounts = append(out.Accounts, ed25519.PublicKey(key.Bytes()))
	}

	for i, ix := range m.Instructions {
		if ix.ProgramIDIndex > math.MaxUint8 {
			return solana.Message{}, errors.Errorf("instruction[%d] program index %d out of range", i, ix.ProgramIDIndex)
		}

		compiled := solana.CompiledInstruction{
			ProgramIndex: byte(ix.ProgramIDIndex),
			Data:         []byte(ix.Data),
		}
		for _, index := range ix.Accounts {
			if index > math.MaxUint8 {
				return solana.Message{}, errors.Errorf("instruction[%d] account index %d out of range", i, index)
			}
			compiled.Accounts = append(compiled.Accounts, byte(index))
		}
		out.Instructions = append(out.Instructions, compiled)
	}

	for _, lookup := range m.AddressTableLookups {
		converted := solana.MessageAddressTableLookup{
			PublicKey: ed25519.PublicKey(lookup.AccountKey.Bytes()),
		}
		for _, index := range lookup.WritableIndexes {
			converted.WritableIndexes = append(converted.WritableIndexes, byte(index))
		}
		for _, index := range lookup.ReadonlyIndexes {
			converted.ReadonlyIndexes = append(converted.ReadonlyIndexes, byte(index))
		}
		out.AddressTableLookups = append(out.AddressTableLookups, converted)
	}

	return out, nil
}
