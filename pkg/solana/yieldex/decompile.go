package yieldex

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
)

// ResolvedAccount pairs a declared account role with the key found in the
// message.
type ResolvedAccount struct {
	Role      AccountRole
	PublicKey ed25519.PublicKey
}

type DecompiledInstruction struct {
	DecodedInstruction

	Accounts  []ResolvedAccount
	Remaining []ed25519.PublicKey
}

// Account returns the key bound to the named role.
func (i *DecompiledInstruction) Account(role string) (ed25519.PublicKey, bool) {
	for _, account := range i.Accounts {
		if account.Role.Name == role {
			return account.PublicKey, true
		}
	}
	return nil, false
}

// DecompileInstruction decodes the compiled instruction at index, resolving
// its account indexes against the message's static account keys. Accounts
// loaded through address lookup tables are not resolved; use
// DecompileLoadedInstruction for those.
func DecompileInstruction(m solana.Message, index int) (*DecompiledInstruction, error) {
	return DecompileInstructionForProgram(PROGRAM_ID, m, index)
}

func DecompileInstructionForProgram(programID ed25519.PublicKey, m solana.Message, index int) (*DecompiledInstruction, error) {
	return decompile(programID, m, m.Accounts, index)
}

// DecompileLoadedInstruction decompiles an instruction of a v0 message given
// the addresses its lookups resolved to.
func DecompileLoadedInstruction(programID ed25519.PublicKey, m solana.Message, loaded solana.LoadedAddresses, index int) (*DecompiledInstruction, error) {
	keys, err := m.ResolveAccountKeys(loaded)
	if err != nil {
		return nil, err
	}
	return decompile(programID, m, keys, index)
}

func decompile(programID ed25519.PublicKey, m solana.Message, keys []ed25519.PublicKey, index int) (*DecompiledInstruction, error) {
	if index < 0 || index >= len(m.Instructions) {
		return nil, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if int(i.ProgramIndex) >= len(m.Accounts) || !bytes.Equal(m.Accounts[i.ProgramIndex], programID) {
		return nil, solana.ErrIncorrectProgram
	}

	decoded, err := DecodeInstructionData(i.Data)
	if err != nil {
		return nil, err
	}

	named, trailing, err := decoded.Def.ResolveAccountIndexes(i.Accounts)
	if err != nil {
		return nil, err
	}

	lookup := func(accountIndex int) (ed25519.PublicKey, error) {
		if accountIndex >= len(keys) {
			return nil, errors.Errorf("account index %d not in account keys (%d)", accountIndex, len(keys))
		}
		return keys[accountIndex], nil
	}

	out := &DecompiledInstruction{
		DecodedInstruction: *decoded,
		Accounts:           make([]ResolvedAccount, len(named)),
	}
	for pos, accountIndex := range named {
		key, err := lookup(accountIndex)
		if err != nil {
			return nil, errors.Wrap(err, decoded.Def.Accounts[pos].Name)
		}
		out.Accounts[pos] = ResolvedAccount{Role: decoded.Def.Accounts[pos], PublicKey: key}
	}
	for _, accountIndex := range trailing {
		key, err := lookup(accountIndex)
		if err != nil {
			return nil, errors.Wrap(err, "remaining account")
		}
		out.Remaining = append(out.Remaining, key)
	}
	return out, nil
}
