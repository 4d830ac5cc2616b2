package yieldex

import (
	"crypto/ed25519"
	"fmt"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

// AccountRole describes one positional account of an instruction.
type AccountRole struct {
	Name       string
	IsWritable bool
	IsSigner   bool
}

// InstructionDef is the static description of an instruction variant. Its
// Accounts table drives building, index projection and decompilation.
type InstructionDef struct {
	Name          string
	Discriminator Discriminator
	Accounts      []AccountRole

	newArgs func() InstructionArgs
}

// InstructionArgs is implemented by the argument struct of every
// instruction in this package.
type InstructionArgs interface {
	instruction() *InstructionDef
	marshal(e *binary.Encoder)
	unmarshal(d *binary.Decoder) error
}

// AccountRef is the element type of an accounts struct: a public key when
// building, an index into the message account list when projecting.
type AccountRef interface {
	ed25519.PublicKey | int
}

// AccountIndexes is the named projection of a compiled instruction's account
// index array. Trailing holds indexes beyond the declared roles.
type AccountIndexes[A any] struct {
	Accounts A
	Trailing []int
}

// MissingAccountIndexError is returned when an index array is shorter than
// the instruction's role table.
type MissingAccountIndexError struct {
	Instruction string
	Field       string
	Position    int
}

func (e *MissingAccountIndexError) Error() string {
	return fmt.Sprintf("%s: missing account index for %s at position %d", e.Instruction, e.Field, e.Position)
}

// DecodedInstruction is the result of DecodeInstructionData. Callers type
// switch on Args, which is always a pointer to the variant's args struct.
type DecodedInstruction struct {
	Def  *InstructionDef
	Args InstructionArgs
}

type instructionOptions struct {
	programID ed25519.PublicKey
	remaining []solana.AccountMeta
}

type InstructionOption func(*instructionOptions)

// WithProgramID builds the instruction against a different deployment of the
// program.
func WithProgramID(programID ed25519.PublicKey) InstructionOption {
	return func(o *instructionOptions) {
		o.programID = programID
	}
}

// WithRemainingAccounts appends accounts after the declared roles.
func WithRemainingAccounts(accounts ...solana.AccountMeta) InstructionOption {
	return func(o *instructionOptions) {
		o.remaining = append(o.remaining, accounts...)
	}
}

var instructionsByDiscriminator, instructionsByName = indexInstructions(instructionDefs)

func indexInstructions(defs []*InstructionDef) (map[Discriminator]*InstructionDef, map[string]*InstructionDef) {
	byDiscriminator := make(map[Discriminator]*InstructionDef, len(defs))
	byName := make(map[string]*InstructionDef, len(defs))
	for _, def := range defs {
		if _, ok := byDiscriminator[def.Discriminator]; ok {
			panic(fmt.Sprintf("duplicate instruction discriminator %s", def.Discriminator))
		}
		byDiscriminator[def.Discriminator] = def
		byName[def.Name] = def
	}
	return byDiscriminator, byName
}

// Instructions returns every instruction definition in declaration order.
func Instructions() []*InstructionDef {
	return append([]*InstructionDef(nil), instructionDefs...)
}

func LookupInstruction(name string) (*InstructionDef, bool) {
	def, ok := instructionsByName[name]
	return def, ok
}

func LookupInstructionByDiscriminator(d Discriminator) (*InstructionDef, bool) {
	def, ok := instructionsByDiscriminator[d]
	return def, ok
}

// EncodeInstructionData returns the discriminator followed by the Borsh
// encoded arguments.
func EncodeInstructionData(args InstructionArgs) []byte {
	def := args.instruction()
	e := binary.NewEncoder(64)
	e.PutFixed(def.Discriminator[:])
	args.marshal(e)
	return e.Bytes()
}

// DecodeInstructionData identifies the variant from the leading discriminator
// and decodes its arguments. Bytes after the arguments are ignored.
func DecodeInstructionData(data []byte) (*DecodedInstruction, error) {
	d := binary.NewDecoder(data)

	var discriminator Discriminator
	if err := d.GetFixed(discriminator[:]); err != nil {
		return nil, errors.Wrap(err, "discriminator")
	}

	def, ok := instructionsByDiscriminator[discriminator]
	if !ok {
		return nil, ErrInvalidDiscriminator
	}

	args := def.newArgs()
	if err := args.unmarshal(d); err != nil {
		return nil, errors.Wrap(err, def.Name)
	}
	return &DecodedInstruction{Def: def, Args: args}, nil
}

// ResolveAccountIndexes maps an account index array onto the role table,
// returning one index per role and any trailing indexes.
func (def *InstructionDef) ResolveAccountIndexes(indexes []byte) (named []int, trailing []int, err error) {
	if len(indexes) < len(def.Accounts) {
		position := len(indexes)
		return nil, nil, &MissingAccountIndexError{
			Instruction: def.Name,
			Field:       def.Accounts[position].Name,
			Position:    position,
		}
	}

	named = make([]int, len(def.Accounts))
	for i := range def.Accounts {
		named[i] = int(indexes[i])
	}
	for _, index := range indexes[len(def.Accounts):] {
		trailing = append(trailing, int(index))
	}
	return named, trailing, nil
}

func newInstruction(args InstructionArgs, keys []*ed25519.PublicKey, opts []InstructionOption) solana.Instruction {
	o := instructionOptions{programID: PROGRAM_ID}
	for _, opt := range opts {
		opt(&o)
	}

	def := args.instruction()
	accounts := make([]solana.AccountMeta, 0, len(def.Accounts)+len(o.remaining))
	for i, role := range def.Accounts {
		accounts = append(accounts, solana.AccountMeta{
			PublicKey:  *keys[i],
			IsSigner:   role.IsSigner,
			IsWritable: role.IsWritable,
		})
	}
	accounts = append(accounts, o.remaining...)

	return solana.NewInstruction(o.programID, EncodeInstructionData(args), accounts...)
}

func parseAccountIndexes[A any, PA interface {
	*A
	fields() []*int
}](def *InstructionDef, indexes []byte) (*AccountIndexes[A], error) {
	named, trailing, err := def.ResolveAccountIndexes(indexes)
	if err != nil {
		return nil, err
	}

	out := &AccountIndexes[A]{Trailing: trailing}
	for i, field := range PA(&out.Accounts).fields() {
		*field = named[i]
	}
	return out, nil
}
