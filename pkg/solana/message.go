package solana

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"sort"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/shortvec"
)

// versionPrefix marks a versioned message. Legacy messages start with the
// signature count, which never has the high bit set.
const versionPrefix = 0x80

type Blockhash [sha256.Size]byte

type MessageVersion uint8

const (
	MessageVersionLegacy MessageVersion = iota
	MessageVersion0
)

type Header struct {
	NumSignatures     byte
	NumReadonlySigned byte
	NumReadOnly       byte
}

// MessageAddressTableLookup references accounts stored in an address lookup
// table by their positions in that table.
type MessageAddressTableLookup struct {
	PublicKey       ed25519.PublicKey
	WritableIndexes []byte
	ReadonlyIndexes []byte
}

// LoadedAddresses are the keys a v0 message's lookups resolve to, in lookup
// order.
type LoadedAddresses struct {
	Writable []ed25519.PublicKey
	Readonly []ed25519.PublicKey
}

type Message struct {
	Version             MessageVersion
	Header              Header
	Accounts            []ed25519.PublicKey
	RecentBlockhash     Blockhash
	Instructions        []CompiledInstruction
	AddressTableLookups []MessageAddressTableLookup
}

// NewMessage compiles instructions into a legacy message paid for by payer.
// Keys are deduplicated with their access merged, then ordered by rank with
// first appearance breaking ties.
func NewMessage(payer ed25519.PublicKey, instructions ...Instruction) Message {
	metas := []AccountMeta{{PublicKey: payer, IsSigner: true, IsWritable: true, isPayer: true}}
	for _, ix := range instructions {
		metas = append(metas, ix.Accounts...)
		metas = append(metas, AccountMeta{PublicKey: ix.Program, isProgram: true})
	}

	unique := make([]AccountMeta, 0, len(metas))
	seen := make(map[string]int, len(metas))
	for _, meta := range metas {
		if i, ok := seen[string(meta.PublicKey)]; ok {
			unique[i].merge(meta)
			continue
		}
		seen[string(meta.PublicKey)] = len(unique)
		unique = append(unique, meta)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].rank() < unique[j].rank()
	})

	var m Message
	positions := make(map[string]byte, len(unique))
	for i, meta := range unique {
		positions[string(meta.PublicKey)] = byte(i)
		m.Accounts = append(m.Accounts, meta.PublicKey)

		switch {
		case meta.IsSigner:
			m.Header.NumSignatures++
			if !meta.IsWritable {
				m.Header.NumReadonlySigned++
			}
		case !meta.IsWritable:
			m.Header.NumReadOnly++
		}
	}

	for _, ix := range instructions {
		compiled := CompiledInstruction{
			ProgramIndex: positions[string(ix.Program)],
			Accounts:     make([]byte, len(ix.Accounts)),
			Data:         ix.Data,
		}
		for i, account := range ix.Accounts {
			compiled.Accounts[i] = positions[string(account.PublicKey)]
		}
		m.Instructions = append(m.Instructions, compiled)
	}

	return m
}

// IsSigner reports whether the static account at index must sign.
func (m Message) IsSigner(index int) bool {
	return index < int(m.Header.NumSignatures)
}

// IsWritable reports whether the account at index may be written. Indexes
// past the static keys refer to loaded addresses, writable ones first.
func (m Message) IsWritable(index int) bool {
	static := len(m.Accounts)
	if index >= static {
		var writable int
		for _, lookup := range m.AddressTableLookups {
			writable += len(lookup.WritableIndexes)
		}
		return index-static < writable
	}

	numSigners := int(m.Header.NumSignatures)
	if index < numSigners {
		return index < numSigners-int(m.Header.NumReadonlySigned)
	}
	return index < static-int(m.Header.NumReadOnly)
}

// ResolveAccountKeys returns the full key list instructions index into: the
// static keys followed by the loaded writable and readonly keys.
func (m Message) ResolveAccountKeys(loaded LoadedAddresses) ([]ed25519.PublicKey, error) {
	var numWritable, numReadonly int
	for _, lookup := range m.AddressTableLookups {
		numWritable += len(lookup.WritableIndexes)
		numReadonly += len(lookup.ReadonlyIndexes)
	}
	if len(loaded.Writable) != numWritable || len(loaded.Readonly) != numReadonly {
		return nil, errors.Errorf(
			"loaded addresses (%d writable, %d readonly) don't match lookups (%d writable, %d readonly)",
			len(loaded.Writable), len(loaded.Readonly), numWritable, numReadonly,
		)
	}

	keys := make([]ed25519.PublicKey, 0, len(m.Accounts)+numWritable+numReadonly)
	keys = append(keys, m.Accounts...)
	keys = append(keys, loaded.Writable...)
	keys = append(keys, loaded.Readonly...)
	return keys, nil
}

// Marshal encodes the message in the wire format of its version.
func (m Message) Marshal() []byte {
	var b []byte
	switch m.Version {
	case MessageVersionLegacy:
	case MessageVersion0:
		b = append(b, versionPrefix|byte(m.Version-MessageVersion0))
	default:
		panic("unsupported message version")
	}

	b = append(b, m.Header.NumSignatures, m.Header.NumReadonlySigned, m.Header.NumReadOnly)

	b = mustAppendLen(b, len(m.Accounts))
	for _, account := range m.Accounts {
		b = append(b, account...)
	}

	b = append(b, m.RecentBlockhash[:]...)

	b = mustAppendLen(b, len(m.Instructions))
	for _, ix := range m.Instructions {
		b = append(b, ix.ProgramIndex)
		b = mustAppendLen(b, len(ix.Accounts))
		b = append(b, ix.Accounts...)
		b = mustAppendLen(b, len(ix.Data))
		b = append(b, ix.Data...)
	}

	if m.Version == MessageVersionLegacy {
		return b
	}

	b = mustAppendLen(b, len(m.AddressTableLookups))
	for _, lookup := range m.AddressTableLookups {
		b = append(b, lookup.PublicKey...)
		b = mustAppendLen(b, len(lookup.WritableIndexes))
		b = append(b, lookup.WritableIndexes...)
		b = mustAppendLen(b, len(lookup.ReadonlyIndexes))
		b = append(b, lookup.ReadonlyIndexes...)
	}
	return b
}

// Unmarshal decodes a legacy or v0 message. Trailing bytes are rejected.
func (m *Message) Unmarshal(b []byte) error {
	r := &reader{data: b}
	if err := m.read(r); err != nil {
		return err
	}
	if len(r.data) != r.offset {
		return errors.Errorf("%d trailing bytes after message", len(r.data)-r.offset)
	}
	return nil
}

func (m *Message) read(r *reader) (err error) {
	*m = Message{}

	first, err := r.peek()
	if err != nil {
		return errors.Wrap(err, "failed to read message prefix")
	}
	if first&versionPrefix != 0 {
		version := first &^ versionPrefix
		if version != 0 {
			return errors.Errorf("unsupported message version %d", version)
		}
		m.Version = MessageVersion0
		r.offset++
	}

	header, err := r.bytes(3)
	if err != nil {
		return errors.Wrap(err, "failed to read header")
	}
	m.Header = Header{NumSignatures: header[0], NumReadonlySigned: header[1], NumReadOnly: header[2]}

	numAccounts, err := r.len()
	if err != nil {
		return errors.Wrap(err, "failed to read account len")
	}
	m.Accounts = make([]ed25519.PublicKey, numAccounts)
	for i := range m.Accounts {
		if m.Accounts[i], err = r.key(); err != nil {
			return errors.Wrapf(err, "failed to read account at index %d", i)
		}
	}
	if int(m.Header.NumSignatures) > numAccounts ||
		int(m.Header.NumReadonlySigned) > int(m.Header.NumSignatures) ||
		int(m.Header.NumReadOnly) > numAccounts-int(m.Header.NumSignatures) {
		return errors.Errorf("header %+v inconsistent with %d accounts", m.Header, numAccounts)
	}

	blockhash, err := r.bytes(len(m.RecentBlockhash))
	if err != nil {
		return errors.Wrap(err, "failed to read recent blockhash")
	}
	copy(m.RecentBlockhash[:], blockhash)

	numInstructions, err := r.len()
	if err != nil {
		return errors.Wrap(err, "failed to read instruction len")
	}
	m.Instructions = make([]CompiledInstruction, numInstructions)
	for i := range m.Instructions {
		if m.Instructions[i], err = r.instruction(); err != nil {
			return errors.Wrapf(err, "failed to read instruction[%d]", i)
		}
	}

	totalAccounts := numAccounts
	if m.Version == MessageVersion0 {
		numLookups, err := r.len()
		if err != nil {
			return errors.Wrap(err, "failed to read address table lookup len")
		}
		m.AddressTableLookups = make([]MessageAddressTableLookup, numLookups)
		for i := range m.AddressTableLookups {
			if m.AddressTableLookups[i], err = r.lookup(); err != nil {
				return errors.Wrapf(err, "failed to read address table lookup[%d]", i)
			}
			totalAccounts += len(m.AddressTableLookups[i].WritableIndexes) + len(m.AddressTableLookups[i].ReadonlyIndexes)
		}
	}

	for i, ix := range m.Instructions {
		if int(ix.ProgramIndex) >= numAccounts {
			return errors.Errorf("program index out of range: %d:%d", i, ix.ProgramIndex)
		}
		for _, index := range ix.Accounts {
			if int(index) >= totalAccounts {
				return errors.Errorf("account index out of range: %d:%d", i, index)
			}
		}
	}
	return nil
}

func mustAppendLen(b []byte, n int) []byte {
	b, err := shortvec.AppendLen(b, n)
	if err != nil {
		panic(err)
	}
	return b
}

type reader struct {
	data   []byte
	offset int
}

func (r *reader) peek() (byte, error) {
	if r.offset >= len(r.data) {
		return 0, errors.New("unexpected end of message")
	}
	return r.data[r.offset], nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n > len(r.data)-r.offset {
		return nil, errors.Errorf("unexpected end of message: need %d bytes at offset %d", n, r.offset)
	}
	out := r.data[r.offset : r.offset+n : r.offset+n]
	r.offset += n
	return out, nil
}

func (r *reader) len() (int, error) {
	n, size, err := shortvec.DecodeLen(r.data[r.offset:])
	if err != nil {
		return 0, err
	}
	r.offset += size
	return n, nil
}

func (r *reader) key() (ed25519.PublicKey, error) {
	b, err := r.bytes(ed25519.PublicKeySize)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

func (r *reader) vec() ([]byte, error) {
	n, err := r.len()
	if err != nil {
		return nil, err
	}
	b, err := r.bytes(n)
	if err != nil || n == 0 {
		return nil, err
	}
	return bytes.Clone(b), nil
}

func (r *reader) instruction() (ix CompiledInstruction, err error) {
	program, err := r.bytes(1)
	if err != nil {
		return ix, errors.Wrap(err, "program index")
	}
	ix.ProgramIndex = program[0]

	if ix.Accounts, err = r.vec(); err != nil {
		return ix, errors.Wrap(err, "accounts")
	}
	if ix.Data, err = r.vec(); err != nil {
		return ix, errors.Wrap(err, "data")
	}
	return ix, nil
}

func (r *reader) lookup() (lookup MessageAddressTableLookup, err error) {
	if lookup.PublicKey, err = r.key(); err != nil {
		return lookup, errors.Wrap(err, "table")
	}
	if lookup.WritableIndexes, err = r.vec(); err != nil {
		return lookup, errors.Wrap(err, "writable indexes")
	}
	if lookup.ReadonlyIndexes, err = r.vec(); err != nil {
		return lookup, errors.Wrap(err, "readonly indexes")
	}
	return lookup, nil
}
