package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// MaxTransactionSize is the largest serialized transaction a packet carries.
const MaxTransactionSize = 1232

type Signature [ed25519.SignatureSize]byte

func (s Signature) String() string {
	return base58.Encode(s[:])
}

type Transaction struct {
	Signatures []Signature
	Message    Message
}

// NewTransaction compiles instructions into an unsigned legacy transaction
// with one empty signature slot per required signer.
func NewTransaction(payer ed25519.PublicKey, instructions ...Instruction) Transaction {
	m := NewMessage(payer, instructions...)
	return Transaction{
		Signatures: make([]Signature, m.Header.NumSignatures),
		Message:    m,
	}
}

// Sign fills the signature slots of the given signers.
func (t *Transaction) Sign(signers ...ed25519.PrivateKey) error {
	payload := t.Message.Marshal()

	for _, signer := range signers {
		pub := signer.Public().(ed25519.PublicKey)

		index := -1
		for i := 0; i < int(t.Message.Header.NumSignatures) && i < len(t.Message.Accounts); i++ {
			if pub.Equal(t.Message.Accounts[i]) {
				index = i
				break
			}
		}
		if index < 0 || index >= len(t.Signatures) {
			return errors.Errorf("signing account %s is not a required signer", base58.Encode(pub))
		}

		copy(t.Signatures[index][:], ed25519.Sign(signer, payload))
	}
	return nil
}

func (t Transaction) Marshal() []byte {
	b := mustAppendLen(nil, len(t.Signatures))
	for _, s := range t.Signatures {
		b = append(b, s[:]...)
	}
	return append(b, t.Message.Marshal()...)
}

func (t *Transaction) Unmarshal(b []byte) error {
	r := &reader{data: b}

	numSignatures, err := r.len()
	if err != nil {
		return errors.Wrap(err, "failed to read signature len")
	}
	t.Signatures = make([]Signature, numSignatures)
	for i := range t.Signatures {
		s, err := r.bytes(ed25519.SignatureSize)
		if err != nil {
			return errors.Wrapf(err, "failed to read signature at %d", i)
		}
		copy(t.Signatures[i][:], s)
	}

	if err := t.Message.read(r); err != nil {
		return err
	}
	if len(r.data) != r.offset {
		return errors.Errorf("%d trailing bytes after transaction", len(r.data)-r.offset)
	}
	if len(t.Signatures) != int(t.Message.Header.NumSignatures) {
		return errors.Errorf("%d signatures for %d required signers", len(t.Signatures), t.Message.Header.NumSignatures)
	}
	return nil
}
