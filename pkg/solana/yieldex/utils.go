package yieldex

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}

// Discriminator is the 8-byte tag prefixing instruction data, account data
// and event payloads.
type Discriminator [8]byte

// ComputeDiscriminator derives the tag for name in the given namespace
// ("global", "account" or "event").
func ComputeDiscriminator(namespace, name string) Discriminator {
	var d Discriminator
	h := sha256.Sum256([]byte(namespace + ":" + name))
	copy(d[:], h[:len(d)])
	return d
}

func (d Discriminator) String() string {
	return fmt.Sprintf("%x", d[:])
}

func enumString(typeName string, names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typeName, v)
}

func getEnum[E ~uint8](d *binary.Decoder, variants int) (E, error) {
	tag, err := d.GetEnumTag(variants)
	return E(tag), err
}
