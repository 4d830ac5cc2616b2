package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

var (
	ErrInvalidDiscriminator  = errors.New("invalid instruction discriminator")
	ErrInvalidAccountData    = errors.New("invalid account data")
	ErrDiscriminatorMismatch = errors.New("account discriminator mismatch")
	ErrInsufficientLength    = errors.New("account data too short")
	ErrUnknownAccount        = errors.New("unknown account discriminator")
	ErrUnknownEvent          = errors.New("unknown event discriminator")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("4ydriYXG8818H9WoHijuzuLUDNPug5rVqD6VyyF2EEjx")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID    = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SPL_TOKEN_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))

	SYSVAR_RENT_PUBKEY = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)
