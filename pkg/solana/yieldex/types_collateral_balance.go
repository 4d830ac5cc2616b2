package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

const (
	CollateralBalanceSize = (32 + // mint
		8 + // amount
		2 + // haircut_bps
		1 + // decimals
		5) // padding
)

// CollateralBalance is a zero-copy view over a single C-layout record of 48 bytes.
type CollateralBalance struct {
	data []byte
}

func (c CollateralBalance) Bytes() []byte { return c.data }

const (
	collateralBalanceMintOffset       = 0
	collateralBalanceAmountOffset     = 32
	collateralBalanceHaircutBpsOffset = 40
	collateralBalanceDecimalsOffset   = 42
)

func (c CollateralBalance) Mint() ed25519.PublicKey { return binary.KeyAt(c.data, collateralBalanceMintOffset) }
func (c CollateralBalance) SetMint(v ed25519.PublicKey) { binary.PutKeyAt(c.data, collateralBalanceMintOffset, v) }
func (c CollateralBalance) Amount() uint64 { return binary.Uint64At(c.data, collateralBalanceAmountOffset) }
func (c CollateralBalance) SetAmount(v uint64) { binary.PutUint64At(c.data, collateralBalanceAmountOffset, v) }
func (c CollateralBalance) HaircutBps() uint16 { return binary.Uint16At(c.data, collateralBalanceHaircutBpsOffset) }
func (c CollateralBalance) SetHaircutBps(v uint16) { binary.PutUint16At(c.data, collateralBalanceHaircutBpsOffset, v) }
func (c CollateralBalance) Decimals() uint8 { return c.data[collateralBalanceDecimalsOffset] }
func (c CollateralBalance) SetDecimals(v uint8) { c.data[collateralBalanceDecimalsOffset] = v }

func (c CollateralBalance) Fields() []Field {
	return []Field{
		{Name: "mint", Value: c.Mint()},
		{Name: "amount", Value: c.Amount()},
		{Name: "haircut_bps", Value: c.HaircutBps()},
		{Name: "decimals", Value: c.Decimals()},
	}
}
