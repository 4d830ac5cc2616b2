package yieldex

import (
	"bytes"
	"fmt"
)

// AccountDataError reports why account data could not be decoded. It matches
// ErrInvalidAccountData as well as the underlying cause under errors.Is.
type AccountDataError struct {
	Account string
	Err     error
}

func newAccountDataError(account string, err error) error {
	return &AccountDataError{Account: account, Err: err}
}

func (e *AccountDataError) Error() string {
	return fmt.Sprintf("invalid %s account data: %s", e.Account, e.Err)
}

func (e *AccountDataError) Unwrap() error {
	return e.Err
}

func (e *AccountDataError) Is(target error) bool {
	return target == ErrInvalidAccountData
}

// Field is a named value of a zero-copy view, listed in layout order.
type Field struct {
	Name  string
	Value interface{}
}

func loadPod(account string, data []byte, discriminator Discriminator, size int) ([]byte, error) {
	if len(data) < len(discriminator) {
		return nil, newAccountDataError(account, ErrInsufficientLength)
	}
	if !bytes.Equal(data[:len(discriminator)], discriminator[:]) {
		return nil, newAccountDataError(account, ErrDiscriminatorMismatch)
	}
	if len(data) < size {
		return nil, newAccountDataError(account, ErrInsufficientLength)
	}
	return data[len(discriminator):size:size], nil
}

func initPod(account string, data []byte, discriminator Discriminator, size int) ([]byte, error) {
	if len(data) < size {
		return nil, newAccountDataError(account, ErrInsufficientLength)
	}
	copy(data, discriminator[:])
	return data[len(discriminator):size:size], nil
}

// AccountKind describes one account type owned by the program. Size is the
// exact data length for zero-copy kinds and zero for Borsh encoded kinds.
type AccountKind struct {
	Name          string
	Discriminator Discriminator
	Size          int

	decode func(data []byte) (interface{}, error)
}

func (k *AccountKind) IsZeroCopy() bool {
	return k.Size > 0
}

func dynamicKind[T any, PT interface {
	*T
	Unmarshal([]byte) error
}](name string, discriminator Discriminator) *AccountKind {
	return &AccountKind{
		Name:          name,
		Discriminator: discriminator,
		decode: func(data []byte) (interface{}, error) {
			v := PT(new(T))
			if err := v.Unmarshal(data); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

func podKind[V any](name string, discriminator Discriminator, size int, load func([]byte) (V, error)) *AccountKind {
	return &AccountKind{
		Name:          name,
		Discriminator: discriminator,
		Size:          size,
		decode: func(data []byte) (interface{}, error) {
			return load(data)
		},
	}
}

var accountKinds = []*AccountKind{
	dynamicKind[ExchangeAccount]("Exchange", ExchangeAccountDiscriminator),
	dynamicKind[MarketGroupAccount]("MarketGroup", MarketGroupAccountDiscriminator),
	dynamicKind[OrderBookAccount]("OrderBook", OrderBookAccountDiscriminator),
	dynamicKind[InsuranceFundAccount]("InsuranceFund", InsuranceFundAccountDiscriminator),
	dynamicKind[EarnVaultAccount]("EarnVault", EarnVaultAccountDiscriminator),
	podKind("Market", MarketAccountDiscriminator, MarketAccountSize, LoadMarketAccount),
	podKind("MarginAccount", MarginAccountDiscriminator, MarginAccountSize, LoadMarginAccount),
	podKind("LpPosition", LpPositionAccountDiscriminator, LpPositionAccountSize, LoadLpPositionAccount),
	podKind("TickArray", TickArrayAccountDiscriminator, TickArrayAccountSize, LoadTickArrayAccount),
	podKind("RateOracle", RateOracleAccountDiscriminator, RateOracleAccountSize, LoadRateOracleAccount),
	podKind("Order", OrderAccountDiscriminator, OrderAccountSize, LoadOrderAccount),
	podKind("EpochState", EpochStateAccountDiscriminator, EpochStateAccountSize, LoadEpochStateAccount),
}

var accountKindsByDiscriminator = func() map[Discriminator]*AccountKind {
	m := make(map[Discriminator]*AccountKind, len(accountKinds))
	for _, kind := range accountKinds {
		m[kind.Discriminator] = kind
	}
	return m
}()

func AccountKinds() []*AccountKind {
	return append([]*AccountKind(nil), accountKinds...)
}

// DecodeAccount dispatches on the leading discriminator. Borsh encoded kinds
// decode to a pointer to their struct, zero-copy kinds to a view aliasing
// data.
func DecodeAccount(data []byte) (*AccountKind, interface{}, error) {
	var discriminator Discriminator
	if len(data) < len(discriminator) {
		return nil, nil, newAccountDataError("unknown", ErrInsufficientLength)
	}
	copy(discriminator[:], data)

	kind, ok := accountKindsByDiscriminator[discriminator]
	if !ok {
		return nil, nil, ErrUnknownAccount
	}

	v, err := kind.decode(data)
	if err != nil {
		return kind, nil, err
	}
	return kind, v, nil
}
