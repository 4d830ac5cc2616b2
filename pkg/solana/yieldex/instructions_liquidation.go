package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var LiquidatePositionInstructionDiscriminator = Discriminator{0xbb, 0x4a, 0xe5, 0x95, 0x66, 0x51, 0xdd, 0x44}

var LiquidatePositionInstruction = &InstructionDef{
	Name:          "liquidate_position",
	Discriminator: LiquidatePositionInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "liquidator", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
		{Name: "liquidator_margin_account", IsWritable: true},
		{Name: "liquidatee_margin_account", IsWritable: true},
		{Name: "insurance_fund", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(LiquidatePositionInstructionArgs) },
}

type LiquidatePositionInstructionArgs struct {
	MaxSize uint64
}

func (*LiquidatePositionInstructionArgs) instruction() *InstructionDef { return LiquidatePositionInstruction }

func (args *LiquidatePositionInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.MaxSize)
}

func (args *LiquidatePositionInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.MaxSize, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "max_size")
	}
	return nil
}

type LiquidatePositionAccounts[T AccountRef] struct {
	Liquidator              T
	Exchange                T
	Market                  T
	Oracle                  T
	LiquidatorMarginAccount T
	LiquidateeMarginAccount T
	InsuranceFund           T
	EventAuthority          T
	Program                 T
}

func (a *LiquidatePositionAccounts[T]) fields() []*T {
	return []*T{
		&a.Liquidator,
		&a.Exchange,
		&a.Market,
		&a.Oracle,
		&a.LiquidatorMarginAccount,
		&a.LiquidateeMarginAccount,
		&a.InsuranceFund,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	LiquidatePositionInstructionAccounts = LiquidatePositionAccounts[ed25519.PublicKey]
	LiquidatePositionAccountIndexes      = AccountIndexes[LiquidatePositionAccounts[int]]
)

func NewLiquidatePositionInstruction(
	accounts *LiquidatePositionInstructionAccounts,
	args *LiquidatePositionInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseLiquidatePositionAccountIndexes(indexes []byte) (*LiquidatePositionAccountIndexes, error) {
	return parseAccountIndexes[LiquidatePositionAccounts[int]](LiquidatePositionInstruction, indexes)
}

var LiquidateLpPositionInstructionDiscriminator = Discriminator{0xc2, 0x02, 0xf2, 0x57, 0x9c, 0xb8, 0x25, 0xbb}

var LiquidateLpPositionInstruction = &InstructionDef{
	Name:          "liquidate_lp_position",
	Discriminator: LiquidateLpPositionInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "liquidator", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
		{Name: "liquidator_margin_account", IsWritable: true},
		{Name: "liquidatee_margin_account", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
		{Name: "tick_array_lower", IsWritable: true},
		{Name: "tick_array_upper", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(LiquidateLpPositionInstructionArgs) },
}

type LiquidateLpPositionInstructionArgs struct {
	LiquidityAmount binary.Uint128
}

func (*LiquidateLpPositionInstructionArgs) instruction() *InstructionDef { return LiquidateLpPositionInstruction }

func (args *LiquidateLpPositionInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint128(args.LiquidityAmount)
}

func (args *LiquidateLpPositionInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.LiquidityAmount, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "liquidity_amount")
	}
	return nil
}

type LiquidateLpPositionAccounts[T AccountRef] struct {
	Liquidator              T
	Exchange                T
	Market                  T
	Oracle                  T
	LiquidatorMarginAccount T
	LiquidateeMarginAccount T
	LpPosition              T
	TickArrayLower          T
	TickArrayUpper          T
	EventAuthority          T
	Program                 T
}

func (a *LiquidateLpPositionAccounts[T]) fields() []*T {
	return []*T{
		&a.Liquidator,
		&a.Exchange,
		&a.Market,
		&a.Oracle,
		&a.LiquidatorMarginAccount,
		&a.LiquidateeMarginAccount,
		&a.LpPosition,
		&a.TickArrayLower,
		&a.TickArrayUpper,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	LiquidateLpPositionInstructionAccounts = LiquidateLpPositionAccounts[ed25519.PublicKey]
	LiquidateLpPositionAccountIndexes      = AccountIndexes[LiquidateLpPositionAccounts[int]]
)

func NewLiquidateLpPositionInstruction(
	accounts *LiquidateLpPositionInstructionAccounts,
	args *LiquidateLpPositionInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseLiquidateLpPositionAccountIndexes(indexes []byte) (*LiquidateLpPositionAccountIndexes, error) {
	return parseAccountIndexes[LiquidateLpPositionAccounts[int]](LiquidateLpPositionInstruction, indexes)
}

var LiquidateCollateralInstructionDiscriminator = Discriminator{0xa0, 0xc7, 0x4e, 0x8d, 0x8c, 0x92, 0xa6, 0xd4}

var LiquidateCollateralInstruction = &InstructionDef{
	Name:          "liquidate_collateral",
	Discriminator: LiquidateCollateralInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "liquidator", IsSigner: true},
		{Name: "exchange"},
		{Name: "oracle"},
		{Name: "liquidator_margin_account", IsWritable: true},
		{Name: "liquidatee_margin_account", IsWritable: true},
		{Name: "asset_mint"},
		{Name: "liability_mint"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(LiquidateCollateralInstructionArgs) },
}

type LiquidateCollateralInstructionArgs struct {
	MaxAmount uint64
	MinOut    uint64
}

func (*LiquidateCollateralInstructionArgs) instruction() *InstructionDef { return LiquidateCollateralInstruction }

func (args *LiquidateCollateralInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.MaxAmount)
	e.PutUint64(args.MinOut)
}

func (args *LiquidateCollateralInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.MaxAmount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "max_amount")
	}
	if args.MinOut, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "min_out")
	}
	return nil
}

type LiquidateCollateralAccounts[T AccountRef] struct {
	Liquidator              T
	Exchange                T
	Oracle                  T
	LiquidatorMarginAccount T
	LiquidateeMarginAccount T
	AssetMint               T
	LiabilityMint           T
	EventAuthority          T
	Program                 T
}

func (a *LiquidateCollateralAccounts[T]) fields() []*T {
	return []*T{
		&a.Liquidator,
		&a.Exchange,
		&a.Oracle,
		&a.LiquidatorMarginAccount,
		&a.LiquidateeMarginAccount,
		&a.AssetMint,
		&a.LiabilityMint,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	LiquidateCollateralInstructionAccounts = LiquidateCollateralAccounts[ed25519.PublicKey]
	LiquidateCollateralAccountIndexes      = AccountIndexes[LiquidateCollateralAccounts[int]]
)

func NewLiquidateCollateralInstruction(
	accounts *LiquidateCollateralInstructionAccounts,
	args *LiquidateCollateralInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseLiquidateCollateralAccountIndexes(indexes []byte) (*LiquidateCollateralAccountIndexes, error) {
	return parseAccountIndexes[LiquidateCollateralAccounts[int]](LiquidateCollateralInstruction, indexes)
}

var FlagLiquidatableInstructionDiscriminator = Discriminator{0x47, 0xa4, 0x72, 0x74, 0x5d, 0xac, 0xea, 0x10}

var FlagLiquidatableInstruction = &InstructionDef{
	Name:          "flag_liquidatable",
	Discriminator: FlagLiquidatableInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "margin_account", IsWritable: true},
		{Name: "oracle"},
	},
	newArgs: func() InstructionArgs { return new(FlagLiquidatableInstructionArgs) },
}

type FlagLiquidatableInstructionArgs struct{}

func (*FlagLiquidatableInstructionArgs) instruction() *InstructionDef { return FlagLiquidatableInstruction }

func (*FlagLiquidatableInstructionArgs) marshal(*binary.Encoder)         {}
func (*FlagLiquidatableInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type FlagLiquidatableAccounts[T AccountRef] struct {
	Keeper        T
	Exchange      T
	MarginAccount T
	Oracle        T
}

func (a *FlagLiquidatableAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.MarginAccount,
		&a.Oracle,
	}
}

type (
	FlagLiquidatableInstructionAccounts = FlagLiquidatableAccounts[ed25519.PublicKey]
	FlagLiquidatableAccountIndexes      = AccountIndexes[FlagLiquidatableAccounts[int]]
)

func NewFlagLiquidatableInstruction(accounts *FlagLiquidatableInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&FlagLiquidatableInstructionArgs{}, accounts.fields(), opts)
}

func ParseFlagLiquidatableAccountIndexes(indexes []byte) (*FlagLiquidatableAccountIndexes, error) {
	return parseAccountIndexes[FlagLiquidatableAccounts[int]](FlagLiquidatableInstruction, indexes)
}

var ClearLiquidationFlagInstructionDiscriminator = Discriminator{0xc5, 0x48, 0x08, 0x18, 0xa0, 0x68, 0xd9, 0x0e}

var ClearLiquidationFlagInstruction = &InstructionDef{
	Name:          "clear_liquidation_flag",
	Discriminator: ClearLiquidationFlagInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "margin_account", IsWritable: true},
		{Name: "oracle"},
	},
	newArgs: func() InstructionArgs { return new(ClearLiquidationFlagInstructionArgs) },
}

type ClearLiquidationFlagInstructionArgs struct{}

func (*ClearLiquidationFlagInstructionArgs) instruction() *InstructionDef { return ClearLiquidationFlagInstruction }

func (*ClearLiquidationFlagInstructionArgs) marshal(*binary.Encoder)         {}
func (*ClearLiquidationFlagInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type ClearLiquidationFlagAccounts[T AccountRef] struct {
	Keeper        T
	Exchange      T
	MarginAccount T
	Oracle        T
}

func (a *ClearLiquidationFlagAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.MarginAccount,
		&a.Oracle,
	}
}

type (
	ClearLiquidationFlagInstructionAccounts = ClearLiquidationFlagAccounts[ed25519.PublicKey]
	ClearLiquidationFlagAccountIndexes      = AccountIndexes[ClearLiquidationFlagAccounts[int]]
)

func NewClearLiquidationFlagInstruction(accounts *ClearLiquidationFlagInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&ClearLiquidationFlagInstructionArgs{}, accounts.fields(), opts)
}

func ParseClearLiquidationFlagAccountIndexes(indexes []byte) (*ClearLiquidationFlagAccountIndexes, error) {
	return parseAccountIndexes[ClearLiquidationFlagAccounts[int]](ClearLiquidationFlagInstruction, indexes)
}

var ResolveBankruptcyInstructionDiscriminator = Discriminator{0x52, 0xfd, 0xbb, 0x1d, 0x66, 0x13, 0x23, 0xf8}

var ResolveBankruptcyInstruction = &InstructionDef{
	Name:          "resolve_bankruptcy",
	Discriminator: ResolveBankruptcyInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "insurance_fund", IsWritable: true},
		{Name: "insurance_vault", IsWritable: true},
		{Name: "quote_vault", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(ResolveBankruptcyInstructionArgs) },
}

type ResolveBankruptcyInstructionArgs struct{}

func (*ResolveBankruptcyInstructionArgs) instruction() *InstructionDef { return ResolveBankruptcyInstruction }

func (*ResolveBankruptcyInstructionArgs) marshal(*binary.Encoder)         {}
func (*ResolveBankruptcyInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type ResolveBankruptcyAccounts[T AccountRef] struct {
	Keeper         T
	Exchange       T
	Market         T
	MarginAccount  T
	InsuranceFund  T
	InsuranceVault T
	QuoteVault     T
	TokenProgram   T
	EventAuthority T
	Program        T
}

func (a *ResolveBankruptcyAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.Market,
		&a.MarginAccount,
		&a.InsuranceFund,
		&a.InsuranceVault,
		&a.QuoteVault,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	ResolveBankruptcyInstructionAccounts = ResolveBankruptcyAccounts[ed25519.PublicKey]
	ResolveBankruptcyAccountIndexes      = AccountIndexes[ResolveBankruptcyAccounts[int]]
)

func NewResolveBankruptcyInstruction(accounts *ResolveBankruptcyInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&ResolveBankruptcyInstructionArgs{}, accounts.fields(), opts)
}

func ParseResolveBankruptcyAccountIndexes(indexes []byte) (*ResolveBankruptcyAccountIndexes, error) {
	return parseAccountIndexes[ResolveBankruptcyAccounts[int]](ResolveBankruptcyInstruction, indexes)
}

var DepositInsuranceFundInstructionDiscriminator = Discriminator{0xed, 0x00, 0x5b, 0x1c, 0x57, 0x30, 0xef, 0xf8}

var DepositInsuranceFundInstruction = &InstructionDef{
	Name:          "deposit_insurance_fund",
	Discriminator: DepositInsuranceFundInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "depositor", IsSigner: true},
		{Name: "insurance_fund", IsWritable: true},
		{Name: "depositor_token_account", IsWritable: true},
		{Name: "insurance_vault", IsWritable: true},
		{Name: "token_program"},
	},
	newArgs: func() InstructionArgs { return new(DepositInsuranceFundInstructionArgs) },
}

type DepositInsuranceFundInstructionArgs struct {
	Amount uint64
}

func (*DepositInsuranceFundInstructionArgs) instruction() *InstructionDef { return DepositInsuranceFundInstruction }

func (args *DepositInsuranceFundInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *DepositInsuranceFundInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type DepositInsuranceFundAccounts[T AccountRef] struct {
	Depositor             T
	InsuranceFund         T
	DepositorTokenAccount T
	InsuranceVault        T
	TokenProgram          T
}

func (a *DepositInsuranceFundAccounts[T]) fields() []*T {
	return []*T{
		&a.Depositor,
		&a.InsuranceFund,
		&a.DepositorTokenAccount,
		&a.InsuranceVault,
		&a.TokenProgram,
	}
}

type (
	DepositInsuranceFundInstructionAccounts = DepositInsuranceFundAccounts[ed25519.PublicKey]
	DepositInsuranceFundAccountIndexes      = AccountIndexes[DepositInsuranceFundAccounts[int]]
)

func NewDepositInsuranceFundInstruction(
	accounts *DepositInsuranceFundInstructionAccounts,
	args *DepositInsuranceFundInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseDepositInsuranceFundAccountIndexes(indexes []byte) (*DepositInsuranceFundAccountIndexes, error) {
	return parseAccountIndexes[DepositInsuranceFundAccounts[int]](DepositInsuranceFundInstruction, indexes)
}

var WithdrawInsuranceFundInstructionDiscriminator = Discriminator{0xe4, 0xc4, 0xe6, 0x6d, 0x01, 0x5f, 0xab, 0xc4}

var WithdrawInsuranceFundInstruction = &InstructionDef{
	Name:          "withdraw_insurance_fund",
	Discriminator: WithdrawInsuranceFundInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "insurance_fund", IsWritable: true},
		{Name: "insurance_vault", IsWritable: true},
		{Name: "destination", IsWritable: true},
		{Name: "token_program"},
	},
	newArgs: func() InstructionArgs { return new(WithdrawInsuranceFundInstructionArgs) },
}

type WithdrawInsuranceFundInstructionArgs struct {
	Amount uint64
}

func (*WithdrawInsuranceFundInstructionArgs) instruction() *InstructionDef { return WithdrawInsuranceFundInstruction }

func (args *WithdrawInsuranceFundInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *WithdrawInsuranceFundInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type WithdrawInsuranceFundAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	InsuranceFund  T
	InsuranceVault T
	Destination    T
	TokenProgram   T
}

func (a *WithdrawInsuranceFundAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.InsuranceFund,
		&a.InsuranceVault,
		&a.Destination,
		&a.TokenProgram,
	}
}

type (
	WithdrawInsuranceFundInstructionAccounts = WithdrawInsuranceFundAccounts[ed25519.PublicKey]
	WithdrawInsuranceFundAccountIndexes      = AccountIndexes[WithdrawInsuranceFundAccounts[int]]
)

func NewWithdrawInsuranceFundInstruction(
	accounts *WithdrawInsuranceFundInstructionAccounts,
	args *WithdrawInsuranceFundInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseWithdrawInsuranceFundAccountIndexes(indexes []byte) (*WithdrawInsuranceFundAccountIndexes, error) {
	return parseAccountIndexes[WithdrawInsuranceFundAccounts[int]](WithdrawInsuranceFundInstruction, indexes)
}
