package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var InitializeMarginAccountInstructionDiscriminator = Discriminator{0x43, 0xeb, 0x42, 0x66, 0xa7, 0xab, 0x78, 0xc5}

var InitializeMarginAccountInstruction = &InstructionDef{
	Name:          "initialize_margin_account",
	Discriminator: InitializeMarginAccountInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "exchange"},
		{Name: "margin_account", IsWritable: true},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeMarginAccountInstructionArgs) },
}

type InitializeMarginAccountInstructionArgs struct {
	SubAccountID uint16
	MarginType   MarginType
}

func (*InitializeMarginAccountInstructionArgs) instruction() *InstructionDef { return InitializeMarginAccountInstruction }

func (args *InitializeMarginAccountInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint16(args.SubAccountID)
	putMarginType(e, args.MarginType)
}

func (args *InitializeMarginAccountInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.SubAccountID, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "sub_account_id")
	}
	if args.MarginType, err = getMarginType(d); err != nil {
		return errors.Wrap(err, "margin_type")
	}
	return nil
}

type InitializeMarginAccountAccounts[T AccountRef] struct {
	Owner         T
	Exchange      T
	MarginAccount T
	SystemProgram T
}

func (a *InitializeMarginAccountAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.MarginAccount,
		&a.SystemProgram,
	}
}

type (
	InitializeMarginAccountInstructionAccounts = InitializeMarginAccountAccounts[ed25519.PublicKey]
	InitializeMarginAccountAccountIndexes      = AccountIndexes[InitializeMarginAccountAccounts[int]]
)

func NewInitializeMarginAccountInstruction(
	accounts *InitializeMarginAccountInstructionAccounts,
	args *InitializeMarginAccountInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeMarginAccountAccountIndexes(indexes []byte) (*InitializeMarginAccountAccountIndexes, error) {
	return parseAccountIndexes[InitializeMarginAccountAccounts[int]](InitializeMarginAccountInstruction, indexes)
}

var CloseMarginAccountInstructionDiscriminator = Discriminator{0x69, 0xd7, 0x29, 0xef, 0xa6, 0xcf, 0x01, 0x67}

var CloseMarginAccountInstruction = &InstructionDef{
	Name:          "close_margin_account",
	Discriminator: CloseMarginAccountInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "margin_account", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(CloseMarginAccountInstructionArgs) },
}

type CloseMarginAccountInstructionArgs struct{}

func (*CloseMarginAccountInstructionArgs) instruction() *InstructionDef { return CloseMarginAccountInstruction }

func (*CloseMarginAccountInstructionArgs) marshal(*binary.Encoder)         {}
func (*CloseMarginAccountInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type CloseMarginAccountAccounts[T AccountRef] struct {
	Owner         T
	MarginAccount T
}

func (a *CloseMarginAccountAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.MarginAccount}
}

type (
	CloseMarginAccountInstructionAccounts = CloseMarginAccountAccounts[ed25519.PublicKey]
	CloseMarginAccountAccountIndexes      = AccountIndexes[CloseMarginAccountAccounts[int]]
)

func NewCloseMarginAccountInstruction(accounts *CloseMarginAccountInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&CloseMarginAccountInstructionArgs{}, accounts.fields(), opts)
}

func ParseCloseMarginAccountAccountIndexes(indexes []byte) (*CloseMarginAccountAccountIndexes, error) {
	return parseAccountIndexes[CloseMarginAccountAccounts[int]](CloseMarginAccountInstruction, indexes)
}

var DepositCollateralInstructionDiscriminator = Discriminator{0x9c, 0x83, 0x8e, 0x74, 0x92, 0xf7, 0xa2, 0x78}

var DepositCollateralInstruction = &InstructionDef{
	Name:          "deposit_collateral",
	Discriminator: DepositCollateralInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "exchange"},
		{Name: "margin_account", IsWritable: true},
		{Name: "mint"},
		{Name: "owner_token_account", IsWritable: true},
		{Name: "collateral_vault", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(DepositCollateralInstructionArgs) },
}

type DepositCollateralInstructionArgs struct {
	Amount uint64
}

func (*DepositCollateralInstructionArgs) instruction() *InstructionDef { return DepositCollateralInstruction }

func (args *DepositCollateralInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *DepositCollateralInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type DepositCollateralAccounts[T AccountRef] struct {
	Owner             T
	Exchange          T
	MarginAccount     T
	Mint              T
	OwnerTokenAccount T
	CollateralVault   T
	TokenProgram      T
	EventAuthority    T
	Program           T
}

func (a *DepositCollateralAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.MarginAccount,
		&a.Mint,
		&a.OwnerTokenAccount,
		&a.CollateralVault,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	DepositCollateralInstructionAccounts = DepositCollateralAccounts[ed25519.PublicKey]
	DepositCollateralAccountIndexes      = AccountIndexes[DepositCollateralAccounts[int]]
)

func NewDepositCollateralInstruction(
	accounts *DepositCollateralInstructionAccounts,
	args *DepositCollateralInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseDepositCollateralAccountIndexes(indexes []byte) (*DepositCollateralAccountIndexes, error) {
	return parseAccountIndexes[DepositCollateralAccounts[int]](DepositCollateralInstruction, indexes)
}

var WithdrawCollateralInstructionDiscriminator = Discriminator{0x73, 0x87, 0xa8, 0x6a, 0x8b, 0xd6, 0x8a, 0x96}

var WithdrawCollateralInstruction = &InstructionDef{
	Name:          "withdraw_collateral",
	Discriminator: WithdrawCollateralInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "exchange"},
		{Name: "margin_account", IsWritable: true},
		{Name: "mint"},
		{Name: "owner_token_account", IsWritable: true},
		{Name: "collateral_vault", IsWritable: true},
		{Name: "oracle"},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(WithdrawCollateralInstructionArgs) },
}

type WithdrawCollateralInstructionArgs struct {
	Amount uint64
}

func (*WithdrawCollateralInstructionArgs) instruction() *InstructionDef { return WithdrawCollateralInstruction }

func (args *WithdrawCollateralInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *WithdrawCollateralInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type WithdrawCollateralAccounts[T AccountRef] struct {
	Owner             T
	Exchange          T
	MarginAccount     T
	Mint              T
	OwnerTokenAccount T
	CollateralVault   T
	Oracle            T
	TokenProgram      T
	EventAuthority    T
	Program           T
}

func (a *WithdrawCollateralAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.MarginAccount,
		&a.Mint,
		&a.OwnerTokenAccount,
		&a.CollateralVault,
		&a.Oracle,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	WithdrawCollateralInstructionAccounts = WithdrawCollateralAccounts[ed25519.PublicKey]
	WithdrawCollateralAccountIndexes      = AccountIndexes[WithdrawCollateralAccounts[int]]
)

func NewWithdrawCollateralInstruction(
	accounts *WithdrawCollateralInstructionAccounts,
	args *WithdrawCollateralInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseWithdrawCollateralAccountIndexes(indexes []byte) (*WithdrawCollateralAccountIndexes, error) {
	return parseAccountIndexes[WithdrawCollateralAccounts[int]](WithdrawCollateralInstruction, indexes)
}

var TransferCollateralInstructionDiscriminator = Discriminator{0x9d, 0xa3, 0x3f, 0x1b, 0xf2, 0x48, 0xfb, 0x61}

var TransferCollateralInstruction = &InstructionDef{
	Name:          "transfer_collateral",
	Discriminator: TransferCollateralInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "exchange"},
		{Name: "from_margin_account", IsWritable: true},
		{Name: "to_margin_account", IsWritable: true},
		{Name: "mint"},
	},
	newArgs: func() InstructionArgs { return new(TransferCollateralInstructionArgs) },
}

type TransferCollateralInstructionArgs struct {
	Amount uint64
}

func (*TransferCollateralInstructionArgs) instruction() *InstructionDef { return TransferCollateralInstruction }

func (args *TransferCollateralInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *TransferCollateralInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type TransferCollateralAccounts[T AccountRef] struct {
	Owner             T
	Exchange          T
	FromMarginAccount T
	ToMarginAccount   T
	Mint              T
}

func (a *TransferCollateralAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.FromMarginAccount,
		&a.ToMarginAccount,
		&a.Mint,
	}
}

type (
	TransferCollateralInstructionAccounts = TransferCollateralAccounts[ed25519.PublicKey]
	TransferCollateralAccountIndexes      = AccountIndexes[TransferCollateralAccounts[int]]
)

func NewTransferCollateralInstruction(
	accounts *TransferCollateralInstructionAccounts,
	args *TransferCollateralInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseTransferCollateralAccountIndexes(indexes []byte) (*TransferCollateralAccountIndexes, error) {
	return parseAccountIndexes[TransferCollateralAccounts[int]](TransferCollateralInstruction, indexes)
}

var SetMarginDelegateInstructionDiscriminator = Discriminator{0xd0, 0x7a, 0xbc, 0x71, 0x4a, 0xd6, 0x55, 0x41}

var SetMarginDelegateInstruction = &InstructionDef{
	Name:          "set_margin_delegate",
	Discriminator: SetMarginDelegateInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "margin_account", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetMarginDelegateInstructionArgs) },
}

type SetMarginDelegateInstructionArgs struct {
	Delegate *ed25519.PublicKey
}

func (*SetMarginDelegateInstructionArgs) instruction() *InstructionDef { return SetMarginDelegateInstruction }

func (args *SetMarginDelegateInstructionArgs) marshal(e *binary.Encoder) {
	binary.PutOption(e, args.Delegate, (*binary.Encoder).PutKey)
}

func (args *SetMarginDelegateInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Delegate, err = binary.GetOption(d, (*binary.Decoder).GetKey); err != nil {
		return errors.Wrap(err, "delegate")
	}
	return nil
}

type SetMarginDelegateAccounts[T AccountRef] struct {
	Owner         T
	MarginAccount T
}

func (a *SetMarginDelegateAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.MarginAccount}
}

type (
	SetMarginDelegateInstructionAccounts = SetMarginDelegateAccounts[ed25519.PublicKey]
	SetMarginDelegateAccountIndexes      = AccountIndexes[SetMarginDelegateAccounts[int]]
)

func NewSetMarginDelegateInstruction(
	accounts *SetMarginDelegateInstructionAccounts,
	args *SetMarginDelegateInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetMarginDelegateAccountIndexes(indexes []byte) (*SetMarginDelegateAccountIndexes, error) {
	return parseAccountIndexes[SetMarginDelegateAccounts[int]](SetMarginDelegateInstruction, indexes)
}

var SetMarginTypeInstructionDiscriminator = Discriminator{0x06, 0xe0, 0xa2, 0x46, 0x08, 0x36, 0xed, 0x9c}

var SetMarginTypeInstruction = &InstructionDef{
	Name:          "set_margin_type",
	Discriminator: SetMarginTypeInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "margin_account", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetMarginTypeInstructionArgs) },
}

type SetMarginTypeInstructionArgs struct {
	MarginType MarginType
}

func (*SetMarginTypeInstructionArgs) instruction() *InstructionDef { return SetMarginTypeInstruction }

func (args *SetMarginTypeInstructionArgs) marshal(e *binary.Encoder) {
	putMarginType(e, args.MarginType)
}

func (args *SetMarginTypeInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.MarginType, err = getMarginType(d); err != nil {
		return errors.Wrap(err, "margin_type")
	}
	return nil
}

type SetMarginTypeAccounts[T AccountRef] struct {
	Owner         T
	MarginAccount T
}

func (a *SetMarginTypeAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.MarginAccount}
}

type (
	SetMarginTypeInstructionAccounts = SetMarginTypeAccounts[ed25519.PublicKey]
	SetMarginTypeAccountIndexes      = AccountIndexes[SetMarginTypeAccounts[int]]
)

func NewSetMarginTypeInstruction(
	accounts *SetMarginTypeInstructionAccounts,
	args *SetMarginTypeInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetMarginTypeAccountIndexes(indexes []byte) (*SetMarginTypeAccountIndexes, error) {
	return parseAccountIndexes[SetMarginTypeAccounts[int]](SetMarginTypeInstruction, indexes)
}

var RenameMarginAccountInstructionDiscriminator = Discriminator{0xe9, 0x8e, 0xb0, 0xdc, 0xac, 0x03, 0xc2, 0x48}

var RenameMarginAccountInstruction = &InstructionDef{
	Name:          "rename_margin_account",
	Discriminator: RenameMarginAccountInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "margin_account", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(RenameMarginAccountInstructionArgs) },
}

type RenameMarginAccountInstructionArgs struct {
	Name [32]byte
}

func (*RenameMarginAccountInstructionArgs) instruction() *InstructionDef { return RenameMarginAccountInstruction }

func (args *RenameMarginAccountInstructionArgs) marshal(e *binary.Encoder) {
	e.PutFixed(args.Name[:])
}

func (args *RenameMarginAccountInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if err = d.GetFixed(args.Name[:]); err != nil {
		return errors.Wrap(err, "name")
	}
	return nil
}

type RenameMarginAccountAccounts[T AccountRef] struct {
	Owner         T
	MarginAccount T
}

func (a *RenameMarginAccountAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.MarginAccount}
}

type (
	RenameMarginAccountInstructionAccounts = RenameMarginAccountAccounts[ed25519.PublicKey]
	RenameMarginAccountAccountIndexes      = AccountIndexes[RenameMarginAccountAccounts[int]]
)

func NewRenameMarginAccountInstruction(
	accounts *RenameMarginAccountInstructionAccounts,
	args *RenameMarginAccountInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseRenameMarginAccountAccountIndexes(indexes []byte) (*RenameMarginAccountAccountIndexes, error) {
	return parseAccountIndexes[RenameMarginAccountAccounts[int]](RenameMarginAccountInstruction, indexes)
}

var MintPtYtInstructionDiscriminator = Discriminator{0xf3, 0x2a, 0xc0, 0xf4, 0x38, 0x85, 0xed, 0x3b}

// MintPtYtInstruction splits underlying into principal and yield tokens.
var MintPtYtInstruction = &InstructionDef{
	Name:          "mint_pt_yt",
	Discriminator: MintPtYtInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "owner_underlying_account", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "pt_mint", IsWritable: true},
		{Name: "yt_mint", IsWritable: true},
		{Name: "owner_pt_account", IsWritable: true},
		{Name: "owner_yt_account", IsWritable: true},
		{Name: "token_program"},
	},
	newArgs: func() InstructionArgs { return new(MintPtYtInstructionArgs) },
}

type MintPtYtInstructionArgs struct {
	Amount uint64
}

func (*MintPtYtInstructionArgs) instruction() *InstructionDef { return MintPtYtInstruction }

func (args *MintPtYtInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *MintPtYtInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type MintPtYtAccounts[T AccountRef] struct {
	Owner                  T
	Exchange               T
	Market                 T
	MarginAccount          T
	OwnerUnderlyingAccount T
	PtVault                T
	PtMint                 T
	YtMint                 T
	OwnerPtAccount         T
	OwnerYtAccount         T
	TokenProgram           T
}

func (a *MintPtYtAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.Market,
		&a.MarginAccount,
		&a.OwnerUnderlyingAccount,
		&a.PtVault,
		&a.PtMint,
		&a.YtMint,
		&a.OwnerPtAccount,
		&a.OwnerYtAccount,
		&a.TokenProgram,
	}
}

type (
	MintPtYtInstructionAccounts = MintPtYtAccounts[ed25519.PublicKey]
	MintPtYtAccountIndexes      = AccountIndexes[MintPtYtAccounts[int]]
)

func NewMintPtYtInstruction(
	accounts *MintPtYtInstructionAccounts,
	args *MintPtYtInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseMintPtYtAccountIndexes(indexes []byte) (*MintPtYtAccountIndexes, error) {
	return parseAccountIndexes[MintPtYtAccounts[int]](MintPtYtInstruction, indexes)
}

var RedeemPtYtInstructionDiscriminator = Discriminator{0x30, 0xc2, 0xf5, 0xc6, 0x6e, 0x36, 0x13, 0xcb}

var RedeemPtYtInstruction = &InstructionDef{
	Name:          "redeem_pt_yt",
	Discriminator: RedeemPtYtInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "owner_underlying_account", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "pt_mint", IsWritable: true},
		{Name: "yt_mint", IsWritable: true},
		{Name: "owner_pt_account", IsWritable: true},
		{Name: "owner_yt_account", IsWritable: true},
		{Name: "token_program"},
	},
	newArgs: func() InstructionArgs { return new(RedeemPtYtInstructionArgs) },
}

type RedeemPtYtInstructionArgs struct {
	Amount uint64
}

func (*RedeemPtYtInstructionArgs) instruction() *InstructionDef { return RedeemPtYtInstruction }

func (args *RedeemPtYtInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *RedeemPtYtInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type RedeemPtYtAccounts[T AccountRef] struct {
	Owner                  T
	Exchange               T
	Market                 T
	MarginAccount          T
	OwnerUnderlyingAccount T
	PtVault                T
	PtMint                 T
	YtMint                 T
	OwnerPtAccount         T
	OwnerYtAccount         T
	TokenProgram           T
}

func (a *RedeemPtYtAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.Market,
		&a.MarginAccount,
		&a.OwnerUnderlyingAccount,
		&a.PtVault,
		&a.PtMint,
		&a.YtMint,
		&a.OwnerPtAccount,
		&a.OwnerYtAccount,
		&a.TokenProgram,
	}
}

type (
	RedeemPtYtInstructionAccounts = RedeemPtYtAccounts[ed25519.PublicKey]
	RedeemPtYtAccountIndexes      = AccountIndexes[RedeemPtYtAccounts[int]]
)

func NewRedeemPtYtInstruction(
	accounts *RedeemPtYtInstructionAccounts,
	args *RedeemPtYtInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseRedeemPtYtAccountIndexes(indexes []byte) (*RedeemPtYtAccountIndexes, error) {
	return parseAccountIndexes[RedeemPtYtAccounts[int]](RedeemPtYtInstruction, indexes)
}

var RedeemPtAtMaturityInstructionDiscriminator = Discriminator{0xff, 0x4f, 0xdb, 0x5d, 0x6c, 0x00, 0x6d, 0x57}

var RedeemPtAtMaturityInstruction = &InstructionDef{
	Name:          "redeem_pt_at_maturity",
	Discriminator: RedeemPtAtMaturityInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "owner_pt_account", IsWritable: true},
		{Name: "pt_mint", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "owner_underlying_account", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(RedeemPtAtMaturityInstructionArgs) },
}

type RedeemPtAtMaturityInstructionArgs struct {
	Amount uint64
}

func (*RedeemPtAtMaturityInstructionArgs) instruction() *InstructionDef { return RedeemPtAtMaturityInstruction }

func (args *RedeemPtAtMaturityInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *RedeemPtAtMaturityInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type RedeemPtAtMaturityAccounts[T AccountRef] struct {
	Owner                  T
	Exchange               T
	Market                 T
	OwnerPtAccount         T
	PtMint                 T
	PtVault                T
	OwnerUnderlyingAccount T
	TokenProgram           T
	EventAuthority         T
	Program                T
}

func (a *RedeemPtAtMaturityAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.Market,
		&a.OwnerPtAccount,
		&a.PtMint,
		&a.PtVault,
		&a.OwnerUnderlyingAccount,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	RedeemPtAtMaturityInstructionAccounts = RedeemPtAtMaturityAccounts[ed25519.PublicKey]
	RedeemPtAtMaturityAccountIndexes      = AccountIndexes[RedeemPtAtMaturityAccounts[int]]
)

func NewRedeemPtAtMaturityInstruction(
	accounts *RedeemPtAtMaturityInstructionAccounts,
	args *RedeemPtAtMaturityInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseRedeemPtAtMaturityAccountIndexes(indexes []byte) (*RedeemPtAtMaturityAccountIndexes, error) {
	return parseAccountIndexes[RedeemPtAtMaturityAccounts[int]](RedeemPtAtMaturityInstruction, indexes)
}

var ClaimYieldInstructionDiscriminator = Discriminator{0x31, 0x4a, 0x6f, 0x07, 0xba, 0x16, 0x3d, 0xa5}

var ClaimYieldInstruction = &InstructionDef{
	Name:          "claim_yield",
	Discriminator: ClaimYieldInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "owner_yt_account"},
		{Name: "quote_vault", IsWritable: true},
		{Name: "owner_quote_account", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(ClaimYieldInstructionArgs) },
}

type ClaimYieldInstructionArgs struct{}

func (*ClaimYieldInstructionArgs) instruction() *InstructionDef { return ClaimYieldInstruction }

func (*ClaimYieldInstructionArgs) marshal(*binary.Encoder)         {}
func (*ClaimYieldInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type ClaimYieldAccounts[T AccountRef] struct {
	Owner             T
	Market            T
	MarginAccount     T
	OwnerYtAccount    T
	QuoteVault        T
	OwnerQuoteAccount T
	TokenProgram      T
	EventAuthority    T
	Program           T
}

func (a *ClaimYieldAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Market,
		&a.MarginAccount,
		&a.OwnerYtAccount,
		&a.QuoteVault,
		&a.OwnerQuoteAccount,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	ClaimYieldInstructionAccounts = ClaimYieldAccounts[ed25519.PublicKey]
	ClaimYieldAccountIndexes      = AccountIndexes[ClaimYieldAccounts[int]]
)

func NewClaimYieldInstruction(accounts *ClaimYieldInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&ClaimYieldInstructionArgs{}, accounts.fields(), opts)
}

func ParseClaimYieldAccountIndexes(indexes []byte) (*ClaimYieldAccountIndexes, error) {
	return parseAccountIndexes[ClaimYieldAccounts[int]](ClaimYieldInstruction, indexes)
}

var TradeYieldInstructionDiscriminator = Discriminator{0xcf, 0x62, 0x5a, 0xeb, 0x05, 0x5c, 0x29, 0xd6}

var TradeYieldInstruction = &InstructionDef{
	Name:          "trade_yield",
	Discriminator: TradeYieldInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "oracle"},
		{Name: "tick_array_0", IsWritable: true},
		{Name: "tick_array_1", IsWritable: true},
		{Name: "tick_array_2", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(TradeYieldInstructionArgs) },
}

type TradeYieldInstructionArgs struct {
	Side                 OrderSide
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimit       binary.Uint128
	AmountIsInput        bool
}

func (*TradeYieldInstructionArgs) instruction() *InstructionDef { return TradeYieldInstruction }

func (args *TradeYieldInstructionArgs) marshal(e *binary.Encoder) {
	putOrderSide(e, args.Side)
	e.PutUint64(args.Amount)
	e.PutUint64(args.OtherAmountThreshold)
	e.PutUint128(args.SqrtPriceLimit)
	e.PutBool(args.AmountIsInput)
}

func (args *TradeYieldInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Side, err = getOrderSide(d); err != nil {
		return errors.Wrap(err, "side")
	}
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if args.OtherAmountThreshold, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "other_amount_threshold")
	}
	if args.SqrtPriceLimit, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "sqrt_price_limit")
	}
	if args.AmountIsInput, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "amount_is_input")
	}
	return nil
}

type TradeYieldAccounts[T AccountRef] struct {
	Owner          T
	Exchange       T
	Market         T
	MarginAccount  T
	Oracle         T
	TickArray0     T
	TickArray1     T
	TickArray2     T
	EventAuthority T
	Program        T
}

func (a *TradeYieldAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.Market,
		&a.MarginAccount,
		&a.Oracle,
		&a.TickArray0,
		&a.TickArray1,
		&a.TickArray2,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	TradeYieldInstructionAccounts = TradeYieldAccounts[ed25519.PublicKey]
	TradeYieldAccountIndexes      = AccountIndexes[TradeYieldAccounts[int]]
)

func NewTradeYieldInstruction(
	accounts *TradeYieldInstructionAccounts,
	args *TradeYieldInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseTradeYieldAccountIndexes(indexes []byte) (*TradeYieldAccountIndexes, error) {
	return parseAccountIndexes[TradeYieldAccounts[int]](TradeYieldInstruction, indexes)
}

var CloseYieldPositionInstructionDiscriminator = Discriminator{0xe5, 0x5f, 0x3b, 0x71, 0x54, 0xf3, 0xea, 0xf9}

var CloseYieldPositionInstruction = &InstructionDef{
	Name:          "close_yield_position",
	Discriminator: CloseYieldPositionInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "oracle"},
		{Name: "tick_array_0", IsWritable: true},
		{Name: "tick_array_1", IsWritable: true},
		{Name: "tick_array_2", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(CloseYieldPositionInstructionArgs) },
}

type CloseYieldPositionInstructionArgs struct {
	SqrtPriceLimit binary.Uint128
}

func (*CloseYieldPositionInstructionArgs) instruction() *InstructionDef { return CloseYieldPositionInstruction }

func (args *CloseYieldPositionInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint128(args.SqrtPriceLimit)
}

func (args *CloseYieldPositionInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.SqrtPriceLimit, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "sqrt_price_limit")
	}
	return nil
}

type CloseYieldPositionAccounts[T AccountRef] struct {
	Owner          T
	Exchange       T
	Market         T
	MarginAccount  T
	Oracle         T
	TickArray0     T
	TickArray1     T
	TickArray2     T
	EventAuthority T
	Program        T
}

func (a *CloseYieldPositionAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.Market,
		&a.MarginAccount,
		&a.Oracle,
		&a.TickArray0,
		&a.TickArray1,
		&a.TickArray2,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	CloseYieldPositionInstructionAccounts = CloseYieldPositionAccounts[ed25519.PublicKey]
	CloseYieldPositionAccountIndexes      = AccountIndexes[CloseYieldPositionAccounts[int]]
)

func NewCloseYieldPositionInstruction(
	accounts *CloseYieldPositionInstructionAccounts,
	args *CloseYieldPositionInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseCloseYieldPositionAccountIndexes(indexes []byte) (*CloseYieldPositionAccountIndexes, error) {
	return parseAccountIndexes[CloseYieldPositionAccounts[int]](CloseYieldPositionInstruction, indexes)
}

var AdjustPositionMarginInstructionDiscriminator = Discriminator{0xbd, 0x43, 0x21, 0x3a, 0xd4, 0x2c, 0xfd, 0x16}

// AdjustPositionMarginInstruction moves collateral into (positive) or out of (negative) an isolated position.
var AdjustPositionMarginInstruction = &InstructionDef{
	Name:          "adjust_position_margin",
	Discriminator: AdjustPositionMarginInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "market"},
		{Name: "margin_account", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(AdjustPositionMarginInstructionArgs) },
}

type AdjustPositionMarginInstructionArgs struct {
	Amount     int64
	ReduceOnly bool
}

func (*AdjustPositionMarginInstructionArgs) instruction() *InstructionDef { return AdjustPositionMarginInstruction }

func (args *AdjustPositionMarginInstructionArgs) marshal(e *binary.Encoder) {
	e.PutInt64(args.Amount)
	e.PutBool(args.ReduceOnly)
}

func (args *AdjustPositionMarginInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if args.ReduceOnly, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "reduce_only")
	}
	return nil
}

type AdjustPositionMarginAccounts[T AccountRef] struct {
	Owner         T
	Market        T
	MarginAccount T
}

func (a *AdjustPositionMarginAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.Market, &a.MarginAccount}
}

type (
	AdjustPositionMarginInstructionAccounts = AdjustPositionMarginAccounts[ed25519.PublicKey]
	AdjustPositionMarginAccountIndexes      = AccountIndexes[AdjustPositionMarginAccounts[int]]
)

func NewAdjustPositionMarginInstruction(
	accounts *AdjustPositionMarginInstructionAccounts,
	args *AdjustPositionMarginInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseAdjustPositionMarginAccountIndexes(indexes []byte) (*AdjustPositionMarginAccountIndexes, error) {
	return parseAccountIndexes[AdjustPositionMarginAccounts[int]](AdjustPositionMarginInstruction, indexes)
}

var SettlePositionInstructionDiscriminator = Discriminator{0x21, 0x9c, 0x4a, 0xda, 0xd7, 0x2a, 0x70, 0xaf}

var SettlePositionInstruction = &InstructionDef{
	Name:          "settle_position",
	Discriminator: SettlePositionInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "authority", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "oracle"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(SettlePositionInstructionArgs) },
}

type SettlePositionInstructionArgs struct{}

func (*SettlePositionInstructionArgs) instruction() *InstructionDef { return SettlePositionInstruction }

func (*SettlePositionInstructionArgs) marshal(*binary.Encoder)         {}
func (*SettlePositionInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type SettlePositionAccounts[T AccountRef] struct {
	Authority      T
	Market         T
	MarginAccount  T
	Oracle         T
	EventAuthority T
	Program        T
}

func (a *SettlePositionAccounts[T]) fields() []*T {
	return []*T{
		&a.Authority,
		&a.Market,
		&a.MarginAccount,
		&a.Oracle,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	SettlePositionInstructionAccounts = SettlePositionAccounts[ed25519.PublicKey]
	SettlePositionAccountIndexes      = AccountIndexes[SettlePositionAccounts[int]]
)

func NewSettlePositionInstruction(accounts *SettlePositionInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&SettlePositionInstructionArgs{}, accounts.fields(), opts)
}

func ParseSettlePositionAccountIndexes(indexes []byte) (*SettlePositionAccountIndexes, error) {
	return parseAccountIndexes[SettlePositionAccounts[int]](SettlePositionInstruction, indexes)
}
