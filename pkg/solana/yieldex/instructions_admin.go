package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var InitializeExchangeInstructionDiscriminator = Discriminator{0xe0, 0x69, 0x74, 0xa6, 0xe4, 0xcf, 0x60, 0x13}

// InitializeExchangeInstruction creates the exchange singleton.
var InitializeExchangeInstruction = &InstructionDef{
	Name:          "initialize_exchange",
	Discriminator: InitializeExchangeInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "fee_receiver"},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeExchangeInstructionArgs) },
}

type InitializeExchangeInstructionArgs struct {
	ProtocolFeeBps   uint16
	LiquidatorFeeBps uint16
}

func (*InitializeExchangeInstructionArgs) instruction() *InstructionDef { return InitializeExchangeInstruction }

func (args *InitializeExchangeInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint16(args.ProtocolFeeBps)
	e.PutUint16(args.LiquidatorFeeBps)
}

func (args *InitializeExchangeInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.ProtocolFeeBps, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "protocol_fee_bps")
	}
	if args.LiquidatorFeeBps, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "liquidator_fee_bps")
	}
	return nil
}

type InitializeExchangeAccounts[T AccountRef] struct {
	Admin         T
	Exchange      T
	FeeReceiver   T
	SystemProgram T
}

func (a *InitializeExchangeAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.FeeReceiver,
		&a.SystemProgram,
	}
}

type (
	InitializeExchangeInstructionAccounts = InitializeExchangeAccounts[ed25519.PublicKey]
	InitializeExchangeAccountIndexes      = AccountIndexes[InitializeExchangeAccounts[int]]
)

func NewInitializeExchangeInstruction(
	accounts *InitializeExchangeInstructionAccounts,
	args *InitializeExchangeInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeExchangeAccountIndexes(indexes []byte) (*InitializeExchangeAccountIndexes, error) {
	return parseAccountIndexes[InitializeExchangeAccounts[int]](InitializeExchangeInstruction, indexes)
}

var TransferExchangeAdminInstructionDiscriminator = Discriminator{0x8a, 0xb4, 0xfd, 0x1e, 0x1e, 0xff, 0x24, 0x7f}

// TransferExchangeAdminInstruction proposes a new admin. The transfer completes on AcceptExchangeAdmin.
var TransferExchangeAdminInstruction = &InstructionDef{
	Name:          "transfer_exchange_admin",
	Discriminator: TransferExchangeAdminInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(TransferExchangeAdminInstructionArgs) },
}

type TransferExchangeAdminInstructionArgs struct {
	NewAdmin ed25519.PublicKey
}

func (*TransferExchangeAdminInstructionArgs) instruction() *InstructionDef { return TransferExchangeAdminInstruction }

func (args *TransferExchangeAdminInstructionArgs) marshal(e *binary.Encoder) {
	e.PutKey(args.NewAdmin)
}

func (args *TransferExchangeAdminInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.NewAdmin, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "new_admin")
	}
	return nil
}

type TransferExchangeAdminAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
}

func (a *TransferExchangeAdminAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange}
}

type (
	TransferExchangeAdminInstructionAccounts = TransferExchangeAdminAccounts[ed25519.PublicKey]
	TransferExchangeAdminAccountIndexes      = AccountIndexes[TransferExchangeAdminAccounts[int]]
)

func NewTransferExchangeAdminInstruction(
	accounts *TransferExchangeAdminInstructionAccounts,
	args *TransferExchangeAdminInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseTransferExchangeAdminAccountIndexes(indexes []byte) (*TransferExchangeAdminAccountIndexes, error) {
	return parseAccountIndexes[TransferExchangeAdminAccounts[int]](TransferExchangeAdminInstruction, indexes)
}

var AcceptExchangeAdminInstructionDiscriminator = Discriminator{0x7f, 0x44, 0xb1, 0xc3, 0xfe, 0xa0, 0xf2, 0xb1}

var AcceptExchangeAdminInstruction = &InstructionDef{
	Name:          "accept_exchange_admin",
	Discriminator: AcceptExchangeAdminInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "pending_admin", IsSigner: true},
		{Name: "exchange", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(AcceptExchangeAdminInstructionArgs) },
}

type AcceptExchangeAdminInstructionArgs struct{}

func (*AcceptExchangeAdminInstructionArgs) instruction() *InstructionDef { return AcceptExchangeAdminInstruction }

func (*AcceptExchangeAdminInstructionArgs) marshal(*binary.Encoder)         {}
func (*AcceptExchangeAdminInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type AcceptExchangeAdminAccounts[T AccountRef] struct {
	PendingAdmin T
	Exchange     T
}

func (a *AcceptExchangeAdminAccounts[T]) fields() []*T {
	return []*T{&a.PendingAdmin, &a.Exchange}
}

type (
	AcceptExchangeAdminInstructionAccounts = AcceptExchangeAdminAccounts[ed25519.PublicKey]
	AcceptExchangeAdminAccountIndexes      = AccountIndexes[AcceptExchangeAdminAccounts[int]]
)

func NewAcceptExchangeAdminInstruction(accounts *AcceptExchangeAdminInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&AcceptExchangeAdminInstructionArgs{}, accounts.fields(), opts)
}

func ParseAcceptExchangeAdminAccountIndexes(indexes []byte) (*AcceptExchangeAdminAccountIndexes, error) {
	return parseAccountIndexes[AcceptExchangeAdminAccounts[int]](AcceptExchangeAdminInstruction, indexes)
}

var SetExchangePausedInstructionDiscriminator = Discriminator{0x86, 0x6c, 0x96, 0x74, 0x2c, 0x3e, 0x63, 0x25}

var SetExchangePausedInstruction = &InstructionDef{
	Name:          "set_exchange_paused",
	Discriminator: SetExchangePausedInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetExchangePausedInstructionArgs) },
}

type SetExchangePausedInstructionArgs struct {
	Paused bool
}

func (*SetExchangePausedInstructionArgs) instruction() *InstructionDef { return SetExchangePausedInstruction }

func (args *SetExchangePausedInstructionArgs) marshal(e *binary.Encoder) {
	e.PutBool(args.Paused)
}

func (args *SetExchangePausedInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Paused, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "paused")
	}
	return nil
}

type SetExchangePausedAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
}

func (a *SetExchangePausedAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange}
}

type (
	SetExchangePausedInstructionAccounts = SetExchangePausedAccounts[ed25519.PublicKey]
	SetExchangePausedAccountIndexes      = AccountIndexes[SetExchangePausedAccounts[int]]
)

func NewSetExchangePausedInstruction(
	accounts *SetExchangePausedInstructionAccounts,
	args *SetExchangePausedInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetExchangePausedAccountIndexes(indexes []byte) (*SetExchangePausedAccountIndexes, error) {
	return parseAccountIndexes[SetExchangePausedAccounts[int]](SetExchangePausedInstruction, indexes)
}

var AddKeeperInstructionDiscriminator = Discriminator{0x49, 0xb5, 0xe8, 0x02, 0x63, 0x2f, 0x96, 0xb3}

var AddKeeperInstruction = &InstructionDef{
	Name:          "add_keeper",
	Discriminator: AddKeeperInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(AddKeeperInstructionArgs) },
}

type AddKeeperInstructionArgs struct {
	Keeper ed25519.PublicKey
}

func (*AddKeeperInstructionArgs) instruction() *InstructionDef { return AddKeeperInstruction }

func (args *AddKeeperInstructionArgs) marshal(e *binary.Encoder) {
	e.PutKey(args.Keeper)
}

func (args *AddKeeperInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Keeper, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "keeper")
	}
	return nil
}

type AddKeeperAccounts[T AccountRef] struct {
	Admin         T
	Exchange      T
	SystemProgram T
}

func (a *AddKeeperAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.SystemProgram}
}

type (
	AddKeeperInstructionAccounts = AddKeeperAccounts[ed25519.PublicKey]
	AddKeeperAccountIndexes      = AccountIndexes[AddKeeperAccounts[int]]
)

func NewAddKeeperInstruction(
	accounts *AddKeeperInstructionAccounts,
	args *AddKeeperInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseAddKeeperAccountIndexes(indexes []byte) (*AddKeeperAccountIndexes, error) {
	return parseAccountIndexes[AddKeeperAccounts[int]](AddKeeperInstruction, indexes)
}

var RemoveKeeperInstructionDiscriminator = Discriminator{0xc1, 0xa7, 0xa9, 0xd7, 0x2c, 0x24, 0x58, 0xf7}

var RemoveKeeperInstruction = &InstructionDef{
	Name:          "remove_keeper",
	Discriminator: RemoveKeeperInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(RemoveKeeperInstructionArgs) },
}

type RemoveKeeperInstructionArgs struct {
	Keeper ed25519.PublicKey
}

func (*RemoveKeeperInstructionArgs) instruction() *InstructionDef { return RemoveKeeperInstruction }

func (args *RemoveKeeperInstructionArgs) marshal(e *binary.Encoder) {
	e.PutKey(args.Keeper)
}

func (args *RemoveKeeperInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Keeper, err = d.GetKey(); err != nil {
		return errors.Wrap(err, "keeper")
	}
	return nil
}

type RemoveKeeperAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
}

func (a *RemoveKeeperAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange}
}

type (
	RemoveKeeperInstructionAccounts = RemoveKeeperAccounts[ed25519.PublicKey]
	RemoveKeeperAccountIndexes      = AccountIndexes[RemoveKeeperAccounts[int]]
)

func NewRemoveKeeperInstruction(
	accounts *RemoveKeeperInstructionAccounts,
	args *RemoveKeeperInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseRemoveKeeperAccountIndexes(indexes []byte) (*RemoveKeeperAccountIndexes, error) {
	return parseAccountIndexes[RemoveKeeperAccounts[int]](RemoveKeeperInstruction, indexes)
}

var SetFeeReceiverInstructionDiscriminator = Discriminator{0xde, 0xa8, 0xb0, 0x65, 0xf2, 0x57, 0xbf, 0x10}

var SetFeeReceiverInstruction = &InstructionDef{
	Name:          "set_fee_receiver",
	Discriminator: SetFeeReceiverInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "new_fee_receiver"},
	},
	newArgs: func() InstructionArgs { return new(SetFeeReceiverInstructionArgs) },
}

type SetFeeReceiverInstructionArgs struct{}

func (*SetFeeReceiverInstructionArgs) instruction() *InstructionDef { return SetFeeReceiverInstruction }

func (*SetFeeReceiverInstructionArgs) marshal(*binary.Encoder)         {}
func (*SetFeeReceiverInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type SetFeeReceiverAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	NewFeeReceiver T
}

func (a *SetFeeReceiverAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.NewFeeReceiver}
}

type (
	SetFeeReceiverInstructionAccounts = SetFeeReceiverAccounts[ed25519.PublicKey]
	SetFeeReceiverAccountIndexes      = AccountIndexes[SetFeeReceiverAccounts[int]]
)

func NewSetFeeReceiverInstruction(accounts *SetFeeReceiverInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&SetFeeReceiverInstructionArgs{}, accounts.fields(), opts)
}

func ParseSetFeeReceiverAccountIndexes(indexes []byte) (*SetFeeReceiverAccountIndexes, error) {
	return parseAccountIndexes[SetFeeReceiverAccounts[int]](SetFeeReceiverInstruction, indexes)
}

var SetProtocolFeeInstructionDiscriminator = Discriminator{0xad, 0xef, 0x53, 0xf2, 0x88, 0x2b, 0x90, 0xd9}

var SetProtocolFeeInstruction = &InstructionDef{
	Name:          "set_protocol_fee",
	Discriminator: SetProtocolFeeInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetProtocolFeeInstructionArgs) },
}

type SetProtocolFeeInstructionArgs struct {
	ProtocolFeeBps uint16
}

func (*SetProtocolFeeInstructionArgs) instruction() *InstructionDef { return SetProtocolFeeInstruction }

func (args *SetProtocolFeeInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint16(args.ProtocolFeeBps)
}

func (args *SetProtocolFeeInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.ProtocolFeeBps, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "protocol_fee_bps")
	}
	return nil
}

type SetProtocolFeeAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
}

func (a *SetProtocolFeeAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange}
}

type (
	SetProtocolFeeInstructionAccounts = SetProtocolFeeAccounts[ed25519.PublicKey]
	SetProtocolFeeAccountIndexes      = AccountIndexes[SetProtocolFeeAccounts[int]]
)

func NewSetProtocolFeeInstruction(
	accounts *SetProtocolFeeInstructionAccounts,
	args *SetProtocolFeeInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetProtocolFeeAccountIndexes(indexes []byte) (*SetProtocolFeeAccountIndexes, error) {
	return parseAccountIndexes[SetProtocolFeeAccounts[int]](SetProtocolFeeInstruction, indexes)
}

var SetLiquidatorFeeInstructionDiscriminator = Discriminator{0x12, 0xfd, 0x78, 0x10, 0x69, 0xac, 0x79, 0x59}

var SetLiquidatorFeeInstruction = &InstructionDef{
	Name:          "set_liquidator_fee",
	Discriminator: SetLiquidatorFeeInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetLiquidatorFeeInstructionArgs) },
}

type SetLiquidatorFeeInstructionArgs struct {
	LiquidatorFeeBps uint16
}

func (*SetLiquidatorFeeInstructionArgs) instruction() *InstructionDef { return SetLiquidatorFeeInstruction }

func (args *SetLiquidatorFeeInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint16(args.LiquidatorFeeBps)
}

func (args *SetLiquidatorFeeInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.LiquidatorFeeBps, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "liquidator_fee_bps")
	}
	return nil
}

type SetLiquidatorFeeAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
}

func (a *SetLiquidatorFeeAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange}
}

type (
	SetLiquidatorFeeInstructionAccounts = SetLiquidatorFeeAccounts[ed25519.PublicKey]
	SetLiquidatorFeeAccountIndexes      = AccountIndexes[SetLiquidatorFeeAccounts[int]]
)

func NewSetLiquidatorFeeInstruction(
	accounts *SetLiquidatorFeeInstructionAccounts,
	args *SetLiquidatorFeeInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetLiquidatorFeeAccountIndexes(indexes []byte) (*SetLiquidatorFeeAccountIndexes, error) {
	return parseAccountIndexes[SetLiquidatorFeeAccounts[int]](SetLiquidatorFeeInstruction, indexes)
}

var AddCollateralMintInstructionDiscriminator = Discriminator{0x41, 0x33, 0x25, 0x72, 0xdb, 0x6d, 0x2e, 0xf4}

var AddCollateralMintInstruction = &InstructionDef{
	Name:          "add_collateral_mint",
	Discriminator: AddCollateralMintInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "mint"},
		{Name: "collateral_vault", IsWritable: true},
		{Name: "token_program"},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(AddCollateralMintInstructionArgs) },
}

type AddCollateralMintInstructionArgs struct {
	HaircutBps uint16
	Decimals   uint8
}

func (*AddCollateralMintInstructionArgs) instruction() *InstructionDef { return AddCollateralMintInstruction }

func (args *AddCollateralMintInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint16(args.HaircutBps)
	e.PutUint8(args.Decimals)
}

func (args *AddCollateralMintInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.HaircutBps, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "haircut_bps")
	}
	if args.Decimals, err = d.GetUint8(); err != nil {
		return errors.Wrap(err, "decimals")
	}
	return nil
}

type AddCollateralMintAccounts[T AccountRef] struct {
	Admin           T
	Exchange        T
	Mint            T
	CollateralVault T
	TokenProgram    T
	SystemProgram   T
}

func (a *AddCollateralMintAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Mint,
		&a.CollateralVault,
		&a.TokenProgram,
		&a.SystemProgram,
	}
}

type (
	AddCollateralMintInstructionAccounts = AddCollateralMintAccounts[ed25519.PublicKey]
	AddCollateralMintAccountIndexes      = AccountIndexes[AddCollateralMintAccounts[int]]
)

func NewAddCollateralMintInstruction(
	accounts *AddCollateralMintInstructionAccounts,
	args *AddCollateralMintInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseAddCollateralMintAccountIndexes(indexes []byte) (*AddCollateralMintAccountIndexes, error) {
	return parseAccountIndexes[AddCollateralMintAccounts[int]](AddCollateralMintInstruction, indexes)
}

var UpdateCollateralConfigInstructionDiscriminator = Discriminator{0x57, 0x51, 0xb2, 0x6c, 0xbc, 0x47, 0xc5, 0x7d}

var UpdateCollateralConfigInstruction = &InstructionDef{
	Name:          "update_collateral_config",
	Discriminator: UpdateCollateralConfigInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "mint"},
	},
	newArgs: func() InstructionArgs { return new(UpdateCollateralConfigInstructionArgs) },
}

type UpdateCollateralConfigInstructionArgs struct {
	HaircutBps uint16
	Enabled    bool
}

func (*UpdateCollateralConfigInstructionArgs) instruction() *InstructionDef { return UpdateCollateralConfigInstruction }

func (args *UpdateCollateralConfigInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint16(args.HaircutBps)
	e.PutBool(args.Enabled)
}

func (args *UpdateCollateralConfigInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.HaircutBps, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "haircut_bps")
	}
	if args.Enabled, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "enabled")
	}
	return nil
}

type UpdateCollateralConfigAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
	Mint     T
}

func (a *UpdateCollateralConfigAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.Mint}
}

type (
	UpdateCollateralConfigInstructionAccounts = UpdateCollateralConfigAccounts[ed25519.PublicKey]
	UpdateCollateralConfigAccountIndexes      = AccountIndexes[UpdateCollateralConfigAccounts[int]]
)

func NewUpdateCollateralConfigInstruction(
	accounts *UpdateCollateralConfigInstructionAccounts,
	args *UpdateCollateralConfigInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseUpdateCollateralConfigAccountIndexes(indexes []byte) (*UpdateCollateralConfigAccountIndexes, error) {
	return parseAccountIndexes[UpdateCollateralConfigAccounts[int]](UpdateCollateralConfigInstruction, indexes)
}

var RemoveCollateralMintInstructionDiscriminator = Discriminator{0x18, 0xaf, 0x81, 0xb0, 0x97, 0x5b, 0xe1, 0x04}

var RemoveCollateralMintInstruction = &InstructionDef{
	Name:          "remove_collateral_mint",
	Discriminator: RemoveCollateralMintInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "mint"},
	},
	newArgs: func() InstructionArgs { return new(RemoveCollateralMintInstructionArgs) },
}

type RemoveCollateralMintInstructionArgs struct{}

func (*RemoveCollateralMintInstructionArgs) instruction() *InstructionDef { return RemoveCollateralMintInstruction }

func (*RemoveCollateralMintInstructionArgs) marshal(*binary.Encoder)         {}
func (*RemoveCollateralMintInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type RemoveCollateralMintAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
	Mint     T
}

func (a *RemoveCollateralMintAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.Mint}
}

type (
	RemoveCollateralMintInstructionAccounts = RemoveCollateralMintAccounts[ed25519.PublicKey]
	RemoveCollateralMintAccountIndexes      = AccountIndexes[RemoveCollateralMintAccounts[int]]
)

func NewRemoveCollateralMintInstruction(accounts *RemoveCollateralMintInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&RemoveCollateralMintInstructionArgs{}, accounts.fields(), opts)
}

func ParseRemoveCollateralMintAccountIndexes(indexes []byte) (*RemoveCollateralMintAccountIndexes, error) {
	return parseAccountIndexes[RemoveCollateralMintAccounts[int]](RemoveCollateralMintInstruction, indexes)
}

var WithdrawProtocolFeesInstructionDiscriminator = Discriminator{0x0b, 0x44, 0xa5, 0x62, 0x12, 0xd0, 0x86, 0x49}

var WithdrawProtocolFeesInstruction = &InstructionDef{
	Name:          "withdraw_protocol_fees",
	Discriminator: WithdrawProtocolFeesInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "quote_vault", IsWritable: true},
		{Name: "fee_receiver_token_account", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(WithdrawProtocolFeesInstructionArgs) },
}

type WithdrawProtocolFeesInstructionArgs struct {
	Amount uint64
}

func (*WithdrawProtocolFeesInstructionArgs) instruction() *InstructionDef { return WithdrawProtocolFeesInstruction }

func (args *WithdrawProtocolFeesInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *WithdrawProtocolFeesInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type WithdrawProtocolFeesAccounts[T AccountRef] struct {
	Admin                   T
	Exchange                T
	Market                  T
	QuoteVault              T
	FeeReceiverTokenAccount T
	TokenProgram            T
	EventAuthority          T
	Program                 T
}

func (a *WithdrawProtocolFeesAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.QuoteVault,
		&a.FeeReceiverTokenAccount,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	WithdrawProtocolFeesInstructionAccounts = WithdrawProtocolFeesAccounts[ed25519.PublicKey]
	WithdrawProtocolFeesAccountIndexes      = AccountIndexes[WithdrawProtocolFeesAccounts[int]]
)

func NewWithdrawProtocolFeesInstruction(
	accounts *WithdrawProtocolFeesInstructionAccounts,
	args *WithdrawProtocolFeesInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseWithdrawProtocolFeesAccountIndexes(indexes []byte) (*WithdrawProtocolFeesAccountIndexes, error) {
	return parseAccountIndexes[WithdrawProtocolFeesAccounts[int]](WithdrawProtocolFeesInstruction, indexes)
}

var KeeperHeartbeatInstructionDiscriminator = Discriminator{0x90, 0xd9, 0xed, 0xa1, 0x0a, 0x9d, 0x22, 0x60}

// KeeperHeartbeatInstruction lets a keeper prove liveness. Carries no arguments and touches no state.
var KeeperHeartbeatInstruction = &InstructionDef{
	Name:          "keeper_heartbeat",
	Discriminator: KeeperHeartbeatInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
	},
	newArgs: func() InstructionArgs { return new(KeeperHeartbeatInstructionArgs) },
}

type KeeperHeartbeatInstructionArgs struct{}

func (*KeeperHeartbeatInstructionArgs) instruction() *InstructionDef { return KeeperHeartbeatInstruction }

func (*KeeperHeartbeatInstructionArgs) marshal(*binary.Encoder)         {}
func (*KeeperHeartbeatInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type KeeperHeartbeatAccounts[T AccountRef] struct {
	Keeper T
}

func (a *KeeperHeartbeatAccounts[T]) fields() []*T {
	return []*T{&a.Keeper}
}

type (
	KeeperHeartbeatInstructionAccounts = KeeperHeartbeatAccounts[ed25519.PublicKey]
	KeeperHeartbeatAccountIndexes      = AccountIndexes[KeeperHeartbeatAccounts[int]]
)

func NewKeeperHeartbeatInstruction(accounts *KeeperHeartbeatInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&KeeperHeartbeatInstructionArgs{}, accounts.fields(), opts)
}

func ParseKeeperHeartbeatAccountIndexes(indexes []byte) (*KeeperHeartbeatAccountIndexes, error) {
	return parseAccountIndexes[KeeperHeartbeatAccounts[int]](KeeperHeartbeatInstruction, indexes)
}

var InitializeInsuranceFundInstructionDiscriminator = Discriminator{0x02, 0xef, 0x27, 0x57, 0x32, 0x1c, 0x6c, 0x0c}

var InitializeInsuranceFundInstruction = &InstructionDef{
	Name:          "initialize_insurance_fund",
	Discriminator: InitializeInsuranceFundInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange"},
		{Name: "insurance_fund", IsWritable: true},
		{Name: "quote_mint"},
		{Name: "insurance_vault", IsWritable: true},
		{Name: "token_program"},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeInsuranceFundInstructionArgs) },
}

type InitializeInsuranceFundInstructionArgs struct{}

func (*InitializeInsuranceFundInstructionArgs) instruction() *InstructionDef { return InitializeInsuranceFundInstruction }

func (*InitializeInsuranceFundInstructionArgs) marshal(*binary.Encoder)         {}
func (*InitializeInsuranceFundInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type InitializeInsuranceFundAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	InsuranceFund  T
	QuoteMint      T
	InsuranceVault T
	TokenProgram   T
	SystemProgram  T
}

func (a *InitializeInsuranceFundAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.InsuranceFund,
		&a.QuoteMint,
		&a.InsuranceVault,
		&a.TokenProgram,
		&a.SystemProgram,
	}
}

type (
	InitializeInsuranceFundInstructionAccounts = InitializeInsuranceFundAccounts[ed25519.PublicKey]
	InitializeInsuranceFundAccountIndexes      = AccountIndexes[InitializeInsuranceFundAccounts[int]]
)

func NewInitializeInsuranceFundInstruction(accounts *InitializeInsuranceFundInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&InitializeInsuranceFundInstructionArgs{}, accounts.fields(), opts)
}

func ParseInitializeInsuranceFundAccountIndexes(indexes []byte) (*InitializeInsuranceFundAccountIndexes, error) {
	return parseAccountIndexes[InitializeInsuranceFundAccounts[int]](InitializeInsuranceFundInstruction, indexes)
}
