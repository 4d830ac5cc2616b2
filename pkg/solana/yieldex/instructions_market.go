package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var InitializeMarketGroupInstructionDiscriminator = Discriminator{0x49, 0x70, 0x24, 0x53, 0x50, 0x89, 0x2e, 0xe2}

var InitializeMarketGroupInstruction = &InstructionDef{
	Name:          "initialize_market_group",
	Discriminator: InitializeMarketGroupInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "market_group", IsWritable: true},
		{Name: "underlying_mint"},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeMarketGroupInstructionArgs) },
}

type InitializeMarketGroupInstructionArgs struct {
	Name              string
	EpochDurationSecs int64
}

func (*InitializeMarketGroupInstructionArgs) instruction() *InstructionDef { return InitializeMarketGroupInstruction }

func (args *InitializeMarketGroupInstructionArgs) marshal(e *binary.Encoder) {
	e.PutString(args.Name)
	e.PutInt64(args.EpochDurationSecs)
}

func (args *InitializeMarketGroupInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Name, err = d.GetString(); err != nil {
		return errors.Wrap(err, "name")
	}
	if args.EpochDurationSecs, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "epoch_duration_secs")
	}
	return nil
}

type InitializeMarketGroupAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	MarketGroup    T
	UnderlyingMint T
	SystemProgram  T
}

func (a *InitializeMarketGroupAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.MarketGroup,
		&a.UnderlyingMint,
		&a.SystemProgram,
	}
}

type (
	InitializeMarketGroupInstructionAccounts = InitializeMarketGroupAccounts[ed25519.PublicKey]
	InitializeMarketGroupAccountIndexes      = AccountIndexes[InitializeMarketGroupAccounts[int]]
)

func NewInitializeMarketGroupInstruction(
	accounts *InitializeMarketGroupInstructionAccounts,
	args *InitializeMarketGroupInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeMarketGroupAccountIndexes(indexes []byte) (*InitializeMarketGroupAccountIndexes, error) {
	return parseAccountIndexes[InitializeMarketGroupAccounts[int]](InitializeMarketGroupInstruction, indexes)
}

var RenameMarketGroupInstructionDiscriminator = Discriminator{0x7e, 0x5a, 0x7f, 0x9b, 0x45, 0x1a, 0x41, 0xbc}

var RenameMarketGroupInstruction = &InstructionDef{
	Name:          "rename_market_group",
	Discriminator: RenameMarketGroupInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "market_group", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(RenameMarketGroupInstructionArgs) },
}

type RenameMarketGroupInstructionArgs struct {
	Name string
}

func (*RenameMarketGroupInstructionArgs) instruction() *InstructionDef { return RenameMarketGroupInstruction }

func (args *RenameMarketGroupInstructionArgs) marshal(e *binary.Encoder) {
	e.PutString(args.Name)
}

func (args *RenameMarketGroupInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Name, err = d.GetString(); err != nil {
		return errors.Wrap(err, "name")
	}
	return nil
}

type RenameMarketGroupAccounts[T AccountRef] struct {
	Admin       T
	MarketGroup T
}

func (a *RenameMarketGroupAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.MarketGroup}
}

type (
	RenameMarketGroupInstructionAccounts = RenameMarketGroupAccounts[ed25519.PublicKey]
	RenameMarketGroupAccountIndexes      = AccountIndexes[RenameMarketGroupAccounts[int]]
)

func NewRenameMarketGroupInstruction(
	accounts *RenameMarketGroupInstructionAccounts,
	args *RenameMarketGroupInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseRenameMarketGroupAccountIndexes(indexes []byte) (*RenameMarketGroupAccountIndexes, error) {
	return parseAccountIndexes[RenameMarketGroupAccounts[int]](RenameMarketGroupInstruction, indexes)
}

var CloseMarketGroupInstructionDiscriminator = Discriminator{0xfd, 0xb0, 0x7b, 0xde, 0x89, 0xa6, 0x48, 0xe7}

var CloseMarketGroupInstruction = &InstructionDef{
	Name:          "close_market_group",
	Discriminator: CloseMarketGroupInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "market_group", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(CloseMarketGroupInstructionArgs) },
}

type CloseMarketGroupInstructionArgs struct{}

func (*CloseMarketGroupInstructionArgs) instruction() *InstructionDef { return CloseMarketGroupInstruction }

func (*CloseMarketGroupInstructionArgs) marshal(*binary.Encoder)         {}
func (*CloseMarketGroupInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type CloseMarketGroupAccounts[T AccountRef] struct {
	Admin       T
	Exchange    T
	MarketGroup T
}

func (a *CloseMarketGroupAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.MarketGroup}
}

type (
	CloseMarketGroupInstructionAccounts = CloseMarketGroupAccounts[ed25519.PublicKey]
	CloseMarketGroupAccountIndexes      = AccountIndexes[CloseMarketGroupAccounts[int]]
)

func NewCloseMarketGroupInstruction(accounts *CloseMarketGroupInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&CloseMarketGroupInstructionArgs{}, accounts.fields(), opts)
}

func ParseCloseMarketGroupAccountIndexes(indexes []byte) (*CloseMarketGroupAccountIndexes, error) {
	return parseAccountIndexes[CloseMarketGroupAccounts[int]](CloseMarketGroupInstruction, indexes)
}

var InitializeMarketInstructionDiscriminator = Discriminator{0x23, 0x23, 0xbd, 0xc1, 0x9b, 0x30, 0xaa, 0xcb}

var InitializeMarketInstruction = &InstructionDef{
	Name:          "initialize_market",
	Discriminator: InitializeMarketInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "market_group", IsWritable: true},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
		{Name: "pt_mint", IsWritable: true},
		{Name: "yt_mint", IsWritable: true},
		{Name: "quote_mint"},
		{Name: "pt_vault", IsWritable: true},
		{Name: "quote_vault", IsWritable: true},
		{Name: "token_program"},
		{Name: "system_program"},
		{Name: "rent"},
	},
	newArgs: func() InstructionArgs { return new(InitializeMarketInstructionArgs) },
}

type InitializeMarketInstructionArgs struct {
	Params InitializeMarketParams
}

func (*InitializeMarketInstructionArgs) instruction() *InstructionDef { return InitializeMarketInstruction }

func (args *InitializeMarketInstructionArgs) marshal(e *binary.Encoder) {
	putInitializeMarketParams(e, args.Params)
}

func (args *InitializeMarketInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Params, err = getInitializeMarketParams(d); err != nil {
		return errors.Wrap(err, "params")
	}
	return nil
}

type InitializeMarketAccounts[T AccountRef] struct {
	Admin         T
	Exchange      T
	MarketGroup   T
	Market        T
	Oracle        T
	PtMint        T
	YtMint        T
	QuoteMint     T
	PtVault       T
	QuoteVault    T
	TokenProgram  T
	SystemProgram T
	Rent          T
}

func (a *InitializeMarketAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.MarketGroup,
		&a.Market,
		&a.Oracle,
		&a.PtMint,
		&a.YtMint,
		&a.QuoteMint,
		&a.PtVault,
		&a.QuoteVault,
		&a.TokenProgram,
		&a.SystemProgram,
		&a.Rent,
	}
}

type (
	InitializeMarketInstructionAccounts = InitializeMarketAccounts[ed25519.PublicKey]
	InitializeMarketAccountIndexes      = AccountIndexes[InitializeMarketAccounts[int]]
)

func NewInitializeMarketInstruction(
	accounts *InitializeMarketInstructionAccounts,
	args *InitializeMarketInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeMarketAccountIndexes(indexes []byte) (*InitializeMarketAccountIndexes, error) {
	return parseAccountIndexes[InitializeMarketAccounts[int]](InitializeMarketInstruction, indexes)
}

var InitializeTickArrayInstructionDiscriminator = Discriminator{0x0b, 0xbc, 0xc1, 0xd6, 0x8d, 0x5b, 0x95, 0xb8}

var InitializeTickArrayInstruction = &InstructionDef{
	Name:          "initialize_tick_array",
	Discriminator: InitializeTickArrayInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "payer", IsWritable: true, IsSigner: true},
		{Name: "market"},
		{Name: "tick_array", IsWritable: true},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeTickArrayInstructionArgs) },
}

type InitializeTickArrayInstructionArgs struct {
	StartTickIndex int32
}

func (*InitializeTickArrayInstructionArgs) instruction() *InstructionDef { return InitializeTickArrayInstruction }

func (args *InitializeTickArrayInstructionArgs) marshal(e *binary.Encoder) {
	e.PutInt32(args.StartTickIndex)
}

func (args *InitializeTickArrayInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.StartTickIndex, err = d.GetInt32(); err != nil {
		return errors.Wrap(err, "start_tick_index")
	}
	return nil
}

type InitializeTickArrayAccounts[T AccountRef] struct {
	Payer         T
	Market        T
	TickArray     T
	SystemProgram T
}

func (a *InitializeTickArrayAccounts[T]) fields() []*T {
	return []*T{
		&a.Payer,
		&a.Market,
		&a.TickArray,
		&a.SystemProgram,
	}
}

type (
	InitializeTickArrayInstructionAccounts = InitializeTickArrayAccounts[ed25519.PublicKey]
	InitializeTickArrayAccountIndexes      = AccountIndexes[InitializeTickArrayAccounts[int]]
)

func NewInitializeTickArrayInstruction(
	accounts *InitializeTickArrayInstructionAccounts,
	args *InitializeTickArrayInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeTickArrayAccountIndexes(indexes []byte) (*InitializeTickArrayAccountIndexes, error) {
	return parseAccountIndexes[InitializeTickArrayAccounts[int]](InitializeTickArrayInstruction, indexes)
}

var ActivateMarketInstructionDiscriminator = Discriminator{0x0a, 0x1a, 0xc5, 0x74, 0x71, 0x63, 0x48, 0x59}

var ActivateMarketInstruction = &InstructionDef{
	Name:          "activate_market",
	Discriminator: ActivateMarketInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(ActivateMarketInstructionArgs) },
}

type ActivateMarketInstructionArgs struct{}

func (*ActivateMarketInstructionArgs) instruction() *InstructionDef { return ActivateMarketInstruction }

func (*ActivateMarketInstructionArgs) marshal(*binary.Encoder)         {}
func (*ActivateMarketInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type ActivateMarketAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	Market         T
	EventAuthority T
	Program        T
}

func (a *ActivateMarketAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	ActivateMarketInstructionAccounts = ActivateMarketAccounts[ed25519.PublicKey]
	ActivateMarketAccountIndexes      = AccountIndexes[ActivateMarketAccounts[int]]
)

func NewActivateMarketInstruction(accounts *ActivateMarketInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&ActivateMarketInstructionArgs{}, accounts.fields(), opts)
}

func ParseActivateMarketAccountIndexes(indexes []byte) (*ActivateMarketAccountIndexes, error) {
	return parseAccountIndexes[ActivateMarketAccounts[int]](ActivateMarketInstruction, indexes)
}

var PauseMarketInstructionDiscriminator = Discriminator{0xd8, 0xee, 0x04, 0xa4, 0x41, 0x0b, 0xa2, 0x5b}

var PauseMarketInstruction = &InstructionDef{
	Name:          "pause_market",
	Discriminator: PauseMarketInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(PauseMarketInstructionArgs) },
}

type PauseMarketInstructionArgs struct{}

func (*PauseMarketInstructionArgs) instruction() *InstructionDef { return PauseMarketInstruction }

func (*PauseMarketInstructionArgs) marshal(*binary.Encoder)         {}
func (*PauseMarketInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type PauseMarketAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	Market         T
	EventAuthority T
	Program        T
}

func (a *PauseMarketAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	PauseMarketInstructionAccounts = PauseMarketAccounts[ed25519.PublicKey]
	PauseMarketAccountIndexes      = AccountIndexes[PauseMarketAccounts[int]]
)

func NewPauseMarketInstruction(accounts *PauseMarketInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&PauseMarketInstructionArgs{}, accounts.fields(), opts)
}

func ParsePauseMarketAccountIndexes(indexes []byte) (*PauseMarketAccountIndexes, error) {
	return parseAccountIndexes[PauseMarketAccounts[int]](PauseMarketInstruction, indexes)
}

var ResumeMarketInstructionDiscriminator = Discriminator{0xc6, 0x78, 0x68, 0x57, 0x2c, 0x67, 0x6c, 0x8f}

var ResumeMarketInstruction = &InstructionDef{
	Name:          "resume_market",
	Discriminator: ResumeMarketInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(ResumeMarketInstructionArgs) },
}

type ResumeMarketInstructionArgs struct{}

func (*ResumeMarketInstructionArgs) instruction() *InstructionDef { return ResumeMarketInstruction }

func (*ResumeMarketInstructionArgs) marshal(*binary.Encoder)         {}
func (*ResumeMarketInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type ResumeMarketAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	Market         T
	EventAuthority T
	Program        T
}

func (a *ResumeMarketAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	ResumeMarketInstructionAccounts = ResumeMarketAccounts[ed25519.PublicKey]
	ResumeMarketAccountIndexes      = AccountIndexes[ResumeMarketAccounts[int]]
)

func NewResumeMarketInstruction(accounts *ResumeMarketInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&ResumeMarketInstructionArgs{}, accounts.fields(), opts)
}

func ParseResumeMarketAccountIndexes(indexes []byte) (*ResumeMarketAccountIndexes, error) {
	return parseAccountIndexes[ResumeMarketAccounts[int]](ResumeMarketInstruction, indexes)
}

var SetMarketReduceOnlyInstructionDiscriminator = Discriminator{0xb2, 0x4e, 0xdb, 0xc6, 0xbc, 0xb9, 0xb5, 0x58}

var SetMarketReduceOnlyInstruction = &InstructionDef{
	Name:          "set_market_reduce_only",
	Discriminator: SetMarketReduceOnlyInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(SetMarketReduceOnlyInstructionArgs) },
}

type SetMarketReduceOnlyInstructionArgs struct{}

func (*SetMarketReduceOnlyInstructionArgs) instruction() *InstructionDef { return SetMarketReduceOnlyInstruction }

func (*SetMarketReduceOnlyInstructionArgs) marshal(*binary.Encoder)         {}
func (*SetMarketReduceOnlyInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type SetMarketReduceOnlyAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	Market         T
	EventAuthority T
	Program        T
}

func (a *SetMarketReduceOnlyAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	SetMarketReduceOnlyInstructionAccounts = SetMarketReduceOnlyAccounts[ed25519.PublicKey]
	SetMarketReduceOnlyAccountIndexes      = AccountIndexes[SetMarketReduceOnlyAccounts[int]]
)

func NewSetMarketReduceOnlyInstruction(accounts *SetMarketReduceOnlyInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&SetMarketReduceOnlyInstructionArgs{}, accounts.fields(), opts)
}

func ParseSetMarketReduceOnlyAccountIndexes(indexes []byte) (*SetMarketReduceOnlyAccountIndexes, error) {
	return parseAccountIndexes[SetMarketReduceOnlyAccounts[int]](SetMarketReduceOnlyInstruction, indexes)
}

var SetMarketStatusInstructionDiscriminator = Discriminator{0x65, 0xaf, 0x53, 0x6b, 0xc8, 0x8d, 0x9b, 0xb6}

var SetMarketStatusInstruction = &InstructionDef{
	Name:          "set_market_status",
	Discriminator: SetMarketStatusInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(SetMarketStatusInstructionArgs) },
}

type SetMarketStatusInstructionArgs struct {
	Status MarketStatus
}

func (*SetMarketStatusInstructionArgs) instruction() *InstructionDef { return SetMarketStatusInstruction }

func (args *SetMarketStatusInstructionArgs) marshal(e *binary.Encoder) {
	putMarketStatus(e, args.Status)
}

func (args *SetMarketStatusInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Status, err = getMarketStatus(d); err != nil {
		return errors.Wrap(err, "status")
	}
	return nil
}

type SetMarketStatusAccounts[T AccountRef] struct {
	Admin          T
	Exchange       T
	Market         T
	EventAuthority T
	Program        T
}

func (a *SetMarketStatusAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	SetMarketStatusInstructionAccounts = SetMarketStatusAccounts[ed25519.PublicKey]
	SetMarketStatusAccountIndexes      = AccountIndexes[SetMarketStatusAccounts[int]]
)

func NewSetMarketStatusInstruction(
	accounts *SetMarketStatusInstructionAccounts,
	args *SetMarketStatusInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetMarketStatusAccountIndexes(indexes []byte) (*SetMarketStatusAccountIndexes, error) {
	return parseAccountIndexes[SetMarketStatusAccounts[int]](SetMarketStatusInstruction, indexes)
}

var UpdateMarketParamInstructionDiscriminator = Discriminator{0x09, 0xa8, 0x7e, 0x10, 0xea, 0x31, 0xdc, 0x3f}

var UpdateMarketParamInstruction = &InstructionDef{
	Name:          "update_market_param",
	Discriminator: UpdateMarketParamInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(UpdateMarketParamInstructionArgs) },
}

type UpdateMarketParamInstructionArgs struct {
	Param MarketParamUpdate
}

func (*UpdateMarketParamInstructionArgs) instruction() *InstructionDef { return UpdateMarketParamInstruction }

func (args *UpdateMarketParamInstructionArgs) marshal(e *binary.Encoder) {
	putMarketParamUpdate(e, args.Param)
}

func (args *UpdateMarketParamInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Param, err = getMarketParamUpdate(d); err != nil {
		return errors.Wrap(err, "param")
	}
	return nil
}

type UpdateMarketParamAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
	Market   T
}

func (a *UpdateMarketParamAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.Market}
}

type (
	UpdateMarketParamInstructionAccounts = UpdateMarketParamAccounts[ed25519.PublicKey]
	UpdateMarketParamAccountIndexes      = AccountIndexes[UpdateMarketParamAccounts[int]]
)

func NewUpdateMarketParamInstruction(
	accounts *UpdateMarketParamInstructionAccounts,
	args *UpdateMarketParamInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseUpdateMarketParamAccountIndexes(indexes []byte) (*UpdateMarketParamAccountIndexes, error) {
	return parseAccountIndexes[UpdateMarketParamAccounts[int]](UpdateMarketParamInstruction, indexes)
}

var UpdateMarketFeesInstructionDiscriminator = Discriminator{0xbb, 0x24, 0x79, 0xab, 0x83, 0x13, 0xf3, 0x75}

var UpdateMarketFeesInstruction = &InstructionDef{
	Name:          "update_market_fees",
	Discriminator: UpdateMarketFeesInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(UpdateMarketFeesInstructionArgs) },
}

type UpdateMarketFeesInstructionArgs struct {
	MakerFeeBps int16
	TakerFeeBps int16
}

func (*UpdateMarketFeesInstructionArgs) instruction() *InstructionDef { return UpdateMarketFeesInstruction }

func (args *UpdateMarketFeesInstructionArgs) marshal(e *binary.Encoder) {
	e.PutInt16(args.MakerFeeBps)
	e.PutInt16(args.TakerFeeBps)
}

func (args *UpdateMarketFeesInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.MakerFeeBps, err = d.GetInt16(); err != nil {
		return errors.Wrap(err, "maker_fee_bps")
	}
	if args.TakerFeeBps, err = d.GetInt16(); err != nil {
		return errors.Wrap(err, "taker_fee_bps")
	}
	return nil
}

type UpdateMarketFeesAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
	Market   T
}

func (a *UpdateMarketFeesAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.Market}
}

type (
	UpdateMarketFeesInstructionAccounts = UpdateMarketFeesAccounts[ed25519.PublicKey]
	UpdateMarketFeesAccountIndexes      = AccountIndexes[UpdateMarketFeesAccounts[int]]
)

func NewUpdateMarketFeesInstruction(
	accounts *UpdateMarketFeesInstructionAccounts,
	args *UpdateMarketFeesInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseUpdateMarketFeesAccountIndexes(indexes []byte) (*UpdateMarketFeesAccountIndexes, error) {
	return parseAccountIndexes[UpdateMarketFeesAccounts[int]](UpdateMarketFeesInstruction, indexes)
}

var SetMarketOracleInstructionDiscriminator = Discriminator{0xb5, 0xe3, 0x0f, 0x41, 0x8c, 0x96, 0x92, 0x02}

var SetMarketOracleInstruction = &InstructionDef{
	Name:          "set_market_oracle",
	Discriminator: SetMarketOracleInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
	},
	newArgs: func() InstructionArgs { return new(SetMarketOracleInstructionArgs) },
}

type SetMarketOracleInstructionArgs struct{}

func (*SetMarketOracleInstructionArgs) instruction() *InstructionDef { return SetMarketOracleInstruction }

func (*SetMarketOracleInstructionArgs) marshal(*binary.Encoder)         {}
func (*SetMarketOracleInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type SetMarketOracleAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
	Market   T
	Oracle   T
}

func (a *SetMarketOracleAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.Oracle,
	}
}

type (
	SetMarketOracleInstructionAccounts = SetMarketOracleAccounts[ed25519.PublicKey]
	SetMarketOracleAccountIndexes      = AccountIndexes[SetMarketOracleAccounts[int]]
)

func NewSetMarketOracleInstruction(accounts *SetMarketOracleInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&SetMarketOracleInstructionArgs{}, accounts.fields(), opts)
}

func ParseSetMarketOracleAccountIndexes(indexes []byte) (*SetMarketOracleAccountIndexes, error) {
	return parseAccountIndexes[SetMarketOracleAccounts[int]](SetMarketOracleInstruction, indexes)
}

var ExpireMarketInstructionDiscriminator = Discriminator{0xd5, 0xbf, 0xf9, 0x33, 0x3f, 0xa8, 0xba, 0xb4}

var ExpireMarketInstruction = &InstructionDef{
	Name:          "expire_market",
	Discriminator: ExpireMarketInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(ExpireMarketInstructionArgs) },
}

type ExpireMarketInstructionArgs struct{}

func (*ExpireMarketInstructionArgs) instruction() *InstructionDef { return ExpireMarketInstruction }

func (*ExpireMarketInstructionArgs) marshal(*binary.Encoder)         {}
func (*ExpireMarketInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type ExpireMarketAccounts[T AccountRef] struct {
	Keeper         T
	Exchange       T
	Market         T
	Oracle         T
	EventAuthority T
	Program        T
}

func (a *ExpireMarketAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.Market,
		&a.Oracle,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	ExpireMarketInstructionAccounts = ExpireMarketAccounts[ed25519.PublicKey]
	ExpireMarketAccountIndexes      = AccountIndexes[ExpireMarketAccounts[int]]
)

func NewExpireMarketInstruction(accounts *ExpireMarketInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&ExpireMarketInstructionArgs{}, accounts.fields(), opts)
}

func ParseExpireMarketAccountIndexes(indexes []byte) (*ExpireMarketAccountIndexes, error) {
	return parseAccountIndexes[ExpireMarketAccounts[int]](ExpireMarketInstruction, indexes)
}

var SettleMarketInstructionDiscriminator = Discriminator{0xc1, 0x99, 0x5f, 0xd8, 0xa6, 0x06, 0x90, 0xd9}

var SettleMarketInstruction = &InstructionDef{
	Name:          "settle_market",
	Discriminator: SettleMarketInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(SettleMarketInstructionArgs) },
}

type SettleMarketInstructionArgs struct {
	SettlementRate uint64
}

func (*SettleMarketInstructionArgs) instruction() *InstructionDef { return SettleMarketInstruction }

func (args *SettleMarketInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.SettlementRate)
}

func (args *SettleMarketInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.SettlementRate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "settlement_rate")
	}
	return nil
}

type SettleMarketAccounts[T AccountRef] struct {
	Keeper         T
	Exchange       T
	Market         T
	Oracle         T
	EventAuthority T
	Program        T
}

func (a *SettleMarketAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.Market,
		&a.Oracle,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	SettleMarketInstructionAccounts = SettleMarketAccounts[ed25519.PublicKey]
	SettleMarketAccountIndexes      = AccountIndexes[SettleMarketAccounts[int]]
)

func NewSettleMarketInstruction(
	accounts *SettleMarketInstructionAccounts,
	args *SettleMarketInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSettleMarketAccountIndexes(indexes []byte) (*SettleMarketAccountIndexes, error) {
	return parseAccountIndexes[SettleMarketAccounts[int]](SettleMarketInstruction, indexes)
}

var CloseMarketInstructionDiscriminator = Discriminator{0x58, 0x9a, 0xf8, 0xba, 0x30, 0x0e, 0x7b, 0xf4}

var CloseMarketInstruction = &InstructionDef{
	Name:          "close_market",
	Discriminator: CloseMarketInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange", IsWritable: true},
		{Name: "market_group", IsWritable: true},
		{Name: "market", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "quote_vault", IsWritable: true},
		{Name: "token_program"},
	},
	newArgs: func() InstructionArgs { return new(CloseMarketInstructionArgs) },
}

type CloseMarketInstructionArgs struct{}

func (*CloseMarketInstructionArgs) instruction() *InstructionDef { return CloseMarketInstruction }

func (*CloseMarketInstructionArgs) marshal(*binary.Encoder)         {}
func (*CloseMarketInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type CloseMarketAccounts[T AccountRef] struct {
	Admin        T
	Exchange     T
	MarketGroup  T
	Market       T
	PtVault      T
	QuoteVault   T
	TokenProgram T
}

func (a *CloseMarketAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.MarketGroup,
		&a.Market,
		&a.PtVault,
		&a.QuoteVault,
		&a.TokenProgram,
	}
}

type (
	CloseMarketInstructionAccounts = CloseMarketAccounts[ed25519.PublicKey]
	CloseMarketAccountIndexes      = AccountIndexes[CloseMarketAccounts[int]]
)

func NewCloseMarketInstruction(accounts *CloseMarketInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&CloseMarketInstructionArgs{}, accounts.fields(), opts)
}

func ParseCloseMarketAccountIndexes(indexes []byte) (*CloseMarketAccountIndexes, error) {
	return parseAccountIndexes[CloseMarketAccounts[int]](CloseMarketInstruction, indexes)
}

var AccrueMarketFundingInstructionDiscriminator = Discriminator{0x00, 0x6e, 0xa6, 0x0b, 0x06, 0x70, 0xab, 0xa9}

var AccrueMarketFundingInstruction = &InstructionDef{
	Name:          "accrue_market_funding",
	Discriminator: AccrueMarketFundingInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
	},
	newArgs: func() InstructionArgs { return new(AccrueMarketFundingInstructionArgs) },
}

type AccrueMarketFundingInstructionArgs struct{}

func (*AccrueMarketFundingInstructionArgs) instruction() *InstructionDef { return AccrueMarketFundingInstruction }

func (*AccrueMarketFundingInstructionArgs) marshal(*binary.Encoder)         {}
func (*AccrueMarketFundingInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type AccrueMarketFundingAccounts[T AccountRef] struct {
	Keeper T
	Market T
	Oracle T
}

func (a *AccrueMarketFundingAccounts[T]) fields() []*T {
	return []*T{&a.Keeper, &a.Market, &a.Oracle}
}

type (
	AccrueMarketFundingInstructionAccounts = AccrueMarketFundingAccounts[ed25519.PublicKey]
	AccrueMarketFundingAccountIndexes      = AccountIndexes[AccrueMarketFundingAccounts[int]]
)

func NewAccrueMarketFundingInstruction(accounts *AccrueMarketFundingInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&AccrueMarketFundingInstructionArgs{}, accounts.fields(), opts)
}

func ParseAccrueMarketFundingAccountIndexes(indexes []byte) (*AccrueMarketFundingAccountIndexes, error) {
	return parseAccountIndexes[AccrueMarketFundingAccounts[int]](AccrueMarketFundingInstruction, indexes)
}
