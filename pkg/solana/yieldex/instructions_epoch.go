package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var InitializeEpochStateInstructionDiscriminator = Discriminator{0x8b, 0x7a, 0x35, 0xfe, 0x55, 0xcd, 0x8a, 0xf5}

var InitializeEpochStateInstruction = &InstructionDef{
	Name:          "initialize_epoch_state",
	Discriminator: InitializeEpochStateInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "market"},
		{Name: "epoch_state", IsWritable: true},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeEpochStateInstructionArgs) },
}

type InitializeEpochStateInstructionArgs struct {
	EpochDurationSecs int64
	StartTs           int64
}

func (*InitializeEpochStateInstructionArgs) instruction() *InstructionDef { return InitializeEpochStateInstruction }

func (args *InitializeEpochStateInstructionArgs) marshal(e *binary.Encoder) {
	e.PutInt64(args.EpochDurationSecs)
	e.PutInt64(args.StartTs)
}

func (args *InitializeEpochStateInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.EpochDurationSecs, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "epoch_duration_secs")
	}
	if args.StartTs, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "start_ts")
	}
	return nil
}

type InitializeEpochStateAccounts[T AccountRef] struct {
	Admin         T
	Market        T
	EpochState    T
	SystemProgram T
}

func (a *InitializeEpochStateAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Market,
		&a.EpochState,
		&a.SystemProgram,
	}
}

type (
	InitializeEpochStateInstructionAccounts = InitializeEpochStateAccounts[ed25519.PublicKey]
	InitializeEpochStateAccountIndexes      = AccountIndexes[InitializeEpochStateAccounts[int]]
)

func NewInitializeEpochStateInstruction(
	accounts *InitializeEpochStateInstructionAccounts,
	args *InitializeEpochStateInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeEpochStateAccountIndexes(indexes []byte) (*InitializeEpochStateAccountIndexes, error) {
	return parseAccountIndexes[InitializeEpochStateAccounts[int]](InitializeEpochStateInstruction, indexes)
}

var BeginEpochUpdateInstructionDiscriminator = Discriminator{0x0a, 0x9a, 0xa4, 0x12, 0x40, 0x86, 0x63, 0xd0}

var BeginEpochUpdateInstruction = &InstructionDef{
	Name:          "begin_epoch_update",
	Discriminator: BeginEpochUpdateInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "epoch_state", IsWritable: true},
		{Name: "oracle"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(BeginEpochUpdateInstructionArgs) },
}

type BeginEpochUpdateInstructionArgs struct{}

func (*BeginEpochUpdateInstructionArgs) instruction() *InstructionDef { return BeginEpochUpdateInstruction }

func (*BeginEpochUpdateInstructionArgs) marshal(*binary.Encoder)         {}
func (*BeginEpochUpdateInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type BeginEpochUpdateAccounts[T AccountRef] struct {
	Keeper         T
	Exchange       T
	Market         T
	EpochState     T
	Oracle         T
	EventAuthority T
	Program        T
}

func (a *BeginEpochUpdateAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.Market,
		&a.EpochState,
		&a.Oracle,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	BeginEpochUpdateInstructionAccounts = BeginEpochUpdateAccounts[ed25519.PublicKey]
	BeginEpochUpdateAccountIndexes      = AccountIndexes[BeginEpochUpdateAccounts[int]]
)

func NewBeginEpochUpdateInstruction(accounts *BeginEpochUpdateInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&BeginEpochUpdateInstructionArgs{}, accounts.fields(), opts)
}

func ParseBeginEpochUpdateAccountIndexes(indexes []byte) (*BeginEpochUpdateAccountIndexes, error) {
	return parseAccountIndexes[BeginEpochUpdateAccounts[int]](BeginEpochUpdateInstruction, indexes)
}

var SnapshotEpochInstructionDiscriminator = Discriminator{0xf6, 0x81, 0x2d, 0x17, 0xf5, 0x8e, 0xe3, 0x29}

// SnapshotEpochInstruction snapshots a batch of margin accounts, supplied as trailing accounts.
var SnapshotEpochInstruction = &InstructionDef{
	Name:          "snapshot_epoch",
	Discriminator: SnapshotEpochInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "market"},
		{Name: "epoch_state", IsWritable: true},
		{Name: "oracle"},
	},
	newArgs: func() InstructionArgs { return new(SnapshotEpochInstructionArgs) },
}

type SnapshotEpochInstructionArgs struct {
	BatchSize uint16
}

func (*SnapshotEpochInstructionArgs) instruction() *InstructionDef { return SnapshotEpochInstruction }

func (args *SnapshotEpochInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint16(args.BatchSize)
}

func (args *SnapshotEpochInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.BatchSize, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "batch_size")
	}
	return nil
}

type SnapshotEpochAccounts[T AccountRef] struct {
	Keeper     T
	Market     T
	EpochState T
	Oracle     T
}

func (a *SnapshotEpochAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Market,
		&a.EpochState,
		&a.Oracle,
	}
}

type (
	SnapshotEpochInstructionAccounts = SnapshotEpochAccounts[ed25519.PublicKey]
	SnapshotEpochAccountIndexes      = AccountIndexes[SnapshotEpochAccounts[int]]
)

func NewSnapshotEpochInstruction(
	accounts *SnapshotEpochInstructionAccounts,
	args *SnapshotEpochInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSnapshotEpochAccountIndexes(indexes []byte) (*SnapshotEpochAccountIndexes, error) {
	return parseAccountIndexes[SnapshotEpochAccounts[int]](SnapshotEpochInstruction, indexes)
}

var SettleEpochPositionsInstructionDiscriminator = Discriminator{0x2e, 0xa7, 0x3f, 0x14, 0xbc, 0xe3, 0xbc, 0x59}

var SettleEpochPositionsInstruction = &InstructionDef{
	Name:          "settle_epoch_positions",
	Discriminator: SettleEpochPositionsInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "epoch_state", IsWritable: true},
		{Name: "oracle"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(SettleEpochPositionsInstructionArgs) },
}

type SettleEpochPositionsInstructionArgs struct {
	BatchSize uint16
}

func (*SettleEpochPositionsInstructionArgs) instruction() *InstructionDef { return SettleEpochPositionsInstruction }

func (args *SettleEpochPositionsInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint16(args.BatchSize)
}

func (args *SettleEpochPositionsInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.BatchSize, err = d.GetUint16(); err != nil {
		return errors.Wrap(err, "batch_size")
	}
	return nil
}

type SettleEpochPositionsAccounts[T AccountRef] struct {
	Keeper         T
	Market         T
	EpochState     T
	Oracle         T
	EventAuthority T
	Program        T
}

func (a *SettleEpochPositionsAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Market,
		&a.EpochState,
		&a.Oracle,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	SettleEpochPositionsInstructionAccounts = SettleEpochPositionsAccounts[ed25519.PublicKey]
	SettleEpochPositionsAccountIndexes      = AccountIndexes[SettleEpochPositionsAccounts[int]]
)

func NewSettleEpochPositionsInstruction(
	accounts *SettleEpochPositionsInstructionAccounts,
	args *SettleEpochPositionsInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSettleEpochPositionsAccountIndexes(indexes []byte) (*SettleEpochPositionsAccountIndexes, error) {
	return parseAccountIndexes[SettleEpochPositionsAccounts[int]](SettleEpochPositionsInstruction, indexes)
}

var RolloverEpochInstructionDiscriminator = Discriminator{0xb2, 0x0c, 0x6a, 0xe9, 0x7d, 0x37, 0x3a, 0x6f}

var RolloverEpochInstruction = &InstructionDef{
	Name:          "rollover_epoch",
	Discriminator: RolloverEpochInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "market_group"},
		{Name: "market", IsWritable: true},
		{Name: "epoch_state", IsWritable: true},
		{Name: "oracle"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(RolloverEpochInstructionArgs) },
}

type RolloverEpochInstructionArgs struct {
	NewMaturityTs    int64
	InitialSqrtPrice binary.Uint128
}

func (*RolloverEpochInstructionArgs) instruction() *InstructionDef { return RolloverEpochInstruction }

func (args *RolloverEpochInstructionArgs) marshal(e *binary.Encoder) {
	e.PutInt64(args.NewMaturityTs)
	e.PutUint128(args.InitialSqrtPrice)
}

func (args *RolloverEpochInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.NewMaturityTs, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "new_maturity_ts")
	}
	if args.InitialSqrtPrice, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "initial_sqrt_price")
	}
	return nil
}

type RolloverEpochAccounts[T AccountRef] struct {
	Keeper         T
	Exchange       T
	MarketGroup    T
	Market         T
	EpochState     T
	Oracle         T
	EventAuthority T
	Program        T
}

func (a *RolloverEpochAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.MarketGroup,
		&a.Market,
		&a.EpochState,
		&a.Oracle,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	RolloverEpochInstructionAccounts = RolloverEpochAccounts[ed25519.PublicKey]
	RolloverEpochAccountIndexes      = AccountIndexes[RolloverEpochAccounts[int]]
)

func NewRolloverEpochInstruction(
	accounts *RolloverEpochInstructionAccounts,
	args *RolloverEpochInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseRolloverEpochAccountIndexes(indexes []byte) (*RolloverEpochAccountIndexes, error) {
	return parseAccountIndexes[RolloverEpochAccounts[int]](RolloverEpochInstruction, indexes)
}

var FinalizeEpochUpdateInstructionDiscriminator = Discriminator{0x62, 0xe4, 0x64, 0x1a, 0xb9, 0x6b, 0xe8, 0x0e}

var FinalizeEpochUpdateInstruction = &InstructionDef{
	Name:          "finalize_epoch_update",
	Discriminator: FinalizeEpochUpdateInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "epoch_state", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(FinalizeEpochUpdateInstructionArgs) },
}

type FinalizeEpochUpdateInstructionArgs struct{}

func (*FinalizeEpochUpdateInstructionArgs) instruction() *InstructionDef { return FinalizeEpochUpdateInstruction }

func (*FinalizeEpochUpdateInstructionArgs) marshal(*binary.Encoder)         {}
func (*FinalizeEpochUpdateInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type FinalizeEpochUpdateAccounts[T AccountRef] struct {
	Keeper         T
	Market         T
	EpochState     T
	EventAuthority T
	Program        T
}

func (a *FinalizeEpochUpdateAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Market,
		&a.EpochState,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	FinalizeEpochUpdateInstructionAccounts = FinalizeEpochUpdateAccounts[ed25519.PublicKey]
	FinalizeEpochUpdateAccountIndexes      = AccountIndexes[FinalizeEpochUpdateAccounts[int]]
)

func NewFinalizeEpochUpdateInstruction(accounts *FinalizeEpochUpdateInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&FinalizeEpochUpdateInstructionArgs{}, accounts.fields(), opts)
}

func ParseFinalizeEpochUpdateAccountIndexes(indexes []byte) (*FinalizeEpochUpdateAccountIndexes, error) {
	return parseAccountIndexes[FinalizeEpochUpdateAccounts[int]](FinalizeEpochUpdateInstruction, indexes)
}

var SetEpochPhaseInstructionDiscriminator = Discriminator{0xef, 0x3c, 0xd8, 0x2e, 0x86, 0xfb, 0xc3, 0x1c}

var SetEpochPhaseInstruction = &InstructionDef{
	Name:          "set_epoch_phase",
	Discriminator: SetEpochPhaseInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "epoch_state", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetEpochPhaseInstructionArgs) },
}

type SetEpochPhaseInstructionArgs struct {
	Phase EpochUpdatePhase
}

func (*SetEpochPhaseInstructionArgs) instruction() *InstructionDef { return SetEpochPhaseInstruction }

func (args *SetEpochPhaseInstructionArgs) marshal(e *binary.Encoder) {
	putEpochUpdatePhase(e, args.Phase)
}

func (args *SetEpochPhaseInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Phase, err = getEpochUpdatePhase(d); err != nil {
		return errors.Wrap(err, "phase")
	}
	return nil
}

type SetEpochPhaseAccounts[T AccountRef] struct {
	Admin      T
	Exchange   T
	EpochState T
}

func (a *SetEpochPhaseAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.EpochState}
}

type (
	SetEpochPhaseInstructionAccounts = SetEpochPhaseAccounts[ed25519.PublicKey]
	SetEpochPhaseAccountIndexes      = AccountIndexes[SetEpochPhaseAccounts[int]]
)

func NewSetEpochPhaseInstruction(
	accounts *SetEpochPhaseInstructionAccounts,
	args *SetEpochPhaseInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetEpochPhaseAccountIndexes(indexes []byte) (*SetEpochPhaseAccountIndexes, error) {
	return parseAccountIndexes[SetEpochPhaseAccounts[int]](SetEpochPhaseInstruction, indexes)
}

var SetEpochDurationInstructionDiscriminator = Discriminator{0x68, 0xf4, 0x62, 0xfa, 0x14, 0x63, 0x69, 0x53}

var SetEpochDurationInstruction = &InstructionDef{
	Name:          "set_epoch_duration",
	Discriminator: SetEpochDurationInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "market_group", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetEpochDurationInstructionArgs) },
}

type SetEpochDurationInstructionArgs struct {
	EpochDurationSecs int64
}

func (*SetEpochDurationInstructionArgs) instruction() *InstructionDef { return SetEpochDurationInstruction }

func (args *SetEpochDurationInstructionArgs) marshal(e *binary.Encoder) {
	e.PutInt64(args.EpochDurationSecs)
}

func (args *SetEpochDurationInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.EpochDurationSecs, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "epoch_duration_secs")
	}
	return nil
}

type SetEpochDurationAccounts[T AccountRef] struct {
	Admin       T
	MarketGroup T
}

func (a *SetEpochDurationAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.MarketGroup}
}

type (
	SetEpochDurationInstructionAccounts = SetEpochDurationAccounts[ed25519.PublicKey]
	SetEpochDurationAccountIndexes      = AccountIndexes[SetEpochDurationAccounts[int]]
)

func NewSetEpochDurationInstruction(
	accounts *SetEpochDurationInstructionAccounts,
	args *SetEpochDurationInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetEpochDurationAccountIndexes(indexes []byte) (*SetEpochDurationAccountIndexes, error) {
	return parseAccountIndexes[SetEpochDurationAccounts[int]](SetEpochDurationInstruction, indexes)
}
