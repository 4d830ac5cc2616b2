package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var InitializeOracleInstructionDiscriminator = Discriminator{0x90, 0xdf, 0x83, 0x78, 0xc4, 0xfd, 0xb5, 0x63}

var InitializeOracleInstruction = &InstructionDef{
	Name:          "initialize_oracle",
	Discriminator: InitializeOracleInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange"},
		{Name: "market"},
		{Name: "oracle", IsWritable: true},
		{Name: "oracle_authority"},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeOracleInstructionArgs) },
}

type InitializeOracleInstructionArgs struct {
	Source           OracleSource
	MaxStalenessSecs uint32
}

func (*InitializeOracleInstructionArgs) instruction() *InstructionDef { return InitializeOracleInstruction }

func (args *InitializeOracleInstructionArgs) marshal(e *binary.Encoder) {
	putOracleSource(e, args.Source)
	e.PutUint32(args.MaxStalenessSecs)
}

func (args *InitializeOracleInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Source, err = getOracleSource(d); err != nil {
		return errors.Wrap(err, "source")
	}
	if args.MaxStalenessSecs, err = d.GetUint32(); err != nil {
		return errors.Wrap(err, "max_staleness_secs")
	}
	return nil
}

type InitializeOracleAccounts[T AccountRef] struct {
	Admin           T
	Exchange        T
	Market          T
	Oracle          T
	OracleAuthority T
	SystemProgram   T
}

func (a *InitializeOracleAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.Oracle,
		&a.OracleAuthority,
		&a.SystemProgram,
	}
}

type (
	InitializeOracleInstructionAccounts = InitializeOracleAccounts[ed25519.PublicKey]
	InitializeOracleAccountIndexes      = AccountIndexes[InitializeOracleAccounts[int]]
)

func NewInitializeOracleInstruction(
	accounts *InitializeOracleInstructionAccounts,
	args *InitializeOracleInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeOracleAccountIndexes(indexes []byte) (*InitializeOracleAccountIndexes, error) {
	return parseAccountIndexes[InitializeOracleAccounts[int]](InitializeOracleInstruction, indexes)
}

var UpdateOracleRateInstructionDiscriminator = Discriminator{0xb7, 0x14, 0xfb, 0x0b, 0x99, 0x38, 0x72, 0x08}

var UpdateOracleRateInstruction = &InstructionDef{
	Name:          "update_oracle_rate",
	Discriminator: UpdateOracleRateInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "oracle_authority", IsSigner: true},
		{Name: "oracle", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(UpdateOracleRateInstructionArgs) },
}

type UpdateOracleRateInstructionArgs struct {
	Rate       uint64
	Confidence uint64
	Timestamp  int64
}

func (*UpdateOracleRateInstructionArgs) instruction() *InstructionDef { return UpdateOracleRateInstruction }

func (args *UpdateOracleRateInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Rate)
	e.PutUint64(args.Confidence)
	e.PutInt64(args.Timestamp)
}

func (args *UpdateOracleRateInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Rate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "rate")
	}
	if args.Confidence, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "confidence")
	}
	if args.Timestamp, err = d.GetInt64(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	return nil
}

type UpdateOracleRateAccounts[T AccountRef] struct {
	OracleAuthority T
	Oracle          T
	EventAuthority  T
	Program         T
}

func (a *UpdateOracleRateAccounts[T]) fields() []*T {
	return []*T{
		&a.OracleAuthority,
		&a.Oracle,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	UpdateOracleRateInstructionAccounts = UpdateOracleRateAccounts[ed25519.PublicKey]
	UpdateOracleRateAccountIndexes      = AccountIndexes[UpdateOracleRateAccounts[int]]
)

func NewUpdateOracleRateInstruction(
	accounts *UpdateOracleRateInstructionAccounts,
	args *UpdateOracleRateInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseUpdateOracleRateAccountIndexes(indexes []byte) (*UpdateOracleRateAccountIndexes, error) {
	return parseAccountIndexes[UpdateOracleRateAccounts[int]](UpdateOracleRateInstruction, indexes)
}

var BatchUpdateOracleRatesInstructionDiscriminator = Discriminator{0x23, 0x3d, 0x20, 0x1d, 0xf2, 0xa0, 0xa7, 0x22}

var BatchUpdateOracleRatesInstruction = &InstructionDef{
	Name:          "batch_update_oracle_rates",
	Discriminator: BatchUpdateOracleRatesInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "oracle_authority", IsSigner: true},
		{Name: "oracle", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(BatchUpdateOracleRatesInstructionArgs) },
}

type BatchUpdateOracleRatesInstructionArgs struct {
	Updates []OracleObservationUpdate
}

func (*BatchUpdateOracleRatesInstructionArgs) instruction() *InstructionDef { return BatchUpdateOracleRatesInstruction }

func (args *BatchUpdateOracleRatesInstructionArgs) marshal(e *binary.Encoder) {
	binary.PutVec(e, args.Updates, putOracleObservationUpdate)
}

func (args *BatchUpdateOracleRatesInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Updates, err = binary.GetVec(d, 24, getOracleObservationUpdate); err != nil {
		return errors.Wrap(err, "updates")
	}
	return nil
}

type BatchUpdateOracleRatesAccounts[T AccountRef] struct {
	OracleAuthority T
	Oracle          T
	EventAuthority  T
	Program         T
}

func (a *BatchUpdateOracleRatesAccounts[T]) fields() []*T {
	return []*T{
		&a.OracleAuthority,
		&a.Oracle,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	BatchUpdateOracleRatesInstructionAccounts = BatchUpdateOracleRatesAccounts[ed25519.PublicKey]
	BatchUpdateOracleRatesAccountIndexes      = AccountIndexes[BatchUpdateOracleRatesAccounts[int]]
)

func NewBatchUpdateOracleRatesInstruction(
	accounts *BatchUpdateOracleRatesInstructionAccounts,
	args *BatchUpdateOracleRatesInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseBatchUpdateOracleRatesAccountIndexes(indexes []byte) (*BatchUpdateOracleRatesAccountIndexes, error) {
	return parseAccountIndexes[BatchUpdateOracleRatesAccounts[int]](BatchUpdateOracleRatesInstruction, indexes)
}

var PurgeOracleObservationsInstructionDiscriminator = Discriminator{0x6d, 0x59, 0x42, 0x5a, 0x9e, 0xa0, 0xf5, 0x28}

// PurgeOracleObservationsInstruction drops the observations recorded at the given timestamps.
var PurgeOracleObservationsInstruction = &InstructionDef{
	Name:          "purge_oracle_observations",
	Discriminator: PurgeOracleObservationsInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "oracle_authority", IsSigner: true},
		{Name: "oracle", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(PurgeOracleObservationsInstructionArgs) },
}

type PurgeOracleObservationsInstructionArgs struct {
	Stamps []uint32
}

func (*PurgeOracleObservationsInstructionArgs) instruction() *InstructionDef { return PurgeOracleObservationsInstruction }

func (args *PurgeOracleObservationsInstructionArgs) marshal(e *binary.Encoder) {
	binary.PutVec(e, args.Stamps, (*binary.Encoder).PutUint32)
}

func (args *PurgeOracleObservationsInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Stamps, err = binary.GetVec(d, 4, (*binary.Decoder).GetUint32); err != nil {
		return errors.Wrap(err, "stamps")
	}
	return nil
}

type PurgeOracleObservationsAccounts[T AccountRef] struct {
	OracleAuthority T
	Oracle          T
}

func (a *PurgeOracleObservationsAccounts[T]) fields() []*T {
	return []*T{&a.OracleAuthority, &a.Oracle}
}

type (
	PurgeOracleObservationsInstructionAccounts = PurgeOracleObservationsAccounts[ed25519.PublicKey]
	PurgeOracleObservationsAccountIndexes      = AccountIndexes[PurgeOracleObservationsAccounts[int]]
)

func NewPurgeOracleObservationsInstruction(
	accounts *PurgeOracleObservationsInstructionAccounts,
	args *PurgeOracleObservationsInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParsePurgeOracleObservationsAccountIndexes(indexes []byte) (*PurgeOracleObservationsAccountIndexes, error) {
	return parseAccountIndexes[PurgeOracleObservationsAccounts[int]](PurgeOracleObservationsInstruction, indexes)
}

var SetOracleSourceInstructionDiscriminator = Discriminator{0xab, 0xd7, 0x6a, 0x38, 0xa1, 0xbb, 0xbc, 0x63}

var SetOracleSourceInstruction = &InstructionDef{
	Name:          "set_oracle_source",
	Discriminator: SetOracleSourceInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "oracle", IsWritable: true},
		{Name: "source_feed"},
	},
	newArgs: func() InstructionArgs { return new(SetOracleSourceInstructionArgs) },
}

type SetOracleSourceInstructionArgs struct {
	Source OracleSource
}

func (*SetOracleSourceInstructionArgs) instruction() *InstructionDef { return SetOracleSourceInstruction }

func (args *SetOracleSourceInstructionArgs) marshal(e *binary.Encoder) {
	putOracleSource(e, args.Source)
}

func (args *SetOracleSourceInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Source, err = getOracleSource(d); err != nil {
		return errors.Wrap(err, "source")
	}
	return nil
}

type SetOracleSourceAccounts[T AccountRef] struct {
	Admin      T
	Exchange   T
	Oracle     T
	SourceFeed T
}

func (a *SetOracleSourceAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Oracle,
		&a.SourceFeed,
	}
}

type (
	SetOracleSourceInstructionAccounts = SetOracleSourceAccounts[ed25519.PublicKey]
	SetOracleSourceAccountIndexes      = AccountIndexes[SetOracleSourceAccounts[int]]
)

func NewSetOracleSourceInstruction(
	accounts *SetOracleSourceInstructionAccounts,
	args *SetOracleSourceInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetOracleSourceAccountIndexes(indexes []byte) (*SetOracleSourceAccountIndexes, error) {
	return parseAccountIndexes[SetOracleSourceAccounts[int]](SetOracleSourceInstruction, indexes)
}

var SetOracleAuthorityInstructionDiscriminator = Discriminator{0x27, 0x9b, 0x42, 0x6a, 0xd5, 0xe2, 0x72, 0xae}

var SetOracleAuthorityInstruction = &InstructionDef{
	Name:          "set_oracle_authority",
	Discriminator: SetOracleAuthorityInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "oracle", IsWritable: true},
		{Name: "new_authority"},
	},
	newArgs: func() InstructionArgs { return new(SetOracleAuthorityInstructionArgs) },
}

type SetOracleAuthorityInstructionArgs struct{}

func (*SetOracleAuthorityInstructionArgs) instruction() *InstructionDef { return SetOracleAuthorityInstruction }

func (*SetOracleAuthorityInstructionArgs) marshal(*binary.Encoder)         {}
func (*SetOracleAuthorityInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type SetOracleAuthorityAccounts[T AccountRef] struct {
	Admin        T
	Exchange     T
	Oracle       T
	NewAuthority T
}

func (a *SetOracleAuthorityAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Oracle,
		&a.NewAuthority,
	}
}

type (
	SetOracleAuthorityInstructionAccounts = SetOracleAuthorityAccounts[ed25519.PublicKey]
	SetOracleAuthorityAccountIndexes      = AccountIndexes[SetOracleAuthorityAccounts[int]]
)

func NewSetOracleAuthorityInstruction(accounts *SetOracleAuthorityInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&SetOracleAuthorityInstructionArgs{}, accounts.fields(), opts)
}

func ParseSetOracleAuthorityAccountIndexes(indexes []byte) (*SetOracleAuthorityAccountIndexes, error) {
	return parseAccountIndexes[SetOracleAuthorityAccounts[int]](SetOracleAuthorityInstruction, indexes)
}

var SetOracleMaxStalenessInstructionDiscriminator = Discriminator{0x1c, 0x46, 0xc9, 0x81, 0x09, 0x24, 0xb8, 0x04}

var SetOracleMaxStalenessInstruction = &InstructionDef{
	Name:          "set_oracle_max_staleness",
	Discriminator: SetOracleMaxStalenessInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "oracle", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetOracleMaxStalenessInstructionArgs) },
}

type SetOracleMaxStalenessInstructionArgs struct {
	MaxStalenessSecs uint32
}

func (*SetOracleMaxStalenessInstructionArgs) instruction() *InstructionDef { return SetOracleMaxStalenessInstruction }

func (args *SetOracleMaxStalenessInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint32(args.MaxStalenessSecs)
}

func (args *SetOracleMaxStalenessInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.MaxStalenessSecs, err = d.GetUint32(); err != nil {
		return errors.Wrap(err, "max_staleness_secs")
	}
	return nil
}

type SetOracleMaxStalenessAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
	Oracle   T
}

func (a *SetOracleMaxStalenessAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.Oracle}
}

type (
	SetOracleMaxStalenessInstructionAccounts = SetOracleMaxStalenessAccounts[ed25519.PublicKey]
	SetOracleMaxStalenessAccountIndexes      = AccountIndexes[SetOracleMaxStalenessAccounts[int]]
)

func NewSetOracleMaxStalenessInstruction(
	accounts *SetOracleMaxStalenessInstructionAccounts,
	args *SetOracleMaxStalenessInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetOracleMaxStalenessAccountIndexes(indexes []byte) (*SetOracleMaxStalenessAccountIndexes, error) {
	return parseAccountIndexes[SetOracleMaxStalenessAccounts[int]](SetOracleMaxStalenessInstruction, indexes)
}

var CrankOracleFromFeedInstructionDiscriminator = Discriminator{0x96, 0x48, 0xc3, 0x9d, 0x0d, 0x3a, 0x6c, 0xcd}

var CrankOracleFromFeedInstruction = &InstructionDef{
	Name:          "crank_oracle_from_feed",
	Discriminator: CrankOracleFromFeedInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "oracle", IsWritable: true},
		{Name: "source_feed"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(CrankOracleFromFeedInstructionArgs) },
}

type CrankOracleFromFeedInstructionArgs struct{}

func (*CrankOracleFromFeedInstructionArgs) instruction() *InstructionDef { return CrankOracleFromFeedInstruction }

func (*CrankOracleFromFeedInstructionArgs) marshal(*binary.Encoder)         {}
func (*CrankOracleFromFeedInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type CrankOracleFromFeedAccounts[T AccountRef] struct {
	Keeper         T
	Oracle         T
	SourceFeed     T
	EventAuthority T
	Program        T
}

func (a *CrankOracleFromFeedAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Oracle,
		&a.SourceFeed,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	CrankOracleFromFeedInstructionAccounts = CrankOracleFromFeedAccounts[ed25519.PublicKey]
	CrankOracleFromFeedAccountIndexes      = AccountIndexes[CrankOracleFromFeedAccounts[int]]
)

func NewCrankOracleFromFeedInstruction(accounts *CrankOracleFromFeedInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&CrankOracleFromFeedInstructionArgs{}, accounts.fields(), opts)
}

func ParseCrankOracleFromFeedAccountIndexes(indexes []byte) (*CrankOracleFromFeedAccountIndexes, error) {
	return parseAccountIndexes[CrankOracleFromFeedAccounts[int]](CrankOracleFromFeedInstruction, indexes)
}

var CloseOracleInstructionDiscriminator = Discriminator{0x4a, 0xef, 0x31, 0xdf, 0xce, 0x34, 0xbd, 0x7b}

var CloseOracleInstruction = &InstructionDef{
	Name:          "close_oracle",
	Discriminator: CloseOracleInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange"},
		{Name: "oracle", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(CloseOracleInstructionArgs) },
}

type CloseOracleInstructionArgs struct{}

func (*CloseOracleInstructionArgs) instruction() *InstructionDef { return CloseOracleInstruction }

func (*CloseOracleInstructionArgs) marshal(*binary.Encoder)         {}
func (*CloseOracleInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type CloseOracleAccounts[T AccountRef] struct {
	Admin    T
	Exchange T
	Oracle   T
}

func (a *CloseOracleAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.Oracle}
}

type (
	CloseOracleInstructionAccounts = CloseOracleAccounts[ed25519.PublicKey]
	CloseOracleAccountIndexes      = AccountIndexes[CloseOracleAccounts[int]]
)

func NewCloseOracleInstruction(accounts *CloseOracleInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&CloseOracleInstructionArgs{}, accounts.fields(), opts)
}

func ParseCloseOracleAccountIndexes(indexes []byte) (*CloseOracleAccountIndexes, error) {
	return parseAccountIndexes[CloseOracleAccounts[int]](CloseOracleInstruction, indexes)
}
