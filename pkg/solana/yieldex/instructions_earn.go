package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var InitializeEarnVaultInstructionDiscriminator = Discriminator{0xfa, 0xe3, 0xd5, 0x56, 0x31, 0x79, 0x35, 0xe7}

var InitializeEarnVaultInstruction = &InstructionDef{
	Name:          "initialize_earn_vault",
	Discriminator: InitializeEarnVaultInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "exchange"},
		{Name: "market"},
		{Name: "earn_vault", IsWritable: true},
		{Name: "share_mint", IsWritable: true},
		{Name: "token_program"},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeEarnVaultInstructionArgs) },
}

type InitializeEarnVaultInstructionArgs struct {
	RewardRate uint64
}

func (*InitializeEarnVaultInstructionArgs) instruction() *InstructionDef { return InitializeEarnVaultInstruction }

func (args *InitializeEarnVaultInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.RewardRate)
}

func (args *InitializeEarnVaultInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.RewardRate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "reward_rate")
	}
	return nil
}

type InitializeEarnVaultAccounts[T AccountRef] struct {
	Admin         T
	Exchange      T
	Market        T
	EarnVault     T
	ShareMint     T
	TokenProgram  T
	SystemProgram T
}

func (a *InitializeEarnVaultAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Exchange,
		&a.Market,
		&a.EarnVault,
		&a.ShareMint,
		&a.TokenProgram,
		&a.SystemProgram,
	}
}

type (
	InitializeEarnVaultInstructionAccounts = InitializeEarnVaultAccounts[ed25519.PublicKey]
	InitializeEarnVaultAccountIndexes      = AccountIndexes[InitializeEarnVaultAccounts[int]]
)

func NewInitializeEarnVaultInstruction(
	accounts *InitializeEarnVaultInstructionAccounts,
	args *InitializeEarnVaultInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeEarnVaultAccountIndexes(indexes []byte) (*InitializeEarnVaultAccountIndexes, error) {
	return parseAccountIndexes[InitializeEarnVaultAccounts[int]](InitializeEarnVaultInstruction, indexes)
}

var EarnDepositInstructionDiscriminator = Discriminator{0x51, 0x62, 0x71, 0xcf, 0x52, 0xc0, 0xbb, 0xea}

var EarnDepositInstruction = &InstructionDef{
	Name:          "earn_deposit",
	Discriminator: EarnDepositInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "user", IsSigner: true},
		{Name: "market"},
		{Name: "earn_vault", IsWritable: true},
		{Name: "share_mint", IsWritable: true},
		{Name: "user_pt_account", IsWritable: true},
		{Name: "user_share_account", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(EarnDepositInstructionArgs) },
}

type EarnDepositInstructionArgs struct {
	Amount uint64
}

func (*EarnDepositInstructionArgs) instruction() *InstructionDef { return EarnDepositInstruction }

func (args *EarnDepositInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *EarnDepositInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type EarnDepositAccounts[T AccountRef] struct {
	User             T
	Market           T
	EarnVault        T
	ShareMint        T
	UserPtAccount    T
	UserShareAccount T
	PtVault          T
	TokenProgram     T
	EventAuthority   T
	Program          T
}

func (a *EarnDepositAccounts[T]) fields() []*T {
	return []*T{
		&a.User,
		&a.Market,
		&a.EarnVault,
		&a.ShareMint,
		&a.UserPtAccount,
		&a.UserShareAccount,
		&a.PtVault,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	EarnDepositInstructionAccounts = EarnDepositAccounts[ed25519.PublicKey]
	EarnDepositAccountIndexes      = AccountIndexes[EarnDepositAccounts[int]]
)

func NewEarnDepositInstruction(
	accounts *EarnDepositInstructionAccounts,
	args *EarnDepositInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseEarnDepositAccountIndexes(indexes []byte) (*EarnDepositAccountIndexes, error) {
	return parseAccountIndexes[EarnDepositAccounts[int]](EarnDepositInstruction, indexes)
}

var EarnWithdrawInstructionDiscriminator = Discriminator{0x44, 0xa9, 0x28, 0x1c, 0xa5, 0x3c, 0x9d, 0x62}

var EarnWithdrawInstruction = &InstructionDef{
	Name:          "earn_withdraw",
	Discriminator: EarnWithdrawInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "user", IsSigner: true},
		{Name: "market"},
		{Name: "earn_vault", IsWritable: true},
		{Name: "share_mint", IsWritable: true},
		{Name: "user_pt_account", IsWritable: true},
		{Name: "user_share_account", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(EarnWithdrawInstructionArgs) },
}

type EarnWithdrawInstructionArgs struct {
	Shares uint64
}

func (*EarnWithdrawInstructionArgs) instruction() *InstructionDef { return EarnWithdrawInstruction }

func (args *EarnWithdrawInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Shares)
}

func (args *EarnWithdrawInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Shares, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "shares")
	}
	return nil
}

type EarnWithdrawAccounts[T AccountRef] struct {
	User             T
	Market           T
	EarnVault        T
	ShareMint        T
	UserPtAccount    T
	UserShareAccount T
	PtVault          T
	TokenProgram     T
	EventAuthority   T
	Program          T
}

func (a *EarnWithdrawAccounts[T]) fields() []*T {
	return []*T{
		&a.User,
		&a.Market,
		&a.EarnVault,
		&a.ShareMint,
		&a.UserPtAccount,
		&a.UserShareAccount,
		&a.PtVault,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	EarnWithdrawInstructionAccounts = EarnWithdrawAccounts[ed25519.PublicKey]
	EarnWithdrawAccountIndexes      = AccountIndexes[EarnWithdrawAccounts[int]]
)

func NewEarnWithdrawInstruction(
	accounts *EarnWithdrawInstructionAccounts,
	args *EarnWithdrawInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseEarnWithdrawAccountIndexes(indexes []byte) (*EarnWithdrawAccountIndexes, error) {
	return parseAccountIndexes[EarnWithdrawAccounts[int]](EarnWithdrawInstruction, indexes)
}

var ClaimEarnRewardsInstructionDiscriminator = Discriminator{0x6c, 0x78, 0xeb, 0x80, 0x5e, 0x1e, 0x67, 0xba}

var ClaimEarnRewardsInstruction = &InstructionDef{
	Name:          "claim_earn_rewards",
	Discriminator: ClaimEarnRewardsInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "user", IsSigner: true},
		{Name: "earn_vault", IsWritable: true},
		{Name: "user_share_account"},
		{Name: "quote_vault", IsWritable: true},
		{Name: "user_quote_account", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(ClaimEarnRewardsInstructionArgs) },
}

type ClaimEarnRewardsInstructionArgs struct{}

func (*ClaimEarnRewardsInstructionArgs) instruction() *InstructionDef { return ClaimEarnRewardsInstruction }

func (*ClaimEarnRewardsInstructionArgs) marshal(*binary.Encoder)         {}
func (*ClaimEarnRewardsInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type ClaimEarnRewardsAccounts[T AccountRef] struct {
	User             T
	EarnVault        T
	UserShareAccount T
	QuoteVault       T
	UserQuoteAccount T
	TokenProgram     T
	EventAuthority   T
	Program          T
}

func (a *ClaimEarnRewardsAccounts[T]) fields() []*T {
	return []*T{
		&a.User,
		&a.EarnVault,
		&a.UserShareAccount,
		&a.QuoteVault,
		&a.UserQuoteAccount,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	ClaimEarnRewardsInstructionAccounts = ClaimEarnRewardsAccounts[ed25519.PublicKey]
	ClaimEarnRewardsAccountIndexes      = AccountIndexes[ClaimEarnRewardsAccounts[int]]
)

func NewClaimEarnRewardsInstruction(accounts *ClaimEarnRewardsInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&ClaimEarnRewardsInstructionArgs{}, accounts.fields(), opts)
}

func ParseClaimEarnRewardsAccountIndexes(indexes []byte) (*ClaimEarnRewardsAccountIndexes, error) {
	return parseAccountIndexes[ClaimEarnRewardsAccounts[int]](ClaimEarnRewardsInstruction, indexes)
}

var SetEarnRewardRateInstructionDiscriminator = Discriminator{0xa1, 0x7c, 0x6f, 0x22, 0x0a, 0xf7, 0xc1, 0x47}

var SetEarnRewardRateInstruction = &InstructionDef{
	Name:          "set_earn_reward_rate",
	Discriminator: SetEarnRewardRateInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "exchange"},
		{Name: "earn_vault", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetEarnRewardRateInstructionArgs) },
}

type SetEarnRewardRateInstructionArgs struct {
	RewardRate uint64
}

func (*SetEarnRewardRateInstructionArgs) instruction() *InstructionDef { return SetEarnRewardRateInstruction }

func (args *SetEarnRewardRateInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.RewardRate)
}

func (args *SetEarnRewardRateInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.RewardRate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "reward_rate")
	}
	return nil
}

type SetEarnRewardRateAccounts[T AccountRef] struct {
	Admin     T
	Exchange  T
	EarnVault T
}

func (a *SetEarnRewardRateAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Exchange, &a.EarnVault}
}

type (
	SetEarnRewardRateInstructionAccounts = SetEarnRewardRateAccounts[ed25519.PublicKey]
	SetEarnRewardRateAccountIndexes      = AccountIndexes[SetEarnRewardRateAccounts[int]]
)

func NewSetEarnRewardRateInstruction(
	accounts *SetEarnRewardRateInstructionAccounts,
	args *SetEarnRewardRateInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetEarnRewardRateAccountIndexes(indexes []byte) (*SetEarnRewardRateAccountIndexes, error) {
	return parseAccountIndexes[SetEarnRewardRateAccounts[int]](SetEarnRewardRateInstruction, indexes)
}

var HarvestEarnVaultInstructionDiscriminator = Discriminator{0x6d, 0xbe, 0xa3, 0x53, 0x03, 0x0e, 0xde, 0xe0}

var HarvestEarnVaultInstruction = &InstructionDef{
	Name:          "harvest_earn_vault",
	Discriminator: HarvestEarnVaultInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "earn_vault", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(HarvestEarnVaultInstructionArgs) },
}

type HarvestEarnVaultInstructionArgs struct{}

func (*HarvestEarnVaultInstructionArgs) instruction() *InstructionDef { return HarvestEarnVaultInstruction }

func (*HarvestEarnVaultInstructionArgs) marshal(*binary.Encoder)         {}
func (*HarvestEarnVaultInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type HarvestEarnVaultAccounts[T AccountRef] struct {
	Keeper         T
	Market         T
	EarnVault      T
	EventAuthority T
	Program        T
}

func (a *HarvestEarnVaultAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Market,
		&a.EarnVault,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	HarvestEarnVaultInstructionAccounts = HarvestEarnVaultAccounts[ed25519.PublicKey]
	HarvestEarnVaultAccountIndexes      = AccountIndexes[HarvestEarnVaultAccounts[int]]
)

func NewHarvestEarnVaultInstruction(accounts *HarvestEarnVaultInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&HarvestEarnVaultInstructionArgs{}, accounts.fields(), opts)
}

func ParseHarvestEarnVaultAccountIndexes(indexes []byte) (*HarvestEarnVaultAccountIndexes, error) {
	return parseAccountIndexes[HarvestEarnVaultAccounts[int]](HarvestEarnVaultInstruction, indexes)
}
