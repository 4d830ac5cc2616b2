package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var OpenLpPositionInstructionDiscriminator = Discriminator{0xa2, 0xc0, 0x0a, 0x98, 0x44, 0xfe, 0xb7, 0xc6}

var OpenLpPositionInstruction = &InstructionDef{
	Name:          "open_lp_position",
	Discriminator: OpenLpPositionInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "market"},
		{Name: "margin_account", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(OpenLpPositionInstructionArgs) },
}

type OpenLpPositionInstructionArgs struct {
	PositionID uint32
	TickLower  int32
	TickUpper  int32
}

func (*OpenLpPositionInstructionArgs) instruction() *InstructionDef { return OpenLpPositionInstruction }

func (args *OpenLpPositionInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint32(args.PositionID)
	e.PutInt32(args.TickLower)
	e.PutInt32(args.TickUpper)
}

func (args *OpenLpPositionInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.PositionID, err = d.GetUint32(); err != nil {
		return errors.Wrap(err, "position_id")
	}
	if args.TickLower, err = d.GetInt32(); err != nil {
		return errors.Wrap(err, "tick_lower")
	}
	if args.TickUpper, err = d.GetInt32(); err != nil {
		return errors.Wrap(err, "tick_upper")
	}
	return nil
}

type OpenLpPositionAccounts[T AccountRef] struct {
	Owner         T
	Market        T
	MarginAccount T
	LpPosition    T
	SystemProgram T
}

func (a *OpenLpPositionAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Market,
		&a.MarginAccount,
		&a.LpPosition,
		&a.SystemProgram,
	}
}

type (
	OpenLpPositionInstructionAccounts = OpenLpPositionAccounts[ed25519.PublicKey]
	OpenLpPositionAccountIndexes      = AccountIndexes[OpenLpPositionAccounts[int]]
)

func NewOpenLpPositionInstruction(
	accounts *OpenLpPositionInstructionAccounts,
	args *OpenLpPositionInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseOpenLpPositionAccountIndexes(indexes []byte) (*OpenLpPositionAccountIndexes, error) {
	return parseAccountIndexes[OpenLpPositionAccounts[int]](OpenLpPositionInstruction, indexes)
}

var CloseLpPositionInstructionDiscriminator = Discriminator{0x21, 0x76, 0x39, 0xc3, 0x85, 0x7e, 0x69, 0x12}

var CloseLpPositionInstruction = &InstructionDef{
	Name:          "close_lp_position",
	Discriminator: CloseLpPositionInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(CloseLpPositionInstructionArgs) },
}

type CloseLpPositionInstructionArgs struct{}

func (*CloseLpPositionInstructionArgs) instruction() *InstructionDef { return CloseLpPositionInstruction }

func (*CloseLpPositionInstructionArgs) marshal(*binary.Encoder)         {}
func (*CloseLpPositionInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type CloseLpPositionAccounts[T AccountRef] struct {
	Owner         T
	MarginAccount T
	LpPosition    T
}

func (a *CloseLpPositionAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.MarginAccount, &a.LpPosition}
}

type (
	CloseLpPositionInstructionAccounts = CloseLpPositionAccounts[ed25519.PublicKey]
	CloseLpPositionAccountIndexes      = AccountIndexes[CloseLpPositionAccounts[int]]
)

func NewCloseLpPositionInstruction(accounts *CloseLpPositionInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&CloseLpPositionInstructionArgs{}, accounts.fields(), opts)
}

func ParseCloseLpPositionAccountIndexes(indexes []byte) (*CloseLpPositionAccountIndexes, error) {
	return parseAccountIndexes[CloseLpPositionAccounts[int]](CloseLpPositionInstruction, indexes)
}

var AddLiquidityInstructionDiscriminator = Discriminator{0xb5, 0x9d, 0x59, 0x43, 0x8f, 0xb6, 0x34, 0x48}

var AddLiquidityInstruction = &InstructionDef{
	Name:          "add_liquidity",
	Discriminator: AddLiquidityInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
		{Name: "tick_array_lower", IsWritable: true},
		{Name: "tick_array_upper", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "quote_vault", IsWritable: true},
		{Name: "owner_pt_account", IsWritable: true},
		{Name: "owner_quote_account", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(AddLiquidityInstructionArgs) },
}

type AddLiquidityInstructionArgs struct {
	LiquidityAmount binary.Uint128
	MaxPtAmount     uint64
	MaxQuoteAmount  uint64
}

func (*AddLiquidityInstructionArgs) instruction() *InstructionDef { return AddLiquidityInstruction }

func (args *AddLiquidityInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint128(args.LiquidityAmount)
	e.PutUint64(args.MaxPtAmount)
	e.PutUint64(args.MaxQuoteAmount)
}

func (args *AddLiquidityInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.LiquidityAmount, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "liquidity_amount")
	}
	if args.MaxPtAmount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "max_pt_amount")
	}
	if args.MaxQuoteAmount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "max_quote_amount")
	}
	return nil
}

type AddLiquidityAccounts[T AccountRef] struct {
	Owner             T
	Market            T
	MarginAccount     T
	LpPosition        T
	TickArrayLower    T
	TickArrayUpper    T
	PtVault           T
	QuoteVault        T
	OwnerPtAccount    T
	OwnerQuoteAccount T
	TokenProgram      T
	EventAuthority    T
	Program           T
}

func (a *AddLiquidityAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Market,
		&a.MarginAccount,
		&a.LpPosition,
		&a.TickArrayLower,
		&a.TickArrayUpper,
		&a.PtVault,
		&a.QuoteVault,
		&a.OwnerPtAccount,
		&a.OwnerQuoteAccount,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	AddLiquidityInstructionAccounts = AddLiquidityAccounts[ed25519.PublicKey]
	AddLiquidityAccountIndexes      = AccountIndexes[AddLiquidityAccounts[int]]
)

func NewAddLiquidityInstruction(
	accounts *AddLiquidityInstructionAccounts,
	args *AddLiquidityInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseAddLiquidityAccountIndexes(indexes []byte) (*AddLiquidityAccountIndexes, error) {
	return parseAccountIndexes[AddLiquidityAccounts[int]](AddLiquidityInstruction, indexes)
}

var RemoveLiquidityInstructionDiscriminator = Discriminator{0x50, 0x55, 0xd1, 0x48, 0x18, 0xce, 0xb1, 0x6c}

var RemoveLiquidityInstruction = &InstructionDef{
	Name:          "remove_liquidity",
	Discriminator: RemoveLiquidityInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
		{Name: "tick_array_lower", IsWritable: true},
		{Name: "tick_array_upper", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "quote_vault", IsWritable: true},
		{Name: "owner_pt_account", IsWritable: true},
		{Name: "owner_quote_account", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(RemoveLiquidityInstructionArgs) },
}

type RemoveLiquidityInstructionArgs struct {
	LiquidityAmount binary.Uint128
	MinPtAmount     uint64
	MinQuoteAmount  uint64
}

func (*RemoveLiquidityInstructionArgs) instruction() *InstructionDef { return RemoveLiquidityInstruction }

func (args *RemoveLiquidityInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint128(args.LiquidityAmount)
	e.PutUint64(args.MinPtAmount)
	e.PutUint64(args.MinQuoteAmount)
}

func (args *RemoveLiquidityInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.LiquidityAmount, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "liquidity_amount")
	}
	if args.MinPtAmount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "min_pt_amount")
	}
	if args.MinQuoteAmount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "min_quote_amount")
	}
	return nil
}

type RemoveLiquidityAccounts[T AccountRef] struct {
	Owner             T
	Market            T
	MarginAccount     T
	LpPosition        T
	TickArrayLower    T
	TickArrayUpper    T
	PtVault           T
	QuoteVault        T
	OwnerPtAccount    T
	OwnerQuoteAccount T
	TokenProgram      T
	EventAuthority    T
	Program           T
}

func (a *RemoveLiquidityAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Market,
		&a.MarginAccount,
		&a.LpPosition,
		&a.TickArrayLower,
		&a.TickArrayUpper,
		&a.PtVault,
		&a.QuoteVault,
		&a.OwnerPtAccount,
		&a.OwnerQuoteAccount,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	RemoveLiquidityInstructionAccounts = RemoveLiquidityAccounts[ed25519.PublicKey]
	RemoveLiquidityAccountIndexes      = AccountIndexes[RemoveLiquidityAccounts[int]]
)

func NewRemoveLiquidityInstruction(
	accounts *RemoveLiquidityInstructionAccounts,
	args *RemoveLiquidityInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseRemoveLiquidityAccountIndexes(indexes []byte) (*RemoveLiquidityAccountIndexes, error) {
	return parseAccountIndexes[RemoveLiquidityAccounts[int]](RemoveLiquidityInstruction, indexes)
}

var CollectLpFeesInstructionDiscriminator = Discriminator{0x08, 0xae, 0xc9, 0x4e, 0x8d, 0x75, 0xa3, 0x21}

var CollectLpFeesInstruction = &InstructionDef{
	Name:          "collect_lp_fees",
	Discriminator: CollectLpFeesInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
		{Name: "tick_array_lower"},
		{Name: "tick_array_upper"},
		{Name: "quote_vault", IsWritable: true},
		{Name: "owner_quote_account", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(CollectLpFeesInstructionArgs) },
}

type CollectLpFeesInstructionArgs struct{}

func (*CollectLpFeesInstructionArgs) instruction() *InstructionDef { return CollectLpFeesInstruction }

func (*CollectLpFeesInstructionArgs) marshal(*binary.Encoder)         {}
func (*CollectLpFeesInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type CollectLpFeesAccounts[T AccountRef] struct {
	Owner             T
	Market            T
	LpPosition        T
	TickArrayLower    T
	TickArrayUpper    T
	QuoteVault        T
	OwnerQuoteAccount T
	TokenProgram      T
	EventAuthority    T
	Program           T
}

func (a *CollectLpFeesAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Market,
		&a.LpPosition,
		&a.TickArrayLower,
		&a.TickArrayUpper,
		&a.QuoteVault,
		&a.OwnerQuoteAccount,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	CollectLpFeesInstructionAccounts = CollectLpFeesAccounts[ed25519.PublicKey]
	CollectLpFeesAccountIndexes      = AccountIndexes[CollectLpFeesAccounts[int]]
)

func NewCollectLpFeesInstruction(accounts *CollectLpFeesInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&CollectLpFeesInstructionArgs{}, accounts.fields(), opts)
}

func ParseCollectLpFeesAccountIndexes(indexes []byte) (*CollectLpFeesAccountIndexes, error) {
	return parseAccountIndexes[CollectLpFeesAccounts[int]](CollectLpFeesInstruction, indexes)
}

var IncreaseLpMarginInstructionDiscriminator = Discriminator{0xd2, 0x90, 0xf7, 0xd1, 0x3a, 0x4f, 0xb5, 0x7c}

var IncreaseLpMarginInstruction = &InstructionDef{
	Name:          "increase_lp_margin",
	Discriminator: IncreaseLpMarginInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(IncreaseLpMarginInstructionArgs) },
}

type IncreaseLpMarginInstructionArgs struct {
	Amount uint64
}

func (*IncreaseLpMarginInstructionArgs) instruction() *InstructionDef { return IncreaseLpMarginInstruction }

func (args *IncreaseLpMarginInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *IncreaseLpMarginInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type IncreaseLpMarginAccounts[T AccountRef] struct {
	Owner         T
	MarginAccount T
	LpPosition    T
}

func (a *IncreaseLpMarginAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.MarginAccount, &a.LpPosition}
}

type (
	IncreaseLpMarginInstructionAccounts = IncreaseLpMarginAccounts[ed25519.PublicKey]
	IncreaseLpMarginAccountIndexes      = AccountIndexes[IncreaseLpMarginAccounts[int]]
)

func NewIncreaseLpMarginInstruction(
	accounts *IncreaseLpMarginInstructionAccounts,
	args *IncreaseLpMarginInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseIncreaseLpMarginAccountIndexes(indexes []byte) (*IncreaseLpMarginAccountIndexes, error) {
	return parseAccountIndexes[IncreaseLpMarginAccounts[int]](IncreaseLpMarginInstruction, indexes)
}

var DecreaseLpMarginInstructionDiscriminator = Discriminator{0xea, 0x90, 0x00, 0x81, 0x7b, 0x4e, 0x07, 0x62}

var DecreaseLpMarginInstruction = &InstructionDef{
	Name:          "decrease_lp_margin",
	Discriminator: DecreaseLpMarginInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
		{Name: "oracle"},
	},
	newArgs: func() InstructionArgs { return new(DecreaseLpMarginInstructionArgs) },
}

type DecreaseLpMarginInstructionArgs struct {
	Amount uint64
}

func (*DecreaseLpMarginInstructionArgs) instruction() *InstructionDef { return DecreaseLpMarginInstruction }

func (args *DecreaseLpMarginInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
}

func (args *DecreaseLpMarginInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

type DecreaseLpMarginAccounts[T AccountRef] struct {
	Owner         T
	MarginAccount T
	LpPosition    T
	Oracle        T
}

func (a *DecreaseLpMarginAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.MarginAccount,
		&a.LpPosition,
		&a.Oracle,
	}
}

type (
	DecreaseLpMarginInstructionAccounts = DecreaseLpMarginAccounts[ed25519.PublicKey]
	DecreaseLpMarginAccountIndexes      = AccountIndexes[DecreaseLpMarginAccounts[int]]
)

func NewDecreaseLpMarginInstruction(
	accounts *DecreaseLpMarginInstructionAccounts,
	args *DecreaseLpMarginInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseDecreaseLpMarginAccountIndexes(indexes []byte) (*DecreaseLpMarginAccountIndexes, error) {
	return parseAccountIndexes[DecreaseLpMarginAccounts[int]](DecreaseLpMarginInstruction, indexes)
}

var TransferLpPositionInstructionDiscriminator = Discriminator{0xc8, 0x50, 0x4f, 0x31, 0x8a, 0x7b, 0x7b, 0x47}

var TransferLpPositionInstruction = &InstructionDef{
	Name:          "transfer_lp_position",
	Discriminator: TransferLpPositionInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "lp_position", IsWritable: true},
		{Name: "new_owner"},
	},
	newArgs: func() InstructionArgs { return new(TransferLpPositionInstructionArgs) },
}

type TransferLpPositionInstructionArgs struct{}

func (*TransferLpPositionInstructionArgs) instruction() *InstructionDef { return TransferLpPositionInstruction }

func (*TransferLpPositionInstructionArgs) marshal(*binary.Encoder)         {}
func (*TransferLpPositionInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type TransferLpPositionAccounts[T AccountRef] struct {
	Owner      T
	LpPosition T
	NewOwner   T
}

func (a *TransferLpPositionAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.LpPosition, &a.NewOwner}
}

type (
	TransferLpPositionInstructionAccounts = TransferLpPositionAccounts[ed25519.PublicKey]
	TransferLpPositionAccountIndexes      = AccountIndexes[TransferLpPositionAccounts[int]]
)

func NewTransferLpPositionInstruction(accounts *TransferLpPositionInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&TransferLpPositionInstructionArgs{}, accounts.fields(), opts)
}

func ParseTransferLpPositionAccountIndexes(indexes []byte) (*TransferLpPositionAccountIndexes, error) {
	return parseAccountIndexes[TransferLpPositionAccounts[int]](TransferLpPositionInstruction, indexes)
}

var SwapInstructionDiscriminator = Discriminator{0xf8, 0xc6, 0x9e, 0x91, 0xe1, 0x75, 0x87, 0xc8}

var SwapInstruction = &InstructionDef{
	Name:          "swap",
	Discriminator: SwapInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "trader", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
		{Name: "trader_pt_account", IsWritable: true},
		{Name: "trader_quote_account", IsWritable: true},
		{Name: "pt_vault", IsWritable: true},
		{Name: "quote_vault", IsWritable: true},
		{Name: "tick_array_0", IsWritable: true},
		{Name: "tick_array_1", IsWritable: true},
		{Name: "tick_array_2", IsWritable: true},
		{Name: "token_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(SwapInstructionArgs) },
}

type SwapInstructionArgs struct {
	Amount                 uint64
	OtherAmountThreshold   uint64
	SqrtPriceLimit         binary.Uint128
	AmountSpecifiedIsInput bool
	PtToQuote              bool
}

func (*SwapInstructionArgs) instruction() *InstructionDef { return SwapInstruction }

func (args *SwapInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.Amount)
	e.PutUint64(args.OtherAmountThreshold)
	e.PutUint128(args.SqrtPriceLimit)
	e.PutBool(args.AmountSpecifiedIsInput)
	e.PutBool(args.PtToQuote)
}

func (args *SwapInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Amount, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if args.OtherAmountThreshold, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "other_amount_threshold")
	}
	if args.SqrtPriceLimit, err = d.GetUint128(); err != nil {
		return errors.Wrap(err, "sqrt_price_limit")
	}
	if args.AmountSpecifiedIsInput, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "amount_specified_is_input")
	}
	if args.PtToQuote, err = d.GetBool(); err != nil {
		return errors.Wrap(err, "pt_to_quote")
	}
	return nil
}

type SwapAccounts[T AccountRef] struct {
	Trader             T
	Market             T
	Oracle             T
	TraderPtAccount    T
	TraderQuoteAccount T
	PtVault            T
	QuoteVault         T
	TickArray0         T
	TickArray1         T
	TickArray2         T
	TokenProgram       T
	EventAuthority     T
	Program            T
}

func (a *SwapAccounts[T]) fields() []*T {
	return []*T{
		&a.Trader,
		&a.Market,
		&a.Oracle,
		&a.TraderPtAccount,
		&a.TraderQuoteAccount,
		&a.PtVault,
		&a.QuoteVault,
		&a.TickArray0,
		&a.TickArray1,
		&a.TickArray2,
		&a.TokenProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	SwapInstructionAccounts = SwapAccounts[ed25519.PublicKey]
	SwapAccountIndexes      = AccountIndexes[SwapAccounts[int]]
)

func NewSwapInstruction(
	accounts *SwapInstructionAccounts,
	args *SwapInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSwapAccountIndexes(indexes []byte) (*SwapAccountIndexes, error) {
	return parseAccountIndexes[SwapAccounts[int]](SwapInstruction, indexes)
}

var CollectProtocolFeesInstructionDiscriminator = Discriminator{0x16, 0x43, 0x17, 0x62, 0x96, 0xb2, 0x46, 0xdc}

var CollectProtocolFeesInstruction = &InstructionDef{
	Name:          "collect_protocol_fees",
	Discriminator: CollectProtocolFeesInstructionDiscriminator,
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
	newArgs: func() InstructionArgs { return new(CollectProtocolFeesInstructionArgs) },
}

type CollectProtocolFeesInstructionArgs struct{}

func (*CollectProtocolFeesInstructionArgs) instruction() *InstructionDef { return CollectProtocolFeesInstruction }

func (*CollectProtocolFeesInstructionArgs) marshal(*binary.Encoder)         {}
func (*CollectProtocolFeesInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type CollectProtocolFeesAccounts[T AccountRef] struct {
	Admin                   T
	Exchange                T
	Market                  T
	QuoteVault              T
	FeeReceiverTokenAccount T
	TokenProgram            T
	EventAuthority          T
	Program                 T
}

func (a *CollectProtocolFeesAccounts[T]) fields() []*T {
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
	CollectProtocolFeesInstructionAccounts = CollectProtocolFeesAccounts[ed25519.PublicKey]
	CollectProtocolFeesAccountIndexes      = AccountIndexes[CollectProtocolFeesAccounts[int]]
)

func NewCollectProtocolFeesInstruction(accounts *CollectProtocolFeesInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&CollectProtocolFeesInstructionArgs{}, accounts.fields(), opts)
}

func ParseCollectProtocolFeesAccountIndexes(indexes []byte) (*CollectProtocolFeesAccountIndexes, error) {
	return parseAccountIndexes[CollectProtocolFeesAccounts[int]](CollectProtocolFeesInstruction, indexes)
}

var UpdateLpFeeGrowthInstructionDiscriminator = Discriminator{0xa3, 0x95, 0x5d, 0x5d, 0x56, 0x6f, 0xb7, 0x22}

var UpdateLpFeeGrowthInstruction = &InstructionDef{
	Name:          "update_lp_fee_growth",
	Discriminator: UpdateLpFeeGrowthInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "market"},
		{Name: "lp_position", IsWritable: true},
		{Name: "tick_array_lower"},
		{Name: "tick_array_upper"},
	},
	newArgs: func() InstructionArgs { return new(UpdateLpFeeGrowthInstructionArgs) },
}

type UpdateLpFeeGrowthInstructionArgs struct{}

func (*UpdateLpFeeGrowthInstructionArgs) instruction() *InstructionDef { return UpdateLpFeeGrowthInstruction }

func (*UpdateLpFeeGrowthInstructionArgs) marshal(*binary.Encoder)         {}
func (*UpdateLpFeeGrowthInstructionArgs) unmarshal(*binary.Decoder) error { return nil }

type UpdateLpFeeGrowthAccounts[T AccountRef] struct {
	Keeper         T
	Market         T
	LpPosition     T
	TickArrayLower T
	TickArrayUpper T
}

func (a *UpdateLpFeeGrowthAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Market,
		&a.LpPosition,
		&a.TickArrayLower,
		&a.TickArrayUpper,
	}
}

type (
	UpdateLpFeeGrowthInstructionAccounts = UpdateLpFeeGrowthAccounts[ed25519.PublicKey]
	UpdateLpFeeGrowthAccountIndexes      = AccountIndexes[UpdateLpFeeGrowthAccounts[int]]
)

func NewUpdateLpFeeGrowthInstruction(accounts *UpdateLpFeeGrowthInstructionAccounts, opts ...InstructionOption) solana.Instruction {
	return newInstruction(&UpdateLpFeeGrowthInstructionArgs{}, accounts.fields(), opts)
}

func ParseUpdateLpFeeGrowthAccountIndexes(indexes []byte) (*UpdateLpFeeGrowthAccountIndexes, error) {
	return parseAccountIndexes[UpdateLpFeeGrowthAccounts[int]](UpdateLpFeeGrowthInstruction, indexes)
}

var RebalanceLpPositionInstructionDiscriminator = Discriminator{0x95, 0x6b, 0xcb, 0x08, 0x8a, 0xd7, 0xbd, 0x97}

var RebalanceLpPositionInstruction = &InstructionDef{
	Name:          "rebalance_lp_position",
	Discriminator: RebalanceLpPositionInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "market", IsWritable: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "lp_position", IsWritable: true},
		{Name: "tick_array_old_lower", IsWritable: true},
		{Name: "tick_array_old_upper", IsWritable: true},
		{Name: "tick_array_new_lower", IsWritable: true},
		{Name: "tick_array_new_upper", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(RebalanceLpPositionInstructionArgs) },
}

type RebalanceLpPositionInstructionArgs struct {
	NewTickLower int32
	NewTickUpper int32
}

func (*RebalanceLpPositionInstructionArgs) instruction() *InstructionDef { return RebalanceLpPositionInstruction }

func (args *RebalanceLpPositionInstructionArgs) marshal(e *binary.Encoder) {
	e.PutInt32(args.NewTickLower)
	e.PutInt32(args.NewTickUpper)
}

func (args *RebalanceLpPositionInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.NewTickLower, err = d.GetInt32(); err != nil {
		return errors.Wrap(err, "new_tick_lower")
	}
	if args.NewTickUpper, err = d.GetInt32(); err != nil {
		return errors.Wrap(err, "new_tick_upper")
	}
	return nil
}

type RebalanceLpPositionAccounts[T AccountRef] struct {
	Owner             T
	Market            T
	MarginAccount     T
	LpPosition        T
	TickArrayOldLower T
	TickArrayOldUpper T
	TickArrayNewLower T
	TickArrayNewUpper T
	EventAuthority    T
	Program           T
}

func (a *RebalanceLpPositionAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Market,
		&a.MarginAccount,
		&a.LpPosition,
		&a.TickArrayOldLower,
		&a.TickArrayOldUpper,
		&a.TickArrayNewLower,
		&a.TickArrayNewUpper,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	RebalanceLpPositionInstructionAccounts = RebalanceLpPositionAccounts[ed25519.PublicKey]
	RebalanceLpPositionAccountIndexes      = AccountIndexes[RebalanceLpPositionAccounts[int]]
)

func NewRebalanceLpPositionInstruction(
	accounts *RebalanceLpPositionInstructionAccounts,
	args *RebalanceLpPositionInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseRebalanceLpPositionAccountIndexes(indexes []byte) (*RebalanceLpPositionAccountIndexes, error) {
	return parseAccountIndexes[RebalanceLpPositionAccounts[int]](RebalanceLpPositionInstruction, indexes)
}
