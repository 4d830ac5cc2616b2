package yieldex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

var InitializeOrderBookInstructionDiscriminator = Discriminator{0x5d, 0xe9, 0x09, 0x80, 0x21, 0xc7, 0x98, 0x58}

var InitializeOrderBookInstruction = &InstructionDef{
	Name:          "initialize_order_book",
	Discriminator: InitializeOrderBookInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsWritable: true, IsSigner: true},
		{Name: "market"},
		{Name: "order_book", IsWritable: true},
		{Name: "system_program"},
	},
	newArgs: func() InstructionArgs { return new(InitializeOrderBookInstructionArgs) },
}

type InitializeOrderBookInstructionArgs struct {
	MinOrderSize uint64
	RateTick     uint64
}

func (*InitializeOrderBookInstructionArgs) instruction() *InstructionDef { return InitializeOrderBookInstruction }

func (args *InitializeOrderBookInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.MinOrderSize)
	e.PutUint64(args.RateTick)
}

func (args *InitializeOrderBookInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.MinOrderSize, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "min_order_size")
	}
	if args.RateTick, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "rate_tick")
	}
	return nil
}

type InitializeOrderBookAccounts[T AccountRef] struct {
	Admin         T
	Market        T
	OrderBook     T
	SystemProgram T
}

func (a *InitializeOrderBookAccounts[T]) fields() []*T {
	return []*T{
		&a.Admin,
		&a.Market,
		&a.OrderBook,
		&a.SystemProgram,
	}
}

type (
	InitializeOrderBookInstructionAccounts = InitializeOrderBookAccounts[ed25519.PublicKey]
	InitializeOrderBookAccountIndexes      = AccountIndexes[InitializeOrderBookAccounts[int]]
)

func NewInitializeOrderBookInstruction(
	accounts *InitializeOrderBookInstructionAccounts,
	args *InitializeOrderBookInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseInitializeOrderBookAccountIndexes(indexes []byte) (*InitializeOrderBookAccountIndexes, error) {
	return parseAccountIndexes[InitializeOrderBookAccounts[int]](InitializeOrderBookInstruction, indexes)
}

var PlaceOrderInstructionDiscriminator = Discriminator{0x33, 0xc2, 0x9b, 0xaf, 0x6d, 0x82, 0x60, 0x6a}

var PlaceOrderInstruction = &InstructionDef{
	Name:          "place_order",
	Discriminator: PlaceOrderInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "exchange"},
		{Name: "market"},
		{Name: "margin_account", IsWritable: true},
		{Name: "order_book", IsWritable: true},
		{Name: "order", IsWritable: true},
		{Name: "system_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(PlaceOrderInstructionArgs) },
}

type PlaceOrderInstructionArgs struct {
	Params OrderParams
}

func (*PlaceOrderInstructionArgs) instruction() *InstructionDef { return PlaceOrderInstruction }

func (args *PlaceOrderInstructionArgs) marshal(e *binary.Encoder) {
	putOrderParams(e, args.Params)
}

func (args *PlaceOrderInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Params, err = getOrderParams(d); err != nil {
		return errors.Wrap(err, "params")
	}
	return nil
}

type PlaceOrderAccounts[T AccountRef] struct {
	Owner          T
	Exchange       T
	Market         T
	MarginAccount  T
	OrderBook      T
	Order          T
	SystemProgram  T
	EventAuthority T
	Program        T
}

func (a *PlaceOrderAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.Market,
		&a.MarginAccount,
		&a.OrderBook,
		&a.Order,
		&a.SystemProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	PlaceOrderInstructionAccounts = PlaceOrderAccounts[ed25519.PublicKey]
	PlaceOrderAccountIndexes      = AccountIndexes[PlaceOrderAccounts[int]]
)

func NewPlaceOrderInstruction(
	accounts *PlaceOrderInstructionAccounts,
	args *PlaceOrderInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParsePlaceOrderAccountIndexes(indexes []byte) (*PlaceOrderAccountIndexes, error) {
	return parseAccountIndexes[PlaceOrderAccounts[int]](PlaceOrderInstruction, indexes)
}

var PlaceOrdersInstructionDiscriminator = Discriminator{0x3c, 0x3f, 0x32, 0x7b, 0x0c, 0xc5, 0x3c, 0xbe}

// PlaceOrdersInstruction places several orders at once. The order accounts follow as trailing accounts, one per entry.
var PlaceOrdersInstruction = &InstructionDef{
	Name:          "place_orders",
	Discriminator: PlaceOrdersInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "exchange"},
		{Name: "market"},
		{Name: "margin_account", IsWritable: true},
		{Name: "order_book", IsWritable: true},
		{Name: "system_program"},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(PlaceOrdersInstructionArgs) },
}

type PlaceOrdersInstructionArgs struct {
	Params []OrderParams
}

func (*PlaceOrdersInstructionArgs) instruction() *InstructionDef { return PlaceOrdersInstruction }

func (args *PlaceOrdersInstructionArgs) marshal(e *binary.Encoder) {
	binary.PutVec(e, args.Params, putOrderParams)
}

func (args *PlaceOrdersInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Params, err = binary.GetVec(d, 29, getOrderParams); err != nil {
		return errors.Wrap(err, "params")
	}
	return nil
}

type PlaceOrdersAccounts[T AccountRef] struct {
	Owner          T
	Exchange       T
	Market         T
	MarginAccount  T
	OrderBook      T
	SystemProgram  T
	EventAuthority T
	Program        T
}

func (a *PlaceOrdersAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.Exchange,
		&a.Market,
		&a.MarginAccount,
		&a.OrderBook,
		&a.SystemProgram,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	PlaceOrdersInstructionAccounts = PlaceOrdersAccounts[ed25519.PublicKey]
	PlaceOrdersAccountIndexes      = AccountIndexes[PlaceOrdersAccounts[int]]
)

func NewPlaceOrdersInstruction(
	accounts *PlaceOrdersInstructionAccounts,
	args *PlaceOrdersInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParsePlaceOrdersAccountIndexes(indexes []byte) (*PlaceOrdersAccountIndexes, error) {
	return parseAccountIndexes[PlaceOrdersAccounts[int]](PlaceOrdersInstruction, indexes)
}

var CancelOrderInstructionDiscriminator = Discriminator{0x5f, 0x81, 0xed, 0xf0, 0x08, 0x31, 0xdf, 0x84}

var CancelOrderInstruction = &InstructionDef{
	Name:          "cancel_order",
	Discriminator: CancelOrderInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "order_book", IsWritable: true},
		{Name: "order", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(CancelOrderInstructionArgs) },
}

type CancelOrderInstructionArgs struct {
	OrderID uint64
}

func (*CancelOrderInstructionArgs) instruction() *InstructionDef { return CancelOrderInstruction }

func (args *CancelOrderInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.OrderID)
}

func (args *CancelOrderInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.OrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "order_id")
	}
	return nil
}

type CancelOrderAccounts[T AccountRef] struct {
	Owner          T
	MarginAccount  T
	OrderBook      T
	Order          T
	EventAuthority T
	Program        T
}

func (a *CancelOrderAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.MarginAccount,
		&a.OrderBook,
		&a.Order,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	CancelOrderInstructionAccounts = CancelOrderAccounts[ed25519.PublicKey]
	CancelOrderAccountIndexes      = AccountIndexes[CancelOrderAccounts[int]]
)

func NewCancelOrderInstruction(
	accounts *CancelOrderInstructionAccounts,
	args *CancelOrderInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseCancelOrderAccountIndexes(indexes []byte) (*CancelOrderAccountIndexes, error) {
	return parseAccountIndexes[CancelOrderAccounts[int]](CancelOrderInstruction, indexes)
}

var CancelOrderByClientIDInstructionDiscriminator = Discriminator{0xdf, 0xf8, 0x86, 0x9b, 0x6a, 0x6f, 0x98, 0xab}

var CancelOrderByClientIDInstruction = &InstructionDef{
	Name:          "cancel_order_by_client_id",
	Discriminator: CancelOrderByClientIDInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "order_book", IsWritable: true},
		{Name: "order", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(CancelOrderByClientIDInstructionArgs) },
}

type CancelOrderByClientIDInstructionArgs struct {
	ClientOrderID uint64
}

func (*CancelOrderByClientIDInstructionArgs) instruction() *InstructionDef { return CancelOrderByClientIDInstruction }

func (args *CancelOrderByClientIDInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.ClientOrderID)
}

func (args *CancelOrderByClientIDInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.ClientOrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "client_order_id")
	}
	return nil
}

type CancelOrderByClientIDAccounts[T AccountRef] struct {
	Owner          T
	MarginAccount  T
	OrderBook      T
	Order          T
	EventAuthority T
	Program        T
}

func (a *CancelOrderByClientIDAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.MarginAccount,
		&a.OrderBook,
		&a.Order,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	CancelOrderByClientIDInstructionAccounts = CancelOrderByClientIDAccounts[ed25519.PublicKey]
	CancelOrderByClientIDAccountIndexes      = AccountIndexes[CancelOrderByClientIDAccounts[int]]
)

func NewCancelOrderByClientIDInstruction(
	accounts *CancelOrderByClientIDInstructionAccounts,
	args *CancelOrderByClientIDInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseCancelOrderByClientIDAccountIndexes(indexes []byte) (*CancelOrderByClientIDAccountIndexes, error) {
	return parseAccountIndexes[CancelOrderByClientIDAccounts[int]](CancelOrderByClientIDInstruction, indexes)
}

var CancelOrdersInstructionDiscriminator = Discriminator{0xee, 0xe1, 0x5f, 0x9e, 0xe3, 0x67, 0x08, 0xc2}

var CancelOrdersInstruction = &InstructionDef{
	Name:          "cancel_orders",
	Discriminator: CancelOrdersInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "order_book", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(CancelOrdersInstructionArgs) },
}

type CancelOrdersInstructionArgs struct {
	OrderIds []uint64
}

func (*CancelOrdersInstructionArgs) instruction() *InstructionDef { return CancelOrdersInstruction }

func (args *CancelOrdersInstructionArgs) marshal(e *binary.Encoder) {
	binary.PutVec(e, args.OrderIds, (*binary.Encoder).PutUint64)
}

func (args *CancelOrdersInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.OrderIds, err = binary.GetVec(d, 8, (*binary.Decoder).GetUint64); err != nil {
		return errors.Wrap(err, "order_ids")
	}
	return nil
}

type CancelOrdersAccounts[T AccountRef] struct {
	Owner          T
	MarginAccount  T
	OrderBook      T
	EventAuthority T
	Program        T
}

func (a *CancelOrdersAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.MarginAccount,
		&a.OrderBook,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	CancelOrdersInstructionAccounts = CancelOrdersAccounts[ed25519.PublicKey]
	CancelOrdersAccountIndexes      = AccountIndexes[CancelOrdersAccounts[int]]
)

func NewCancelOrdersInstruction(
	accounts *CancelOrdersInstructionAccounts,
	args *CancelOrdersInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseCancelOrdersAccountIndexes(indexes []byte) (*CancelOrdersAccountIndexes, error) {
	return parseAccountIndexes[CancelOrdersAccounts[int]](CancelOrdersInstruction, indexes)
}

var CancelAllOrdersInstructionDiscriminator = Discriminator{0xc4, 0x53, 0xf3, 0xab, 0x11, 0x64, 0xa0, 0x8f}

var CancelAllOrdersInstruction = &InstructionDef{
	Name:          "cancel_all_orders",
	Discriminator: CancelAllOrdersInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "order_book", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(CancelAllOrdersInstructionArgs) },
}

type CancelAllOrdersInstructionArgs struct {
	Market *ed25519.PublicKey
}

func (*CancelAllOrdersInstructionArgs) instruction() *InstructionDef { return CancelAllOrdersInstruction }

func (args *CancelAllOrdersInstructionArgs) marshal(e *binary.Encoder) {
	binary.PutOption(e, args.Market, (*binary.Encoder).PutKey)
}

func (args *CancelAllOrdersInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.Market, err = binary.GetOption(d, (*binary.Decoder).GetKey); err != nil {
		return errors.Wrap(err, "market")
	}
	return nil
}

type CancelAllOrdersAccounts[T AccountRef] struct {
	Owner          T
	MarginAccount  T
	OrderBook      T
	EventAuthority T
	Program        T
}

func (a *CancelAllOrdersAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.MarginAccount,
		&a.OrderBook,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	CancelAllOrdersInstructionAccounts = CancelAllOrdersAccounts[ed25519.PublicKey]
	CancelAllOrdersAccountIndexes      = AccountIndexes[CancelAllOrdersAccounts[int]]
)

func NewCancelAllOrdersInstruction(
	accounts *CancelAllOrdersInstructionAccounts,
	args *CancelAllOrdersInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseCancelAllOrdersAccountIndexes(indexes []byte) (*CancelAllOrdersAccountIndexes, error) {
	return parseAccountIndexes[CancelAllOrdersAccounts[int]](CancelAllOrdersInstruction, indexes)
}

var ModifyOrderInstructionDiscriminator = Discriminator{0x2f, 0x7c, 0x75, 0xff, 0xc9, 0xc5, 0x82, 0x5e}

var ModifyOrderInstruction = &InstructionDef{
	Name:          "modify_order",
	Discriminator: ModifyOrderInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "order_book"},
		{Name: "order", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(ModifyOrderInstructionArgs) },
}

type ModifyOrderInstructionArgs struct {
	OrderID uint64
	Params  ModifyOrderParams
}

func (*ModifyOrderInstructionArgs) instruction() *InstructionDef { return ModifyOrderInstruction }

func (args *ModifyOrderInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.OrderID)
	putModifyOrderParams(e, args.Params)
}

func (args *ModifyOrderInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.OrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "order_id")
	}
	if args.Params, err = getModifyOrderParams(d); err != nil {
		return errors.Wrap(err, "params")
	}
	return nil
}

type ModifyOrderAccounts[T AccountRef] struct {
	Owner          T
	MarginAccount  T
	OrderBook      T
	Order          T
	EventAuthority T
	Program        T
}

func (a *ModifyOrderAccounts[T]) fields() []*T {
	return []*T{
		&a.Owner,
		&a.MarginAccount,
		&a.OrderBook,
		&a.Order,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	ModifyOrderInstructionAccounts = ModifyOrderAccounts[ed25519.PublicKey]
	ModifyOrderAccountIndexes      = AccountIndexes[ModifyOrderAccounts[int]]
)

func NewModifyOrderInstruction(
	accounts *ModifyOrderInstructionAccounts,
	args *ModifyOrderInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseModifyOrderAccountIndexes(indexes []byte) (*ModifyOrderAccountIndexes, error) {
	return parseAccountIndexes[ModifyOrderAccounts[int]](ModifyOrderInstruction, indexes)
}

var FillOrderInstructionDiscriminator = Discriminator{0xe8, 0x7a, 0x73, 0x19, 0xc7, 0x8f, 0x88, 0xa2}

var FillOrderInstruction = &InstructionDef{
	Name:          "fill_order",
	Discriminator: FillOrderInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
		{Name: "order_book", IsWritable: true},
		{Name: "maker_margin_account", IsWritable: true},
		{Name: "maker_order", IsWritable: true},
		{Name: "taker_margin_account", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(FillOrderInstructionArgs) },
}

type FillOrderInstructionArgs struct {
	OrderID  uint64
	FillSize uint64
	FillRate uint64
}

func (*FillOrderInstructionArgs) instruction() *InstructionDef { return FillOrderInstruction }

func (args *FillOrderInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.OrderID)
	e.PutUint64(args.FillSize)
	e.PutUint64(args.FillRate)
}

func (args *FillOrderInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.OrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "order_id")
	}
	if args.FillSize, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "fill_size")
	}
	if args.FillRate, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "fill_rate")
	}
	return nil
}

type FillOrderAccounts[T AccountRef] struct {
	Keeper             T
	Exchange           T
	Market             T
	Oracle             T
	OrderBook          T
	MakerMarginAccount T
	MakerOrder         T
	TakerMarginAccount T
	EventAuthority     T
	Program            T
}

func (a *FillOrderAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.Market,
		&a.Oracle,
		&a.OrderBook,
		&a.MakerMarginAccount,
		&a.MakerOrder,
		&a.TakerMarginAccount,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	FillOrderInstructionAccounts = FillOrderAccounts[ed25519.PublicKey]
	FillOrderAccountIndexes      = AccountIndexes[FillOrderAccounts[int]]
)

func NewFillOrderInstruction(
	accounts *FillOrderInstructionAccounts,
	args *FillOrderInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseFillOrderAccountIndexes(indexes []byte) (*FillOrderAccountIndexes, error) {
	return parseAccountIndexes[FillOrderAccounts[int]](FillOrderInstruction, indexes)
}

var MatchOrdersInstructionDiscriminator = Discriminator{0x11, 0x01, 0xc9, 0x5d, 0x07, 0x33, 0xfb, 0x86}

// MatchOrdersInstruction matches a taker against resting makers. Maker orders and margin accounts follow as trailing pairs.
var MatchOrdersInstruction = &InstructionDef{
	Name:          "match_orders",
	Discriminator: MatchOrdersInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "exchange"},
		{Name: "market", IsWritable: true},
		{Name: "oracle"},
		{Name: "order_book", IsWritable: true},
		{Name: "taker_margin_account", IsWritable: true},
		{Name: "taker_order", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(MatchOrdersInstructionArgs) },
}

type MatchOrdersInstructionArgs struct {
	TakerOrderID  uint64
	MakerOrderIds []uint64
}

func (*MatchOrdersInstructionArgs) instruction() *InstructionDef { return MatchOrdersInstruction }

func (args *MatchOrdersInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.TakerOrderID)
	binary.PutVec(e, args.MakerOrderIds, (*binary.Encoder).PutUint64)
}

func (args *MatchOrdersInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.TakerOrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "taker_order_id")
	}
	if args.MakerOrderIds, err = binary.GetVec(d, 8, (*binary.Decoder).GetUint64); err != nil {
		return errors.Wrap(err, "maker_order_ids")
	}
	return nil
}

type MatchOrdersAccounts[T AccountRef] struct {
	Keeper             T
	Exchange           T
	Market             T
	Oracle             T
	OrderBook          T
	TakerMarginAccount T
	TakerOrder         T
	EventAuthority     T
	Program            T
}

func (a *MatchOrdersAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Exchange,
		&a.Market,
		&a.Oracle,
		&a.OrderBook,
		&a.TakerMarginAccount,
		&a.TakerOrder,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	MatchOrdersInstructionAccounts = MatchOrdersAccounts[ed25519.PublicKey]
	MatchOrdersAccountIndexes      = AccountIndexes[MatchOrdersAccounts[int]]
)

func NewMatchOrdersInstruction(
	accounts *MatchOrdersInstructionAccounts,
	args *MatchOrdersInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseMatchOrdersAccountIndexes(indexes []byte) (*MatchOrdersAccountIndexes, error) {
	return parseAccountIndexes[MatchOrdersAccounts[int]](MatchOrdersInstruction, indexes)
}

var TriggerOrderInstructionDiscriminator = Discriminator{0x3f, 0x70, 0x33, 0xe9, 0xe8, 0x2f, 0xf0, 0xc7}

var TriggerOrderInstruction = &InstructionDef{
	Name:          "trigger_order",
	Discriminator: TriggerOrderInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "market"},
		{Name: "oracle"},
		{Name: "order_book", IsWritable: true},
		{Name: "order", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(TriggerOrderInstructionArgs) },
}

type TriggerOrderInstructionArgs struct {
	OrderID uint64
}

func (*TriggerOrderInstructionArgs) instruction() *InstructionDef { return TriggerOrderInstruction }

func (args *TriggerOrderInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.OrderID)
}

func (args *TriggerOrderInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.OrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "order_id")
	}
	return nil
}

type TriggerOrderAccounts[T AccountRef] struct {
	Keeper         T
	Market         T
	Oracle         T
	OrderBook      T
	Order          T
	EventAuthority T
	Program        T
}

func (a *TriggerOrderAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.Market,
		&a.Oracle,
		&a.OrderBook,
		&a.Order,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	TriggerOrderInstructionAccounts = TriggerOrderAccounts[ed25519.PublicKey]
	TriggerOrderAccountIndexes      = AccountIndexes[TriggerOrderAccounts[int]]
)

func NewTriggerOrderInstruction(
	accounts *TriggerOrderInstructionAccounts,
	args *TriggerOrderInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseTriggerOrderAccountIndexes(indexes []byte) (*TriggerOrderAccountIndexes, error) {
	return parseAccountIndexes[TriggerOrderAccounts[int]](TriggerOrderInstruction, indexes)
}

var ExpireOrdersInstructionDiscriminator = Discriminator{0x68, 0x6f, 0x1f, 0x50, 0xb1, 0x4f, 0x6d, 0xbc}

var ExpireOrdersInstruction = &InstructionDef{
	Name:          "expire_orders",
	Discriminator: ExpireOrdersInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "keeper", IsSigner: true},
		{Name: "order_book", IsWritable: true},
		{Name: "event_authority"},
		{Name: "program"},
	},
	newArgs: func() InstructionArgs { return new(ExpireOrdersInstructionArgs) },
}

type ExpireOrdersInstructionArgs struct {
	OrderIds []uint64
}

func (*ExpireOrdersInstructionArgs) instruction() *InstructionDef { return ExpireOrdersInstruction }

func (args *ExpireOrdersInstructionArgs) marshal(e *binary.Encoder) {
	binary.PutVec(e, args.OrderIds, (*binary.Encoder).PutUint64)
}

func (args *ExpireOrdersInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.OrderIds, err = binary.GetVec(d, 8, (*binary.Decoder).GetUint64); err != nil {
		return errors.Wrap(err, "order_ids")
	}
	return nil
}

type ExpireOrdersAccounts[T AccountRef] struct {
	Keeper         T
	OrderBook      T
	EventAuthority T
	Program        T
}

func (a *ExpireOrdersAccounts[T]) fields() []*T {
	return []*T{
		&a.Keeper,
		&a.OrderBook,
		&a.EventAuthority,
		&a.Program,
	}
}

type (
	ExpireOrdersInstructionAccounts = ExpireOrdersAccounts[ed25519.PublicKey]
	ExpireOrdersAccountIndexes      = AccountIndexes[ExpireOrdersAccounts[int]]
)

func NewExpireOrdersInstruction(
	accounts *ExpireOrdersInstructionAccounts,
	args *ExpireOrdersInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseExpireOrdersAccountIndexes(indexes []byte) (*ExpireOrdersAccountIndexes, error) {
	return parseAccountIndexes[ExpireOrdersAccounts[int]](ExpireOrdersInstruction, indexes)
}

var CloseOrderInstructionDiscriminator = Discriminator{0x5a, 0x67, 0xd1, 0x1c, 0x07, 0x3f, 0xa8, 0x04}

var CloseOrderInstruction = &InstructionDef{
	Name:          "close_order",
	Discriminator: CloseOrderInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "owner", IsWritable: true, IsSigner: true},
		{Name: "margin_account", IsWritable: true},
		{Name: "order", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(CloseOrderInstructionArgs) },
}

type CloseOrderInstructionArgs struct {
	OrderID uint64
}

func (*CloseOrderInstructionArgs) instruction() *InstructionDef { return CloseOrderInstruction }

func (args *CloseOrderInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.OrderID)
}

func (args *CloseOrderInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.OrderID, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "order_id")
	}
	return nil
}

type CloseOrderAccounts[T AccountRef] struct {
	Owner         T
	MarginAccount T
	Order         T
}

func (a *CloseOrderAccounts[T]) fields() []*T {
	return []*T{&a.Owner, &a.MarginAccount, &a.Order}
}

type (
	CloseOrderInstructionAccounts = CloseOrderAccounts[ed25519.PublicKey]
	CloseOrderAccountIndexes      = AccountIndexes[CloseOrderAccounts[int]]
)

func NewCloseOrderInstruction(
	accounts *CloseOrderInstructionAccounts,
	args *CloseOrderInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseCloseOrderAccountIndexes(indexes []byte) (*CloseOrderAccountIndexes, error) {
	return parseAccountIndexes[CloseOrderAccounts[int]](CloseOrderInstruction, indexes)
}

var SetOrderBookParamsInstructionDiscriminator = Discriminator{0xd2, 0x51, 0xf7, 0x3c, 0x94, 0x02, 0x63, 0x86}

var SetOrderBookParamsInstruction = &InstructionDef{
	Name:          "set_order_book_params",
	Discriminator: SetOrderBookParamsInstructionDiscriminator,
	Accounts: []AccountRole{
		{Name: "admin", IsSigner: true},
		{Name: "market"},
		{Name: "order_book", IsWritable: true},
	},
	newArgs: func() InstructionArgs { return new(SetOrderBookParamsInstructionArgs) },
}

type SetOrderBookParamsInstructionArgs struct {
	MinOrderSize uint64
	RateTick     uint64
}

func (*SetOrderBookParamsInstructionArgs) instruction() *InstructionDef { return SetOrderBookParamsInstruction }

func (args *SetOrderBookParamsInstructionArgs) marshal(e *binary.Encoder) {
	e.PutUint64(args.MinOrderSize)
	e.PutUint64(args.RateTick)
}

func (args *SetOrderBookParamsInstructionArgs) unmarshal(d *binary.Decoder) (err error) {
	if args.MinOrderSize, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "min_order_size")
	}
	if args.RateTick, err = d.GetUint64(); err != nil {
		return errors.Wrap(err, "rate_tick")
	}
	return nil
}

type SetOrderBookParamsAccounts[T AccountRef] struct {
	Admin     T
	Market    T
	OrderBook T
}

func (a *SetOrderBookParamsAccounts[T]) fields() []*T {
	return []*T{&a.Admin, &a.Market, &a.OrderBook}
}

type (
	SetOrderBookParamsInstructionAccounts = SetOrderBookParamsAccounts[ed25519.PublicKey]
	SetOrderBookParamsAccountIndexes      = AccountIndexes[SetOrderBookParamsAccounts[int]]
)

func NewSetOrderBookParamsInstruction(
	accounts *SetOrderBookParamsInstructionAccounts,
	args *SetOrderBookParamsInstructionArgs,
	opts ...InstructionOption,
) solana.Instruction {
	return newInstruction(args, accounts.fields(), opts)
}

func ParseSetOrderBookParamsAccountIndexes(indexes []byte) (*SetOrderBookParamsAccountIndexes, error) {
	return parseAccountIndexes[SetOrderBookParamsAccounts[int]](SetOrderBookParamsInstruction, indexes)
}
