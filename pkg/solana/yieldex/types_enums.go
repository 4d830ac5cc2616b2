package yieldex

import (
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

// MarketStatus is the lifecycle state of a market.
type MarketStatus uint8

const (
	MarketStatusInitialized MarketStatus = iota
	MarketStatusActive
	MarketStatusPaused
	MarketStatusReduceOnly
	MarketStatusUpdating
	MarketStatusExpired
	MarketStatusSettlement
)

var marketStatusNames = []string{
	"Initialized",
	"Active",
	"Paused",
	"ReduceOnly",
	"Updating",
	"Expired",
	"Settlement",
}

func (v MarketStatus) String() string {
	return enumString("MarketStatus", marketStatusNames, uint8(v))
}

func putMarketStatus(e *binary.Encoder, v MarketStatus) {
	e.PutEnumTag(uint8(v))
}

func getMarketStatus(d *binary.Decoder) (MarketStatus, error) {
	return getEnum[MarketStatus](d, len(marketStatusNames))
}

// MarketKind is the maturity model of a market.
type MarketKind uint8

const (
	MarketKindFixedMaturity MarketKind = iota
	MarketKindRollingEpoch
)

var marketKindNames = []string{
	"FixedMaturity",
	"RollingEpoch",
}

func (v MarketKind) String() string {
	return enumString("MarketKind", marketKindNames, uint8(v))
}

func putMarketKind(e *binary.Encoder, v MarketKind) {
	e.PutEnumTag(uint8(v))
}

func getMarketKind(d *binary.Decoder) (MarketKind, error) {
	return getEnum[MarketKind](d, len(marketKindNames))
}

// MarginType is the risk model applied to a margin account.
type MarginType uint8

const (
	MarginTypeCross MarginType = iota
	MarginTypeIsolated
)

var marginTypeNames = []string{
	"Cross",
	"Isolated",
}

func (v MarginType) String() string {
	return enumString("MarginType", marginTypeNames, uint8(v))
}

func putMarginType(e *binary.Encoder, v MarginType) {
	e.PutEnumTag(uint8(v))
}

func getMarginType(d *binary.Decoder) (MarginType, error) {
	return getEnum[MarginType](d, len(marginTypeNames))
}

type OrderType uint8

const (
	OrderTypeLimit OrderType = iota
	OrderTypePostOnly
	OrderTypeImmediateOrCancel
	OrderTypeMarket
	OrderTypeStopLimit
)

var orderTypeNames = []string{
	"Limit",
	"PostOnly",
	"ImmediateOrCancel",
	"Market",
	"StopLimit",
}

func (v OrderType) String() string {
	return enumString("OrderType", orderTypeNames, uint8(v))
}

func putOrderType(e *binary.Encoder, v OrderType) {
	e.PutEnumTag(uint8(v))
}

func getOrderType(d *binary.Decoder) (OrderType, error) {
	return getEnum[OrderType](d, len(orderTypeNames))
}

// OrderSide is the direction of a yield trade. BuyYield goes long the implied rate.
type OrderSide uint8

const (
	OrderSideBuyYield OrderSide = iota
	OrderSideSellYield
)

var orderSideNames = []string{
	"BuyYield",
	"SellYield",
}

func (v OrderSide) String() string {
	return enumString("OrderSide", orderSideNames, uint8(v))
}

func putOrderSide(e *binary.Encoder, v OrderSide) {
	e.PutEnumTag(uint8(v))
}

func getOrderSide(d *binary.Decoder) (OrderSide, error) {
	return getEnum[OrderSide](d, len(orderSideNames))
}

type OrderStatus uint8

const (
	OrderStatusOpen OrderStatus = iota
	OrderStatusPartiallyFilled
	OrderStatusFilled
	OrderStatusCancelled
	OrderStatusExpired
	OrderStatusTriggered
)

var orderStatusNames = []string{
	"Open",
	"PartiallyFilled",
	"Filled",
	"Cancelled",
	"Expired",
	"Triggered",
}

func (v OrderStatus) String() string {
	return enumString("OrderStatus", orderStatusNames, uint8(v))
}

func putOrderStatus(e *binary.Encoder, v OrderStatus) {
	e.PutEnumTag(uint8(v))
}

func getOrderStatus(d *binary.Decoder) (OrderStatus, error) {
	return getEnum[OrderStatus](d, len(orderStatusNames))
}

type DepositDirection uint8

const (
	DepositDirectionDeposit DepositDirection = iota
	DepositDirectionWithdraw
)

var depositDirectionNames = []string{
	"Deposit",
	"Withdraw",
}

func (v DepositDirection) String() string {
	return enumString("DepositDirection", depositDirectionNames, uint8(v))
}

func putDepositDirection(e *binary.Encoder, v DepositDirection) {
	e.PutEnumTag(uint8(v))
}

func getDepositDirection(d *binary.Decoder) (DepositDirection, error) {
	return getEnum[DepositDirection](d, len(depositDirectionNames))
}

type LpDirection uint8

const (
	LpDirectionAdd LpDirection = iota
	LpDirectionRemove
)

var lpDirectionNames = []string{
	"Add",
	"Remove",
}

func (v LpDirection) String() string {
	return enumString("LpDirection", lpDirectionNames, uint8(v))
}

func putLpDirection(e *binary.Encoder, v LpDirection) {
	e.PutEnumTag(uint8(v))
}

func getLpDirection(d *binary.Decoder) (LpDirection, error) {
	return getEnum[LpDirection](d, len(lpDirectionNames))
}

type EarnDirection uint8

const (
	EarnDirectionStake EarnDirection = iota
	EarnDirectionUnstake
)

var earnDirectionNames = []string{
	"Stake",
	"Unstake",
}

func (v EarnDirection) String() string {
	return enumString("EarnDirection", earnDirectionNames, uint8(v))
}

func putEarnDirection(e *binary.Encoder, v EarnDirection) {
	e.PutEnumTag(uint8(v))
}

func getEarnDirection(d *binary.Decoder) (EarnDirection, error) {
	return getEnum[EarnDirection](d, len(earnDirectionNames))
}

// EpochUpdatePhase is the phase of the epoch rollover state machine run by keepers.
type EpochUpdatePhase uint8

const (
	EpochUpdatePhaseIdle EpochUpdatePhase = iota
	EpochUpdatePhaseSnapshot
	EpochUpdatePhaseSettle
	EpochUpdatePhaseRollover
	EpochUpdatePhaseFinalized
)

var epochUpdatePhaseNames = []string{
	"Idle",
	"Snapshot",
	"Settle",
	"Rollover",
	"Finalized",
}

func (v EpochUpdatePhase) String() string {
	return enumString("EpochUpdatePhase", epochUpdatePhaseNames, uint8(v))
}

func putEpochUpdatePhase(e *binary.Encoder, v EpochUpdatePhase) {
	e.PutEnumTag(uint8(v))
}

func getEpochUpdatePhase(d *binary.Decoder) (EpochUpdatePhase, error) {
	return getEnum[EpochUpdatePhase](d, len(epochUpdatePhaseNames))
}

type OracleSource uint8

const (
	OracleSourcePyth OracleSource = iota
	OracleSourceSwitchboard
	OracleSourceManual
)

var oracleSourceNames = []string{
	"Pyth",
	"Switchboard",
	"Manual",
}

func (v OracleSource) String() string {
	return enumString("OracleSource", oracleSourceNames, uint8(v))
}

func putOracleSource(e *binary.Encoder, v OracleSource) {
	e.PutEnumTag(uint8(v))
}

func getOracleSource(d *binary.Decoder) (OracleSource, error) {
	return getEnum[OracleSource](d, len(oracleSourceNames))
}
