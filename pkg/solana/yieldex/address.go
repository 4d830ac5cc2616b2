package yieldex

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
)

var (
	ExchangePrefix        = []byte("exchange")
	MarketGroupPrefix     = []byte("market_group")
	MarketPrefix          = []byte("market")
	PtMintPrefix          = []byte("pt_mint")
	YtMintPrefix          = []byte("yt_mint")
	PtVaultPrefix         = []byte("pt_vault")
	QuoteVaultPrefix      = []byte("quote_vault")
	TickArrayPrefix       = []byte("tick_array")
	MarginAccountPrefix   = []byte("margin_account")
	CollateralVaultPrefix = []byte("collateral_vault")
	LpPositionPrefix      = []byte("lp_position")
	OrderBookPrefix       = []byte("order_book")
	OrderPrefix           = []byte("order")
	RateOraclePrefix      = []byte("rate_oracle")
	EpochStatePrefix      = []byte("epoch_state")
	InsuranceFundPrefix   = []byte("insurance_fund")
	InsuranceVaultPrefix  = []byte("insurance_vault")
	EarnVaultPrefix       = []byte("earn_vault")
	EarnShareMintPrefix   = []byte("earn_share_mint")
	EventAuthorityPrefix  = []byte("__event_authority")
)

func GetExchangeAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		ExchangePrefix,
	)
}

// GetEventAuthorityAddress returns the signer the program uses to emit
// events through self invocation.
func GetEventAuthorityAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		EventAuthorityPrefix,
	)
}

type GetMarketGroupAddressArgs struct {
	Exchange ed25519.PublicKey
	Index    uint16
}

func GetMarketGroupAddress(args *GetMarketGroupAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MarketGroupPrefix,
		args.Exchange,
		uint16Seed(args.Index),
	)
}

type GetMarketAddressArgs struct {
	MarketGroup ed25519.PublicKey
	MarketIndex uint16
}

func GetMarketAddress(args *GetMarketAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MarketPrefix,
		args.MarketGroup,
		uint16Seed(args.MarketIndex),
	)
}

// GetMarketTokenAddressArgs identifies a token account or mint owned by a
// market.
type GetMarketTokenAddressArgs struct {
	Market ed25519.PublicKey
}

func GetPtMintAddress(args *GetMarketTokenAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, PtMintPrefix, args.Market)
}

func GetYtMintAddress(args *GetMarketTokenAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, YtMintPrefix, args.Market)
}

func GetPtVaultAddress(args *GetMarketTokenAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, PtVaultPrefix, args.Market)
}

func GetQuoteVaultAddress(args *GetMarketTokenAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, QuoteVaultPrefix, args.Market)
}

type GetTickArrayAddressArgs struct {
	Market    ed25519.PublicKey
	StartTick int32
}

func GetTickArrayAddress(args *GetTickArrayAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		TickArrayPrefix,
		args.Market,
		int32Seed(args.StartTick),
	)
}

// TickArrayStartIndex returns the first tick of the array containing tick.
// tickSpacing must be non-zero.
func TickArrayStartIndex(tick int32, tickSpacing uint16) int32 {
	span := int32(tickSpacing) * TickArrayAccountTicksLen
	start := tick / span
	if tick < 0 && tick%span != 0 {
		start--
	}
	return start * span
}

type GetMarginAccountAddressArgs struct {
	Owner        ed25519.PublicKey
	SubAccountID uint16
}

func GetMarginAccountAddress(args *GetMarginAccountAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MarginAccountPrefix,
		args.Owner,
		uint16Seed(args.SubAccountID),
	)
}

type GetCollateralVaultAddressArgs struct {
	Exchange ed25519.PublicKey
	Mint     ed25519.PublicKey
}

func GetCollateralVaultAddress(args *GetCollateralVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		CollateralVaultPrefix,
		args.Exchange,
		args.Mint,
	)
}

type GetLpPositionAddressArgs struct {
	Market    ed25519.PublicKey
	Owner     ed25519.PublicKey
	TickLower int32
	TickUpper int32
}

func GetLpPositionAddress(args *GetLpPositionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		LpPositionPrefix,
		args.Market,
		args.Owner,
		int32Seed(args.TickLower),
		int32Seed(args.TickUpper),
	)
}

type GetOrderBookAddressArgs struct {
	Market ed25519.PublicKey
}

func GetOrderBookAddress(args *GetOrderBookAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, OrderBookPrefix, args.Market)
}

type GetOrderAddressArgs struct {
	MarginAccount ed25519.PublicKey
	OrderID       uint64
}

func GetOrderAddress(args *GetOrderAddressArgs) (ed25519.PublicKey, uint8, error) {
	orderID := make([]byte, 8)
	binary.LittleEndian.PutUint64(orderID, args.OrderID)

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		OrderPrefix,
		args.MarginAccount,
		orderID,
	)
}

type GetRateOracleAddressArgs struct {
	Market ed25519.PublicKey
}

func GetRateOracleAddress(args *GetRateOracleAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, RateOraclePrefix, args.Market)
}

type GetEpochStateAddressArgs struct {
	Market ed25519.PublicKey
}

func GetEpochStateAddress(args *GetEpochStateAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, EpochStatePrefix, args.Market)
}

type GetInsuranceFundAddressArgs struct {
	Exchange ed25519.PublicKey
}

func GetInsuranceFundAddress(args *GetInsuranceFundAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, InsuranceFundPrefix, args.Exchange)
}

type GetInsuranceVaultAddressArgs struct {
	InsuranceFund ed25519.PublicKey
}

func GetInsuranceVaultAddress(args *GetInsuranceVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, InsuranceVaultPrefix, args.InsuranceFund)
}

type GetEarnVaultAddressArgs struct {
	Market ed25519.PublicKey
}

func GetEarnVaultAddress(args *GetEarnVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, EarnVaultPrefix, args.Market)
}

type GetEarnShareMintAddressArgs struct {
	EarnVault ed25519.PublicKey
}

func GetEarnShareMintAddress(args *GetEarnShareMintAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, EarnShareMintPrefix, args.EarnVault)
}

func uint16Seed(v uint16) []byte {
	seed := make([]byte, 2)
	binary.LittleEndian.PutUint16(seed, v)
	return seed
}

func int32Seed(v int32) []byte {
	seed := make([]byte, 4)
	binary.LittleEndian.PutUint32(seed, uint32(v))
	return seed
}
