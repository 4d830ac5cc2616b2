package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/pointer"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

func dynamicAccountCases() []dynamicAccountCase {
	return []dynamicAccountCase{
		{
			name:          "exchange",
			discriminator: ExchangeAccountDiscriminator,
			value:         &ExchangeAccount{Admin: testKey(1), PendingAdmin: pointer.To(testKey(3)), FeeReceiver: testKey(3), ProtocolFeeBps: 516, LiquidatorFeeBps: 517, Paused: true, MarketGroupCount: 519, MarketCount: 520, Keepers: []ed25519.PublicKey{testKey(10), testKey(11)}, Collaterals: []CollateralConfig{{Mint: testKey(11), Vault: testKey(12), HaircutBps: 525, Decimals: 20, Enabled: true}, {Mint: testKey(12), Vault: testKey(13), HaircutBps: 526, Decimals: 21, Enabled: true}}, InsuranceFund: pointer.To(testKey(12)), Bump: 18},
			empty:         func() account { return new(ExchangeAccount) },
		},
		{
			name:          "market_group",
			discriminator: MarketGroupAccountDiscriminator,
			value:         &MarketGroupAccount{Exchange: testKey(6), Name: "fixed-rate-6", UnderlyingMint: testKey(8), EpochDurationSecs: -50, Markets: []ed25519.PublicKey{testKey(11), testKey(12)}, Bump: 17},
			empty:         func() account { return new(MarketGroupAccount) },
		},
		{
			name:          "order_book",
			discriminator: OrderBookAccountDiscriminator,
			value:         &OrderBookAccount{Market: testKey(11), NextOrderID: 1000000018, MinOrderSize: 1000000019, RateTick: 1000000020, OpenOrders: []OpenOrderEntry{{OrderID: 1000000022, Owner: testKey(17), Side: OrderSideSellYield, LimitRate: 1000000025, RemainingSize: 1000000026}, {OrderID: 1000000023, Owner: testKey(18), Side: OrderSideSellYield, LimitRate: 1000000026, RemainingSize: 1000000027}}, Bump: 22},
			empty:         func() account { return new(OrderBookAccount) },
		},
		{
			name:          "insurance_fund",
			discriminator: InsuranceFundAccountDiscriminator,
			value:         &InsuranceFundAccount{Exchange: testKey(16), Vault: testKey(17), Balance: 1000000024, TotalCovered: 1000000025, Bump: 26},
			empty:         func() account { return new(InsuranceFundAccount) },
		},
		{
			name:          "earn_vault",
			discriminator: EarnVaultAccountDiscriminator,
			value:         &EarnVaultAccount{Exchange: testKey(21), Market: testKey(22), ShareMint: testKey(23), TotalShares: 1000000030, TotalAssets: 1000000031, RewardRate: 1000000032, RewardsPerShare: binary.Uint128{Lo: 31, Hi: 35}, LastHarvestTs: -69, Bump: 35},
			empty:         func() account { return new(EarnVaultAccount) },
		},
	}
}

func eventCases() []Event {
	return []Event{
		&CollateralEvent{MarginAccount: testKey(1), Owner: testKey(2), Mint: testKey(3), Amount: 1000000010, Direction: DepositDirectionWithdraw, Timestamp: -47},
		&OrderPlacedEvent{OrderID: 1000000011, Owner: testKey(6), Market: testKey(7), OrderType: OrderTypeStopLimit, Side: OrderSideSellYield, Size: 1000000016, LimitRate: 1000000017, ClientOrderID: 1000000018, Timestamp: -54},
		&OrderFilledEvent{OrderID: 1000000015, Maker: testKey(10), Taker: testKey(11), Market: testKey(12), FillSize: 1000000019, FillRate: 1000000020, MakerFee: -56, TakerFee: -57, Timestamp: -58},
		&OrderCancelledEvent{OrderID: 1000000019, Owner: testKey(14), Market: testKey(15), RemainingSize: 1000000022, Status: OrderStatusFilled, Timestamp: -59},
		&LiquidationEvent{MarginAccount: testKey(17), Liquidator: testKey(18), Market: pointer.To(testKey(20)), SizeLiquidated: 1000000026, CollateralSeized: 1000000027, LiquidatorFee: 1000000028, Bankrupt: true, Timestamp: -65},
		&EpochUpdatedEvent{Market: testKey(21), Epoch: 70021, Phase: EpochUpdatePhaseRollover, SettlementRate: 1000000030, Timestamp: -66},
		&LiquidityChangedEvent{LpPosition: testKey(25), Market: testKey(26), Direction: LpDirectionRemove, LiquidityDelta: binary.Uint128{Lo: 32, Hi: 36}, PtAmount: 1000000035, QuoteAmount: 1000000036, TickLower: -70030, TickUpper: -70031, Timestamp: -74},
		&SwapEvent{Market: testKey(29), Trader: testKey(30), PtToQuote: true, AmountIn: 1000000038, AmountOut: 1000000039, Fee: 1000000040, SqrtPriceAfter: binary.Uint128{Lo: 39, Hi: 43}, TickAfter: -70035, Timestamp: -78},
		&YieldTradeEvent{Market: testKey(33), MarginAccount: testKey(34), Side: OrderSideSellYield, PtDelta: -77, YtDelta: -78, ImpliedRate: 1000000044, Fee: 1000000045, Timestamp: -81},
		&FeesCollectedEvent{Market: testKey(37), Recipient: testKey(38), Amount: 1000000045, Protocol: true, Timestamp: -82},
		&OracleUpdatedEvent{Oracle: testKey(41), Rate: 1000000048, Confidence: 1000000049, Source: OracleSourceManual, Timestamp: -86},
		&EarnEvent{EarnVault: testKey(45), User: testKey(46), Direction: EarnDirectionUnstake, Amount: 1000000054, Shares: 1000000055, Timestamp: -91},
		&MarketStatusChangedEvent{Market: testKey(49), OldStatus: MarketStatusPaused, NewStatus: MarketStatusReduceOnly, Timestamp: -93},
		&PositionSettledEvent{MarginAccount: testKey(53), Market: testKey(54), RealizedPnl: -96, FundingPaid: -97, YieldClaimed: 1000000063, Timestamp: -99},
	}
}

var podAccountCases = []podAccountCase{
	{
		name:          "market",
		discriminator: MarketAccountDiscriminator,
		size:          MarketAccountSize,
		expectedSize:  495,
		load:          func(data []byte) (podView, error) { return LoadMarketAccount(data) },
		initialize:    func(data []byte) (podView, error) { return InitMarketAccount(data) },
	},
	{
		name:          "margin_account",
		discriminator: MarginAccountDiscriminator,
		size:          MarginAccountSize,
		expectedSize:  1082,
		load:          func(data []byte) (podView, error) { return LoadMarginAccount(data) },
		initialize:    func(data []byte) (podView, error) { return InitMarginAccount(data) },
	},
	{
		name:          "lp_position",
		discriminator: LpPositionAccountDiscriminator,
		size:          LpPositionAccountSize,
		expectedSize:  172,
		load:          func(data []byte) (podView, error) { return LoadLpPositionAccount(data) },
		initialize:    func(data []byte) (podView, error) { return InitLpPositionAccount(data) },
	},
	{
		name:          "tick_array",
		discriminator: TickArrayAccountDiscriminator,
		size:          TickArrayAccountSize,
		expectedSize:  2984,
		load:          func(data []byte) (podView, error) { return LoadTickArrayAccount(data) },
		initialize:    func(data []byte) (podView, error) { return InitTickArrayAccount(data) },
	},
	{
		name:          "rate_oracle",
		discriminator: RateOracleAccountDiscriminator,
		size:          RateOracleAccountSize,
		expectedSize:  1162,
		load:          func(data []byte) (podView, error) { return LoadRateOracleAccount(data) },
		initialize:    func(data []byte) (podView, error) { return InitRateOracleAccount(data) },
	},
	{
		name:          "order",
		discriminator: OrderAccountDiscriminator,
		size:          OrderAccountSize,
		expectedSize:  176,
		load:          func(data []byte) (podView, error) { return LoadOrderAccount(data) },
		initialize:    func(data []byte) (podView, error) { return InitOrderAccount(data) },
	},
	{
		name:          "epoch_state",
		discriminator: EpochStateAccountDiscriminator,
		size:          EpochStateAccountSize,
		expectedSize:  88,
		load:          func(data []byte) (podView, error) { return LoadEpochStateAccount(data) },
		initialize:    func(data []byte) (podView, error) { return InitEpochStateAccount(data) },
	},
}
