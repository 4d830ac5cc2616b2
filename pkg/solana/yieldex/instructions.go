package yieldex

// instructionDefs lists every instruction in declaration order.
var instructionDefs = []*InstructionDef{
	InitializeExchangeInstruction,
	TransferExchangeAdminInstruction,
	AcceptExchangeAdminInstruction,
	SetExchangePausedInstruction,
	AddKeeperInstruction,
	RemoveKeeperInstruction,
	SetFeeReceiverInstruction,
	SetProtocolFeeInstruction,
	SetLiquidatorFeeInstruction,
	AddCollateralMintInstruction,
	UpdateCollateralConfigInstruction,
	RemoveCollateralMintInstruction,
	WithdrawProtocolFeesInstruction,
	KeeperHeartbeatInstruction,
	InitializeInsuranceFundInstruction,
	InitializeMarketGroupInstruction,
	RenameMarketGroupInstruction,
	CloseMarketGroupInstruction,
	InitializeMarketInstruction,
	InitializeTickArrayInstruction,
	ActivateMarketInstruction,
	PauseMarketInstruction,
	ResumeMarketInstruction,
	SetMarketReduceOnlyInstruction,
	SetMarketStatusInstruction,
	UpdateMarketParamInstruction,
	UpdateMarketFeesInstruction,
	SetMarketOracleInstruction,
	ExpireMarketInstruction,
	SettleMarketInstruction,
	CloseMarketInstruction,
	AccrueMarketFundingInstruction,
	InitializeMarginAccountInstruction,
	CloseMarginAccountInstruction,
	DepositCollateralInstruction,
	WithdrawCollateralInstruction,
	TransferCollateralInstruction,
	SetMarginDelegateInstruction,
	SetMarginTypeInstruction,
	RenameMarginAccountInstruction,
	MintPtYtInstruction,
	RedeemPtYtInstruction,
	RedeemPtAtMaturityInstruction,
	ClaimYieldInstruction,
	TradeYieldInstruction,
	CloseYieldPositionInstruction,
	AdjustPositionMarginInstruction,
	SettlePositionInstruction,
	OpenLpPositionInstruction,
	CloseLpPositionInstruction,
	AddLiquidityInstruction,
	RemoveLiquidityInstruction,
	CollectLpFeesInstruction,
	IncreaseLpMarginInstruction,
	DecreaseLpMarginInstruction,
	TransferLpPositionInstruction,
	SwapInstruction,
	CollectProtocolFeesInstruction,
	UpdateLpFeeGrowthInstruction,
	RebalanceLpPositionInstruction,
	InitializeOrderBookInstruction,
	PlaceOrderInstruction,
	PlaceOrdersInstruction,
	CancelOrderInstruction,
	CancelOrderByClientIDInstruction,
	CancelOrdersInstruction,
	CancelAllOrdersInstruction,
	ModifyOrderInstruction,
	FillOrderInstruction,
	MatchOrdersInstruction,
	TriggerOrderInstruction,
	ExpireOrdersInstruction,
	CloseOrderInstruction,
	SetOrderBookParamsInstruction,
	InitializeOracleInstruction,
	UpdateOracleRateInstruction,
	BatchUpdateOracleRatesInstruction,
	PurgeOracleObservationsInstruction,
	SetOracleSourceInstruction,
	SetOracleAuthorityInstruction,
	SetOracleMaxStalenessInstruction,
	CrankOracleFromFeedInstruction,
	CloseOracleInstruction,
	InitializeEpochStateInstruction,
	BeginEpochUpdateInstruction,
	SnapshotEpochInstruction,
	SettleEpochPositionsInstruction,
	RolloverEpochInstruction,
	FinalizeEpochUpdateInstruction,
	SetEpochPhaseInstruction,
	SetEpochDurationInstruction,
	LiquidatePositionInstruction,
	LiquidateLpPositionInstruction,
	LiquidateCollateralInstruction,
	FlagLiquidatableInstruction,
	ClearLiquidationFlagInstruction,
	ResolveBankruptcyInstruction,
	DepositInsuranceFundInstruction,
	WithdrawInsuranceFundInstruction,
	InitializeEarnVaultInstruction,
	EarnDepositInstruction,
	EarnWithdrawInstruction,
	ClaimEarnRewardsInstruction,
	SetEarnRewardRateInstruction,
	HarvestEarnVaultInstruction,
}
