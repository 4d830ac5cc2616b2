package yieldex

import (
	"crypto/ed25519"

	"github.com/yieldex-labs/yieldex-go/pkg/pointer"
	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/binary"
)

// instructionCases holds one populated value per instruction.
var instructionCases = []instructionCase{
	{
		def:  InitializeExchangeInstruction,
		args: &InitializeExchangeInstructionArgs{ProtocolFeeBps: 513, LiquidatorFeeBps: 514},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeExchangeInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeExchangeInstruction(&accounts, args.(*InitializeExchangeInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeExchangeAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeExchangeInstructionAccounts{},
	},
	{
		def:  TransferExchangeAdminInstruction,
		args: &TransferExchangeAdminInstructionArgs{NewAdmin: testKey(4)},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts TransferExchangeAdminInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewTransferExchangeAdminInstruction(&accounts, args.(*TransferExchangeAdminInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseTransferExchangeAdminAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: TransferExchangeAdminInstructionAccounts{},
	},
	{
		def:  AcceptExchangeAdminInstruction,
		args: &AcceptExchangeAdminInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts AcceptExchangeAdminInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewAcceptExchangeAdminInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseAcceptExchangeAdminAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: AcceptExchangeAdminInstructionAccounts{},
	},
	{
		def:  SetExchangePausedInstruction,
		args: &SetExchangePausedInstructionArgs{Paused: true},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetExchangePausedInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetExchangePausedInstruction(&accounts, args.(*SetExchangePausedInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetExchangePausedAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetExchangePausedInstructionAccounts{},
	},
	{
		def:  AddKeeperInstruction,
		args: &AddKeeperInstructionArgs{Keeper: testKey(13)},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts AddKeeperInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewAddKeeperInstruction(&accounts, args.(*AddKeeperInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseAddKeeperAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: AddKeeperInstructionAccounts{},
	},
	{
		def:  RemoveKeeperInstruction,
		args: &RemoveKeeperInstructionArgs{Keeper: testKey(16)},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RemoveKeeperInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRemoveKeeperInstruction(&accounts, args.(*RemoveKeeperInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRemoveKeeperAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RemoveKeeperInstructionAccounts{},
	},
	{
		def:  SetFeeReceiverInstruction,
		args: &SetFeeReceiverInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetFeeReceiverInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetFeeReceiverInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetFeeReceiverAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetFeeReceiverInstructionAccounts{},
	},
	{
		def:  SetProtocolFeeInstruction,
		args: &SetProtocolFeeInstructionArgs{ProtocolFeeBps: 534},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetProtocolFeeInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetProtocolFeeInstruction(&accounts, args.(*SetProtocolFeeInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetProtocolFeeAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetProtocolFeeInstructionAccounts{},
	},
	{
		def:  SetLiquidatorFeeInstruction,
		args: &SetLiquidatorFeeInstructionArgs{LiquidatorFeeBps: 537},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetLiquidatorFeeInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetLiquidatorFeeInstruction(&accounts, args.(*SetLiquidatorFeeInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetLiquidatorFeeAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetLiquidatorFeeInstructionAccounts{},
	},
	{
		def:  AddCollateralMintInstruction,
		args: &AddCollateralMintInstructionArgs{HaircutBps: 540, Decimals: 35},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts AddCollateralMintInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewAddCollateralMintInstruction(&accounts, args.(*AddCollateralMintInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseAddCollateralMintAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: AddCollateralMintInstructionAccounts{},
	},
	{
		def:  UpdateCollateralConfigInstruction,
		args: &UpdateCollateralConfigInstructionArgs{HaircutBps: 543, Enabled: true},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts UpdateCollateralConfigInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewUpdateCollateralConfigInstruction(&accounts, args.(*UpdateCollateralConfigInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseUpdateCollateralConfigAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: UpdateCollateralConfigInstructionAccounts{},
	},
	{
		def:  RemoveCollateralMintInstruction,
		args: &RemoveCollateralMintInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RemoveCollateralMintInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRemoveCollateralMintInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRemoveCollateralMintAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RemoveCollateralMintInstructionAccounts{},
	},
	{
		def:  WithdrawProtocolFeesInstruction,
		args: &WithdrawProtocolFeesInstructionArgs{Amount: 1000000043},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts WithdrawProtocolFeesInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewWithdrawProtocolFeesInstruction(&accounts, args.(*WithdrawProtocolFeesInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseWithdrawProtocolFeesAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: WithdrawProtocolFeesInstructionAccounts{},
	},
	{
		def:  KeeperHeartbeatInstruction,
		args: &KeeperHeartbeatInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts KeeperHeartbeatInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewKeeperHeartbeatInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseKeeperHeartbeatAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: KeeperHeartbeatInstructionAccounts{},
	},
	{
		def:  InitializeInsuranceFundInstruction,
		args: &InitializeInsuranceFundInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeInsuranceFundInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeInsuranceFundInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeInsuranceFundAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeInsuranceFundInstructionAccounts{},
	},
	{
		def:  InitializeMarketGroupInstruction,
		args: &InitializeMarketGroupInstructionArgs{Name: "fixed-rate-45", EpochDurationSecs: -88},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeMarketGroupInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeMarketGroupInstruction(&accounts, args.(*InitializeMarketGroupInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeMarketGroupAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeMarketGroupInstructionAccounts{},
	},
	{
		def:  RenameMarketGroupInstruction,
		args: &RenameMarketGroupInstructionArgs{Name: "fixed-rate-48"},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RenameMarketGroupInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRenameMarketGroupInstruction(&accounts, args.(*RenameMarketGroupInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRenameMarketGroupAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RenameMarketGroupInstructionAccounts{},
	},
	{
		def:  CloseMarketGroupInstruction,
		args: &CloseMarketGroupInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CloseMarketGroupInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCloseMarketGroupInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCloseMarketGroupAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CloseMarketGroupInstructionAccounts{},
	},
	{
		def:  InitializeMarketInstruction,
		args: &InitializeMarketInstructionArgs{Params: InitializeMarketParams{MarketIndex: 567, Kind: MarketKindRollingEpoch, MaturityTs: -98, TickSpacing: 570, MaxLeverage: 571, MakerFeeBps: -359, TakerFeeBps: -360, InitialSqrtPrice: binary.Uint128{Lo: 66, Hi: 70}, Name: [16]byte{1, 2, 3, 62}}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeMarketInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeMarketInstruction(&accounts, args.(*InitializeMarketInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeMarketAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeMarketInstructionAccounts{},
	},
	{
		def:  InitializeTickArrayInstruction,
		args: &InitializeTickArrayInstructionArgs{StartTickIndex: -70057},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeTickArrayInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeTickArrayInstruction(&accounts, args.(*InitializeTickArrayInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeTickArrayAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeTickArrayInstructionAccounts{},
	},
	{
		def:  ActivateMarketInstruction,
		args: &ActivateMarketInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ActivateMarketInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewActivateMarketInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseActivateMarketAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ActivateMarketInstructionAccounts{},
	},
	{
		def:  PauseMarketInstruction,
		args: &PauseMarketInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts PauseMarketInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewPauseMarketInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParsePauseMarketAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: PauseMarketInstructionAccounts{},
	},
	{
		def:  ResumeMarketInstruction,
		args: &ResumeMarketInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ResumeMarketInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewResumeMarketInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseResumeMarketAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ResumeMarketInstructionAccounts{},
	},
	{
		def:  SetMarketReduceOnlyInstruction,
		args: &SetMarketReduceOnlyInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetMarketReduceOnlyInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetMarketReduceOnlyInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetMarketReduceOnlyAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetMarketReduceOnlyInstructionAccounts{},
	},
	{
		def:  SetMarketStatusInstruction,
		args: &SetMarketStatusInstructionArgs{Status: MarketStatusActive},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetMarketStatusInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetMarketStatusInstruction(&accounts, args.(*SetMarketStatusInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetMarketStatusAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetMarketStatusInstructionAccounts{},
	},
	{
		def:  UpdateMarketParamInstruction,
		args: &UpdateMarketParamInstructionArgs{Param: MarketParamFees{MakerFeeBps: -2, TakerFeeBps: 5}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts UpdateMarketParamInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewUpdateMarketParamInstruction(&accounts, args.(*UpdateMarketParamInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseUpdateMarketParamAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: UpdateMarketParamInstructionAccounts{},
	},
	{
		def:  UpdateMarketFeesInstruction,
		args: &UpdateMarketFeesInstructionArgs{MakerFeeBps: -378, TakerFeeBps: -379},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts UpdateMarketFeesInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewUpdateMarketFeesInstruction(&accounts, args.(*UpdateMarketFeesInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseUpdateMarketFeesAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: UpdateMarketFeesInstructionAccounts{},
	},
	{
		def:  SetMarketOracleInstruction,
		args: &SetMarketOracleInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetMarketOracleInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetMarketOracleInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetMarketOracleAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetMarketOracleInstructionAccounts{},
	},
	{
		def:  ExpireMarketInstruction,
		args: &ExpireMarketInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ExpireMarketInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewExpireMarketInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseExpireMarketAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ExpireMarketInstructionAccounts{},
	},
	{
		def:  SettleMarketInstruction,
		args: &SettleMarketInstructionArgs{SettlementRate: 1000000094},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SettleMarketInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSettleMarketInstruction(&accounts, args.(*SettleMarketInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSettleMarketAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SettleMarketInstructionAccounts{},
	},
	{
		def:  CloseMarketInstruction,
		args: &CloseMarketInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CloseMarketInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCloseMarketInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCloseMarketAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CloseMarketInstructionAccounts{},
	},
	{
		def:  AccrueMarketFundingInstruction,
		args: &AccrueMarketFundingInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts AccrueMarketFundingInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewAccrueMarketFundingInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseAccrueMarketFundingAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: AccrueMarketFundingInstructionAccounts{},
	},
	{
		def:  InitializeMarginAccountInstruction,
		args: &InitializeMarginAccountInstructionArgs{SubAccountID: 609, MarginType: MarginTypeIsolated},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeMarginAccountInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeMarginAccountInstruction(&accounts, args.(*InitializeMarginAccountInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeMarginAccountAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeMarginAccountInstructionAccounts{},
	},
	{
		def:  CloseMarginAccountInstruction,
		args: &CloseMarginAccountInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CloseMarginAccountInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCloseMarginAccountInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCloseMarginAccountAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CloseMarginAccountInstructionAccounts{},
	},
	{
		def:  DepositCollateralInstruction,
		args: &DepositCollateralInstructionArgs{Amount: 1000000109},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts DepositCollateralInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewDepositCollateralInstruction(&accounts, args.(*DepositCollateralInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseDepositCollateralAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: DepositCollateralInstructionAccounts{},
	},
	{
		def:  WithdrawCollateralInstruction,
		args: &WithdrawCollateralInstructionArgs{Amount: 1000000112},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts WithdrawCollateralInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewWithdrawCollateralInstruction(&accounts, args.(*WithdrawCollateralInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseWithdrawCollateralAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: WithdrawCollateralInstructionAccounts{},
	},
	{
		def:  TransferCollateralInstruction,
		args: &TransferCollateralInstructionArgs{Amount: 1000000115},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts TransferCollateralInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewTransferCollateralInstruction(&accounts, args.(*TransferCollateralInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseTransferCollateralAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: TransferCollateralInstructionAccounts{},
	},
	{
		def:  SetMarginDelegateInstruction,
		args: &SetMarginDelegateInstructionArgs{Delegate: pointer.To(testKey(113))},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetMarginDelegateInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetMarginDelegateInstruction(&accounts, args.(*SetMarginDelegateInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetMarginDelegateAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetMarginDelegateInstructionAccounts{},
	},
	{
		def:  SetMarginTypeInstruction,
		args: &SetMarginTypeInstructionArgs{MarginType: MarginTypeIsolated},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetMarginTypeInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetMarginTypeInstruction(&accounts, args.(*SetMarginTypeInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetMarginTypeAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetMarginTypeInstructionAccounts{},
	},
	{
		def:  RenameMarginAccountInstruction,
		args: &RenameMarginAccountInstructionArgs{Name: [32]byte{1, 2, 3, 117}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RenameMarginAccountInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRenameMarginAccountInstruction(&accounts, args.(*RenameMarginAccountInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRenameMarginAccountAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RenameMarginAccountInstructionAccounts{},
	},
	{
		def:  MintPtYtInstruction,
		args: &MintPtYtInstructionArgs{Amount: 1000000127},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts MintPtYtInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewMintPtYtInstruction(&accounts, args.(*MintPtYtInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseMintPtYtAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: MintPtYtInstructionAccounts{},
	},
	{
		def:  RedeemPtYtInstruction,
		args: &RedeemPtYtInstructionArgs{Amount: 1000000130},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RedeemPtYtInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRedeemPtYtInstruction(&accounts, args.(*RedeemPtYtInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRedeemPtYtAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RedeemPtYtInstructionAccounts{},
	},
	{
		def:  RedeemPtAtMaturityInstruction,
		args: &RedeemPtAtMaturityInstructionArgs{Amount: 1000000133},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RedeemPtAtMaturityInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRedeemPtAtMaturityInstruction(&accounts, args.(*RedeemPtAtMaturityInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRedeemPtAtMaturityAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RedeemPtAtMaturityInstructionAccounts{},
	},
	{
		def:  ClaimYieldInstruction,
		args: &ClaimYieldInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ClaimYieldInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewClaimYieldInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseClaimYieldAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ClaimYieldInstructionAccounts{},
	},
	{
		def:  TradeYieldInstruction,
		args: &TradeYieldInstructionArgs{Side: OrderSideSellYield, Amount: 1000000140, OtherAmountThreshold: 1000000141, SqrtPriceLimit: binary.Uint128{Lo: 140, Hi: 144}, AmountIsInput: true},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts TradeYieldInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewTradeYieldInstruction(&accounts, args.(*TradeYieldInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseTradeYieldAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: TradeYieldInstructionAccounts{},
	},
	{
		def:  CloseYieldPositionInstruction,
		args: &CloseYieldPositionInstructionArgs{SqrtPriceLimit: binary.Uint128{Lo: 140, Hi: 144}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CloseYieldPositionInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCloseYieldPositionInstruction(&accounts, args.(*CloseYieldPositionInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCloseYieldPositionAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CloseYieldPositionInstructionAccounts{},
	},
	{
		def:  AdjustPositionMarginInstruction,
		args: &AdjustPositionMarginInstructionArgs{Amount: -180, ReduceOnly: true},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts AdjustPositionMarginInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewAdjustPositionMarginInstruction(&accounts, args.(*AdjustPositionMarginInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseAdjustPositionMarginAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: AdjustPositionMarginInstructionAccounts{},
	},
	{
		def:  SettlePositionInstruction,
		args: &SettlePositionInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SettlePositionInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSettlePositionInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSettlePositionAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SettlePositionInstructionAccounts{},
	},
	{
		def:  OpenLpPositionInstruction,
		args: &OpenLpPositionInstructionArgs{PositionID: 70144, TickLower: -70145, TickUpper: -70146},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts OpenLpPositionInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewOpenLpPositionInstruction(&accounts, args.(*OpenLpPositionInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseOpenLpPositionAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: OpenLpPositionInstructionAccounts{},
	},
	{
		def:  CloseLpPositionInstruction,
		args: &CloseLpPositionInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CloseLpPositionInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCloseLpPositionInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCloseLpPositionAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CloseLpPositionInstructionAccounts{},
	},
	{
		def:  AddLiquidityInstruction,
		args: &AddLiquidityInstructionArgs{LiquidityAmount: binary.Uint128{Lo: 155, Hi: 159}, MaxPtAmount: 1000000158, MaxQuoteAmount: 1000000159},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts AddLiquidityInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewAddLiquidityInstruction(&accounts, args.(*AddLiquidityInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseAddLiquidityAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: AddLiquidityInstructionAccounts{},
	},
	{
		def:  RemoveLiquidityInstruction,
		args: &RemoveLiquidityInstructionArgs{LiquidityAmount: binary.Uint128{Lo: 158, Hi: 162}, MinPtAmount: 1000000161, MinQuoteAmount: 1000000162},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RemoveLiquidityInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRemoveLiquidityInstruction(&accounts, args.(*RemoveLiquidityInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRemoveLiquidityAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RemoveLiquidityInstructionAccounts{},
	},
	{
		def:  CollectLpFeesInstruction,
		args: &CollectLpFeesInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CollectLpFeesInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCollectLpFeesInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCollectLpFeesAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CollectLpFeesInstructionAccounts{},
	},
	{
		def:  IncreaseLpMarginInstruction,
		args: &IncreaseLpMarginInstructionArgs{Amount: 1000000166},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts IncreaseLpMarginInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewIncreaseLpMarginInstruction(&accounts, args.(*IncreaseLpMarginInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseIncreaseLpMarginAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: IncreaseLpMarginInstructionAccounts{},
	},
	{
		def:  DecreaseLpMarginInstruction,
		args: &DecreaseLpMarginInstructionArgs{Amount: 1000000169},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts DecreaseLpMarginInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewDecreaseLpMarginInstruction(&accounts, args.(*DecreaseLpMarginInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseDecreaseLpMarginAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: DecreaseLpMarginInstructionAccounts{},
	},
	{
		def:  TransferLpPositionInstruction,
		args: &TransferLpPositionInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts TransferLpPositionInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewTransferLpPositionInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseTransferLpPositionAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: TransferLpPositionInstructionAccounts{},
	},
	{
		def:  SwapInstruction,
		args: &SwapInstructionArgs{Amount: 1000000175, OtherAmountThreshold: 1000000176, SqrtPriceLimit: binary.Uint128{Lo: 175, Hi: 179}, AmountSpecifiedIsInput: true, PtToQuote: true},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SwapInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSwapInstruction(&accounts, args.(*SwapInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSwapAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SwapInstructionAccounts{},
	},
	{
		def:  CollectProtocolFeesInstruction,
		args: &CollectProtocolFeesInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CollectProtocolFeesInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCollectProtocolFeesInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCollectProtocolFeesAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CollectProtocolFeesInstructionAccounts{},
	},
	{
		def:  UpdateLpFeeGrowthInstruction,
		args: &UpdateLpFeeGrowthInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts UpdateLpFeeGrowthInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewUpdateLpFeeGrowthInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseUpdateLpFeeGrowthAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: UpdateLpFeeGrowthInstructionAccounts{},
	},
	{
		def:  RebalanceLpPositionInstruction,
		args: &RebalanceLpPositionInstructionArgs{NewTickLower: -70177, NewTickUpper: -70178},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RebalanceLpPositionInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRebalanceLpPositionInstruction(&accounts, args.(*RebalanceLpPositionInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRebalanceLpPositionAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RebalanceLpPositionInstructionAccounts{},
	},
	{
		def:  InitializeOrderBookInstruction,
		args: &InitializeOrderBookInstructionArgs{MinOrderSize: 1000000187, RateTick: 1000000188},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeOrderBookInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeOrderBookInstruction(&accounts, args.(*InitializeOrderBookInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeOrderBookAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeOrderBookInstructionAccounts{},
	},
	{
		def:  PlaceOrderInstruction,
		args: &PlaceOrderInstructionArgs{Params: OrderParams{OrderType: OrderTypeStopLimit, Side: OrderSideSellYield, Size: 1000000192, LimitRate: 1000000193, TriggerRate: pointer.To(uint64(1000000195)), ExpiryTs: pointer.To(int64(-231)), ClientOrderID: 1000000196, ReduceOnly: true}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts PlaceOrderInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewPlaceOrderInstruction(&accounts, args.(*PlaceOrderInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParsePlaceOrderAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: PlaceOrderInstructionAccounts{},
	},
	{
		def:  PlaceOrdersInstruction,
		args: &PlaceOrdersInstructionArgs{Params: []OrderParams{{OrderType: OrderTypeStopLimit, Side: OrderSideSellYield, Size: 1000000196, LimitRate: 1000000197, TriggerRate: pointer.To(uint64(1000000199)), ExpiryTs: pointer.To(int64(-235)), ClientOrderID: 1000000200, ReduceOnly: true}, {OrderType: OrderTypePostOnly, Side: OrderSideSellYield, Size: 1000000197, LimitRate: 1000000198, TriggerRate: pointer.To(uint64(1000000200)), ExpiryTs: pointer.To(int64(-236)), ClientOrderID: 1000000201, ReduceOnly: true}}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts PlaceOrdersInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewPlaceOrdersInstruction(&accounts, args.(*PlaceOrdersInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParsePlaceOrdersAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: PlaceOrdersInstructionAccounts{},
	},
	{
		def:  CancelOrderInstruction,
		args: &CancelOrderInstructionArgs{OrderID: 1000000196},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CancelOrderInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCancelOrderInstruction(&accounts, args.(*CancelOrderInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCancelOrderAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CancelOrderInstructionAccounts{},
	},
	{
		def:  CancelOrderByClientIDInstruction,
		args: &CancelOrderByClientIDInstructionArgs{ClientOrderID: 1000000199},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CancelOrderByClientIDInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCancelOrderByClientIDInstruction(&accounts, args.(*CancelOrderByClientIDInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCancelOrderByClientIDAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CancelOrderByClientIDInstructionAccounts{},
	},
	{
		def:  CancelOrdersInstruction,
		args: &CancelOrdersInstructionArgs{OrderIds: []uint64{1000000203, 1000000204}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CancelOrdersInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCancelOrdersInstruction(&accounts, args.(*CancelOrdersInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCancelOrdersAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CancelOrdersInstructionAccounts{},
	},
	{
		def:  CancelAllOrdersInstruction,
		args: &CancelAllOrdersInstructionArgs{Market: pointer.To(testKey(200))},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CancelAllOrdersInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCancelAllOrdersInstruction(&accounts, args.(*CancelAllOrdersInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCancelAllOrdersAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CancelAllOrdersInstructionAccounts{},
	},
	{
		def:  ModifyOrderInstruction,
		args: &ModifyOrderInstructionArgs{OrderID: 1000000208, Params: ModifyOrderParams{NewSize: pointer.To(uint64(1000000210)), NewLimitRate: pointer.To(uint64(1000000211)), NewExpiryTs: pointer.To(int64(-247))}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ModifyOrderInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewModifyOrderInstruction(&accounts, args.(*ModifyOrderInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseModifyOrderAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ModifyOrderInstructionAccounts{},
	},
	{
		def:  FillOrderInstruction,
		args: &FillOrderInstructionArgs{OrderID: 1000000211, FillSize: 1000000212, FillRate: 1000000213},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts FillOrderInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewFillOrderInstruction(&accounts, args.(*FillOrderInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseFillOrderAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: FillOrderInstructionAccounts{},
	},
	{
		def:  MatchOrdersInstruction,
		args: &MatchOrdersInstructionArgs{TakerOrderID: 1000000214, MakerOrderIds: []uint64{1000000216, 1000000217}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts MatchOrdersInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewMatchOrdersInstruction(&accounts, args.(*MatchOrdersInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseMatchOrdersAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: MatchOrdersInstructionAccounts{},
	},
	{
		def:  TriggerOrderInstruction,
		args: &TriggerOrderInstructionArgs{OrderID: 1000000217},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts TriggerOrderInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewTriggerOrderInstruction(&accounts, args.(*TriggerOrderInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseTriggerOrderAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: TriggerOrderInstructionAccounts{},
	},
	{
		def:  ExpireOrdersInstruction,
		args: &ExpireOrdersInstructionArgs{OrderIds: []uint64{1000000221, 1000000222}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ExpireOrdersInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewExpireOrdersInstruction(&accounts, args.(*ExpireOrdersInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseExpireOrdersAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ExpireOrdersInstructionAccounts{},
	},
	{
		def:  CloseOrderInstruction,
		args: &CloseOrderInstructionArgs{OrderID: 1000000223},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CloseOrderInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCloseOrderInstruction(&accounts, args.(*CloseOrderInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCloseOrderAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CloseOrderInstructionAccounts{},
	},
	{
		def:  SetOrderBookParamsInstruction,
		args: &SetOrderBookParamsInstructionArgs{MinOrderSize: 1000000226, RateTick: 1000000227},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetOrderBookParamsInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetOrderBookParamsInstruction(&accounts, args.(*SetOrderBookParamsInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetOrderBookParamsAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetOrderBookParamsInstructionAccounts{},
	},
	{
		def:  InitializeOracleInstruction,
		args: &InitializeOracleInstructionArgs{Source: OracleSourceSwitchboard, MaxStalenessSecs: 70223},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeOracleInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeOracleInstruction(&accounts, args.(*InitializeOracleInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeOracleAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeOracleInstructionAccounts{},
	},
	{
		def:  UpdateOracleRateInstruction,
		args: &UpdateOracleRateInstructionArgs{Rate: 1000000232, Confidence: 1000000233, Timestamp: -269},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts UpdateOracleRateInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewUpdateOracleRateInstruction(&accounts, args.(*UpdateOracleRateInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseUpdateOracleRateAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: UpdateOracleRateInstructionAccounts{},
	},
	{
		def:  BatchUpdateOracleRatesInstruction,
		args: &BatchUpdateOracleRatesInstructionArgs{Updates: []OracleObservationUpdate{{Rate: 1000000236, Confidence: 1000000237, Timestamp: -273}, {Rate: 1000000237, Confidence: 1000000238, Timestamp: -274}}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts BatchUpdateOracleRatesInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewBatchUpdateOracleRatesInstruction(&accounts, args.(*BatchUpdateOracleRatesInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseBatchUpdateOracleRatesAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: BatchUpdateOracleRatesInstructionAccounts{},
	},
	{
		def:  PurgeOracleObservationsInstruction,
		args: &PurgeOracleObservationsInstructionArgs{Stamps: []uint32{70232, 70233}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts PurgeOracleObservationsInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewPurgeOracleObservationsInstruction(&accounts, args.(*PurgeOracleObservationsInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParsePurgeOracleObservationsAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: PurgeOracleObservationsInstructionAccounts{},
	},
	{
		def:  SetOracleSourceInstruction,
		args: &SetOracleSourceInstructionArgs{Source: OracleSourceSwitchboard},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetOracleSourceInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetOracleSourceInstruction(&accounts, args.(*SetOracleSourceInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetOracleSourceAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetOracleSourceInstructionAccounts{},
	},
	{
		def:  SetOracleAuthorityInstruction,
		args: &SetOracleAuthorityInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetOracleAuthorityInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetOracleAuthorityInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetOracleAuthorityAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetOracleAuthorityInstructionAccounts{},
	},
	{
		def:  SetOracleMaxStalenessInstruction,
		args: &SetOracleMaxStalenessInstructionArgs{MaxStalenessSecs: 70240},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetOracleMaxStalenessInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetOracleMaxStalenessInstruction(&accounts, args.(*SetOracleMaxStalenessInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetOracleMaxStalenessAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetOracleMaxStalenessInstructionAccounts{},
	},
	{
		def:  CrankOracleFromFeedInstruction,
		args: &CrankOracleFromFeedInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CrankOracleFromFeedInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCrankOracleFromFeedInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCrankOracleFromFeedAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CrankOracleFromFeedInstructionAccounts{},
	},
	{
		def:  CloseOracleInstruction,
		args: &CloseOracleInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts CloseOracleInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewCloseOracleInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseCloseOracleAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: CloseOracleInstructionAccounts{},
	},
	{
		def:  InitializeEpochStateInstruction,
		args: &InitializeEpochStateInstructionArgs{EpochDurationSecs: -291, StartTs: -292},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeEpochStateInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeEpochStateInstruction(&accounts, args.(*InitializeEpochStateInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeEpochStateAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeEpochStateInstructionAccounts{},
	},
	{
		def:  BeginEpochUpdateInstruction,
		args: &BeginEpochUpdateInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts BeginEpochUpdateInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewBeginEpochUpdateInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseBeginEpochUpdateAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: BeginEpochUpdateInstructionAccounts{},
	},
	{
		def:  SnapshotEpochInstruction,
		args: &SnapshotEpochInstructionArgs{BatchSize: 768},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SnapshotEpochInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSnapshotEpochInstruction(&accounts, args.(*SnapshotEpochInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSnapshotEpochAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SnapshotEpochInstructionAccounts{},
	},
	{
		def:  SettleEpochPositionsInstruction,
		args: &SettleEpochPositionsInstructionArgs{BatchSize: 771},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SettleEpochPositionsInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSettleEpochPositionsInstruction(&accounts, args.(*SettleEpochPositionsInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSettleEpochPositionsAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SettleEpochPositionsInstructionAccounts{},
	},
	{
		def:  RolloverEpochInstruction,
		args: &RolloverEpochInstructionArgs{NewMaturityTs: -303, InitialSqrtPrice: binary.Uint128{Lo: 267, Hi: 271}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts RolloverEpochInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewRolloverEpochInstruction(&accounts, args.(*RolloverEpochInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseRolloverEpochAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: RolloverEpochInstructionAccounts{},
	},
	{
		def:  FinalizeEpochUpdateInstruction,
		args: &FinalizeEpochUpdateInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts FinalizeEpochUpdateInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewFinalizeEpochUpdateInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseFinalizeEpochUpdateAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: FinalizeEpochUpdateInstructionAccounts{},
	},
	{
		def:  SetEpochPhaseInstruction,
		args: &SetEpochPhaseInstructionArgs{Phase: EpochUpdatePhaseFinalized},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetEpochPhaseInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetEpochPhaseInstruction(&accounts, args.(*SetEpochPhaseInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetEpochPhaseAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetEpochPhaseInstructionAccounts{},
	},
	{
		def:  SetEpochDurationInstruction,
		args: &SetEpochDurationInstructionArgs{EpochDurationSecs: -312},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetEpochDurationInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetEpochDurationInstruction(&accounts, args.(*SetEpochDurationInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetEpochDurationAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetEpochDurationInstructionAccounts{},
	},
	{
		def:  LiquidatePositionInstruction,
		args: &LiquidatePositionInstructionArgs{MaxSize: 1000000280},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts LiquidatePositionInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewLiquidatePositionInstruction(&accounts, args.(*LiquidatePositionInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseLiquidatePositionAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: LiquidatePositionInstructionAccounts{},
	},
	{
		def:  LiquidateLpPositionInstruction,
		args: &LiquidateLpPositionInstructionArgs{LiquidityAmount: binary.Uint128{Lo: 281, Hi: 285}},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts LiquidateLpPositionInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewLiquidateLpPositionInstruction(&accounts, args.(*LiquidateLpPositionInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseLiquidateLpPositionAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: LiquidateLpPositionInstructionAccounts{},
	},
	{
		def:  LiquidateCollateralInstruction,
		args: &LiquidateCollateralInstructionArgs{MaxAmount: 1000000286, MinOut: 1000000287},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts LiquidateCollateralInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewLiquidateCollateralInstruction(&accounts, args.(*LiquidateCollateralInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseLiquidateCollateralAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: LiquidateCollateralInstructionAccounts{},
	},
	{
		def:  FlagLiquidatableInstruction,
		args: &FlagLiquidatableInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts FlagLiquidatableInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewFlagLiquidatableInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseFlagLiquidatableAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: FlagLiquidatableInstructionAccounts{},
	},
	{
		def:  ClearLiquidationFlagInstruction,
		args: &ClearLiquidationFlagInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ClearLiquidationFlagInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewClearLiquidationFlagInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseClearLiquidationFlagAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ClearLiquidationFlagInstructionAccounts{},
	},
	{
		def:  ResolveBankruptcyInstruction,
		args: &ResolveBankruptcyInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ResolveBankruptcyInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewResolveBankruptcyInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseResolveBankruptcyAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ResolveBankruptcyInstructionAccounts{},
	},
	{
		def:  DepositInsuranceFundInstruction,
		args: &DepositInsuranceFundInstructionArgs{Amount: 1000000298},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts DepositInsuranceFundInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewDepositInsuranceFundInstruction(&accounts, args.(*DepositInsuranceFundInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseDepositInsuranceFundAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: DepositInsuranceFundInstructionAccounts{},
	},
	{
		def:  WithdrawInsuranceFundInstruction,
		args: &WithdrawInsuranceFundInstructionArgs{Amount: 1000000301},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts WithdrawInsuranceFundInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewWithdrawInsuranceFundInstruction(&accounts, args.(*WithdrawInsuranceFundInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseWithdrawInsuranceFundAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: WithdrawInsuranceFundInstructionAccounts{},
	},
	{
		def:  InitializeEarnVaultInstruction,
		args: &InitializeEarnVaultInstructionArgs{RewardRate: 1000000304},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts InitializeEarnVaultInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewInitializeEarnVaultInstruction(&accounts, args.(*InitializeEarnVaultInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseInitializeEarnVaultAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: InitializeEarnVaultInstructionAccounts{},
	},
	{
		def:  EarnDepositInstruction,
		args: &EarnDepositInstructionArgs{Amount: 1000000307},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts EarnDepositInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewEarnDepositInstruction(&accounts, args.(*EarnDepositInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseEarnDepositAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: EarnDepositInstructionAccounts{},
	},
	{
		def:  EarnWithdrawInstruction,
		args: &EarnWithdrawInstructionArgs{Shares: 1000000310},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts EarnWithdrawInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewEarnWithdrawInstruction(&accounts, args.(*EarnWithdrawInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseEarnWithdrawAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: EarnWithdrawInstructionAccounts{},
	},
	{
		def:  ClaimEarnRewardsInstruction,
		args: &ClaimEarnRewardsInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts ClaimEarnRewardsInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewClaimEarnRewardsInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseClaimEarnRewardsAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: ClaimEarnRewardsInstructionAccounts{},
	},
	{
		def:  SetEarnRewardRateInstruction,
		args: &SetEarnRewardRateInstructionArgs{RewardRate: 1000000316},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts SetEarnRewardRateInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewSetEarnRewardRateInstruction(&accounts, args.(*SetEarnRewardRateInstructionArgs), opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseSetEarnRewardRateAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: SetEarnRewardRateInstructionAccounts{},
	},
	{
		def:  HarvestEarnVaultInstruction,
		args: &HarvestEarnVaultInstructionArgs{},
		pack: func(args InstructionArgs, keys []ed25519.PublicKey, opts ...InstructionOption) solana.Instruction {
			var accounts HarvestEarnVaultInstructionAccounts
			assignKeys(accounts.fields(), keys)
			return NewHarvestEarnVaultInstruction(&accounts, opts...)
		},
		project: func(indexes []byte) ([]int, []int, error) {
			out, err := ParseHarvestEarnVaultAccountIndexes(indexes)
			if err != nil {
				return nil, nil, err
			}
			return collectIndexes(out.Accounts.fields()), out.Trailing, nil
		},
		accounts: HarvestEarnVaultInstructionAccounts{},
	},
}
