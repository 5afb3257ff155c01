package actions

type UpdateLeverage struct {
	Asset    uint32 `json:"asset" msgpack:"asset"`
	IsCross  bool   `json:"isCross" msgpack:"isCross"`
	Leverage uint32 `json:"leverage" msgpack:"leverage"`
}

// UpdateIsolatedMargin adds (or, when negative, removes) Ntli micro-USD of isolated margin.
type UpdateIsolatedMargin struct {
	Asset uint32 `json:"asset" msgpack:"asset"`
	IsBuy bool   `json:"isBuy" msgpack:"isBuy"`
	Ntli  int64  `json:"ntli" msgpack:"ntli"`
}

type ClassTransfer struct {
	Usdc   uint64 `json:"usdc" msgpack:"usdc"`
	ToPerp bool   `json:"toPerp" msgpack:"toPerp"`
}

// SpotUser moves USDC between the spot and perp balances.
type SpotUser struct {
	ClassTransfer ClassTransfer `json:"classTransfer" msgpack:"classTransfer"`
}

type VaultTransfer struct {
	VaultAddress string `json:"vaultAddress" msgpack:"vaultAddress"`
	IsDeposit    bool   `json:"isDeposit" msgpack:"isDeposit"`
	Usd          uint64 `json:"usd" msgpack:"usd"`
}

type SetReferrer struct {
	Code string `json:"code" msgpack:"code"`
}

type EvmUserModify struct {
	UsingBigBlocks bool `json:"usingBigBlocks" msgpack:"usingBigBlocks"`
}

// ScheduleCancel sets (or, with a nil Time, clears) a dead man's switch.
type ScheduleCancel struct {
	Time *uint64 `json:"time,omitempty" msgpack:"time,omitempty"`
}

type ClaimRewards struct{}
