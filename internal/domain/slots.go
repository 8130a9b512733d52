package domain

// SlotsResult is a spin outcome. Multiplier is the total returned per unit bet.
type SlotsResult struct {
	Reels      [3]string `json:"reels"`
	Multiplier float64   `json:"multiplier"`
	WinType    string    `json:"win_type"`
}

// IsWin reports whether the spin pays anything
func (r SlotsResult) IsWin() bool {
	return r.Multiplier > 0
}

// SlotsPlay is a settled slots round for a user
type SlotsPlay struct {
	UserID      string      `json:"user_id"`
	BetAmount   int64       `json:"bet_amount"`
	Result      SlotsResult `json:"result"`
	Payout      int64       `json:"payout"`
	ChipBalance int64       `json:"chip_balance"`
	Message     string      `json:"message"`
}
