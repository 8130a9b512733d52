package domain

// CasinoStats is the per-user aggregate stored at users/{id}/stats/casino.
// All counters only ever grow.
type CasinoStats struct {
	GamesPlayed int64 `json:"gamesPlayed"`
	TotalBets   int64 `json:"totalBets"`
	Winnings    int64 `json:"winnings"`
	Losses      int64 `json:"losses"`
}

// Net returns winnings minus losses
func (s CasinoStats) Net() int64 {
	return s.Winnings - s.Losses
}
