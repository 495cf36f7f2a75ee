package game

// Record is the player's career win/loss ledger with a breakdown by
// result method. Incremented exactly once per resolved match.
type Record struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	Pins      int `json:"pins"`
	Majors    int `json:"majors"`
	Decisions int `json:"decisions"`
}

// LogResult tallies one match outcome.
func (r *Record) LogResult(outcome MatchOutcome) {
	if outcome.IsWin() {
		r.Wins++
	} else {
		r.Losses++
	}

	switch {
	case outcome.Pinned:
		r.Pins++
	case outcome.Major:
		r.Majors++
	default:
		r.Decisions++
	}
}
