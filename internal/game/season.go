package game

// Season owns the player and drives the week/year state machine. The
// week counter is monotonic and never resets across career years.
type Season struct {
	Player              *Player `json:"-"`
	Week                int     `json:"week"`
	InSeason            bool    `json:"in_season"`
	PostseasonPhase     string  `json:"postseason_phase"` // empty means no phase
	RecruitmentInterest int     `json:"recruitment_interest"`
}

// NewSeason wraps a player in a fresh season at week one, off-season.
func NewSeason(p *Player) *Season {
	return &Season{Player: p, Week: 1}
}

// ToggleSeason flips the in-season flag. Leaving the season always
// clears the postseason cursor.
func (s *Season) ToggleSeason() {
	s.InSeason = !s.InSeason
	if !s.InSeason {
		s.PostseasonPhase = ""
	}
}

// AdvanceWeek moves time forward one week. Every 52nd week the career
// year rolls over: the player progresses a grade, recruitment interest
// accumulates the season's win margin, and the season closes.
func (s *Season) AdvanceWeek() {
	s.Week++
	s.Player.WeeklyReset()
	if s.Week%52 == 0 {
		s.Player.SeasonProgression()
		s.RecruitmentInterest += max(0, s.Player.Record.Wins-s.Player.Record.Losses)
		s.InSeason = false
		s.PostseasonPhase = ""
	}
}

// postseasonPhases is the ordered tournament sequence for a stage.
func postseasonPhases(stage CareerStage) []string {
	if stage == StageJuniorHigh || stage == StageHighSchool {
		return []string{"Districts", "Regionals", "States"}
	}
	return []string{"Conference", "NCAA"}
}

// DeterminePostseason advances the postseason cursor and returns the
// tournament for the new phase. Off-season calls and calls past the
// end of the sequence return nil; an exhausted cursor stays where it
// is rather than resetting.
func (s *Season) DeterminePostseason() *Tournament {
	if !s.InSeason {
		return nil
	}

	phases := postseasonPhases(s.Player.Stage)
	if s.PostseasonPhase == "" {
		s.PostseasonPhase = phases[0]
	} else {
		next := ""
		for i, phase := range phases {
			if phase == s.PostseasonPhase && i+1 < len(phases) {
				next = phases[i+1]
				break
			}
		}
		if next == "" {
			return nil
		}
		s.PostseasonPhase = next
	}

	t := NewTournament(s.PostseasonPhase, s.Player.Stage.String())
	return &t
}
