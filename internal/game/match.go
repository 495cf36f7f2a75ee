package game

import (
	"math/rand"
	"strings"
)

// MatchOutcome is the categorized result of one resolved match.
type MatchOutcome struct {
	Result string `json:"result"`
	Pinned bool   `json:"pinned"`
	Major  bool   `json:"major"`
}

// IsWin reports whether the outcome went the player's way.
func (o MatchOutcome) IsWin() bool {
	return strings.HasPrefix(o.Result, "Win")
}

// ResolveMatch scores the player against an opponent and records the
// outcome on the player. Only the player's side subtracts fatigue and
// active injury penalties, so opponents run stronger on paper at
// equal stats.
func ResolveMatch(rng *rand.Rand, p *Player, opp Opponent) MatchOutcome {
	playerScore := p.Stats.Strength + p.Stats.Technique + p.Stats.Speed +
		p.Stats.Stamina + p.Stats.Mentality - p.Fatigue - p.ActiveInjuryPenalty()
	playerScore += randRange(rng, -20, 20)

	oppScore := opp.Stats.Strength + opp.Stats.Technique + opp.Stats.Speed +
		opp.Stats.Stamina + opp.Stats.Mentality
	threshold := oppScore + randRange(rng, -10, 10)

	outcome := outcomeForDiff(playerScore - threshold)

	p.Record.LogResult(outcome)
	if outcome.IsWin() {
		p.Stats.Confidence += 2
	} else {
		p.Stats.Confidence -= 2
	}
	p.Stats.Confidence = clamp(p.Stats.Confidence, 0, 100)

	return outcome
}

// outcomeForDiff maps a score margin onto the tiered outcome table.
// Thresholds are evaluated strictly in order; ties go to the opponent.
func outcomeForDiff(diff int) MatchOutcome {
	switch {
	case diff > 20:
		return MatchOutcome{Result: "Win by pin", Pinned: true}
	case diff > 10:
		return MatchOutcome{Result: "Win by major decision", Major: true}
	case diff > 0:
		return MatchOutcome{Result: "Win by decision"}
	case diff < -20:
		return MatchOutcome{Result: "Loss by pin", Pinned: true}
	case diff < -10:
		return MatchOutcome{Result: "Loss by major decision", Major: true}
	default:
		return MatchOutcome{Result: "Loss by decision"}
	}
}
