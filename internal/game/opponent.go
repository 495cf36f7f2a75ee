package game

import "math/rand"

// opponentTiers are cosmetic labels for generated opponents. The tier
// does not feed into match scoring.
var opponentTiers = []string{"local", "district", "regional", "state", "national"}

// opponentBase is the stat baseline an opponent is built from at each
// career stage.
var opponentBase = map[CareerStage]int{
	StageYouth:       35,
	StageJuniorHigh:  45,
	StageHighSchool:  55,
	StageCollege:     65,
	StagePostCollege: 70,
}

// Opponent is an ephemeral combatant generated per match. It is never
// persisted and never mutated by match resolution.
type Opponent struct {
	Name  string
	Tier  string
	Stats Stats
}

// GenerateOpponent procedurally builds an opponent scaled to the given
// career stage: a stage base plus a bounded random spread on the
// physical attributes, half spread on the mental ones.
func GenerateOpponent(rng *rand.Rand, stage CareerStage) Opponent {
	base := opponentBase[stage]
	spread := rng.Intn(21)

	stats := Stats{
		Strength:   base + rng.Intn(spread+1),
		Speed:      base + rng.Intn(spread+1),
		Stamina:    base + rng.Intn(spread+1),
		Technique:  base + rng.Intn(spread+1),
		Mentality:  base + rng.Intn(spread/2+1),
		Toughness:  base + rng.Intn(spread/2+1),
		Confidence: base,
	}
	stats.Clamp()

	return Opponent{
		Name:  "Tough Rival",
		Tier:  opponentTiers[rng.Intn(len(opponentTiers))],
		Stats: stats,
	}
}
