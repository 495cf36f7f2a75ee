package game

import (
	"math/rand"
	"testing"
)

func TestGenerateOpponentScaling(t *testing.T) {
	tests := []struct {
		stage CareerStage
		base  int
	}{
		{StageYouth, 35},
		{StageJuniorHigh, 45},
		{StageHighSchool, 55},
		{StageCollege, 65},
		{StagePostCollege, 70},
	}

	rng := rand.New(rand.NewSource(7))
	for _, tc := range tests {
		t.Run(tc.stage.String(), func(t *testing.T) {
			for i := 0; i < 100; i++ {
				opp := GenerateOpponent(rng, tc.stage)

				physical := []int{opp.Stats.Strength, opp.Stats.Speed, opp.Stats.Stamina, opp.Stats.Technique}
				for _, v := range physical {
					if v < tc.base || v > min(100, tc.base+20) {
						t.Fatalf("physical stat %d outside [%d,%d]", v, tc.base, tc.base+20)
					}
				}
				mental := []int{opp.Stats.Mentality, opp.Stats.Toughness}
				for _, v := range mental {
					if v < tc.base || v > min(100, tc.base+10) {
						t.Fatalf("mental stat %d outside [%d,%d]", v, tc.base, tc.base+10)
					}
				}
				if opp.Stats.Confidence != tc.base {
					t.Fatalf("confidence = %d, expected exactly the base %d", opp.Stats.Confidence, tc.base)
				}
			}
		})
	}
}

func TestGenerateOpponentTier(t *testing.T) {
	valid := map[string]bool{"local": true, "district": true, "regional": true, "state": true, "national": true}

	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		opp := GenerateOpponent(rng, StageHighSchool)
		if !valid[opp.Tier] {
			t.Fatalf("unexpected tier %q", opp.Tier)
		}
		seen[opp.Tier] = true
	}
	if len(seen) < 3 {
		t.Errorf("200 draws produced only tiers %v; the draw looks degenerate", seen)
	}
}
