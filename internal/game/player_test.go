package game

import (
	"math/rand"
	"strings"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("Casey")

	if p.Hometown != "Pennsylvania" {
		t.Errorf("hometown = %q, expected Pennsylvania", p.Hometown)
	}
	if p.Age != 6 || p.Grade != 1 {
		t.Errorf("age/grade = %d/%d, expected 6/1", p.Age, p.Grade)
	}
	if p.Stage != StageYouth {
		t.Errorf("stage = %s, expected Youth", p.Stage)
	}
	if p.WeightClass != 60 {
		t.Errorf("weight class = %d, expected 60", p.WeightClass)
	}
	if p.Fatigue != 10 || p.InjuryRisk != 5 {
		t.Errorf("fatigue/risk = %d/%d, expected 10/5", p.Fatigue, p.InjuryRisk)
	}
}

func TestApplyActionStrength(t *testing.T) {
	p := NewPlayer("Casey")
	before := *p

	msg := p.ApplyAction(testRNG(), ActionStrength)

	gain := p.Stats.Strength - before.Stats.Strength
	if gain < 1 || gain > 2 {
		t.Errorf("strength gain = %d, expected 1-2", gain)
	}
	if p.Fatigue != before.Fatigue+8 {
		t.Errorf("fatigue = %d, expected %d", p.Fatigue, before.Fatigue+8)
	}
	if p.InjuryRisk != before.InjuryRisk+2 {
		t.Errorf("injury risk = %d, expected %d", p.InjuryRisk, before.InjuryRisk+2)
	}
	if p.Finance.Money != -10 {
		t.Errorf("money = %d, expected -10", p.Finance.Money)
	}
	if len(p.Finance.ExpenseHistory) != 1 || !strings.Contains(p.Finance.ExpenseHistory[0], "Weight room") {
		t.Errorf("expense log = %v, expected one weight room entry", p.Finance.ExpenseHistory)
	}
	if !strings.HasPrefix(msg, "Strength increased by") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestApplyActionRestFloorsFatigue(t *testing.T) {
	p := NewPlayer("Casey")
	p.Fatigue = 3
	p.InjuryRisk = 1

	p.ApplyAction(testRNG(), ActionRest)

	if p.Fatigue != 0 {
		t.Errorf("fatigue = %d, expected floor at 0", p.Fatigue)
	}
	if p.InjuryRisk != 1 {
		t.Errorf("injury risk = %d, expected floor at 1", p.InjuryRisk)
	}
}

func TestApplyActionRecover(t *testing.T) {
	t.Run("without injuries is a no-op", func(t *testing.T) {
		p := NewPlayer("Casey")
		msg := p.ApplyAction(testRNG(), ActionRecover)
		if msg != "No injuries to rehab." {
			t.Errorf("message = %q", msg)
		}
		if p.Finance.Money != 0 {
			t.Errorf("money = %d, expected no expense without injuries", p.Finance.Money)
		}
	})

	t.Run("with injuries speeds recovery", func(t *testing.T) {
		p := NewPlayer("Casey")
		p.Fatigue = 50
		p.Injuries = []*Injury{{Name: "Moderate injury", Severity: SeverityModerate, RemainingWeeks: 5, StatPenalty: 8}}

		p.ApplyAction(testRNG(), ActionRecover)

		// One week of rehab plus the weekly tick.
		if p.Injuries[0].RemainingWeeks != 3 {
			t.Errorf("remaining weeks = %d, expected 3", p.Injuries[0].RemainingWeeks)
		}
		if p.Fatigue != 45 {
			t.Errorf("fatigue = %d, expected 45", p.Fatigue)
		}
		if p.Finance.Money != -25 {
			t.Errorf("money = %d, expected -25", p.Finance.Money)
		}
	})
}

func TestApplyActionNILEligibility(t *testing.T) {
	tests := []struct {
		name     string
		stage    CareerStage
		grade    int
		eligible bool
	}{
		{"youth first grader", StageYouth, 1, false},
		{"high school junior", StageHighSchool, 11, false},
		{"high school senior", StageHighSchool, 12, true},
		{"college wrestler", StageCollege, 14, true},
		{"post-college", StagePostCollege, 17, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer("Casey")
			p.Stage = tc.stage
			p.Grade = tc.grade
			p.WeightClass = tc.stage.WeightClasses()[0]

			msg := p.ApplyAction(testRNG(), ActionNIL)

			if tc.eligible {
				if p.Finance.Money < 50 || p.Finance.Money > 150 {
					t.Errorf("NIL income = %d, expected 50-150", p.Finance.Money)
				}
				if len(p.Finance.IncomeHistory) != 1 {
					t.Errorf("income log = %v, expected one entry", p.Finance.IncomeHistory)
				}
			} else {
				if msg != "Not eligible for NIL at this stage." {
					t.Errorf("message = %q", msg)
				}
				if p.Finance.Money != 0 || len(p.Finance.IncomeHistory) != 0 {
					t.Error("ineligible NIL request must not mutate finances")
				}
			}
		})
	}
}

func TestApplyActionUnknown(t *testing.T) {
	p := NewPlayer("Casey")
	if msg := p.ApplyAction(testRNG(), Action("juggling")); msg != "Unknown action." {
		t.Errorf("message = %q, expected unknown-action notice", msg)
	}
}

func TestApplyActionKeepsWeightClassLegal(t *testing.T) {
	rng := testRNG()
	p := NewPlayer("Casey")
	actions := []Action{ActionStrength, ActionTechnique, ActionFilm, ActionCondition,
		ActionRest, ActionRecover, ActionWeight, ActionEquipment, ActionCoach, ActionNIL}

	for week := 0; week < 200; week++ {
		p.ApplyAction(rng, actions[week%len(actions)])

		legal := false
		for _, c := range p.WeightClasses() {
			if c == p.WeightClass {
				legal = true
			}
		}
		if !legal {
			t.Fatalf("week %d: weight class %d not legal for stage %s", week, p.WeightClass, p.Stage)
		}
		if p.Fatigue < 0 || p.Fatigue > 100 {
			t.Fatalf("week %d: fatigue %d out of range", week, p.Fatigue)
		}
		if p.InjuryRisk < 1 || p.InjuryRisk > 95 {
			t.Fatalf("week %d: injury risk %d out of range", week, p.InjuryRisk)
		}
	}
}

func TestWeeklyResetDropsExpiredInjuries(t *testing.T) {
	p := NewPlayer("Casey")
	p.Injuries = []*Injury{
		{Name: "Minor injury", Severity: SeverityMinor, RemainingWeeks: 1, StatPenalty: 3},
		{Name: "Major injury", Severity: SeverityMajor, RemainingWeeks: 10, StatPenalty: 15},
	}

	p.WeeklyReset()

	if len(p.Injuries) != 1 {
		t.Fatalf("injuries = %d, expected expired one dropped", len(p.Injuries))
	}
	if p.Injuries[0].Severity != SeverityMajor {
		t.Errorf("surviving injury = %s, expected the major one", p.Injuries[0].Name)
	}
	if p.Injuries[0].RemainingWeeks != 9 {
		t.Errorf("remaining weeks = %d, expected 9", p.Injuries[0].RemainingWeeks)
	}
}

func TestActiveInjuryPenalty(t *testing.T) {
	p := NewPlayer("Casey")
	if p.ActiveInjuryPenalty() != 0 {
		t.Error("healthy player should have zero penalty")
	}

	p.Injuries = []*Injury{
		{Severity: SeverityMinor, RemainingWeeks: 1, StatPenalty: 3},
		{Severity: SeverityModerate, RemainingWeeks: 4, StatPenalty: 8},
		{Severity: SeverityMajor, RemainingWeeks: 0, StatPenalty: 15}, // inactive
	}
	if got := p.ActiveInjuryPenalty(); got != 11 {
		t.Errorf("penalty = %d, expected 11", got)
	}
}

func TestAdjustWeightClass(t *testing.T) {
	t.Run("rejects classes outside the current system", func(t *testing.T) {
		p := NewPlayer("Casey")
		before := *p

		msg := p.AdjustWeightClass(125) // NCAA class, youth player

		if msg != "Invalid weight class for current level." {
			t.Errorf("message = %q", msg)
		}
		if p.WeightClass != before.WeightClass || p.WeightCutPressure != before.WeightCutPressure {
			t.Error("rejected adjustment must not mutate state")
		}
	})

	t.Run("applies the risk spike", func(t *testing.T) {
		p := NewPlayer("Casey")
		p.Fatigue = 20
		p.InjuryRisk = 10

		p.AdjustWeightClass(110) // 60 -> 110, spike = 10

		if p.WeightClass != 110 {
			t.Errorf("weight class = %d, expected 110", p.WeightClass)
		}
		if p.WeightCutPressure != 10 {
			t.Errorf("cut pressure = %d, expected 10", p.WeightCutPressure)
		}
		if p.Fatigue != 30 {
			t.Errorf("fatigue = %d, expected 30", p.Fatigue)
		}
		if p.InjuryRisk != 15 {
			t.Errorf("injury risk = %d, expected 15", p.InjuryRisk)
		}
	})
}

func TestSeasonProgression(t *testing.T) {
	t.Run("grade 12 enters college with one stipend", func(t *testing.T) {
		p := NewPlayer("Casey")
		p.Grade = 12
		p.Age = 17
		p.Stage = StageHighSchool
		p.WeightClass = 285

		p.SeasonProgression()

		if p.Stage != StageCollege {
			t.Errorf("stage = %s, expected College", p.Stage)
		}
		if p.Grade != 13 || p.Age != 18 {
			t.Errorf("grade/age = %d/%d, expected 13/18", p.Grade, p.Age)
		}
		if p.Finance.Money != 500 {
			t.Errorf("money = %d, expected the $500 stipend", p.Finance.Money)
		}

		p.SeasonProgression()
		if p.Finance.Money != 500 {
			t.Errorf("money = %d, stipend must not repeat", p.Finance.Money)
		}
	})

	t.Run("rebands weight class to the closest legal value", func(t *testing.T) {
		p := NewPlayer("Casey")
		p.Grade = 6
		p.WeightClass = 110

		p.SeasonProgression()

		if p.Stage != StageJuniorHigh {
			t.Errorf("stage = %s, expected JuniorHigh", p.Stage)
		}
		if p.WeightClass != 107 {
			t.Errorf("weight class = %d, expected PIAA 107", p.WeightClass)
		}
	})
}
