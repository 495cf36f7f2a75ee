package game

import (
	"fmt"
	"math/rand"
)

// Action is a weekly training or life choice. Unknown actions are a
// no-op with a message rather than an error.
type Action string

const (
	ActionStrength  Action = "strength"
	ActionTechnique Action = "technique"
	ActionFilm      Action = "film"
	ActionCondition Action = "condition"
	ActionRest      Action = "rest"
	ActionRecover   Action = "recover"
	ActionWeight    Action = "weight"
	ActionEquipment Action = "equipment"
	ActionCoach     Action = "coach"
	ActionNIL       Action = "nil"
)

// Player is the simulated wrestler. It owns its stats, injuries,
// finances and record for the whole career.
type Player struct {
	Name              string      `json:"name"`
	Hometown          string      `json:"hometown"`
	Age               int         `json:"age"`
	Grade             int         `json:"grade"`
	Stage             CareerStage `json:"career_stage"`
	WeightClass       int         `json:"weight_class"`
	Stats             Stats       `json:"stats"`
	Fatigue           int         `json:"fatigue"`
	InjuryRisk        int         `json:"injury_risk"`
	Injuries          []*Injury   `json:"injuries"`
	Finance           Finance     `json:"finance"`
	Record            Record      `json:"record"`
	Achievements      []string    `json:"achievements"`
	WeightCutPressure int         `json:"weight_cut_pressure"`
}

// NewPlayer creates a first-grade youth wrestler at the lightest
// youth weight class.
func NewPlayer(name string) *Player {
	return &Player{
		Name:        name,
		Hometown:    "Pennsylvania",
		Age:         6,
		Grade:       1,
		Stage:       StageYouth,
		WeightClass: StageYouth.WeightClasses()[0],
		Stats:       DefaultStats(),
		Fatigue:     10,
		InjuryRisk:  5,
	}
}

// WeeklyReset restores all invariants at the end of a week: stats and
// fatigue clamped, injury risk kept in [1,95], injury timers ticked
// and expired injuries dropped.
func (p *Player) WeeklyReset() {
	p.Stats.Clamp()
	p.Fatigue = clamp(p.Fatigue, 0, 100)
	p.InjuryRisk = clamp(p.InjuryRisk, 1, 95)

	active := p.Injuries[:0]
	for _, injury := range p.Injuries {
		injury.Tick()
		if injury.Active() {
			active = append(active, injury)
		}
	}
	p.Injuries = active
}

// ActiveInjuryPenalty sums the score penalties of currently active
// injuries. It reduces the effective match score, never stored stats.
func (p *Player) ActiveInjuryPenalty() int {
	total := 0
	for _, injury := range p.Injuries {
		if injury.Active() {
			total += injury.StatPenalty
		}
	}
	return total
}

// HasCatastrophicInjury reports whether a career-ending injury is on
// the books. The surrounding session decides what to do about it.
func (p *Player) HasCatastrophicInjury() bool {
	for _, injury := range p.Injuries {
		if injury.Severity == SeverityCatastrophic {
			return true
		}
	}
	return false
}

// WeightClasses returns the legal classes for the player's current stage.
func (p *Player) WeightClasses() []int {
	return p.Stage.WeightClasses()
}

// AdjustWeightClass moves the player to a different class within the
// current system. Cutting or bulking spikes cut pressure, fatigue and
// injury risk proportionally to the jump.
func (p *Player) AdjustWeightClass(target int) string {
	legal := false
	for _, c := range p.WeightClasses() {
		if c == target {
			legal = true
			break
		}
	}
	if !legal {
		return "Invalid weight class for current level."
	}

	riskSpike := abs(target-p.WeightClass) / 5
	p.WeightClass = target
	p.WeightCutPressure = clamp(p.WeightCutPressure+riskSpike, 0, 100)
	p.Fatigue = clamp(p.Fatigue+riskSpike, 0, 100)
	p.InjuryRisk = clamp(p.InjuryRisk+riskSpike/2, 0, 95)
	return fmt.Sprintf("Moved to %d weight class; cut pressure now %d.", target, p.WeightCutPressure)
}

// ApplyAction executes one weekly action and then runs the weekly
// reset unconditionally. Gains and costs follow the fixed action table.
func (p *Player) ApplyAction(rng *rand.Rand, action Action) string {
	var message string

	switch action {
	case ActionStrength:
		gain := randRange(rng, 1, 2)
		p.Stats.Strength += gain
		p.Fatigue += 8
		p.InjuryRisk += 2
		p.Finance.AddExpense(10, "Weight room access")
		message = fmt.Sprintf("Strength increased by %d.", gain)

	case ActionTechnique:
		gain := randRange(rng, 1, 3)
		p.Stats.Technique += gain
		p.Stats.Mentality++
		p.Fatigue += 6
		p.Finance.AddExpense(15, "Club practice")
		message = fmt.Sprintf("Technique increased by %d.", gain)

	case ActionFilm:
		p.Stats.Technique++
		p.Stats.Confidence++
		p.Fatigue += 3
		p.Finance.AddExpense(5, "Film subscription")
		message = "Studied film and improved awareness."

	case ActionCondition:
		p.Stats.Stamina++
		p.Stats.Speed++
		p.Fatigue += 7
		p.Finance.AddExpense(5, "Running shoes")
		message = "Conditioning improved stamina and speed."

	case ActionRest:
		recovered := randRange(rng, 8, 15)
		p.Fatigue = max(0, p.Fatigue-recovered)
		p.InjuryRisk = max(1, p.InjuryRisk-2)
		message = fmt.Sprintf("Rested and recovered %d fatigue.", recovered)

	case ActionRecover:
		if len(p.Injuries) == 0 {
			message = "No injuries to rehab."
		} else {
			for _, injury := range p.Injuries {
				injury.RemainingWeeks = max(0, injury.RemainingWeeks-1)
			}
			p.Fatigue = max(0, p.Fatigue-5)
			p.Finance.AddExpense(25, "Physical therapy")
			message = "Spent the week rehabbing injuries."
		}

	case ActionWeight:
		reduction := randRange(rng, 1, 4)
		p.WeightCutPressure = max(0, p.WeightCutPressure-reduction)
		p.Fatigue += 4
		p.InjuryRisk++
		message = fmt.Sprintf("Managed weight; cut pressure lowered by %d.", reduction)

	case ActionEquipment:
		p.Finance.AddExpense(50, "New headgear and shoes")
		p.Stats.Confidence += 2
		message = "Purchased equipment boosting morale."

	case ActionCoach:
		p.Finance.AddExpense(75, "Private coach session")
		p.Stats.Technique += 2
		p.Stats.Mentality++
		p.Fatigue += 5
		message = "Private coaching refined technique."

	case ActionNIL:
		if (p.Stage == StageHighSchool || p.Stage == StageCollege) && p.Grade >= 12 {
			earnings := randRange(rng, 50, 150)
			p.Finance.AddIncome(earnings, "Local NIL appearance")
			p.Stats.Confidence++
			message = fmt.Sprintf("Secured a small NIL deal worth $%d.", earnings)
		} else {
			message = "Not eligible for NIL at this stage."
		}

	default:
		message = "Unknown action."
	}

	p.WeeklyReset()
	return message
}

// SeasonProgression advances the player one career year: age and
// grade up, stage recomputed from the grade bands, weight class
// re-banded to the nearest legal class in the new system. Entering
// college grade pays the one-time scholarship stipend.
func (p *Player) SeasonProgression() {
	p.Age++
	p.Grade++
	p.Stage = StageForGrade(p.Grade)
	p.WeightClass = ClosestWeightClass(p.WeightClasses(), p.WeightClass)
	if p.Stage == StageCollege && p.Grade == 13 {
		p.Finance.AddIncome(500, "Scholarship stipend")
	}
}

// randRange draws a uniform integer in [lo,hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
