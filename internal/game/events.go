package game

import (
	"fmt"
	"math/rand"
)

// weighted pairs an outcome with its probability mass. Tables are
// evaluated in order against a single [0,1) roll, so weights need not
// sum to one; leftover mass means "nothing happens".
type weighted[T any] struct {
	value  T
	weight float64
}

// pickByWeight resolves a roll against a cumulative-probability table.
// The first entry whose cumulative threshold exceeds the roll fires.
func pickByWeight[T any](roll float64, table []weighted[T]) (T, bool) {
	cumulative := 0.0
	for _, entry := range table {
		cumulative += entry.weight
		if roll < cumulative {
			return entry.value, true
		}
	}
	var zero T
	return zero, false
}

// severityTable drives the injury severity draw once an injury occurs.
var severityTable = []weighted[InjurySeverity]{
	{SeverityMinor, 0.60},
	{SeverityModerate, 0.25},
	{SeverityMajor, 0.10},
	{SeverityCatastrophic, 0.05},
}

// RollInjury performs the weekly injury check. On a hit it attaches a
// new injury to the player and reports it; a catastrophic result also
// appends the career-ending achievement. The caller decides whether a
// catastrophic injury ends the session.
func RollInjury(rng *rand.Rand, p *Player) (string, bool) {
	roll := randRange(rng, 1, 100)
	if roll > p.InjuryRisk {
		return "", false
	}

	severity, _ := pickByWeight(rng.Float64(), severityTable)
	duration := severityDuration[severity]
	injury := &Injury{
		Name:           fmt.Sprintf("%s injury", severity),
		Severity:       severity,
		RemainingWeeks: randRange(rng, duration[0], duration[1]),
		StatPenalty:    severityPenalty[severity],
	}
	p.Injuries = append(p.Injuries, injury)

	if severity == SeverityCatastrophic {
		p.Achievements = append(p.Achievements, "Career ended due to injury")
	}
	return fmt.Sprintf("Injury occurred: %s lasting %d weeks.", injury.Name, injury.RemainingWeeks), true
}

type randomEvent int

const (
	eventIllness randomEvent = iota
	eventBadCut
	eventRival
	eventEquipmentBreak
	eventRecruitingBump
)

// eventTable covers roughly 19% of the weekly roll; most weeks nothing
// happens.
var eventTable = []weighted[randomEvent]{
	{eventIllness, 0.05},
	{eventBadCut, 0.05},
	{eventRival, 0.03},
	{eventEquipmentBreak, 0.04},
	{eventRecruitingBump, 0.02},
}

// RollEvent performs the weekly random-event check, independent of the
// injury roll, and applies the chosen event's effects.
func RollEvent(rng *rand.Rand, p *Player, s *Season) (string, bool) {
	event, ok := pickByWeight(rng.Float64(), eventTable)
	if !ok {
		return "", false
	}

	switch event {
	case eventIllness:
		penalty := randRange(rng, 2, 5)
		p.Stats.Stamina = max(0, p.Stats.Stamina-penalty)
		p.Fatigue = min(100, p.Fatigue+10)
		return "Caught a cold; stamina dipped temporarily.", true
	case eventBadCut:
		p.Fatigue = min(100, p.Fatigue+15)
		p.InjuryRisk = min(95, p.InjuryRisk+10)
		return "Rough weight cut increased fatigue and injury risk.", true
	case eventRival:
		p.Stats.Confidence += 3
		return "A rival emerged, motivating harder training.", true
	case eventEquipmentBreak:
		p.Finance.AddExpense(30, "Replaced broken gear")
		return "Gear broke unexpectedly, costing money.", true
	case eventRecruitingBump:
		s.RecruitmentInterest += 5
		return "Outstanding performance attracted college scouts.", true
	}
	return "", false
}
