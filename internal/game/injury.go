package game

import "fmt"

// InjurySeverity orders injuries from nuisance to career-ending.
type InjurySeverity int

const (
	SeverityMinor InjurySeverity = iota
	SeverityModerate
	SeverityMajor
	SeverityCatastrophic
)

func (s InjurySeverity) String() string {
	switch s {
	case SeverityMinor:
		return "Minor"
	case SeverityModerate:
		return "Moderate"
	case SeverityMajor:
		return "Major"
	case SeverityCatastrophic:
		return "Catastrophic"
	default:
		return "unknown"
	}
}

// ParseInjurySeverity turns a persisted severity name back into a value.
func ParseInjurySeverity(name string) (InjurySeverity, error) {
	switch name {
	case "Minor":
		return SeverityMinor, nil
	case "Moderate":
		return SeverityModerate, nil
	case "Major":
		return SeverityMajor, nil
	case "Catastrophic":
		return SeverityCatastrophic, nil
	default:
		return SeverityMinor, fmt.Errorf("unknown injury severity %q", name)
	}
}

// severityDuration holds the inclusive week range an injury of each
// severity lasts. Catastrophic runs past any realistic career length.
var severityDuration = map[InjurySeverity][2]int{
	SeverityMinor:        {1, 2},
	SeverityModerate:     {3, 7},
	SeverityMajor:        {8, 17},
	SeverityCatastrophic: {52, 999},
}

// severityPenalty is the flat score penalty an active injury of each
// severity applies to the wrestler's effective match score.
var severityPenalty = map[InjurySeverity]int{
	SeverityMinor:        3,
	SeverityModerate:     8,
	SeverityMajor:        15,
	SeverityCatastrophic: 100,
}

// Injury is a timed debuff on a player. It is active while
// RemainingWeeks is positive and gets dropped on the weekly reset
// once the timer runs out.
type Injury struct {
	Name           string         `json:"name"`
	Severity       InjurySeverity `json:"severity"`
	RemainingWeeks int            `json:"remaining_weeks"`
	StatPenalty    int            `json:"stat_penalty"`
}

// Tick decrements the remaining duration by one week, never below zero.
func (i *Injury) Tick() {
	if i.RemainingWeeks > 0 {
		i.RemainingWeeks--
	}
}

// Active reports whether the injury still has weeks left.
func (i *Injury) Active() bool {
	return i.RemainingWeeks > 0
}
