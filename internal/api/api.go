package api

// GameAPI is the complete surface the presentation layer sees. The
// core exposes data snapshots and choice dispatch; rendering and input
// gathering live entirely on the TUI side.
type GameAPI interface {
	// Snapshots for the status panel. Neither call mutates core state.
	PlayerInfo() PlayerInfo
	SeasonInfo() SeasonInfo

	// BeginWeek runs the start-of-week risk rolls (random event, then
	// injury) and reports what happened.
	BeginWeek() WeekStart

	// Choose dispatches one weekly menu choice and advances the week.
	Choose(choice Choice) ChoiceResult

	// Weight class management, outside the weekly choice loop.
	WeightClassOptions() []int
	ChangeWeightClass(target int) string

	// Save snapshots the full career state.
	Save() error

	// CareerOver reports whether a catastrophic injury ended the career.
	CareerOver() bool
}

// Choice identifies one weekly menu selection. Training choices carry
// the same identifiers as the core action table.
type Choice string

const (
	ChoiceTechnique  Choice = "technique"
	ChoiceStrength   Choice = "strength"
	ChoiceCondition  Choice = "condition"
	ChoiceRest       Choice = "rest"
	ChoiceFilm       Choice = "film"
	ChoiceWeight     Choice = "weight"
	ChoiceRecover    Choice = "recover"
	ChoiceEquipment  Choice = "equipment"
	ChoiceCoach      Choice = "coach"
	ChoiceNIL        Choice = "nil"
	ChoiceDualMeet   Choice = "meet"
	ChoiceTournament Choice = "tournament"
	ChoicePostseason Choice = "postseason"
	ChoiceSeason     Choice = "season"
	ChoiceSave       Choice = "save"
	ChoiceQuit       Choice = "quit"
)

// WeekStart reports the start-of-week risk roll results.
type WeekStart struct {
	EventMessage  string // empty when no random event fired
	InjuryMessage string // empty when no injury occurred
	CareerOver    bool   // catastrophic injury; session should end
}

// ChoiceResult is the outcome of one dispatched menu choice.
type ChoiceResult struct {
	Message string
	Quit    bool // quit requested; state has already been saved
}

// StatLine is the seven-attribute block for display.
type StatLine struct {
	Strength   int
	Speed      int
	Stamina    int
	Technique  int
	Mentality  int
	Toughness  int
	Confidence int
}

// InjuryInfo describes one active injury for display.
type InjuryInfo struct {
	Name           string
	Severity       string
	RemainingWeeks int
}

// PlayerInfo is a display snapshot of the wrestler.
type PlayerInfo struct {
	Name              string
	Hometown          string
	Age               int
	Grade             int
	Stage             string
	WeightClass       int
	Fatigue           int
	InjuryRisk        int
	WeightCutPressure int
	Money             int
	Wins              int
	Losses            int
	Stats             StatLine
	Injuries          []InjuryInfo
	Achievements      []string
}

// SeasonInfo is a display snapshot of the season state machine.
type SeasonInfo struct {
	Week                int
	InSeason            bool
	PostseasonPhase     string
	RecruitmentInterest int
}
