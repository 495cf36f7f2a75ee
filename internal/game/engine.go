package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gillena202-a11y/wrest/internal/api"
	"github.com/gillena202-a11y/wrest/internal/log"
)

// Store persists full career snapshots. Implemented by the database
// package; defined here so the engine stays free of storage imports.
type Store interface {
	SaveCareer(p *Player, s *Season) error
}

// Engine drives the weekly loop and implements api.GameAPI for the
// TUI. All randomness flows through the injected source so sessions
// are reproducible under a fixed seed.
type Engine struct {
	rng        *rand.Rand
	season     *Season
	store      Store
	careerOver bool
}

// NewEngine wires a season to a persistence store and random source.
func NewEngine(rng *rand.Rand, season *Season, store Store) *Engine {
	return &Engine{rng: rng, season: season, store: store}
}

// Season exposes the underlying season, mainly for tests and save paths.
func (e *Engine) Season() *Season {
	return e.season
}

// BeginWeek runs the start-of-week risk rolls: first the random event,
// then the injury check. A catastrophic injury flips the career-over
// signal; ending the session on it is the caller's call.
func (e *Engine) BeginWeek() api.WeekStart {
	ws := api.WeekStart{}
	p := e.season.Player

	if msg, ok := RollEvent(e.rng, p, e.season); ok {
		log.Debug("random event fired", "week", e.season.Week, "message", msg)
		ws.EventMessage = msg
	}
	if msg, ok := RollInjury(e.rng, p); ok {
		log.Info("injury occurred", "week", e.season.Week, "message", msg)
		ws.InjuryMessage = msg
		if p.HasCatastrophicInjury() {
			e.careerOver = true
			ws.CareerOver = true
		}
	}
	return ws
}

// Choose dispatches one weekly menu choice. Every choice except quit
// consumes the week; training identifiers fall through to the action
// table, which answers unknown ids with its own message.
func (e *Engine) Choose(choice api.Choice) api.ChoiceResult {
	p := e.season.Player
	var message string

	switch choice {
	case api.ChoiceDualMeet:
		if !e.season.InSeason {
			message = "Dual meets only occur in season."
		} else {
			opponent := GenerateOpponent(e.rng, p.Stage)
			outcome := ResolveMatch(e.rng, p, opponent)
			message = fmt.Sprintf("Dual meet vs %s foe: %s.", opponent.Tier, outcome.Result)
		}

	case api.ChoiceTournament:
		if !e.season.InSeason {
			message = "Tournaments only occur in season."
		} else {
			t := NewTournament("Local Open", p.Stage.String())
			message = e.runBracket(t, p)
		}

	case api.ChoicePostseason:
		if t := e.season.DeterminePostseason(); t != nil {
			message = e.runBracket(*t, p)
		} else if !e.season.InSeason {
			message = "Postseason only runs in season."
		} else {
			message = "The postseason is already over this year."
		}

	case api.ChoiceSeason:
		e.season.ToggleSeason()
		if e.season.InSeason {
			message = "The season is underway."
		} else {
			message = "The season has ended."
		}

	case api.ChoiceSave:
		if err := e.Save(); err != nil {
			log.Error("save failed", "error", err)
			message = fmt.Sprintf("Save failed: %v", err)
		} else {
			message = "Game saved."
		}

	case api.ChoiceQuit:
		if err := e.Save(); err != nil {
			log.Error("save on quit failed", "error", err)
		}
		return api.ChoiceResult{Message: "Saved and exiting. Thanks for playing!", Quit: true}

	default:
		message = p.ApplyAction(e.rng, Action(choice))
	}

	e.season.AdvanceWeek()
	return api.ChoiceResult{Message: message}
}

// runBracket resolves one tournament and traces the advancement path.
func (e *Engine) runBracket(t Tournament, p *Player) string {
	result := t.Run(e.rng, p)
	log.Debug("tournament run", "name", t.Name, "level", t.Level,
		"placement", result.Placement, "path", strings.Join(result.Path(), " -> "))
	return result.Summary()
}

// WeightClassOptions lists the legal classes at the current stage.
func (e *Engine) WeightClassOptions() []int {
	return e.season.Player.WeightClasses()
}

// ChangeWeightClass moves the player between classes without spending
// a week.
func (e *Engine) ChangeWeightClass(target int) string {
	return e.season.Player.AdjustWeightClass(target)
}

// Save snapshots the full career through the store.
func (e *Engine) Save() error {
	return e.store.SaveCareer(e.season.Player, e.season)
}

// CareerOver reports the catastrophic-injury terminal signal.
func (e *Engine) CareerOver() bool {
	return e.careerOver
}

// PlayerInfo builds a display snapshot of the wrestler.
func (e *Engine) PlayerInfo() api.PlayerInfo {
	p := e.season.Player

	injuries := make([]api.InjuryInfo, 0, len(p.Injuries))
	for _, injury := range p.Injuries {
		injuries = append(injuries, api.InjuryInfo{
			Name:           injury.Name,
			Severity:       injury.Severity.String(),
			RemainingWeeks: injury.RemainingWeeks,
		})
	}

	return api.PlayerInfo{
		Name:              p.Name,
		Hometown:          p.Hometown,
		Age:               p.Age,
		Grade:             p.Grade,
		Stage:             p.Stage.String(),
		WeightClass:       p.WeightClass,
		Fatigue:           p.Fatigue,
		InjuryRisk:        p.InjuryRisk,
		WeightCutPressure: p.WeightCutPressure,
		Money:             p.Finance.Money,
		Wins:              p.Record.Wins,
		Losses:            p.Record.Losses,
		Stats: api.StatLine{
			Strength:   p.Stats.Strength,
			Speed:      p.Stats.Speed,
			Stamina:    p.Stats.Stamina,
			Technique:  p.Stats.Technique,
			Mentality:  p.Stats.Mentality,
			Toughness:  p.Stats.Toughness,
			Confidence: p.Stats.Confidence,
		},
		Injuries:     injuries,
		Achievements: append([]string(nil), p.Achievements...),
	}
}

// SeasonInfo builds a display snapshot of the season state machine.
func (e *Engine) SeasonInfo() api.SeasonInfo {
	return api.SeasonInfo{
		Week:                e.season.Week,
		InSeason:            e.season.InSeason,
		PostseasonPhase:     e.season.PostseasonPhase,
		RecruitmentInterest: e.season.RecruitmentInterest,
	}
}
