package database

import (
	"github.com/gillena202-a11y/wrest/internal/game"
)

// Row records mirroring the career tables. Enum fields persist by
// name so saves stay readable and survive enum reordering.

// PlayerRow is the single-row player snapshot.
type PlayerRow struct {
	Name              string
	Hometown          string
	Age               int
	Grade             int
	CareerStage       string
	WeightClass       int
	Fatigue           int
	InjuryRisk        int
	WeightCutPressure int
	Money             int
	Strength          int
	Speed             int
	Stamina           int
	Technique         int
	Mentality         int
	Toughness         int
	Confidence        int
	Wins              int
	Losses            int
	Pins              int
	Majors            int
	Decisions         int
}

// InjuryRow is one persisted injury, ordered by position.
type InjuryRow struct {
	Position       int
	Name           string
	Severity       string
	RemainingWeeks int
	StatPenalty    int
}

// SeasonRow is the single-row season snapshot.
type SeasonRow struct {
	Week                int
	InSeason            bool
	PostseasonPhase     string
	RecruitmentInterest int
}

// playerToRow flattens a player into its snapshot row.
func playerToRow(p *game.Player) PlayerRow {
	return PlayerRow{
		Name:              p.Name,
		Hometown:          p.Hometown,
		Age:               p.Age,
		Grade:             p.Grade,
		CareerStage:       p.Stage.String(),
		WeightClass:       p.WeightClass,
		Fatigue:           p.Fatigue,
		InjuryRisk:        p.InjuryRisk,
		WeightCutPressure: p.WeightCutPressure,
		Money:             p.Finance.Money,
		Strength:          p.Stats.Strength,
		Speed:             p.Stats.Speed,
		Stamina:           p.Stats.Stamina,
		Technique:         p.Stats.Technique,
		Mentality:         p.Stats.Mentality,
		Toughness:         p.Stats.Toughness,
		Confidence:        p.Stats.Confidence,
		Wins:              p.Record.Wins,
		Losses:            p.Record.Losses,
		Pins:              p.Record.Pins,
		Majors:            p.Record.Majors,
		Decisions:         p.Record.Decisions,
	}
}

// rowToPlayer rebuilds a player from its snapshot row, substituting
// defaults for fields older saves may lack.
func rowToPlayer(row PlayerRow) (*game.Player, error) {
	stage, err := game.ParseCareerStage(row.CareerStage)
	if err != nil {
		return nil, err
	}

	hometown := row.Hometown
	if hometown == "" {
		hometown = "Pennsylvania"
	}

	return &game.Player{
		Name:              row.Name,
		Hometown:          hometown,
		Age:               row.Age,
		Grade:             row.Grade,
		Stage:             stage,
		WeightClass:       row.WeightClass,
		Fatigue:           row.Fatigue,
		InjuryRisk:        row.InjuryRisk,
		WeightCutPressure: row.WeightCutPressure,
		Stats: game.Stats{
			Strength:   row.Strength,
			Speed:      row.Speed,
			Stamina:    row.Stamina,
			Technique:  row.Technique,
			Mentality:  row.Mentality,
			Toughness:  row.Toughness,
			Confidence: row.Confidence,
		},
		Finance: game.Finance{Money: row.Money},
		Record: game.Record{
			Wins:      row.Wins,
			Losses:    row.Losses,
			Pins:      row.Pins,
			Majors:    row.Majors,
			Decisions: row.Decisions,
		},
	}, nil
}

// rowToInjury rebuilds one injury record.
func rowToInjury(row InjuryRow) (*game.Injury, error) {
	severity, err := game.ParseInjurySeverity(row.Severity)
	if err != nil {
		return nil, err
	}
	return &game.Injury{
		Name:           row.Name,
		Severity:       severity,
		RemainingWeeks: row.RemainingWeeks,
		StatPenalty:    row.StatPenalty,
	}, nil
}
