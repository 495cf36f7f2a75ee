package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/gillena202-a11y/wrest/internal/game"
	"github.com/gillena202-a11y/wrest/internal/log"
)

// Database is the persistence contract for career snapshots. One
// database file holds exactly one career.
type Database interface {
	OpenDatabase(filename string) error
	CreateDatabase(filename string) error
	CloseDatabase() error
	GetDatabaseOpen() bool

	// SaveCareer writes a full snapshot of the player and season in a
	// single transaction, replacing any previous snapshot.
	SaveCareer(p *game.Player, s *game.Season) error

	// LoadCareer rebuilds the persisted career. A database without a
	// snapshot yields (nil, nil, nil): absence, not an error.
	LoadCareer() (*game.Player, *game.Season, error)

	// Internal access for advanced operations
	GetDB() *sql.DB
}

// SQLiteDatabase implements Database on modernc.org/sqlite.
type SQLiteDatabase struct {
	db       *sql.DB
	dbOpen   bool
	filename string
}

// NewDatabase creates an unopened database handle.
func NewDatabase() *SQLiteDatabase {
	return &SQLiteDatabase{}
}

// OpenOrCreate opens filename, creating it when it does not exist yet.
func (d *SQLiteDatabase) OpenOrCreate(filename string) error {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return d.CreateDatabase(filename)
	}
	return d.OpenDatabase(filename)
}

// OpenDatabase opens an existing career database.
func (d *SQLiteDatabase) OpenDatabase(filename string) error {
	if d.dbOpen {
		return fmt.Errorf("database already open")
	}

	log.Debug("opening database", "filename", filename)

	var err error
	d.db, err = sql.Open("sqlite", filename)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err = d.db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err = d.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err = d.validateSchema(); err != nil {
		return fmt.Errorf("invalid database schema: %w", err)
	}

	d.filename = filename
	d.dbOpen = true

	log.Debug("database opened", "filename", filename)
	return nil
}

// CreateDatabase creates a new empty career database.
func (d *SQLiteDatabase) CreateDatabase(filename string) error {
	if d.dbOpen {
		return fmt.Errorf("database already open")
	}

	log.Debug("creating database", "filename", filename)

	var err error
	d.db, err = sql.Open("sqlite", filename)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err = d.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.filename = filename
	d.dbOpen = true
	return nil
}

// CloseDatabase closes the underlying connection.
func (d *SQLiteDatabase) CloseDatabase() error {
	if !d.dbOpen {
		return nil
	}
	d.dbOpen = false
	return d.db.Close()
}

// GetDatabaseOpen reports whether the database is usable.
func (d *SQLiteDatabase) GetDatabaseOpen() bool {
	return d.dbOpen
}

// GetDB exposes the raw connection for advanced operations.
func (d *SQLiteDatabase) GetDB() *sql.DB {
	return d.db
}

// SaveCareer writes the full player and season snapshot atomically.
func (d *SQLiteDatabase) SaveCareer(p *game.Player, s *game.Season) error {
	if !d.dbOpen {
		return fmt.Errorf("database not open")
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Snapshot semantics: wipe and rewrite every career table.
	for _, table := range []string{"player", "injuries", "finance_log", "achievements", "season"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	row := playerToRow(p)
	_, err = tx.Exec(`
		INSERT INTO player (
			id, name, hometown, age, grade, career_stage, weight_class,
			fatigue, injury_risk, weight_cut_pressure, money,
			strength, speed, stamina, technique, mentality, toughness, confidence,
			wins, losses, pins, majors, decisions
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Name, row.Hometown, row.Age, row.Grade, row.CareerStage, row.WeightClass,
		row.Fatigue, row.InjuryRisk, row.WeightCutPressure, row.Money,
		row.Strength, row.Speed, row.Stamina, row.Technique, row.Mentality, row.Toughness, row.Confidence,
		row.Wins, row.Losses, row.Pins, row.Majors, row.Decisions)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	for i, injury := range p.Injuries {
		_, err = tx.Exec(`
			INSERT INTO injuries (position, name, severity, remaining_weeks, stat_penalty)
			VALUES (?, ?, ?, ?, ?)`,
			i, injury.Name, injury.Severity.String(), injury.RemainingWeeks, injury.StatPenalty)
		if err != nil {
			return fmt.Errorf("failed to save injury: %w", err)
		}
	}

	for _, entry := range p.Finance.IncomeHistory {
		if _, err := tx.Exec(`INSERT INTO finance_log (kind, entry) VALUES ('income', ?)`, entry); err != nil {
			return fmt.Errorf("failed to save income log: %w", err)
		}
	}
	for _, entry := range p.Finance.ExpenseHistory {
		if _, err := tx.Exec(`INSERT INTO finance_log (kind, entry) VALUES ('expense', ?)`, entry); err != nil {
			return fmt.Errorf("failed to save expense log: %w", err)
		}
	}

	for i, entry := range p.Achievements {
		if _, err := tx.Exec(`INSERT INTO achievements (position, entry) VALUES (?, ?)`, i, entry); err != nil {
			return fmt.Errorf("failed to save achievement: %w", err)
		}
	}

	inSeason := 0
	if s.InSeason {
		inSeason = 1
	}
	_, err = tx.Exec(`
		INSERT INTO season (id, week, in_season, postseason_phase, recruitment_interest)
		VALUES (1, ?, ?, ?, ?)`,
		s.Week, inSeason, s.PostseasonPhase, s.RecruitmentInterest)
	if err != nil {
		return fmt.Errorf("failed to save season: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}

	log.Debug("career saved", "week", s.Week, "player", p.Name)
	return nil
}

// LoadCareer rebuilds the persisted player and season. Absent saves
// return (nil, nil, nil).
func (d *SQLiteDatabase) LoadCareer() (*game.Player, *game.Season, error) {
	if !d.dbOpen {
		return nil, nil, fmt.Errorf("database not open")
	}

	var row PlayerRow
	err := d.db.QueryRow(`
		SELECT name, COALESCE(hometown, 'Pennsylvania'), age, grade, career_stage, weight_class,
			fatigue, injury_risk, COALESCE(weight_cut_pressure, 0), money,
			strength, speed, stamina, technique, mentality, toughness, confidence,
			wins, losses, pins, majors, decisions
		FROM player WHERE id = 1`).Scan(
		&row.Name, &row.Hometown, &row.Age, &row.Grade, &row.CareerStage, &row.WeightClass,
		&row.Fatigue, &row.InjuryRisk, &row.WeightCutPressure, &row.Money,
		&row.Strength, &row.Speed, &row.Stamina, &row.Technique, &row.Mentality, &row.Toughness, &row.Confidence,
		&row.Wins, &row.Losses, &row.Pins, &row.Majors, &row.Decisions)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load player: %w", err)
	}

	player, err := rowToPlayer(row)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to rebuild player: %w", err)
	}

	if err := d.loadInjuries(player); err != nil {
		return nil, nil, err
	}
	if err := d.loadFinanceLog(player); err != nil {
		return nil, nil, err
	}
	if err := d.loadAchievements(player); err != nil {
		return nil, nil, err
	}

	season := &game.Season{Player: player}
	var inSeason int
	err = d.db.QueryRow(`
		SELECT week, in_season, postseason_phase, COALESCE(recruitment_interest, 0)
		FROM season WHERE id = 1`).Scan(
		&season.Week, &inSeason, &season.PostseasonPhase, &season.RecruitmentInterest)
	season.InSeason = inSeason == 1
	if err == sql.ErrNoRows {
		// Player without a season row; start the season clock fresh.
		season.Week = 1
	} else if err != nil {
		return nil, nil, fmt.Errorf("failed to load season: %w", err)
	}

	log.Debug("career loaded", "week", season.Week, "player", player.Name)
	return player, season, nil
}

func (d *SQLiteDatabase) loadInjuries(p *game.Player) error {
	rows, err := d.db.Query(`
		SELECT position, name, severity, remaining_weeks, stat_penalty
		FROM injuries ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load injuries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row InjuryRow
		if err := rows.Scan(&row.Position, &row.Name, &row.Severity, &row.RemainingWeeks, &row.StatPenalty); err != nil {
			return fmt.Errorf("failed to scan injury: %w", err)
		}
		injury, err := rowToInjury(row)
		if err != nil {
			return fmt.Errorf("failed to rebuild injury: %w", err)
		}
		p.Injuries = append(p.Injuries, injury)
	}
	return rows.Err()
}

func (d *SQLiteDatabase) loadFinanceLog(p *game.Player) error {
	rows, err := d.db.Query(`SELECT kind, entry FROM finance_log ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to load finance log: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, entry string
		if err := rows.Scan(&kind, &entry); err != nil {
			return fmt.Errorf("failed to scan finance entry: %w", err)
		}
		if kind == "income" {
			p.Finance.IncomeHistory = append(p.Finance.IncomeHistory, entry)
		} else {
			p.Finance.ExpenseHistory = append(p.Finance.ExpenseHistory, entry)
		}
	}
	return rows.Err()
}

func (d *SQLiteDatabase) loadAchievements(p *game.Player) error {
	rows, err := d.db.Query(`SELECT entry FROM achievements ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load achievements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry string
		if err := rows.Scan(&entry); err != nil {
			return fmt.Errorf("failed to scan achievement: %w", err)
		}
		p.Achievements = append(p.Achievements, entry)
	}
	return rows.Err()
}
