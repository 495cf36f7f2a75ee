package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/gillena202-a11y/wrest/internal/config"
	"github.com/gillena202-a11y/wrest/internal/database"
	"github.com/gillena202-a11y/wrest/internal/game"
	"github.com/gillena202-a11y/wrest/internal/log"
	"github.com/gillena202-a11y/wrest/internal/tui"
)

func main() {
	// Global panic handler: the TUI owns the screen, so crashes go to
	// the log file instead of a garbled terminal.
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "Application crashed. See the debug log for details.\n")
			os.Exit(1)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.SetFileOutput(cfg.LogFile); err != nil {
		fmt.Printf("Warning: Could not configure debug logging to file: %v\n", err)
	}
	defer log.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("Wrestling Life Simulator")
		fmt.Println("This application requires a terminal/TTY to run properly.")
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info("starting session", "seed", seed, "save_path", cfg.SavePath)

	db := database.NewDatabase()
	if err := db.OpenOrCreate(cfg.SavePath); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open save database: %v\n", err)
		os.Exit(1)
	}
	defer db.CloseDatabase()

	player, season, err := db.LoadCareer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load saved career: %v\n", err)
		os.Exit(1)
	}
	if player == nil {
		player = game.NewPlayer(cfg.PlayerName)
		season = game.NewSeason(player)
		log.Info("new career started", "player", player.Name)
	} else {
		log.Info("career resumed", "player", player.Name, "week", season.Week)
	}

	engine := game.NewEngine(rng, season, db)

	app := tui.NewApplication(engine)
	if err := app.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
