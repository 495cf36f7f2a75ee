package game

import (
	"fmt"
	"math/rand"

	"github.com/dominikbraun/graph"
)

// Tournament is a single-elimination bracket. The player wrestles one
// fresh stage-scaled opponent per round and is out on the first loss;
// there is no consolation bracket.
type Tournament struct {
	Name        string
	Level       string
	BracketSize int
}

// NewTournament creates a tournament with the standard 8-man bracket.
func NewTournament(name, level string) Tournament {
	return Tournament{Name: name, Level: level, BracketSize: 8}
}

// RoundResult is one resolved bracket match.
type RoundResult struct {
	Round    int
	Opponent Opponent
	Outcome  MatchOutcome
}

// TournamentResult holds the player's run through a bracket, including
// the advancement graph for rendering.
type TournamentResult struct {
	Tournament Tournament
	Rounds     []RoundResult
	Placement  string

	bracket graph.Graph[string, string]
	entry   string
	exit    string
}

// Run resolves the player's bracket: up to BracketSize/2 rounds, each
// against a freshly generated opponent, stopping at the first loss.
// The run is appended to the player's achievements.
func (t Tournament) Run(rng *rand.Rand, p *Player) *TournamentResult {
	result := &TournamentResult{
		Tournament: t,
		bracket:    graph.New(graph.StringHash, graph.Directed(), graph.Acyclic()),
		entry:      p.Name,
	}

	_ = result.bracket.AddVertex(result.entry)
	previous := result.entry

	wins := 0
	for round := 1; round <= t.BracketSize/2; round++ {
		opponent := GenerateOpponent(rng, p.Stage)
		outcome := ResolveMatch(rng, p, opponent)
		result.Rounds = append(result.Rounds, RoundResult{Round: round, Opponent: opponent, Outcome: outcome})

		node := fmt.Sprintf("Round %d: %s (%s)", round, opponent.Name, opponent.Tier)
		_ = result.bracket.AddVertex(node)
		_ = result.bracket.AddEdge(previous, node, graph.EdgeAttribute("result", outcome.Result))
		previous = node

		if !outcome.IsWin() {
			break
		}
		wins++
	}
	result.exit = previous

	if wins == len(result.Rounds) {
		result.Placement = "Champion"
	} else {
		result.Placement = fmt.Sprintf("%d wins", wins)
	}

	p.Achievements = append(p.Achievements, fmt.Sprintf("%s %s: %s", t.Level, t.Name, result.Placement))
	return result
}

// Path walks the advancement graph from entry to the last match played.
func (r *TournamentResult) Path() []string {
	path, err := graph.ShortestPath(r.bracket, r.entry, r.exit)
	if err != nil {
		return []string{r.entry}
	}
	return path
}

// Summary is the one-line result announcement.
func (r *TournamentResult) Summary() string {
	return fmt.Sprintf("Tournament %s (%s) result: %s.", r.Tournament.Name, r.Tournament.Level, r.Placement)
}
