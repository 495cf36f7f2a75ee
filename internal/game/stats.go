package game

// Stats holds the seven bounded attributes shared by every combatant.
// Every attribute lives in [0,100]; callers mutate freely and rely on
// Clamp to restore the bounds afterwards.
type Stats struct {
	Strength   int `json:"strength"`
	Speed      int `json:"speed"`
	Stamina    int `json:"stamina"`
	Technique  int `json:"technique"`
	Mentality  int `json:"mentality"`
	Toughness  int `json:"toughness"`
	Confidence int `json:"confidence"`
}

// DefaultStats returns the stat block a brand new wrestler starts with.
func DefaultStats() Stats {
	return Stats{
		Strength:   40,
		Speed:      40,
		Stamina:    40,
		Technique:  40,
		Mentality:  40,
		Toughness:  40,
		Confidence: 40,
	}
}

// Clamp forces every attribute back into [0,100].
func (s *Stats) Clamp() {
	s.Strength = clamp(s.Strength, 0, 100)
	s.Speed = clamp(s.Speed, 0, 100)
	s.Stamina = clamp(s.Stamina, 0, 100)
	s.Technique = clamp(s.Technique, 0, 100)
	s.Mentality = clamp(s.Mentality, 0, 100)
	s.Toughness = clamp(s.Toughness, 0, 100)
	s.Confidence = clamp(s.Confidence, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
