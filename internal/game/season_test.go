package game

import "testing"

func TestAdvanceWeekRollsCareerYear(t *testing.T) {
	p := NewPlayer("Casey")
	s := NewSeason(p)
	s.InSeason = true
	s.PostseasonPhase = "Districts"
	s.Week = 51
	p.Record.Wins = 5
	p.Record.Losses = 2

	s.AdvanceWeek()

	if s.Week != 52 {
		t.Fatalf("week = %d, expected 52", s.Week)
	}
	if p.Grade != 2 || p.Age != 7 {
		t.Errorf("grade/age = %d/%d, expected 2/7", p.Grade, p.Age)
	}
	if s.RecruitmentInterest != 3 {
		t.Errorf("recruitment interest = %d, expected win margin 3", s.RecruitmentInterest)
	}
	if s.InSeason || s.PostseasonPhase != "" {
		t.Error("year rollover must force the off-season and clear the phase cursor")
	}
}

func TestAdvanceWeekIgnoresLosingMargin(t *testing.T) {
	p := NewPlayer("Casey")
	s := NewSeason(p)
	s.Week = 51
	p.Record.Wins = 1
	p.Record.Losses = 8

	s.AdvanceWeek()

	if s.RecruitmentInterest != 0 {
		t.Errorf("recruitment interest = %d, losing records contribute nothing", s.RecruitmentInterest)
	}
}

func TestAdvanceWeekIsMonotonic(t *testing.T) {
	p := NewPlayer("Casey")
	s := NewSeason(p)

	for i := 0; i < 120; i++ {
		before := s.Week
		s.AdvanceWeek()
		if s.Week != before+1 {
			t.Fatalf("week went from %d to %d; the counter never resets", before, s.Week)
		}
	}
}

func TestToggleSeason(t *testing.T) {
	s := NewSeason(NewPlayer("Casey"))

	s.ToggleSeason()
	if !s.InSeason {
		t.Fatal("expected in-season after toggle")
	}

	s.PostseasonPhase = "Regionals"
	s.ToggleSeason()
	if s.InSeason {
		t.Fatal("expected off-season after second toggle")
	}
	if s.PostseasonPhase != "" {
		t.Error("leaving the season must clear the postseason cursor")
	}
}

func TestDeterminePostseasonSequencing(t *testing.T) {
	t.Run("high school runs Districts, Regionals, States", func(t *testing.T) {
		p := NewPlayer("Casey")
		p.Grade = 10
		p.Stage = StageHighSchool
		p.WeightClass = 152
		s := NewSeason(p)
		s.InSeason = true

		for _, expected := range []string{"Districts", "Regionals", "States"} {
			tournament := s.DeterminePostseason()
			if tournament == nil {
				t.Fatalf("expected the %s tournament, got nothing", expected)
			}
			if tournament.Name != expected {
				t.Fatalf("phase = %q, expected %q", tournament.Name, expected)
			}
			if tournament.Level != "HighSchool" {
				t.Errorf("level = %q, expected HighSchool", tournament.Level)
			}
		}

		if s.DeterminePostseason() != nil {
			t.Error("exhausted sequence must yield nothing")
		}
		if s.PostseasonPhase != "States" {
			t.Errorf("phase cursor = %q, must not reset after exhaustion", s.PostseasonPhase)
		}
	})

	t.Run("college runs Conference then NCAA", func(t *testing.T) {
		p := NewPlayer("Casey")
		p.Grade = 14
		p.Stage = StageCollege
		p.WeightClass = 157
		s := NewSeason(p)
		s.InSeason = true

		for _, expected := range []string{"Conference", "NCAA"} {
			tournament := s.DeterminePostseason()
			if tournament == nil || tournament.Name != expected {
				t.Fatalf("expected %s, got %+v", expected, tournament)
			}
		}
		if s.DeterminePostseason() != nil {
			t.Error("exhausted sequence must yield nothing")
		}
	})

	t.Run("off-season yields nothing", func(t *testing.T) {
		s := NewSeason(NewPlayer("Casey"))
		if s.DeterminePostseason() != nil {
			t.Error("postseason must not run off-season")
		}
		if s.PostseasonPhase != "" {
			t.Error("off-season call must not move the cursor")
		}
	})
}
