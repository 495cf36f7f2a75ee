package game

import "testing"

func TestStageForGrade(t *testing.T) {
	tests := []struct {
		grade    int
		expected CareerStage
	}{
		{1, StageYouth},
		{6, StageYouth},
		{7, StageJuniorHigh},
		{8, StageJuniorHigh},
		{9, StageHighSchool},
		{12, StageHighSchool},
		{13, StageCollege},
		{16, StageCollege},
		{17, StagePostCollege},
		{25, StagePostCollege},
	}

	for _, tc := range tests {
		if got := StageForGrade(tc.grade); got != tc.expected {
			t.Errorf("StageForGrade(%d) = %s, expected %s", tc.grade, got, tc.expected)
		}
	}
}

func TestWeightSystemForStage(t *testing.T) {
	tests := []struct {
		stage    CareerStage
		expected WeightSystem
	}{
		{StageYouth, SystemYouth},
		{StageJuniorHigh, SystemPIAA},
		{StageHighSchool, SystemPIAA},
		{StageCollege, SystemNCAA},
		{StagePostCollege, SystemNCAA},
	}

	for _, tc := range tests {
		if got := tc.stage.WeightSystem(); got != tc.expected {
			t.Errorf("%s.WeightSystem() = %v, expected %v", tc.stage, got, tc.expected)
		}
	}
}

func TestWeightClassTables(t *testing.T) {
	if got := len(SystemYouth.Classes()); got != 6 {
		t.Errorf("youth system has %d classes, expected 6", got)
	}
	if got := len(SystemPIAA.Classes()); got != 13 {
		t.Errorf("PIAA system has %d classes, expected 13", got)
	}
	if got := len(SystemNCAA.Classes()); got != 10 {
		t.Errorf("NCAA system has %d classes, expected 10", got)
	}
}

func TestClosestWeightClass(t *testing.T) {
	tests := []struct {
		name     string
		classes  []int
		current  int
		expected int
	}{
		{"exact member stays", SystemNCAA.Classes(), 157, 157},
		{"youth 110 moves to PIAA 107", SystemPIAA.Classes(), 110, 107},
		{"PIAA 107 moves to NCAA 125", SystemNCAA.Classes(), 107, 125},
		{"heavyweight maps across systems", SystemNCAA.Classes(), 285, 285},
		{"tie resolves to lighter class", []int{100, 110}, 105, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClosestWeightClass(tc.classes, tc.current); got != tc.expected {
				t.Errorf("ClosestWeightClass(%v, %d) = %d, expected %d", tc.classes, tc.current, got, tc.expected)
			}
		})
	}
}

func TestCareerStageRoundTrip(t *testing.T) {
	for _, stage := range []CareerStage{StageYouth, StageJuniorHigh, StageHighSchool, StageCollege, StagePostCollege} {
		parsed, err := ParseCareerStage(stage.String())
		if err != nil {
			t.Fatalf("ParseCareerStage(%q) returned error: %v", stage.String(), err)
		}
		if parsed != stage {
			t.Errorf("ParseCareerStage(%q) = %v, expected %v", stage.String(), parsed, stage)
		}
	}

	if _, err := ParseCareerStage("MiddleSchool"); err == nil {
		t.Error("expected error for unknown stage name")
	}
}
