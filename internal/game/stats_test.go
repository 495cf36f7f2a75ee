package game

import "testing"

func TestStatsClampBounds(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected Stats
	}{
		{
			name:     "values above range are capped",
			stats:    Stats{Strength: 150, Speed: 101, Stamina: 100, Technique: 99, Mentality: 200, Toughness: 1000, Confidence: 102},
			expected: Stats{Strength: 100, Speed: 100, Stamina: 100, Technique: 99, Mentality: 100, Toughness: 100, Confidence: 100},
		},
		{
			name:     "values below range are floored",
			stats:    Stats{Strength: -1, Speed: -50, Stamina: 0, Technique: 1, Mentality: -100, Toughness: -3, Confidence: -2},
			expected: Stats{Strength: 0, Speed: 0, Stamina: 0, Technique: 1, Mentality: 0, Toughness: 0, Confidence: 0},
		},
		{
			name:     "in-range values are untouched",
			stats:    Stats{Strength: 40, Speed: 40, Stamina: 40, Technique: 40, Mentality: 40, Toughness: 40, Confidence: 40},
			expected: Stats{Strength: 40, Speed: 40, Stamina: 40, Technique: 40, Mentality: 40, Toughness: 40, Confidence: 40},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.stats.Clamp()
			if tc.stats != tc.expected {
				t.Errorf("Clamp() = %+v, expected %+v", tc.stats, tc.expected)
			}
		})
	}
}

func TestStatsClampIdempotent(t *testing.T) {
	s := Stats{Strength: 500, Speed: -500, Stamina: 55, Technique: 100, Mentality: 0, Toughness: 101, Confidence: -1}
	s.Clamp()
	once := s
	s.Clamp()
	if s != once {
		t.Errorf("clamp(clamp(s)) = %+v, expected %+v", s, once)
	}
}

func TestDefaultStats(t *testing.T) {
	s := DefaultStats()
	for name, value := range map[string]int{
		"strength": s.Strength, "speed": s.Speed, "stamina": s.Stamina,
		"technique": s.Technique, "mentality": s.Mentality,
		"toughness": s.Toughness, "confidence": s.Confidence,
	} {
		if value != 40 {
			t.Errorf("default %s = %d, expected 40", name, value)
		}
	}
}
