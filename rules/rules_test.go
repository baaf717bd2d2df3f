package rules

import "testing"

func TestApplyBirthBoundsAreStrict(t *testing.T) {
	cfg := Config{Overcrowding: 13, Starvation: 6, BirthMin: 7, BirthMax: 12}

	tests := []struct {
		name      string
		neighbors int
		want      bool
	}{
		{"equal to birth min stays dead", 7, false},
		{"one above birth min is born", 8, true},
		{"one below birth max is born", 11, true},
		{"equal to birth max stays dead", 12, false},
		{"zero neighbors stays dead", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cfg.Apply(tc.neighbors, false); got != tc.want {
				t.Fatalf("Apply(%d, dead) = %v, expected %v", tc.neighbors, got, tc.want)
			}
		})
	}
}

func TestApplySurvivalBoundsAreStrict(t *testing.T) {
	cfg := Config{Overcrowding: 13, Starvation: 6, BirthMin: 7, BirthMax: 12}

	tests := []struct {
		name      string
		neighbors int
		want      bool
	}{
		{"below starvation dies", 5, false},
		{"equal to starvation survives", 6, true},
		{"equal to overcrowding survives", 13, true},
		{"above overcrowding dies", 14, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cfg.Apply(tc.neighbors, true); got != tc.want {
				t.Fatalf("Apply(%d, alive) = %v, expected %v", tc.neighbors, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	got := Config{Overcrowding: 40, Starvation: -3, BirthMin: 27, BirthMax: 0}.Clamp()
	want := Config{Overcrowding: 27, Starvation: 0, BirthMin: 27, BirthMax: 0}
	if got != want {
		t.Fatalf("Clamp() = %+v, expected %+v", got, want)
	}
}

func TestDefaultConfigWithinRange(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Clamp() != cfg {
		t.Fatalf("default rules %+v fall outside the threshold range", cfg)
	}
}
