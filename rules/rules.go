package rules

import "fmt"

const (
	// MinThreshold is the lowest value any rule threshold may take
	MinThreshold = 0
	// MaxThreshold is the number of cells in a 3x3x3 block
	MaxThreshold = 27
)

// Config holds the four neighbor-count thresholds of the 3D life rules
type Config struct {
	Overcrowding int `json:"overcrowding"`
	Starvation   int `json:"starvation"`
	BirthMin     int `json:"birth_min"`
	BirthMax     int `json:"birth_max"`
}

// DefaultConfig returns a reasonable starting rule set
func DefaultConfig() Config {
	return Config{
		Overcrowding: 12,
		Starvation:   6,
		BirthMin:     6,
		BirthMax:     12,
	}
}

// Clamp returns a copy of c with every threshold limited to [MinThreshold, MaxThreshold]
func (c Config) Clamp() Config {
	return Config{
		Overcrowding: ClampThreshold(c.Overcrowding),
		Starvation:   ClampThreshold(c.Starvation),
		BirthMin:     ClampThreshold(c.BirthMin),
		BirthMax:     ClampThreshold(c.BirthMax),
	}
}

// String renders the thresholds for status output
func (c Config) String() string {
	return fmt.Sprintf("birth %d<n<%d | survive %d<=n<=%d",
		c.BirthMin, c.BirthMax, c.Starvation, c.Overcrowding)
}

// ClampThreshold limits v to the valid threshold range
func ClampThreshold(v int) int {
	return min(max(v, MinThreshold), MaxThreshold)
}

/*
Apply evaluates the 3D life rules for a single cell and reports whether it is alive in the next generation.

A dead cell is born when birthMin < neighbors < birthMax.
A live cell dies when neighbors < starvation or neighbors > overcrowding, otherwise it survives.
*/
func (c Config) Apply(neighbors int, alive bool) bool {
	if !alive {
		return neighbors > c.BirthMin && neighbors < c.BirthMax
	}
	starved := neighbors < c.Starvation
	crowded := neighbors > c.Overcrowding
	return !starved && !crowded
}
