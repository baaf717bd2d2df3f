// Package controls is the mutation boundary for runtime settings. Every change
// is clamped here so the engine only ever sees valid configuration.
package controls

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/rules"
)

const (
	MinStartPercentage  = 0
	MaxStartPercentage  = 100
	StartPercentageStep = 10
	RuleStep            = 1
)

var ErrUnknownRule = errors.New("unknown rule")

// Rule names one of the four thresholds
type Rule string

const (
	Overcrowding Rule = "overcrowding"
	Starvation   Rule = "starvation"
	BirthMin     Rule = "birthMin"
	BirthMax     Rule = "birthMax"
)

// Settings is a consistent copy of every adjustable value
type Settings struct {
	Rules           rules.Config
	StartPercentage int
	WrapAround      bool
	AnimationOn     bool
}

// Controls guards Settings against concurrent mutation by an input source
type Controls struct {
	mu        sync.RWMutex
	settings  Settings
	randomize bool
}

// New returns controls seeded with s, clamped to the valid ranges
func New(s Settings) *Controls {
	s.Rules = s.Rules.Clamp()
	s.StartPercentage = clampPercentage(s.StartPercentage)
	return &Controls{settings: s}
}

// Settings returns a snapshot of the current values
func (c *Controls) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Rules returns the thresholds to use for the next step
func (c *Controls) Rules() rules.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Rules
}

// AdjustRule adds diff to the named threshold and returns the clamped result
func (c *Controls) AdjustRule(rule Rule, diff int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var field *int
	switch rule {
	case Overcrowding:
		field = &c.settings.Rules.Overcrowding
	case Starvation:
		field = &c.settings.Rules.Starvation
	case BirthMin:
		field = &c.settings.Rules.BirthMin
	case BirthMax:
		field = &c.settings.Rules.BirthMax
	default:
		return 0, errors.Wrapf(ErrUnknownRule, "[AdjustRule] %q", rule)
	}

	*field = rules.ClampThreshold(*field + diff)
	return *field, nil
}

// Increase raises a threshold by one step
func (c *Controls) Increase(rule Rule) (int, error) {
	return c.AdjustRule(rule, RuleStep)
}

// Decrease lowers a threshold by one step
func (c *Controls) Decrease(rule Rule) (int, error) {
	return c.AdjustRule(rule, -RuleStep)
}

// AdjustStartPercentage adds diff to the start percentage and returns the clamped result
func (c *Controls) AdjustStartPercentage(diff int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.StartPercentage = clampPercentage(c.settings.StartPercentage + diff)
	return c.settings.StartPercentage
}

func (c *Controls) IncreaseStartPercentage() int {
	return c.AdjustStartPercentage(StartPercentageStep)
}

func (c *Controls) DecreaseStartPercentage() int {
	return c.AdjustStartPercentage(-StartPercentageStep)
}

// ToggleWrapAround flips the wraparound flag and returns the new value
func (c *Controls) ToggleWrapAround() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.WrapAround = !c.settings.WrapAround
	return c.settings.WrapAround
}

// ToggleAnimation flips the animation flag and returns the new value
func (c *Controls) ToggleAnimation() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.AnimationOn = !c.settings.AnimationOn
	return c.settings.AnimationOn
}

// SetAnimation switches stepping on or off
func (c *Controls) SetAnimation(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.AnimationOn = on
}

// RequestRandomize asks the driver to reseed the grid before its next step
func (c *Controls) RequestRandomize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.randomize = true
}

// TakeRandomizeRequest reports and clears a pending randomize request
func (c *Controls) TakeRandomizeRequest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	pending := c.randomize
	c.randomize = false
	return pending
}

func clampPercentage(v int) int {
	return min(max(v, MinStartPercentage), MaxStartPercentage)
}
