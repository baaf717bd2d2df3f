package model

import (
	"math/rand/v2"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol3d/rules"
)

var (
	ErrNilGrid             = errors.New("engine has no grid")
	ErrUnresolvedNextState = errors.New("next state unresolved after determine phase")
)

// EngineState holds the counters the engine updates on every step
type EngineState struct {
	AliveCells int
	TotalCells int
	Iterations int
	IsStalled  bool
}

// AlivePercent returns the live share of the grid rounded to a whole percent
func (s EngineState) AlivePercent() int {
	if s.TotalCells == 0 {
		return 0
	}
	return (200*s.AliveCells + s.TotalCells) / (2 * s.TotalCells)
}

// Engine advances a Grid one generation at a time
type Engine struct {
	grid    *Grid
	state   EngineState
	workers int
}

// NewEngine wraps grid. A workers value <= 0 uses one worker per CPU.
func NewEngine(grid *Grid, workers int) *Engine {
	if grid == nil {
		panic(errors.WithStack(ErrNilGrid))
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		grid:    grid,
		workers: workers,
		state: EngineState{
			AliveCells: grid.CountLivingCells(),
			TotalCells: grid.Len(),
		},
	}
}

// Grid returns the engine's grid. Callers must not mutate it while Step runs.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// State returns the counters as of the last step or randomize
func (e *Engine) State() EngineState {
	return e.state
}

// Randomize reseeds every cell and resets the counters
func (e *Engine) Randomize(startPercentage int, rng *rand.Rand) EngineState {
	e.mustGrid()
	e.grid.Randomize(startPercentage, rng)
	e.state = EngineState{
		AliveCells: e.grid.CountLivingCells(),
		TotalCells: e.grid.Len(),
	}
	return e.state
}

/*
Step computes exactly one generation and commits it.

The determine pass reads only current states and writes only next states, so it
runs across x slabs in parallel. The commit pass starts after every slab has
finished determining. cfg is taken by value, so the thresholds are fixed for the
whole step even if the caller mutates its copy concurrently.
*/
func (e *Engine) Step(cfg rules.Config) EngineState {
	e.mustGrid()

	changed, err := e.determine(cfg)
	if err != nil {
		panic(err)
	}
	alive, err := e.commit()
	if err != nil {
		panic(err)
	}

	e.state.Iterations++
	e.state.AliveCells = alive
	e.state.TotalCells = e.grid.Len()
	e.state.IsStalled = !changed
	return e.state
}

func (e *Engine) mustGrid() {
	if e == nil || e.grid == nil {
		panic(errors.WithStack(ErrNilGrid))
	}
}

// slab is a contiguous range of cell indexes covering whole x planes
type slab struct {
	start, end int
}

func (e *Engine) slabs() []slab {
	var (
		g             = e.grid
		numWorkers    = min(e.workers, g.width)
		planesPerSlab = (g.width + numWorkers - 1) / numWorkers // Ceiling division
		planeSize     = g.height * g.depth
		out           = make([]slab, 0, numWorkers)
	)

	for i := range numWorkers {
		startPlane := i * planesPerSlab
		if startPlane >= g.width {
			break
		}
		endPlane := min(startPlane+planesPerSlab, g.width)
		out = append(out, slab{start: startPlane * planeSize, end: endPlane * planeSize})
	}
	return out
}

// determine sets every cell's next state and reports whether any cell will change
func (e *Engine) determine(cfg rules.Config) (bool, error) {
	var (
		eg      errgroup.Group
		g       = e.grid
		slabs   = e.slabs()
		changed = make([]bool, len(slabs))
	)

	for i, s := range slabs {
		eg.Go(func() error {
			for idx := s.start; idx < s.end; idx++ {
				c := &g.cells[idx]
				n := g.neighborCount(c.pos.X, c.pos.Y, c.pos.Z)

				next := Dead
				if cfg.Apply(n, c.current == Alive) {
					next = Alive
				}
				c.next = next
				if next != c.current {
					changed[i] = true
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return false, errors.Wrap(err, "[Engine.determine] parallel pass failed")
	}

	for _, ch := range changed {
		if ch {
			return true, nil
		}
	}
	return false, nil
}

// commit promotes next states to current states and recounts the live census
func (e *Engine) commit() (int, error) {
	var (
		eg     errgroup.Group
		g      = e.grid
		slabs  = e.slabs()
		counts = make([]int, len(slabs))
	)

	for i, s := range slabs {
		eg.Go(func() error {
			for idx := s.start; idx < s.end; idx++ {
				c := &g.cells[idx]
				if c.next == Unset {
					return errors.Wrapf(ErrUnresolvedNextState, "[Engine.commit] cell %s", c.pos)
				}
				c.current = c.next
				c.next = Unset
				if c.current == Alive {
					counts[i]++
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, err
	}

	alive := 0
	for _, n := range counts {
		alive += n
	}
	return alive, nil
}

// Snapshot copies the visible state of every cell into a pooled buffer for renderers
func (e *Engine) Snapshot(pool *SnapshotPool) *Snapshot {
	e.mustGrid()

	g := e.grid
	var s *Snapshot
	if pool != nil {
		s = pool.Get(g.width, g.height, g.depth)
	} else {
		s = NewSnapshot(g.width, g.height, g.depth)
	}

	for i := range g.cells {
		s.alive[i] = g.cells[i].current == Alive
	}
	s.State = e.state
	return s
}
