package main

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/sheikhrachel/go-gol3d/controls"
	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/utils"
)

// game bundles the engine with the plumbing the terminal driver needs around it
type game struct {
	engine   *model.Engine
	controls *controls.Controls
	pool     *model.SnapshotPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *model.History
	stepper  *utils.FixedStep
	rng      *rand.Rand
	message  atomic.Pointer[string]
	reason   string
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) *game {
	width, height, depth := config.Dimensions()
	grid := model.NewGrid(width, height, depth, config.WrapAround)

	seed := uint64(config.Seed)
	if config.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &game{
		engine: model.NewEngine(grid, config.Workers),
		controls: controls.New(controls.Settings{
			Rules:           config.Rules,
			StartPercentage: config.StartPercentage,
			WrapAround:      config.WrapAround,
			AnimationOn:     config.AnimationOn,
		}),
		pool:     model.NewSnapshotPool(),
		renderer: &model.TerminalRenderer{MaxLayers: config.ShowLayers},
		stats:    utils.NewStats(),
		history:  model.NewHistory(config.CycleWindow),
		stepper:  utils.NewFixedStep(config.TPS),
		rng:      rand.New(rand.NewPCG(seed, 0)),
	}

	g.engine.Randomize(config.StartPercentage, g.rng)
	g.history.Observe(grid)
	return g
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, g *game) {
	grid := g.engine.Grid()
	fmt.Printf("Grid: %dx%dx%d | Wraparound: %v | Initial living cells: %d\n",
		grid.Width(), grid.Height(), grid.Depth(), grid.WrapAround(), grid.CountLivingCells())
	fmt.Printf("Rules: %s | Step rate: %d/s\n", config.Rules, config.TPS)
	if config.Interactive {
		fmt.Println("Commands: o+ o- s+ s- bmin+ bmin- bmax+ bmax- p+ p- wrap anim r")
	}
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// restartGame reseeds the grid with the current start percentage
func restartGame(g *game, settings controls.Settings) {
	g.engine.Grid().SetWrapAround(settings.WrapAround)
	g.engine.Randomize(settings.StartPercentage, g.rng)
	g.history.Reset()
	g.history.Observe(g.engine.Grid())
	g.stats.Restarted()
	g.reason = ""
	g.controls.SetAnimation(true)
}

// advance steps the engine once when animation is on and the cadence allows it
func advance(g *game, config utils.Config, settings controls.Settings, lastStep time.Time) (bool, model.EngineState) {
	if !settings.AnimationOn || !g.stepper.ShouldStep() {
		return false, g.engine.State()
	}

	g.engine.Grid().SetWrapAround(settings.WrapAround)
	state := g.engine.Step(settings.Rules)
	g.stats.Update(state.Iterations, state.AliveCells, time.Since(lastStep))

	period := 0
	if config.DetectCycles {
		period = g.history.Observe(g.engine.Grid())
	}

	if reason := checkStopConditions(state, period, config); reason != "" {
		g.reason = reason
		g.controls.SetAnimation(false)
	}
	return true, state
}

// checkStopConditions determines whether stepping should pause
func checkStopConditions(state model.EngineState, period int, config utils.Config) string {
	if !config.StopWhenStalled {
		return ""
	}
	if state.IsStalled {
		return "stalled"
	}
	if period > 1 {
		return fmt.Sprintf("cycle of period %d", period)
	}
	return ""
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, state model.EngineState, settings controls.Settings) {
	stalled := "No"
	if state.IsStalled {
		stalled = "Yes"
	}
	animation := "OFF"
	if settings.AnimationOn {
		animation = "ON"
	}

	fmt.Printf("Iterations: %d | Cells: %d%% (%d/%d) | Stalled: %s | Animation: %s | Wraparound: %v\n",
		state.Iterations, state.AlivePercent(), state.AliveCells, state.TotalCells,
		stalled, animation, settings.WrapAround)
	fmt.Printf("Rules: %s | Start: %d%%\n", settings.Rules, settings.StartPercentage)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Restarts: %d | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation,
		g.stats.Restarts, g.stats.Runtime().Seconds())

	if g.reason != "" {
		fmt.Printf("Paused: %s\n", g.reason)
	}
	if msg := g.message.Load(); msg != nil {
		fmt.Printf("> %s\n", *msg)
	}
	fmt.Println()
}

// render draws the current generation from a pooled snapshot
func render(g *game, settings controls.Settings) {
	snapshot := g.engine.Snapshot(g.pool)
	defer model.SnapshotToPool(snapshot, g.pool)

	g.renderer.Clear()
	displayGameStatus(g, snapshot.State, settings)
	g.renderer.Display(snapshot)
}
