package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol3d/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		log.Printf("Using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g := initializeGame(config)
	displayGameInfo(config, g)

	if config.Interactive {
		go func() {
			report := func(msg string) { g.message.Store(&msg) }
			if err := g.controls.Listen(ctx, os.Stdin, report); err != nil {
				log.Printf("Command input stopped: %v", err)
			}
		}()
	}

	frameRate := config.FrameRate
	if frameRate <= 0 {
		frameRate = g.stepper.Interval()
	}
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	lastStep := time.Now()
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				g.engine.State().Iterations, g.stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
			return
		case <-ticker.C:
		}

		settings := g.controls.Settings()
		if g.controls.TakeRandomizeRequest() {
			restartGame(g, settings)
			settings = g.controls.Settings()
		}

		stepped, state := advance(g, config, settings, lastStep)
		if stepped {
			lastStep = time.Now()
			settings = g.controls.Settings()
		}

		render(g, settings)

		if config.MaxGenerations > 0 && state.Iterations >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}
	}
}
