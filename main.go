package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"slither/game"
	"slither/qlearning"
)

func main() {
	cfg, err := parseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "slither: ", log.LstdFlags)

	boardRng, agentRng := generators(cfg.Seed)
	board := game.New(cfg.Size, boardRng)

	q, err := qlearning.NewAgent(cfg.Params, agentRng)
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.Learning() {
		q.SetLearning(false)
	}

	trainer := NewTrainer(cfg, NewEnvironment(board), NewSnakeAgent(q), os.Stdout, logger)

	if !cfg.Visual {
		trainer.Run()
		return
	}

	rl.InitWindow(1280, 800, "Slither - Q-Learning")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	NewTrainingManager(trainer, cfg).Run()
}

// generators restituisce i generatori per la board e per l'agente.
// Con seed negativo entrambi usano il generatore condiviso del processo.
func generators(seed int64) (*rand.Rand, *rand.Rand) {
	if seed < 0 {
		return game.SharedRand(), game.SharedRand()
	}
	return game.NewRand(uint64(seed)), game.NewRand(uint64(seed) + 1)
}
