package main

import (
	"flag"
	"io"

	"github.com/pkg/errors"

	"slither/game/types"
	"slither/qlearning"
)

// Config raccoglie le opzioni della riga di comando.
type Config struct {
	Sessions   int
	Visual     bool
	DontLearn  bool
	StepByStep bool
	Size       int
	FPS        int
	MaxSteps   int
	Seed       int64 // negativo: generatore condiviso inizializzato dall'orologio
	Verbose    bool
	Evaluation bool
	Manual     bool

	Params qlearning.Params
}

// DefaultConfig restituisce la configurazione di default.
func DefaultConfig() Config {
	return Config{
		Sessions: 1,
		Visual:   true,
		Size:     types.DefaultBoardSize,
		FPS:      10,
		MaxSteps: 500,
		Seed:     -1,
		Params:   qlearning.DefaultParams(),
	}
}

// Validate controlla la configurazione. La CLI rifiuta le dimensioni fuori
// intervallo invece di ripiegare sul default come fa il motore.
func (c Config) Validate() error {
	if c.Size < types.MinBoardSize || c.Size > types.MaxBoardSize {
		return errors.Errorf("board size must be between %d and %d, got %d",
			types.MinBoardSize, types.MaxBoardSize, c.Size)
	}
	if c.Sessions < 1 {
		return errors.Errorf("sessions must be at least 1, got %d", c.Sessions)
	}
	if c.MaxSteps < 1 {
		return errors.Errorf("max steps must be at least 1, got %d", c.MaxSteps)
	}
	if c.Visual && c.FPS < 1 {
		return errors.Errorf("fps must be at least 1, got %d", c.FPS)
	}
	if c.Manual && !c.Visual {
		return errors.New("manual play needs -visual on")
	}
	return c.Params.Validate()
}

// Learning indica se l'agente aggiorna la Q-table.
func (c Config) Learning() bool {
	return !c.DontLearn && !c.Manual
}

// parseFlags legge gli argomenti e applica il preset -evaluation.
func parseFlags(name string, args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	visual := onOff(cfg.Visual)
	fs.IntVar(&cfg.Sessions, "sessions", cfg.Sessions, "number of training sessions (episodes)")
	fs.Var(&visual, "visual", "graphical display: on or off")
	fs.BoolVar(&cfg.DontLearn, "dontlearn", false, "run without updating the Q-table")
	fs.BoolVar(&cfg.StepByStep, "step-by-step", false, "wait for SPACE or ENTER between moves")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "board size (8-20)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second in visual mode")
	fs.IntVar(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, "maximum steps per episode")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, negative for a time-based one")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print the snake vision to the terminal")
	fs.BoolVar(&cfg.Evaluation, "evaluation", false, "evaluation preset: size 10, verbose, visual on, no step-by-step")
	fs.BoolVar(&cfg.Manual, "manual", false, "drive the snake with the arrow keys or WASD")
	fs.Float64Var(&cfg.Params.LearningRate, "alpha", cfg.Params.LearningRate, "learning rate")
	fs.Float64Var(&cfg.Params.Discount, "gamma", cfg.Params.Discount, "discount factor")
	fs.Float64Var(&cfg.Params.Epsilon, "epsilon", cfg.Params.Epsilon, "initial exploration rate")
	fs.Float64Var(&cfg.Params.MinEpsilon, "min-epsilon", cfg.Params.MinEpsilon, "minimum exploration rate")
	fs.Float64Var(&cfg.Params.EpsilonDecay, "epsilon-decay", cfg.Params.EpsilonDecay, "epsilon decay per episode")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Visual = bool(visual)

	if cfg.Evaluation {
		cfg.Size = types.DefaultBoardSize
		cfg.Verbose = true
		cfg.Visual = true
		cfg.StepByStep = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
