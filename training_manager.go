package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"slither/game/types"
	"slither/ui"
)

// gameOverPause è il tempo in cui resta visibile una partita finita.
const gameOverPause = 1500 * time.Millisecond

// TrainingManager guida il Trainer dentro il loop grafico di raylib:
// una mossa per frame, in attesa dei tasti in modalità step-by-step o manuale.
type TrainingManager struct {
	trainer   *Trainer
	renderer  *ui.Renderer
	cfg       Config
	startTime time.Time
	endedAt   time.Time
	reward    float64
	pending   types.Direction
	hasInput  bool
}

// NewTrainingManager crea un nuovo training manager. La finestra deve essere già aperta.
func NewTrainingManager(trainer *Trainer, cfg Config) *TrainingManager {
	return &TrainingManager{
		trainer:   trainer,
		renderer:  ui.NewRenderer(),
		cfg:       cfg,
		startTime: time.Now(),
		pending:   types.Up,
	}
}

// Run esegue le sessioni finché non sono finite o la finestra viene chiusa.
func (tm *TrainingManager) Run() {
	tm.trainer.StartEpisode()
	for !rl.WindowShouldClose() {
		if !tm.update() {
			break
		}
		tm.renderer.Draw(tm.trainer.env.Board(), tm.hud())
	}
	tm.trainer.Finish()
}

// update avanza lo stato di un frame. Restituisce false quando la run è conclusa.
func (tm *TrainingManager) update() bool {
	t := tm.trainer

	if !t.Active() {
		if time.Since(tm.endedAt) < gameOverPause {
			return true
		}
		if t.Done() {
			return false
		}
		tm.reward = 0
		tm.hasInput = false
		t.StartEpisode()
		return true
	}

	if tm.cfg.Manual {
		if dir, ok := ui.ReadDirection(); ok {
			tm.pending = dir
			tm.hasInput = true
		}
		// the first move waits for a key so the player can get ready
		if !tm.hasInput {
			return true
		}
	}
	if tm.cfg.StepByStep && !ui.StepRequested() {
		return true
	}

	var ended bool
	if tm.cfg.Manual {
		ended = t.Apply(tm.pending)
	} else {
		ended = t.Tick()
	}
	tm.reward = rewardFor(t.LastOutcome())
	if ended {
		tm.endedAt = time.Now()
	}
	return true
}

func (tm *TrainingManager) hud() ui.HUD {
	t := tm.trainer
	return ui.HUD{
		RunID:      t.RunID.String(),
		Episode:    t.Episode(),
		Sessions:   tm.cfg.Sessions,
		Step:       t.Current().Steps,
		Reward:     tm.reward,
		Epsilon:    t.agent.Epsilon(),
		Outcome:    t.LastOutcome(),
		StepByStep: tm.cfg.StepByStep,
		Manual:     tm.cfg.Manual,
		Paused:     tm.cfg.Manual && !tm.hasInput,
		Lengths:    t.Stats().RecentLengths(200),
		StartTime:  tm.startTime,
	}
}
