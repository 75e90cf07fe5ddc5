package main

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"slither/game/types"
)

// Trainer esegue gli episodi di addestramento o di valutazione.
// Un episodio avanza una mossa alla volta, così la modalità grafica può
// intercalare il disegno tra un passo e l'altro.
type Trainer struct {
	RunID uuid.UUID

	cfg    Config
	env    *Environment
	agent  *SnakeAgent
	stats  *GameStats
	out    io.Writer
	logger *log.Logger

	episode int
	current EpisodeRecord
	state   uint16
	active  bool
	last    types.Outcome
	reward  float64 // ricompensa dell'ultima mossa
}

// NewTrainer crea un trainer con un nuovo identificativo di run.
func NewTrainer(cfg Config, env *Environment, agent *SnakeAgent, out io.Writer, logger *log.Logger) *Trainer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Trainer{
		RunID:  uuid.New(),
		cfg:    cfg,
		env:    env,
		agent:  agent,
		stats:  NewGameStats(),
		out:    out,
		logger: logger,
		last:   types.Moved,
	}
}

func (t *Trainer) Stats() *GameStats {
	return t.stats
}

func (t *Trainer) Episode() int {
	return t.episode
}

// Current restituisce i dati dell'episodio in corso.
func (t *Trainer) Current() EpisodeRecord {
	return t.current
}

func (t *Trainer) LastOutcome() types.Outcome {
	return t.last
}

func (t *Trainer) Active() bool {
	return t.active
}

// Done indica se tutte le sessioni sono state giocate.
func (t *Trainer) Done() bool {
	return !t.active && t.episode >= t.cfg.Sessions
}

// StartEpisode resetta la board e apre un nuovo episodio.
func (t *Trainer) StartEpisode() {
	t.episode++
	t.state = t.env.Reset()
	t.current = EpisodeRecord{Episode: t.episode, Length: t.env.Board().Length(), MaxLength: t.env.Board().MaxLength()}
	t.active = true
	t.last = types.Moved
	t.reward = 0
	t.logger.Printf("[%s] episode %d started", t.RunID, t.episode)
}

// Tick fa scegliere all'agente la prossima mossa e la esegue.
func (t *Trainer) Tick() bool {
	return t.Apply(t.agent.Act(t.state, t.cfg.Learning()))
}

// Apply esegue la mossa dir e restituisce true quando l'episodio finisce.
func (t *Trainer) Apply(dir types.Direction) bool {
	if !t.active {
		return true
	}
	board := t.env.Board()
	if t.cfg.Verbose {
		PrintVision(t.out, board, dir, t.reward)
	}

	next, reward, done, outcome := t.env.Step(dir)
	if t.cfg.Learning() {
		t.agent.Learn(t.state, dir, reward, next, done)
	}
	t.state = next
	t.last = outcome
	t.reward = reward

	t.current.Steps++
	t.current.Reward += reward
	t.current.Length = board.Length()
	t.current.MaxLength = board.MaxLength()
	t.current.Score = board.Score()

	if done || t.current.Steps >= t.cfg.MaxSteps {
		t.finishEpisode(outcome)
		return true
	}
	return false
}

func (t *Trainer) finishEpisode(outcome types.Outcome) {
	t.active = false
	if t.cfg.Learning() {
		t.agent.EndEpisode()
	}
	t.stats.AddEpisode(t.current)
	t.logger.Printf("[%s] episode %d ended: %v after %d steps", t.RunID, t.episode, outcome, t.current.Steps)
	fmt.Fprintf(t.out, "Episode %04d - steps=%d reward=%.2f length=%d max_length=%d epsilon=%.3f\n",
		t.current.Episode, t.current.Steps, t.current.Reward, t.current.Length, t.current.MaxLength, t.agent.Epsilon())
}

// RunEpisode gioca un episodio completo senza interfaccia grafica.
func (t *Trainer) RunEpisode() EpisodeRecord {
	t.StartEpisode()
	for !t.Tick() {
	}
	return t.current
}

// Run gioca tutte le sessioni rimanenti e stampa il riepilogo finale.
func (t *Trainer) Run() {
	t.logger.Printf("[%s] run started: %d sessions on a %dx%d board, learning=%t",
		t.RunID, t.cfg.Sessions, t.cfg.Size, t.cfg.Size, t.cfg.Learning())
	for t.episode < t.cfg.Sessions {
		t.RunEpisode()
	}
	t.Finish()
}

// Finish stampa il riepilogo finale della run.
func (t *Trainer) Finish() {
	fmt.Fprintf(t.out, "\n%s", t.stats.Summary())
	t.logger.Printf("[%s] run finished: %s", t.RunID, t.agent.Summary())
}
