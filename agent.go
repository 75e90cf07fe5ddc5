package main

import (
	"slither/game"
	"slither/game/types"
	"slither/qlearning"
)

// Environment avvolge una Board ed espone il passo in stile RL:
// (stato, ricompensa, fine episodio).
type Environment struct {
	board *game.Board
}

func NewEnvironment(board *game.Board) *Environment {
	return &Environment{board: board}
}

func (e *Environment) Board() *game.Board {
	return e.board
}

// Reset avvia una nuova partita e restituisce lo stato iniziale.
func (e *Environment) Reset() uint16 {
	e.board.Reset()
	return e.board.State()
}

// Step esegue una mossa e calcola la ricompensa a partire dall'esito.
func (e *Environment) Step(dir types.Direction) (state uint16, reward float64, done bool, outcome types.Outcome) {
	outcome = e.board.Step(dir)
	reward = rewardFor(outcome)
	return e.board.State(), reward, e.board.IsGameOver(), outcome
}

// rewardFor associa a ogni esito il segnale di ricompensa dell'agente.
func rewardFor(o types.Outcome) float64 {
	switch o {
	case types.AteGreenApple:
		return game.RewardGreenApple
	case types.AteRedApple:
		return game.RewardRedApple
	case types.HitWall, types.HitSelf, types.LengthZero:
		return game.RewardDeath
	default:
		return game.RewardStep
	}
}

// SnakeAgent rappresenta l'agente che gioca a Snake usando Q-learning.
type SnakeAgent struct {
	agent *qlearning.Agent
}

func NewSnakeAgent(agent *qlearning.Agent) *SnakeAgent {
	return &SnakeAgent{agent: agent}
}

// Act sceglie la prossima direzione per lo stato dato.
func (sa *SnakeAgent) Act(state uint16, explore bool) types.Direction {
	return actionToDirection(sa.agent.SelectAction(state, explore))
}

// Learn registra una transizione nella Q-table.
func (sa *SnakeAgent) Learn(state uint16, dir types.Direction, reward float64, next uint16, done bool) {
	sa.agent.Update(state, directionToAction(dir), reward, next, done)
}

// EndEpisode aggiorna epsilon e il contatore degli episodi.
func (sa *SnakeAgent) EndEpisode() {
	sa.agent.DecayEpsilon()
	sa.agent.IncrementEpisode()
}

func (sa *SnakeAgent) Epsilon() float64 {
	return sa.agent.Epsilon
}

func (sa *SnakeAgent) Summary() qlearning.Summary {
	return sa.agent.Summary()
}
