package main

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EpisodeRecord rappresenta i dati di una partita.
type EpisodeRecord struct {
	Episode   int
	Steps     int
	Reward    float64
	Length    int
	MaxLength int
	Score     int
}

// GameStats contiene tutte le partite registrate in memoria e fornisce metodi
// per ottenere statistiche come ricompensa media e mediana, durata massima, ecc.
type GameStats struct {
	Episodes []EpisodeRecord
}

func NewGameStats() *GameStats {
	return &GameStats{Episodes: make([]EpisodeRecord, 0)}
}

// AddEpisode aggiunge una nuova partita alle statistiche.
func (s *GameStats) AddEpisode(r EpisodeRecord) {
	s.Episodes = append(s.Episodes, r)
}

func (s *GameStats) Count() int {
	return len(s.Episodes)
}

func (s *GameStats) rewards() []float64 {
	out := make([]float64, len(s.Episodes))
	for i, e := range s.Episodes {
		out[i] = e.Reward
	}
	return out
}

// AverageReward calcola la ricompensa media.
func (s *GameStats) AverageReward() float64 {
	if len(s.Episodes) == 0 {
		return 0
	}
	return stat.Mean(s.rewards(), nil)
}

// MedianReward calcola la ricompensa mediana (quantile empirico 0.5).
func (s *GameStats) MedianReward() float64 {
	if len(s.Episodes) == 0 {
		return 0
	}
	x := s.rewards()
	sort.Float64s(x)
	return stat.Quantile(0.5, stat.Empirical, x, nil)
}

// MaxLength restituisce la lunghezza massima raggiunta.
func (s *GameStats) MaxLength() int {
	if len(s.Episodes) == 0 {
		return 0
	}
	lengths := make([]float64, len(s.Episodes))
	for i, e := range s.Episodes {
		lengths[i] = float64(e.MaxLength)
	}
	return int(floats.Max(lengths))
}

// MaxDuration restituisce il numero massimo di passi in una partita.
func (s *GameStats) MaxDuration() int {
	if len(s.Episodes) == 0 {
		return 0
	}
	steps := make([]float64, len(s.Episodes))
	for i, e := range s.Episodes {
		steps[i] = float64(e.Steps)
	}
	return int(floats.Max(steps))
}

// RecentLengths restituisce le ultime n lunghezze massime, per il grafico.
func (s *GameStats) RecentLengths(n int) []float64 {
	start := len(s.Episodes) - n
	if start < 0 {
		start = 0
	}
	out := make([]float64, 0, len(s.Episodes)-start)
	for _, e := range s.Episodes[start:] {
		out = append(out, float64(e.MaxLength))
	}
	return out
}

// Summary produce il riepilogo finale.
func (s *GameStats) Summary() string {
	out := fmt.Sprintf("Game over, max length = %d, max duration = %d\n", s.MaxLength(), s.MaxDuration())
	if len(s.Episodes) > 0 {
		out += fmt.Sprintf("Average reward: %.2f\n", s.AverageReward())
		out += fmt.Sprintf("Median reward: %.2f\n", s.MedianReward())
		out += fmt.Sprintf("Sessions completed: %d\n", len(s.Episodes))
	}
	return out
}
