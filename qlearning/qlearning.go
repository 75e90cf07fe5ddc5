package qlearning

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// NumActions è il numero di azioni: UP, LEFT, DOWN, RIGHT, in quest'ordine.
const NumActions = 4

// QTable memorizza i valori Q per ogni stato di visione (parola a 12 bit).
type QTable map[uint16][]float64

// Params raccoglie gli iperparametri dell'agente.
type Params struct {
	LearningRate float64 // alpha
	Discount     float64 // gamma
	Epsilon      float64
	MinEpsilon   float64
	EpsilonDecay float64
}

// DefaultParams restituisce gli iperparametri di partenza.
func DefaultParams() Params {
	return Params{
		LearningRate: 0.1,
		Discount:     0.95,
		Epsilon:      1.0,
		MinEpsilon:   0.1,
		EpsilonDecay: 0.999,
	}
}

// Validate controlla che gli iperparametri siano nei rispettivi intervalli.
func (p Params) Validate() error {
	if p.LearningRate <= 0 || p.LearningRate > 1 {
		return errors.Errorf("alpha must be in (0, 1], got %g", p.LearningRate)
	}
	if p.Discount <= 0 || p.Discount > 1 {
		return errors.Errorf("gamma must be in (0, 1], got %g", p.Discount)
	}
	if p.Epsilon < 0 || p.Epsilon > 1 {
		return errors.Errorf("epsilon must be in [0, 1], got %g", p.Epsilon)
	}
	if p.MinEpsilon < 0 || p.MinEpsilon > 1 {
		return errors.Errorf("min epsilon must be in [0, 1], got %g", p.MinEpsilon)
	}
	if p.EpsilonDecay <= 0 || p.EpsilonDecay > 1 {
		return errors.Errorf("epsilon decay must be in (0, 1], got %g", p.EpsilonDecay)
	}
	return nil
}

// Agent rappresenta un agente di Q-learning tabellare.
type Agent struct {
	QTable          QTable
	LearningRate    float64
	Discount        float64
	Epsilon         float64
	MinEpsilon      float64
	EpsilonDecay    float64
	TrainingEpisode int

	learning bool
	rng      *rand.Rand
}

// NewAgent crea un nuovo agente. Con rng nil usa un generatore inizializzato dall'orologio.
func NewAgent(p Params, rng *rand.Rand) (*Agent, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid q-learning parameters")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Agent{
		QTable:       make(QTable),
		LearningRate: p.LearningRate,
		Discount:     p.Discount,
		Epsilon:      p.Epsilon,
		MinEpsilon:   p.MinEpsilon,
		EpsilonDecay: p.EpsilonDecay,
		learning:     true,
		rng:          rng,
	}, nil
}

func (a *Agent) values(state uint16) []float64 {
	q, ok := a.QTable[state]
	if !ok {
		q = make([]float64, NumActions)
		a.QTable[state] = q
	}
	return q
}

// SelectAction seleziona un'azione con politica epsilon-greedy.
// L'esplorazione avviene solo se explore è vero e l'apprendimento è attivo.
func (a *Agent) SelectAction(state uint16, explore bool) int {
	a.values(state)
	if explore && a.learning && a.rng.Float64() < a.Epsilon {
		return a.rng.Intn(NumActions)
	}
	return a.BestAction(state)
}

// BestAction restituisce l'azione con il valore Q più alto; i pareggi sono
// risolti a caso.
func (a *Agent) BestAction(state uint16) int {
	q := a.values(state)
	maxQ := math.Inf(-1)
	var best [NumActions]int
	n := 0
	for action, v := range q {
		switch {
		case v > maxQ:
			maxQ = v
			best[0] = action
			n = 1
		case v == maxQ:
			best[n] = action
			n++
		}
	}
	if n == 1 {
		return best[0]
	}
	return best[a.rng.Intn(n)]
}

// Update aggiorna il valore Q per una coppia stato-azione:
// Q(s,a) = Q(s,a) + α [r + γ * max_a' Q(s',a') - Q(s,a)]
// Se done è vero il target è la sola ricompensa.
func (a *Agent) Update(state uint16, action int, reward float64, nextState uint16, done bool) {
	if !a.learning || action < 0 || action >= NumActions {
		return
	}
	q := a.values(state)
	target := reward
	if !done {
		target += a.Discount * maxOf(a.values(nextState))
	}
	q[action] += a.LearningRate * (target - q[action])
}

// DecayEpsilon riduce epsilon senza scendere sotto MinEpsilon.
func (a *Agent) DecayEpsilon() {
	if !a.learning {
		return
	}
	a.Epsilon = math.Max(a.MinEpsilon, a.Epsilon*a.EpsilonDecay)
}

// IncrementEpisode incrementa il contatore degli episodi di training.
func (a *Agent) IncrementEpisode() {
	a.TrainingEpisode++
}

// SetLearning attiva o disattiva l'apprendimento; disattivandolo epsilon va a zero.
func (a *Agent) SetLearning(enabled bool) {
	a.learning = enabled
	if !enabled {
		a.Epsilon = 0
	}
}

func (a *Agent) Learning() bool {
	return a.learning
}

// QValues restituisce una copia dei valori Q di uno stato, senza registrarlo.
func (a *Agent) QValues(state uint16) []float64 {
	out := make([]float64, NumActions)
	copy(out, a.QTable[state])
	return out
}

// Summary riassume lo stato dell'agente.
type Summary struct {
	States  int
	Epsilon float64
	Alpha   float64
	Gamma   float64
}

func (s Summary) String() string {
	return fmt.Sprintf("states=%d epsilon=%.4f alpha=%g gamma=%g", s.States, s.Epsilon, s.Alpha, s.Gamma)
}

func (a *Agent) Summary() Summary {
	return Summary{
		States:  len(a.QTable),
		Epsilon: math.Round(a.Epsilon*1e4) / 1e4,
		Alpha:   a.LearningRate,
		Gamma:   a.Discount,
	}
}

func maxOf(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
