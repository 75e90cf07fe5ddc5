package qlearning

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func newTestAgent(t *testing.T, p Params) *Agent {
	t.Helper()
	a, err := NewAgent(p, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	return a
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		ok     bool
	}{
		{"defaults", func(*Params) {}, true},
		{"zero alpha", func(p *Params) { p.LearningRate = 0 }, false},
		{"gamma above one", func(p *Params) { p.Discount = 1.5 }, false},
		{"negative epsilon", func(p *Params) { p.Epsilon = -0.1 }, false},
		{"min epsilon above one", func(p *Params) { p.MinEpsilon = 2 }, false},
		{"zero decay", func(p *Params) { p.EpsilonDecay = 0 }, false},
		{"greedy", func(p *Params) { p.Epsilon = 0; p.MinEpsilon = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, ok want %t", err, tt.ok)
			}
			if _, err := NewAgent(p, nil); (err == nil) != tt.ok {
				t.Errorf("NewAgent() = %v, ok want %t", err, tt.ok)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	a := newTestAgent(t, Params{LearningRate: 0.5, Discount: 0.9, Epsilon: 0, MinEpsilon: 0, EpsilonDecay: 1})

	// terminal transition: target is the reward alone
	a.Update(7, 2, -50, 8, true)
	if got := a.QValues(7)[2]; got != -25 {
		t.Errorf("Q(7,2) = %g, want -25", got)
	}

	a.QTable[9] = []float64{1, 4, 2, 0}
	a.Update(10, 1, 10, 9, false)
	// 0 + 0.5 * (10 + 0.9*4 - 0)
	if got := a.QValues(10)[1]; math.Abs(got-6.8) > 1e-9 {
		t.Errorf("Q(10,1) = %g, want 6.8", got)
	}

	a.Update(10, 9, 100, 9, true)
	if len(a.QTable[10]) != NumActions {
		t.Error("out-of-range action grew the row")
	}
}

func TestBestActionBreaksTies(t *testing.T) {
	a := newTestAgent(t, DefaultParams())
	a.QTable[1] = []float64{3, 5, 5, 1}

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		act := a.BestAction(1)
		if act != 1 && act != 2 {
			t.Fatalf("BestAction picked %d", act)
		}
		seen[act] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("ties not broken at random: %v", seen)
	}

	a.QTable[2] = []float64{-1, -3, 0.5, -2}
	if a.BestAction(2) != 2 {
		t.Error("BestAction ignored the single maximum")
	}
}

func TestSelectActionExploration(t *testing.T) {
	a := newTestAgent(t, Params{LearningRate: 0.1, Discount: 0.9, Epsilon: 1, MinEpsilon: 0, EpsilonDecay: 0.5})
	a.QTable[3] = []float64{0, 0, 0, 9}

	counts := [NumActions]int{}
	for i := 0; i < 400; i++ {
		counts[a.SelectAction(3, true)]++
	}
	for act, n := range counts {
		if n == 0 {
			t.Errorf("action %d never explored", act)
		}
	}
	for i := 0; i < 20; i++ {
		if a.SelectAction(3, false) != 3 {
			t.Fatal("explore=false did not exploit")
		}
	}
}

func TestDecayAndLearningSwitch(t *testing.T) {
	a := newTestAgent(t, Params{LearningRate: 0.1, Discount: 0.9, Epsilon: 0.4, MinEpsilon: 0.1, EpsilonDecay: 0.5})

	a.DecayEpsilon()
	if a.Epsilon != 0.2 {
		t.Errorf("epsilon = %g, want 0.2", a.Epsilon)
	}
	a.DecayEpsilon()
	if a.Epsilon != 0.1 {
		t.Errorf("epsilon = %g, want clamp to 0.1", a.Epsilon)
	}

	a.SetLearning(false)
	if a.Epsilon != 0 || a.Learning() {
		t.Error("SetLearning(false) left exploration on")
	}
	a.DecayEpsilon()
	a.Update(4, 0, 10, 4, true)
	if got := a.QValues(4)[0]; got != 0 {
		t.Errorf("Update changed Q while learning is off: %g", got)
	}
}

func TestSummary(t *testing.T) {
	a := newTestAgent(t, DefaultParams())
	a.SelectAction(1, false)
	a.SelectAction(2, false)
	s := a.Summary()
	if s.States != 2 || s.Alpha != 0.1 || s.Gamma != 0.95 || s.Epsilon != 1 {
		t.Errorf("Summary() = %+v", s)
	}
	if s.String() != "states=2 epsilon=1.0000 alpha=0.1 gamma=0.95" {
		t.Errorf("String() = %q", s.String())
	}
}
