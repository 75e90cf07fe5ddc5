package manager

import (
	"testing"

	"slither/game/types"
)

func TestFoodManagerRanges(t *testing.T) {
	fm := NewFoodManager(2, 1)

	if fm.Count(types.GreenApple) != 0 || fm.Count(types.RedApple) != 0 {
		t.Fatal("new store is not empty")
	}
	for i := 0; i < 3; i++ {
		if fm.Slot(i) != types.NoPoint {
			t.Errorf("slot %d = %v, want sentinel", i, fm.Slot(i))
		}
	}

	g1 := types.Point{X: 1, Y: 1}
	g2 := types.Point{X: 2, Y: 2}
	r1 := types.Point{X: 3, Y: 3}
	if !fm.Add(types.GreenApple, g1) || !fm.Add(types.GreenApple, g2) {
		t.Fatal("green slots refused")
	}
	if fm.Add(types.GreenApple, types.Point{X: 4, Y: 4}) {
		t.Error("third green apple accepted in a 2-slot range")
	}
	if !fm.Add(types.RedApple, r1) {
		t.Fatal("red slot refused")
	}
	if fm.Slot(2) != r1 {
		t.Errorf("red apple stored in slot %v", fm.Slot(2))
	}
	if fm.HasRoom(types.RedApple) {
		t.Error("full red range reports room")
	}

	if !fm.Remove(types.GreenApple, g1) {
		t.Fatal("Remove(g1) = false")
	}
	if fm.Remove(types.GreenApple, r1) {
		t.Error("green Remove matched a red slot")
	}
	if fm.Count(types.GreenApple) != 1 {
		t.Errorf("green count = %d, want 1", fm.Count(types.GreenApple))
	}

	// the freed first slot is reused
	g3 := types.Point{X: 5, Y: 5}
	fm.Add(types.GreenApple, g3)
	if fm.Slot(0) != g3 {
		t.Errorf("slot 0 = %v, want %v", fm.Slot(0), g3)
	}
	got := fm.Apples(types.GreenApple)
	if len(got) != 2 || got[0] != g3 || got[1] != g2 {
		t.Errorf("Apples(green) = %v", got)
	}
}

func TestFoodManagerUnknownKind(t *testing.T) {
	fm := NewFoodManager(1, 1)
	if fm.Add(types.SnakeBody, types.Point{}) {
		t.Error("store accepted a non-apple kind")
	}
	if fm.Capacity(types.Empty) != 0 {
		t.Error("non-apple kind has capacity")
	}
}

func TestClassify(t *testing.T) {
	cm := NewCollisionManager(10)
	in := types.Point{X: 5, Y: 5}

	tests := []struct {
		name string
		pos  types.Point
		cell types.Cell
		want types.Outcome
	}{
		{"left of board", types.Point{X: -1, Y: 3}, types.Wall, types.HitWall},
		{"below board", types.Point{X: 3, Y: 10}, types.Empty, types.HitWall},
		{"body", in, types.SnakeBody, types.HitSelf},
		{"head", in, types.SnakeHead, types.HitSelf},
		{"green", in, types.GreenApple, types.AteGreenApple},
		{"red", in, types.RedApple, types.AteRedApple},
		{"empty", in, types.Empty, types.Moved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.Classify(tt.pos, tt.cell); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager(3)
	if sm.MaxLength() != 3 || sm.Moves() != 0 || sm.GameOver() {
		t.Fatal("bad initial state")
	}

	sm.CountMove()
	sm.AddScore(GreenAppleScore)
	sm.ObserveLength(4)
	sm.ObserveLength(2)
	sm.AddScore(-RedApplePenalty)
	sm.AddScore(-RedApplePenalty)
	sm.End()

	if sm.Score() != -10 {
		t.Errorf("score = %d, want -10", sm.Score())
	}
	if sm.MaxLength() != 4 {
		t.Errorf("max length = %d, want 4", sm.MaxLength())
	}
	if !sm.GameOver() {
		t.Error("End did not set game over")
	}
	if sm.HighScore() != 10 {
		t.Errorf("high score = %d, want 10", sm.HighScore())
	}

	sm.Reset(3)
	if sm.Score() != 0 || sm.Moves() != 0 || sm.MaxLength() != 3 || sm.GameOver() {
		t.Error("Reset left stale state")
	}
	if sm.HighScore() != 10 {
		t.Error("Reset cleared the high score")
	}
}
