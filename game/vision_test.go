package game

import (
	"testing"

	"slither/game/types"
)

func TestRayCodes(t *testing.T) {
	tests := []struct {
		name   string
		snake  []types.Point
		greens []types.Point
		reds   []types.Point
		want   [4]uint16 // indexed by direction
		state  uint16
	}{
		{
			name:   "apples and neck",
			snake:  []types.Point{pt(2, 5), pt(3, 5), pt(4, 5)},
			greens: []types.Point{pt(7, 5)},
			reds:   []types.Point{pt(4, 8)},
			want: [4]uint16{
				types.Up:    VisionClear,
				types.Left:  VisionDangerAdjacent,
				types.Down:  VisionRedApple,
				types.Right: VisionGreenApple,
			},
			state: 0x063,
		},
		{
			name:  "near danger",
			snake: []types.Point{pt(2, 2), pt(2, 3), pt(3, 3), pt(4, 3), pt(4, 2)},
			want: [4]uint16{
				types.Up:    VisionClear,
				types.Left:  VisionDangerNear,
				types.Down:  VisionDangerAdjacent,
				types.Right: VisionClear,
			},
			state: 0x088,
		},
		{
			name: "far danger hides apple behind it",
			snake: []types.Point{
				pt(1, 5), pt(1, 4), pt(2, 4), pt(3, 4), pt(4, 4), pt(5, 4), pt(6, 4), pt(6, 5),
			},
			greens: []types.Point{pt(0, 5)},
			want: [4]uint16{
				types.Up:    VisionDangerAdjacent,
				types.Left:  VisionDangerFar,
				types.Down:  VisionClear,
				types.Right: VisionClear,
			},
			state: 0x340,
		},
		{
			name:  "wall adjacent",
			snake: []types.Point{pt(1, 2), pt(0, 2), pt(0, 1), pt(0, 0)},
			reds:  []types.Point{pt(5, 0)},
			want: [4]uint16{
				types.Up:    VisionDangerAdjacent,
				types.Left:  VisionDangerAdjacent,
				types.Down:  VisionDangerAdjacent,
				types.Right: VisionRedApple,
			},
			state: 0x24C,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fixture(t, 10, tt.snake, tt.greens, tt.reds)
			for _, d := range types.Directions {
				if got := b.RayCode(d); got != tt.want[d] {
					t.Errorf("RayCode(%v) = %d, want %d", d, got, tt.want[d])
				}
			}
			if got := b.State(); got != tt.state {
				t.Errorf("State() = 0x%03X, want 0x%03X", got, tt.state)
			}
			if DecodeState(b.State()) != tt.want {
				t.Errorf("DecodeState = %v, want %v", DecodeState(b.State()), tt.want)
			}
		})
	}
}

func TestNeighborsAndRay(t *testing.T) {
	b := fixture(t, 10,
		[]types.Point{pt(2, 5), pt(3, 5), pt(4, 5)},
		[]types.Point{pt(7, 5)},
		nil)

	n := b.Neighbors()
	want := [4]types.Cell{types.Empty, types.SnakeBody, types.Empty, types.Empty}
	if n != want {
		t.Errorf("Neighbors() = %v, want %v", n, want)
	}

	ray := b.Ray(types.Right)
	wantRay := []types.Cell{types.Empty, types.Empty, types.GreenApple, types.Empty, types.Empty, types.Wall}
	if len(ray) != len(wantRay) {
		t.Fatalf("Ray(Right) = %v", ray)
	}
	for i := range wantRay {
		if ray[i] != wantRay[i] {
			t.Errorf("Ray(Right)[%d] = %v, want %v", i, ray[i], wantRay[i])
		}
	}
	if got := b.Ray(types.Left); len(got) != 5 || got[0] != types.SnakeBody {
		t.Errorf("Ray(Left) = %v", got)
	}
}
