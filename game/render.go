package game

import (
	"fmt"
	"io"
	"strings"

	"slither/game/types"
)

var renderGlyph = map[types.Cell]byte{
	types.Empty:      '.',
	types.SnakeHead:  'H',
	types.SnakeBody:  'S',
	types.GreenApple: 'G',
	types.RedApple:   'R',
}

// Render writes a boxed picture of the board followed by the counters and
// the state word. Debug output only.
func (b *Board) Render(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func (b *Board) String() string {
	if b == nil {
		return "<nil board>\n"
	}
	var sb strings.Builder
	border := "+" + strings.Repeat("-", b.size) + "+\n"

	sb.WriteString(border)
	for y := 0; y < b.size; y++ {
		sb.WriteByte('|')
		for x := 0; x < b.size; x++ {
			sb.WriteByte(renderGlyph[b.grid.At(types.Point{X: x, Y: y})])
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	fmt.Fprintf(&sb, "score=%d length=%d moves=%d max_length=%d\n",
		b.Score(), b.Length(), b.Moves(), b.MaxLength())
	fmt.Fprintf(&sb, "green=%d red=%d game_over=%t\n",
		b.food.Count(types.GreenApple), b.food.Count(types.RedApple), b.IsGameOver())

	s := b.State()
	codes := DecodeState(s)
	fmt.Fprintf(&sb, "state=0x%03X [up=%03b left=%03b down=%03b right=%03b]\n",
		s, codes[types.Up], codes[types.Left], codes[types.Down], codes[types.Right])
	return sb.String()
}
