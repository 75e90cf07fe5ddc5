package main

import (
	"fmt"
	"io"
	"strings"

	"slither/game"
	"slither/game/types"
)

// visionLine restituisce i simboli visti dalla testa in una direzione,
// muro finale compreso. Se reverse è vero la riga è letta verso la testa.
func visionLine(b *game.Board, dir types.Direction, reverse bool) string {
	ray := b.Ray(dir)
	buf := make([]byte, len(ray))
	for i, c := range ray {
		buf[i] = c.Symbol()
	}
	if reverse {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return string(buf)
}

// PrintVision stampa la riga e la colonna della testa, cella per cella,
// seguite dall'azione scelta e dalla ricompensa.
func PrintVision(w io.Writer, b *game.Board, action types.Direction, reward float64) {
	if b == nil {
		return
	}
	up := visionLine(b, types.Up, true)
	left := visionLine(b, types.Left, true)
	down := visionLine(b, types.Down, false)
	right := visionLine(b, types.Right, false)
	indent := strings.Repeat(" ", len(left))

	var sb strings.Builder
	for i := 0; i < len(up); i++ {
		sb.WriteString(indent)
		sb.WriteByte(up[i])
		sb.WriteByte('\n')
	}
	sb.WriteString(left + "H" + right + "\n")
	for i := 0; i < len(down); i++ {
		sb.WriteString(indent)
		sb.WriteByte(down[i])
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Action: %s  Reward: %+.1f\n\n", action, reward)
	io.WriteString(w, sb.String())
}
