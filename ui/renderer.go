package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"slither/game"
	"slither/game/types"
)

const (
	maxScores     = 200 // Maximum number of episodes to show in graph
	borderPadding = 10
)

var (
	headColor  = rl.Color{R: 90, G: 160, B: 255, A: 255}
	bodyColor  = rl.Color{R: 40, G: 100, B: 200, A: 255}
	greenColor = rl.Color{R: 0, G: 200, B: 60, A: 255}
	redColor   = rl.Color{R: 220, G: 40, B: 40, A: 255}
)

// HUD is the per-frame information shown in the stats panel.
type HUD struct {
	RunID      string
	Episode    int
	Sessions   int
	Step       int
	Reward     float64
	Epsilon    float64
	Outcome    types.Outcome
	StepByStep bool
	Manual     bool
	Paused     bool
	Lengths    []float64 // max length per finished episode
	StartTime  time.Time
}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// the stats panel takes a third of the window
	r.statsPanel = r.screenWidth / 3
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame: the board on the left, the stats panel on the right.
func (r *Renderer) Draw(b *game.Board, hud HUD) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, r.statsPanel/16)
	lineHeight := fontSize + fontSize/2

	size := int32(b.Size())
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.gameHeight - borderPadding*2
	r.cellSize = min(availableWidth/size, availableHeight/size)
	r.totalGridWidth = r.cellSize * size
	r.totalGridHeight = r.cellSize * size
	r.offsetX = borderPadding + (availableWidth-r.totalGridWidth)/2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			px := r.offsetX + x*r.cellSize
			py := r.offsetY + y*r.cellSize
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.Black)
			if c, ok := cellColor(b.Cell(int(x), int(y))); ok {
				rl.DrawRectangle(px+1, py+1, r.cellSize-2, r.cellSize-2, c)
			}
			rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.Gray)
		}
	}
	r.drawHeadIndicator(b)

	if b.IsGameOver() {
		text := fmt.Sprintf("Game Over: %v", hud.Outcome)
		textWidth := rl.MeasureText(text, fontSize*2)
		rl.DrawText(text,
			r.offsetX+(r.totalGridWidth-textWidth)/2,
			r.offsetY+r.totalGridHeight/2-fontSize,
			fontSize*2, rl.White)
	}

	r.drawStatsPanel(b, hud, fontSize, lineHeight)
	rl.EndDrawing()
}

func cellColor(c types.Cell) (rl.Color, bool) {
	switch c {
	case types.SnakeHead:
		return headColor, true
	case types.SnakeBody:
		return bodyColor, true
	case types.GreenApple:
		return greenColor, true
	case types.RedApple:
		return redColor, true
	}
	return rl.Color{}, false
}

// drawHeadIndicator draws a triangle on the head pointing away from the neck.
func (r *Renderer) drawHeadIndicator(b *game.Board) {
	body := b.Body()
	if len(body) < 2 {
		return
	}
	head := body[0]
	dx, dy := head.X-body[1].X, head.Y-body[1].Y

	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	cell := r.cellSize
	half := cell / 2
	v := func(x, y int32) rl.Vector2 { return rl.Vector2{X: float32(x), Y: float32(y)} }

	switch {
	case dx > 0:
		rl.DrawTriangle(v(headX+cell, headY+half), v(headX+half, headY), v(headX+half, headY+cell), rl.Yellow)
	case dx < 0:
		rl.DrawTriangle(v(headX, headY+half), v(headX+half, headY+cell), v(headX+half, headY), rl.Yellow)
	case dy > 0:
		rl.DrawTriangle(v(headX+half, headY+cell), v(headX+cell, headY+half), v(headX, headY+half), rl.Yellow)
	default:
		rl.DrawTriangle(v(headX+half, headY), v(headX, headY+half), v(headX+cell, headY+half), rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(b *game.Board, hud HUD, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, statsX, statsY, fontSize, color)
		statsY += lineHeight
	}

	mode := "agent"
	if hud.Manual {
		mode = "manual"
	}
	line(fmt.Sprintf("Episode %d/%d (%s)", hud.Episode, hud.Sessions, mode), rl.White)
	line(fmt.Sprintf("Step: %d", hud.Step), rl.White)
	line(fmt.Sprintf("Score: %d  High: %d", b.Score(), b.HighScore()), rl.White)
	line(fmt.Sprintf("Length: %d  Max: %d", b.Length(), b.MaxLength()), rl.White)
	line(fmt.Sprintf("Moves: %d", b.Moves()), rl.White)
	line(fmt.Sprintf("Reward: %+.2f", hud.Reward), rl.White)
	line(fmt.Sprintf("Epsilon: %.3f", hud.Epsilon), rl.White)
	line(fmt.Sprintf("Last: %v", hud.Outcome), rl.White)

	statsY += lineHeight / 2
	line("Vision:", rl.White)
	codes := game.DecodeState(b.State())
	for _, d := range types.Directions {
		line(fmt.Sprintf("  %-5s %d", d, codes[d]), rl.LightGray)
	}

	if hud.StepByStep || hud.Paused {
		statsY += lineHeight / 2
		line("SPACE/ENTER: next move", rl.Yellow)
	}

	r.drawPerformanceGraph(hud, statsX, fontSize)
}

func (r *Renderer) drawPerformanceGraph(hud HUD, graphX, fontSize int32) {
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Max length per episode", graphX, graphY-fontSize-5, fontSize, rl.White)

	duration := time.Since(hud.StartTime)
	timeText := fmt.Sprintf("%02d:%02d:%02d - Run %.8s",
		int(duration.Hours()), int(duration.Minutes())%60, int(duration.Seconds())%60, hud.RunID)
	rl.DrawText(timeText, graphX, r.screenHeight-fontSize-5, fontSize, rl.White)

	lengths := hud.Lengths
	if len(lengths) > maxScores {
		lengths = lengths[len(lengths)-maxScores:]
	}
	if len(lengths) < 2 {
		return
	}
	maxLength := 1.0
	for _, l := range lengths {
		if l > maxLength {
			maxLength = l
		}
	}
	for j := 1; j < len(lengths); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(maxScores))
		y1 := graphY + graphHeight - int32(float64(graphHeight)*lengths[j-1]/maxLength)
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(maxScores))
		y2 := graphY + graphHeight - int32(float64(graphHeight)*lengths[j]/maxLength)
		rl.DrawLine(x1, y1, x2, y2, greenColor)
	}
}

// ReadDirection returns the direction key pressed this frame, if any.
// Arrow keys and WASD are accepted.
func ReadDirection() (types.Direction, bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyW):
		return types.Up, true
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyA):
		return types.Left, true
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyS):
		return types.Down, true
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyD):
		return types.Right, true
	}
	return 0, false
}

// StepRequested reports whether SPACE or ENTER was pressed this frame.
func StepRequested() bool {
	return rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter)
}
