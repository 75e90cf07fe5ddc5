package game

import (
	"golang.org/x/exp/rand"

	"slither/game/entity"
	"slither/game/manager"
	"slither/game/types"
)

// Board is one snake game. It owns the grid, the snake, the apple store and
// the scalar state, and is the only writer of grid tags.
//
// A Board is not safe for concurrent use.
type Board struct {
	size       int
	grid       *Grid
	snake      *entity.Snake
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	state      *manager.StateManager
	rng        *rand.Rand

	candidates []types.Point
}

// New creates a board of the given side and deals a first game. Sizes outside
// [types.MinBoardSize, types.MaxBoardSize] fall back to the default. A nil rng
// selects the process-wide generator.
func New(size int, rng *rand.Rand) *Board {
	size = types.NormalizeSize(size)
	if rng == nil {
		rng = SharedRand()
	}
	green, red := types.AppleCounts(size)

	b := &Board{
		size:       size,
		grid:       NewGrid(size),
		snake:      entity.NewSnake(entity.CapacityFor(size)),
		food:       manager.NewFoodManager(green, red),
		collisions: manager.NewCollisionManager(size),
		state:      manager.NewStateManager(types.InitialSnakeLength),
		rng:        rng,
		candidates: make([]types.Point, 0, size*size),
	}
	b.Reset()
	return b
}

// Reset deals a new game with the same size and apple counts.
func (b *Board) Reset() {
	if b == nil {
		return
	}
	b.grid.Clear()
	b.food.Clear()
	b.placeSnake()
	for i := 0; i < b.food.Capacity(types.GreenApple); i++ {
		b.spawn(types.GreenApple, types.NoPoint)
	}
	for i := 0; i < b.food.Capacity(types.RedApple); i++ {
		b.spawn(types.RedApple, types.NoPoint)
	}
	b.state.Reset(b.snake.Length())
}

// placeSnake lays a vertical 3-segment snake with the head at the bottom.
func (b *Board) placeSnake() {
	x := 1 + b.rng.Intn(b.size-4)
	y := 1 + b.rng.Intn(b.size-4)
	b.snake.Reset(
		types.Point{X: x, Y: y},
		types.Point{X: x, Y: y + 1},
		types.Point{X: x, Y: y + 2},
	)
	for _, p := range b.snake.Segments() {
		b.grid.Set(p, types.SnakeBody)
	}
	b.grid.Set(b.snake.Head(), types.SnakeHead)
}

// Step moves the snake one cell in dir and reports what happened. It returns
// types.Rejected without touching anything for an invalid direction, a
// finished game or a nil board.
func (b *Board) Step(dir types.Direction) types.Outcome {
	if b == nil || b.state.GameOver() || !dir.Valid() {
		return types.Rejected
	}
	b.state.CountMove()

	target := b.snake.Head().Add(dir.Delta())
	outcome := b.collisions.Classify(target, b.grid.At(target))

	switch outcome {
	case types.HitWall, types.HitSelf:
		b.state.End()

	case types.AteGreenApple:
		b.state.AddScore(manager.GreenAppleScore)
		b.state.ObserveLength(b.snake.Length() + 1)
		b.replaceApple(types.GreenApple, target)
		b.advance(target, true)
		b.snake.Grow()

	case types.AteRedApple:
		b.state.AddScore(-manager.RedApplePenalty)
		if b.snake.Length() <= 1 {
			// nothing left to shrink: the snake vanishes where it stands
			b.replaceApple(types.RedApple, target)
			b.state.End()
			return types.LengthZero
		}
		b.shrinkTail()
		b.replaceApple(types.RedApple, target)
		b.advance(target, false)

	default:
		b.advance(target, false)
	}
	return outcome
}

// advance moves the head to p. The old head becomes body and, unless the
// snake grows, the tail cell is freed.
func (b *Board) advance(p types.Point, grow bool) {
	prev := b.snake.Head()
	tail, vacated := b.snake.Advance(p, grow)
	b.grid.Set(p, types.SnakeHead)
	b.grid.Set(prev, types.SnakeBody)
	if vacated {
		b.grid.Set(tail, types.Empty)
	}
}

func (b *Board) shrinkTail() {
	if tail, ok := b.snake.ShrinkTail(); ok {
		b.grid.Set(tail, types.Empty)
	}
}

// replaceApple removes the apple at p and spawns one of the same kind
// elsewhere. p itself is not a candidate because the head is about to
// land on it.
func (b *Board) replaceApple(kind types.Cell, p types.Point) {
	b.removeApple(kind, p)
	b.spawn(kind, p)
}

func (b *Board) removeApple(kind types.Cell, p types.Point) bool {
	if b.grid.At(p) != kind {
		return false
	}
	b.grid.Set(p, types.Empty)
	return b.food.Remove(kind, p)
}

// spawn puts an apple of the given kind on a uniformly chosen empty cell other
// than skip. A full board or a full slot range makes it a no-op.
func (b *Board) spawn(kind types.Cell, skip types.Point) bool {
	if !b.food.HasRoom(kind) {
		return false
	}
	b.candidates = b.grid.EmptyCells(b.candidates[:0], skip)
	if len(b.candidates) == 0 {
		return false
	}
	p := b.candidates[b.rng.Intn(len(b.candidates))]
	b.grid.Set(p, kind)
	return b.food.Add(kind, p)
}

// IsGameOver reports whether the game has ended. A nil board is always over.
func (b *Board) IsGameOver() bool {
	if b == nil {
		return true
	}
	return b.state.GameOver()
}

func (b *Board) Score() int {
	if b == nil {
		return 0
	}
	return b.state.Score()
}

// HighScore is the best score seen by this board since it was created.
func (b *Board) HighScore() int {
	if b == nil {
		return 0
	}
	return b.state.HighScore()
}

func (b *Board) Length() int {
	if b == nil {
		return 0
	}
	return b.snake.Length()
}

func (b *Board) MaxLength() int {
	if b == nil {
		return 0
	}
	return b.state.MaxLength()
}

func (b *Board) Moves() int {
	if b == nil {
		return 0
	}
	return b.state.Moves()
}

// Size returns the board side. A nil board reports the default size.
func (b *Board) Size() int {
	if b == nil {
		return types.DefaultBoardSize
	}
	return b.size
}

// Cell returns the tag at (x, y): Wall off the board, Empty on a nil board.
func (b *Board) Cell(x, y int) types.Cell {
	if b == nil {
		return types.Empty
	}
	return b.grid.At(types.Point{X: x, Y: y})
}

func (b *Board) Head() types.Point {
	if b == nil {
		return types.NoPoint
	}
	return b.snake.Head()
}

// Body returns the live segments, head first.
func (b *Board) Body() []types.Point {
	if b == nil {
		return nil
	}
	return b.snake.Segments()
}

func (b *Board) GreenApples() []types.Point {
	if b == nil {
		return nil
	}
	return b.food.Apples(types.GreenApple)
}

func (b *Board) RedApples() []types.Point {
	if b == nil {
		return nil
	}
	return b.food.Apples(types.RedApple)
}
