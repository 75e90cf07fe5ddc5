package types

import "fmt"

// Board size limits. Sizes outside [MinBoardSize, MaxBoardSize] fall back to DefaultBoardSize.
const (
	MinBoardSize     = 8
	MaxBoardSize     = 20
	DefaultBoardSize = 10

	InitialSnakeLength = 3
)

// Point is a grid coordinate. (0,0) is the top-left cell, y grows downwards.
type Point struct {
	X, Y int
}

// NoPoint marks an unoccupied apple slot.
var NoPoint = Point{X: -1, Y: -1}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Cell is the tag stored in one grid cell. Values fit in 3 bits.
type Cell uint8

const (
	Empty      Cell = 0b000
	Wall       Cell = 0b001 // never stored, returned for out-of-bounds queries
	SnakeHead  Cell = 0b010
	SnakeBody  Cell = 0b011
	GreenApple Cell = 0b100
	RedApple   Cell = 0b101
)

// IsSnake reports whether the cell holds a snake segment.
func (c Cell) IsSnake() bool {
	return c == SnakeHead || c == SnakeBody
}

// IsApple reports whether the cell holds an apple of either colour.
func (c Cell) IsApple() bool {
	return c == GreenApple || c == RedApple
}

// Symbol returns the single-letter symbol used by the terminal vision printer.
func (c Cell) Symbol() byte {
	switch c {
	case Wall:
		return 'W'
	case SnakeHead:
		return 'H'
	case SnakeBody:
		return 'S'
	case GreenApple:
		return 'G'
	case RedApple:
		return 'R'
	default:
		return '0'
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case SnakeHead:
		return "SnakeHead"
	case SnakeBody:
		return "SnakeBody"
	case GreenApple:
		return "GreenApple"
	case RedApple:
		return "RedApple"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Direction is a cardinal move. The numeric values are the action indices
// used by agents and by the vision word layout.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions lists the four moves in action-index order.
var Directions = [4]Direction{Up, Left, Down, Right}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Delta returns the unit offset for d, or the zero point for an invalid direction.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Left:
		return Point{X: -1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Left:
		return Right
	case Down:
		return Up
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Left:
		return "LEFT"
	case Down:
		return "DOWN"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Outcome is the result of one step.
type Outcome int

const (
	// Rejected is returned for an invalid direction or a step after game over.
	// Nothing is mutated.
	Rejected Outcome = -1
	// Moved is a plain move into an empty cell.
	Moved         Outcome = 0
	HitWall       Outcome = 1
	HitSelf       Outcome = 2
	AteGreenApple Outcome = 3
	AteRedApple   Outcome = 4
	LengthZero    Outcome = 5
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == HitWall || o == HitSelf || o == LengthZero
}

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "Rejected"
	case Moved:
		return "Moved"
	case HitWall:
		return "HitWall"
	case HitSelf:
		return "HitSelf"
	case AteGreenApple:
		return "AteGreenApple"
	case AteRedApple:
		return "AteRedApple"
	case LengthZero:
		return "LengthZero"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// NormalizeSize maps an out-of-range board size to DefaultBoardSize.
func NormalizeSize(size int) int {
	if size < MinBoardSize || size > MaxBoardSize {
		return DefaultBoardSize
	}
	return size
}

// AppleCounts derives the number of green and red apples for a board size.
// Both counts are at least 1.
func AppleCounts(size int) (green, red int) {
	green = 2 + floorDiv(size-10, 3)
	red = 1 + floorDiv(size-10, 5)
	if green < 1 {
		green = 1
	}
	if red < 1 {
		red = 1
	}
	return green, red
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
