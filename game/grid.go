package game

import "slither/game/types"

// Grid is the square cell map. Only the Board writes to it.
type Grid struct {
	size  int
	cells []types.Cell
}

func NewGrid(size int) *Grid {
	return &Grid{size: size, cells: make([]types.Cell, size*size)}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(p types.Point) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// At returns the tag at p, or Wall when p is off the board.
func (g *Grid) At(p types.Point) types.Cell {
	if !g.InBounds(p) {
		return types.Wall
	}
	return g.cells[p.Y*g.size+p.X]
}

// Set stores c at p. Off-board writes are dropped.
func (g *Grid) Set(p types.Point, c types.Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.size+p.X] = c
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = types.Empty
	}
}

// EmptyCells appends every empty cell except skip to dst, row by row.
func (g *Grid) EmptyCells(dst []types.Point, skip types.Point) []types.Point {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			p := types.Point{X: x, Y: y}
			if p != skip && g.cells[y*g.size+x] == types.Empty {
				dst = append(dst, p)
			}
		}
	}
	return dst
}

// Count returns how many cells hold c.
func (g *Grid) Count(c types.Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}
