package game

import "slither/game/types"

// Per-direction vision codes. Each fits in 3 bits.
const (
	VisionClear          uint16 = 0 // nothing but the wall at the end of the ray
	VisionDangerAdjacent uint16 = 1 // body or wall right next to the head
	VisionDangerNear     uint16 = 2
	VisionGreenApple     uint16 = 3
	VisionRedApple       uint16 = 4
	VisionDangerFar      uint16 = 5
)

const (
	// NearDangerDistance is the farthest body distance still coded as near.
	NearDangerDistance = 3
	StateMask          = 0xFFF
)

// StateShift returns the bit offset of dir inside the state word:
// Up<<9 | Left<<6 | Down<<3 | Right.
func StateShift(dir types.Direction) uint {
	return uint(9 - 3*int(dir))
}

// State packs one ray code per direction into a 12-bit word. It reads the
// board only.
func (b *Board) State() uint16 {
	if b == nil {
		return 0
	}
	var s uint16
	for _, d := range types.Directions {
		s |= b.RayCode(d) << StateShift(d)
	}
	return s
}

// RayCode classifies what lies in dir from the head. The scan stops at the
// first body segment or at the wall. A wall only counts as danger when it is
// adjacent.
func (b *Board) RayCode(dir types.Direction) uint16 {
	if b == nil || !dir.Valid() {
		return VisionClear
	}
	step := dir.Delta()
	p := b.snake.Head()
	danger, apple := 0, types.Empty

	for dist := 1; ; dist++ {
		p = p.Add(step)
		c := b.grid.At(p)
		if c == types.Wall {
			if dist == 1 {
				return VisionDangerAdjacent
			}
			break
		}
		if c.IsSnake() {
			danger = dist
			break
		}
		if c.IsApple() && apple == types.Empty {
			apple = c
		}
	}

	switch {
	case danger == 1:
		return VisionDangerAdjacent
	case apple == types.GreenApple:
		return VisionGreenApple
	case apple == types.RedApple:
		return VisionRedApple
	case danger > 0 && danger <= NearDangerDistance:
		return VisionDangerNear
	case danger > 0:
		return VisionDangerFar
	}
	return VisionClear
}

// DecodeState splits a state word back into its four ray codes, indexed by
// direction.
func DecodeState(s uint16) [4]uint16 {
	var out [4]uint16
	for _, d := range types.Directions {
		out[d] = (s >> StateShift(d)) & 0b111
	}
	return out
}

// Neighbors returns the raw tags of the four cells around the head, indexed by
// direction.
func (b *Board) Neighbors() [4]types.Cell {
	var out [4]types.Cell
	if b == nil {
		return out
	}
	head := b.snake.Head()
	for _, d := range types.Directions {
		out[d] = b.grid.At(head.Add(d.Delta()))
	}
	return out
}

// Ray returns the tags from the head outward in dir, ending with the Wall.
func (b *Board) Ray(dir types.Direction) []types.Cell {
	if b == nil || !dir.Valid() {
		return nil
	}
	var out []types.Cell
	p := b.snake.Head()
	for {
		p = p.Add(dir.Delta())
		c := b.grid.At(p)
		out = append(out, c)
		if c == types.Wall {
			return out
		}
	}
}
