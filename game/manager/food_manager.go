package manager

import "slither/game/types"

// FoodManager is the apple store: a fixed set of slots split into a green
// range followed by a red range. Free slots hold types.NoPoint.
//
// It only records coordinates. Choosing a cell and tagging the grid is the
// board's job.
type FoodManager struct {
	slots    []types.Point
	numGreen int
	numRed   int
}

func NewFoodManager(numGreen, numRed int) *FoodManager {
	fm := &FoodManager{
		slots:    make([]types.Point, numGreen+numRed),
		numGreen: numGreen,
		numRed:   numRed,
	}
	fm.Clear()
	return fm
}

// Clear frees every slot.
func (fm *FoodManager) Clear() {
	for i := range fm.slots {
		fm.slots[i] = types.NoPoint
	}
}

// Capacity returns the number of slots for the given apple kind.
func (fm *FoodManager) Capacity(kind types.Cell) int {
	switch kind {
	case types.GreenApple:
		return fm.numGreen
	case types.RedApple:
		return fm.numRed
	}
	return 0
}

func (fm *FoodManager) bounds(kind types.Cell) (lo, hi int) {
	switch kind {
	case types.GreenApple:
		return 0, fm.numGreen
	case types.RedApple:
		return fm.numGreen, fm.numGreen + fm.numRed
	}
	return 0, 0
}

// HasRoom reports whether a slot of the given kind is free.
func (fm *FoodManager) HasRoom(kind types.Cell) bool {
	lo, hi := fm.bounds(kind)
	for i := lo; i < hi; i++ {
		if fm.slots[i] == types.NoPoint {
			return true
		}
	}
	return false
}

// Add records p in the first free slot of its range. It returns false when
// the range is full.
func (fm *FoodManager) Add(kind types.Cell, p types.Point) bool {
	lo, hi := fm.bounds(kind)
	for i := lo; i < hi; i++ {
		if fm.slots[i] == types.NoPoint {
			fm.slots[i] = p
			return true
		}
	}
	return false
}

// Remove frees the slot of the given kind holding p.
func (fm *FoodManager) Remove(kind types.Cell, p types.Point) bool {
	lo, hi := fm.bounds(kind)
	for i := lo; i < hi; i++ {
		if fm.slots[i] == p {
			fm.slots[i] = types.NoPoint
			return true
		}
	}
	return false
}

// Count returns the number of occupied slots of the given kind.
func (fm *FoodManager) Count(kind types.Cell) int {
	lo, hi := fm.bounds(kind)
	n := 0
	for i := lo; i < hi; i++ {
		if fm.slots[i] != types.NoPoint {
			n++
		}
	}
	return n
}

// Apples returns the occupied coordinates of the given kind in slot order.
func (fm *FoodManager) Apples(kind types.Cell) []types.Point {
	lo, hi := fm.bounds(kind)
	out := make([]types.Point, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if fm.slots[i] != types.NoPoint {
			out = append(out, fm.slots[i])
		}
	}
	return out
}

// Slot returns the raw content of slot i, free slots included.
func (fm *FoodManager) Slot(i int) types.Point {
	if i < 0 || i >= len(fm.slots) {
		return types.NoPoint
	}
	return fm.slots[i]
}
