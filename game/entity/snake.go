package entity

import "slither/game/types"

// Snake stores body coordinates in a fixed-capacity ring buffer.
// The live body is the Length most recently written slots ending at the head slot.
// Slots outside that window hold stale coordinates and are never read.
//
// Snake does not touch the grid: Advance and ShrinkTail return the coordinates
// the caller has to re-tag.
type Snake struct {
	slots  []types.Point
	head   int
	length int
}

// NewSnake allocates a snake with room for capacity segments.
func NewSnake(capacity int) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	return &Snake{slots: make([]types.Point, capacity)}
}

// CapacityFor returns the ring size used for a square board of the given side.
func CapacityFor(size int) int {
	return size*size - 1
}

// Reset places the snake on the given segments, ordered tail first and head last.
func (s *Snake) Reset(segments ...types.Point) {
	n := len(segments)
	if n > len(s.slots) {
		n = len(s.slots)
	}
	for i := 0; i < n; i++ {
		s.slots[i] = segments[i]
	}
	s.length = n
	s.head = 0
	if n > 0 {
		s.head = n - 1
	}
}

func (s *Snake) Capacity() int {
	return len(s.slots)
}

func (s *Snake) Length() int {
	return s.length
}

// HeadIndex returns the ring slot holding the head.
func (s *Snake) HeadIndex() int {
	return s.head
}

// Head returns the head coordinate.
func (s *Snake) Head() types.Point {
	return s.slots[s.head]
}

// Tail returns the coordinate of the oldest live segment.
func (s *Snake) Tail() types.Point {
	return s.slots[s.wrap(s.head-s.length+1)]
}

// At returns the i-th live segment counting from the head (0 is the head).
func (s *Snake) At(i int) types.Point {
	return s.slots[s.wrap(s.head-i)]
}

// Segments returns the live body, head first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, s.length)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Contains reports whether p is a live segment.
func (s *Snake) Contains(p types.Point) bool {
	for i := 0; i < s.length; i++ {
		if s.At(i) == p {
			return true
		}
	}
	return false
}

// Advance writes p as the new head. Length is not changed; the caller bumps
// it with Grow after a growing move. When grow is false the returned point is
// the segment that fell off the tail and vacated is true.
func (s *Snake) Advance(p types.Point, grow bool) (tail types.Point, vacated bool) {
	s.head = s.wrap(s.head + 1)
	s.slots[s.head] = p
	if grow {
		return types.Point{}, false
	}
	return s.slots[s.wrap(s.head-s.length)], true
}

// Grow adds one to the live length.
func (s *Snake) Grow() {
	if s.length < len(s.slots) {
		s.length++
	}
}

// ShrinkTail drops the tail segment without moving the head and returns it.
// It refuses to drop the last segment.
func (s *Snake) ShrinkTail() (types.Point, bool) {
	if s.length <= 1 {
		return types.Point{}, false
	}
	tail := s.Tail()
	s.length--
	return tail, true
}

// wrap normalizes i into [0, capacity).
func (s *Snake) wrap(i int) int {
	n := len(s.slots)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
