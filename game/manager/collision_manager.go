package manager

import "slither/game/types"

// CollisionManager resolves what a move into a given cell means.
type CollisionManager struct {
	size int
}

func NewCollisionManager(size int) *CollisionManager {
	return &CollisionManager{size: size}
}

// IsWallCollision checks if a position lies outside the board.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return pos.X < 0 || pos.X >= cm.size || pos.Y < 0 || pos.Y >= cm.size
}

// Classify maps the target position and its cell tag to the outcome of
// moving there. Red apples report AteRedApple; whether the snake survives
// is decided by the board.
func (cm *CollisionManager) Classify(pos types.Point, cell types.Cell) types.Outcome {
	if cm.IsWallCollision(pos) || cell == types.Wall {
		return types.HitWall
	}
	switch cell {
	case types.SnakeHead, types.SnakeBody:
		return types.HitSelf
	case types.GreenApple:
		return types.AteGreenApple
	case types.RedApple:
		return types.AteRedApple
	}
	return types.Moved
}
