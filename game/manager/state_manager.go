package manager

// Score deltas applied by the board. The agent reward constants live in
// package game and are independent of these.
const (
	GreenAppleScore = 10
	RedApplePenalty = 10
)

// StateManager holds the scalar game state: score, moves, max length and the
// one-way game over flag. The high score survives resets for the lifetime of
// the process.
type StateManager struct {
	score     int
	moves     int
	maxLength int
	gameOver  bool
	highScore int
}

func NewStateManager(initialLength int) *StateManager {
	sm := &StateManager{}
	sm.Reset(initialLength)
	return sm
}

// Reset starts a new game. maxLength restarts at the fresh initial length.
func (sm *StateManager) Reset(initialLength int) {
	sm.score = 0
	sm.moves = 0
	sm.maxLength = initialLength
	sm.gameOver = false
}

func (sm *StateManager) CountMove() {
	sm.moves++
}

func (sm *StateManager) AddScore(delta int) {
	sm.score += delta
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// ObserveLength raises the max length high-water mark.
func (sm *StateManager) ObserveLength(length int) {
	if length > sm.maxLength {
		sm.maxLength = length
	}
}

// End marks the game as over. There is no way back short of Reset.
func (sm *StateManager) End() {
	sm.gameOver = true
}

func (sm *StateManager) GameOver() bool {
	return sm.gameOver
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) Moves() int {
	return sm.moves
}

func (sm *StateManager) MaxLength() int {
	return sm.maxLength
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}
