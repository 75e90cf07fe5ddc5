package game

// Agent reward signals. They are read-only values for reward shaping and are
// not tied to the score deltas the board applies.
const (
	RewardGreenApple = 10.0
	RewardRedApple   = -10.0
	RewardDeath      = -50.0 // wall, self or length zero
	RewardStep       = -0.1
)
