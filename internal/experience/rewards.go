package experience

// RewardConfig holds configurable reward values
type RewardConfig struct {
	PerPoint    float32 // reward per point collected
	StepPenalty float32 // subtracted on every move
	Terminal    float32 // bonus on the move that ends the walk
}

// DefaultRewardConfig returns a config under which the return of a walk equals its score
func DefaultRewardConfig() *RewardConfig {
	return &RewardConfig{
		PerPoint:    1.0,
		StepPenalty: 0.0,
		Terminal:    0.0,
	}
}

// CalculateReward computes the reward for a single move
func CalculateReward(points int, done bool) float32 {
	return CalculateRewardWithConfig(points, done, DefaultRewardConfig())
}

// CalculateRewardWithConfig computes reward using custom configuration
func CalculateRewardWithConfig(points int, done bool, config *RewardConfig) float32 {
	reward := float32(points)*config.PerPoint - config.StepPenalty
	if done {
		reward += config.Terminal
	}
	return reward
}
