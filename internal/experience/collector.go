package experience

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/GridWalk/internal/game/core"
	"github.com/mitchelldurbincs/GridWalk/internal/game/events"
	"github.com/rs/zerolog"
)

// Transition is one recorded step of a walk
type Transition struct {
	ID        string
	WalkID    string
	Turn      int // turn counter after the move
	From      core.Coordinate
	Action    core.Direction
	To        core.Coordinate
	Reward    float32
	Score     int
	Done      bool
	LegalMask [core.NumDirections]bool
}

// Collector records the trajectory of walks from move.executed events.
// It implements events.Subscriber.
type Collector struct {
	id          string
	transitions []Transition
	mu          sync.Mutex
	maxSize     int
	rewards     *RewardConfig
	finished    map[string]int // walk ID -> final score
	logger      zerolog.Logger
}

// NewCollector creates a collector that keeps at most maxSize transitions.
// A nil rewards config uses DefaultRewardConfig.
func NewCollector(maxSize int, rewards *RewardConfig, logger zerolog.Logger) *Collector {
	if rewards == nil {
		rewards = DefaultRewardConfig()
	}
	id := "experience_collector_" + uuid.New().String()
	return &Collector{
		id:          id,
		transitions: make([]Transition, 0, maxSize),
		maxSize:     maxSize,
		rewards:     rewards,
		finished:    make(map[string]int),
		logger:      logger.With().Str("component", "experience_collector").Logger(),
	}
}

// ID returns the subscriber's unique identifier
func (c *Collector) ID() string {
	return c.id
}

// InterestedIn returns true for move and walk-end events
func (c *Collector) InterestedIn(eventType string) bool {
	return eventType == events.TypeMoveExecuted || eventType == events.TypeWalkEnded
}

// HandleEvent records a transition or closes a walk
func (c *Collector) HandleEvent(event events.Event) {
	switch e := event.(type) {
	case *events.MoveExecutedEvent:
		c.onMove(e)
	case *events.WalkEndedEvent:
		c.onWalkEnd(e)
	}
}

func (c *Collector) onMove(e *events.MoveExecutedEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.transitions) >= c.maxSize {
		c.logger.Warn().
			Int("buffer_size", len(c.transitions)).
			Int("max_size", c.maxSize).
			Msg("Experience buffer full, dropping transition")
		return
	}

	t := Transition{
		ID:        uuid.New().String(),
		WalkID:    e.GameID(),
		Turn:      e.Turn,
		From:      e.From,
		Action:    e.Direction,
		To:        e.To,
		Reward:    CalculateRewardWithConfig(e.Points, e.Done, c.rewards),
		Score:     e.Score,
		Done:      e.Done,
		LegalMask: e.LegalMask,
	}
	c.transitions = append(c.transitions, t)

	c.logger.Debug().
		Str("transition_id", t.ID).
		Str("walk_id", t.WalkID).
		Int("turn", t.Turn).
		Float32("reward", t.Reward).
		Bool("done", t.Done).
		Msg("Collected transition")
}

func (c *Collector) onWalkEnd(e *events.WalkEndedEvent) {
	c.mu.Lock()
	c.finished[e.GameID()] = e.Score
	count := 0
	for _, t := range c.transitions {
		if t.WalkID == e.GameID() {
			count++
		}
	}
	c.mu.Unlock()

	c.logger.Info().
		Str("walk_id", e.GameID()).
		Int("transitions", count).
		Int("final_turn", e.FinalTurn).
		Int("score", e.Score).
		Msg("Walk ended, trajectory complete")
}

// Transitions returns a copy of all recorded transitions
func (c *Collector) Transitions() []Transition {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Transition, len(c.transitions))
	copy(result, c.transitions)
	return result
}

// Trajectory returns the transitions of one walk in turn order
func (c *Collector) Trajectory(walkID string) []Transition {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []Transition
	for _, t := range c.transitions {
		if t.WalkID == walkID {
			result = append(result, t)
		}
	}
	return result
}

// Return sums the rewards recorded for walkID
func (c *Collector) Return(walkID string) float32 {
	var total float32
	for _, t := range c.Trajectory(walkID) {
		total += t.Reward
	}
	return total
}

// FinalScore reports the score a walk ended with, if its walk.ended event was seen
func (c *Collector) FinalScore(walkID string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	score, ok := c.finished[walkID]
	return score, ok
}

// Count returns the current number of transitions
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.transitions)
}
