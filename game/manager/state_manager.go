package manager

import (
	"time"

	"snakesim/game/types"
)

// StateManager owns the round state machine and the fixed-step time
// accumulator. Only Running accumulates and drains tick time.
type StateManager struct {
	state types.RoundState
	acc   time.Duration

	baseInterval time.Duration
	minInterval  time.Duration
	speedScaling bool
}

func NewStateManager(baseInterval, minInterval time.Duration, speedScaling bool) *StateManager {
	return &StateManager{
		state:        types.RoundNotStarted,
		baseInterval: baseInterval,
		minInterval:  minInterval,
		speedScaling: speedScaling,
	}
}

// State returns the current round state.
func (sm *StateManager) State() types.RoundState {
	return sm.state
}

// Start moves NotStarted to Running. Any other state is left alone.
func (sm *StateManager) Start() {
	if sm.state == types.RoundNotStarted {
		sm.state = types.RoundRunning
	}
}

// TogglePause flips between Running and Paused.
func (sm *StateManager) TogglePause() {
	switch sm.state {
	case types.RoundRunning:
		sm.state = types.RoundPaused
	case types.RoundPaused:
		sm.state = types.RoundRunning
	}
}

// End marks a terminal collision.
func (sm *StateManager) End() {
	sm.state = types.RoundEnded
}

// Reset returns to NotStarted and discards any partially accumulated tick
// time.
func (sm *StateManager) Reset() {
	sm.state = types.RoundNotStarted
	sm.acc = 0
}

// Accumulate adds elapsed real time. The caller only invokes this while
// Running.
func (sm *StateManager) Accumulate(elapsed time.Duration) {
	sm.acc += elapsed
}

// TryConsume drains one tick of the given interval from the accumulator,
// reporting whether a tick fired.
func (sm *StateManager) TryConsume(interval time.Duration) bool {
	if sm.acc < interval {
		return false
	}
	sm.acc -= interval
	return true
}

// Interval computes the current tick interval: the base interval, reduced
// linearly with score when speed scaling is on and clamped to the minimum,
// then stretched by 1.75 while Slow is active. Ghost and Double never
// affect timing.
func (sm *StateManager) Interval(score int, slow bool) time.Duration {
	iv := sm.baseInterval
	if sm.speedScaling {
		iv -= time.Duration(score) * types.SpeedStepPerPoint
		if iv < sm.minInterval {
			iv = sm.minInterval
		}
	}
	if slow {
		iv = iv * 7 / 4
	}
	return iv
}
