// Package ai implements a tabular Q-learning autopilot that plays through
// the engine's public interface: it observes snapshots and requests
// directions, exactly like a human player would.
package ai

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"

	"snakesim/game"
	"snakesim/game/types"
)

// Action is one of the four absolute movement choices.
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

const numActions = 4

// Direction maps an Action to the engine's direction type.
func (a Action) Direction() types.Direction {
	switch a {
	case Up:
		return types.DirUp
	case Right:
		return types.DirRight
	case Down:
		return types.DirDown
	default:
		return types.DirLeft
	}
}

// State is the agent's compressed view of a snapshot: where the food is
// relative to the head, and which neighbor cells kill.
type State struct {
	FoodDir [2]int  // sign of food offset from head (x, y)
	Dangers [4]bool // fatal neighbor per action (up, right, down, left)
}

// Key renders the state as a stable Q-table key.
func (s State) Key() string {
	return fmt.Sprintf("%d,%d|%t,%t,%t,%t",
		s.FoodDir[0], s.FoodDir[1],
		s.Dangers[0], s.Dangers[1], s.Dangers[2], s.Dangers[3])
}

// QTable stores action values per observed state.
type QTable map[string][numActions]float64

// Agent is an epsilon-greedy tabular Q-learner.
type Agent struct {
	Table        QTable  `json:"table"`
	LearningRate float64 `json:"learningRate"`
	Discount     float64 `json:"discount"`
	Epsilon      float64 `json:"epsilon"`
	GamesPlayed  int     `json:"gamesPlayed"`

	rng *rand.Rand
}

// NewAgent creates an agent with the usual Q-learning hyperparameters.
// Seed zero gives a randomly seeded exploration policy.
func NewAgent(seed uint64) *Agent {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Agent{
		Table:        make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Observe reduces a snapshot to the agent's state representation.
func Observe(snap game.Snapshot) State {
	head := snap.Cells[0]

	var st State
	if snap.Food != nil {
		st.FoodDir = [2]int{sign(snap.Food.X - head.X), sign(snap.Food.Y - head.Y)}
	}
	for a := Action(0); a < numActions; a++ {
		st.Dangers[a] = isDanger(snap, head.Add(a.Direction().ToPoint()))
	}
	return st
}

// isDanger reports whether moving onto cell ends the round: a wall on a
// bounded grid, or any body segment. The vacating tail counts as safe.
func isDanger(snap game.Snapshot, cell types.Point) bool {
	if snap.WrapWalls {
		cell = snap.Grid.Wrap(cell)
	} else if !snap.Grid.Contains(cell) {
		return true
	}
	for i := 0; i < len(snap.Cells)-1; i++ {
		if snap.Cells[i] == cell {
			return true
		}
	}
	return false
}

// ChooseAction picks epsilon-greedily from the state's Q-row. Rejecting
// reverse moves is the engine's job, not the agent's.
func (ag *Agent) ChooseAction(s State) Action {
	if ag.rng.Float64() < ag.Epsilon {
		return Action(ag.rng.Intn(numActions))
	}
	row := ag.Table[s.Key()]
	best := Action(0)
	for a := Action(1); a < numActions; a++ {
		if row[a] > row[best] {
			best = a
		}
	}
	return best
}

// Learn applies one Q-value update for the observed transition.
func (ag *Agent) Learn(prev State, a Action, reward float64, next State) {
	prevRow := ag.Table[prev.Key()]
	nextRow := ag.Table[next.Key()]

	maxNext := nextRow[0]
	for i := 1; i < numActions; i++ {
		if nextRow[i] > maxNext {
			maxNext = nextRow[i]
		}
	}

	prevRow[a] += ag.LearningRate * (reward + ag.Discount*maxNext - prevRow[a])
	ag.Table[prev.Key()] = prevRow
}

// Reward shapes the learning signal from observable round progress.
func Reward(scoreGain int, died bool) float64 {
	switch {
	case died:
		return -10
	case scoreGain > 0:
		return float64(scoreGain)
	default:
		return -0.01
	}
}

// Save writes the Q-table and hyperparameters as JSON.
func (ag *Agent) Save(filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(ag, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Load restores an agent saved with Save. The exploration RNG is kept.
func (ag *Agent) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, ag); err != nil {
		return err
	}
	if ag.Table == nil {
		ag.Table = make(QTable)
	}
	return nil
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
