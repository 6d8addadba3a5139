// Package economy holds the game state and the priced actions that mutate it.
package economy

import (
	"math/rand"

	"github.com/pthm-cable/cruise/config"
	"github.com/pthm-cable/cruise/fleet"
)

// Snapshot is a copy of the status readout values.
type Snapshot struct {
	Money      int64   `json:"money"`
	Passengers int     `json:"passengers"`
	Reputation int     `json:"reputation"`
	Ships      int     `json:"ships"`
	Elapsed    float64 `json:"elapsed"`
}

// Listener is notified after every successful action and income tick.
type Listener func(Snapshot)

// State is the single owned game state for a session.
// It is not safe for concurrent use; all calls must come from the game loop.
type State struct {
	cfg   config.EconomyConfig
	ships config.ShipsConfig
	rng   *rand.Rand
	fleet *fleet.Registry

	money      int64
	passengers int
	reputation int
	elapsed    float64

	listeners []Listener
}

// NewState creates a session state with the configured starting balances.
func NewState(cfg *config.Config, rng *rand.Rand) *State {
	return &State{
		cfg:        cfg.Economy,
		ships:      cfg.Ships,
		rng:        rng,
		fleet:      fleet.NewRegistry(cfg.Ships, rng),
		money:      cfg.Economy.StartingMoney,
		reputation: cfg.Economy.StartingReputation,
	}
}

// OnChange registers a listener for state refreshes.
func (s *State) OnChange(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Money returns the spendable currency.
func (s *State) Money() int64 { return s.money }

// Passengers returns the passenger total as of the last income tick.
func (s *State) Passengers() int { return s.passengers }

// Reputation returns the current reputation in [0, MaxReputation].
func (s *State) Reputation() int { return s.reputation }

// Elapsed returns the simulation time in seconds.
func (s *State) Elapsed() float64 { return s.elapsed }

// Fleet returns the ship registry. Callers outside this package should
// treat it as read-only; mutations go through the actions.
func (s *State) Fleet() *fleet.Registry { return s.fleet }

// SetElapsed advances simulation time. Earlier timestamps are ignored so
// elapsed time never decreases.
func (s *State) SetElapsed(seconds float64) {
	if seconds > s.elapsed {
		s.elapsed = seconds
	}
}

// Snapshot returns the current readout values.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Money:      s.money,
		Passengers: s.passengers,
		Reputation: s.reputation,
		Ships:      s.fleet.Len(),
		Elapsed:    s.elapsed,
	}
}

// refresh notifies listeners of the new state.
func (s *State) refresh() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, l := range s.listeners {
		l(snap)
	}
}

// addReputation applies delta and clamps to [0, MaxReputation].
func (s *State) addReputation(delta int) {
	s.reputation = min(max(s.reputation+delta, 0), s.cfg.MaxReputation)
}
