package game

import (
	"time"

	"github.com/pthm-cable/cruise/economy"
)

// Policy picks the next action for the autopilot, or false to wait.
type Policy func(s *economy.State) (economy.Action, bool)

// GreedyPolicy takes the first affordable action in priority order:
// buy, then upgrade, then advertise.
func GreedyPolicy(s *economy.State) (economy.Action, bool) {
	for _, a := range economy.Actions {
		if s.Can(a) {
			return a, true
		}
	}
	return "", false
}

// Autopilot plays the game on a fixed decision interval.
type Autopilot struct {
	interval time.Duration
	next     time.Duration
	policy   Policy
	actions  int
}

// NewAutopilot creates a greedy autopilot deciding once per interval.
func NewAutopilot(interval time.Duration) *Autopilot {
	if interval <= 0 {
		interval = time.Second
	}
	return &Autopilot{interval: interval, policy: GreedyPolicy}
}

// Tick makes at most one decision if the interval has elapsed.
func (a *Autopilot) Tick(g *Game, now time.Duration) {
	if now < a.next {
		return
	}
	a.next = now + a.interval

	action, ok := a.policy(g.state)
	if !ok {
		return
	}
	if err := g.Do(action); err == nil {
		a.actions++
	}
}
