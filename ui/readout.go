package ui

import (
	"fmt"

	"github.com/pthm-cable/cruise/economy"
)

// Readout is the formatted status line shown above the action bar.
type Readout struct {
	Money      string
	Passengers string
	Reputation string
	Fleet      string
}

// NewReadout formats a state snapshot.
func NewReadout(s economy.Snapshot) Readout {
	return Readout{
		Money:      fmt.Sprintf("Money: $%d", s.Money),
		Passengers: fmt.Sprintf("Passengers: %d", s.Passengers),
		Reputation: fmt.Sprintf("Reputation: %d", s.Reputation),
		Fleet:      fmt.Sprintf("Ships: %d", s.Ships),
	}
}

// Lines returns the readout fields in display order.
func (r Readout) Lines() []string {
	return []string{r.Money, r.Passengers, r.Reputation, r.Fleet}
}
