package ui

import (
	"fmt"

	"github.com/pthm-cable/cruise/economy"
)

// Button describes one action button for the current frame.
type Button struct {
	Action  economy.Action
	Label   string
	Enabled bool
}

var actionTitles = map[economy.Action]string{
	economy.ActionBuy:       "Buy Cruise Ship",
	economy.ActionUpgrade:   "Upgrade Ship",
	economy.ActionAdvertise: "Advertise",
}

// Label formats an action button caption with its price.
func Label(a economy.Action, price int64) string {
	return fmt.Sprintf("%s ($%d)", actionTitles[a], price)
}

// Buttons returns the action bar in display order. A button is enabled
// exactly when its action would succeed.
func Buttons(s *economy.State) []Button {
	out := make([]Button, 0, len(economy.Actions))
	for _, a := range economy.Actions {
		out = append(out, Button{
			Action:  a,
			Label:   Label(a, s.Price(a)),
			Enabled: s.Can(a),
		})
	}
	return out
}
