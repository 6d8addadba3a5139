package game

import (
	"fmt"

	"github.com/pthm-cable/cruise/economy"
	"github.com/pthm-cable/cruise/fleet"
	"github.com/pthm-cable/cruise/server"
	"github.com/pthm-cable/cruise/ui"
)

// Do runs a priced action. Buy places the ship at a random spawn point.
func (g *Game) Do(a economy.Action) error {
	switch a {
	case economy.ActionBuy:
		_, err := g.BuyRandom()
		return err
	case economy.ActionUpgrade:
		ship, err := g.state.UpgradeShip()
		g.recordAction(a, err, "ship", ship.ID, "level", ship.Level)
		return err
	case economy.ActionAdvertise:
		err := g.state.Advertise()
		g.recordAction(a, err, "reputation", g.state.Reputation())
		return err
	}
	return fmt.Errorf("unknown action %q", a)
}

// Buy buys a ship at (x, y).
func (g *Game) Buy(x, y float32) (fleet.Ship, error) {
	ship, err := g.state.BuyShip(x, y)
	g.recordAction(economy.ActionBuy, err, "ship", ship.ID, "x", x, "y", y)
	return ship, err
}

// BuyRandom buys a ship at a random point in the spawn area.
func (g *Game) BuyRandom() (fleet.Ship, error) {
	x, y := g.camera.SpawnPoint(g.rng)
	return g.Buy(x, y)
}

// HandleClick buys a ship at a clicked point on the water. It reports
// whether the click was consumed.
func (g *Game) HandleClick(x, y float32) bool {
	if g.nav.Current() != ui.ScreenGame || !g.camera.InOcean(x, y) {
		return false
	}
	g.Buy(x, y)
	return true
}

// Resize tracks a new surface size.
func (g *Game) Resize(w, h float32) {
	g.camera.Resize(w, h)
}

// drainCommands applies queued remote commands.
func (g *Game) drainCommands() {
	if g.server == nil {
		return
	}
	g.server.Drain(g.cfg.Server.CommandQueue, g.handleCommand)
}

func (g *Game) handleCommand(cmd server.Command) {
	if cmd.Action == economy.ActionBuy && cmd.HasPosition() {
		x, y := g.camera.Clamp(*cmd.X, *cmd.Y)
		g.Buy(x, y)
		return
	}
	g.Do(cmd.Action)
}
