package economy

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/cruise/fleet"
)

// Action failures. Failed actions never mutate state.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoShips           = errors.New("no ships")
)

// Action names a priced player action.
type Action string

const (
	ActionBuy       Action = "buy"
	ActionUpgrade   Action = "upgrade"
	ActionAdvertise Action = "advertise"
)

// Actions lists the priced actions in display order.
var Actions = []Action{ActionBuy, ActionUpgrade, ActionAdvertise}

// ParseAction converts a wire/CLI name into an Action.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", name)
}

// Price returns the configured cost of an action.
func (s *State) Price(a Action) int64 {
	switch a {
	case ActionBuy:
		return s.cfg.BuyPrice
	case ActionUpgrade:
		return s.cfg.UpgradePrice
	case ActionAdvertise:
		return s.cfg.AdvertisePrice
	}
	return 0
}

// Check reports why an action would fail right now, or nil if it would succeed.
func (s *State) Check(a Action) error {
	price := s.Price(a)
	if price == 0 {
		return fmt.Errorf("unknown action %q", a)
	}
	if s.money < price {
		return fmt.Errorf("%s: %w: have %d, need %d", a, ErrInsufficientFunds, s.money, price)
	}
	if a == ActionUpgrade && s.fleet.Len() == 0 {
		return fmt.Errorf("%s: %w", a, ErrNoShips)
	}
	return nil
}

// Can reports whether an action would succeed right now.
func (s *State) Can(a Action) bool {
	return s.Check(a) == nil
}

// BuyShip debits the buy price and launches a new ship at (x, y).
func (s *State) BuyShip(x, y float32) (fleet.Ship, error) {
	if err := s.Check(ActionBuy); err != nil {
		return fleet.Ship{}, err
	}

	s.money -= s.cfg.BuyPrice
	ship := s.fleet.Add(x, y)

	s.refresh()
	return ship, nil
}

// UpgradeShip debits the upgrade price and upgrades one ship chosen
// uniformly at random.
func (s *State) UpgradeShip() (fleet.Ship, error) {
	if err := s.Check(ActionUpgrade); err != nil {
		return fleet.Ship{}, err
	}

	s.money -= s.cfg.UpgradePrice
	idx := s.rng.Intn(s.fleet.Len())
	ship := s.fleet.Upgrade(idx, s.ships.UpgradePassengers.Sample(s.rng))
	s.addReputation(s.cfg.UpgradeReputation)

	s.refresh()
	return ship, nil
}

// Advertise debits the advertising price, raises reputation and adds an
// independently sampled number of passengers to every ship.
func (s *State) Advertise() error {
	if err := s.Check(ActionAdvertise); err != nil {
		return err
	}

	s.money -= s.cfg.AdvertisePrice
	s.addReputation(s.cfg.AdvertiseReputation)
	for i := 0; i < s.fleet.Len(); i++ {
		s.fleet.AddPassengers(i, s.ships.AdvertisePassengers.Sample(s.rng))
	}

	s.refresh()
	return nil
}
