package economy

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/cruise/config"
)

func TestCollectIncome(t *testing.T) {
	cfg := config.Default()
	cfg.Ships.InitialPassengers = config.Range{Min: 5, Max: 5}
	cfg.Ships.UpgradePassengers = config.Range{Min: 3, Max: 3}
	s := NewState(cfg, rand.New(rand.NewSource(1)))

	// Fleet of (passengers, level) = (5,1), (8,2)
	s.money = 1000
	s.BuyShip(0, 0)
	s.BuyShip(10, 0)
	s.fleet.Upgrade(1, 3)

	s.money = 0
	income := s.CollectIncome()
	if income != 21 {
		t.Errorf("income = %d, want 21", income)
	}
	if s.Money() != 21 {
		t.Errorf("money = %d, want 21", s.Money())
	}
	if s.Passengers() != 13 {
		t.Errorf("passengers = %d, want 13", s.Passengers())
	}

	// Same state, same income; currency keeps accumulating
	if again := s.CollectIncome(); again != 21 || s.Money() != 42 {
		t.Errorf("second tick income=%d money=%d, want 21 and 42", again, s.Money())
	}
}

func TestCollectIncomeEmptyFleet(t *testing.T) {
	s := newTestState(2)
	if got := s.CollectIncome(); got != 0 {
		t.Errorf("income = %d, want 0", got)
	}
	if s.Money() != 1000 || s.Passengers() != 0 {
		t.Errorf("money=%d passengers=%d", s.Money(), s.Passengers())
	}
}

func TestPassengerTotalOnlyOnTick(t *testing.T) {
	s := newTestState(3)
	s.BuyShip(0, 0)
	if s.Passengers() != 0 {
		t.Errorf("passengers = %d before tick, want 0", s.Passengers())
	}
	s.CollectIncome()
	if s.Passengers() != s.Fleet().TotalPassengers() {
		t.Errorf("passengers = %d, want %d", s.Passengers(), s.Fleet().TotalPassengers())
	}
}

func TestSetElapsedMonotonic(t *testing.T) {
	s := newTestState(4)
	s.SetElapsed(2.5)
	s.SetElapsed(1.0)
	if s.Elapsed() != 2.5 {
		t.Errorf("Elapsed() = %v, want 2.5", s.Elapsed())
	}
	s.SetElapsed(3)
	if s.Elapsed() != 3 {
		t.Errorf("Elapsed() = %v, want 3", s.Elapsed())
	}
}
