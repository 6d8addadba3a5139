package fleet

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/cruise/config"
)

func newTestRegistry(seed int64) *Registry {
	return NewRegistry(config.Default().Ships, rand.New(rand.NewSource(seed)))
}

func TestAddAssignsUniqueIDsInOrder(t *testing.T) {
	r := newTestRegistry(1)

	for i := 0; i < 20; i++ {
		r.Add(float32(i), 100)
	}

	if r.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", r.Len())
	}

	seen := make(map[uint32]bool)
	for i, s := range r.Ships() {
		if seen[s.ID] {
			t.Errorf("duplicate ID %d", s.ID)
		}
		seen[s.ID] = true
		if s.X != float32(i) {
			t.Errorf("ship %d X = %v, want %v (insertion order)", i, s.X, float32(i))
		}
		if i > 0 && s.ID <= r.At(i-1).ID {
			t.Errorf("ship %d ID %d not increasing", i, s.ID)
		}
	}
	if r.LastID() != 20 {
		t.Errorf("LastID() = %d, want 20", r.LastID())
	}
}

func TestAddInitialShip(t *testing.T) {
	r := newTestRegistry(7)
	s := r.Add(300, 600)

	if s.Level != 1 {
		t.Errorf("Level = %d, want 1", s.Level)
	}
	if s.Passengers < 5 || s.Passengers > 14 {
		t.Errorf("Passengers = %d, want in [5,14]", s.Passengers)
	}
	if s.X != 300 || s.Y != 600 {
		t.Errorf("position = (%v,%v), want (300,600)", s.X, s.Y)
	}
	if s.Color.A != 255 {
		t.Errorf("Color.A = %d, want opaque", s.Color.A)
	}
}

func TestUpgradeAndAddPassengersNeverDecrease(t *testing.T) {
	r := newTestRegistry(3)
	r.Add(0, 0)
	before := r.At(0)

	after := r.Upgrade(0, 7)
	if after.Level != before.Level+1 {
		t.Errorf("Level = %d, want %d", after.Level, before.Level+1)
	}
	if after.Passengers != before.Passengers+7 {
		t.Errorf("Passengers = %d, want %d", after.Passengers, before.Passengers+7)
	}

	r.AddPassengers(0, -50)
	if got := r.At(0).Passengers; got != after.Passengers {
		t.Errorf("negative AddPassengers changed capacity to %d", got)
	}
	r.Upgrade(0, -50)
	if got := r.At(0).Passengers; got != after.Passengers {
		t.Errorf("negative upgrade gain changed capacity to %d", got)
	}
}

func TestAggregates(t *testing.T) {
	cfg := config.Default().Ships
	cfg.InitialPassengers = config.Range{Min: 5, Max: 5}
	r := NewRegistry(cfg, rand.New(rand.NewSource(5)))
	if r.TotalPassengers() != 0 || r.IncomePerTick() != 0 {
		t.Fatal("empty registry should have zero aggregates")
	}

	// (passengers, level) = (5,1) and (8,2)
	r.Add(0, 0)
	r.Add(10, 0)
	r.Upgrade(1, 3)

	if got := r.TotalPassengers(); got != 13 {
		t.Errorf("TotalPassengers() = %d, want 13", got)
	}
	if got := r.IncomePerTick(); got != 21 {
		t.Errorf("IncomePerTick() = %d, want 21", got)
	}
}

func TestSameSeedSameFleet(t *testing.T) {
	a := newTestRegistry(99)
	b := newTestRegistry(99)
	for i := 0; i < 5; i++ {
		a.Add(1, 2)
		b.Add(1, 2)
	}
	sa, sb := a.Ships(), b.Ships()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Errorf("ship %d differs: %+v vs %+v", i, sa[i], sb[i])
		}
	}
}

func TestLivery(t *testing.T) {
	// hsl(0, 70%, 70%) = rgb(232, 125, 125)
	c := Livery(0, 0.7, 0.7)
	if c.R < 230 || c.R > 234 || c.G < 123 || c.G > 127 || c.B < 123 || c.B > 127 {
		t.Errorf("Livery(0,.7,.7) = %+v, want about {232 125 125}", c)
	}
}
