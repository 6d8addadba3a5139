package economy

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/pthm-cable/cruise/config"
)

func newTestState(seed int64) *State {
	return NewState(config.Default(), rand.New(rand.NewSource(seed)))
}

func TestBuyShip(t *testing.T) {
	tests := []struct {
		name    string
		money   int64
		wantErr error
	}{
		{"exact price", 500, nil},
		{"plenty", 1000, nil},
		{"one short", 499, ErrInsufficientFunds},
		{"broke", 0, ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(1)
			s.money = tt.money

			ship, err := s.BuyShip(100, 600)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BuyShip() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if s.money != tt.money || s.fleet.Len() != 0 {
					t.Errorf("failed buy mutated state: money=%d ships=%d", s.money, s.fleet.Len())
				}
				return
			}
			if s.money != tt.money-500 {
				t.Errorf("money = %d, want %d", s.money, tt.money-500)
			}
			if s.fleet.Len() != 1 {
				t.Errorf("ships = %d, want 1", s.fleet.Len())
			}
			if ship.ID != 1 || ship.X != 100 || ship.Y != 600 {
				t.Errorf("ship = %+v, want ID 1 at (100,600)", ship)
			}
		})
	}
}

func TestBuyShipFreshIDs(t *testing.T) {
	s := newTestState(2)
	s.money = 5000
	seen := make(map[uint32]bool)
	for i := 0; i < 10; i++ {
		ship, err := s.BuyShip(0, 0)
		if err != nil {
			t.Fatalf("buy %d: %v", i, err)
		}
		if seen[ship.ID] {
			t.Fatalf("ID %d reused", ship.ID)
		}
		seen[ship.ID] = true
	}
	if s.money != 0 {
		t.Errorf("money = %d, want 0", s.money)
	}
}

func TestUpgradeShip(t *testing.T) {
	t.Run("empty fleet", func(t *testing.T) {
		s := newTestState(3)
		s.money = 10000
		if _, err := s.UpgradeShip(); !errors.Is(err, ErrNoShips) {
			t.Fatalf("UpgradeShip() error = %v, want ErrNoShips", err)
		}
		if s.money != 10000 || s.reputation != 50 {
			t.Errorf("failed upgrade mutated state")
		}
	})

	t.Run("insufficient funds", func(t *testing.T) {
		s := newTestState(3)
		s.money = 500
		if _, err := s.BuyShip(0, 0); err != nil {
			t.Fatal(err)
		}
		s.money = 299
		before := s.fleet.At(0)
		if _, err := s.UpgradeShip(); !errors.Is(err, ErrInsufficientFunds) {
			t.Fatalf("UpgradeShip() error = %v, want ErrInsufficientFunds", err)
		}
		if s.fleet.At(0) != before || s.money != 299 {
			t.Errorf("failed upgrade mutated state")
		}
	})

	t.Run("success", func(t *testing.T) {
		s := newTestState(4)
		s.money = 500 * 3
		for i := 0; i < 3; i++ {
			if _, err := s.BuyShip(float32(i), 0); err != nil {
				t.Fatal(err)
			}
		}
		before := s.fleet.Ships()
		s.money = 300

		upgraded, err := s.UpgradeShip()
		if err != nil {
			t.Fatalf("UpgradeShip() error = %v", err)
		}
		if s.money != 0 {
			t.Errorf("money = %d, want 0", s.money)
		}
		if s.reputation != 52 {
			t.Errorf("reputation = %d, want 52", s.reputation)
		}

		changed := 0
		for i, after := range s.fleet.Ships() {
			b := before[i]
			if after.Level < b.Level || after.Passengers < b.Passengers {
				t.Errorf("ship %d decreased: %+v -> %+v", i, b, after)
			}
			if after.Level != b.Level {
				changed++
				if after.Level != b.Level+1 {
					t.Errorf("ship %d level %d -> %d, want +1", i, b.Level, after.Level)
				}
				if after.ID != upgraded.ID {
					t.Errorf("returned ship %d, upgraded %d", upgraded.ID, after.ID)
				}
				gain := after.Passengers - b.Passengers
				if gain < 5 || gain > 14 {
					t.Errorf("passenger gain = %d, want in [5,14]", gain)
				}
			}
		}
		if changed != 1 {
			t.Errorf("%d ships changed level, want exactly 1", changed)
		}
	})
}

func TestAdvertise(t *testing.T) {
	s := newTestState(5)
	s.money = 4*500 + 200
	for i := 0; i < 4; i++ {
		if _, err := s.BuyShip(0, 0); err != nil {
			t.Fatal(err)
		}
	}
	before := s.fleet.Ships()

	if err := s.Advertise(); err != nil {
		t.Fatalf("Advertise() error = %v", err)
	}
	if s.money != 0 {
		t.Errorf("money = %d, want 0", s.money)
	}
	if s.reputation != 55 {
		t.Errorf("reputation = %d, want 55", s.reputation)
	}
	for i, after := range s.fleet.Ships() {
		if after.Passengers <= before[i].Passengers {
			t.Errorf("ship %d passengers %d -> %d, want strict increase", i, before[i].Passengers, after.Passengers)
		}
		if after.Level != before[i].Level {
			t.Errorf("ship %d level changed", i)
		}
	}

	if err := s.Advertise(); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Advertise() with 0 money error = %v, want ErrInsufficientFunds", err)
	}
}

func TestAdvertiseWithoutShips(t *testing.T) {
	s := newTestState(6)
	s.money = 200
	if err := s.Advertise(); err != nil {
		t.Fatalf("Advertise() error = %v", err)
	}
	if s.money != 0 || s.reputation != 55 {
		t.Errorf("money=%d reputation=%d, want 0 and 55", s.money, s.reputation)
	}
}

func TestReputationCapped(t *testing.T) {
	s := newTestState(7)
	s.money = 1_000_000
	s.reputation = 98

	if err := s.Advertise(); err != nil {
		t.Fatal(err)
	}
	if s.reputation != 100 {
		t.Errorf("reputation = %d, want 100", s.reputation)
	}

	if _, err := s.BuyShip(0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpgradeShip(); err != nil {
		t.Fatal(err)
	}
	if s.reputation != 100 {
		t.Errorf("reputation = %d, want 100", s.reputation)
	}
}

func TestScenarioBuyUpgradeAdvertise(t *testing.T) {
	s := newTestState(8)
	if s.Money() != 1000 || s.Reputation() != 50 {
		t.Fatalf("start = %d/%d, want 1000/50", s.Money(), s.Reputation())
	}

	if _, err := s.BuyShip(200, 600); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if s.Money() != 500 || s.Fleet().Len() != 1 {
		t.Fatalf("after buy money=%d ships=%d", s.Money(), s.Fleet().Len())
	}

	if _, err := s.UpgradeShip(); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if s.Money() != 200 || s.Fleet().At(0).Level != 2 {
		t.Fatalf("after upgrade money=%d level=%d", s.Money(), s.Fleet().At(0).Level)
	}

	if err := s.Advertise(); err != nil {
		t.Fatalf("advertise: %v", err)
	}
	if s.Money() != 0 {
		t.Errorf("final money = %d, want 0", s.Money())
	}
	if s.Reputation() != 57 {
		t.Errorf("final reputation = %d, want 57", s.Reputation())
	}
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := newTestState(seed)
		rng := rand.New(rand.NewSource(seed + 1000))

		prev := s.fleet.Ships()
		for step := 0; step < 300; step++ {
			switch rng.Intn(4) {
			case 0:
				s.BuyShip(rng.Float32()*800, rng.Float32()*600)
			case 1:
				s.UpgradeShip()
			case 2:
				s.Advertise()
			case 3:
				s.CollectIncome()
			}

			if s.money < 0 {
				t.Fatalf("seed %d step %d: money = %d", seed, step, s.money)
			}
			if s.reputation < 0 || s.reputation > 100 {
				t.Fatalf("seed %d step %d: reputation = %d", seed, step, s.reputation)
			}
			cur := s.fleet.Ships()
			if len(cur) < len(prev) {
				t.Fatalf("seed %d step %d: fleet shrank", seed, step)
			}
			for i := range prev {
				if cur[i].ID != prev[i].ID || cur[i].Level < prev[i].Level || cur[i].Passengers < prev[i].Passengers {
					t.Fatalf("seed %d step %d: ship %d regressed %+v -> %+v", seed, step, i, prev[i], cur[i])
				}
			}
			prev = cur
		}
	}
}

func TestListenersOnlyOnSuccess(t *testing.T) {
	s := newTestState(9)
	var calls []Snapshot
	s.OnChange(func(snap Snapshot) { calls = append(calls, snap) })

	s.money = 100
	s.BuyShip(0, 0)
	s.UpgradeShip()
	s.Advertise()
	if len(calls) != 0 {
		t.Fatalf("listener called %d times on failures", len(calls))
	}

	s.money = 700
	s.BuyShip(0, 0)
	s.Advertise()
	s.CollectIncome()
	if len(calls) != 3 {
		t.Fatalf("listener called %d times, want 3", len(calls))
	}
	if calls[0].Money != 200 || calls[0].Ships != 1 {
		t.Errorf("first refresh = %+v, want money 200 ships 1", calls[0])
	}
}

func TestCanMatchesCheck(t *testing.T) {
	s := newTestState(10)
	s.money = 250
	if s.Can(ActionBuy) {
		t.Error("Can(buy) with 250")
	}
	if s.Can(ActionUpgrade) {
		t.Error("Can(upgrade) with no ships")
	}
	if !s.Can(ActionAdvertise) {
		t.Error("!Can(advertise) with 250")
	}
	if err := s.Check(Action("sell")); err == nil {
		t.Error("Check(sell) succeeded")
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %q, %v", a, got, err)
		}
	}
	if _, err := ParseAction("sell"); err == nil {
		t.Error("ParseAction(sell) succeeded")
	}
}
