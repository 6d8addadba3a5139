// Package fleet owns the registry of purchased ships.
//
// Ships are stored as ECS entities so aggregate reads (total passengers,
// income per tick) are plain component queries. The registry keeps its own
// entity list to preserve purchase order for rendering and selection.
package fleet

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cruise/components"
	"github.com/pthm-cable/cruise/config"
)

// Ship is a read-only snapshot of one registry entry.
type Ship struct {
	ID         uint32
	X, Y       float32
	Level      int
	Passengers int
	Color      components.Color
}

// Income returns the ship's contribution to one income tick.
func (s Ship) Income() int64 {
	return int64(s.Passengers) * int64(s.Level)
}

// Registry is the ordered, append-only collection of ships.
type Registry struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   config.ShipsConfig

	shipMapper *ecs.Map4[
		components.Identity,
		components.Position,
		components.Hull,
		components.Livery,
	]
	idMap      *ecs.Map1[components.Identity]
	posMap     *ecs.Map1[components.Position]
	hullMap    *ecs.Map1[components.Hull]
	liveryMap  *ecs.Map1[components.Livery]
	hullFilter *ecs.Filter1[components.Hull]

	order  []ecs.Entity
	lastID uint32
}

// NewRegistry creates an empty registry drawing randomness from rng.
func NewRegistry(cfg config.ShipsConfig, rng *rand.Rand) *Registry {
	world := ecs.NewWorld()
	return &Registry{
		world: world,
		rng:   rng,
		cfg:   cfg,
		shipMapper: ecs.NewMap4[
			components.Identity,
			components.Position,
			components.Hull,
			components.Livery,
		](world),
		idMap:      ecs.NewMap1[components.Identity](world),
		posMap:     ecs.NewMap1[components.Position](world),
		hullMap:    ecs.NewMap1[components.Hull](world),
		liveryMap:  ecs.NewMap1[components.Livery](world),
		hullFilter: ecs.NewFilter1[components.Hull](world),
	}
}

// Add appends a new level-1 ship at (x, y) with a random passenger
// capacity and livery. It always succeeds.
func (r *Registry) Add(x, y float32) Ship {
	r.lastID++

	id := components.Identity{ID: r.lastID}
	pos := components.Position{X: x, Y: y}
	hull := components.Hull{Level: 1, Passengers: r.cfg.InitialPassengers.Sample(r.rng)}
	livery := components.Livery{Color: RandomLivery(r.rng, r.cfg.Saturation, r.cfg.Lightness)}

	entity := r.shipMapper.NewEntity(&id, &pos, &hull, &livery)
	r.order = append(r.order, entity)

	return r.snapshot(entity)
}

// Len returns the number of ships.
func (r *Registry) Len() int {
	return len(r.order)
}

// LastID returns the most recently assigned ship ID (0 if none).
func (r *Registry) LastID() uint32 {
	return r.lastID
}

// At returns the ship at purchase index i.
func (r *Registry) At(i int) Ship {
	return r.snapshot(r.order[i])
}

// Ships returns a snapshot of all ships in purchase order.
func (r *Registry) Ships() []Ship {
	ships := make([]Ship, len(r.order))
	for i, e := range r.order {
		ships[i] = r.snapshot(e)
	}
	return ships
}

// Upgrade raises the level of the ship at index i by one and adds
// passengers. Negative passenger gains are ignored.
func (r *Registry) Upgrade(i int, passengers int) Ship {
	e := r.order[i]
	hull := r.hullMap.Get(e)
	hull.Level++
	if passengers > 0 {
		hull.Passengers += passengers
	}
	return r.snapshot(e)
}

// AddPassengers increases the passenger capacity of the ship at index i.
// Negative amounts are ignored.
func (r *Registry) AddPassengers(i int, n int) {
	if n <= 0 {
		return
	}
	r.hullMap.Get(r.order[i]).Passengers += n
}

// TotalPassengers sums passenger capacity over all ships.
func (r *Registry) TotalPassengers() int {
	total := 0
	query := r.hullFilter.Query()
	for query.Next() {
		hull := query.Get()
		total += hull.Passengers
	}
	return total
}

// IncomePerTick sums passengers x level over all ships.
func (r *Registry) IncomePerTick() int64 {
	var total int64
	query := r.hullFilter.Query()
	for query.Next() {
		hull := query.Get()
		total += hull.Income()
	}
	return total
}

// snapshot copies the components of e into a Ship value.
func (r *Registry) snapshot(e ecs.Entity) Ship {
	id := r.idMap.Get(e)
	pos := r.posMap.Get(e)
	hull := r.hullMap.Get(e)
	livery := r.liveryMap.Get(e)
	return Ship{
		ID:         id.ID,
		X:          pos.X,
		Y:          pos.Y,
		Level:      hull.Level,
		Passengers: hull.Passengers,
		Color:      livery.Color,
	}
}
