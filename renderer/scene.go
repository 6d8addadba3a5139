package renderer

import (
	"github.com/pthm-cable/cruise/config"
	"github.com/pthm-cable/cruise/fleet"
)

// Scene composes the full frame: water, sun, then every ship in fleet order.
type Scene struct {
	water *WaterBackground
	sun   *SunRenderer
	ships *ShipRenderer
}

// NewScene builds the scene renderers from ocean settings.
func NewScene(cfg config.OceanConfig) (*Scene, error) {
	water, err := NewWaterBackground(cfg)
	if err != nil {
		return nil, err
	}
	return &Scene{
		water: water,
		sun:   NewSunRenderer(cfg),
		ships: NewShipRenderer(cfg.SmokePuffs),
	}, nil
}

// Draw redraws the whole scene. It reads its inputs and never mutates them.
func (s *Scene) Draw(c Canvas, f Frame, ships []fleet.Ship) {
	s.water.Draw(c, f)
	s.sun.Draw(c, f)
	for _, ship := range ships {
		s.ships.Draw(c, ship, f.Elapsed)
	}
}
