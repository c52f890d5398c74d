package components

import (
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/physics"
	"github.com/yohamta/donburi"
)

// ShipData binds a flight controller to its input latch.
type ShipData struct {
	Controller *flight.Controller
	Input      *flight.InputState
	Spawn      physics.Pose
}

var Ship = donburi.NewComponentType[ShipData]()
