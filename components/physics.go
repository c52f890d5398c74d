package components

import (
	"github.com/automoto/skyball/physics"
	"github.com/yohamta/donburi"
)

// BodyData is the rigid body driven by the flight controller.
type BodyData struct {
	*physics.RigidBody
}

var Body = donburi.NewComponentType[BodyData]()
