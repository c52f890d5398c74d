package tags

import (
	"github.com/automoto/skyball/flight"
	"github.com/yohamta/donburi"
)

var (
	Ship       = donburi.NewTag().SetName("Ship")
	MagnetZone = donburi.NewTag().SetName("MagnetZone")
)

// Resolv tags for trigger overlap
const (
	ResolvShip          = "Ship"
	ResolvTrigger       = "trigger"
	ResolvMagnetTrigger = flight.MagnetTriggerName
)
