package components

import "github.com/yohamta/donburi"

// ZoneData names a trigger zone.
type ZoneData struct {
	Name string
}

var Zone = donburi.NewComponentType[ZoneData]()
