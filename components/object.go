package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's footprint in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space.
var Space = donburi.NewComponentType[resolv.Space]()

// TriggerContactsData tracks which trigger zones an entity is inside.
// Names are counted so overlapping zones with the same name enter and exit once.
type TriggerContactsData struct {
	Inside map[*resolv.Object]string
	Counts map[string]int
}

var TriggerContacts = donburi.NewComponentType[TriggerContactsData]()
