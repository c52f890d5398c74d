package systems

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers moves each ship footprint to its body and reports trigger
// zone enter/exit edges to the controller.
func UpdateTriggers(e *ecs.ECS) {
	tags.Ship.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		body := components.Body.Get(entry)
		ship := components.Ship.Get(entry)
		contacts := components.TriggerContacts.Get(entry)

		x, y := cfg.Arena.ToSpace(body.Position.X(), body.Position.Z())
		obj.X = x - obj.W/2
		obj.Y = y - obj.H/2
		obj.Update()

		current := map[*resolv.Object]string{}
		if check := obj.Check(0, 0, tags.ResolvTrigger); check != nil {
			for _, zone := range check.ObjectsByTags(tags.ResolvTrigger) {
				if overlaps(obj.Object, zone) {
					current[zone] = zoneName(zone)
				}
			}
		}

		entered, exited := DiffContacts(contacts, current)
		for _, name := range exited {
			ship.Controller.TriggerExit(name)
		}
		for _, name := range entered {
			ship.Controller.TriggerEnter(name)
		}
	})
}

// DiffContacts replaces the tracked zones with current and returns the names
// whose count went from zero to one (entered) and from one to zero (exited).
func DiffContacts(contacts *components.TriggerContactsData, current map[*resolv.Object]string) (entered, exited []string) {
	for zone, name := range contacts.Inside {
		if _, still := current[zone]; still {
			continue
		}
		delete(contacts.Inside, zone)
		contacts.Counts[name]--
		if contacts.Counts[name] <= 0 {
			delete(contacts.Counts, name)
			exited = append(exited, name)
		}
	}
	for zone, name := range current {
		if _, known := contacts.Inside[zone]; known {
			continue
		}
		contacts.Inside[zone] = name
		contacts.Counts[name]++
		if contacts.Counts[name] == 1 {
			entered = append(entered, name)
		}
	}
	return entered, exited
}

// overlaps is the exact rectangle test; Check only narrows by grid cell.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func zoneName(obj *resolv.Object) string {
	if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() && entry.HasComponent(components.Zone) {
		return components.Zone.Get(entry).Name
	}
	return ""
}
