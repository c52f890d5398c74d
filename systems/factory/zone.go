package factory

import (
	"github.com/automoto/skyball/archetypes"
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateZone creates a named trigger zone on the arena floor.
func CreateZone(ecs *ecs.ECS, zone cfg.ZoneConfig) *donburi.Entry {
	entry := archetypes.MagnetZone.Spawn(ecs)

	x, y := cfg.Arena.ToSpace(zone.X, zone.Z)
	obj := resolv.NewObject(x, y, zone.Width, zone.Depth, tags.ResolvTrigger, zone.Name)
	obj.SetShape(resolv.NewRectangle(0, 0, zone.Width, zone.Depth))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Zone.SetValue(entry, components.ZoneData{Name: zone.Name})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return entry
}
