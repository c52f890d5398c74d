package factory

import (
	"github.com/automoto/skyball/archetypes"
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/physics"
	"github.com/automoto/skyball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShip spawns the player ship with its body, controller and footprint.
func CreateShip(ecs *ecs.ECS, tuning flight.Tuning, sink flight.AudioSink) (*donburi.Entry, error) {
	spawn := physics.Pose{
		Position:    mgl64.Vec3{cfg.Ship.SpawnX, cfg.Ship.SpawnY, cfg.Ship.SpawnZ},
		Orientation: mgl64.QuatIdent(),
	}
	body := physics.NewRigidBody(spawn, cfg.Ship.Mass, cfg.Ship.Inertia)
	body.LinearDrag = cfg.Ship.LinearDrag
	body.AngularDrag = cfg.Ship.AngularDrag
	body.MaxSpeed = cfg.Ship.MaxSpeed
	body.MaxAngularSpeed = cfg.Ship.MaxAngularSpeed

	input := flight.NewInputState()
	controller, err := flight.New(input, body, tuning, sink)
	if err != nil {
		return nil, errors.Wrap(err, "create ship")
	}

	ship := archetypes.Ship.Spawn(ecs)
	components.Ship.SetValue(ship, components.ShipData{
		Controller: controller,
		Input:      input,
		Spawn:      spawn,
	})
	components.Body.SetValue(ship, components.BodyData{RigidBody: body})
	components.TriggerContacts.SetValue(ship, components.TriggerContactsData{
		Inside: map[*resolv.Object]string{},
		Counts: map[string]int{},
	})

	w, d := cfg.Ship.FootprintWidth, cfg.Ship.FootprintDepth
	x, y := cfg.Arena.ToSpace(spawn.Position.X(), spawn.Position.Z())
	obj := resolv.NewObject(x-w/2, y-d/2, w, d, tags.ResolvShip)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	obj.Data = ship
	components.Object.SetValue(ship, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return ship, nil
}
