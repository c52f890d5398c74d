package systems

import (
	"github.com/automoto/skyball/components"
	"github.com/automoto/skyball/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// cameraSmoothing is the fraction of the remaining distance covered per frame.
const cameraSmoothing = 0.15

// UpdateCamera eases the overhead map toward the ship.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	shipEntry, ok := tags.Ship.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(shipEntry)
	target := math.NewVec2(body.Position.X(), body.Position.Z())

	camera.Position.X += (target.X - camera.Position.X) * cameraSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * cameraSmoothing
}
