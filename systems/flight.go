package systems

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the variable frame time. Ebiten runs Update at a fixed TPS,
// so this is the tick length.
func frameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateFlight runs the frame tick of every ship controller.
func UpdateFlight(e *ecs.ECS) {
	dt := frameDelta()
	tags.Ship.Each(e.World, func(entry *donburi.Entry) {
		components.Ship.Get(entry).Controller.Update(dt)
	})
}

// UpdatePhysics runs as many fixed physics steps as the elapsed frame time
// covers: controller forces then body integration.
func UpdatePhysics(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	clock.Frames++

	steps := AdvanceClock(clock, frameDelta(), cfg.Physics.FixedStep, cfg.Physics.MaxSubSteps)
	for i := 0; i < steps; i++ {
		tags.Ship.Each(e.World, func(entry *donburi.Entry) {
			components.Ship.Get(entry).Controller.FixedUpdate()
			components.Body.Get(entry).Integrate(cfg.Physics.FixedStep)
		})
	}
}

// AdvanceClock adds dt to the accumulator and returns how many fixed steps
// are due, at most maxSteps. Time beyond the cap is dropped.
func AdvanceClock(clock *components.ClockData, dt, step float64, maxSteps int) int {
	if step <= 0 || dt <= 0 {
		return 0
	}
	clock.Accumulator += dt
	steps := 0
	// Residue within a nanosecond of a full step counts as one.
	for clock.Accumulator >= step-1e-9 && steps < maxSteps {
		clock.Accumulator -= step
		steps++
	}
	if steps == maxSteps && clock.Accumulator > step {
		clock.Accumulator = 0
	}
	if clock.Accumulator < 0 {
		clock.Accumulator = 0
	}
	clock.Steps += int64(steps)
	return steps
}

// EndInputTick clears the discrete action latches once the frame is consumed.
// Must run last.
func EndInputTick(e *ecs.ECS) {
	tags.Ship.Each(e.World, func(entry *donburi.Entry) {
		components.Ship.Get(entry).Input.EndTick()
	})
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
