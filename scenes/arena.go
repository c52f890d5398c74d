package scenes

import (
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/systems"
	factory2 "github.com/automoto/skyball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the flight sandbox: one ship over a floor of magnet zones.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
}

// NewArenaScene builds the world, spawning the ship with tuning and applying
// saved settings. saved may be nil.
func NewArenaScene(sc SceneChanger, tuning flight.Tuning, saved *systems.SavedSettings) (*ArenaScene, error) {
	as := &ArenaScene{sceneChanger: sc}
	if err := as.configure(tuning, saved); err != nil {
		return nil, err
	}
	return as, nil
}

func (as *ArenaScene) Update() {
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	as.ecs.Draw(screen)
}

// Close releases controllers and audio players.
func (as *ArenaScene) Close() {
	systems.CloseShips(as.ecs)
	systems.StopAllLoops(as.ecs)
}

func (as *ArenaScene) configure(tuning flight.Tuning, saved *systems.SavedSettings) error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, plays what the previous frame queued)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateShipInput)
	ecs.AddSystem(systems.UpdateTriggers)
	ecs.AddSystem(systems.UpdateFlight)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCamera)

	// Must run last so the latches cover every system above
	ecs.AddSystem(systems.EndInputTick)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	as.ecs = ecs

	systems.GetOrCreateSettings(ecs)
	systems.GetOrCreateAudio(ecs)
	systems.ApplySavedSettings(ecs, saved)

	factory2.CreateSpace(ecs, cfg.Arena.Width, cfg.Arena.Depth, cfg.Arena.CellSize)
	for _, zone := range cfg.Arena.Zones {
		factory2.CreateZone(ecs, zone)
	}
	factory2.CreateCamera(ecs)

	if _, err := factory2.CreateShip(ecs, tuning, systems.NewAudioSink(ecs)); err != nil {
		return errors.Wrap(err, "configure arena")
	}
	return nil
}
