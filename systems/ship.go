package systems

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/logger"
	"github.com/automoto/skyball/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShipInput copies the polled input into each ship's latch and fires
// the discrete actions. Must run AFTER UpdateInput.
func UpdateShipInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	tags.Ship.Each(e.World, func(entry *donburi.Entry) {
		ship := components.Ship.Get(entry)
		ship.Input.Set(flight.ControlInput{
			PitchYaw:  mgl64.Vec2{input.StickX, input.StickY},
			IsRolling: input.Current[cfg.ActionRoll],
			Booster:   input.Booster,
			Reverse:   input.Reverse,
		})

		if GetAction(input, cfg.ActionHyperspeed).JustPressed {
			ship.Input.PressHyperspeed()
		}
		if GetAction(input, cfg.ActionBurst).JustPressed {
			ship.Input.PressBurst()
		}
		if GetAction(input, cfg.ActionReset).JustPressed {
			ResetShip(e, entry)
		}
	})
}

// ResetShip puts the ship back at its spawn with a fresh controller.
func ResetShip(e *ecs.ECS, entry *donburi.Entry) {
	ship := components.Ship.Get(entry)
	body := components.Body.Get(entry)

	ship.Controller.Close()
	body.Reset(ship.Spawn)

	controller, err := flight.New(ship.Input, body.RigidBody, ship.Controller.Tuning(), NewAudioSink(e))
	if err != nil {
		logger.L().Error("ship reset failed", "err", err)
		return
	}
	ship.Controller = controller

	contacts := components.TriggerContacts.Get(entry)
	clear(contacts.Inside)
	clear(contacts.Counts)
	StopAllLoops(e)
	logger.L().Info("ship reset")
}

// CloseShips unsubscribes every controller, used when the scene goes away.
func CloseShips(e *ecs.ECS) {
	tags.Ship.Each(e.World, func(entry *donburi.Entry) {
		components.Ship.Get(entry).Controller.Close()
	})
}
