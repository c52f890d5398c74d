package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/skyball/components"
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	shipEntry, ok := tags.Ship.First(e.World)
	if !ok {
		return
	}
	ship := components.Ship.Get(shipEntry)
	body := components.Body.Get(shipEntry)
	clock := GetOrCreateClock(e)

	c := ship.Controller
	s := c.State()
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  profile %s  steps %d\n", ebiten.ActualTPS(), settings.Profile, clock.Steps)
	fmt.Fprintf(&b, "phase %s  charge %.2f  speed %.1f\n", s.Phase, s.ChargeUp, body.Speed())
	fmt.Fprintf(&b, "magnet %t  strafe %t  cooldown %t\n", s.MagnetActive, s.Strafing, s.BurstCoolingDown)
	if left, ok := c.TimerRemaining(flight.TimerHyperspeedPrepare); ok {
		fmt.Fprintf(&b, "prepare %.2fs\n", left)
	}
	b.WriteString("modes " + activeModes(c.Modes()) + "\n")
	b.WriteString("F2 profile  F3 debug  R reset")

	ebitenutil.DebugPrint(screen, b.String())
}

func activeModes(m flight.Modes) string {
	named := []struct {
		on   bool
		name string
	}{
		{m.PitchingUp, "pitch-up"},
		{m.PitchingDown, "pitch-down"},
		{m.YawingLeft, "yaw-left"},
		{m.YawingRight, "yaw-right"},
		{m.RollingLeft, "roll-left"},
		{m.RollingRight, "roll-right"},
		{m.Reversing, "reverse"},
		{m.StrafingUp, "strafe-up"},
		{m.StrafingDown, "strafe-down"},
		{m.StrafingLeft, "strafe-left"},
		{m.StrafingRight, "strafe-right"},
		{m.Bursting, "burst"},
		{m.Jumping, "jump"},
	}
	var out []string
	for _, n := range named {
		if n.on {
			out = append(out, n.name)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, " ")
}
