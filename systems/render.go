package systems

import (
	"image/color"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// shipMarkerLength is the heading line drawn from the ship, in world units.
const shipMarkerLength = 12.0

// DrawArena draws the overhead map: trigger zones and the ship with its heading.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Space)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := cfg.Arena.MapScale
	toScreen := func(x, z float64) (float32, float32) {
		return float32(float64(width)/2 + (x-camera.Position.X)*scale),
			float32(float64(height)/2 - (z-camera.Position.Y)*scale)
	}

	tags.MagnetZone.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		// Space coordinates back to world XZ
		x := obj.X - float64(cfg.Arena.Width)/2
		z := obj.Y - float64(cfg.Arena.Depth)/2
		sx, sy := toScreen(x, z+obj.H)
		w, h := float32(obj.W*scale), float32(obj.H*scale)
		vector.FillRect(screen, sx, sy, w, h, color.RGBA{R: 60, G: 20, B: 80, A: 255}, false)
		vector.StrokeRect(screen, sx, sy, w, h, 1, cfg.Magenta, false)
	})

	tags.Ship.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		ship := components.Ship.Get(entry)
		basis := body.Basis()

		px, py := toScreen(body.Position.X(), body.Position.Z())
		hx, hy := toScreen(
			body.Position.X()+basis.Forward.X()*shipMarkerLength,
			body.Position.Z()+basis.Forward.Z()*shipMarkerLength,
		)
		c := shipColor(ship.Controller.State())
		vector.StrokeLine(screen, px, py, hx, hy, 2, c, true)
		vector.FillCircle(screen, px, py, 4, c, true)
	})
}

func shipColor(s flight.FlightState) color.Color {
	switch {
	case s.Phase == flight.PhaseActive:
		return cfg.Orange
	case s.Phase == flight.PhasePreparing:
		return cfg.Yellow
	case s.MagnetActive:
		return cfg.Magenta
	case s.Strafing:
		return cfg.DarkBlue
	}
	return cfg.LightBlue
}
