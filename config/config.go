package config

import (
	"image/color"

	"github.com/automoto/skyball/flight"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PhysicsConfig contains the fixed-step integration settings
type PhysicsConfig struct {
	FixedStep   float64 // seconds per physics tick
	MaxSubSteps int     // physics ticks run at most per frame
}

// ShipConfig contains the ship body configuration
type ShipConfig struct {
	Mass            float64
	Inertia         float64
	LinearDrag      float64
	AngularDrag     float64
	MaxSpeed        float64
	MaxAngularSpeed float64

	// Footprint on the XZ plane used for trigger zones
	FootprintWidth float64
	FootprintDepth float64

	SpawnX, SpawnY, SpawnZ float64
}

// ZoneConfig describes one trigger zone on the XZ plane
type ZoneConfig struct {
	X, Z         float64
	Width, Depth float64
	Name         string
}

// ArenaConfig contains the arena layout
type ArenaConfig struct {
	// XZ extent of the collision space
	Width    int
	Depth    int
	CellSize int
	Zones    []ZoneConfig
	// Screen pixels per world unit on the overhead map
	MapScale float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw the debug text overlay
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Ship ShipConfig
var Arena ArenaConfig
var Debug DebugConfig

// Flight is the flight tuning, replaced by -tuning at startup.
var Flight flight.Tuning

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Space     = color.RGBA{R: 8, G: 10, B: 24, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		FixedStep:   0.02, // 50 Hz
		MaxSubSteps: 5,
	}

	Ship = ShipConfig{
		Mass:            1,
		Inertia:         1,
		LinearDrag:      0.5,
		AngularDrag:     3,
		MaxSpeed:        400,
		MaxAngularSpeed: 7,

		FootprintWidth: 4,
		FootprintDepth: 4,

		SpawnX: 0,
		SpawnY: 10,
		SpawnZ: -200,
	}

	Arena = ArenaConfig{
		Width:    1000,
		Depth:    1000,
		CellSize: 16,
		MapScale: 0.3,
		Zones: []ZoneConfig{
			{X: -60, Z: -60, Width: 120, Depth: 120, Name: flight.MagnetTriggerName},
			{X: 200, Z: 150, Width: 80, Depth: 200, Name: flight.MagnetTriggerName},
		},
	}

	Debug = DebugConfig{Overlay: true}

	Flight = flight.DefaultTuning()
}

// ToSpace maps world XZ to collision space coordinates, which start at the
// arena corner.
func (a ArenaConfig) ToSpace(x, z float64) (float64, float64) {
	return x + float64(a.Width)/2, z + float64(a.Depth)/2
}
