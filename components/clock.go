package components

import "github.com/yohamta/donburi"

// ClockData drives the fixed physics step from the variable frame tick.
type ClockData struct {
	Accumulator float64 // seconds not yet simulated
	Steps       int64   // physics ticks run so far
	Frames      int64
}

var Clock = donburi.NewComponentType[ClockData]()
