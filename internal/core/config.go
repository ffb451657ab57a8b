package core

// RuntimeConfig is what the platform tells the engine about the terminal.
type RuntimeConfig struct {
	ScreenW  int // columns available for the game screen
	ScreenH  int // rows available for the game screen
	TickRate int // input polls per second
}

// DefaultConfig is a classic 80x24 terminal polled at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}
