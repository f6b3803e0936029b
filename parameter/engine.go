package parameter

import "time"

// Frame Pipeline
const (
	// MaxRenderCount is the ring and instance buffer capacity per feature
	MaxRenderCount = 51200

	// Duration is the lifetime of a floating record in seconds
	Duration float32 = 1.0

	// ThreadGroupSize is the number of records per compute dispatch group
	ThreadGroupSize = 64

	// FPS is the target frame rate of the demo loop
	FPS = 60

	// FrameUpdateInterval is the frame interval at FPS
	FrameUpdateInterval = time.Second / FPS

	// StatusInterval is how often the count and FPS readout refreshes
	StatusInterval = time.Second
)
