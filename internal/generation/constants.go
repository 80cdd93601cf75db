package generation

import "time"

const (
	// DefaultTimeout covers quick request/response calls.
	DefaultTimeout = 30 * time.Second
	// LongTimeout covers image generation (up to 90s upstream).
	LongTimeout = 90 * time.Second
	// ReconstructTimeout covers 3D reconstruction jobs (3min).
	ReconstructTimeout = 3 * time.Minute
)
