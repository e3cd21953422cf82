package core

// RuntimeConfig contains the per-session parameters handed to a viewer.
// Backends fill it from the loaded configuration and the output surface size.
type RuntimeConfig struct {
	ScreenW  int     // Render target width in pixels
	ScreenH  int     // Render target height in pixels
	TickRate int     // Simulation ticks per second (default 60)
	FOV      float64 // Horizontal field of view in radians
	Workers  int     // Column bands rendered in parallel (<= 1 means sequential)
}

// ViewerState represents the current state of a viewer session.
type ViewerState struct {
	Camera   Camera // Current pose
	Ticks    int    // Ticks simulated since start
	HitCount int    // Columns that hit a wall in the last frame
}
