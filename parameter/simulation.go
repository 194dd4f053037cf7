package parameter

// Frame geometry (vertical video)
const (
	FrameWidth  = 1080
	FrameHeight = 1920
	FrameRate   = 60
)

// Boundary
const (
	BoundaryRadius = 528.0
	// BoundaryCenterX/Y use integer division of the frame size
	BoundaryCenterX = FrameWidth / 2
	BoundaryCenterY = FrameHeight / 2

	// BoundaryLifetime is the active window in seconds from simulation start
	BoundaryLifetime = 5.0

	// BoundaryColorTransition is the seconds per color fade
	BoundaryColorTransition = 2.0

	// BoundaryRingWidth in pixels
	BoundaryRingWidth = 6.0
)

// Bodies
const (
	InitialBodyCount = 2

	BodyRadiusMin = 4.8
	BodyRadiusMax = 24.0

	// BodyInitialSpeed in pixels per frame
	BodyInitialSpeed = 4.8
	// BodyBoostedSpeed applies once the boundary expires (4x initial)
	BodyBoostedSpeed = 19.2
)

// Collision cues
const (
	// CueDuration is the length in seconds of each audio slice
	CueDuration = 0.1
)

// Termination
const (
	// GraceSeconds rendered after the boundary expired and every body left the frame
	GraceSeconds = 5
	GraceFrames  = GraceSeconds * FrameRate
)

// Default seed of the reference run
const DefaultSeed = 12
