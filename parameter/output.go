package parameter

// Output naming
const (
	DefaultOutput     = "vertical_ball_simulation.mp4"
	DefaultFramesDir  = "frames"
	DefaultSoundAsset = "sound.wav"

	// FrameKeyFormat names persisted frames, zero-padded so keys sort in frame order
	FrameKeyFormat = "frame_%05d"
	FrameExt       = ".png"
)

// Overlay text
const (
	OverlayCountFormat = "Active Balls: %d"
	OverlayCaption     = "Ball hitting the circle spawns a new one"
	OverlayMarginX     = 24
	OverlayCountY      = 24
	OverlayCaptionY    = 96
	// OverlayScale magnifies the bitmap face to approximate the 70px caption
	OverlayScale = 4
)

// Audio mixing
const (
	AudioSampleRate = 44100
	AudioChannels   = 2
	AudioPrecision  = 2 // bytes per sample, 16-bit PCM
	// AudioResampleQuality for assets recorded at another rate
	AudioResampleQuality = 4
)
