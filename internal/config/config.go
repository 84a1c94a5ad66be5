// Package config handles seascape configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene construction and animation tunables.
type SceneConfig struct {
	Seed int64 `yaml:"seed"` // 0 picks a time-based seed

	// Sea mesh resolution; the reference look is 300x300.
	SeaRadialSegments int `yaml:"sea_radial_segments"`
	SeaHeightSegments int `yaml:"sea_height_segments"`

	Waves WaveConfig `yaml:"waves"`

	FollowFactor     float64 `yaml:"follow_factor"`
	FrameRateNeutral bool    `yaml:"frame_rate_neutral"`
	InvertPointerY   bool    `yaml:"invert_pointer_y"`

	FogEnabled bool    `yaml:"fog_enabled"`
	FogNear    float32 `yaml:"fog_near"`
	FogFar     float32 `yaml:"fog_far"`

	Sun SunConfig `yaml:"sun"`
}

// SunConfig optionally moves the directional light. A zero elevation
// keeps the default sun.
type SunConfig struct {
	Longitude float64 `yaml:"longitude"` // degrees around the vertical axis
	Elevation float64 `yaml:"elevation"` // degrees above the horizon
}

// WaveConfig controls per-vertex wave state generation.
type WaveConfig struct {
	MaxAmplitude float64 `yaml:"max_amplitude"`
	Speed        float64 `yaml:"speed"`
	RandomSpeed  bool    `yaml:"random_speed"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
}

// AudioConfig holds ambient audio settings.
type AudioConfig struct {
	AmbientTrack  string  `yaml:"ambient_track"` // WAV file; empty disables audio
	MasterVolume  float64 `yaml:"master_volume"`
	AmbientVolume float64 `yaml:"ambient_volume"`
	Muted         bool    `yaml:"muted"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
	ShowFPS          bool   `yaml:"show_fps"`
	ShowBounds       bool   `yaml:"show_bounds"` // wireframe box around the boat
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			SeaRadialSegments: 300,
			SeaHeightSegments: 300,
			Waves: WaveConfig{
				MaxAmplitude: 3,
				Speed:        0.001,
				RandomSpeed:  false,
				MinSpeed:     0.016,
				MaxSpeed:     0.048,
			},
			FollowFactor:     0.01,
			FrameRateNeutral: false,
			InvertPointerY:   false,
			FogEnabled:       true,
			FogNear:          100,
			FogFar:           950,
		},
		Audio: AudioConfig{
			MasterVolume:  0.8,
			AmbientVolume: 0.7,
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
