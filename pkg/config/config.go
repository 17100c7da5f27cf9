// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/TanmayQuidich/ts-container/pkg/feeder"
	"github.com/TanmayQuidich/ts-container/pkg/framelog"
	"github.com/TanmayQuidich/ts-container/pkg/orchestrator"
	"github.com/TanmayQuidich/ts-container/pkg/stages/feed"
)

// Config represents the full configuration for ts-container.
type Config struct {
	// Input
	FrameDir    string `yaml:"frame_dir"`
	CameraID    string `yaml:"camera_id"`
	Extension   string `yaml:"extension"`
	StartIndex  uint64 `yaml:"start_index"`
	StartOffset uint64 `yaml:"start_offset"`

	// Output
	OutputPath string `yaml:"output"`
	FrameLog   string `yaml:"frame_log"`
	SummaryLog string `yaml:"summary_log"`
	Boundary   string `yaml:"boundary"`

	// Pacing
	FPS       int    `yaml:"fps"`
	MaxFrames uint64 `yaml:"max_frames"`

	// Frame handling
	KeyframeOnly bool            `yaml:"keyframe_only"`
	Keyframe     KeyframeConfig  `yaml:"keyframe"`
	Readiness    ReadinessConfig `yaml:"readiness"`

	// Metadata
	Metadata MetadataConfig `yaml:"metadata"`

	// Audio
	Audio AudioConfig `yaml:"audio"`

	// Mux
	Mux MuxConfig `yaml:"mux"`
}

// KeyframeConfig represents keyframe classification settings.
type KeyframeConfig struct {
	Mode      string `yaml:"mode"`
	Threshold int    `yaml:"threshold"`
}

// ReadinessConfig represents file readiness probing settings.
type ReadinessConfig struct {
	Attempts     int `yaml:"attempts"`
	DelayMs      int `yaml:"delay_ms"`
	RetryDelayMs int `yaml:"retry_delay_ms"`
}

// MetadataConfig represents the metadata store connection settings.
type MetadataConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// AudioConfig represents the RTP audio branch settings.
type AudioConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Port            int    `yaml:"port"`
	MulticastGroup  string `yaml:"multicast_group"`
	JitterLatencyMs int    `yaml:"jitter_latency_ms"`
	BitRate         int    `yaml:"bit_rate"`
}

// MuxConfig represents the MPEG-TS mux settings.
type MuxConfig struct {
	PATInterval   int `yaml:"pat_interval"`
	PCRInterval   int `yaml:"pcr_interval"`
	ProgramNumber int `yaml:"program_number"`
	PCRPID        int `yaml:"pcr_pid"`
	VideoPID      int `yaml:"video_pid"`
	AudioPID      int `yaml:"audio_pid"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Input
		Extension: "hevc",

		// Output
		Boundary: "gst",

		// Pacing
		FPS: 300,

		// Frame handling
		KeyframeOnly: true,
		Keyframe: KeyframeConfig{
			Mode:      "size",
			Threshold: 65536,
		},
		Readiness: ReadinessConfig{
			Attempts:     5,
			DelayMs:      2,
			RetryDelayMs: 100,
		},

		// Metadata
		Metadata: MetadataConfig{
			Addr:      "127.0.0.1:6379",
			TimeoutMs: 50,
		},

		// Audio
		Audio: AudioConfig{
			Enabled:         true,
			Port:            5004,
			MulticastGroup:  "239.168.227.217",
			JitterLatencyMs: 100,
			BitRate:         192000,
		},

		// Mux
		Mux: MuxConfig{
			PATInterval:   100,
			PCRInterval:   40,
			ProgramNumber: 1,
			PCRPID:        0x100,
			VideoPID:      0x101,
			AudioPID:      0x102,
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects configurations the feeder cannot run with. A config
// that fails here is a startup error, never a mid-run one.
func (c Config) Validate() error {
	if c.FrameDir == "" {
		return fmt.Errorf("frame_dir is required")
	}
	if c.CameraID == "" {
		return fmt.Errorf("camera_id is required")
	}
	if c.Extension == "" {
		return fmt.Errorf("extension is required")
	}
	if c.FrameLog == "" {
		return fmt.Errorf("frame_log is required")
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}

	switch c.Boundary {
	case "gst", "dump":
		if c.OutputPath == "" {
			return fmt.Errorf("output is required for the %s boundary", c.Boundary)
		}
	case "null":
	default:
		return fmt.Errorf("unknown boundary %q (want gst, dump or null)", c.Boundary)
	}

	switch c.Keyframe.Mode {
	case "size":
		if c.Keyframe.Threshold <= 0 {
			return fmt.Errorf("keyframe threshold must be positive, got %d", c.Keyframe.Threshold)
		}
	case "bitstream":
	default:
		return fmt.Errorf("unknown keyframe mode %q (want size or bitstream)", c.Keyframe.Mode)
	}

	if c.Readiness.Attempts < 1 {
		return fmt.Errorf("readiness attempts must be at least 1, got %d", c.Readiness.Attempts)
	}
	if c.Metadata.Enabled && c.Metadata.Addr == "" {
		return fmt.Errorf("metadata addr is required when metadata is enabled")
	}

	return nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		FrameDir:    c.FrameDir,
		CameraID:    c.CameraID,
		Extension:   c.Extension,
		OutputPath:  c.OutputPath,
		StartIndex:  c.StartIndex,
		StartOffset: c.StartOffset,
		TargetFPS:   c.FPS,
	}
}

// ToFeedConfig converts Config to feed.Config. An unset summary_log lands
// beside the frame log under the conventional per-camera name.
func (c Config) ToFeedConfig() feed.Config {
	summary := c.SummaryLog
	if summary == "" {
		summary = filepath.Join(filepath.Dir(c.FrameLog), framelog.SummaryFilename(c.CameraID))
	}

	return feed.Config{
		Feeder: feeder.Config{
			Directory:       c.FrameDir,
			CameraID:        c.CameraID,
			Extension:       c.Extension,
			TargetFPS:       c.FPS,
			KeyframeOnly:    c.KeyframeOnly,
			MaxFrames:       c.MaxFrames,
			ReadyAttempts:   c.Readiness.Attempts,
			ReadyDelay:      time.Duration(c.Readiness.DelayMs) * time.Millisecond,
			RetryDelay:      time.Duration(c.Readiness.RetryDelayMs) * time.Millisecond,
			MetadataTimeout: time.Duration(c.Metadata.TimeoutMs) * time.Millisecond,
		},
		FrameLog:   c.FrameLog,
		SummaryLog: summary,
	}
}
