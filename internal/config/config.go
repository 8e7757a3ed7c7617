package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Recognizer backends.
const (
	BackendWebSpeech = "webspeech"
	BackendWhisper   = "whisper"
)

const (
	// DefaultOutputDir is the relative directory session artifacts land
	// in when no output dir is configured.
	DefaultOutputDir = "celpip_recordings"

	defaultEndpoint      = "http://www.google.com/speech-api/v2/recognize"
	defaultStateDirLinux = ".local/state/speakdrill"
	defaultConfigDir     = ".config/speakdrill"
)

// Config holds user configuration loaded from TOML.
type Config struct {
	Audio struct {
		DeviceName   string  `toml:"device_name"`
		SampleRate   int     `toml:"sample_rate"`
		Channels     int     `toml:"channels"`
		CalibrateSec float64 `toml:"calibrate_sec"`
	} `toml:"audio"`

	Recognizer struct {
		Backend    string  `toml:"backend"` // webspeech, whisper
		Language   string  `toml:"language"`
		APIKey     string  `toml:"api_key"`
		Endpoint   string  `toml:"endpoint"`
		ModelPath  string  `toml:"model_path"` // whisper backend
		TimeoutSec float64 `toml:"timeout_sec"`
	} `toml:"recognizer"`

	Session struct {
		OutputDir   string `toml:"output_dir"`
		CatalogPath string `toml:"catalog_path"` // optional TOML task file
	} `toml:"session"`

	Hook struct {
		Command    string            `toml:"command"` // run after artifacts are saved
		Args       []string          `toml:"args"`
		TimeoutSec float64           `toml:"timeout_sec"`
		Env        map[string]string `toml:"env"`
	} `toml:"hook"`

	Logging struct {
		Level  string `toml:"level"`  // debug, info, warn, error
		Format string `toml:"format"` // text, json
		Stdout bool   `toml:"stdout"`
	} `toml:"logging"`

	Paths struct {
		StateDir   string `toml:"state_dir"`
		LogPath    string `toml:"log_path"`
		ConfigPath string `toml:"-"`
	} `toml:"paths"`
}

// Default returns Config populated with defaults.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	stateDir := filepath.Join(home, defaultStateDirLinux)
	// macOS prefers ~/Library/Application Support/speakdrill for state/logs
	if isMac() {
		stateDir = filepath.Join(home, "Library", "Application Support", "speakdrill")
	}

	cfg := &Config{}

	cfg.Audio.SampleRate = 16000
	cfg.Audio.Channels = 1
	cfg.Audio.CalibrateSec = 1.0

	cfg.Recognizer.Backend = BackendWebSpeech
	cfg.Recognizer.Language = "en-US"
	cfg.Recognizer.Endpoint = defaultEndpoint
	cfg.Recognizer.ModelPath = filepath.Join(stateDir, "models", "ggml-small-q5_1.bin")
	cfg.Recognizer.TimeoutSec = 30

	cfg.Session.OutputDir = DefaultOutputDir

	cfg.Hook.Env = map[string]string{}
	cfg.Hook.TimeoutSec = 10

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"

	cfg.Paths.StateDir = stateDir
	cfg.Paths.LogPath = filepath.Join(stateDir, "speakdrill.log")

	return cfg, nil
}

// Load loads config from file, applying defaults. A missing file is
// created from the defaults so the user has a template to edit.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, defaultConfigDir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, err
			}
			if err := Save(cfg, path); err != nil {
				return nil, err
			}
			cfg.Paths.ConfigPath = path
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Paths.ConfigPath = path
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes cfg to path.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o600)
}

func isMac() bool {
	return runtime.GOOS == "darwin"
}

// MustStatePaths ensures state dirs exist.
func MustStatePaths(cfg *Config) error {
	for _, p := range []string{cfg.Paths.StateDir, filepath.Dir(cfg.Paths.LogPath)} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(p, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SPEAKDRILL_OUTPUT_DIR"); v != "" {
		cfg.Session.OutputDir = v
	}
	if v := os.Getenv("SPEAKDRILL_BACKEND"); v != "" {
		cfg.Recognizer.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("SPEAKDRILL_API_KEY"); v != "" {
		cfg.Recognizer.APIKey = v
	}
	if v := os.Getenv("SPEAKDRILL_ENDPOINT"); v != "" {
		cfg.Recognizer.Endpoint = v
	}
	if v := os.Getenv("SPEAKDRILL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SPEAKDRILL_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
