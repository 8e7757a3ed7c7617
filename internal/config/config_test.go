package config

import (
	"os"
	"testing"
)

func TestEnvOverrides(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	cfg.Paths.ConfigPath = "/tmp/config" // avoid creation

	t.Setenv("SPEAKDRILL_OUTPUT_DIR", "/tmp/drills")
	t.Setenv("SPEAKDRILL_BACKEND", "Whisper")
	t.Setenv("SPEAKDRILL_API_KEY", "k-123")
	t.Setenv("SPEAKDRILL_LOG_LEVEL", "debug")
	t.Setenv("SPEAKDRILL_LOG_FORMAT", "json")

	applyEnvOverrides(cfg)

	if cfg.Session.OutputDir != "/tmp/drills" {
		t.Fatalf("output dir override failed: %q", cfg.Session.OutputDir)
	}
	if cfg.Recognizer.Backend != BackendWhisper || cfg.Recognizer.APIKey != "k-123" {
		t.Fatalf("recognizer overrides failed: %+v", cfg.Recognizer)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging overrides failed: %+v", cfg.Logging)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.toml"

	cfg, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	cfg.Paths.ConfigPath = path
	cfg.Session.OutputDir = "/tmp/recordings"
	cfg.Recognizer.Language = "fr-FR"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Session.OutputDir != "/tmp/recordings" {
		t.Fatalf("expected output dir to persist")
	}
	if loaded.Recognizer.Language != "fr-FR" {
		t.Fatalf("expected language to persist")
	}

	// cleanup to avoid residue
	_ = os.Remove(path)
}

func TestLoadWritesTemplateWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.toml"

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Recognizer.Backend != BackendWebSpeech {
		t.Fatalf("default backend got %q", cfg.Recognizer.Backend)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}
}
