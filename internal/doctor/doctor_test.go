package doctor

import (
	"path/filepath"
	"testing"

	"speakdrill/internal/config"
)

func TestCheckOutputDirCreatesAndProbes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "recordings")
	r := checkOutputDir(dir)
	if !r.Pass {
		t.Fatalf("expected pass, got %+v", r)
	}
	if r := checkOutputDir(""); r.Pass {
		t.Fatalf("empty dir should fail")
	}
}

func TestCheckRecognizerWebSpeech(t *testing.T) {
	cfg, _ := config.Default()
	if r := checkRecognizer(cfg); !r.Pass {
		t.Fatalf("default webspeech should pass: %+v", r)
	}
	cfg.Recognizer.Endpoint = ""
	if r := checkRecognizer(cfg); r.Pass {
		t.Fatalf("missing endpoint should fail")
	}
}

func TestCheckRecognizerWhisperNeedsModel(t *testing.T) {
	cfg, _ := config.Default()
	cfg.Recognizer.Backend = config.BackendWhisper
	cfg.Recognizer.ModelPath = filepath.Join(t.TempDir(), "missing.bin")
	if r := checkRecognizer(cfg); r.Pass {
		t.Fatalf("missing model should fail")
	}
}

func TestCheckRecognizerUnknownBackend(t *testing.T) {
	cfg, _ := config.Default()
	cfg.Recognizer.Backend = "carrier-pigeon"
	if r := checkRecognizer(cfg); r.Pass {
		t.Fatalf("unknown backend should fail")
	}
}
