// Package doctor checks the local environment before a practice
// session.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"speakdrill/internal/config"
)

// Result represents a diagnostic check.
type Result struct {
	Name   string
	Pass   bool
	Detail string
}

// Run executes doctor checks.
func Run(cfg *config.Config) []Result {
	results := []Result{
		checkFile("config path", cfg.Paths.ConfigPath),
		checkOutputDir(cfg.Session.OutputDir),
		checkRecognizer(cfg),
		checkPortAudioPkgConfig(),
		checkPortAudio(),
	}
	if cfg.Session.CatalogPath != "" {
		results = append(results, checkFile("catalog file", cfg.Session.CatalogPath))
	}
	return results
}

func checkFile(label, path string) Result {
	if path == "" {
		return Result{Name: label, Pass: false, Detail: "not set"}
	}
	if _, err := os.Stat(os.ExpandEnv(path)); err != nil {
		return Result{Name: label, Pass: false, Detail: err.Error()}
	}
	return Result{Name: label, Pass: true, Detail: path}
}

func checkOutputDir(dir string) Result {
	label := "output dir"
	if dir == "" {
		return Result{Name: label, Pass: false, Detail: "not set"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{Name: label, Pass: false, Detail: err.Error()}
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return Result{Name: label, Pass: false, Detail: fmt.Sprintf("not writable: %v", err)}
	}
	_ = os.Remove(probe)
	return Result{Name: label, Pass: true, Detail: dir}
}

func checkRecognizer(cfg *config.Config) Result {
	label := "recognizer"
	switch cfg.Recognizer.Backend {
	case "", config.BackendWebSpeech:
		if strings.TrimSpace(cfg.Recognizer.Endpoint) == "" {
			return Result{Name: label, Pass: false, Detail: "recognizer.endpoint not set"}
		}
		return Result{Name: label, Pass: true, Detail: "webspeech: " + cfg.Recognizer.Endpoint}
	case config.BackendWhisper:
		if _, err := os.Stat(os.ExpandEnv(cfg.Recognizer.ModelPath)); err != nil {
			return Result{Name: label, Pass: false, Detail: fmt.Sprintf("model missing: %v (run: speakdrill setup)", err)}
		}
		return Result{Name: label, Pass: true, Detail: "whisper: " + cfg.Recognizer.ModelPath}
	default:
		return Result{Name: label, Pass: false, Detail: fmt.Sprintf("unknown backend %q", cfg.Recognizer.Backend)}
	}
}

func checkPortAudioPkgConfig() Result {
	pkg, err := exec.LookPath("pkg-config")
	if err != nil {
		return Result{Name: "pkg-config", Pass: false, Detail: "pkg-config not found (brew install pkg-config)"}
	}
	cmd := exec.Command(pkg, "--exists", "portaudio-2.0")
	if err := cmd.Run(); err != nil {
		return Result{Name: "portaudio", Pass: false, Detail: "portaudio-2.0 not found (brew install portaudio)"}
	}
	versionCmd := exec.Command(pkg, "--modversion", "portaudio-2.0")
	if out, err := versionCmd.Output(); err == nil {
		return Result{Name: "portaudio", Pass: true, Detail: strings.TrimSpace(string(out))}
	}
	return Result{Name: "portaudio", Pass: true, Detail: "found via pkg-config"}
}
