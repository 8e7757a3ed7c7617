package hook

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"speakdrill/internal/config"
	"speakdrill/internal/logging"
)

func TestCommandLineExpandsPlaceholders(t *testing.T) {
	cfg, _ := config.Default()
	cfg.Hook.Command = "afplay"
	cfg.Hook.Args = []string{"${audio}"}

	r := NewRunner(cfg, logging.NewTestLogger())
	argv, err := r.commandLine(Job{AudioPath: "/out/task2.wav", TextPath: "/out/task2.txt"})
	if err != nil {
		t.Fatalf("commandLine: %v", err)
	}
	if len(argv) != 2 || argv[0] != "afplay" || argv[1] != "/out/task2.wav" {
		t.Fatalf("argv got %v", argv)
	}
}

func TestCommandLineAppendsAudioWithoutPlaceholders(t *testing.T) {
	cfg, _ := config.Default()
	cfg.Hook.Command = "open -R"

	r := NewRunner(cfg, logging.NewTestLogger())
	argv, err := r.commandLine(Job{AudioPath: "/out/task1.wav"})
	if err != nil {
		t.Fatalf("commandLine: %v", err)
	}
	if len(argv) != 3 || argv[0] != "open" || argv[1] != "-R" || argv[2] != "/out/task1.wav" {
		t.Fatalf("argv got %v", argv)
	}
}

func TestEnabled(t *testing.T) {
	cfg, _ := config.Default()
	r := NewRunner(cfg, logging.NewTestLogger())
	if r.Enabled() {
		t.Fatalf("hook should be disabled by default")
	}
	cfg.Hook.Command = "/bin/echo"
	if !r.Enabled() {
		t.Fatalf("hook should be enabled")
	}
}

func TestRunExecutesCommand(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")
	cfg, _ := config.Default()
	cfg.Hook.Command = "/bin/sh"
	cfg.Hook.Args = []string{"-c", "touch " + marker}

	r := NewRunner(cfg, logging.NewTestLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Run(ctx, Job{AudioPath: "a.wav", TextPath: "a.txt"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("hook did not run: %v", err)
	}
}
