// Package hook runs the optional post-session command after artifacts
// are saved (for example, replaying the recording or opening the
// transcript).
package hook

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"speakdrill/internal/config"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
)

// Job carries the artifacts of a finished session into the hook.
type Job struct {
	AudioPath  string
	TextPath   string
	Transcript string
}

// Runner executes the configured hook command.
type Runner struct {
	cfg    *config.Config
	logger *logrus.Logger
}

func NewRunner(cfg *config.Config, logger *logrus.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// Enabled reports whether a hook command is configured.
func (r *Runner) Enabled() bool {
	return strings.TrimSpace(r.cfg.Hook.Command) != ""
}

// Run executes the hook with the artifact paths substituted for the
// ${audio} and ${text} placeholders. Args without placeholders get the
// audio path appended.
func (r *Runner) Run(ctx context.Context, job Job) error {
	argv, err := r.commandLine(job)
	if err != nil {
		return err
	}

	runCtx := ctx
	var cancel context.CancelFunc
	if r.cfg.Hook.TimeoutSec > 0 {
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(float64(time.Second)*r.cfg.Hook.TimeoutSec))
		defer cancel()
	}
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	for k, v := range r.cfg.Hook.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = append(cmd.Env,
		fmt.Sprintf("SPEAKDRILL_AUDIO=%s", job.AudioPath),
		fmt.Sprintf("SPEAKDRILL_TEXT=%s", job.TextPath),
		fmt.Sprintf("SPEAKDRILL_TRANSCRIPT=%s", job.Transcript),
	)

	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		r.logger.Infof("hook output: %s", strings.TrimSpace(string(out)))
	}
	if err != nil {
		return fmt.Errorf("hook failed: %w", err)
	}
	return nil
}

// commandLine builds the argv: hook.command split shell-style, then
// hook.args with placeholders expanded.
func (r *Runner) commandLine(job Job) ([]string, error) {
	argv, err := shlex.Split(r.cfg.Hook.Command)
	if err != nil {
		return nil, fmt.Errorf("parse hook.command: %w", err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("no hook.command configured")
	}
	substituted := false
	for _, a := range r.cfg.Hook.Args {
		expanded := expand(a, job)
		if expanded != a {
			substituted = true
		}
		argv = append(argv, expanded)
	}
	if !substituted {
		argv = append(argv, job.AudioPath)
	}
	return argv, nil
}

func expand(s string, job Job) string {
	s = strings.ReplaceAll(s, "${audio}", job.AudioPath)
	s = strings.ReplaceAll(s, "${text}", job.TextPath)
	s = strings.ReplaceAll(s, "${transcript}", job.Transcript)
	return s
}
