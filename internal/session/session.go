// Package session runs one complete practice session: task selection,
// preparation countdown, recording, transcription, persistence.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"speakdrill/internal/audio"
	"speakdrill/internal/catalog"
	"speakdrill/internal/hook"
	"speakdrill/internal/recognize"
	"speakdrill/internal/store"
	"speakdrill/internal/timer"

	"github.com/sirupsen/logrus"
)

// Phase names the step of a session. Fatal errors carry the phase that
// produced them so the user knows what to retry.
type Phase string

const (
	PhaseSelect     Phase = "task selection"
	PhasePrepare    Phase = "preparation"
	PhaseRecord     Phase = "recording"
	PhaseTranscribe Phase = "transcription"
	PhaseSave       Phase = "saving"
)

// PhaseError is a fatal session error tagged with the phase it occurred
// in.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

func fail(phase Phase, err error) error {
	return &PhaseError{Phase: phase, Err: err}
}

// Request describes one session run.
type Request struct {
	TaskID int
	// Prompt is the question to answer. Blank falls back to the task's
	// first sample prompt.
	Prompt    string
	OutputDir string
}

// Result reports a completed session.
type Result struct {
	Task       catalog.Task
	Prompt     string
	Transcript string
	AudioPath  string
	TextPath   string
	StartedAt  time.Time
}

// Controller orchestrates the session phases. The flow is strictly
// linear: each phase finishes its blocking I/O before the next begins.
type Controller struct {
	Catalog    *catalog.Catalog
	Timer      *timer.Timer
	Recorder   audio.Recorder
	Recognizer recognize.Recognizer
	Hook       *hook.Runner
	Logger     *logrus.Logger

	// Out receives the user-facing session narration. Defaults to
	// stdout.
	Out io.Writer

	// Now is swappable for tests; artifacts are named from it.
	Now func() time.Time
}

// Run executes one session. Recoverable transcription outcomes (no
// speech, service error) are persisted as sentinel text; everything else
// aborts with a PhaseError.
func (c *Controller) Run(ctx context.Context, req Request) (*Result, error) {
	task, err := c.Catalog.Get(req.TaskID)
	if err != nil {
		return nil, fail(PhaseSelect, err)
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = task.SamplePrompts[0]
	}
	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	startedAt := c.now()
	c.Logger.Infof("session start: task=%d %q prompt=%q", task.ID, task.Name, prompt)

	fmt.Fprintf(c.out(), "\nQuestion:\n%s\n\n", prompt)
	if task.PrepSeconds > 0 {
		fmt.Fprintf(c.out(), "You have %d seconds to prepare...\n", task.PrepSeconds)
	}
	if err := c.Timer.Countdown(ctx, task.PrepSeconds, "Preparation"); err != nil {
		return nil, fail(PhasePrepare, err)
	}

	buf, err := c.Recorder.Record(ctx, time.Duration(task.SpeakSeconds)*time.Second)
	if err != nil {
		return nil, fail(PhaseRecord, err)
	}
	c.Logger.Infof("captured %s of audio @ %d Hz", buf.Duration(), buf.SampleRate)

	fmt.Fprintln(c.out(), "Transcribing...")
	res, err := c.Recognizer.Transcribe(ctx, buf)
	if err != nil {
		return nil, fail(PhaseTranscribe, err)
	}
	transcript := res.Transcript()
	switch res.Outcome {
	case recognize.OutcomeNoSpeech:
		c.Logger.Warn("no speech recognized; saving sentinel transcript")
	case recognize.OutcomeServiceError:
		c.Logger.Warnf("recognition service error: %s; saving sentinel transcript", res.Detail)
	default:
		c.Logger.Infof("transcript: %q", transcript)
	}
	fmt.Fprintf(c.out(), "\nYour response:\n%s\n", transcript)

	if err := store.EnsureDir(outputDir); err != nil {
		return nil, fail(PhaseSave, err)
	}
	wavPath, txtPath := store.ArtifactPaths(outputDir, task.ID, startedAt)
	if err := store.SaveWAV(buf, wavPath); err != nil {
		return nil, fail(PhaseSave, err)
	}
	if err := store.SaveText(transcript, txtPath, prompt); err != nil {
		return nil, fail(PhaseSave, err)
	}

	fmt.Fprintf(c.out(), "\nSaved audio to %s\n", wavPath)
	fmt.Fprintf(c.out(), "Saved transcript to %s\n", txtPath)

	if c.Hook != nil && c.Hook.Enabled() {
		job := hook.Job{AudioPath: wavPath, TextPath: txtPath, Transcript: transcript}
		if err := c.Hook.Run(ctx, job); err != nil {
			// The artifacts are already on disk; a hook failure never
			// fails the session.
			c.Logger.Warnf("post-session hook: %v", err)
		}
	}

	return &Result{
		Task:       task,
		Prompt:     prompt,
		Transcript: transcript,
		AudioPath:  wavPath,
		TextPath:   txtPath,
		StartedAt:  startedAt,
	}, nil
}

func (c *Controller) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
