// Package recognize converts captured audio into text.
//
// Expected recognition failures (no speech understood, service request
// errors) are modeled as Result outcomes, not errors: a practice session
// must still save the recording when the transcript is unavailable. Only
// unexpected failures are returned as errors.
package recognize

import (
	"context"
	"fmt"

	"speakdrill/internal/audio"
	"speakdrill/internal/config"

	"github.com/sirupsen/logrus"
)

// NoSpeechSentinel is persisted in place of a transcript when the
// service understood the audio but found no speech.
const NoSpeechSentinel = "[Unrecognized speech]"

// Outcome classifies a transcription attempt.
type Outcome int

const (
	// OutcomeText means recognition produced a transcript.
	OutcomeText Outcome = iota
	// OutcomeNoSpeech means the audio was processed but contained no
	// recognizable speech.
	OutcomeNoSpeech
	// OutcomeServiceError means the recognition service could not be
	// reached or refused the request.
	OutcomeServiceError
)

// Result is the tagged outcome of one transcription attempt.
type Result struct {
	Outcome Outcome
	Text    string
	// Detail carries the service error description for
	// OutcomeServiceError.
	Detail string
}

// Transcript returns the text to persist: the recognized text, or a
// sentinel placeholder for the recoverable outcomes.
func (r Result) Transcript() string {
	switch r.Outcome {
	case OutcomeNoSpeech:
		return NoSpeechSentinel
	case OutcomeServiceError:
		return fmt.Sprintf("[API error: %s]", r.Detail)
	default:
		return r.Text
	}
}

// Recognizer transcribes an audio buffer.
type Recognizer interface {
	Transcribe(ctx context.Context, buf *audio.Buffer) (Result, error)
	Name() string
}

// New returns the recognizer selected by recognizer.backend.
func New(cfg *config.Config, logger *logrus.Logger) (Recognizer, error) {
	switch cfg.Recognizer.Backend {
	case "", config.BackendWebSpeech:
		return newWebSpeech(cfg, logger), nil
	case config.BackendWhisper:
		return newWhisper(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown recognizer.backend %q (want %s or %s)",
			cfg.Recognizer.Backend, config.BackendWebSpeech, config.BackendWhisper)
	}
}
