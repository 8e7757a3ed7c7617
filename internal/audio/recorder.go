package audio

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// frameMS is the capture block size; 20ms frames are also what the
	// VAD accepts.
	frameMS = 20

	vadAggressiveness = 2
)

// Options configures microphone capture.
type Options struct {
	DeviceName string
	SampleRate int
	Channels   int
	// Calibrate is the length of the ambient-noise pass run before the
	// real capture starts. Defaults to one second.
	Calibrate time.Duration
	// Status receives the human-readable capture status messages
	// ("Adjusting for ambient noise...", "Start speaking now!").
	Status io.Writer
}

// NewRecorder returns a microphone recorder. Binaries built without the
// portaudio tag get a recorder whose Record always fails with
// ErrNoDevice.
func NewRecorder(opts Options, logger *logrus.Logger) (Recorder, error) {
	return newRecorder(opts, logger)
}
