//go:build !portaudio

package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type stubRecorder struct{}

func newRecorder(_ Options, _ *logrus.Logger) (Recorder, error) {
	return stubRecorder{}, nil
}

func (stubRecorder) Record(context.Context, time.Duration) (*Buffer, error) {
	return nil, fmt.Errorf("built without microphone support (build with -tags portaudio): %w", ErrNoDevice)
}
