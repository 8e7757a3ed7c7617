// Package audio captures microphone input for a fixed duration.
package audio

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrNoDevice indicates no usable microphone input is available. It is
// fatal for a practice session.
var ErrNoDevice = errors.New("no input device available")

// Buffer holds captured PCM samples together with the format metadata
// needed for transcription and persistence.
type Buffer struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// Duration returns the buffer length as wall time.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 || b.Channels <= 0 {
		return 0
	}
	frames := len(b.Samples) / b.Channels
	return time.Duration(frames) * time.Second / time.Duration(b.SampleRate)
}

// Float32 converts the samples to normalized [-1, 1) float32, the format
// local recognizers consume.
func (b *Buffer) Float32() []float32 {
	out := make([]float32, len(b.Samples))
	for i, s := range b.Samples {
		out[i] = float32(s) / 32768.0
	}
	return out
}

// RMS returns the root-mean-square level of the samples, normalized to
// [0, 1]. Used for the ambient-noise calibration pass.
func RMS(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s) / 32768.0
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Recorder captures audio from the default (or configured) microphone.
type Recorder interface {
	// Record runs a short ambient-noise calibration pass and then
	// captures exactly d of audio. A missing input device fails with an
	// error wrapping ErrNoDevice.
	Record(ctx context.Context, d time.Duration) (*Buffer, error)
}
