//go:build portaudio

package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gordonklaus/portaudio"
	vad "github.com/maxhawkins/go-webrtcvad"
	"github.com/sirupsen/logrus"
)

type micRecorder struct {
	opts   Options
	logger *logrus.Logger
}

func newRecorder(opts Options, logger *logrus.Logger) (Recorder, error) {
	if opts.Channels != 1 {
		return nil, fmt.Errorf("only mono capture supported; set audio.channels = 1")
	}
	switch opts.SampleRate {
	case 8000, 16000, 32000, 48000:
	default:
		return nil, fmt.Errorf("sample_rate must be 8k/16k/32k/48k (got %d)", opts.SampleRate)
	}
	return &micRecorder{opts: opts, logger: logger}, nil
}

func (r *micRecorder) Record(ctx context.Context, d time.Duration) (*Buffer, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}
	defer portaudio.Terminate()

	dev, err := selectDevice(r.opts.DeviceName)
	if err != nil {
		return nil, err
	}

	frameSamples := r.opts.SampleRate * frameMS / 1000
	in := make([]int16, frameSamples)
	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   dev,
			Channels: r.opts.Channels,
			Latency:  dev.DefaultLowInputLatency,
		},
		SampleRate:      float64(r.opts.SampleRate),
		FramesPerBuffer: frameSamples,
	}, &in)
	if err != nil {
		return nil, fmt.Errorf("open stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("start stream: %w", err)
	}
	defer stream.Stop()

	r.logger.Infof("recording on mic: %s @ %d Hz", dev.Name, r.opts.SampleRate)

	// Calibration pass: measure the noise floor before the real capture.
	calibrate := r.opts.Calibrate
	if calibrate <= 0 {
		calibrate = time.Second
	}
	fmt.Fprintln(r.status(), "Adjusting for ambient noise...")
	noise, err := r.capture(ctx, stream, in, calibrate)
	if err != nil {
		return nil, err
	}
	r.logger.Debugf("noise floor rms=%.4f over %s", RMS(noise), calibrate)

	fmt.Fprintln(r.status(), "Start speaking now!")
	samples, err := r.capture(ctx, stream, in, d)
	if err != nil {
		return nil, err
	}

	buf := &Buffer{Samples: samples, SampleRate: r.opts.SampleRate, Channels: r.opts.Channels}
	if ratio, err := speechRatio(buf); err == nil {
		r.logger.Infof("speech detected in %.0f%% of frames", ratio*100)
		if ratio == 0 {
			r.logger.Warn("no speech detected in recording; transcription will likely come back empty")
		}
	} else {
		r.logger.Debugf("vad check skipped: %v", err)
	}
	return buf, nil
}

func (r *micRecorder) capture(ctx context.Context, stream *portaudio.Stream, in []int16, d time.Duration) ([]int16, error) {
	want := int(float64(r.opts.SampleRate) * d.Seconds())
	out := make([]int16, 0, want)
	for len(out) < want {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := stream.Read(); err != nil {
			if errors.Is(err, portaudio.InputOverflowed) {
				r.logger.Warn("input overflow")
				continue
			}
			return nil, fmt.Errorf("stream read: %w", err)
		}
		out = append(out, in...)
	}
	return out[:want], nil
}

func (r *micRecorder) status() io.Writer {
	if r.opts.Status != nil {
		return r.opts.Status
	}
	return io.Discard
}

// speechRatio reports the fraction of frames webrtcvad classifies as
// speech.
func speechRatio(buf *Buffer) (float64, error) {
	v, err := vad.New()
	if err != nil {
		return 0, err
	}
	if err := v.SetMode(vadAggressiveness); err != nil {
		return 0, err
	}
	frameSamples := buf.SampleRate * frameMS / 1000
	if !vad.ValidRateAndFrameLength(buf.SampleRate, frameSamples) {
		return 0, fmt.Errorf("invalid vad frame length %d for rate %d", frameSamples, buf.SampleRate)
	}
	frame := make([]byte, 2*frameSamples)
	var voiced, total int
	for off := 0; off+frameSamples <= len(buf.Samples); off += frameSamples {
		for i, s := range buf.Samples[off : off+frameSamples] {
			binary.LittleEndian.PutUint16(frame[2*i:], uint16(s))
		}
		active, err := v.Process(buf.SampleRate, frame)
		if err != nil {
			return 0, err
		}
		total++
		if active {
			voiced++
		}
	}
	if total == 0 {
		return 0, nil
	}
	return float64(voiced) / float64(total), nil
}

func selectDevice(preferred string) (*portaudio.DeviceInfo, error) {
	devs, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	if preferred != "" {
		for _, d := range devs {
			if d.MaxInputChannels > 0 && strings.Contains(strings.ToLower(d.Name), strings.ToLower(preferred)) {
				return d, nil
			}
		}
	}
	if def, err := portaudio.DefaultInputDevice(); err == nil && def != nil {
		return def, nil
	}
	for _, d := range devs {
		if d.MaxInputChannels > 0 {
			return d, nil
		}
	}
	return nil, ErrNoDevice
}
