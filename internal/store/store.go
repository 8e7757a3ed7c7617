// Package store writes session artifacts (audio and transcript) to the
// output directory.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"speakdrill/internal/audio"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const timestampLayout = "20060102_150405"

// ArtifactPaths returns the colocated audio and transcript paths for a
// session: task{id}_{YYYYMMDD_HHMMSS}.wav/.txt under dir.
func ArtifactPaths(dir string, taskID int, ts time.Time) (wavPath, txtPath string) {
	base := filepath.Join(dir, fmt.Sprintf("task%d_%s", taskID, ts.Format(timestampLayout)))
	return base + ".wav", base + ".txt"
}

// EnsureDir creates dir if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// SaveWAV writes the buffer as a PCM WAV file at its native sample rate,
// overwriting any existing file. Repeated saves of the same buffer
// produce byte-identical output.
func SaveWAV(buf *audio.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := wav.NewEncoder(f, buf.SampleRate, 16, buf.Channels, 1)
	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = int(s)
	}
	ib := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: buf.Channels, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(ib); err != nil {
		f.Close()
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize wav: %w", err)
	}
	return f.Close()
}

// LoadWAV reads a PCM WAV file into a buffer.
func LoadWAV(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if ib.Format == nil {
		return nil, fmt.Errorf("decode wav: missing format")
	}
	samples := make([]int16, len(ib.Data))
	for i, s := range ib.Data {
		samples[i] = int16(s)
	}
	return &audio.Buffer{
		Samples:    samples,
		SampleRate: ib.Format.SampleRate,
		Channels:   ib.Format.NumChannels,
	}, nil
}

// SaveText writes the transcript with the prompt prepended:
//
//	Question: <prompt>
//
//	<text>
func SaveText(text, path, prompt string) error {
	content := fmt.Sprintf("Question: %s\n\n%s\n", prompt, text)
	return os.WriteFile(path, []byte(content), 0o644)
}
