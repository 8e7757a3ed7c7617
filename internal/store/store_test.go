package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"speakdrill/internal/audio"
)

func TestArtifactPaths(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	wavPath, txtPath := ArtifactPaths("out", 2, ts)
	if wavPath != filepath.Join("out", "task2_20250314_092653.wav") {
		t.Fatalf("wav path got %q", wavPath)
	}
	if txtPath != filepath.Join("out", "task2_20250314_092653.txt") {
		t.Fatalf("txt path got %q", txtPath)
	}
}

func TestSaveTextRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "task2_20250314_092653.txt")
	prompt := "Describe a time when you learned something important."
	text := "I learned to ride a bike last summer"

	if err := SaveText(text, path, prompt); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "Question: " + prompt + "\n\n" + text + "\n"
	if string(data) != want {
		t.Fatalf("content got %q want %q", data, want)
	}

	// Saving the same content again is byte-identical.
	if err := SaveText(text, path, prompt); err != nil {
		t.Fatalf("second save: %v", err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Fatalf("repeated save not byte-identical")
	}
}

func TestSaveTextSentinelBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.txt")
	if err := SaveText("[Unrecognized speech]", path, "prompt"); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "Question: prompt\n\n[Unrecognized speech]\n" {
		t.Fatalf("content got %q", data)
	}
}

func TestSaveWAVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.wav")
	in := &audio.Buffer{
		Samples:    []int16{0, 1000, -1000, 32000, -32000, 12, -7},
		SampleRate: 16000,
		Channels:   1,
	}
	if err := SaveWAV(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := LoadWAV(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.SampleRate != in.SampleRate || out.Channels != in.Channels {
		t.Fatalf("format got rate=%d ch=%d", out.SampleRate, out.Channels)
	}
	if len(out.Samples) != len(in.Samples) {
		t.Fatalf("sample count got %d want %d", len(out.Samples), len(in.Samples))
	}
	for i := range in.Samples {
		if out.Samples[i] != in.Samples[i] {
			t.Fatalf("sample %d got %d want %d", i, out.Samples[i], in.Samples[i])
		}
	}
}

func TestSaveWAVIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.wav")
	buf := &audio.Buffer{Samples: make([]int16, 1600), SampleRate: 16000, Channels: 1}

	if err := SaveWAV(buf, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, _ := os.ReadFile(path)
	if err := SaveWAV(buf, path); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Fatalf("repeated save not byte-identical")
	}
}

func TestSaveWAVFailsOnMissingDir(t *testing.T) {
	buf := &audio.Buffer{Samples: []int16{0}, SampleRate: 16000, Channels: 1}
	if err := SaveWAV(buf, filepath.Join(t.TempDir(), "nope", "t.wav")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
