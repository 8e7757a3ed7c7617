package recognize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speakdrill/internal/audio"
	"speakdrill/internal/config"
	"speakdrill/internal/logging"
)

func testBuffer() *audio.Buffer {
	return &audio.Buffer{Samples: make([]int16, 1600), SampleRate: 16000, Channels: 1}
}

func newTestRecognizer(t *testing.T, endpoint string) *webSpeech {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	cfg.Recognizer.Endpoint = endpoint
	cfg.Recognizer.Language = "en-US"
	return newWebSpeech(cfg, logging.NewTestLogger())
}

func TestTranscribeReturnsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); !strings.HasPrefix(got, "audio/l16") {
			t.Errorf("content type %q", got)
		}
		// The service emits an empty result line before the real one.
		w.Write([]byte("{\"result\":[]}\n"))
		w.Write([]byte(`{"result":[{"alternative":[{"transcript":"I learned to ride a bike last summer","confidence":0.92}],"final":true}]}`))
	}))
	defer srv.Close()

	res, err := newTestRecognizer(t, srv.URL).Transcribe(context.Background(), testBuffer())
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if res.Outcome != OutcomeText {
		t.Fatalf("outcome got %v", res.Outcome)
	}
	if res.Transcript() != "I learned to ride a bike last summer" {
		t.Fatalf("transcript got %q", res.Transcript())
	}
}

func TestTranscribeNoSpeechIsRecoverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{\"result\":[]}\n"))
	}))
	defer srv.Close()

	res, err := newTestRecognizer(t, srv.URL).Transcribe(context.Background(), testBuffer())
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if res.Outcome != OutcomeNoSpeech {
		t.Fatalf("outcome got %v", res.Outcome)
	}
	if res.Transcript() != NoSpeechSentinel {
		t.Fatalf("transcript got %q", res.Transcript())
	}
}

func TestTranscribeServiceErrorIsRecoverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	res, err := newTestRecognizer(t, srv.URL).Transcribe(context.Background(), testBuffer())
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if res.Outcome != OutcomeServiceError {
		t.Fatalf("outcome got %v", res.Outcome)
	}
	tr := res.Transcript()
	if !strings.HasPrefix(tr, "[API error: ") || !strings.Contains(tr, "403") {
		t.Fatalf("transcript got %q", tr)
	}
}

func TestTranscribeUnreachableServiceIsRecoverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	res, err := newTestRecognizer(t, srv.URL).Transcribe(context.Background(), testBuffer())
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if res.Outcome != OutcomeServiceError {
		t.Fatalf("outcome got %v", res.Outcome)
	}
}

func TestTranscribeCancelledContextAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestRecognizer(t, srv.URL).Transcribe(ctx, testBuffer()); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}

func TestParseWebSpeechBodyMalformed(t *testing.T) {
	if _, err := parseWebSpeechBody(strings.NewReader("not json")); err == nil {
		t.Fatalf("expected parse error")
	}
}
