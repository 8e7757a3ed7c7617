package recognize

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"speakdrill/internal/audio"
	"speakdrill/internal/config"

	"github.com/sirupsen/logrus"
)

// webSpeech talks to a Google web-speech style recognition endpoint:
// raw little-endian PCM in, newline-delimited JSON results out.
type webSpeech struct {
	endpoint string
	apiKey   string
	language string
	client   *http.Client
	logger   *logrus.Logger
}

func newWebSpeech(cfg *config.Config, logger *logrus.Logger) *webSpeech {
	timeout := time.Duration(cfg.Recognizer.TimeoutSec * float64(time.Second))
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &webSpeech{
		endpoint: cfg.Recognizer.Endpoint,
		apiKey:   cfg.Recognizer.APIKey,
		language: cfg.Recognizer.Language,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (w *webSpeech) Name() string { return "webspeech" }

func (w *webSpeech) Transcribe(ctx context.Context, buf *audio.Buffer) (Result, error) {
	url := fmt.Sprintf("%s?client=speakdrill&lang=%s&key=%s", w.endpoint, w.language, w.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(pcmBytes(buf)))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", fmt.Sprintf("audio/l16; rate=%d; channels=%d", buf.SampleRate, buf.Channels))

	resp, err := w.client.Do(req)
	if err != nil {
		// A cancelled session aborts; a failed round trip is a
		// recoverable service error.
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		w.logger.Warnf("recognition request failed: %v", err)
		return Result{Outcome: OutcomeServiceError, Detail: err.Error()}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		detail := fmt.Sprintf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		w.logger.Warnf("recognition service error: %s", detail)
		return Result{Outcome: OutcomeServiceError, Detail: detail}, nil
	}

	text, err := parseWebSpeechBody(resp.Body)
	if err != nil {
		return Result{Outcome: OutcomeServiceError, Detail: err.Error()}, nil
	}
	if text == "" {
		return Result{Outcome: OutcomeNoSpeech}, nil
	}
	return Result{Outcome: OutcomeText, Text: text}, nil
}

// parseWebSpeechBody scans the newline-delimited JSON response and
// returns the first non-empty transcript, or "" when the service
// produced no alternatives.
func parseWebSpeechBody(r io.Reader) (string, error) {
	type alternative struct {
		Transcript string  `json:"transcript"`
		Confidence float64 `json:"confidence"`
	}
	type result struct {
		Alternative []alternative `json:"alternative"`
		Final       bool          `json:"final"`
	}
	type response struct {
		Result []result `json:"result"`
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var resp response
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			return "", fmt.Errorf("malformed response: %w", err)
		}
		for _, res := range resp.Result {
			for _, alt := range res.Alternative {
				if t := strings.TrimSpace(alt.Transcript); t != "" {
					return t, nil
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", nil
}

func pcmBytes(buf *audio.Buffer) []byte {
	out := make([]byte, 2*len(buf.Samples))
	for i, s := range buf.Samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}
