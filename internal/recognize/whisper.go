//go:build whisper

package recognize

import (
	"context"
	"errors"
	"io"
	"strings"

	"speakdrill/internal/audio"
	"speakdrill/internal/config"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/sirupsen/logrus"
)

// whisperLocal transcribes offline with whisper.cpp. No network is
// involved, so OutcomeServiceError never occurs here; a model failure is
// an unexpected error and aborts the session.
type whisperLocal struct {
	modelPath string
	language  string
	logger    *logrus.Logger
}

func newWhisper(cfg *config.Config, logger *logrus.Logger) (Recognizer, error) {
	return &whisperLocal{
		modelPath: cfg.Recognizer.ModelPath,
		language:  cfg.Recognizer.Language,
		logger:    logger,
	}, nil
}

func (w *whisperLocal) Name() string { return "whisper" }

func (w *whisperLocal) Transcribe(ctx context.Context, buf *audio.Buffer) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	model, err := whisper.New(w.modelPath)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = model.Close() }()

	wctx, err := model.NewContext()
	if err != nil {
		return Result{}, err
	}
	if lang := strings.TrimSpace(w.language); lang != "" && lang != "auto" {
		if err := wctx.SetLanguage(lang); err != nil {
			w.logger.Warnf("set language: %v", err)
		}
	}
	if err := wctx.Process(buf.Float32(), nil, nil, nil); err != nil {
		return Result{}, err
	}
	var b strings.Builder
	for {
		seg, err := wctx.NextSegment()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Result{}, err
		}
		b.WriteString(seg.Text)
		if !strings.HasSuffix(seg.Text, " ") {
			b.WriteByte(' ')
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return Result{Outcome: OutcomeNoSpeech}, nil
	}
	return Result{Outcome: OutcomeText, Text: text}, nil
}
