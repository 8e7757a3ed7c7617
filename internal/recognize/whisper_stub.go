//go:build !whisper

package recognize

import (
	"fmt"

	"speakdrill/internal/config"

	"github.com/sirupsen/logrus"
)

func newWhisper(*config.Config, *logrus.Logger) (Recognizer, error) {
	return nil, fmt.Errorf("recognizer.backend %q requires a binary built with -tags whisper", config.BackendWhisper)
}
