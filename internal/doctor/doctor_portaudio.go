//go:build portaudio

package doctor

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

func checkPortAudio() Result {
	if err := portaudio.Initialize(); err != nil {
		return Result{Name: "microphone", Pass: false, Detail: fmt.Sprintf("init failed: %v (install with: brew install portaudio)", err)}
	}
	defer func() {
		_ = portaudio.Terminate()
	}()
	dev, err := portaudio.DefaultInputDevice()
	if err != nil || dev == nil {
		return Result{Name: "microphone", Pass: false, Detail: "no default input device"}
	}
	return Result{Name: "microphone", Pass: true, Detail: dev.Name}
}
