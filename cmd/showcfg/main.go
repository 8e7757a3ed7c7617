package main

import (
	"fmt"

	"speakdrill/internal/config"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	fmt.Printf("backend=%q endpoint=%q model=%q\n", cfg.Recognizer.Backend, cfg.Recognizer.Endpoint, cfg.Recognizer.ModelPath)
	fmt.Printf("output_dir=%q catalog=%q\n", cfg.Session.OutputDir, cfg.Session.CatalogPath)
	fmt.Printf("mic=%q rate=%d channels=%d calibrate=%.1fs\n", cfg.Audio.DeviceName, cfg.Audio.SampleRate, cfg.Audio.Channels, cfg.Audio.CalibrateSec)
	fmt.Printf("hook=%q args=%v\n", cfg.Hook.Command, cfg.Hook.Args)
}
