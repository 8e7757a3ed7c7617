package main

import (
	"fmt"
	"os"

	"speakdrill/internal/control"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := &cobra.Command{
		Use:   "speakdrill",
		Short: "Speakdrill runs CELPIP speaking-practice sessions from your terminal",
		Long: `Speakdrill runs timed CELPIP speaking-practice sessions: pick a task, get a
preparation countdown, record your answer, and keep the audio plus a
transcript of what you said.

Key commands:
  practice                  Run one practice session
  tasks [--json]            List the speaking tasks
  transcribe <file.wav>     Transcribe an existing recording
  mic list|set              Select microphone
  doctor|setup              Check deps / download offline model
  models list|download|set  Manage whisper.cpp models (offline backend)
  test-hook <audio>         Run the post-session hook manually

Notable flags/env:
  -o, --output-dir <dir>    Where recordings and transcripts go
  Env overrides: SPEAKDRILL_OUTPUT_DIR, SPEAKDRILL_BACKEND,
                 SPEAKDRILL_API_KEY, SPEAKDRILL_ENDPOINT,
                 SPEAKDRILL_LOG_LEVEL/FORMAT`,
		Example: `  speakdrill practice
  speakdrill practice --task 2 -o ~/celpip
  speakdrill tasks --json
  speakdrill transcribe celpip_recordings/task2_20250314_092653.wav
  speakdrill mic list
  speakdrill models download ggml-small-q5_1.bin`,
		DisableFlagsInUseLine: true,
	}

	root.Version = version
	root.SetVersionTemplate("Speakdrill v{{.Version}}\n")

	cfgPath := root.PersistentFlags().StringP("config", "c", "", "Path to config file (TOML). Defaults to ~/.config/speakdrill/config.toml")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(control.NewPracticeCmd(cfgPath))
	root.AddCommand(control.NewTasksCmd(cfgPath))
	root.AddCommand(control.NewTranscribeCmd(cfgPath))
	root.AddCommand(control.NewMicCmd(cfgPath))
	root.AddCommand(control.NewDoctorCmd(cfgPath))
	root.AddCommand(control.NewSetupCmd(cfgPath))
	root.AddCommand(control.NewModelsCmd(cfgPath))
	root.AddCommand(control.NewTestHookCmd(cfgPath))

	applyColorHelp(root)

	if err := root.Execute(); err != nil {
		return err
	}
	return nil
}

func applyColorHelp(root *cobra.Command) {
	const (
		boldBlue = "\033[1;34m"
		green    = "\033[32m"
		bold     = "\033[1m"
		dim      = "\033[2m"
		reset    = "\033[0m"
	)
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		write := func(format string, args ...any) { _, _ = fmt.Fprintf(out, format, args...) }
		writeln := func(line string) { _, _ = fmt.Fprintln(out, line) }

		write("%sSpeakdrill%s CELPIP speaking practice %s(v%s)%s\n", boldBlue, reset, dim, version, reset)
		write("%sTimed prep, fixed-length recording, transcript saved beside the audio.%s\n\n", dim, reset)

		write("%sUsage%s\n", bold, reset)
		write("  speakdrill [command] [flags]\n\n")

		write("%sKey commands%s\n", bold, reset)
		writeln("  practice                    run one practice session")
		writeln("  tasks [--json]              list the speaking tasks")
		writeln("  transcribe <file.wav>       transcribe an existing recording")
		writeln("  mic list|set                select input device")
		writeln("  doctor                      check config/mic/recognizer")
		writeln("  setup                       download default whisper model")
		writeln("  models list|download|set    manage whisper.cpp models")
		writeln("  test-hook <audio>           run the post-session hook manually")
		writeln("")

		write("%sNotable flags & env%s\n", bold, reset)
		writeln("  --task <id>             skip the interactive task menu")
		writeln("  -o, --output-dir <dir>  where artifacts go (default celpip_recordings)")
		writeln("  -c, --config <path>     config file (default ~/.config/speakdrill/config.toml)")
		writeln("  Env: SPEAKDRILL_OUTPUT_DIR=dir, SPEAKDRILL_BACKEND=whisper,")
		writeln("       SPEAKDRILL_API_KEY=key, SPEAKDRILL_LOG_LEVEL=debug")
		writeln("")

		write("%sExamples%s\n", bold, reset)
		writeln("  speakdrill practice")
		writeln("  speakdrill practice --task 2 --question \"Describe your last trip.\"")
		writeln("  speakdrill transcribe celpip_recordings/task2_20250314_092653.wav --save")
		writeln("  speakdrill mic set \"MacBook Pro Microphone\"")
		writeln("")

		write("%sCommands%s\n", bold, reset)
		for _, c := range cmd.Commands() {
			if c.Hidden {
				continue
			}
			write("  %s%-15s%s %s\n", green, c.Name(), reset, c.Short)
		}
	})
}
