// Package control implements the speakdrill CLI commands.
package control

import (
	"fmt"
	"time"

	"speakdrill/internal/audio"
	"speakdrill/internal/catalog"
	"speakdrill/internal/config"
	"speakdrill/internal/hook"
	"speakdrill/internal/logging"
	"speakdrill/internal/recognize"
	"speakdrill/internal/session"
	"speakdrill/internal/timer"

	"github.com/spf13/cobra"
)

// NewPracticeCmd runs one practice session.
func NewPracticeCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Run one speaking-practice session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			logger, err := logging.Configure(cfg)
			if err != nil {
				return err
			}

			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			taskID, _ := cmd.Flags().GetInt("task")
			if taskID == 0 {
				printCatalog(out, cat)
				taskID, err = selectTask(cmd.InOrStdin(), out, cat)
				if err != nil {
					return err
				}
			}
			task, err := cat.Get(taskID)
			if err != nil {
				return err
			}

			question, _ := cmd.Flags().GetString("question")
			if !cmd.Flags().Changed("question") {
				fmt.Fprintf(out, "\nYou selected: %s\n", task.Name)
				fmt.Fprintln(out, "Sample questions:")
				for _, q := range task.SamplePrompts {
					fmt.Fprintf(out, " - %s\n", q)
				}
				question = readQuestion(cmd.InOrStdin(), out)
			}

			outputDir, _ := cmd.Flags().GetString("output-dir")
			if outputDir == "" {
				outputDir = cfg.Session.OutputDir
			}

			recorder, err := audio.NewRecorder(audio.Options{
				DeviceName: cfg.Audio.DeviceName,
				SampleRate: cfg.Audio.SampleRate,
				Channels:   cfg.Audio.Channels,
				Calibrate:  time.Duration(cfg.Audio.CalibrateSec * float64(time.Second)),
				Status:     out,
			}, logger)
			if err != nil {
				return err
			}
			recognizer, err := recognize.New(cfg, logger)
			if err != nil {
				return err
			}

			ctl := &session.Controller{
				Catalog:    cat,
				Timer:      timer.New(),
				Recorder:   recorder,
				Recognizer: recognizer,
				Hook:       hook.NewRunner(cfg, logger),
				Logger:     logger,
				Out:        out,
			}
			_, err = ctl.Run(cmd.Context(), session.Request{
				TaskID:    taskID,
				Prompt:    question,
				OutputDir: outputDir,
			})
			return err
		},
	}
	cmd.Flags().Int("task", 0, "task id (skips the interactive menu)")
	cmd.Flags().String("question", "", "question to answer (blank uses the task's first sample)")
	cmd.Flags().StringP("output-dir", "o", "", "directory for audio and transcripts (default from config)")
	return cmd
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Session.CatalogPath != "" {
		return catalog.Load(cfg.Session.CatalogPath)
	}
	return catalog.Builtin(), nil
}
