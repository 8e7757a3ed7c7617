package control

import (
	"fmt"
	"strings"

	"speakdrill/internal/config"
	"speakdrill/internal/logging"
	"speakdrill/internal/recognize"
	"speakdrill/internal/store"

	"github.com/spf13/cobra"
)

// NewTranscribeCmd transcribes an existing WAV file without running a
// session.
func NewTranscribeCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcribe <wavfile>",
		Short: "Transcribe a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			logger, err := logging.Configure(cfg)
			if err != nil {
				return err
			}
			buf, err := store.LoadWAV(args[0])
			if err != nil {
				return err
			}
			recognizer, err := recognize.New(cfg, logger)
			if err != nil {
				return err
			}
			res, err := recognizer.Transcribe(cmd.Context(), buf)
			if err != nil {
				return err
			}
			text := res.Transcript()
			fmt.Fprintln(cmd.OutOrStdout(), text)

			save, _ := cmd.Flags().GetBool("save")
			if !save {
				return nil
			}
			question, _ := cmd.Flags().GetString("question")
			txtPath := strings.TrimSuffix(args[0], ".wav") + ".txt"
			if err := store.SaveText(text, txtPath, question); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved transcript to %s\n", txtPath)
			return nil
		},
	}
	cmd.Flags().Bool("save", false, "write a .txt transcript next to the input file")
	cmd.Flags().String("question", "", "question line for the saved transcript")
	return cmd
}
