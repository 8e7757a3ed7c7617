package control

import (
	"fmt"
	"os"

	"speakdrill/internal/config"

	"github.com/spf13/cobra"
)

// NewSetupCmd downloads the default whisper model if missing.
func NewSetupCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Download the default whisper model if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			modelPath := os.ExpandEnv(cfg.Recognizer.ModelPath)
			if _, err := os.Stat(modelPath); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "model already present at", modelPath)
				return nil
			}
			url := modelRegistry["ggml-small-q5_1.bin"]
			fmt.Fprintf(cmd.OutOrStdout(), "downloading model to %s\n", modelPath)
			if err := downloadFile(url, modelPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "model download complete")
			return nil
		},
	}
}
