package control

import (
	"speakdrill/internal/config"
	"speakdrill/internal/hook"
	"speakdrill/internal/logging"

	"github.com/spf13/cobra"
)

// NewTestHookCmd triggers the post-session hook manually.
func NewTestHookCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "test-hook <audio-path> [text-path]",
		Short: "Run the post-session hook with sample artifact paths",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			logger, err := logging.Configure(cfg)
			if err != nil {
				return err
			}
			job := hook.Job{AudioPath: args[0]}
			if len(args) > 1 {
				job.TextPath = args[1]
			}
			return hook.NewRunner(cfg, logger).Run(cmd.Context(), job)
		},
	}
}
