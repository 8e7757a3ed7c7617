package control

import (
	"encoding/json"
	"fmt"

	"speakdrill/internal/config"

	"github.com/spf13/cobra"
)

// NewTasksCmd lists the task catalog.
func NewTasksCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List speaking tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				type task struct {
					ID            int      `json:"id"`
					Name          string   `json:"name"`
					Description   string   `json:"description"`
					PrepSeconds   int      `json:"prep_seconds"`
					SpeakSeconds  int      `json:"speak_seconds"`
					SamplePrompts []string `json:"sample_prompts"`
				}
				out := make([]task, 0, cat.Len())
				for _, t := range cat.Tasks() {
					out = append(out, task{t.ID, t.Name, t.Description, t.PrepSeconds, t.SpeakSeconds, t.SamplePrompts})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			for _, t := range cat.Tasks() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (prep %ds, speak %ds)\n   %s\n", t.ID, t.Name, t.PrepSeconds, t.SpeakSeconds, t.Description)
				for _, q := range t.SamplePrompts {
					fmt.Fprintf(cmd.OutOrStdout(), "   - %s\n", q)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "output JSON")
	return cmd
}
