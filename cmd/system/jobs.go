package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talentgate/careers_backend/internal/store"
)

func NewJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Print the seeded job catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewMemStorage()

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(st.ListJobs()); err != nil {
				return fmt.Errorf("failed to encode job catalog: %w", err)
			}
			return nil
		},
	}

	return cmd
}
