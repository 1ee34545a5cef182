package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/talentgate/careers_backend/config"
)

func NewCheckConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-config",
		Short: "Read and validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Printf("Config OK: environment=%s port=%d\n", cfg.Server.Environment, cfg.Server.Port)
			if !cfg.Notification.Configured() {
				fmt.Println("Warning: notification provider not configured; submission emails will be skipped.")
			}
			return nil
		},
	}

	return cmd
}
