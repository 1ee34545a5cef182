package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/talentgate/careers_backend/cmd/http"
	systemcmd "github.com/talentgate/careers_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "careers",
	Short: "Recruitment microsite backend: job listings, applications, and contact messages.",
	Long: `Careers is the backend for a recruitment marketing microsite.
It serves the job catalog, accepts applications and contact messages,
and fires best-effort email notifications on submission.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
