package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"locator/internal/bootstrap"
	"locator/internal/config"
)

var (
	configPath string
	debug      bool
	services   *bootstrap.Services
)

var rootCmd = &cobra.Command{
	Use:   "locator-cli",
	Short: "Find and launch applications and files",
	Long: `locator-cli searches installed applications (from .desktop entries) and
files under your home folders by name, and launches them.

Applications are listed first, then files, each sorted by name. Matching
is a case-insensitive substring of the name.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		services = bootstrap.New(cfg, bootstrap.Logger(debug))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log diagnostics to stderr")
}

// GetServices returns the initialized services
func GetServices() *bootstrap.Services {
	return services
}
