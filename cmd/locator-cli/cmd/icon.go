package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"locator/internal/application/commands"
)

var iconDataURL bool

var iconCmd = &cobra.Command{
	Use:   "icon <name>",
	Short: "Resolve an icon name to a file",
	Long: `Resolve an icon name from a desktop entry to an icon file, searching flat
icon directories first and then every installed theme.

Examples:
  locator-cli icon firefox
  locator-cli icon firefox --data-url`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := GetServices()
		resolve := commands.NewResolveIconCommand(svc.Icons, svc.Rasterizer, args[0], iconDataURL)
		result, err := resolve.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(result.Path)
		if result.DataURL != "" {
			fmt.Println(result.DataURL)
		}
		return nil
	},
}

func init() {
	iconCmd.Flags().BoolVar(&iconDataURL, "data-url", false, "also print a 48x48 PNG data URL")
	rootCmd.AddCommand(iconCmd)
}
