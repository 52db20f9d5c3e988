package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"locator/internal/application/commands"
)

var (
	launchIndex  int
	launchDryRun bool
)

var launchCmd = &cobra.Command{
	Use:   "launch <query>",
	Short: "Launch the best match for a query",
	Long: `Search for the query and launch one result: the first by default, or the
one at --index as numbered by the search command.

Applications run through the shell, detached. Files open with a viewer or
editor chosen by extension, falling back to the desktop default.

Examples:
  locator-cli launch firefox
  locator-cli launch report --index 2
  locator-cli launch build.sh --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := GetServices()

		if launchDryRun {
			result := svc.Index.Search(cmd.Context(), args[0])
			if launchIndex < 0 || launchIndex >= len(result.Resources) {
				return fmt.Errorf("no result %d for %q", launchIndex, args[0])
			}
			c, err := svc.Launcher.Command(result.Resources[launchIndex])
			if err != nil {
				return err
			}
			fmt.Println(c.String())
			return nil
		}

		result, err := commands.NewLaunchCommand(svc.Index, svc.Launcher, args[0], launchIndex).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	launchCmd.Flags().IntVarP(&launchIndex, "index", "i", 0, "index of the result to launch")
	launchCmd.Flags().BoolVar(&launchDryRun, "dry-run", false, "print the command instead of running it")
	rootCmd.AddCommand(launchCmd)
}
