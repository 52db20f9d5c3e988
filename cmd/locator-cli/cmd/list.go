package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"locator/internal/application/commands"
)

var appsCmd = &cobra.Command{
	Use:   "apps [query]",
	Short: "List installed applications",
	Long: `List applications from .desktop entries, optionally filtered by name.

Examples:
  locator-cli apps
  locator-cli apps term`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		apps, err := commands.NewListApplicationsCommand(GetServices().Catalog, query).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(apps) == 0 {
			fmt.Println("No applications found")
			return nil
		}
		for _, a := range apps {
			icon := a.IconPath
			if icon == "" {
				icon = "-"
			}
			fmt.Printf("%-32s %-40s %s\n", a.Name, a.Exec, icon)
		}
		return nil
	},
}

var filesCmd = &cobra.Command{
	Use:   "files <query>",
	Short: "Find files by name",
	Long: `Find documents, images and scripts under the configured search roots.

Examples:
  locator-cli files report
  locator-cli files .pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := commands.NewFindFilesCommand(GetServices().Scanner, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No files found")
			return nil
		}
		for _, f := range files {
			fmt.Printf("%-40s %10d  %s  %s\n", f.Name, f.Size, f.ModTime.Format("2006-01-02 15:04"), f.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(filesCmd)
}
