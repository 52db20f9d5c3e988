package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"locator/internal/application/commands"
	"locator/internal/domain"
)

var (
	searchJSON  bool
	searchStats bool
)

// resourceJSON is the --json shape of one result
type resourceJSON struct {
	Kind     string     `json:"kind"`
	Name     string     `json:"name"`
	Exec     string     `json:"exec,omitempty"`
	Icon     string     `json:"icon,omitempty"`
	Path     string     `json:"path,omitempty"`
	Size     int64      `json:"size,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
}

func toJSON(r domain.Resource) resourceJSON {
	out := resourceJSON{Kind: r.Kind.String(), Name: r.Name()}
	switch {
	case r.App != nil:
		out.Exec = r.App.Exec
		out.Icon = r.App.IconPath
	case r.File != nil:
		out.Path = r.File.Path
		out.Size = r.File.Size
		mod := r.File.ModTime
		out.Modified = &mod
	}
	return out
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search applications and files",
	Long: `Search installed applications and user files whose name contains the query.

Examples:
  locator-cli search fire
  locator-cli search report --json
  locator-cli search invoice --stats`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := GetServices()
		start := time.Now()

		result, err := commands.NewSearchCommand(svc.Index, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if searchJSON {
			items := make([]resourceJSON, 0, len(result.Resources))
			for _, r := range result.Resources {
				items = append(items, toJSON(r))
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(items); err != nil {
				return fmt.Errorf("failed to encode results: %w", err)
			}
		} else {
			printResources(result.Resources)
		}

		if searchStats {
			s := svc.FS.Stats()
			fmt.Fprintf(os.Stderr, "%d results in %s (stat %d, readdir %d, readfile %d)\n",
				len(result.Resources), time.Since(start).Round(time.Millisecond), s.Stat, s.ReadDir, s.ReadFile)
		}
		return nil
	},
}

func printResources(resources []domain.Resource) {
	if len(resources) == 0 {
		fmt.Println("No results found")
		return
	}
	for i, r := range resources {
		switch {
		case r.App != nil:
			fmt.Printf("%3d [app]  %s  %s\n", i, r.App.Name, r.App.Exec)
		case r.File != nil:
			fmt.Printf("%3d [file] %s  %s\n", i, r.File.Name, r.File.Path)
		}
	}
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
	searchCmd.Flags().BoolVar(&searchStats, "stats", false, "print timing and filesystem call counts to stderr")
	rootCmd.AddCommand(searchCmd)
}
