package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"locator/internal/adapters/autostart"
)

const autostartName = "locator"

var autostartIcon string

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage starting the launcher at login",
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start the launcher at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := autostartManager()
		if err != nil {
			return err
		}
		exe, err := launcherExecutable()
		if err != nil {
			return err
		}

		entry := autostart.Entry{Name: autostartName, Exec: exe, Icon: autostartIcon}
		if err := m.Enable(entry); err != nil {
			return err
		}
		path, _ := m.Path(autostartName)
		fmt.Printf("Autostart enabled: %s\n", path)
		return nil
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop starting the launcher at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := autostartManager()
		if err != nil {
			return err
		}
		if err := m.Disable(autostartName); err != nil {
			return err
		}
		fmt.Println("Autostart disabled")
		return nil
	},
}

var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the launcher starts at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := autostartManager()
		if err != nil {
			return err
		}
		on, err := m.Enabled(autostartName)
		if err != nil {
			return err
		}
		if on {
			fmt.Println("enabled")
		} else {
			fmt.Println("disabled")
		}
		return nil
	},
}

func autostartManager() (*autostart.Manager, error) {
	dir, err := autostart.DefaultDir()
	if err != nil {
		return nil, err
	}
	return autostart.NewManager(dir), nil
}

// launcherExecutable returns the TUI binary installed next to this one,
// falling back to this binary
func launcherExecutable() (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if sibling, ok := strings.CutSuffix(self, "-cli"); ok {
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}
	return self, nil
}

func init() {
	autostartEnableCmd.Flags().StringVar(&autostartIcon, "icon", "", "icon name or path for the autostart entry")
	autostartCmd.AddCommand(autostartEnableCmd, autostartDisableCmd, autostartStatusCmd)
	rootCmd.AddCommand(autostartCmd)
}
