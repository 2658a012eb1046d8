package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/params"
	"github.com/rgehrsitz/hpgo/internal/tui"
)

func main() {
	cmd := &cobra.Command{
		Use:   "hpgo-tui [scenario-file]",
		Short: "Interactive heat pump estimate editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarioPath := ""
			if len(args) == 1 {
				scenarioPath = args[0]
				if _, err := os.Stat(scenarioPath); os.IsNotExist(err) {
					return fmt.Errorf("scenario file not found: %s", scenarioPath)
				}
			}

			rawParams, _ := cmd.Flags().GetString("params")
			prefsFile, _ := cmd.Flags().GetString("prefs")
			initial, err := initialScenario(rawParams, prefsFile)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				tui.NewModel(scenarioPath, initial),
				tea.WithAltScreen(),       // Use alternate screen buffer
				tea.WithMouseCellMotion(), // Enable mouse support
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().String("params", "", "Deep-link parameters as a query string")
	cmd.Flags().String("prefs", "", "Saved preference record (flat YAML map)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initialScenario layers deep-link parameters over a saved record.
func initialScenario(rawParams, prefsFile string) (domain.PartialScenario, error) {
	var deepLink, saved domain.PartialScenario
	if rawParams != "" {
		values, err := url.ParseQuery(strings.TrimPrefix(rawParams, "?"))
		if err != nil {
			return domain.PartialScenario{}, fmt.Errorf("invalid --params query: %w", err)
		}
		deepLink = params.Decode(values)
	}
	if prefsFile != "" {
		p, err := params.LoadPreferenceFile(prefsFile)
		if err != nil {
			return domain.PartialScenario{}, err
		}
		saved = p
	}
	return params.Resolve(deepLink, saved), nil
}
