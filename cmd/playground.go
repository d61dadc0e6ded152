package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/zjrosen/spark/internal/config"
	"github.com/zjrosen/spark/internal/mode/playground"
	"github.com/zjrosen/spark/internal/paths"
	"github.com/zjrosen/spark/internal/ui/field"
	"github.com/zjrosen/spark/internal/ui/form"
)

var specsFlag string

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Build a modal from a form and try it out",
	Long: `Launch the modal playground: fill in the form, press "Show Modal" and
interact with the modal it builds.

The form fields can be replaced with a YAML field list:
  spark playground --specs fields.yaml`,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
	playgroundCmd.Flags().StringVar(&specsFlag, "specs", "", "YAML file with the form's field list")
}

func runPlayground(cmd *cobra.Command, args []string) error {
	specs, err := loadSpecs(specsPath())
	if err != nil {
		return err
	}

	model, err := playground.New(playground.Config{Specs: specs})
	if err != nil {
		return err
	}

	zone.NewGlobal()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if v != nil && v.ConfigFileUsed() != "" {
		config.Watch(v, func(next config.Config) {
			p.Send(playground.ThemeMsg{Theme: next.Theme})
		})
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running playground: %w", err)
	}
	return nil
}

// specsPath prefers --specs, then playground.specs from the config, which is
// resolved relative to the config file.
func specsPath() string {
	if specsFlag != "" {
		return paths.Resolve(specsFlag, "")
	}
	var base string
	if v != nil && v.ConfigFileUsed() != "" {
		base = filepath.Dir(v.ConfigFileUsed())
	}
	return paths.Resolve(cfg.Playground.Specs, base)
}

func loadSpecs(path string) ([]field.Spec, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path) //nolint:gosec // G304: user supplied specs path
	if err != nil {
		return nil, fmt.Errorf("opening specs: %w", err)
	}
	defer func() { _ = f.Close() }()
	return form.LoadSpecs(f)
}
