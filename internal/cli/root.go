package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ryo246912/gh-pr-review/internal/config"
)

type appKey struct{}

// App holds state shared across commands
type App struct {
	Config config.Config
}

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func getApp(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}

func NewRootCmd() *cobra.Command {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:           "gh-pr-review",
		Short:         "Fetch pull request context and submit comment-only reviews",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withApp(cmd.Context(), &App{Config: cfg}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Override config path")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(NewInfoCmd())
	root.AddCommand(NewDiffCmd())
	root.AddCommand(NewSubmitCmd())

	return root
}
