package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

type rootFlags struct {
	configFile string
	verbose    bool
	dryRun     bool
	cli        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "solarwin",
		Short:         "Apply Windows performance and privacy tweaks",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}
			if flags.cli {
				runCLI(s)
				return nil
			}
			return runGUI(s)
		},
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default is <user config dir>/solarwin/config.toml)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "log operations instead of running them")
	root.Flags().BoolVarP(&flags.cli, "cli", "c", false, "use the interactive terminal menu instead of the window")

	root.AddCommand(
		newListCmd(flags),
		newApplyCmd(flags),
		newEnvCmd(flags),
		newConfigCmd(flags),
	)
	return root
}

func runGUI(s *session) error {
	app := NewApp(s)

	err := wails.Run(&options.App{
		Title:            "Solar.Win",
		Width:            1000,
		Height:           600,
		MinWidth:         800,
		MinHeight:        500,
		DisableResize:    false,
		BackgroundColour: &options.RGBA{R: 37, G: 37, B: 38, A: 255},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			Theme:                windows.Dark,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start window: %w", err)
	}
	return nil
}
