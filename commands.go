package main

import (
	"fmt"
	"io"

	"solarwin/internal/config"
	"solarwin/internal/engine"
	"solarwin/internal/presets"
	"solarwin/internal/system"
	"solarwin/internal/tweak"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available tweaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), s.catalog)
			return nil
		},
	}
}

func newApplyCmd(flags *rootFlags) *cobra.Command {
	var (
		all    bool
		yes    bool
		preset string
	)

	cmd := &cobra.Command{
		Use:   "apply [tweak-id...]",
		Short: "Apply the given tweaks and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}

			ids, err := selectionIDs(s.catalog, args, preset, all)
			if err != nil {
				return err
			}
			for _, id := range unknownIDs(s.catalog, ids) {
				s.logger.Warn("unknown tweak id ignored", "id", id)
			}

			if len(ids) > 0 && s.cfg.Confirm && !yes {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Apply %d tweak(s)", len(ids)),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "  Cancelled.")
					return nil
				}
			}

			report := s.engine.Apply(engine.NewSelection(ids...))
			renderReport(cmd.OutOrStdout(), report)

			if n := len(report.Failed()); n > 0 {
				return fmt.Errorf("%d tweak(s) failed", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "select every tweak")
	cmd.Flags().StringVar(&preset, "preset", "", "select the tweaks of a preset (performance, privacy, gaming, everything)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newEnvCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show elevation, host and temp directory details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}
			printEnvironment(cmd.OutOrStdout(), system.Probe(s.tempDir))
			return nil
		},
	}
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if s.configPath != "" {
				fmt.Fprintf(out, "# loaded from %s\n", s.configPath)
			} else {
				fmt.Fprintln(out, "# no config file found, showing defaults")
			}
			return config.Encode(out, s.cfg)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configFile
			if path == "" {
				p, err := config.DefaultPath("")
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(show, initCmd)
	return cfgCmd
}

// selectionIDs merges explicit ids with --preset and --all.
func selectionIDs(c *tweak.Catalog, args []string, preset string, all bool) ([]string, error) {
	var ids []string
	if all {
		for _, t := range c.AllTweaks() {
			ids = append(ids, t.ID())
		}
	}
	if preset != "" {
		p := presets.GetPresetByID(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		ids = append(ids, p.Tweaks...)
	}
	return append(ids, args...), nil
}

func unknownIDs(c *tweak.Catalog, ids []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, id := range ids {
		if _, ok := c.Lookup(id); !ok && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}

func printCatalog(w io.Writer, c *tweak.Catalog) {
	cyan := color.New(color.FgHiCyan)
	yellow := color.New(color.FgHiYellow)

	for _, t := range c.AllTweaks() {
		if t.Kind() == tweak.ManualOnly {
			yellow.Fprintf(w, "  [manual] %s", t.DisplayName())
		} else {
			cyan.Fprintf(w, "  [auto]   %s", t.DisplayName())
		}
		fmt.Fprintf(w, "  (%s)\n", t.ID())
		fmt.Fprintf(w, "           %s\n", t.Description())
	}
}

func printEnvironment(w io.Writer, env *system.Environment) {
	cyan := color.New(color.FgHiCyan)
	red := color.New(color.FgHiRed)

	cyan.Fprintln(w, "  ═══ Environment ═══")
	fmt.Fprintf(w, "  OS:          %s\n", env.OS)
	fmt.Fprintf(w, "  Platform:    %s\n", env.Platform)
	fmt.Fprintf(w, "  Hostname:    %s\n", env.Hostname)
	fmt.Fprintf(w, "  Temp dir:    %s (%s free)\n", env.TempDir, formatBytesHuman(int64(env.TempFree)))
	if env.IsAdmin {
		fmt.Fprintln(w, "  Elevated:    yes")
	} else {
		red.Fprintln(w, "  Elevated:    no (HKLM and service tweaks will fail)")
	}
}
