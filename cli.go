package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"solarwin/internal/engine"
	"solarwin/internal/presets"
	"solarwin/internal/system"
	"solarwin/internal/tweak"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

func runCLI(s *session) {
	green := color.New(color.FgHiGreen, color.Bold)
	cyan := color.New(color.FgHiCyan)
	yellow := color.New(color.FgHiYellow)
	red := color.New(color.FgHiRed)

	green.Println("\n  ███████╗ ██████╗ ██╗      █████╗ ██████╗    ██╗    ██╗██╗███╗   ██╗")
	green.Println("  ██╔════╝██╔═══██╗██║     ██╔══██╗██╔══██╗   ██║    ██║██║████╗  ██║")
	green.Println("  ███████╗██║   ██║██║     ███████║██████╔╝   ██║ █╗ ██║██║██╔██╗ ██║")
	green.Println("  ╚════██║██║   ██║██║     ██╔══██║██╔══██╗   ██║███╗██║██║██║╚██╗██║")
	green.Println("  ███████║╚██████╔╝███████╗██║  ██║██║  ██║██╗╚███╔███╔╝██║██║ ╚████║")
	green.Println("  ╚══════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝ ╚══╝╚══╝ ╚═╝╚═╝  ╚═══╝")
	fmt.Println()
	cyan.Printf("  General - Performance Tweaks v%s\n", Version)
	fmt.Println("  ─────────────────────────────────────────────")
	if s.cfg.DryRun {
		yellow.Println("  Dry run: operations are logged, nothing is changed.")
	}
	if !system.IsAdmin() {
		red.Println("  ⚠ Not running as Administrator. HKLM and service tweaks will fail.")
	}
	fmt.Println()

	for {
		prompt := promptui.Select{
			Label: "What would you like to do?",
			Items: []string{
				"⚙️  Choose & Apply Tweaks",
				"📦 Apply a Preset",
				"📋 Show Tweak Details",
				"🖥️  Environment",
				"❌ Exit",
			},
			Size: 5,
		}

		i, _, err := prompt.Run()
		if err != nil {
			break
		}

		fmt.Println()

		switch i {
		case 0:
			cliChooseAndApply(s)
		case 1:
			cliApplyPreset(s)
		case 2:
			printCatalog(os.Stdout, s.catalog)
		case 3:
			printEnvironment(os.Stdout, system.Probe(s.tempDir))
		case 4:
			green.Println("  Thanks for using Solar.Win!")
			return
		}
		fmt.Println()
	}
}

// cliChooseAndApply lets the operator toggle tweaks one at a time, then applies the selection.
func cliChooseAndApply(s *session) {
	all := s.catalog.AllTweaks()
	picked := make([]bool, len(all))

	for {
		items := checkboxItems(all, picked)
		prompt := promptui.Select{
			Label:        "Toggle tweaks, then choose Apply",
			Items:        items,
			Size:         len(items),
			HideSelected: true,
		}

		i, _, err := prompt.Run()
		if err != nil {
			return
		}

		switch {
		case i < len(all):
			picked[i] = !picked[i]
		case i == len(all):
			var ids []string
			for j, t := range all {
				if picked[j] {
					ids = append(ids, t.ID())
				}
			}
			report := s.engine.Apply(engine.NewSelection(ids...))
			renderReport(os.Stdout, report)
			return
		default:
			return
		}
	}
}

func cliApplyPreset(s *session) {
	list := presets.AllPresets()
	items := make([]string, len(list)+1)
	for i, p := range list {
		items[i] = fmt.Sprintf("%s - %s", p.Name, p.Description)
	}
	items[len(list)] = "Back"

	prompt := promptui.Select{
		Label: "Select Preset",
		Items: items,
		Size:  len(items),
	}
	i, _, err := prompt.Run()
	if err != nil || i == len(list) {
		return
	}

	if s.cfg.Confirm {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Apply %s (%d tweaks)", list[i].Name, len(list[i].Tweaks)),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			return
		}
	}

	report := s.engine.Apply(engine.NewSelection(list[i].Tweaks...))
	renderReport(os.Stdout, report)
}

func checkboxItems(all []tweak.Tweak, picked []bool) []string {
	items := make([]string, 0, len(all)+2)
	for i, t := range all {
		mark := "[ ]"
		if picked[i] {
			mark = "[x]"
		}
		suffix := ""
		if t.Kind() == tweak.ManualOnly {
			suffix = " (manual)"
		}
		items = append(items, fmt.Sprintf("%s %s%s", mark, t.DisplayName(), suffix))
	}
	items = append(items, "✅ Apply selected", "↩ Back")
	return items
}

// renderReport prints applied tweaks, manual instructions and failures, in
// that order. An empty report prints "No tweaks selected.".
func renderReport(w io.Writer, r *engine.Report) {
	green := color.New(color.FgHiGreen)
	yellow := color.New(color.FgHiYellow)
	red := color.New(color.FgHiRed)

	if r.Empty() {
		fmt.Fprintln(w, "  No tweaks selected.")
		return
	}

	if applied := r.Applied(); len(applied) > 0 {
		names := make([]string, len(applied))
		for i, o := range applied {
			names[i] = o.DisplayName
		}
		green.Fprintf(w, "  ✓ Applied: %s\n", strings.Join(names, ", "))
	}

	if manual := r.ManualRequired(); len(manual) > 0 {
		yellow.Fprintln(w, "  Manual actions required:")
		for _, o := range manual {
			fmt.Fprintf(w, "    • %s: %s\n", o.DisplayName, o.Detail)
		}
	}

	if failed := r.Failed(); len(failed) > 0 {
		red.Fprintln(w, "  ✗ Failed:")
		for _, o := range failed {
			fmt.Fprintf(w, "    • %s: %s\n", o.DisplayName, o.Detail)
		}
	}

	c := r.Counts()
	fmt.Fprintf(w, "\n  %d applied, %d manual, %d failed\n", c.Applied, c.ManualRequired, c.Failed)
}

func formatBytesHuman(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	b := float64(bytes)
	i := 0
	for b >= 1024 && i < len(units)-1 {
		b /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", b, units[i])
}
