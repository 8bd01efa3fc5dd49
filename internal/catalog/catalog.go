// Package catalog holds the fixed table of tweaks the application offers.
package catalog

import (
	"solarwin/internal/sysop"
	"solarwin/internal/tweak"

	"github.com/charmbracelet/log"
)

// Options carries the environment-dependent parts of the table.
type Options struct {
	// TempDir is emptied by the "Clear Temporary Files" tweak.
	TempDir string
	// Logger receives per-entry detail from the cleanup operation. Optional.
	Logger *log.Logger
}

const (
	policiesEdge     = `SOFTWARE\Policies\Microsoft\Edge`
	policiesChrome   = `SOFTWARE\Policies\Google\Chrome`
	policiesLocation = `SOFTWARE\Policies\Microsoft\Windows\LocationAndSensors`
)

// unneededServices are switched to manual start by set_unneeded_services_manual.
var unneededServices = []string{
	"XblGameSave",
	"XblAuthManager",
	"XboxNetApiSvc",
	"WMPNetworkSvc",
	"DiagTrack",
	"RetailDemo",
	"WerSvc",
	"RemoteRegistry",
	"Fax",
	"diagnosticshub.standardcollector.service",
	"PcaSvc",
}

// Standard returns the application's tweak catalog, in display order.
func Standard(opts Options) *tweak.Catalog {
	return tweak.MustCatalog(
		tweak.NewAutomated("disable_visual_effects",
			"Disable Visual Effects",
			"Reduces GPU/CPU load by disabling Windows animations and transparency.",
			sysop.SetDWORD("HKCU", `Software\Microsoft\Windows\CurrentVersion\Explorer\VisualEffects`, "VisualFXSetting", 2),
		),
		tweak.NewAutomated("high_performance_power_plan",
			"High Performance Power Plan",
			"Sets power plan to High Performance for better CPU/GPU speed (may increase power usage).",
			sysop.PowerPlan{GUID: sysop.HighPerformancePlan},
		),
		tweak.NewAutomated("disable_search_indexing",
			"Disable Windows Search Indexing",
			"Reduces disk/CPU usage for faster performance (not recommended if you rely on search).",
			sysop.Disable("WSearch")...,
		),
		tweak.NewAutomated("clear_temp_files",
			"Clear Temporary Files",
			"Deletes temporary files to free up disk space and improve I/O performance.",
			sysop.ClearDirectory{Dir: opts.TempDir, Logger: opts.Logger},
		),
		tweak.NewAutomated("enable_game_mode",
			"Enable Game Mode",
			"Optimizes Windows for gaming by prioritizing game performance.",
			sysop.SetDWORD("HKCU", `Software\Microsoft\GameBar`, "AllowAutoGameMode", 1),
		),
		tweak.NewManual("disable_background_apps",
			"Disable Background Apps",
			"Stops unnecessary apps from running in the background to free up resources. "+
				"Manual action: Go to Settings > Apps > Apps & features > Background apps, and turn off unnecessary apps.",
		),
		tweak.NewManual("disable_startup_programs",
			"Disable Startup Programs",
			"Prevents non-essential programs from launching at boot to speed up startup. "+
				"Manual action: Open Task Manager (Ctrl+Shift+Esc) > Startup tab, and disable unnecessary programs.",
		),
		tweak.NewAutomated("disable_telemetry",
			"Disable Telemetry",
			"Reduces background data collection by disabling telemetry services, improving performance and privacy (reversible via Services settings).",
			concat(
				sysop.Disable("DiagTrack"),
				sysop.Disable("dmwappushservice"),
				ops(sysop.SetDWORD("HKLM", `SOFTWARE\Microsoft\Windows\CurrentVersion\Policies\DataCollection`, "AllowTelemetry", 0)),
			)...,
		),
		tweak.NewAutomated("debloat_edge",
			"Debloat Microsoft Edge",
			"Disables unnecessary features and telemetry in Microsoft Edge for better performance and privacy (reversible via Edge settings or registry).",
			sysop.SetDWORD("HKLM", policiesEdge, "DiagnosticData", 0),
			sysop.SetDWORD("HKLM", policiesEdge, "HideFirstRunExperience", 1),
			sysop.SetDWORD("HKLM", policiesEdge, "HubsSidebarEnabled", 0),
			sysop.SetDWORD("HKLM", policiesEdge, "ShowMicrosoftRewards", 0),
			sysop.SetDWORD("HKLM", policiesEdge, "EdgeShoppingAssistantEnabled", 0),
		),
		tweak.NewAutomated("debloat_chrome",
			"Debloat Google Chrome",
			"Disables telemetry and unnecessary features in Google Chrome for improved performance and privacy (reversible via Chrome settings).",
			sysop.SetDWORD("HKLM", policiesChrome, "MetricsReportingEnabled", 0),
			sysop.SetDWORD("HKLM", policiesChrome, "ChromeCleanupEnabled", 0),
			sysop.SetString("HKLM", policiesChrome, "ExtensionInstallBlocklist", "*"),
			sysop.SetDWORD("HKLM", policiesChrome, "PersonalizedSearchSuggestions", 0),
		),
		tweak.NewAutomated("disable_location_tracking",
			"Disable Location Tracking",
			"Disables Windows location services to improve privacy and reduce resource usage (reversible via Settings or Services).",
			concat(
				sysop.Disable("lfsvc"),
				ops(
					sysop.SetDWORD("HKLM", policiesLocation, "DisableLocation", 1),
					sysop.SetDWORD("HKLM", policiesLocation, "DisableSensors", 1),
				),
			)...,
		),
		tweak.NewAutomated("disable_explorer_folder_discovery",
			"Disable Explorer Automatic Folder Discovery",
			"Disables File Explorer's automatic folder type detection to reduce CPU/disk usage (reversible via registry or Explorer settings).",
			sysop.SetDWORD("HKCU", `Software\Microsoft\Windows\CurrentVersion\Explorer\Advanced`, "AutoCheckSelect", 0),
			sysop.SetDWORD("HKLM", `SOFTWARE\Microsoft\Windows\CurrentVersion\Explorer`, "NoAutodetectFolderType", 1),
		),
		tweak.NewAutomated("set_unneeded_services_manual",
			"Set Unneeded Services to Manual",
			"Sets certain non-essential Windows services to Manual startup to save resources.",
			demandStart(unneededServices)...,
		),
	)
}

func demandStart(services []string) []tweak.Operation {
	out := make([]tweak.Operation, 0, len(services))
	for _, s := range services {
		// Not every edition ships every service; a missing one is already not auto-starting.
		out = append(out, sysop.ServiceStartType{Service: s, Start: sysop.StartDemand, Optional: true})
	}
	return out
}

func ops(o ...tweak.Operation) []tweak.Operation { return o }

func concat(groups ...[]tweak.Operation) []tweak.Operation {
	var out []tweak.Operation
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
