package presets

// Preset is a named selection of tweak ids offered as a shortcut.
type Preset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tweaks      []string `json:"tweaks"`
}

// AllPresets returns the predefined presets.
func AllPresets() []Preset {
	return []Preset{
		Performance(),
		Privacy(),
		Gaming(),
		Everything(),
	}
}

// GetPresetByID returns a preset by its ID, or nil if not found.
func GetPresetByID(id string) *Preset {
	for _, p := range AllPresets() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Performance trims visual and background load.
func Performance() Preset {
	return Preset{
		ID:          "performance",
		Name:        "Performance",
		Description: "Visual effects off, High Performance power plan, indexing off, temp files cleared, extra services on manual start.",
		Tweaks: []string{
			"disable_visual_effects",
			"high_performance_power_plan",
			"disable_search_indexing",
			"clear_temp_files",
			"disable_explorer_folder_discovery",
			"set_unneeded_services_manual",
		},
	}
}

// Privacy turns off telemetry and tracking.
func Privacy() Preset {
	return Preset{
		ID:          "privacy",
		Name:        "Privacy",
		Description: "Telemetry services and policies off, browsers debloated, location tracking off.",
		Tweaks: []string{
			"disable_telemetry",
			"debloat_edge",
			"debloat_chrome",
			"disable_location_tracking",
		},
	}
}

// Gaming favors the foreground game.
func Gaming() Preset {
	return Preset{
		ID:          "gaming",
		Name:        "Gaming",
		Description: "Game Mode on, High Performance power plan, visual effects off, background apps reviewed by hand.",
		Tweaks: []string{
			"disable_visual_effects",
			"high_performance_power_plan",
			"enable_game_mode",
			"disable_background_apps",
		},
	}
}

// Everything selects every tweak, manual ones included.
func Everything() Preset {
	return Preset{
		ID:          "everything",
		Name:        "Everything",
		Description: "Every tweak in the list. Manual ones are reported with instructions.",
		Tweaks: []string{
			"disable_visual_effects",
			"high_performance_power_plan",
			"disable_search_indexing",
			"clear_temp_files",
			"enable_game_mode",
			"disable_background_apps",
			"disable_startup_programs",
			"disable_telemetry",
			"debloat_edge",
			"debloat_chrome",
			"disable_location_tracking",
			"disable_explorer_folder_discovery",
			"set_unneeded_services_manual",
		},
	}
}
