package main

import (
	"context"

	"solarwin/internal/engine"
	"solarwin/internal/presets"
	"solarwin/internal/system"
	"solarwin/internal/tweak"
)

// App is bound to the window. It only translates between the page and the engine.
type App struct {
	ctx context.Context
	s   *session
}

// TweakInfo is the page's view of a catalog entry.
type TweakInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Manual      bool   `json:"manual"`
}

func NewApp(s *session) *App {
	return &App{s: s}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// ============================================================
// Tweaks
// ============================================================

func (a *App) GetTweaks() []TweakInfo {
	return tweakInfos(a.s.catalog)
}

func (a *App) ApplyTweaks(ids []string) *engine.Report {
	return a.s.engine.Apply(engine.NewSelection(ids...))
}

func (a *App) GetPresets() []presets.Preset {
	return presets.AllPresets()
}

// ============================================================
// Environment
// ============================================================

func (a *App) GetEnvironment() *system.Environment {
	return system.Probe(a.s.tempDir)
}

func (a *App) IsDryRun() bool {
	return a.s.cfg.DryRun
}

func tweakInfos(c *tweak.Catalog) []TweakInfo {
	all := c.AllTweaks()
	out := make([]TweakInfo, len(all))
	for i, t := range all {
		out[i] = TweakInfo{
			ID:          t.ID(),
			Name:        t.DisplayName(),
			Description: t.Description(),
			Manual:      t.Kind() == tweak.ManualOnly,
		}
	}
	return out
}
