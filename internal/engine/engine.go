package engine

import (
	"sync"
	"time"

	"solarwin/internal/logging"
	"solarwin/internal/tweak"

	"github.com/charmbracelet/log"
)

// Engine applies selections against one catalog. Apply calls on the same
// engine are serialized so two cycles never interleave system side effects.
type Engine struct {
	mu      sync.Mutex
	catalog *tweak.Catalog
	exec    Executor
	logger  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithExecutor replaces the default DirectExecutor.
func WithExecutor(x Executor) Option {
	return func(e *Engine) {
		if x != nil {
			e.exec = x
		}
	}
}

// WithLogger sets the logger used for per-operation and per-outcome lines.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine for catalog.
func New(catalog *tweak.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		exec:    DirectExecutor{},
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine applies from.
func (e *Engine) Catalog() *tweak.Catalog {
	return e.catalog
}

// Apply walks the catalog in order and handles every tweak whose id is in sel.
// Ids that are not in the catalog produce no outcome. Manual tweaks are
// reported with their instructions and never executed. Automated tweaks stop
// at their first failing operation; the cycle itself always continues.
func (e *Engine) Apply(sel Selection) *Report {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	report := &Report{Outcomes: make([]Outcome, 0, len(sel))}

	for _, t := range e.catalog.AllTweaks() {
		if !sel.Has(t.ID()) {
			continue
		}
		outcome := e.applyTweak(t)
		e.logOutcome(outcome)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	c := report.Counts()
	e.logger.Info("apply cycle finished",
		"selected", len(sel),
		"applied", c.Applied,
		"manual", c.ManualRequired,
		"failed", c.Failed,
		"took", time.Since(start).Round(time.Millisecond))

	return report
}

func (e *Engine) applyTweak(t tweak.Tweak) Outcome {
	outcome := Outcome{TweakID: t.ID(), DisplayName: t.DisplayName()}

	switch t.Kind() {
	case tweak.ManualOnly:
		outcome.Status = StatusManualRequired
		outcome.Detail = t.Description()
		return outcome

	case tweak.Automated:
		for i, op := range t.Action() {
			e.logger.Debug("running operation", "tweak", t.ID(), "step", i+1, "op", op.Name())
			if err := safeExecute(e.exec, op); err != nil {
				outcome.Status = StatusFailed
				outcome.Detail = err.Error()
				return outcome
			}
		}
		outcome.Status = StatusApplied
		return outcome

	default:
		outcome.Status = StatusFailed
		outcome.Detail = "unsupported tweak kind " + t.Kind().String()
		return outcome
	}
}

func (e *Engine) logOutcome(o Outcome) {
	switch o.Status {
	case StatusFailed:
		e.logger.Warn("tweak failed", "tweak", o.TweakID, "err", o.Detail)
	case StatusManualRequired:
		e.logger.Info("tweak needs manual action", "tweak", o.TweakID)
	default:
		e.logger.Info("tweak applied", "tweak", o.TweakID)
	}
}

// Apply runs sel against catalog with the live executor.
func Apply(catalog *tweak.Catalog, sel Selection) *Report {
	return New(catalog).Apply(sel)
}
