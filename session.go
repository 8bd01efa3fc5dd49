package main

import (
	"os"

	"solarwin/internal/catalog"
	"solarwin/internal/config"
	"solarwin/internal/engine"
	"solarwin/internal/logging"
	"solarwin/internal/system"
	"solarwin/internal/tweak"

	"github.com/charmbracelet/log"
)

// session is everything a front end needs for one process: the resolved
// config, the logger, the catalog and the engine bound to it.
type session struct {
	cfg        *config.Config
	configPath string
	logger     *log.Logger
	catalog    *tweak.Catalog
	engine     *engine.Engine
	tempDir    string
}

func newSession(flags *rootFlags) (*session, error) {
	cfg, path, err := config.Load(config.LoadOptions{ConfigFilePath: flags.configFile})
	if err != nil {
		return nil, err
	}
	if flags.dryRun {
		cfg.DryRun = true
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, config.AppName)
	if err != nil {
		return nil, err
	}

	tempDir := system.ResolveTempDir(cfg.TempDir)
	cat := catalog.Standard(catalog.Options{TempDir: tempDir, Logger: logger})

	var exec engine.Executor = engine.DirectExecutor{}
	if cfg.DryRun {
		exec = engine.DryRunExecutor{Logger: logger}
	}

	if path != "" {
		logger.Debug("config loaded", "path", path)
	}

	return &session{
		cfg:        cfg,
		configPath: path,
		logger:     logger,
		catalog:    cat,
		engine:     engine.New(cat, engine.WithExecutor(exec), engine.WithLogger(logger)),
		tempDir:    tempDir,
	}, nil
}
