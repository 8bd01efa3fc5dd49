package system

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
)

// Environment describes the machine the tweaks are about to run on. Nothing in
// it is enforced; the CLI and GUI use it to warn the operator.
type Environment struct {
	OS       string  `json:"os"`
	Platform string  `json:"platform"`
	Hostname string  `json:"hostname"`
	IsAdmin  bool    `json:"isAdmin"`
	TempDir  string  `json:"tempDir"`
	TempFree uint64  `json:"tempFree"`
	TempUsed float64 `json:"tempUsed"`
}

// Probe gathers the environment. Lookups that fail leave their fields empty.
func Probe(tempDir string) *Environment {
	env := &Environment{
		OS:      runtime.GOOS,
		IsAdmin: IsAdmin(),
		TempDir: ResolveTempDir(tempDir),
	}

	if hostInfo, err := host.Info(); err == nil {
		env.Hostname = hostInfo.Hostname
		env.Platform = hostInfo.Platform + " " + hostInfo.PlatformVersion
	}

	if usage, err := disk.Usage(env.TempDir); err == nil {
		env.TempFree = usage.Free
		env.TempUsed = usage.UsedPercent
	}

	return env
}

// ResolveTempDir returns configured when set, otherwise %TEMP%, otherwise the
// platform default.
func ResolveTempDir(configured string) string {
	if configured != "" {
		return configured
	}
	if t := os.Getenv("TEMP"); t != "" {
		return t
	}
	return os.TempDir()
}
