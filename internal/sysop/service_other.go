//go:build !windows

package sysop

import (
	"runtime"

	"solarwin/internal/tweak"
)

func (s ServiceStartType) Execute() error {
	if err := s.Start.validate(); err != nil {
		return tweak.Fail(s.Name(), err)
	}
	return tweak.Failf(s.Name(), "service control is unsupported on %s", runtime.GOOS)
}

func (s ServiceStop) Execute() error {
	return tweak.Failf(s.Name(), "service control is unsupported on %s", runtime.GOOS)
}
