//go:build !windows

package sysop

import (
	"runtime"

	"solarwin/internal/tweak"
)

func (r RegistryValue) Execute() error {
	if _, err := canonicalRoot(r.Root); err != nil {
		return tweak.Fail(r.Name(), err)
	}
	return tweak.Failf(r.Name(), "registry is unsupported on %s", runtime.GOOS)
}
