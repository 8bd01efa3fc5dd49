package sysop

import (
	"fmt"
	"strings"

	"solarwin/internal/cmd"
	"solarwin/internal/tweak"
)

// HighPerformancePlan is the built-in "High performance" scheme.
const HighPerformancePlan = "8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c"

// PowerPlan activates a power scheme through powercfg.
type PowerPlan struct {
	GUID string
}

func (p PowerPlan) Name() string {
	return fmt.Sprintf("activate power plan %s", p.GUID)
}

func (p PowerPlan) Execute() error {
	if !isGUID(p.GUID) {
		return tweak.Failf(p.Name(), "invalid power plan GUID %q", p.GUID)
	}

	out, err := cmd.Hidden("powercfg", "/setactive", p.GUID).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return tweak.Fail(p.Name(), err)
		}
		return tweak.Fail(p.Name(), fmt.Errorf("%w (%s)", err, msg))
	}
	return nil
}

// isGUID checks the 8-4-4-4-12 hex layout.
func isGUID(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 36 {
		return false
	}
	for i, c := range s {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			if c != '-' {
				return false
			}
		} else {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
				return false
			}
		}
	}
	return true
}
