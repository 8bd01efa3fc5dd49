//go:build windows

package sysop

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"solarwin/internal/tweak"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

func (s ServiceStartType) Execute() error {
	if err := s.Start.validate(); err != nil {
		return tweak.Fail(s.Name(), err)
	}

	m, err := mgr.Connect()
	if err != nil {
		return tweak.Fail(s.Name(), fmt.Errorf("failed to connect to service manager: %w", err))
	}
	defer m.Disconnect()

	h, err := m.OpenService(s.Service)
	if err != nil {
		if s.Optional && errors.Is(err, windows.ERROR_SERVICE_DOES_NOT_EXIST) {
			return nil
		}
		return tweak.Fail(s.Name(), fmt.Errorf("failed to open service: %w", err))
	}
	defer h.Close()

	cfg, err := h.Config()
	if err != nil {
		return tweak.Fail(s.Name(), fmt.Errorf("failed to query config: %w", err))
	}

	cfg.StartType = startTypeCode(s.Start)
	if err := h.UpdateConfig(cfg); err != nil {
		return tweak.Fail(s.Name(), fmt.Errorf("failed to update config: %w", err))
	}
	return nil
}

func (s ServiceStop) Execute() error {
	m, err := mgr.Connect()
	if err != nil {
		return tweak.Fail(s.Name(), fmt.Errorf("failed to connect to service manager: %w", err))
	}
	defer m.Disconnect()

	h, err := m.OpenService(s.Service)
	if err != nil {
		return tweak.Fail(s.Name(), fmt.Errorf("failed to open service: %w", err))
	}
	defer h.Close()

	status, err := h.Control(svc.Stop)
	if err != nil {
		if errors.Is(err, windows.ERROR_SERVICE_NOT_ACTIVE) {
			return nil
		}
		return tweak.Fail(s.Name(), err)
	}

	deadline := time.Now().Add(stopTimeout)
	for status.State != svc.Stopped {
		if time.Now().After(deadline) {
			return tweak.Failf(s.Name(), "service did not stop within %s", stopTimeout)
		}
		time.Sleep(300 * time.Millisecond)
		status, err = h.Query()
		if err != nil {
			return tweak.Fail(s.Name(), fmt.Errorf("failed to query status: %w", err))
		}
	}
	return nil
}

func startTypeCode(t StartType) uint32 {
	switch StartType(strings.ToLower(string(t))) {
	case StartAuto:
		return mgr.StartAutomatic
	case StartDisabled:
		return mgr.StartDisabled
	default:
		return mgr.StartManual
	}
}
