package sysop

import (
	"fmt"
	"strings"
	"time"

	"solarwin/internal/tweak"
)

// StartType is a service start mode as accepted by `sc config start=`.
type StartType string

const (
	StartAuto     StartType = "auto"
	StartDemand   StartType = "demand"
	StartDisabled StartType = "disabled"
)

// stopTimeout bounds how long ServiceStop waits for SERVICE_STOPPED.
const stopTimeout = 20 * time.Second

// ServiceStartType changes a service's start mode. When Optional is set a
// service that is not installed counts as done.
type ServiceStartType struct {
	Service  string
	Start    StartType
	Optional bool
}

// ServiceStop stops a running service. A service that is already stopped counts as done.
type ServiceStop struct {
	Service string
}

// Disable returns the operations that disable a service and then stop it.
func Disable(service string) []tweak.Operation {
	return []tweak.Operation{
		ServiceStartType{Service: service, Start: StartDisabled},
		ServiceStop{Service: service},
	}
}

func (s ServiceStartType) Name() string {
	return fmt.Sprintf("set service %s start=%s", s.Service, s.Start)
}

func (s ServiceStop) Name() string {
	return fmt.Sprintf("stop service %s", s.Service)
}

func (t StartType) validate() error {
	switch StartType(strings.ToLower(string(t))) {
	case StartAuto, StartDemand, StartDisabled:
		return nil
	default:
		return fmt.Errorf("unknown start type %q", string(t))
	}
}
