//go:build windows

package sysop

import (
	"fmt"

	"solarwin/internal/tweak"

	"golang.org/x/sys/windows/registry"
)

func (r RegistryValue) Execute() error {
	root, err := rootKey(r.Root)
	if err != nil {
		return tweak.Fail(r.Name(), err)
	}

	k, _, err := registry.CreateKey(root, r.Path, registry.SET_VALUE)
	if err != nil {
		return tweak.Fail(r.Name(), fmt.Errorf("failed to create/open key %s: %w", r.Path, err))
	}
	defer k.Close()

	switch r.Type {
	case DWordValue:
		err = k.SetDWordValue(r.ValueName, r.DWord)
	case StringValue:
		err = k.SetStringValue(r.ValueName, r.Str)
	default:
		return tweak.Failf(r.Name(), "unsupported value type %d", r.Type)
	}
	if err != nil {
		return tweak.Fail(r.Name(), fmt.Errorf("failed to set %s: %w", r.ValueName, err))
	}
	return nil
}

func rootKey(name string) (registry.Key, error) {
	short, err := canonicalRoot(name)
	if err != nil {
		return 0, err
	}
	switch short {
	case "HKLM":
		return registry.LOCAL_MACHINE, nil
	case "HKCU":
		return registry.CURRENT_USER, nil
	case "HKCR":
		return registry.CLASSES_ROOT, nil
	case "HKU":
		return registry.USERS, nil
	default:
		return registry.CURRENT_CONFIG, nil
	}
}
