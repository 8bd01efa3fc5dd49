package sysop

import (
	"fmt"
	"strings"
)

// ValueType selects how a RegistryValue is written.
type ValueType int

const (
	DWordValue ValueType = iota
	StringValue
)

// RegistryValue creates the key if needed and writes one named value.
type RegistryValue struct {
	Root      string // HKLM, HKCU, HKCR, HKU or HKCC (long forms accepted)
	Path      string
	ValueName string
	Type      ValueType
	DWord     uint32
	Str       string
}

// SetDWORD returns an operation writing a REG_DWORD value.
func SetDWORD(root, path, name string, value uint32) RegistryValue {
	return RegistryValue{Root: root, Path: path, ValueName: name, Type: DWordValue, DWord: value}
}

// SetString returns an operation writing a REG_SZ value.
func SetString(root, path, name, value string) RegistryValue {
	return RegistryValue{Root: root, Path: path, ValueName: name, Type: StringValue, Str: value}
}

func (r RegistryValue) Name() string {
	var v string
	if r.Type == StringValue {
		v = fmt.Sprintf("%q", r.Str)
	} else {
		v = fmt.Sprintf("%d", r.DWord)
	}
	return fmt.Sprintf(`set %s\%s\%s=%s`, r.Root, r.Path, r.ValueName, v)
}

// canonicalRoot converts a root key string to its short form.
func canonicalRoot(rootKey string) (string, error) {
	switch strings.ToUpper(rootKey) {
	case "HKLM", "HKEY_LOCAL_MACHINE":
		return "HKLM", nil
	case "HKCU", "HKEY_CURRENT_USER":
		return "HKCU", nil
	case "HKCR", "HKEY_CLASSES_ROOT":
		return "HKCR", nil
	case "HKU", "HKEY_USERS":
		return "HKU", nil
	case "HKCC", "HKEY_CURRENT_CONFIG":
		return "HKCC", nil
	default:
		return "", fmt.Errorf("unknown registry root key: %s", rootKey)
	}
}
