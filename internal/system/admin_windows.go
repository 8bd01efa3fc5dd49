//go:build windows

package system

import "golang.org/x/sys/windows"

// IsAdmin checks whether the current process is running with administrator privileges.
func IsAdmin() bool {
	var sid *windows.SID

	// SID for the BUILTIN\Administrators group.
	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid,
	)
	if err != nil {
		return false
	}
	defer windows.FreeSid(sid)

	// A zero token makes CheckTokenMembership use the process token.
	token := windows.Token(0)
	isMember, err := token.IsMember(sid)
	if err != nil {
		return false
	}
	return isMember
}
