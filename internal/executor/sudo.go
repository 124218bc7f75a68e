package executor

// IsRoot returns true if the current process runs as root/administrator.
func IsRoot() bool {
	return isRoot()
}

// CanElevate returns true if the process can obtain root privileges.
func CanElevate() bool {
	return isRoot() || hasSudo()
}

type errNoPrivileges struct{}

func (errNoPrivileges) Error() string {
	return "this operation requires root privileges, but neither running as root nor sudo is available"
}

// ErrNoPrivileges is returned when an operation needs root but cannot elevate.
var ErrNoPrivileges = errNoPrivileges{}
