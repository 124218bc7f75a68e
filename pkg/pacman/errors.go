package pacman

import (
	"errors"
	"fmt"
)

// Op identifies the facade operation that produced an error.
type Op string

const (
	OpInstall       Op = "install"
	OpRefresh       Op = "refresh"
	OpUpgrade       Op = "upgrade"
	OpRemove        Op = "remove"
	OpListInstalled Op = "list installed"
	OpListAvailable Op = "list available"
	OpListUpgrades  Op = "list upgrades"
	OpInfo          Op = "info"
	OpRequirements  Op = "requirements"
	OpDepends       Op = "depends"
)

// ExecError is returned when pacman exits non-zero. Stderr carries the
// captured diagnostic text verbatim; nothing is synthesized beyond the
// operation label.
type ExecError struct {
	Op       Op
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("pacman %s failed: %s", e.Op, e.Stderr)
}

// Is allows matching against another ExecError by operation.
func (e *ExecError) Is(target error) bool {
	var other *ExecError
	if !errors.As(target, &other) {
		return false
	}
	return other.Op == "" || other.Op == e.Op
}

// ErrNoPackages is returned when an operation that requires package
// names is called with an empty collection.
var ErrNoPackages = errors.New("no packages specified")

// ErrBinaryNotFound is returned when a binary path does not resolve to
// an existing executable file.
var ErrBinaryNotFound = errors.New("executable does not exist")

// AsExecError unwraps err into an *ExecError if it is one.
func AsExecError(err error) (*ExecError, bool) {
	var execErr *ExecError
	if errors.As(err, &execErr) {
		return execErr, true
	}
	return nil, false
}
