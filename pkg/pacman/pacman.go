package pacman

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"pacctl/internal/executor"
	"pacctl/pkg/aur"
)

// DefaultBinary is the binary used when none is configured. Pointing
// the client at an AUR helper with a pacman-compatible interface (yay,
// paru) works as well.
const DefaultBinary = "pacman"

// Runner executes a command and captures its output. *executor.Executor
// satisfies it; tests substitute a fake.
type Runner interface {
	Capture(ctx context.Context, name string, args ...string) (executor.Result, error)
}

// Client issues pacman invocations and parses their output. The active
// binary path is the only mutable state and is guarded for concurrent
// readers.
type Client struct {
	mu     sync.RWMutex
	bin    string
	runner Runner
	aur    *aur.Client
}

// New creates a Client using the system pacman binary.
func New() (*Client, error) {
	return NewWithBinary(DefaultBinary)
}

// NewWithBinary creates a Client using the given binary, which may be a
// bare name resolved through PATH or an explicit path.
func NewWithBinary(bin string) (*Client, error) {
	resolved, err := resolveBinary(bin)
	if err != nil {
		return nil, err
	}
	return &Client{
		bin:    resolved,
		runner: executor.New(false, false),
		aur:    aur.NewClient(),
	}, nil
}

// SetRunner replaces the command runner, e.g. with a sudo-elevating
// executor or a test fake.
func (c *Client) SetRunner(r Runner) {
	c.runner = r
}

// SetAUR replaces the AUR client used by IsAUR.
func (c *Client) SetAUR(client *aur.Client) {
	c.aur = client
}

// Bin returns the active binary path.
func (c *Client) Bin() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bin
}

// SetBin replaces the active binary. The path must resolve to an
// existing executable file or ErrBinaryNotFound is returned.
func (c *Client) SetBin(bin string) error {
	resolved, err := resolveBinary(bin)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.bin = resolved
	c.mu.Unlock()
	return nil
}

// resolveBinary turns a name or path into an absolute executable path.
func resolveBinary(bin string) (string, error) {
	if bin == "" {
		return "", fmt.Errorf("%w: empty path", ErrBinaryNotFound)
	}
	if strings.ContainsAny(bin, `/\`) {
		fi, err := os.Stat(bin)
		if err != nil || fi.IsDir() || fi.Mode().Perm()&0o111 == 0 {
			return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, bin)
		}
		return bin, nil
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, bin)
	}
	return path, nil
}

// run builds the argument vector [--noconfirm, flag, pkgs..., extra...]
// and executes it against the active binary. Empty extra flags are
// dropped. Exit codes are captured, never interpreted here.
func (c *Client) run(ctx context.Context, flag string, pkgs []string, extra ...string) (executor.Result, error) {
	args := make([]string, 0, 2+len(pkgs)+len(extra))
	args = append(args, "--noconfirm", flag)
	args = append(args, pkgs...)
	for _, f := range extra {
		if f != "" {
			args = append(args, f)
		}
	}
	return c.runner.Capture(ctx, c.Bin(), args...)
}

// Install installs the given packages. When needed is true, packages
// that are already up to date are skipped.
func (c *Client) Install(ctx context.Context, pkgs []string, needed bool) error {
	if len(pkgs) == 0 {
		return ErrNoPackages
	}
	var neededFlag string
	if needed {
		neededFlag = "--needed"
	}
	res, err := c.run(ctx, "-S", pkgs, neededFlag)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ExecError{Op: OpInstall, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// Refresh syncs the local package databases.
func (c *Client) Refresh(ctx context.Context) error {
	res, err := c.run(ctx, "-Sy", nil)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ExecError{Op: OpRefresh, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// Upgrade upgrades the given packages, or every installed package when
// pkgs is empty.
func (c *Client) Upgrade(ctx context.Context, pkgs []string) error {
	if len(pkgs) > 0 {
		return c.Install(ctx, pkgs, true)
	}
	res, err := c.run(ctx, "-Su", nil)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ExecError{Op: OpUpgrade, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// Remove uninstalls the given packages and their dependent cascade.
// When purge is true, configuration files are removed too.
func (c *Client) Remove(ctx context.Context, pkgs []string, purge bool) error {
	if len(pkgs) == 0 {
		return ErrNoPackages
	}
	flag := "-Rc"
	if purge {
		flag = "-Rcn"
	}
	res, err := c.run(ctx, flag, pkgs)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ExecError{Op: OpRemove, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// All returns every package known to pacman: the installed inventory
// reconciled against the sync databases, with repo annotations and
// upgrade candidates filled in.
func (c *Client) All(ctx context.Context) ([]Package, error) {
	res, err := c.run(ctx, "-Q", nil)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExecError{Op: OpListInstalled, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	inv := parseInstalled(res.Stdout)

	res, err = c.run(ctx, "-Sl", nil)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExecError{Op: OpListAvailable, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return mergeAvailable(inv, parseAvailable(res.Stdout)), nil
}

// Installed returns the installed packages with upgrade candidates
// annotated from `-Qu`. An empty upgrade list is a normal outcome:
// `-Qu` exits non-zero when nothing is upgradable, so only a non-zero
// exit combined with stderr output counts as a failure.
func (c *Client) Installed(ctx context.Context) ([]Package, error) {
	res, err := c.run(ctx, "-Q", nil)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExecError{Op: OpListInstalled, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	inv := parseInstalled(res.Stdout)

	res, err = c.run(ctx, "-Qu", nil)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 && res.Stderr != "" {
		return nil, &ExecError{Op: OpListUpgrades, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return mergeUpgrades(inv, parseUpgrades(res.Stdout)), nil
}

// Available returns every package in the sync databases.
func (c *Client) Available(ctx context.Context) ([]Package, error) {
	res, err := c.run(ctx, "-Sl", nil)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExecError{Op: OpListAvailable, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return parseAvailable(res.Stdout), nil
}

// Info returns the metadata block for a package, querying the local
// database when the package is installed and the sync databases
// otherwise.
func (c *Client) Info(ctx context.Context, pkg string) (*Info, error) {
	installed, err := c.IsInstalled(ctx, pkg)
	if err != nil {
		return nil, err
	}
	flag := "-Si"
	if installed {
		flag = "-Qi"
	}
	res, err := c.run(ctx, flag, []string{pkg})
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExecError{Op: OpInfo, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return parseInfo(res.Stdout), nil
}

// NeedsFor returns the not-yet-installed dependencies that installing
// the given packages would pull in.
func (c *Client) NeedsFor(ctx context.Context, pkgs []string) ([]string, error) {
	res, err := c.run(ctx, "-Sp", pkgs, "--print-format", "%n")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExecError{Op: OpRequirements, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return parseNames(res.Stdout), nil
}

// DependsFor returns the installed packages that depend on the given
// packages and would be removed with them.
func (c *Client) DependsFor(ctx context.Context, pkgs []string) ([]string, error) {
	res, err := c.run(ctx, "-Rpc", pkgs, "--print-format", "%n")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExecError{Op: OpDepends, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return parseNames(res.Stdout), nil
}

// IsInstalled reports whether pkg is installed. A non-zero exit simply
// means "not installed" and is never an error.
func (c *Client) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	res, err := c.run(ctx, "-Q", []string{pkg})
	if err != nil {
		return false, err
	}
	return res.ExitCode == 0, nil
}

// IsAUR reports whether pkg lives in the AUR rather than an official
// repository. The check is best effort and non-authoritative: an exact
// name match from the stock pacman binary means "official", otherwise
// the AUR search decides, and any failure along the way degrades to
// false.
func (c *Client) IsAUR(ctx context.Context, pkg string) bool {
	// Always query the stock binary here: the configured binary may be
	// an AUR helper, which would also match AUR packages on -Ssq.
	res, err := c.runner.Capture(ctx, DefaultBinary, "--noconfirm", "-Ssq", pkg)
	if err == nil {
		for _, name := range parseNames(res.Stdout) {
			if name == pkg {
				return false
			}
		}
	}

	found, err := c.aur.Exists(ctx, pkg)
	if err != nil {
		return false
	}
	return found
}
