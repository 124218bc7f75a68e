package pacman

import (
	"reflect"
	"testing"
)

func TestMergeAvailable(t *testing.T) {
	installedOut := "vim 9.0.1\nneovim 0.9.0\n"
	availableOut := "extra vim 9.0.2\ncommunity ripgrep 14.0\n"

	results := mergeAvailable(parseInstalled(installedOut), parseAvailable(availableOut))

	byName := indexByName(results)
	if len(results) != 3 {
		t.Fatalf("expected 3 records, got %d", len(results))
	}

	vim := byName["vim"]
	if vim.Version != "9.0.1" || vim.Repo != "extra" || vim.Upgrade != "9.0.2" || !vim.Installed {
		t.Errorf("unexpected vim record: %+v", vim)
	}

	neovim := byName["neovim"]
	if neovim.Repo != "" || neovim.HasUpgrade() || !neovim.Installed {
		t.Errorf("unexpected neovim record: %+v", neovim)
	}

	ripgrep := byName["ripgrep"]
	if ripgrep.Repo != "community" || ripgrep.Version != "14.0" || ripgrep.Installed || ripgrep.HasUpgrade() {
		t.Errorf("unexpected ripgrep record: %+v", ripgrep)
	}
}

func TestMergeAvailableUniqueNames(t *testing.T) {
	installedOut := "vim 9.0.1\n"
	availableOut := "extra vim 9.0.2\ncommunity ripgrep 14.0\n"

	results := mergeAvailable(parseInstalled(installedOut), parseAvailable(availableOut))

	seen := make(map[string]int)
	for _, pkg := range results {
		seen[pkg.Name]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("package %q appears %d times", name, n)
		}
	}
}

func TestMergeAvailableIdempotent(t *testing.T) {
	installedOut := "vim 9.0.1\nneovim 0.9.0\n"
	availableOut := "extra vim 9.0.2\ncommunity ripgrep 14.0\n"

	first := mergeAvailable(parseInstalled(installedOut), parseAvailable(availableOut))
	second := mergeAvailable(parseInstalled(installedOut), parseAvailable(availableOut))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("reconciliation not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestMergeAvailableDuplicateEntryLastWins(t *testing.T) {
	installedOut := "vim 9.0.1\n"
	availableOut := "extra vim 9.0.2\ntesting vim 9.0.1\n"

	results := mergeAvailable(parseInstalled(installedOut), parseAvailable(availableOut))

	vim := indexByName(results)["vim"]
	if vim.Repo != "testing" {
		t.Errorf("repo = %q, want the last occurrence %q", vim.Repo, "testing")
	}
	if vim.HasUpgrade() {
		t.Errorf("last occurrence matches the installed version, upgrade should be unset, got %q", vim.Upgrade)
	}
}

func TestMergeAvailableNotInstalledNeverUpgradable(t *testing.T) {
	results := mergeAvailable(parseInstalled(""), parseAvailable("core glibc 2.39\nextra vim 9.0.2\n"))

	for _, pkg := range results {
		if pkg.Installed {
			t.Errorf("%s should not be installed", pkg.Name)
		}
		if pkg.HasUpgrade() {
			t.Errorf("%s is not installed and must not carry an upgrade", pkg.Name)
		}
	}
}

func TestMergeUpgrades(t *testing.T) {
	installedOut := "vim 9.0.1\nneovim 0.9.0\n"
	upgradeOut := "vim 9.0.1 -> 9.0.2\n"

	results := mergeUpgrades(parseInstalled(installedOut), parseUpgrades(upgradeOut))

	byName := indexByName(results)
	if byName["vim"].Upgrade != "9.0.2" {
		t.Errorf("vim upgrade = %q, want %q", byName["vim"].Upgrade, "9.0.2")
	}
	if byName["neovim"].HasUpgrade() {
		t.Errorf("neovim should have no upgrade, got %q", byName["neovim"].Upgrade)
	}
}

func TestMergeUpgradesUnknownPackageIgnored(t *testing.T) {
	results := mergeUpgrades(parseInstalled("vim 9.0.1\n"), parseUpgrades("linux 6.6.1 -> 6.6.8\n"))

	if len(results) != 1 {
		t.Fatalf("expected 1 record, got %d", len(results))
	}
	if results[0].HasUpgrade() {
		t.Error("upgrade row for an uninstalled package must not create a record")
	}
}

func TestMergeUpgradesPreservesOrder(t *testing.T) {
	results := mergeUpgrades(parseInstalled("a 1\nb 2\nc 3\n"), nil)

	var names []string
	for _, pkg := range results {
		names = append(names, pkg.Name)
	}
	if !reflect.DeepEqual(names, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want installed-list order", names)
	}
}

func indexByName(packages []Package) map[string]Package {
	m := make(map[string]Package, len(packages))
	for _, pkg := range packages {
		m[pkg.Name] = pkg
	}
	return m
}
