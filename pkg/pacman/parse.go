package pacman

import (
	"bufio"
	"strings"
)

// The functions in this file turn raw pacman stdout into typed rows.
// They are deliberately forgiving: blank lines are skipped everywhere
// and empty input yields an empty result, never an error. Column
// positions are fixed per source flag.

// inventory is an insertion-ordered set of installed packages keyed by
// name. Order is preserved so that reconciled listings are stable.
type inventory struct {
	order  []string
	byName map[string]*Package
}

// parseInstalled parses `pacman -Q` output: one "name version" pair per line.
func parseInstalled(out string) *inventory {
	inv := &inventory{byName: make(map[string]*Package)}

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		name := fields[0]
		if _, ok := inv.byName[name]; !ok {
			inv.order = append(inv.order, name)
		}
		inv.byName[name] = &Package{
			Name:      name,
			Version:   fields[1],
			Installed: true,
		}
	}
	return inv
}

// parseAvailable parses `pacman -Sl` output: "repo name version" per line.
func parseAvailable(out string) []Package {
	var packages []Package

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		packages = append(packages, Package{
			Repo:    fields[0],
			Name:    fields[1],
			Version: fields[2],
		})
	}
	return packages
}

// parseUpgrades parses `pacman -Qu` output: "name version -> newversion".
// Lines without the arrow token are skipped; an empty upgrade list is a
// normal outcome, not a failure.
func parseUpgrades(out string) []UpgradeRow {
	var rows []UpgradeRow

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		left, remote, ok := strings.Cut(line, " -> ")
		if !ok {
			continue
		}
		fields := strings.Fields(left)
		if len(fields) == 0 {
			continue
		}
		row := UpgradeRow{Name: fields[0], Remote: strings.TrimSpace(remote)}
		if len(fields) > 1 {
			row.Local = fields[1]
		}
		rows = append(rows, row)
	}
	return rows
}

// parseNames parses one package name per line, as produced by
// `--print-format %n` queries.
func parseNames(out string) []string {
	var names []string

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// parseInfo parses a `pacman -Qi`/`-Si` info block. Each line is split
// on the first colon with both sides trimmed. A line without a colon is
// a continuation of the previous field and is appended to its value,
// joined by two spaces. Field order follows first appearance.
func parseInfo(out string) *Info {
	info := &Info{values: make(map[string]string)}
	var current string

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			if current != "" {
				info.values[current] += "  " + strings.TrimSpace(line)
			}
			continue
		}

		key = strings.TrimSpace(key)
		if _, seen := info.values[key]; !seen {
			info.fields = append(info.fields, key)
		}
		info.values[key] = strings.TrimSpace(value)
		current = key
	}
	return info
}
