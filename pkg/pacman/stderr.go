package pacman

import "regexp"

// DetailKind categorizes a recognized pacman failure mode.
type DetailKind int

const (
	DetailUnknown DetailKind = iota
	DetailDependencyConflict
	DetailTargetNotFound
	DetailDatabaseLocked
)

// Detail is the result of classifying pacman stderr output. It never
// replaces the raw text, it only adds structure on top of it.
type Detail struct {
	Kind       DetailKind
	Packages   []string // affected packages, when extractable
	Suggestion string
}

var (
	// "error: failed to prepare transaction (could not satisfy dependencies)"
	dependencyFailurePattern = regexp.MustCompile(`failed to prepare transaction.*could not satisfy dependencies`)

	// ":: installing pkg (1.2.3-4) breaks dependency 'pkg=1.2.3-1' required by other-pkg"
	breaksDepPattern = regexp.MustCompile(`:: installing (\S+) .* breaks dependency .* required by (\S+)`)

	// ":: pkg and other-pkg are in conflict"
	conflictPattern = regexp.MustCompile(`:: (\S+) and (\S+) are in conflict`)

	// "error: target not found: pkg"
	notFoundPattern = regexp.MustCompile(`error: target not found: (\S+)`)

	// "error: failed to init transaction (unable to lock database)"
	dbLockedPattern = regexp.MustCompile(`failed to init transaction.*unable to lock database`)
)

// Classify inspects pacman stderr text and returns a structured Detail
// for known failure modes, or nil when the text matches nothing.
func Classify(stderr string) *Detail {
	if stderr == "" {
		return nil
	}

	if dependencyFailurePattern.MatchString(stderr) || conflictPattern.MatchString(stderr) {
		return &Detail{
			Kind:       DetailDependencyConflict,
			Packages:   conflictingPackages(stderr),
			Suggestion: "upgrade the system first so the sync database and installed packages agree",
		}
	}

	if matches := notFoundPattern.FindAllStringSubmatch(stderr, -1); len(matches) > 0 {
		d := &Detail{Kind: DetailTargetNotFound}
		for _, m := range matches {
			d.Packages = append(d.Packages, m[1])
		}
		return d
	}

	if dbLockedPattern.MatchString(stderr) {
		return &Detail{
			Kind:       DetailDatabaseLocked,
			Suggestion: "another package manager may be running; wait for it or remove /var/lib/pacman/db.lck",
		}
	}

	return nil
}

// conflictingPackages extracts package names from dependency conflict
// messages, deduplicated in order of appearance.
func conflictingPackages(stderr string) []string {
	seen := make(map[string]bool)
	var packages []string

	add := func(name string) {
		if name != "" && !seen[name] {
			packages = append(packages, name)
			seen[name] = true
		}
	}

	for _, m := range breaksDepPattern.FindAllStringSubmatch(stderr, -1) {
		add(m[1])
		add(m[2])
	}
	for _, m := range conflictPattern.FindAllStringSubmatch(stderr, -1) {
		add(m[1])
		add(m[2])
	}
	return packages
}
