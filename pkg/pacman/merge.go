package pacman

// mergeAvailable reconciles the installed inventory against the sync
// database listing. Installed records matched by name gain their Repo
// annotation and, when the sync version differs from the installed one,
// an Upgrade candidate. Unmatched sync entries are emitted as
// not-installed records. Installed packages with no sync entry (foreign
// or removed-repo packages) are kept as-is. If the same name appears
// twice in the available list, the last occurrence wins.
func mergeAvailable(inv *inventory, available []Package) []Package {
	var results []Package

	for _, avail := range available {
		if installed, ok := inv.byName[avail.Name]; ok {
			installed.Repo = avail.Repo
			if installed.Version != avail.Version {
				installed.Upgrade = avail.Version
			} else {
				installed.Upgrade = ""
			}
			continue
		}
		results = append(results, Package{
			Name:    avail.Name,
			Version: avail.Version,
			Repo:    avail.Repo,
		})
	}

	for _, name := range inv.order {
		results = append(results, *inv.byName[name])
	}
	return results
}

// mergeUpgrades annotates installed records with the candidate versions
// reported by `pacman -Qu`. Rows naming packages that are not in the
// inventory are ignored.
func mergeUpgrades(inv *inventory, upgrades []UpgradeRow) []Package {
	for _, row := range upgrades {
		if installed, ok := inv.byName[row.Name]; ok {
			installed.Upgrade = row.Remote
		}
	}

	results := make([]Package, 0, len(inv.order))
	for _, name := range inv.order {
		results = append(results, *inv.byName[name])
	}
	return results
}
