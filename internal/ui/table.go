package ui

import (
	"fmt"
	"os"
	"text/tabwriter"

	"pacctl/pkg/pacman"
)

// PrintPackages prints package records in a formatted table.
func PrintPackages(packages []pacman.Package) {
	if len(packages) == 0 {
		MutedMsg("No packages found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, Bold("REPO")+"\t"+Bold("NAME")+"\t"+Bold("VERSION")+"\t"+Bold("STATUS"))

	for _, pkg := range packages {
		repo := pkg.Repo
		if repo == "" {
			repo = "-"
		}

		status := ""
		if pkg.Installed {
			status = Installed.Sprint("installed")
		}
		if pkg.HasUpgrade() {
			status += " " + UpgradeVersion.Sprint(SymbolArrow+" "+pkg.Upgrade)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			PackageRepo.Sprint(repo),
			PackageName.Sprint(pkg.Name),
			PackageVersion.Sprint(pkg.Version),
			status)
	}

	w.Flush()
}

// PrintUpgradable prints only the packages with a pending upgrade.
func PrintUpgradable(packages []pacman.Package) {
	var upgradable []pacman.Package
	for _, pkg := range packages {
		if pkg.HasUpgrade() {
			upgradable = append(upgradable, pkg)
		}
	}

	if len(upgradable) == 0 {
		SuccessMsg("Everything is up to date")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, Bold("NAME")+"\t"+Bold("CURRENT")+"\t"+Bold("AVAILABLE"))
	for _, pkg := range upgradable {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			PackageName.Sprint(pkg.Name),
			PackageVersion.Sprint(pkg.Version),
			UpgradeVersion.Sprint(pkg.Upgrade))
	}
	w.Flush()
}

// PrintInfo prints an info block with its original field order.
func PrintInfo(info *pacman.Info) {
	if info == nil || info.Len() == 0 {
		ErrorMsg("No package information available")
		return
	}

	for _, field := range info.Fields() {
		value, _ := info.Get(field)
		fmt.Printf("  %s: %s\n", Cyan(field), value)
	}
}
