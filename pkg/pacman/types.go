// Package pacman is a typed control and query layer over the pacman
// command-line tool. It shells out with specific flag combinations,
// parses the line-oriented output into structured records and merges
// the installed and available package inventories into one view.
package pacman

// Package represents a single package record from a query.
type Package struct {
	Name      string `json:"name"`
	Version   string `json:"version"`        // installed or candidate version
	Repo      string `json:"repo,omitempty"` // only known for sync-database entries
	Installed bool   `json:"installed"`
	Upgrade   string `json:"upgrade,omitempty"` // candidate version, empty when up to date
}

// HasUpgrade reports whether a newer version is available.
func (p Package) HasUpgrade() bool {
	return p.Upgrade != ""
}

// UpgradeRow describes a pending upgrade reported by `pacman -Qu`.
type UpgradeRow struct {
	Name   string
	Local  string // currently installed version
	Remote string // version the upgrade would install
}

// Info is the parsed form of a `pacman -Qi`/`-Si` info block. Field
// order matches first appearance in the output.
type Info struct {
	fields []string
	values map[string]string
}

// Fields returns the field names in their original order.
func (i *Info) Fields() []string {
	return i.fields
}

// Get returns the value for a field name.
func (i *Info) Get(field string) (string, bool) {
	v, ok := i.values[field]
	return v, ok
}

// Len returns the number of fields.
func (i *Info) Len() int {
	return len(i.fields)
}
