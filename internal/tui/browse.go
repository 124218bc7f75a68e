// Package tui implements the interactive package browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pacctl/pkg/pacman"
)

type packagesLoadedMsg struct {
	packages []pacman.Package
	err      error
}

// Browser is the bubbletea model for `pacctl browse`.
type Browser struct {
	client *pacman.Client
	keys   keyMap

	spinner spinner.Model
	filter  textinput.Model

	packages []pacman.Package
	visible  []pacman.Package
	cursor   int
	offset   int

	width     int
	height    int
	loading   bool
	filtering bool
	err       error
	quitting  bool
}

// NewBrowser creates a browser over the given client.
func NewBrowser(client *pacman.Client) *Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 100
	ti.Width = 40

	return &Browser{
		client:  client,
		keys:    defaultKeyMap(),
		spinner: sp,
		filter:  ti,
		loading: true,
	}
}

// Run starts the bubbletea program and blocks until it exits.
func Run(client *pacman.Client) error {
	_, err := tea.NewProgram(NewBrowser(client), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.loadPackages())
}

func (b *Browser) loadPackages() tea.Cmd {
	return func() tea.Msg {
		packages, err := b.client.All(context.Background())
		return packagesLoadedMsg{packages: packages, err: err}
	}
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.clampCursor()
		return b, nil

	case packagesLoadedMsg:
		b.loading = false
		b.err = msg.err
		b.packages = msg.packages
		b.applyFilter()
		return b, nil

	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case tea.KeyMsg:
		if b.filtering {
			switch msg.String() {
			case "enter":
				b.filtering = false
				b.filter.Blur()
			case "esc":
				b.filtering = false
				b.filter.SetValue("")
				b.filter.Blur()
				b.applyFilter()
			default:
				var cmd tea.Cmd
				b.filter, cmd = b.filter.Update(msg)
				b.applyFilter()
				return b, cmd
			}
			return b, nil
		}

		switch {
		case key.Matches(msg, b.keys.Quit):
			b.quitting = true
			return b, tea.Quit
		case key.Matches(msg, b.keys.Up):
			b.moveCursor(-1)
		case key.Matches(msg, b.keys.Down):
			b.moveCursor(1)
		case key.Matches(msg, b.keys.Top):
			b.cursor = 0
			b.offset = 0
		case key.Matches(msg, b.keys.Bottom):
			b.cursor = len(b.visible) - 1
			b.clampCursor()
		case key.Matches(msg, b.keys.Filter):
			b.filtering = true
			b.filter.Focus()
		case key.Matches(msg, b.keys.Clear):
			b.filter.SetValue("")
			b.applyFilter()
		}
	}
	return b, nil
}

func (b *Browser) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(b.filter.Value()))
	if query == "" {
		b.visible = b.packages
	} else {
		b.visible = nil
		for _, pkg := range b.packages {
			if strings.Contains(strings.ToLower(pkg.Name), query) {
				b.visible = append(b.visible, pkg)
			}
		}
	}
	b.cursor = 0
	b.offset = 0
}

func (b *Browser) moveCursor(delta int) {
	b.cursor += delta
	b.clampCursor()
}

func (b *Browser) clampCursor() {
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor >= len(b.visible) {
		b.cursor = len(b.visible) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}

	rows := b.listHeight()
	if rows <= 0 {
		return
	}
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+rows {
		b.offset = b.cursor - rows + 1
	}
}

// listHeight returns how many package rows fit on screen.
func (b *Browser) listHeight() int {
	// title + column header + filter/status line
	return b.height - 4
}

// View implements tea.Model.
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("pacctl browse"))
	sb.WriteString("\n")

	if b.loading {
		sb.WriteString(fmt.Sprintf("%s loading packages...\n", b.spinner.View()))
		return sb.String()
	}
	if b.err != nil {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", b.err)))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %-32s %-16s %s", "REPO", "NAME", "VERSION", "STATUS")))
	sb.WriteString("\n")

	rows := b.listHeight()
	end := b.offset + rows
	if end > len(b.visible) {
		end = len(b.visible)
	}
	for i := b.offset; i < end; i++ {
		sb.WriteString(b.renderRow(i))
		sb.WriteString("\n")
	}

	if b.filtering {
		sb.WriteString(b.filter.View())
	} else {
		status := fmt.Sprintf("%d/%d packages", len(b.visible), len(b.packages))
		if q := b.filter.Value(); q != "" {
			status += fmt.Sprintf("  filter: %q", q)
		}
		status += "  (/ filter, q quit)"
		sb.WriteString(statusStyle.Render(status))
	}
	return sb.String()
}

func (b *Browser) renderRow(i int) string {
	pkg := b.visible[i]

	repo := pkg.Repo
	if repo == "" {
		repo = "-"
	}
	status := ""
	if pkg.Installed {
		status = "installed"
	}
	if pkg.HasUpgrade() {
		status += " -> " + pkg.Upgrade
	}

	line := fmt.Sprintf("%-12s %-32s %-16s %s", repo, pkg.Name, pkg.Version, status)
	switch {
	case i == b.cursor:
		return selectedStyle.Render(line)
	case pkg.HasUpgrade():
		return upgradeStyle.Render(line)
	case pkg.Installed:
		return installedStyle.Render(line)
	default:
		return line
	}
}
