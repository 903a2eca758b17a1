// Package tui provides an interactive browser over a loaded project
// index.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"projdex/internal/domain"
)

// projectItem adapts a domain.Project to the bubbles list.
type projectItem struct {
	project domain.Project
}

func (i projectItem) Title() string {
	return fmt.Sprintf("%s/%s", i.project.Category, i.project.Name)
}

func (i projectItem) Description() string {
	status := renderStatus(i.project.Status)
	if len(i.project.Tags) == 0 {
		return status
	}
	return status + "  " + tagStyle.Render(strings.Join(i.project.Tags, ", "))
}

// FilterValue matches against name, category, and tags.
func (i projectItem) FilterValue() string {
	return i.project.Name + " " + i.project.Category + " " + strings.Join(i.project.Tags, " ")
}

func renderStatus(s domain.Status) string {
	switch s {
	case domain.StatusActive:
		return statusActiveStyle.Render("active")
	case domain.StatusArchived:
		return statusArchivedStyle.Render("archived")
	default:
		return statusUnknownStyle.Render("unknown")
	}
}

// Browser is the bubbletea model for browsing an index.
type Browser struct {
	list  list.Model
	flash string

	width  int
	height int
}

// NewBrowser creates a browser over the given projects.
func NewBrowser(projects []domain.Project) *Browser {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("projdex — %d projects", len(projects))
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	return &Browser{list: l}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		h, v := appStyle.GetFrameSize()
		b.list.SetSize(msg.Width-h, msg.Height-v-2)
		return b, nil

	case tea.KeyMsg:
		// Don't intercept keys while the filter input is active.
		if b.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "y", "enter":
			if item, ok := b.list.SelectedItem().(projectItem); ok {
				if err := clipboard.WriteAll(item.project.Path); err != nil {
					b.flash = "clipboard unavailable"
				} else {
					b.flash = "copied " + item.project.Path
				}
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b *Browser) View() string {
	var sb strings.Builder
	sb.WriteString(b.list.View())
	if b.flash != "" {
		sb.WriteString("\n" + flashStyle.Render(b.flash))
	} else {
		sb.WriteString("\n" + statusBarStyle.Render("y/enter copy path • / filter • q quit"))
	}
	return appStyle.Render(sb.String())
}
