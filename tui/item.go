// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/playpen-cli/playpen/icon"
	"github.com/playpen-cli/playpen/preset"
	"github.com/playpen-cli/playpen/style"
)

// listItem implements the list.Item interface, wrapping various domain models for terminal display.
type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) toggleMark() {
	t.marked = !t.marked
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case preset.Preset:
		return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
	case string:
		return icon.Get(icon.Link)
	default:
		return ""
	}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case preset.Preset:
		title = e.Name
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case preset.Preset:
		if e.Note != "" {
			description = fmt.Sprintf("%s %s", e.Note, style.Faint(e.URL))
		} else {
			description = style.Faint(e.URL)
		}
	case string:
		description = lipgloss.NewStyle().Foreground(style.FaintColor).Render("recently played")
	}

	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case preset.Preset:
		return e.Name
	case string:
		return e
	default:
		return ""
	}
}
