// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the terminal user interface, triggering initial loads.
func (b *statefulBubble) Init() tea.Cmd {
	// Skip the source list when a URL was given on the command line
	if b.options != nil && b.options.URL != "" {
		url := b.options.URL
		b.progressStatus = fmt.Sprintf("Loading %s...", url)
		b.setState(loadingState)
		return tea.Batch(b.startLoading(), b.startPlayback(url), b.waitForPlaybackStarted(), b.loadPresets())
	}

	return tea.Batch(textinput.Blink, b.loadPresets())
}
