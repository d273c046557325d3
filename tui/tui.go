// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/playpen-cli/playpen/eventlog"
	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/player"
	"github.com/playpen-cli/playpen/prefs"
	"github.com/playpen-cli/playpen/session"
	"github.com/playpen-cli/playpen/util"
	"github.com/spf13/viper"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// URL, when set, is loaded immediately instead of showing the source list.
	URL string
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	var storage prefs.Storage
	if viper.GetBool(key.PrefsPersist) {
		storage = prefs.NewDiskStorage()
	} else {
		storage = prefs.NewMemoryStorage()
	}

	var engine player.Player = player.NewMPV()
	if ms := viper.GetInt(key.PlayerProgressInterval); ms > 0 {
		engine.SetProgressInterval(time.Duration(ms) * time.Millisecond)
	}

	s := session.New(engine, storage, eventlog.New())
	defer util.Ignore(s.Close)

	bubble := newBubble(s, options)
	bubble.setState(presetsState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
