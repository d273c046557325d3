// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/playpen-cli/playpen/internal/ui"
	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/open"
	"github.com/playpen-cli/playpen/preset"
	"github.com/playpen-cli/playpen/recent"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process Ephemeral UI Notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
	case playbackEventMsg:
		if b.state == consoleState {
			b.renderLog()
		}
		return b, tea.Batch(cmd, b.waitForPlaybackEvent())
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		}

		// Input Guard: Ignore non-priority keys during asynchronous operations.
		if b.busy && b.state != consoleState && b.state != errorState {
			return b, nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			switch b.state {
			case searchState:
				b.inputC.SetValue("")
			case presetsState:
				if b.presetsC.FilterState() != list.Unfiltered {
					b.presetsC, cmd = b.presetsC.Update(msg)
					return b, cmd
				}
			case consoleState:
				if b.filtering || b.filterC.Value() != "" {
					return b.updateConsole(msg)
				}
			}

			b.previousState()
			b.stopLoading()
			return b, cmd
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case presetsState:
		return b.updatePresets(msg)
	case searchState:
		return b.updateSearch(msg)
	case consoleState:
		return b.updateConsole(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() > 0 {
				b.previousState()
			} else {
				return b, tea.Quit
			}
		}
	case playbackStartedMsg:
		b.newState(consoleState)
		b.renderLog()
		return b, tea.Batch(b.stopLoading(), b.waitForPlaybackEvent())
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePresets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.presetsC.Items()); n > 0 && b.presetsC.Index() == 0 {
				b.presetsC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.presetsC.Items()); n > 0 && b.presetsC.Index() == n-1 {
				b.presetsC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.urlEntry):
			b.newState(searchState)
			b.inputC.Focus()
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.openSource):
			if b.presetsC.SelectedItem() == nil {
				break
			}
			if url := itemURL(b.presetsC.SelectedItem()); url != "" {
				if err := open.Start(url); err != nil {
					b.raiseError(err)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.presetsC.SelectedItem() == nil {
				break
			}
			url := itemURL(b.presetsC.SelectedItem())
			if url == "" {
				break
			}

			b.progressStatus = fmt.Sprintf("Loading %s...", url)
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.startPlayback(url), b.waitForPlaybackStarted())
		}
	}

	b.presetsC, cmd = b.presetsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			url := b.inputC.Value()
			b.progressStatus = fmt.Sprintf("Loading %s...", url)
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.startPlayback(url), b.waitForPlaybackStarted())
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" && viper.GetBool(key.RecentShowSuggestions) {
		if suggestion, ok := recent.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateConsole(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the filter input has focus every key belongs to it,
		// except confirm (keep the query) and back (drop it).
		if b.filtering {
			switch {
			case bubblesKey.Matches(msg, b.keymap.confirm):
				b.filtering = false
				b.filterC.Blur()
			case bubblesKey.Matches(msg, b.keymap.back):
				b.filtering = false
				b.filterC.Blur()
				b.filterC.SetValue("")
			default:
				b.filterC, cmd = b.filterC.Update(msg)
			}

			b.renderLog()
			return b, cmd
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.filter):
			b.filtering = true
			b.filterC.Focus()
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.playPause):
			b.session.SetPlaying(!b.session.Playing())
		case bubblesKey.Matches(msg, b.keymap.deferredToggle):
			if b.toggle != nil {
				b.toggle.Cancel()
			}
			b.toggle = b.session.DeferredToggle()
		case bubblesKey.Matches(msg, b.keymap.volumeUp):
			b.stepVolume(1)
		case bubblesKey.Matches(msg, b.keymap.volumeDown):
			b.stepVolume(-1)
		case bubblesKey.Matches(msg, b.keymap.mute):
			b.session.SetMuted(!b.session.Muted())
		case bubblesKey.Matches(msg, b.keymap.hideVideo):
			b.session.SetHiddenVideo(!b.session.HiddenVideo())
		case bubblesKey.Matches(msg, b.keymap.seekStart):
			start, _, _, _, _ := b.seekTargets()
			b.session.SeekTo(start)
		case bubblesKey.Matches(msg, b.keymap.seekTen):
			_, ten, _, _, _ := b.seekTargets()
			b.session.SeekTo(ten)
		case bubblesKey.Matches(msg, b.keymap.seekThirty):
			_, _, thirty, _, _ := b.seekTargets()
			b.session.SeekTo(thirty)
		case bubblesKey.Matches(msg, b.keymap.seekHalf):
			_, _, _, half, _ := b.seekTargets()
			b.session.SeekTo(half)
		case bubblesKey.Matches(msg, b.keymap.seekNearEnd):
			_, _, _, _, nearEnd := b.seekTargets()
			b.session.SeekTo(nearEnd)
		case bubblesKey.Matches(msg, b.keymap.clearLog):
			b.session.Events().Clear()
			b.renderLog()
			return b, ui.Notify("Event log cleared")
		case bubblesKey.Matches(msg, b.keymap.openSource):
			if url := b.session.SourceURL(); url != "" {
				if err := open.Start(url); err != nil {
					b.raiseError(err)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.filterC.Value() != "" {
				b.filterC.SetValue("")
				b.renderLog()
				return b, nil
			}

			b.previousState()
			return b, nil
		}

		b.renderLog()
	}

	b.logC, cmd = b.logC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	return b, nil
}

// itemURL extracts the playable source URL from a list item.
func itemURL(item list.Item) string {
	switch e := item.(*listItem).internal.(type) {
	case preset.Preset:
		return e.URL
	case string:
		return e
	default:
		return ""
	}
}
