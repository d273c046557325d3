// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"
	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/log"
	"github.com/playpen-cli/playpen/player"
	"github.com/playpen-cli/playpen/preset"
	"github.com/playpen-cli/playpen/recent"
	"github.com/playpen-cli/playpen/style"
	"github.com/playpen-cli/playpen/util"
	"github.com/spf13/viper"
)

// playbackStartedMsg signals that a source finished loading and the console can take over.
type playbackStartedMsg string

// playbackEventMsg signals that the engine reported a callback and the console must redraw.
type playbackEventMsg struct{}

func (b *statefulBubble) loadPresets() tea.Cmd {
	var items []list.Item
	for _, p := range preset.All() {
		items = append(items, &listItem{
			internal: p,
		})
	}

	if viper.GetBool(key.RecentShowSuggestions) {
		for _, url := range recent.SuggestMany("") {
			items = append(items, &listItem{
				internal: url,
			})
		}
	}

	return b.presetsC.SetItems(items)
}

// startPlayback loads the given source into the playback engine and, on first
// use, subscribes the event log adapters to the engine's callback surface.
func (b *statefulBubble) startPlayback(url string) tea.Cmd {
	return func() tea.Msg {
		log.Info("loading source " + url)
		b.progressStatus = fmt.Sprintf("Loading %s...", url)

		if err := b.session.Load(url); err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		if !b.subscribed {
			if err := b.session.Subscribe(b.instrumented()); err != nil {
				log.Error(err)
				b.errorChannel <- err
				return nil
			}
			b.subscribed = true
		}

		if viper.GetBool(key.PlayerStartMuted) {
			b.session.SetMuted(true)
		}

		util.Ignore(func() error { return recent.Remember(url, 1) })

		b.playbackStartedChannel <- url
		return nil
	}
}

func (b *statefulBubble) waitForPlaybackStarted() tea.Cmd {
	return func() tea.Msg {
		select {
		case url := <-b.playbackStartedChannel:
			return playbackStartedMsg(url)
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) waitForPlaybackEvent() tea.Cmd {
	return func() tea.Msg {
		<-b.refreshChannel
		return playbackEventMsg{}
	}
}

// notifyRefresh wakes the UI loop without blocking the engine's IPC goroutine.
func (b *statefulBubble) notifyRefresh() {
	select {
	case b.refreshChannel <- struct{}{}:
	default:
	}
}

// instrumented wraps the session's event log adapters so that every engine
// callback also schedules a console redraw.
func (b *statefulBubble) instrumented() player.Callbacks {
	cb := b.session.Callbacks()

	return player.Callbacks{
		OnReady:  func() { cb.OnReady(); b.notifyRefresh() },
		OnStart:  func() { cb.OnStart(); b.notifyRefresh() },
		OnPlay:   func() { cb.OnPlay(); b.notifyRefresh() },
		OnPause:  func() { cb.OnPause(); b.notifyRefresh() },
		OnEnded:  func() { cb.OnEnded(); b.notifyRefresh() },
		OnError:  func(message string) { cb.OnError(message); b.notifyRefresh() },
		OnProgress: func(s player.Snapshot) {
			cb.OnProgress(s)
			b.notifyRefresh()
		},
		OnDuration: func(seconds float64) { cb.OnDuration(seconds); b.notifyRefresh() },
		OnSeek:     func(seconds float64) { cb.OnSeek(seconds); b.notifyRefresh() },
	}
}

// renderLog rebuilds the log panel content from the current event log entries,
// narrowed by the console filter query when one is set.
func (b *statefulBubble) renderLog() {
	entries := b.session.Events().Filter(b.filterC.Value())

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf(
			"%s %s %s",
			style.Faint(e.Timestamp),
			style.Fg(style.Sky)(e.Event),
			e.Data,
		)

		if viper.GetBool(key.TUIWrapLogLines) && b.logC.Width > 0 {
			line = wrap.String(line, b.logC.Width)
		}

		lines = append(lines, line)
	}

	b.logC.SetContent(strings.Join(lines, "\n"))
}

// stepVolume nudges the session volume by the configured step, clamped to [0,1].
func (b *statefulBubble) stepVolume(direction float64) {
	step := float64(viper.GetInt(key.TUIVolumeStep)) / 100
	if step <= 0 {
		step = 0.05
	}

	b.session.SetVolume(util.Clamp(b.session.Volume()+direction*step, 0, 1))
}

// seekTargets returns the fixed jump positions offered by the console, derived
// from the currently known media duration.
func (b *statefulBubble) seekTargets() (start, ten, thirty, half, nearEnd float64) {
	duration := b.session.Snapshot().Duration
	return 0, 10, 30, duration / 2, util.Max(duration-5, 0)
}
