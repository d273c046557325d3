// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/playpen-cli/playpen/color"
	"github.com/playpen-cli/playpen/style"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	back,
	acceptSearchSuggestion,
	urlEntry,
	openSource,
	playPause,
	deferredToggle,
	volumeUp, volumeDown,
	mute, hideVideo,
	seekStart, seekTen, seekThirty, seekHalf, seekNearEnd,
	clearLog,
	up, down, left, right,
	top, bottom,
	filter,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("play")),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		urlEntry: key.NewBinding(
			key.WithKeys("u", "/"),
			key.WithHelp("u", "enter url"),
		),
		openSource: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open url"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		deferredToggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "deferred toggle"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "volume down"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		hideVideo: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide video"),
		),
		seekStart: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "seek 0s"),
		),
		seekTen: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "seek 10s"),
		),
		seekThirty: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "seek 30s"),
		),
		seekHalf: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "seek middle"),
		),
		seekNearEnd: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "seek near end"),
		),
		clearLog: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear log"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit, k.back))
	case presetsState:
		return h(k.confirm, k.urlEntry, k.quit), h(k.confirm, k.urlEntry, k.openSource, k.quit)
	case searchState:
		return to2(h(k.confirm, k.acceptSearchSuggestion, k.back))
	case consoleState:
		return h(k.playPause, k.deferredToggle, k.volumeUp, k.mute, k.showHelp),
			h(k.playPause, k.deferredToggle, k.volumeUp, k.volumeDown, k.mute, k.hideVideo,
				k.seekStart, k.seekTen, k.seekThirty, k.seekHalf, k.seekNearEnd,
				k.filter, k.clearLog, k.openSource, k.back)
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
