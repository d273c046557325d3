// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/playpen-cli/playpen/constant"
	"github.com/playpen-cli/playpen/internal/ui"
	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/session"
	"github.com/playpen-cli/playpen/style"
	"github.com/playpen-cli/playpen/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool
	busy          bool // Protects against rapid input during async ops

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	filterC   textinput.Model
	presetsC  list.Model
	logC      viewport.Model
	progressC progress.Model
	helpC     help.Model

	filtering bool // the console filter input has focus

	session    *session.Session
	subscribed bool
	toggle     *session.ToggleHandle

	playbackStartedChannel chan string
	refreshChannel         chan struct{}
	errorChannel           chan error

	progressStatus string
	lastError      error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState facilitates an idempotent transition to a target state, recording the previous state in the navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Do not push these states to history
	if !lo.Contains([]state{
		loadingState,
	}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		s := b.statesHistory.Pop()
		b.setState(s)
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.presetsC.SetSize(listWidth, listHeight)
	b.presetsC.Help.Width = listWidth

	b.progressC.Width = util.Min(styledWidth, 50)
	b.inputC.Width = styledWidth
	b.filterC.Width = util.Min(styledWidth, 30)

	b.logC.Width = styledWidth
	b.logC.Height = util.Max(styledHeight-consoleChromeHeight, 3)

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth

	if b.state == consoleState {
		b.renderLog()
	}
}

// startLoading enters a concurrent loading state, initializing visual indicators across child components.
func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	b.busy = true
	return tea.Batch(b.presetsC.StartSpinner(), b.spinnerC.Tick)
}

// stopLoading exits the loading state and synchronizes child component visual indicators.
func (b *statefulBubble) stopLoading() tea.Cmd {
	b.loading = false
	b.busy = false
	b.presetsC.StopSpinner()
	return nil
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(s *session.Session, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,

		session: s,

		playbackStartedChannel: make(chan string),
		refreshChannel:         make(chan struct{}, 1),
		errorChannel:           make(chan error),

		notifier: &ui.Model{},
	}

	makeList := func(title string, description bool, titleStyle mo.Option[lipgloss.Style]) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if ts, ok := titleStyle.Get(); ok {
			listC.Styles.Title = ts
		}
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Media URL (v%s)", constant.Version)
	bubble.inputC.CharLimit = 200
	bubble.inputC.Prompt = viper.GetString(key.TUIURLPromptString)

	bubble.filterC = textinput.New()
	bubble.filterC.Placeholder = "event name"
	bubble.filterC.CharLimit = 64
	bubble.filterC.Prompt = "/"

	bubble.progressC = progress.New(progress.WithDefaultGradient())

	bubble.logC = viewport.New(0, 0)

	bubble.presetsC = makeList("Media Sources", true, mo.Some(
		lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1),
	))
	bubble.presetsC.SetStatusBarItemName("source", "sources")

	bubble.options = options

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
