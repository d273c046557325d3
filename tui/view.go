// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/playpen-cli/playpen/eventlog"
	"github.com/playpen-cli/playpen/icon"
	"github.com/playpen-cli/playpen/style"
	"github.com/playpen-cli/playpen/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// consoleChromeHeight is the number of console lines rendered above and below
// the log viewport: title, source, state readout, progress and help.
const consoleChromeHeight = 10

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case presetsState:
		output = b.viewPresets()
	case searchState:
		output = b.viewSearch()
	case consoleState:
		output = b.viewConsole()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewPresets() string {
	return listExtraPaddingStyle.Render(b.presetsC.View())
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Custom Source"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint("tab: "+suggestion))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewConsole() string {
	snapshot := b.session.Snapshot()

	position := fmt.Sprintf(
		"%s / %s",
		util.FormatSeconds(snapshot.PlayedSeconds),
		util.FormatSeconds(snapshot.Duration),
	)

	lines := []string{
		style.Title("Playback Console"),
		"",
		style.Truncate(b.width)(icon.Get(icon.Video) + " " + style.Fg(style.SecondaryColor)(b.session.SourceURL())),
		b.viewStateReadout(),
		position + "  " + b.progressC.ViewAs(snapshot.Played),
		"",
		b.viewLogHeader(),
		b.logC.View(),
	}

	return b.renderLines(true, lines)
}

// viewStateReadout renders the one-line summary of every tracked playback flag.
func (b *statefulBubble) viewStateReadout() string {
	var parts []string

	if b.session.Playing() {
		parts = append(parts, style.Fg(style.SuccessColor)(icon.Get(icon.Play)+" playing"))
	} else {
		parts = append(parts, style.Fg(style.WarningColor)(icon.Get(icon.Pause)+" paused"))
	}

	parts = append(parts, fmt.Sprintf("%s %.0f%%", icon.Get(icon.Volume), b.session.Volume()*100))

	if b.session.Muted() {
		parts = append(parts, style.Fg(style.ErrorColor)(icon.Get(icon.Muted)+" muted"))
	}

	if b.session.HiddenVideo() {
		parts = append(parts, style.Faint(icon.Get(icon.Hidden)+" video hidden"))
	}

	return strings.Join(parts, "  ")
}

func (b *statefulBubble) viewLogHeader() string {
	count := b.session.Events().Len()
	if query := b.filterC.Value(); query != "" {
		count = len(b.session.Events().Filter(query))
	}

	header := style.Tag(style.Base, style.Teal)("Events") +
		" " +
		style.Faint(fmt.Sprintf("%d/%d", count, eventlog.Capacity))

	if b.filtering || b.filterC.Value() != "" {
		header += "  " + b.filterC.View()
	}

	return header
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Critical Failure: %v", b.lastError.Error()))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
