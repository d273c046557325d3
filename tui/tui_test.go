package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/playpen-cli/playpen/eventlog"
	"github.com/playpen-cli/playpen/player"
	"github.com/playpen-cli/playpen/prefs"
	"github.com/playpen-cli/playpen/session"
	. "github.com/smartystreets/goconvey/convey"
)

// stubEngine is an inert playback engine for driving the console model.
type stubEngine struct{}

func (stubEngine) Load(string) error                 { return nil }
func (stubEngine) SetPlaying(bool) error             { return nil }
func (stubEngine) SetVolume(float64) error           { return nil }
func (stubEngine) SetMuted(bool) error               { return nil }
func (stubEngine) SetVideoHidden(bool) error         { return nil }
func (stubEngine) SetProgressInterval(time.Duration) {}
func (stubEngine) CurrentTime() (float64, error)     { return 0, nil }
func (stubEngine) TotalDuration() (float64, error)   { return 0, nil }
func (stubEngine) Seek(float64) error                { return nil }
func (stubEngine) Subscribe(player.Callbacks) error  { return nil }
func (stubEngine) IsRunning() bool                   { return false }
func (stubEngine) Socket() string                    { return "" }
func (stubEngine) Close() error                      { return nil }
func (stubEngine) Wait() <-chan struct{}             { return nil }

func newConsoleBubble() *statefulBubble {
	s := session.New(stubEngine{}, prefs.NewMemoryStorage(), eventlog.New())
	b := newBubble(s, &Options{})
	b.setState(consoleState)
	b.resize(100, 40)
	return b
}

func press(b *statefulBubble, msg tea.KeyMsg) {
	_, _ = b.Update(msg)
}

func typeRunes(b *statefulBubble, s string) {
	for _, r := range s {
		press(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestConsoleLogFilter(t *testing.T) {
	Convey("Given a console with logged events", t, func() {
		b := newConsoleBubble()
		b.session.Events().Append("onPlay", nil)
		b.session.Events().Append("onPause", nil)
		b.session.Events().Append("seekTo", eventlog.Payload{"seconds": 30.0})
		b.renderLog()

		So(b.logC.View(), ShouldContainSubstring, "onPlay")
		So(b.logC.View(), ShouldContainSubstring, "seekTo")

		Convey("Typing a filter query narrows the log panel", func() {
			press(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
			So(b.filtering, ShouldBeTrue)

			typeRunes(b, "seek")
			So(b.filterC.Value(), ShouldEqual, "seek")
			So(b.logC.View(), ShouldContainSubstring, "seekTo")
			So(b.logC.View(), ShouldNotContainSubstring, "onPlay")

			Convey("Confirm keeps the query applied", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEnter})
				So(b.filtering, ShouldBeFalse)
				So(b.filterC.Value(), ShouldEqual, "seek")
				So(b.logC.View(), ShouldNotContainSubstring, "onPause")
			})

			Convey("Back drops the query and restores every entry", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEnter})
				press(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, consoleState)
				So(b.filterC.Value(), ShouldBeEmpty)
				So(b.logC.View(), ShouldContainSubstring, "onPlay")
			})
		})

		Convey("Control keys keep working while no filter is focused", func() {
			press(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
			So(b.session.Events().Len(), ShouldEqual, 0)
			So(strings.TrimSpace(b.logC.View()), ShouldBeEmpty)
		})
	})
}
