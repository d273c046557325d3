// Package preset maintains the registry of debug media sources offered by the console.
package preset

import (
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/playpen-cli/playpen/color"
	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Preset is a named media source used to exercise a specific playback path.
type Preset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Note string `json:"note,omitempty"`
}

func (p Preset) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Note)
}

// builtins are the four canonical debug sources. The broken entry exists on
// purpose: it exercises the error callback path.
var builtins = []Preset{
	{
		Name: "bunny",
		URL:  "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		Note: "H.264 MP4 short film",
	},
	{
		Name: "sintel",
		URL:  "https://bitdash-a.akamaihd.net/content/sintel/hls/playlist.m3u8",
		Note: "HLS adaptive stream",
	},
	{
		Name: "audio",
		URL:  "https://download.samplelib.com/mp3/sample-15s.mp3",
		Note: "audio-only MP3 sample",
	},
	{
		Name: "broken",
		URL:  "https://example.invalid/missing.mp4",
		Note: "unresolvable source for error-path debugging",
	},
}

// All returns the built-in presets followed by any user-configured extras.
// Extra entries have the form "name=url"; malformed entries are skipped.
func All() []Preset {
	presets := make([]Preset, len(builtins))
	copy(presets, builtins)

	for _, raw := range viper.GetStringSlice(key.PresetExtra) {
		name, url, found := strings.Cut(raw, "=")
		if !found || name == "" || url == "" {
			continue
		}
		presets = append(presets, Preset{
			Name: strings.TrimSpace(name),
			URL:  strings.TrimSpace(url),
			Note: "user preset",
		})
	}

	return presets
}

// Get returns the preset registered under name.
func Get(name string) (Preset, bool) {
	return lo.Find(All(), func(p Preset) bool {
		return p.Name == name
	})
}

// Names returns the names of all registered presets.
func Names() []string {
	return lo.Map(All(), func(p Preset, _ int) string {
		return p.Name
	})
}

// ErrUnknown builds a descriptive error for an unregistered preset name,
// suggesting the closest registered one.
func ErrUnknown(name string) error {
	closest := lo.MinBy(Names(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	msg := fmt.Sprintf(
		"unknown preset %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}
