// Package recent manages the persistence and retrieval of recently used source URLs for entry suggestions.
package recent

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/playpen-cli/playpen/filesystem"
	"github.com/playpen-cli/playpen/key"
	"github.com/playpen-cli/playpen/util"
	"github.com/playpen-cli/playpen/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type urlRecord struct {
	Rank int    `json:"rank"`
	URL  string `json:"url"`
}

var cacher = gache.New[map[string]*urlRecord](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*urlRecord)

// Remember records a source URL in the persistent registry or increments its popularity rank.
// The registry is pruned to the configured limit, dropping the lowest-ranked entries first.
func Remember(url string, weight int) error {
	url = sanitize(url)
	if url == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*urlRecord)
	}

	if record, ok := cached[url]; ok {
		record.Rank += weight
	} else {
		cached[url] = &urlRecord{Rank: weight, URL: url}
	}

	if limit := viper.GetInt(key.RecentLimit); limit > 0 && len(cached) > limit {
		records := lo.Values(cached)
		slices.SortFunc(records, func(a, b *urlRecord) int {
			return a.Rank - b.Rank // Ascending rank: weakest first
		})

		for _, record := range records[:len(cached)-limit] {
			delete(cached, record.URL)
		}
	}

	// A new entry invalidates previously computed suggestions.
	suggestionCache = make(map[string][]*urlRecord)

	return cacher.Set(cached)
}

// Suggest returns the most relevant remembered URL for a partial input.
func Suggest(partial string) mo.Option[string] {
	suggestions := SuggestMany(partial)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered URLs matching the partial input, sorted by popularity rank.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.RecentShowSuggestions) {
		return []string{}
	}

	partial = sanitize(partial)
	var records []*urlRecord

	if prev, ok := suggestionCache[partial]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.MatchFold(partial, record.URL) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *urlRecord) int {
			return b.Rank - a.Rank // Descending rank
		})

		suggestionCache[partial] = records
	}

	return lo.Map(records, func(r *urlRecord, _ int) string {
		return r.URL
	})
}

// Clear forgets all remembered source URLs.
func Clear() error {
	suggestionCache = make(map[string][]*urlRecord)
	return util.Delete(where.Recent())
}

func sanitize(url string) string {
	return strings.TrimSpace(url)
}
