package prefs

import (
	"encoding/json"

	"github.com/metafates/gache"
	"github.com/playpen-cli/playpen/filesystem"
	"github.com/playpen-cli/playpen/where"
)

// cacher holds the single JSON preference registry file,
// managed through gache over the virtualized filesystem backend.
var cacher = gache.New[map[string]json.RawMessage](
	&gache.Options{
		Path:       where.Prefs(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// DiskStorage is a Storage persisted as the localized preference registry file.
type DiskStorage struct{}

// NewDiskStorage returns a storage backed by the localized preference registry file.
func NewDiskStorage() *DiskStorage {
	return &DiskStorage{}
}

// Read returns the raw value stored for key in the registry file.
func (d *DiskStorage) Read(key string) ([]byte, bool, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, false, err
	}
	if expired || cached == nil {
		return nil, false, nil
	}

	raw, ok := cached[key]
	return raw, ok, nil
}

// Write persists the raw value for key into the registry file.
func (d *DiskStorage) Write(key string, value []byte) error {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		cached = make(map[string]json.RawMessage)
	}

	cached[key] = value
	return cacher.Set(cached)
}
