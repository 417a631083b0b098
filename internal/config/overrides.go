package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/viper"

	palerrors "github.com/termstack/palette/pkg/errors"
)

// Override adjusts one command entry by id: a replacement title, or
// disabling the entry entirely.
type Override struct {
	Title   string `mapstructure:"title"`
	Enabled *bool  `mapstructure:"enabled"`
}

// Overrides maps command ids to their user overrides. Sources consult it
// before handing entries to the palette.
type Overrides map[string]Override

// LoadOverrides reads a JSON override file keyed by command id. A missing
// file (or an empty path) means no overrides and is not an error.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, palerrors.NewParseError(path, 0, err)
	}

	var out Overrides
	if err := v.Unmarshal(&out); err != nil {
		return nil, palerrors.NewParseError(path, 0, err)
	}

	return out, nil
}

// Enabled reports whether the entry with the given id should be offered.
// Entries without an override are enabled.
func (o Overrides) Enabled(id string) bool {
	ov, ok := o[id]
	if !ok || ov.Enabled == nil {
		return true
	}
	return *ov.Enabled
}

// TitleFor returns the override title for the id, or the fallback when
// no override renames it.
func (o Overrides) TitleFor(id, fallback string) string {
	if ov, ok := o[id]; ok && ov.Title != "" {
		return ov.Title
	}
	return fallback
}
