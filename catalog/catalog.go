// Package catalog holds the named L-systems shipped with the module. The
// presets are LSIF documents embedded at build time.
package catalog

import (
	"bytes"
	_ "embed"
	"sort"
	"sync"

	"github.com/mainakk/lsystem"
	"github.com/mainakk/lsystem/interchange/lsif"
	"github.com/pkg/errors"
)

//go:embed presets.lsif.yml
var presetsLSIF []byte

var (
	loadOnce sync.Once
	presets  []lsystem.Preset
	byName   map[string]int
)

func load() {
	formats, err := lsif.NewDecoder(bytes.NewReader(presetsLSIF)).DecodeAll()
	if err != nil {
		panic("catalog: " + err.Error())
	}

	byName = make(map[string]int, len(formats))
	for _, format := range formats {
		p, err := format.Import()
		if err != nil {
			panic("catalog: " + err.Error())
		}
		if _, dup := byName[p.Name]; dup {
			panic("catalog: duplicate preset " + p.Name)
		}
		byName[p.Name] = len(presets)
		presets = append(presets, p)
	}
}

// All returns every preset in catalog order.
func All() []lsystem.Preset {
	loadOnce.Do(load)
	out := make([]lsystem.Preset, len(presets))
	copy(out, presets)
	return out
}

// Names returns the preset names in alphabetical order.
func Names() []string {
	loadOnce.Do(load)
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a preset by name.
func Lookup(name string) (lsystem.Preset, bool) {
	loadOnce.Do(load)
	i, ok := byName[name]
	if !ok {
		return lsystem.Preset{}, false
	}
	return presets[i], true
}

// ErrUnknownPreset is returned by Get for names not in the catalog.
var ErrUnknownPreset = errors.New("unknown preset")

// Get is like Lookup but returns an error naming the preset.
func Get(name string) (lsystem.Preset, error) {
	p, ok := Lookup(name)
	if !ok {
		return lsystem.Preset{}, errors.Wrapf(ErrUnknownPreset, "%q", name)
	}
	return p, nil
}
