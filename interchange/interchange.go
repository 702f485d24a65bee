// Package interchange imports presets from external descriptions.
package interchange

import "github.com/mainakk/lsystem"

// Format is a decoded description that can be turned into a preset.
type Format interface {
	Import() (lsystem.Preset, error)
}
