package config

import "sort"

// Presets are tuned variants of the zoom cycle. Each starts from the default
// configuration with a handful of overrides.
var Presets = map[string]func(*Config){
	// The baseline behavior.
	"classic": func(c *Config) {},

	// Slower shrink and more patient search for long unattended runs.
	"leisurely": func(c *Config) {
		c.Zoom.RadiusScaling = 0.7
		c.Zoom.FocusSmoothTime = 0.5
		c.Zoom.PanSmoothTime = 0.8
		c.Search.Budget = 20
	},

	// Aggressive dive with snappy following.
	"frenetic": func(c *Config) {
		c.Zoom.RadiusScaling = 0.3
		c.Zoom.ZoomOutSpeed = 12.0
		c.Zoom.FocusSmoothTime = 0.15
		c.Zoom.PanSmoothTime = 0.3
	},

	// Only accepts very rich destinations and never bails out early.
	"picky": func(c *Config) {
		c.Search.MinScore = 400.0
		c.Search.Budget = 25
		c.Zoom.AbandonScore = 0.0
	},

	// Cyclic rainbow coloring instead of viridis.
	"rainbow": func(c *Config) {
		c.Palette = "hsv"
	},
}

// GetPreset returns the named preset applied on top of the defaults, or nil
// if the name is unknown.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns the preset names in stable order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
