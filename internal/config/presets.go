package config

import "sort"

// Presets are partial overrides applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"slow": func(c *Config) {
		c.Speed = 0.2
	},
	"fast": func(c *Config) {
		c.Speed = MaxSpeed
	},
	"earth": func(c *Config) {
		c.Focus = "Earth"
		c.Speed = 1.0
	},
	"outer": func(c *Config) {
		c.Focus = "Jupiter"
		c.Speed = MaxSpeed
		c.TrailLength = 400
	},
	"j2000": func(c *Config) {
		c.StartDate = "2000-01-01"
	},
}

// GetPreset returns DefaultConfig with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
