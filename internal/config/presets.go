package config

var Presets = map[string]map[string]*Config{
	"Liver": {
		"gentle": {
			Tissue: "Liver", Target: 3.0, Duration: 5.0,
			Gains: GainsConfig{Kp: 0.8, Ki: 0.1, Kd: 2.5},
		},
		"breathing": {
			Tissue: "Liver", Target: 3.0, Duration: 8.0, Breathing: true,
			Gains: GainsConfig{Kp: 0.8, Ki: 0.1, Kd: 2.5},
		},
	},
	"Intestine": {
		"gentle": {
			Tissue: "Intestine", Target: 1.5, Duration: 5.0,
			Gains: GainsConfig{Kp: 0.3, Ki: 0.05, Kd: 0.5},
		},
		"aggressive": {
			Tissue: "Intestine", Target: 50.0, Duration: 5.0,
			Gains: GainsConfig{Kp: 10.0, Ki: 0.1, Kd: 1.0},
		},
	},
	"Bone": {
		"firm": {
			Tissue: "Bone", Target: 15.0, Duration: 5.0,
			Gains: GainsConfig{Kp: 2.0, Ki: 0.0, Kd: 0.1},
		},
	},
}

func GetPreset(tissue, preset string) *Config {
	tissuePresets, ok := Presets[tissue]
	if !ok {
		return nil
	}
	cfg, ok := tissuePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(tissue string) []string {
	tissuePresets, ok := Presets[tissue]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(tissuePresets))
	for name := range tissuePresets {
		names = append(names, name)
	}
	return names
}
