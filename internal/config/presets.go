package config

var Presets = map[string]*Config{
	"cartpole": {
		Joints: 1, Masses: []float64{1, 0.1}, Lengths: []float64{1},
		Gravity: DefaultGravity, Dt: 0.001, Steps: 10000, Position: "reset",
		InitState: InitStateConfig{Angles: []float64{0.1}, Omegas: []float64{0}},
	},
	"cartpole-heavy": {
		Joints: 1, Masses: []float64{1, 1}, Lengths: []float64{1},
		Gravity: DefaultGravity, Dt: 0.001, Steps: 10000, Position: "reset",
		InitState: InitStateConfig{Angles: []float64{0.1}, Omegas: []float64{0}},
	},
	"double": {
		Joints: 2, Masses: []float64{1, 0.5, 0.5}, Lengths: []float64{1, 1},
		Gravity: DefaultGravity, Dt: 0.001, Steps: 20000, Position: "reset",
		InitState: InitStateConfig{Angles: []float64{0.2, -0.1}, Omegas: []float64{0, 0}},
	},
	"triple": {
		Joints: 3, Masses: []float64{2, 0.4, 0.4, 0.4}, Lengths: []float64{1, 0.8, 0.6},
		Gravity: DefaultGravity, Dt: 0.0005, Steps: 40000, Position: "reset",
		InitState: InitStateConfig{Angles: []float64{0.1, 0.1, 0.1}, Omegas: []float64{0, 0, 0}},
	},
	"resting": {
		Joints: 2, Masses: []float64{1, 0.5, 0.5}, Lengths: []float64{1, 1},
		Gravity: DefaultGravity, Dt: 0.001, Steps: 5000, Position: "reset",
		InitState: InitStateConfig{Angles: []float64{0, 0}, Omegas: []float64{0, 0}},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
