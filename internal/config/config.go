package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

const (
	DefaultDt      = 0.001
	DefaultSteps   = 10000
	DefaultGravity = 9.81
	DefaultTheta   = 0.1
)

type Config struct {
	Joints  int       `yaml:"joints"`
	Masses  []float64 `yaml:"masses"`
	Lengths []float64 `yaml:"lengths"`
	Gravity float64   `yaml:"gravity"`
	Dt      float64   `yaml:"dt"`
	Steps   int       `yaml:"steps"`
	// Position is either "reset" (cart position recomputed as velocity*dt
	// each step, the historical behavior) or "accumulate" (true integral).
	Position  string          `yaml:"position"`
	InitState InitStateConfig `yaml:"init_state"`
}

type InitStateConfig struct {
	Angles  []float64 `yaml:"angles"`
	Omegas  []float64 `yaml:"omegas"`
	CartVel float64   `yaml:"cart_vel"`
}

func DefaultConfig() *Config {
	return &Config{
		Joints:   1,
		Masses:   []float64{1.0, 0.1},
		Lengths:  []float64{1.0},
		Gravity:  DefaultGravity,
		Dt:       DefaultDt,
		Steps:    DefaultSteps,
		Position: "reset",
		InitState: InitStateConfig{
			Angles: []float64{DefaultTheta},
			Omegas: []float64{0},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetInitState builds the initial chain state, padding omitted angle or
// angular-velocity lists with zeros up to the joint count.
func (c *Config) GetInitState() dynamo.State {
	s := dynamo.NewState(c.Joints)
	s.CartVel = c.InitState.CartVel
	copy(s.Angles, c.InitState.Angles)
	copy(s.Omegas, c.InitState.Omegas)
	return s
}
