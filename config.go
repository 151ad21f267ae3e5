package confetti

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML form of a confetti element's attributes.
//
//	particles: 80
//	fading: true
//	colors: ["#ff4081", "gold", "#4caf50"]
type FileConfig struct {
	// Particles is the target piece count. Omitted means the default.
	Particles *int `yaml:"particles"`
	// Fading turns on the fading attribute.
	Fading bool `yaml:"fading"`
	// Colors override color1..color6 in order. At most six.
	Colors []string `yaml:"colors"`
	// Debug turns on per-frame logging.
	Debug bool `yaml:"debug"`
}

// LoadFileConfig reads and validates a YAML config file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read confetti config: %w", err)
	}
	return ParseFileConfig(data)
}

// ParseFileConfig decodes and validates YAML config data.
func ParseFileConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse confetti config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid confetti config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the particle count and every color.
func (f *FileConfig) Validate() error {
	if f.Particles != nil && *f.Particles < 0 {
		return fmt.Errorf("particles must be non-negative, got %d", *f.Particles)
	}
	if len(f.Colors) > NumColorClasses {
		return fmt.Errorf("at most %d colors, got %d", NumColorClasses, len(f.Colors))
	}
	for i, s := range f.Colors {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("colors[%d]: %w", i, err)
		}
	}
	return nil
}

// Apply sets the config's attributes on c.
func (f *FileConfig) Apply(c *Confetti) {
	if f.Particles != nil {
		c.SetAttribute(AttrParticles, strconv.Itoa(*f.Particles))
	}
	if f.Fading {
		c.SetAttribute(AttrFading, "")
	} else {
		c.RemoveAttribute(AttrFading)
	}
	colorAttrs := [NumColorClasses]string{AttrColor1, AttrColor2, AttrColor3, AttrColor4, AttrColor5, AttrColor6}
	for i, s := range f.Colors {
		c.SetAttribute(colorAttrs[i], s)
	}
	c.SetDebugMode(f.Debug)
}
