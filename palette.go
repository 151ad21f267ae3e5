package confetti

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// defaultColors are the class colors used when no override in a class's
// fallback chain is set.
var defaultColors = [NumColorClasses]string{
	"blue", "red", "lime", "yellow", "magenta", "cyan",
}

// fallbackChains lists, per class, which overrides (0-based) are tried in
// order before the class default.
var fallbackChains = [NumColorClasses][]int{
	{0},
	{1, 0},
	{2, 0},
	{3, 1, 0},
	{4, 0},
	{5, 2, 1, 0},
}

// Palette holds the resolved color of each of the six classes.
type Palette struct {
	colors [NumColorClasses]Color
}

// DefaultPalette returns the palette of an element with no color attributes.
func DefaultPalette() *Palette {
	return ResolvePalette([NumColorClasses]string{})
}

// ResolvePalette resolves the six classes from raw overrides. An override
// that is empty or fails to parse counts as unset.
func ResolvePalette(overrides [NumColorClasses]string) *Palette {
	var parsed [NumColorClasses]*Color
	for i, s := range overrides {
		if s == "" {
			continue
		}
		c, err := ParseColor(s)
		if err != nil {
			continue
		}
		parsed[i] = &c
	}

	p := &Palette{}
	for class, chain := range fallbackChains {
		p.colors[class] = mustParseColor(defaultColors[class])
		for _, i := range chain {
			if parsed[i] != nil {
				p.colors[class] = *parsed[i]
				break
			}
		}
	}
	return p
}

// Color returns the color of class. Out-of-range classes get white.
func (p *Palette) Color(class ColorClass) Color {
	if class < ColorClass1 || int(class) > NumColorClasses {
		return ColorWhite
	}
	return p.colors[class-ColorClass1]
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a CSS color name.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("parse color: empty")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	rgba, ok := colornames.Map[s]
	if !ok {
		return Color{}, fmt.Errorf("parse color %q: unknown name", s)
	}
	return Color{
		R: float64(rgba.R) / 255,
		G: float64(rgba.G) / 255,
		B: float64(rgba.B) / 255,
		A: float64(rgba.A) / 255,
	}, nil
}

func parseHexColor(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func mustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
