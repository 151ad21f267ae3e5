package confetti

import (
	"strconv"
	"strings"
	"unicode"
)

// Attribute names understood by Confetti.
const (
	AttrParticles = "particles"
	AttrFading    = "fading"
	AttrColor     = "color" // alias of AttrColor1
	AttrColor1    = "color1"
	AttrColor2    = "color2"
	AttrColor3    = "color3"
	AttrColor4    = "color4"
	AttrColor5    = "color5"
	AttrColor6    = "color6"
)

// ObservedAttributes lists the attributes whose changes are applied
// immediately. AttrFading is presence-based and read on every tick instead.
var ObservedAttributes = []string{
	AttrParticles,
	AttrColor,
	AttrColor1,
	AttrColor2,
	AttrColor3,
	AttrColor4,
	AttrColor5,
	AttrColor6,
}

// Attributes is a string attribute map with the parsing rules of the
// confetti element.
type Attributes struct {
	values    map[string]string
	particles int
	colors    [NumColorClasses]string
}

// NewAttributes returns an attribute set with no attributes present.
func NewAttributes() *Attributes {
	return &Attributes{
		values:    make(map[string]string),
		particles: DefaultParticles,
	}
}

// Set stores value under name and applies it.
func (a *Attributes) Set(name, value string) {
	name = strings.ToLower(name)
	a.values[name] = value
	a.changed(name, value, true)
}

// Remove deletes name and applies its absence.
func (a *Attributes) Remove(name string) {
	name = strings.ToLower(name)
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	a.changed(name, "", false)
}

// Has reports whether name is present.
func (a *Attributes) Has(name string) bool {
	_, ok := a.values[strings.ToLower(name)]
	return ok
}

// Get returns the value of name and whether it is present.
func (a *Attributes) Get(name string) (string, bool) {
	v, ok := a.values[strings.ToLower(name)]
	return v, ok
}

// Particles returns the parsed target piece count.
func (a *Attributes) Particles() int {
	return a.particles
}

// Colors returns the raw color overrides for classes 1..6. Empty strings are
// unset.
func (a *Attributes) Colors() [NumColorClasses]string {
	return a.colors
}

// Config returns the simulation config the attributes describe.
func (a *Attributes) Config() Config {
	return Config{
		Particles: a.particles,
		Fading:    a.Has(AttrFading),
	}
}

func (a *Attributes) changed(name, value string, present bool) {
	if !present {
		value = ""
	}
	switch name {
	case AttrParticles:
		a.particles = ParseParticles(value)
	case AttrColor, AttrColor1:
		a.colors[0] = value
	case AttrColor2:
		a.colors[1] = value
	case AttrColor3:
		a.colors[2] = value
	case AttrColor4:
		a.colors[3] = value
	case AttrColor5:
		a.colors[4] = value
	case AttrColor6:
		a.colors[5] = value
	}
}

// ParseParticles reads a piece count the way a leading-integer parse does:
// surrounding whitespace and a sign are accepted and anything after the
// digits is ignored ("80px" is 80). Values with no leading digits fall back
// to DefaultParticles; negative values clamp to zero.
func ParseParticles(value string) int {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultParticles
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow: only huge digit runs get here.
		if s[0] == '-' {
			return 0
		}
		return DefaultParticles
	}
	if n < 0 {
		return 0
	}
	return n
}
