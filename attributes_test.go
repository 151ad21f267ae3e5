package confetti

import "testing"

func TestParseParticles(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"60", 60},
		{"0", 0},
		{"150", 150},
		{"  42", 42},
		{"+7", 7},
		{"80px", 80},
		{"12.9", 12},
		{"-5", 0},
		{"", DefaultParticles},
		{"abc", DefaultParticles},
		{"-", DefaultParticles},
		{"px80", DefaultParticles},
		{"99999999999999999999999", DefaultParticles},
		{"-99999999999999999999999", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseParticles(tt.in); got != tt.want {
				t.Errorf("ParseParticles(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestAttributesDefaults(t *testing.T) {
	a := NewAttributes()
	if a.Particles() != DefaultParticles {
		t.Errorf("Particles = %d, want %d", a.Particles(), DefaultParticles)
	}
	if cfg := a.Config(); cfg != DefaultConfig() {
		t.Errorf("Config = %+v, want %+v", cfg, DefaultConfig())
	}
	if a.Colors() != [NumColorClasses]string{} {
		t.Errorf("Colors = %v, want none", a.Colors())
	}
}

func TestAttributesFadingIsPresenceBased(t *testing.T) {
	a := NewAttributes()
	a.Set("fading", "")
	if !a.Config().Fading {
		t.Error("empty fading attribute should enable fading")
	}
	a.Set("fading", "false")
	if !a.Config().Fading {
		t.Error("any fading value should enable fading")
	}
	a.Remove("fading")
	if a.Config().Fading {
		t.Error("removing fading should disable it")
	}
}

func TestAttributesParticles(t *testing.T) {
	a := NewAttributes()
	a.Set("PARTICLES", "25")
	if a.Particles() != 25 {
		t.Errorf("Particles = %d, want 25", a.Particles())
	}
	if v, ok := a.Get("particles"); !ok || v != "25" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	a.Set("particles", "lots")
	if a.Particles() != DefaultParticles {
		t.Errorf("Particles = %d for invalid value, want default", a.Particles())
	}
	a.Set("particles", "10")
	a.Remove("particles")
	if a.Particles() != DefaultParticles {
		t.Errorf("Particles = %d after remove, want default", a.Particles())
	}
}

func TestAttributesColors(t *testing.T) {
	a := NewAttributes()
	a.Set("color", "red")
	a.Set("color3", "#00ff00")
	a.Set("color6", "navy")

	got := a.Colors()
	want := [NumColorClasses]string{"red", "", "#00ff00", "", "", "navy"}
	if got != want {
		t.Errorf("Colors = %v, want %v", got, want)
	}

	a.Set("color1", "blue")
	if a.Colors()[0] != "blue" {
		t.Errorf("color1 should replace color, got %q", a.Colors()[0])
	}
	a.Remove("color3")
	if a.Colors()[2] != "" {
		t.Errorf("color3 = %q after remove, want empty", a.Colors()[2])
	}
}

func TestAttributesUnknownIgnored(t *testing.T) {
	a := NewAttributes()
	a.Set("data-x", "1")
	if !a.Has("data-x") {
		t.Error("unknown attributes are still stored")
	}
	if a.Config() != DefaultConfig() {
		t.Error("unknown attributes must not change the config")
	}
}
