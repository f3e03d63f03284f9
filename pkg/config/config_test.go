package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bricklayer/pkg/bond"
	"github.com/matzehuels/bricklayer/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bricklayer.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[wall]
width = 1200

[bond]
variant = "wild"
seed = 42
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Wall.Width != 1200 {
		t.Errorf("Wall.Width = %d, want 1200", cfg.Wall.Width)
	}
	if cfg.Wall.Height != 2000 {
		t.Errorf("Wall.Height = %d, want default 2000", cfg.Wall.Height)
	}
	if cfg.Bond.Variant != "wild" || cfg.Bond.Seed != 42 {
		t.Errorf("Bond = {%s, seed %d}, want {wild, seed 42}", cfg.Bond.Variant, cfg.Bond.Seed)
	}
	if cfg.Brick.Length != 210 {
		t.Errorf("Brick.Length = %d, want default 210", cfg.Brick.Length)
	}
	if cfg.Variant() != bond.Wild {
		t.Errorf("Variant() = %s, want wild", cfg.Variant())
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[wall]
widht = 1200
`)
	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() = %v for unknown key, want INVALID_CONFIG", err)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, `[wall`)
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() = %v for broken TOML, want INVALID_CONFIG", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) = %v, want INVALID_CONFIG", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero wall width", func(c *Config) { c.Wall.Width = 0 }},
		{"unknown variant", func(c *Config) { c.Bond.Variant = "herringbone" }},
		{"tiny envelope", func(c *Config) { c.Envelope.Width = 100 }},
		{"broken brick spec", func(c *Config) { c.Brick.Length = 211 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Validate() = %v for defaults, want nil", err)
	}
}

func TestParamsRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Bond.Seed = 7
	cfg.Bond.MaxRun = 2

	p := cfg.Params()
	if p.Seed != 7 || p.MaxRun != 2 {
		t.Errorf("Params() = {Seed: %d, MaxRun: %d}, want {7, 2}", p.Seed, p.MaxRun)
	}
	if p.Spec != cfg.Spec() {
		t.Errorf("Params().Spec = %+v, want %+v", p.Spec, cfg.Spec())
	}
}

func TestExampleConfigParses(t *testing.T) {
	cfg := Default()
	meta, err := toml.Decode(Example, &cfg)
	if err != nil {
		t.Fatalf("Decode(Example) error = %v", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		t.Errorf("Example has unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate(Example) = %v, want nil", err)
	}
}
