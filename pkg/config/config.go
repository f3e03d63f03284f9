// Package config loads bricklayer configuration from TOML files.
//
// A config file describes the wall dimensions, the brick and joint sizes,
// the bond variant with its parameters, and the robot's build envelope.
// All values have working defaults, so a minimal file only overrides what
// differs:
//
//	[wall]
//	width  = 2300
//	height = 2000
//
//	[bond]
//	variant = "wild"
//	seed    = 42
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bricklayer/pkg/bond"
	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// Config is the full bricklayer configuration.
type Config struct {
	Wall     WallConfig     `toml:"wall"`
	Brick    BrickConfig    `toml:"brick"`
	Bond     BondConfig     `toml:"bond"`
	Envelope EnvelopeConfig `toml:"envelope"`
}

// WallConfig sets the target wall dimensions in mm.
type WallConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// BrickConfig sets the base brick and joint dimensions in mm.
type BrickConfig struct {
	Length    int `toml:"length"`
	Height    int `toml:"height"`
	HeadJoint int `toml:"head_joint"`
	BedJoint  int `toml:"bed_joint"`
}

// BondConfig selects the bond variant and its parameters.
type BondConfig struct {
	Variant    string `toml:"variant"`
	MaxRun     int    `toml:"max_run"`
	Seed       uint64 `toml:"seed"`
	MaxSteps   int    `toml:"max_steps"`
	MinOverlap int    `toml:"min_overlap"`
}

// EnvelopeConfig sets the robot's reachable window in mm. The defaults
// match the original simulation's 800x1300 mm platform.
type EnvelopeConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the configuration used when no file is given: a 2.3 x 2 m
// stretcher-bond wall built with standard bricks.
func Default() Config {
	spec := wall.DefaultSpec()
	return Config{
		Wall:  WallConfig{Width: 2300, Height: 2000},
		Brick: BrickConfig{Length: spec.Length, Height: spec.Height, HeadJoint: spec.HeadJoint, BedJoint: spec.BedJoint},
		Bond: BondConfig{
			Variant:  string(bond.Stretcher),
			MaxRun:   bond.DefaultMaxRun,
			MaxSteps: bond.DefaultMaxSteps,
		},
		Envelope: EnvelopeConfig{Width: 800, Height: 1300},
	}
}

// Load reads a TOML file and merges it over the defaults. Unknown keys are
// rejected so typos surface instead of silently falling back.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks dimensions and variant without generating anything.
func (c Config) Validate() error {
	if c.Wall.Width <= 0 || c.Wall.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "wall dimensions must be positive")
	}
	if err := c.Spec().Validate(); err != nil {
		return err
	}
	if _, err := bond.ParseVariant(c.Bond.Variant); err != nil {
		return err
	}
	if c.Envelope.Width < c.Brick.Length || c.Envelope.Height < c.Brick.Height {
		return errors.New(errors.ErrCodeInvalidConfig,
			"envelope %dx%d mm cannot hold a single brick", c.Envelope.Width, c.Envelope.Height)
	}
	return nil
}

// Spec returns the brick dimensions as a wall.BrickSpec.
func (c Config) Spec() wall.BrickSpec {
	return wall.BrickSpec{
		Length:    c.Brick.Length,
		Height:    c.Brick.Height,
		HeadJoint: c.Brick.HeadJoint,
		BedJoint:  c.Brick.BedJoint,
	}
}

// Variant returns the parsed bond variant. Call Validate first.
func (c Config) Variant() bond.Variant {
	v, _ := bond.ParseVariant(c.Bond.Variant)
	return v
}

// Params returns the bond generation parameters.
func (c Config) Params() bond.Params {
	return bond.Params{
		Spec:       c.Spec(),
		MinOverlap: c.Bond.MinOverlap,
		MaxRun:     c.Bond.MaxRun,
		Seed:       c.Bond.Seed,
		MaxSteps:   c.Bond.MaxSteps,
	}
}

// Example is a fully commented starter config, written by `bricklayer plan --init`.
const Example = `# bricklayer configuration

[wall]
width  = 2300 # mm, snapped to the nearest legal width for the bond
height = 2000 # mm, rounded to whole courses

[brick]
length     = 210 # full stretcher, mm
height     = 50
head_joint = 10
bed_joint  = 12

[bond]
variant = "stretcher" # stretcher, flemish, english-cross, wild
max_run = 3           # wild: max consecutive same-size bricks
seed    = 0           # wild: solver shuffle seed

[envelope]
width  = 800  # robot reach, mm
height = 1300
`
