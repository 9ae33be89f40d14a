package levels

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBounds = errors.New("levels: level width and height must be positive")
	ErrSpawnOutside  = errors.New("levels: spawn point outside level bounds")
)

// Level is a static level layout plus the physics tuning it was designed for.
// Coordinates are world pixels, origin top-left, y down.
type Level struct {
	Name            string               `yaml:"name"`
	Width           float64              `yaml:"width"`
	Height          float64              `yaml:"height"`
	Spawn           Point                `yaml:"spawn"`
	Physics         Tuning               `yaml:"physics"`
	Player          PlayerSpec           `yaml:"player"`
	Platforms       []PlatformSpec       `yaml:"platforms"`
	MovingPlatforms []MovingPlatformSpec `yaml:"moving_platforms"`
	Foes            []FoeSpec            `yaml:"foes"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Tuning struct {
	Gravity        float64 `yaml:"gravity"`
	StompTolerance float64 `yaml:"stomp_tolerance"`
	CarryScale     float64 `yaml:"carry_scale"`
}

type PlayerSpec struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Style  string  `yaml:"style"`
}

// MovingPlatformSpec patrols X between Left and Right.
type MovingPlatformSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Left      float64 `yaml:"left"`
	Right     float64 `yaml:"right"`
	Speed     float64 `yaml:"speed"`
	Direction float64 `yaml:"direction"`
	Style     string  `yaml:"style"`
}

// FoeSpec patrols with its leading edge between MinX and MaxX.
type FoeSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MinX      float64 `yaml:"min_x"`
	MaxX      float64 `yaml:"max_x"`
	Speed     float64 `yaml:"speed"`
	Direction float64 `yaml:"direction"`
}

const (
	DefaultGravity        = 0.5
	DefaultPlayerWidth    = 50
	DefaultPlayerHeight   = 100
	DefaultPlayerSpeed    = 5
	DefaultJumpSpeed      = 20
	DefaultFoeSize        = 75
	DefaultFoeSpeed       = 2
	DefaultPlatformWidth  = 200
	DefaultMovingWidth    = 300
	DefaultPlatformHeight = 50
)

// WithDefaults returns a copy with every zero knob replaced by its default.
func (l Level) WithDefaults() Level {
	out := l
	if out.Physics.Gravity == 0 {
		out.Physics.Gravity = DefaultGravity
	}
	p := &out.Player
	p.Width = orDefault(p.Width, DefaultPlayerWidth)
	p.Height = orDefault(p.Height, DefaultPlayerHeight)
	p.Speed = orDefault(p.Speed, DefaultPlayerSpeed)
	p.JumpSpeed = orDefault(p.JumpSpeed, DefaultJumpSpeed)

	out.Platforms = append([]PlatformSpec(nil), l.Platforms...)
	for i := range out.Platforms {
		ps := &out.Platforms[i]
		ps.Width = orDefault(ps.Width, DefaultPlatformWidth)
		ps.Height = orDefault(ps.Height, DefaultPlatformHeight)
	}
	out.MovingPlatforms = append([]MovingPlatformSpec(nil), l.MovingPlatforms...)
	for i := range out.MovingPlatforms {
		mp := &out.MovingPlatforms[i]
		mp.Width = orDefault(mp.Width, DefaultMovingWidth)
		mp.Height = orDefault(mp.Height, DefaultPlatformHeight)
		mp.Direction = orDefault(mp.Direction, 1)
		if mp.Style == "" {
			mp.Style = "moving"
		}
	}
	out.Foes = append([]FoeSpec(nil), l.Foes...)
	for i := range out.Foes {
		f := &out.Foes[i]
		f.Width = orDefault(f.Width, DefaultFoeSize)
		f.Height = orDefault(f.Height, DefaultFoeSize)
		f.Speed = orDefault(f.Speed, DefaultFoeSpeed)
		f.Direction = orDefault(f.Direction, 1)
	}
	return out
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// Validate checks level-wide invariants. Per-descriptor geometry and patrol
// ranges are checked when the entities are built.
func (l Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: %q is %vx%v: %w", l.Name, l.Width, l.Height, ErrInvalidBounds)
	}
	if l.Spawn.X < 0 || l.Spawn.X > l.Width || l.Spawn.Y < 0 || l.Spawn.Y > l.Height {
		return fmt.Errorf("levels: %q spawn (%v,%v): %w", l.Name, l.Spawn.X, l.Spawn.Y, ErrSpawnOutside)
	}
	return nil
}
