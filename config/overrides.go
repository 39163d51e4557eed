package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/interaction"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCameraPolicy is returned for camera policies other than
// "look-at" and "fixed-pitch".
var ErrUnknownCameraPolicy = errors.New("unknown camera policy")

// Overrides is the YAML shape accepted by -config. Absent keys keep their
// defaults.
type Overrides struct {
	Shot *struct {
		Multiplier    *float64 `yaml:"multiplier"`
		MaxImpulse    *float64 `yaml:"max_impulse"`
		CancelOnLeave *bool    `yaml:"cancel_on_leave"`
		RequireRest   *bool    `yaml:"require_rest"`
	} `yaml:"shot"`
	Ball *struct {
		LinearDamping   *float64 `yaml:"linear_damping"`
		WallRestitution *float64 `yaml:"wall_restitution"`
	} `yaml:"ball"`
	Camera *struct {
		Policy   *string   `yaml:"policy"`
		Offset   []float64 `yaml:"offset"`
		PitchDeg *float64  `yaml:"pitch_deg"`
		FovDeg   *float64  `yaml:"fov_deg"`
	} `yaml:"camera"`
	Window *struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"window"`
}

// ParseCameraPolicy maps a policy name onto interaction.CameraPolicy.
func ParseCameraPolicy(s string) (interaction.CameraPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "look-at", "lookat":
		return interaction.PolicyLookAt, nil
	case "fixed-pitch", "fixedpitch":
		return interaction.PolicyFixedPitch, nil
	}
	return interaction.PolicyLookAt, fmt.Errorf("%w: %q", ErrUnknownCameraPolicy, s)
}

// LoadOverrides applies the YAML file at path.
func LoadOverrides(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := ApplyOverrides(f); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes YAML from r, validates it, and only then writes the
// values into the globals. A bad document leaves the config untouched.
func ApplyOverrides(r io.Reader) error {
	var o Overrides
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode overrides: %w", err)
	}

	shot, ball, camera, c := Shot, Ball, Camera, *C

	if o.Shot != nil {
		if v := o.Shot.Multiplier; v != nil {
			if *v <= 0 {
				return fmt.Errorf("shot.multiplier must be positive, got %v", *v)
			}
			shot.Multiplier = *v
		}
		if v := o.Shot.MaxImpulse; v != nil {
			shot.MaxImpulse = *v
		}
		if v := o.Shot.CancelOnLeave; v != nil {
			shot.CancelOnLeave = *v
		}
		if v := o.Shot.RequireRest; v != nil {
			shot.RequireRest = *v
		}
	}

	if o.Ball != nil {
		if v := o.Ball.LinearDamping; v != nil {
			if *v < 0 || *v >= 1 {
				return fmt.Errorf("ball.linear_damping must be in [0, 1), got %v", *v)
			}
			ball.LinearDamping = *v
		}
		if v := o.Ball.WallRestitution; v != nil {
			if *v < 0 || *v > 1 {
				return fmt.Errorf("ball.wall_restitution must be in [0, 1], got %v", *v)
			}
			ball.WallRestitution = *v
		}
	}

	if o.Camera != nil {
		if v := o.Camera.Policy; v != nil {
			p, err := ParseCameraPolicy(*v)
			if err != nil {
				return err
			}
			camera.Policy = p
		}
		if o.Camera.Offset != nil {
			if len(o.Camera.Offset) != 3 {
				return fmt.Errorf("camera.offset needs 3 values, got %d", len(o.Camera.Offset))
			}
			camera.Offset = gamemath.V3(o.Camera.Offset[0], o.Camera.Offset[1], o.Camera.Offset[2])
		}
		if v := o.Camera.PitchDeg; v != nil {
			camera.PitchDeg = *v
		}
		if v := o.Camera.FovDeg; v != nil {
			if *v <= 0 || *v >= 180 {
				return fmt.Errorf("camera.fov_deg must be in (0, 180), got %v", *v)
			}
			camera.FovDeg = *v
		}
	}

	if o.Window != nil {
		if v := o.Window.Width; v != nil && *v > 0 {
			c.Width = *v
		}
		if v := o.Window.Height; v != nil && *v > 0 {
			c.Height = *v
		}
	}

	Shot, Ball, Camera, C = shot, ball, camera, &c
	return nil
}
