package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()

	assert.Equal(t, 2.4, Shot.Multiplier)
	assert.Zero(t, Shot.MaxImpulse, "no impulse cap by default")
	assert.False(t, Shot.CancelOnLeave)
	assert.Equal(t, 0.5, Ball.LinearDamping)
	assert.Equal(t, interaction.PolicyLookAt, Camera.Policy)
	assert.Equal(t, gamemath.V3(0, 18, 12), Camera.Offset)
	assert.InDelta(t, 1.0/60, Dt(), 1e-12)
}

func TestAimConfigAndChaseCamera(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	Shot.MaxImpulse = 10
	Camera.PitchDeg = 90

	aim := AimConfig()
	assert.Equal(t, 2.4, aim.Multiplier)
	assert.Equal(t, 1.0, aim.AimHeight)
	assert.Equal(t, 10.0, aim.MaxImpulse)

	cam := ChaseCamera()
	assert.InDelta(t, math.Pi/2, cam.Pitch, 1e-12)
	assert.Equal(t, Camera.Offset, cam.Offset)
}

func TestParseCameraPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want interaction.CameraPolicy
		err  bool
	}{
		{"look-at", interaction.PolicyLookAt, false},
		{"LookAt", interaction.PolicyLookAt, false},
		{"fixed-pitch", interaction.PolicyFixedPitch, false},
		{" FixedPitch ", interaction.PolicyFixedPitch, false},
		{"orbit", interaction.PolicyLookAt, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCameraPolicy(tt.in)
			if tt.err {
				assert.True(t, errors.Is(err, ErrUnknownCameraPolicy))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	doc := `
shot:
  multiplier: 3
  max_impulse: 20
  cancel_on_leave: true
ball:
  linear_damping: 0.25
camera:
  policy: fixed-pitch
  offset: [0, 25, 15]
  pitch_deg: 60
window:
  width: 1280
`
	require.NoError(t, ApplyOverrides(strings.NewReader(doc)))

	assert.Equal(t, 3.0, Shot.Multiplier)
	assert.Equal(t, 20.0, Shot.MaxImpulse)
	assert.True(t, Shot.CancelOnLeave)
	assert.True(t, Shot.RequireRest, "untouched keys keep defaults")
	assert.Equal(t, 0.25, Ball.LinearDamping)
	assert.Equal(t, interaction.PolicyFixedPitch, Camera.Policy)
	assert.Equal(t, gamemath.V3(0, 25, 15), Camera.Offset)
	assert.Equal(t, 60.0, Camera.PitchDeg)
	assert.Equal(t, 1280, C.Width)
	assert.Equal(t, 540, C.Height)
}

func TestApplyOverridesEmpty(t *testing.T) {
	Reset()
	require.NoError(t, ApplyOverrides(strings.NewReader("")))
	assert.Equal(t, 2.4, Shot.Multiplier)
}

func TestApplyOverridesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown policy", "camera:\n  policy: orbit\n"},
		{"short offset", "camera:\n  offset: [1, 2]\n"},
		{"negative multiplier", "shot:\n  multiplier: -1\n"},
		{"damping out of range", "ball:\n  linear_damping: 1.5\n"},
		{"unknown key", "shot:\n  power: 3\n"},
		{"not yaml", "shot: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			// A valid key before the bad one must not leak through.
			doc := "window:\n  width: 100\n" + tt.doc
			assert.Error(t, ApplyOverrides(strings.NewReader(doc)))
			assert.Equal(t, 960, C.Width)
			assert.Equal(t, 2.4, Shot.Multiplier)
			assert.Equal(t, interaction.PolicyLookAt, Camera.Policy)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "putty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shot:\n  multiplier: 1.5\n"), 0o644))
	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, 1.5, Shot.Multiplier)

	err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNextVolumeStep(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 0.75, 1.0}

	assert.Equal(t, 0.25, NextVolumeStep(0, steps))
	assert.Equal(t, 1.0, NextVolumeStep(0.8, steps), "snaps to the closest step first")
	assert.Equal(t, 0.0, NextVolumeStep(1.0, steps), "wraps to mute")
	assert.Equal(t, 0.3, NextVolumeStep(0.3, nil))
}
