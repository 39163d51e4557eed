package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zap.InfoLevel, false},
		{"debug", zap.DebugLevel, false},
		{"INFO", zap.InfoLevel, false},
		{" Warn ", zap.WarnLevel, false},
		{"warning", zap.WarnLevel, false},
		{"ERROR", zap.ErrorLevel, false},
		{"verbose", zap.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	assert.Equal(t, zap.DebugLevel, LevelFromEnv())

	t.Setenv(EnvLevel, "nonsense")
	assert.Equal(t, zap.InfoLevel, LevelFromEnv())
}

func TestNew(t *testing.T) {
	for _, console := range []bool{false, true} {
		l, err := New(zap.WarnLevel, console)
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.InfoLevel))
		assert.True(t, l.Core().Enabled(zap.WarnLevel))
	}
}

func TestSetAndL(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))

	L().Debug("aim miss", zap.String("reason", "no hit"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "aim miss", entry.Message)
	assert.Equal(t, "no hit", entry.ContextMap()["reason"])

	Set(nil)
	assert.NotNil(t, L(), "nil resets to a no-op logger")
}
