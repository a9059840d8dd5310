package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		env     string
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{env: "production", level: "warn", enabled: zapcore.WarnLevel, muted: zapcore.InfoLevel},
		{env: "local", level: "info", enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
		{env: "testing", level: "error", enabled: zapcore.ErrorLevel, muted: zapcore.WarnLevel},
	}

	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			t.Parallel()

			l, err := New(tc.env, tc.level)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.True(t, l.Core().Enabled(tc.enabled))
			assert.False(t, l.Core().Enabled(tc.muted))
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	t.Parallel()

	l, err := New("local", "loud")
	require.Error(t, err)
	assert.Nil(t, l)
	assert.Contains(t, err.Error(), "logging:")
}
