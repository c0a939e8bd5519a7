package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"default is warn", "", false, zapcore.WarnLevel, zapcore.InfoLevel},
		{"explicit info", "info", false, zapcore.InfoLevel, zapcore.DebugLevel},
		{"error only", "error", false, zapcore.ErrorLevel, zapcore.WarnLevel},
		{"verbose wins", "error", true, zapcore.DebugLevel, zapcore.DebugLevel - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, tt.verbose)
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}
