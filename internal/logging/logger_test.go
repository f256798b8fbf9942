package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name    string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "debug", want: zapcore.DebugLevel},
		{name: "info", want: zapcore.InfoLevel},
		{name: "warn", want: zapcore.WarnLevel},
		{name: "error", want: zapcore.ErrorLevel},
		{name: "loud", wantErr: true},
		{name: "fatal", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := ParseLevel(tc.name)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, lvl)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("cafe-checkout", "test", "debug")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_Level(t *testing.T) {
	logger, err := NewLogger("cafe-checkout", "test", "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("cafe-checkout", "test", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "loud"`)
}
