package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/kyunghwan/beans/internal/config"
	"github.com/kyunghwan/beans/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Log
		enabled zapcore.Level
		muted   zapcore.Level
		wantErr bool
	}{
		{name: "json info", cfg: config.Log{Level: "info", Format: "json"}, enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
		{name: "console debug", cfg: config.Log{Level: "debug", Format: "console"}, enabled: zapcore.DebugLevel, muted: zapcore.DebugLevel - 1},
		{name: "bad level", cfg: config.Log{Level: "loud", Format: "json"}, wantErr: true},
		{name: "bad format", cfg: config.Log{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.muted))
		})
	}
}
