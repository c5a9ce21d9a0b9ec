package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: " WARN ", want: zerolog.WarnLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "off", want: zerolog.Disabled},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"visible"`)
}

func TestWithWindowID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "keyboard")
	ctx = WithWindowID(ctx, "win-1")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"keyboard"`)
	assert.Contains(t, buf.String(), `"window_id":"win-1"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}
