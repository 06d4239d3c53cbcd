package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magecards/logger"
)

func TestNew_ReleaseWritesJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logger.Component(logger.New(&buf, "debug", true), "session")

	l.Debug().Str("room", "Pokój").Msg("joined")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "session", line["component"])
	assert.Equal(t, "Pokój", line["room"])
	assert.Equal(t, "joined", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc    string
		level   string
		written bool
	}{
		{desc: "debug passes debug", level: "debug", written: true},
		{desc: "warn drops debug", level: "warn"},
		{desc: "empty means info", level: ""},
		{desc: "garbage means info", level: "loud"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := logger.New(&buf, tc.level, true)
			l.Debug().Msg("x")
			assert.Equal(t, tc.written, buf.Len() > 0)
		})
	}
}

func TestNew_DevIsConsole(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logger.New(&buf, "info", false)
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}
