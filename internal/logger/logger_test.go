package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var out bytes.Buffer
	l := newLogger(&out, nil, false, false)

	l.Info().Int("unique_ids", 3).Msg("summarized")
	l.Debug().Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	require.Equal(t, "summarized", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.EqualValues(t, 3, entry["unique_ids"])
	require.Contains(t, entry, "time")
	require.NotContains(t, out.String(), "hidden")
}

func TestNewLoggerDebug(t *testing.T) {
	var out bytes.Buffer
	l := newLogger(&out, nil, false, true)

	l.Debug().Msg("visible")
	require.Contains(t, out.String(), "visible")
}

func TestNewLoggerPretty(t *testing.T) {
	var out, pretty bytes.Buffer
	l := newLogger(&out, &pretty, true, false)

	l.Info().Msg("hello")
	require.Empty(t, out.String())
	require.Contains(t, pretty.String(), "hello")
}
