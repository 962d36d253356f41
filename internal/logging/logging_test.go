package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestNewJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Info().Int("columns", 3).Msg("solved")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "solved", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.EqualValues(t, 3, entry["columns"])
	require.Contains(t, entry, "time")
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "WARN", Writer: buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	require.Equal(t, "", strings.TrimSpace(buf.String()))

	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNewInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNewHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info().Msg("console output")
	out := buf.String()
	require.Contains(t, out, "console output")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		human bool
		ok    bool
	}{
		{"", true, true},
		{"console", true, true},
		{" JSON ", false, true},
		{"xml", false, false},
	}
	for _, tt := range tests {
		human, ok := ParseFormat(tt.in)
		require.Equal(t, tt.human, human, tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
	}
}
