package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"   nonsense   ", zerolog.WarnLevel},
		{" DEBUG ", zerolog.DebugLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseLevel(c.in), "ParseLevel(%q)", c.in)
	}
}

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "json", Component: "cli", Writer: &buf})

	l.Info().Float64("watts", 280).Msg("sized")
	l.Debug().Msg("filtered out by level")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "sized", rec["message"])
	assert.Equal(t, "cli", rec["component"])
	assert.Equal(t, 280.0, rec["watts"])
	assert.NotContains(t, buf.String(), "filtered out")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Writer: &buf})
	Named(l, "").Debug().Str("heater", "A").Msg("candidate")
	Named(l, "search").Debug().Msg("named")

	assert.Contains(t, buf.String(), "candidate")
	assert.Contains(t, buf.String(), "component=search")
	assert.Contains(t, buf.String(), "heater=A")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "DEBUG")
	t.Setenv(EnvFormat, "")

	o := FromEnv()
	assert.Equal(t, "debug", o.Level)
	assert.Equal(t, "console", o.Format)
}
