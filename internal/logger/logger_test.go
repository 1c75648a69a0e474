package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	level, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestSetupJSON(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	Logger{Level: "warn", Format: FormatJSON}.SetupWriter(&buf)

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Str("source", "geo:1,2").Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "geo:1,2", entry["source"])
	assert.Contains(t, entry, "time")
}

func TestSetupText(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	Logger{Level: "debug", Format: FormatText, NoColor: true}.SetupWriter(&buf)

	log.Debug().Str("notation", "iso").Msg("Parsed")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "Parsed")
	assert.Contains(t, buf.String(), "notation=iso")
}

func TestSetupUnknownLevel(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	Logger{Level: "loud", Format: FormatJSON}.SetupWriter(&buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "Unknown log level")
}
