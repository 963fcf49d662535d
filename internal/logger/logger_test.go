package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupWithWriterLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	SetupWithWriter(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Str("route", "/generate").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, `"route":"/generate"`)
}

func TestSetupWithWriterUnknownLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	SetupWithWriter(&buf, "chatty")

	log.Debug().Msg("debug line")
	assert.Contains(t, buf.String(), "debug line")
}
