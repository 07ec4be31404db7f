package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

func TestWithComponent_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	log.WithComponent("caja").Info().Str("sesion_id", "s-1").Msg("caja abierta")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "caja", line["component"])
	assert.Equal(t, "s-1", line["sesion_id"])
	assert.Equal(t, "info", line["level"])
}

func TestNivelFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Debug().Msg("no debe salir")
	log.Info().Msg("tampoco")
	assert.Empty(t, buf.String())

	log.Warn().Msg("sí")
	assert.Contains(t, buf.String(), `"message":"sí"`)
}
