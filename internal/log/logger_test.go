package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/safecosts/configs"
)

func TestNewLogger_LevelAndComponent(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger := newLogger(&buf, "scanner", config.LogConfig{Level: "warn"})

	logger.Info().Msg("dropped")
	logger.Warn().Uint64("from_block", 10).Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "scanner", entry["component"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, float64(10), entry["from_block"])
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger := newLogger(&buf, "test", config.LogConfig{Level: "loud"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}
