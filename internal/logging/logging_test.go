package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/sage-gateway/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("invalid level", func(t *testing.T) {
		_, err := logging.Setup(logging.Options{Level: "loud"})
		require.Error(t, err)
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gateway.log")
		closer, err := logging.Setup(logging.Options{Level: "debug", File: path})
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

		log.Info().Str("route", "/auth/verify").Msg("hello")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `"route":"/auth/verify"`)
	})
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, false)
	l.Warn().Msg("fallback")
	require.Contains(t, buf.String(), `"level":"warn"`)
	require.Contains(t, buf.String(), `"message":"fallback"`)
}
