package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("NilWriter", func(t *testing.T) {
		_, err := New("APP", config.ColorGreen, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("Levels", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", config.ColorGreen, &buf)
		require.NoError(t, err)

		l.Info("server started")
		l.Error("lost connection")

		out := buf.String()
		assert.Contains(t, out, "[APP]")
		assert.Contains(t, out, "[INFO]"+config.LogColorReset+" server started")
		assert.Contains(t, out, "[ERROR]"+config.LogColorReset+" lost connection")
	})
}
