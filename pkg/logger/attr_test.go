package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	assert.Equal(t, "username", logger.Username("alice").Key)
	assert.Equal(t, slog.Attr{}, logger.Username(""))

	assert.Equal(t, "client_ip", logger.ClientIP("203.0.113.5").Key)
	assert.Equal(t, slog.Attr{}, logger.ClientIP(""))

	assert.Equal(t, "role", logger.Role("admin").Key)
	assert.Equal(t, slog.Attr{}, logger.Role(nil))

	assert.Equal(t, "component", logger.Component("session").Key)
	assert.Equal(t, "event", logger.Event("login").Key)
	assert.Equal(t, "duration", logger.Duration(time.Second).Key)
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithAttr(logger.Component("test")),
	)

	log.Info("hello", logger.Username("alice"))

	out := buf.String()
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"username":"alice"`)
	assert.Contains(t, out, `"msg":"hello"`)
}

func TestNewLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
