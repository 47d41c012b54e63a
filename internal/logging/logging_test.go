package logging

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingHandler struct {
	messages []string
	levels   []string
}

func (h *capturingHandler) SetFormatter(Formatter) {}

func (h *capturingHandler) SetVerbose(bool) {}

func (h *capturingHandler) Output() io.Writer { return nil }

func (h *capturingHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	h.levels = append(h.levels, ctx.Level)
	h.messages = append(h.messages, fmt.Sprintf(message, args...))
	return nil
}

func (h *capturingHandler) Printf(msg string, args ...interface{}) {}

func (h *capturingHandler) Close() {}

func setupCapture(t *testing.T) *capturingHandler {
	handler := &capturingHandler{}
	oldHandler := CurrentHandler()
	SetHandler(handler)
	t.Cleanup(func() {
		SetHandler(oldHandler)
		SetLevel(ALL)
	})
	return handler
}

func TestLevelMask(t *testing.T) {
	handler := setupCapture(t)

	SetLevel(NORMAL)
	Debug("should be masked")
	Info("should come through")

	require.Len(t, handler.messages, 1)
	assert.Equal(t, "should come through", handler.messages[0])
	assert.Equal(t, "INFO", handler.levels[0])
}

func TestSetMinimalLevelByName(t *testing.T) {
	handler := setupCapture(t)

	err := SetMinimalLevelByName("warning")
	require.NoError(t, err)

	Debug("masked")
	Info("masked")
	Warning("visible")

	require.Len(t, handler.messages, 1)
	assert.Equal(t, "WARNING", handler.levels[0])

	err = SetMinimalLevelByName("NO-SUCH-LEVEL")
	assert.Error(t, err)
}

func TestLazyArgs(t *testing.T) {
	handler := setupCapture(t)

	evaluated := false
	Debug("value: %v", func() interface{} {
		evaluated = true
		return "lazy"
	})

	assert.True(t, evaluated, "lazy arg should have been evaluated")
	require.Len(t, handler.messages, 1)
	assert.Equal(t, "value: lazy", handler.messages[0])

	SetLevel(NOTHING)
	Debug("value: %v", func() interface{} {
		t.Fatal("arg should not be evaluated for masked levels")
		return nil
	})
}

func TestErrorIncludesStacktrace(t *testing.T) {
	handler := setupCapture(t)

	Error("something broke")

	require.Len(t, handler.messages, 1)
	assert.Contains(t, handler.messages[0], "something broke")
	assert.Contains(t, handler.messages[0], "Stacktrace:")
}
