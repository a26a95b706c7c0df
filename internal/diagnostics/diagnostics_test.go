package diagnostics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugfSuppressedWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())
}

func TestDebugfEmittedWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.Debugf("shown %d", 1)
	assert.Contains(t, buf.String(), "[debug] shown 1")
}

func TestInfofAlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Infof("hello %s", "world")
	assert.Contains(t, buf.String(), "[info] hello world")
}

func TestErrorfAlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Errorf("boom")
	assert.Contains(t, buf.String(), "[error] boom")
}

func TestCLIErrorWrapsAndUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := NewCLIError("E_WRITE", "failed to write output", cause)
	assert.Contains(t, err.Error(), "E_WRITE")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestCLIErrorWithoutCause(t *testing.T) {
	err := NewCLIError("E_PARSE", "malformed input", nil)
	assert.Equal(t, "E_PARSE: malformed input", err.Error())
}
