package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicLogContext_SessionID_Stable(t *testing.T) {
	// Mock
	ctx := &BasicLogContext{}

	// Tested code
	first := ctx.SessionID()
	second := ctx.SessionID()

	// Asserts
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestLogSimpleErr_ReturnsReadableError(t *testing.T) {
	// Mock
	cause := errors.New("read error")

	// Tested code
	err := LogSimpleErr(&BasicLogContext{}, "Failed to ingest granule X.", cause)

	// Asserts
	assert.NotNil(t, err)
	assert.Equal(t, "Failed to ingest granule X. read error", err.Error())
}
