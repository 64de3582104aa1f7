package safe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSafeTime_Success(t *testing.T) {
	// Mock
	expected := time.Date(2022, 4, 12, 5, 45, 33, 0, time.UTC)
	expectedMicros := time.Date(2022, 4, 12, 5, 45, 33, 328000000, time.UTC)

	inputs := map[string]time.Time{
		"2022-04-12T05:45:33":         expected,
		"2022-04-12T05:45:33Z":        expected,
		"2022-04-12T05:45:33.328000":  expectedMicros,
		"2022-04-12T05:45:33.328000Z": expectedMicros,
		"20220412t054533":             expected,
	}

	for input, want := range inputs {
		// Tested code
		parsed, err := ParseSafeTime(input)

		// Asserts
		assert.Nil(t, err, "unexpected error for %q", input)
		assert.Equal(t, want, parsed, "wrong time for %q", input)
	}
}

func TestParseSafeTime_Error(t *testing.T) {
	// Tested code
	_, err := ParseSafeTime("12/04/2022 05:45:33")

	// Asserts
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "12/04/2022 05:45:33")
}
