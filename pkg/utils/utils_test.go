package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActivityID(t *testing.T) {
	g := NewIDGenerator()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.NewActivityID()
		assert.True(t, strings.HasPrefix(id, "act-"))
		assert.NotContains(t, id[4:], "-")
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestSanitizeInputKeepsMultilineNotes(t *testing.T) {
	v := NewValidator()

	assert.Equal(t, "line1\nline2", v.SanitizeInput("  line1\nline2  "))
	assert.Equal(t, "ab", v.SanitizeInput("a\x00\x08b"))
	assert.Equal(t, "巧克力山 🍫", v.SanitizeInput("巧克力山 🍫"))
}

func TestSanitizeUpdateSkipsNilSlots(t *testing.T) {
	v := NewValidator()

	val := "  10:00 "
	var missing *string
	v.SanitizeUpdate(&val, missing)
	assert.Equal(t, "10:00", val)
}

func TestBuildDataURI(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	uri := BuildDataURI("image/png", data)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestBuildDataURISniffsContentType(t *testing.T) {
	uri := BuildDataURI("", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'})
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}
