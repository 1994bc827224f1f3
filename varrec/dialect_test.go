package varrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsciiEqualFold(t *testing.T) {
	assert.True(t, asciiEqualFold("Translation", "TRANSLATION"))
	assert.True(t, asciiEqualFold("080904B0", "080904b0"))
	assert.False(t, asciiEqualFold("Translation", "Translatio"))
	assert.False(t, asciiEqualFold("abc", "abd"))
}

func TestEncodeKeyANSI16(t *testing.T) {
	got := encodeKey(ANSI16, "CompanyName")
	assert.Equal(t, append([]byte("CompanyName"), 0), got)
}

func TestEncodeKeyWide32(t *testing.T) {
	got := encodeKey(Wide32, "AB")
	assert.Equal(t, []byte{'A', 0, 'B', 0, 0, 0}, got)
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "text", Text.String())
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "ansi16", ANSI16.String())
	assert.Equal(t, "wide32", Wide32.String())
}
