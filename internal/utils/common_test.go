package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "", Truncate("abc", -1))
	assert.Equal(t, "", Truncate("", 5))
}

func TestTruncateIsPrefixAtByteBoundary(t *testing.T) {
	s := strings.Repeat("å", 10) // 20 bytes
	got := Truncate(s, 15)
	assert.Len(t, got, 15)
	assert.True(t, strings.HasPrefix(s, got))
}

func TestRefAndPtr(t *testing.T) {
	v := Ref(42)
	assert.Equal(t, 42, *v)
	assert.Equal(t, 42, Ptr(v))
	assert.Equal(t, 0, Ptr[int](nil))
}
