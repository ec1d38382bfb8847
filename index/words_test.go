package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"", true},
		{"a", true},
		{"aa", true},
		{"ab", false},
		{"aba", true},
		{"abba", true},
		{"abca", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPalindrome([]byte(tt.word)))
		})
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []byte("cba"), Reverse([]byte("abc")))
	assert.Equal(t, []byte{}, Reverse(nil))
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"abc", "abc"},
		{"cba", "abc"},
		{"aba", "aba"},
		{"ba", "ab"},
		{"bab", "bab"},
		{"acb", "acb"},
		{"bca", "acb"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			key := CanonicalKey([]byte(tt.word))
			assert.Equal(t, tt.want, string(key))
			assert.Equal(t, key, CanonicalKey(Reverse([]byte(tt.word))))
		})
	}
}

func TestContainsByte(t *testing.T) {
	assert.True(t, ContainsByte([]byte("a.b"), '.'))
	assert.False(t, ContainsByte([]byte("ab"), '.'))
}
