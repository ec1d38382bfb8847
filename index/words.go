package index

import "bytes"

// IsPalindrome reports whether word equals its own reverse.
func IsPalindrome(word []byte) bool {
	for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
		if word[i] != word[j] {
			return false
		}
	}
	return true
}

// Reverse returns a reversed copy of word.
func Reverse(word []byte) []byte {
	return AppendReverse(make([]byte, 0, len(word)), word)
}

// AppendReverse appends the bytes of word in reverse order to dst.
func AppendReverse(dst, word []byte) []byte {
	for i := len(word) - 1; i >= 0; i-- {
		dst = append(dst, word[i])
	}
	return dst
}

// CanonicalKey returns the lexicographically smaller of word and its reverse.
// A word and its mirror image always share the same key.
func CanonicalKey(word []byte) []byte {
	return AppendCanonicalKey(make([]byte, 0, len(word)), word)
}

// AppendCanonicalKey appends the canonical key of word to dst.
func AppendCanonicalKey(dst, word []byte) []byte {
	if reverseLess(word) {
		return AppendReverse(dst, word)
	}
	return append(dst, word...)
}

// reverseLess reports whether reverse(word) sorts before word.
func reverseLess(word []byte) bool {
	for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
		if word[i] != word[j] {
			return word[j] < word[i]
		}
	}
	return false
}

// ContainsByte reports whether b occurs in word.
func ContainsByte(word []byte, b byte) bool {
	return bytes.IndexByte(word, b) >= 0
}
