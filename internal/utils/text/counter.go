// Package text provides utilities for text measurement.
// This package includes reusable functions for character and word counting
// shared by the report formatter and the summarization strategies.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This function correctly handles multi-byte characters including Japanese,
// Chinese, emoji, and other Unicode characters by counting runes instead of bytes.
//
// Examples:
//
//	CountRunes("hello")          // returns 5 (ASCII text)
//	CountRunes("こんにちは")       // returns 5 (Japanese text)
//	CountRunes("hello世界")       // returns 7 (mixed text)
//	CountRunes("")               // returns 0 (empty string)
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words in the given text.
// Runs of consecutive whitespace count as a single separator, and leading or
// trailing whitespace contributes no words.
//
// Examples:
//
//	CountWords("hello world")    // returns 2
//	CountWords("  a\tb\nc  ")    // returns 3
//	CountWords("")               // returns 0
func CountWords(text string) int {
	return len(strings.Fields(text))
}
