// Package input acquires the text to summarize, either from a file argument
// or from interactive standard input.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFile returns the trimmed contents of the file at path.
// The returned error names the path so the caller can report it directly.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is a user-supplied CLI argument
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadLines collects lines from r until EOF, joins them with newlines, and
// trims the result. Interactive sessions end the stream with the terminal's
// end-of-input signal (Ctrl-D).
func ReadLines(r io.Reader) (string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
