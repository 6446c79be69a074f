package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	if got := GetEnvString("TEST_STRING", "default"); got != "value" {
		t.Errorf("GetEnvString() = %q, want 'value'", got)
	}
	if got := GetEnvString("TEST_STRING_UNSET", "default"); got != "default" {
		t.Errorf("GetEnvString() = %q, want 'default'", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "valid integer", value: "42", expected: 42},
		{name: "invalid integer uses default", value: "abc", expected: 7},
		{name: "empty uses default", value: "", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)

			if got := GetEnvInt("TEST_INT", 7); got != tt.expected {
				t.Errorf("GetEnvInt() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "valid duration", value: "90s", expected: 90 * time.Second},
		{name: "composite duration", value: "1h30m", expected: 90 * time.Minute},
		{name: "invalid duration uses default", value: "soon", expected: 30 * time.Second},
		{name: "empty uses default", value: "", expected: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)

			if got := GetEnvDuration("TEST_DURATION", 30*time.Second); got != tt.expected {
				t.Errorf("GetEnvDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}
