// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for the stringx package covering blank detection,
//              title casing, and Unicode-safe truncation.
// Version: v0.1.0
// Created: 2026-03-02
// Modified: 2026-03-02
//
// Change History:
// - 2026-03-02 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n ", true},
		{"non-blank", "hello", false},
		{"blank with content", "  a  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hyphenated", "my-web-app", "My Web App"},
		{"underscored", "admin_panel", "Admin Panel"},
		{"single word", "dashboard", "Dashboard"},
		{"already titled", "My App", "My App"},
		{"blank", "   ", ""},
		{"mixed separators", "my-big_project", "My Big Project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleCase(tt.input); got != tt.expected {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 8, "..."); got != "hello..." {
		t.Errorf("Expected 'hello...', got %q", got)
	}

	if got := Truncate("short", 10, "..."); got != "short" {
		t.Errorf("Expected 'short', got %q", got)
	}

	// Multi-byte characters must not be split
	if got := Truncate("日本語のテキスト", 5, "…"); got != "日本語の…" {
		t.Errorf("Expected '日本語の…', got %q", got)
	}
}
