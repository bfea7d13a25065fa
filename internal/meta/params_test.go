// File: params_test.go
// Title: Message Parameter Extraction Tests
// Description: Tests for parameter extraction covering both interpolation
//              syntaxes, type hints, duplicate names, ICU-style payloads,
//              and determinism.
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial test implementation

package meta

import (
	"reflect"
	"testing"

	"github.com/locgen/locgen/core/config"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		syntax config.Interpolation
		want   []Param
	}{
		{
			name:   "single plain parameter",
			value:  "Hello, {name}!",
			syntax: config.InterpolationSingle,
			want:   []Param{{Name: "name", Kind: KindString}},
		},
		{
			name:   "single with number hint",
			value:  "You have {count, number} items",
			syntax: config.InterpolationSingle,
			want:   []Param{{Name: "count", Kind: KindNumber}},
		},
		{
			name:   "single with date hint",
			value:  "Due on {deadline, date}",
			syntax: config.InterpolationSingle,
			want:   []Param{{Name: "deadline", Kind: KindDate}},
		},
		{
			name:   "plural payload yields one number parameter",
			value:  "{count, plural, one {# item} other {# items}}",
			syntax: config.InterpolationSingle,
			want:   []Param{{Name: "count", Kind: KindNumber}},
		},
		{
			name:   "duplicate name keeps first kind",
			value:  "{when, date} and again {when}",
			syntax: config.InterpolationSingle,
			want:   []Param{{Name: "when", Kind: KindDate}},
		},
		{
			name:   "first-occurrence order",
			value:  "{b} then {a} then {b}",
			syntax: config.InterpolationSingle,
			want:   []Param{{Name: "b", Kind: KindString}, {Name: "a", Kind: KindString}},
		},
		{
			name:   "unknown hint falls back to string",
			value:  "{amount, currency}",
			syntax: config.InterpolationSingle,
			want:   []Param{{Name: "amount", Kind: KindString}},
		},
		{
			name:   "double plain parameter",
			value:  "Hello, {{name}}!",
			syntax: config.InterpolationDouble,
			want:   []Param{{Name: "name", Kind: KindString}},
		},
		{
			name:   "double with time hint",
			value:  "Starts at {{start, time}}",
			syntax: config.InterpolationDouble,
			want:   []Param{{Name: "start", Kind: KindDate}},
		},
		{
			name:   "double syntax ignores single braces",
			value:  "literal {name} stays",
			syntax: config.InterpolationDouble,
			want:   nil,
		},
		{
			name:   "no parameters",
			value:  "Plain text",
			syntax: config.InterpolationSingle,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.value, tt.syntax)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func TestExtractDeterminism(t *testing.T) {
	value := "{a} {b, number} {c, date} {a}"
	first := Extract(value, config.InterpolationSingle)
	for i := 0; i < 10; i++ {
		if got := Extract(value, config.InterpolationSingle); !reflect.DeepEqual(got, first) {
			t.Fatalf("Extraction not deterministic: %+v vs %+v", got, first)
		}
	}
}
