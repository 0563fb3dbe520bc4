// ABOUTME: Tests for CLI output formatting helpers
// ABOUTME: Covers table layout and dollar formatting

package format

import (
	"strings"
	"testing"
)

func TestTable_AlignsColumns(t *testing.T) {
	out := Table(
		[]string{"Riser", "Flow"},
		[][]string{
			{"A", "478 GPM"},
			{"AB", "12000 GPM"},
		},
	)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	// Both data rows pad the first column to the widest cell
	if !strings.HasPrefix(lines[1], "A  ") {
		t.Errorf("expected padded first column, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "AB ") {
		t.Errorf("expected padded first column, got %q", lines[2])
	}
}

func TestUSD(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{105208460, "$105,208,460"},
		{-21120000, "-$21,120,000"},
	}

	for _, tt := range tests {
		if got := USD(tt.value); got != tt.want {
			t.Errorf("USD(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}
