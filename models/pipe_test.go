// ABOUTME: Tests for pipe schedule lookup
// ABOUTME: Validates smallest-at-least semantics and table ordering

package models

import "testing"

func TestSchedule40_SortedAscending(t *testing.T) {
	s := Schedule40()
	for i := 1; i < len(s); i++ {
		if s[i].InternalDiameterIn <= s[i-1].InternalDiameterIn {
			t.Errorf("Schedule not ascending at %d: %v after %v", i, s[i], s[i-1])
		}
	}
}

func TestSmallestAtLeast_ExactMatch(t *testing.T) {
	s := Schedule40()
	entry := s.SmallestAtLeast(10.020)
	if entry == nil {
		t.Fatal("Expected entry, got nil")
	}
	if entry.Nominal != `10"` {
		t.Errorf("Expected 10\", got %s", entry.Nominal)
	}
}

func TestSmallestAtLeast_RoundsUp(t *testing.T) {
	s := Schedule40()

	// 30.5 in falls between 30" (28.75 ID) and 36" (34.5 ID)
	entry := s.SmallestAtLeast(30.5)
	if entry == nil {
		t.Fatal("Expected entry, got nil")
	}
	if entry.Nominal != `36"` {
		t.Errorf("Expected 36\", got %s", entry.Nominal)
	}
}

func TestSmallestAtLeast_BelowTable(t *testing.T) {
	s := Schedule40()
	entry := s.SmallestAtLeast(1.0)
	if entry == nil {
		t.Fatal("Expected entry, got nil")
	}
	if entry.Nominal != `6"` {
		t.Errorf("Expected smallest entry 6\", got %s", entry.Nominal)
	}
}

func TestSmallestAtLeast_Oversized(t *testing.T) {
	s := Schedule40()

	// Larger than the biggest ID (46.0 in): lookup must fail, not truncate
	if entry := s.SmallestAtLeast(50.0); entry != nil {
		t.Errorf("Expected nil for oversized diameter, got %v", entry)
	}
}
