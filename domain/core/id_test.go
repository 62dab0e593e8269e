package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseRunID tests run ID parsing
func TestParseRunID(t *testing.T) {
	tests := []struct {
		input    string
		expected RunID
		hasError bool
	}{
		{"run-1", RunID("run-1"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseRunID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestParseCaseID tests case ID parsing
func TestParseCaseID(t *testing.T) {
	if _, err := ParseCaseID(""); err == nil {
		t.Error("Expected error for empty case ID")
	}
	id, err := ParseCaseID("case-7")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id.String() != "case-7" {
		t.Errorf("Expected case-7, got %s", id)
	}
}

// TestComputeValuesHash tests fingerprint stability and sensitivity
func TestComputeValuesHash(t *testing.T) {
	a := ComputeValuesHash([]int32{1, 2, 3})
	b := ComputeValuesHash([]int32{1, 2, 3})
	if !a.Equals(b) {
		t.Errorf("Expected identical hashes, got %s and %s", a, b)
	}

	if a.Equals(ComputeValuesHash([]int32{1, 2})) {
		t.Error("Prefix must not share a hash with the full array")
	}
	if a.Equals(ComputeValuesHash([]int32{1, 2, 4})) {
		t.Error("Different values must not share a hash")
	}
	if len(a.Short()) != 12 {
		t.Errorf("Expected 12-char short hash, got %q", a.Short())
	}
}
