package idx

import "testing"

func TestSurjectionManyToOne(t *testing.T) {
	var s Surjection[string, string]
	s = s.Assoc("a", "red").Assoc("b", "red").Assoc("c", "blue")

	bucket := s.InverseGet("red")
	if !bucket.Contains("a") || !bucket.Contains("b") {
		t.Fatalf("red bucket should contain a and b")
	}
	if bucket.Contains("c") {
		t.Fatalf("red bucket should not contain c")
	}
}

func TestSurjectionReassocMovesKeyBetweenBuckets(t *testing.T) {
	var s Surjection[string, string]
	s = s.Assoc("a", "red").Assoc("a", "blue")

	if s.InverseGet("red").Contains("a") {
		t.Fatalf("a should have been evicted from red")
	}
	if !s.InverseGet("blue").Contains("a") {
		t.Fatalf("a should be in blue")
	}
}

func TestSurjectionDissocDropsEmptyBucket(t *testing.T) {
	var s Surjection[string, string]
	s = s.Assoc("a", "red")
	s = s.DissocKey("a")

	if s.InverseGet("red").Len() != 0 {
		t.Fatalf("red bucket should be empty after removing its only key")
	}
	if _, ok := s.Get("a"); ok {
		t.Fatalf("a should no longer map to anything")
	}
}
