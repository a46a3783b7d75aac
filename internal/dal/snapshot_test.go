package dal

import (
	"testing"

	"stealthcompany.com/carematch/internal/matching"
)

func TestProviderSnapshotEmptyByDefault(t *testing.T) {
	s := NewProviderSnapshot()

	if got := s.Providers(); len(got) != 0 {
		t.Errorf("Expected empty snapshot, got %d providers", len(got))
	}
	if s.Len() != 0 {
		t.Errorf("Expected Len 0, got %d", s.Len())
	}
	if !s.LoadedAt().IsZero() {
		t.Errorf("Expected zero LoadedAt before first Replace")
	}
}

func TestProviderSnapshotReplace(t *testing.T) {
	s := NewProviderSnapshot()

	first := []matching.Provider{{ProviderID: "p1"}}
	s.Replace(first)

	if s.Len() != 1 {
		t.Fatalf("Expected Len 1, got %d", s.Len())
	}
	if s.LoadedAt().IsZero() {
		t.Errorf("Expected LoadedAt to be set after Replace")
	}

	// A reader holding the old generation is unaffected by a swap.
	held := s.Providers()

	second := []matching.Provider{{ProviderID: "p2"}, {ProviderID: "p3"}}
	s.Replace(second)

	if len(held) != 1 || held[0].ProviderID != "p1" {
		t.Errorf("In-flight generation changed under reader: %+v", held)
	}
	if s.Len() != 2 {
		t.Errorf("Expected new generation of 2 providers, got %d", s.Len())
	}
	if s.Providers()[0].ProviderID != "p2" {
		t.Errorf("Expected new generation to be current, got %+v", s.Providers())
	}
}
