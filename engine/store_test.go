package engine

import (
	"testing"

	"github.com/lixenwraith/ember2d/core"
)

type testComponent struct {
	Value int
}

func TestStoreSetGet(t *testing.T) {
	s := NewStore[testComponent]()

	if _, ok := s.Get(1); ok {
		t.Error("Expected miss on empty store")
	}

	s.Set(1, testComponent{Value: 10})
	got, ok := s.Get(1)
	if !ok || got.Value != 10 {
		t.Errorf("Expected {10}, got %v (ok=%v)", got, ok)
	}

	// Insert-or-replace: same entity, new value, no duplicate list entry
	s.Set(1, testComponent{Value: 20})
	got, _ = s.Get(1)
	if got.Value != 20 {
		t.Errorf("Expected replacement value 20, got %d", got.Value)
	}
	if s.Len() != 1 {
		t.Errorf("Expected single entry after replace, got %d", s.Len())
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore[testComponent]()
	s.Set(1, testComponent{Value: 1})
	s.Set(2, testComponent{Value: 2})

	s.Remove(1)
	if s.Has(1) {
		t.Error("Expected entity 1 removed")
	}
	if !s.Has(2) {
		t.Error("Expected entity 2 untouched")
	}

	// Removing an absent entity is a no-op
	s.Remove(99)
	if s.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", s.Len())
	}
}

func TestStoreAllInsertionOrder(t *testing.T) {
	s := NewStore[testComponent]()
	order := []core.Entity{5, 3, 9, 1}
	for i, e := range order {
		s.Set(e, testComponent{Value: i})
	}

	all := s.All()
	if len(all) != len(order) {
		t.Fatalf("Expected %d entities, got %d", len(order), len(all))
	}
	for i := range order {
		if all[i] != order[i] {
			t.Errorf("Expected entity %d at index %d, got %d", order[i], i, all[i])
		}
	}

	// Replacing a value must not reorder
	s.Set(3, testComponent{Value: 99})
	all = s.All()
	if all[1] != 3 {
		t.Errorf("Expected entity 3 to keep its position, got %v", all)
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[testComponent]()
	s.Set(1, testComponent{})
	s.Set(2, testComponent{})

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", s.Len())
	}
	if s.Has(1) || s.Has(2) {
		t.Error("Expected all entries gone after clear")
	}
}
