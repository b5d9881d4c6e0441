package engine

import "testing"

func TestStoreSetGetRemove(t *testing.T) {
	world := NewWorld()
	store := NewStore[MockComponent]()

	e := world.CreateEntity()
	store.Set(e, MockComponent{Value: 42})

	if !store.Has(e) {
		t.Error("Expected Has to report the component")
	}
	if c, ok := store.Get(e); !ok || c.Value != 42 {
		t.Errorf("Expected value 42, got %v %v", c, ok)
	}
	if store.Count() != 1 {
		t.Errorf("Expected count 1, got %d", store.Count())
	}

	// Set replaces in place
	store.Set(e, MockComponent{Value: 7})
	if c, _ := store.Get(e); c.Value != 7 {
		t.Errorf("Expected replaced value 7, got %d", c.Value)
	}
	if store.Count() != 1 {
		t.Errorf("Expected count 1 after replace, got %d", store.Count())
	}

	store.Remove(e)
	if store.Has(e) {
		t.Error("Expected component gone after Remove")
	}
	// Removing twice is a no-op
	store.Remove(e)
	if store.Count() != 0 {
		t.Errorf("Expected count 0, got %d", store.Count())
	}
}

func TestStoreMutate(t *testing.T) {
	world := NewWorld()
	store := NewStore[MockComponent]()
	e := world.CreateEntity()

	if store.Mutate(e, func(c *MockComponent) { c.Value = 1 }) {
		t.Error("Expected Mutate to report false for a missing component")
	}

	store.Set(e, MockComponent{Value: 1})
	if !store.Mutate(e, func(c *MockComponent) { c.Value++ }) {
		t.Error("Expected Mutate to report true")
	}
	if c, _ := store.Get(e); c.Value != 2 {
		t.Errorf("Expected mutated value 2, got %d", c.Value)
	}
}

func TestStoreAll(t *testing.T) {
	world := NewWorld()
	store := NewStore[MockComponent]()

	entities := make(map[uint64]bool)
	for i := 0; i < 4; i++ {
		e := world.CreateEntity()
		store.Set(e, MockComponent{Value: i})
		entities[uint64(e)] = true
	}

	all := store.All()
	if len(all) != 4 {
		t.Fatalf("Expected 4 entities, got %d", len(all))
	}
	for _, e := range all {
		if !entities[uint64(e)] {
			t.Errorf("Unexpected entity %d in All()", e)
		}
	}
}

func TestStoreSwapRemoveKeepsOthers(t *testing.T) {
	world := NewWorld()
	store := NewStore[MockComponent]()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()
	e3 := world.CreateEntity()
	store.Set(e1, MockComponent{Value: 1})
	store.Set(e2, MockComponent{Value: 2})
	store.Set(e3, MockComponent{Value: 3})

	// Removing from the middle must not disturb the remaining values
	store.Remove(e2)

	if c, ok := store.Get(e1); !ok || c.Value != 1 {
		t.Errorf("Expected e1 value 1, got %v %v", c, ok)
	}
	if c, ok := store.Get(e3); !ok || c.Value != 3 {
		t.Errorf("Expected e3 value 3, got %v %v", c, ok)
	}
	if store.Count() != 2 {
		t.Errorf("Expected count 2, got %d", store.Count())
	}
}
