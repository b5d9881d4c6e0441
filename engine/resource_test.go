package engine

import "testing"

type tickCounter struct {
	Ticks int
}

func TestResourceAddGet(t *testing.T) {
	rs := NewResourceStore()

	if _, ok := GetResource[*tickCounter](rs); ok {
		t.Error("Expected missing resource before Add")
	}

	AddResource(rs, &tickCounter{Ticks: 1})
	res, ok := GetResource[*tickCounter](rs)
	if !ok || res.Ticks != 1 {
		t.Errorf("Expected ticks 1, got %v %v", res, ok)
	}
}

func TestResourceLastWriteWins(t *testing.T) {
	rs := NewResourceStore()

	AddResource(rs, &tickCounter{Ticks: 1})
	AddResource(rs, &tickCounter{Ticks: 2})

	res, _ := GetResource[*tickCounter](rs)
	if res.Ticks != 2 {
		t.Errorf("Expected the second insert to win, got %d", res.Ticks)
	}
}

func TestResourceSharedMutation(t *testing.T) {
	rs := NewResourceStore()
	AddResource(rs, &tickCounter{})

	a, _ := GetResource[*tickCounter](rs)
	a.Ticks = 9

	b, _ := GetResource[*tickCounter](rs)
	if b.Ticks != 9 {
		t.Errorf("Expected mutation visible through second Get, got %d", b.Ticks)
	}
}

func TestEnsureResourceConstructsOnce(t *testing.T) {
	rs := NewResourceStore()

	calls := 0
	newFn := func() *tickCounter {
		calls++
		return &tickCounter{}
	}

	first := EnsureResource(rs, newFn)
	second := EnsureResource(rs, newFn)

	if calls != 1 {
		t.Errorf("Expected exactly one construction, got %d", calls)
	}
	if first != second {
		t.Error("Expected both Ensure calls to return the same instance")
	}
}

func TestRemoveResource(t *testing.T) {
	rs := NewResourceStore()
	AddResource(rs, &tickCounter{})
	RemoveResource[*tickCounter](rs)

	if _, ok := GetResource[*tickCounter](rs); ok {
		t.Error("Expected resource gone after Remove")
	}
}
