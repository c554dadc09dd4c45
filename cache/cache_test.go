package cache

import "testing"

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache should miss")
	}

	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after overwrite = %d; want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d; want 1", c.Len())
	}
}

func TestCacheEvictsLRU(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction candidate
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should have survived")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be present")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Delete("a")

	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry should miss")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d; want 0", c.Len())
	}

	// Deleting a missing key is a no-op
	c.Delete("missing")
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")       // hit
	c.Get("missing") // miss
	c.Set("c", 3)    // evicts

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d; want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d; want 1", stats.Misses)
	}
	if stats.Evicts != 1 {
		t.Errorf("Evicts = %d; want 1", stats.Evicts)
	}
	if stats.Size != 2 || stats.Capacity != 2 {
		t.Errorf("Size/Capacity = %d/%d; want 2/2", stats.Size, stats.Capacity)
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	c := New[string, int](0)
	for i := 0; i < 16; i++ {
		c.Set(string(rune('a'+i)), i)
	}
	if c.Len() != 16 {
		t.Errorf("Len = %d; want 16 (default capacity)", c.Len())
	}
}
