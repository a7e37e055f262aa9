// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeClock is advanced manually so TTL tests do not sleep.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache[V any](capacity int, ttl time.Duration) (*LRUCache[V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[V](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestLRUCache_BasicOperations(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[string](3, time.Minute)

	cache.Add("a", "alpha")
	cache.Add("b", "beta")
	cache.Add("c", "gamma")

	for key, want := range map[string]string{"a": "alpha", "b": "beta", "c": "gamma"} {
		got, found := cache.Get(key)
		if !found {
			t.Errorf("Get(%q) not found", key)
			continue
		}
		if got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}

	if cache.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cache.Len())
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[int](3, time.Minute)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	// Touch 'a' so 'b' becomes least recently used.
	cache.Get("a")
	cache.Add("d", 4)

	if _, found := cache.Get("b"); found {
		t.Error("expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := cache.Get(key); !found {
			t.Errorf("expected %q to be present", key)
		}
	}
	if s := cache.Stats(); s.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestLRUCache_TTLExpiration(t *testing.T) {
	t.Parallel()
	cache, clock := newTestCache[int](10, time.Minute)

	cache.Add("a", 1)
	if _, found := cache.Get("a"); !found {
		t.Fatal("expected 'a' before expiry")
	}

	clock.Advance(61 * time.Second)

	if cache.Contains("a") {
		t.Error("Contains() = true after expiry")
	}
	if _, found := cache.Get("a"); found {
		t.Error("expected 'a' to be expired")
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after lazy expiry", cache.Len())
	}
}

func TestLRUCache_AddRefreshesTTL(t *testing.T) {
	t.Parallel()
	cache, clock := newTestCache[int](10, time.Minute)

	cache.Add("a", 1)
	clock.Advance(50 * time.Second)
	cache.Add("a", 2)
	clock.Advance(50 * time.Second)

	got, found := cache.Get("a")
	if !found || got != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", got, found)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after update", cache.Len())
	}
}

func TestLRUCache_Remove(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[int](10, time.Minute)

	cache.Add("a", 1)
	cache.Add("b", 2)

	if !cache.Remove("a") {
		t.Error("Remove(a) = false for existing key")
	}
	if cache.Remove("a") {
		t.Error("Remove(a) = true for missing key")
	}
	if _, found := cache.Get("b"); !found {
		t.Error("expected 'b' to remain")
	}
}

func TestLRUCache_Clear(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[int](10, time.Minute)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", cache.Len())
	}
	if _, found := cache.Get("a"); found {
		t.Error("expected no entries after Clear")
	}

	// List must still be usable after Clear.
	cache.Add("c", 3)
	if got, found := cache.Get("c"); !found || got != 3 {
		t.Errorf("Get(c) = %d, %v; want 3, true", got, found)
	}
}

func TestLRUCache_CleanupExpired(t *testing.T) {
	t.Parallel()
	cache, clock := newTestCache[int](10, time.Minute)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)
	clock.Advance(2 * time.Minute)
	cache.Add("d", 4)

	if removed := cache.CleanupExpired(); removed != 3 {
		t.Errorf("CleanupExpired() = %d, want 3", removed)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestLRUCache_Stats(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[int](10, time.Minute)

	cache.Add("a", 1)
	cache.Get("a")
	cache.Get("a")
	cache.Get("missing")

	s := cache.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Size != 1 {
		t.Errorf("Stats() = %+v, want hits=2 misses=1 size=1", s)
	}
}

func TestLRUCache_Defaults(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[int](0, 0)
	if cache.capacity != 1000 {
		t.Errorf("capacity = %d, want 1000", cache.capacity)
	}
	if cache.ttl != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m", cache.ttl)
	}
}

func TestLRUCache_Concurrent(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[[]int](50, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := strconv.Itoa((id + j) % 80)
				cache.Add(key, []int{id, j})
				cache.Get(key)
				cache.Contains(key)
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() > 50 {
		t.Errorf("Len() = %d exceeds capacity 50", cache.Len())
	}
}

func BenchmarkLRUCache_Get(b *testing.B) {
	cache := NewLRUCache[int](1000, time.Minute)
	for i := 0; i < 1000; i++ {
		cache.Add(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(strconv.Itoa(i % 1000))
	}
}

func BenchmarkLRUCache_Eviction(b *testing.B) {
	cache := NewLRUCache[int](100, time.Minute)
	for i := 0; i < 100; i++ {
		cache.Add(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Add(strconv.Itoa(1000+i), i)
	}
}
