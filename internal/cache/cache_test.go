// v2
// internal/cache/cache_test.go
package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type countingObserver struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (o *countingObserver) CacheHit()  { o.hits.Add(1) }
func (o *countingObserver) CacheMiss() { o.misses.Add(1) }

func TestGetSet(t *testing.T) {
	obs := &countingObserver{}
	c := New[int](time.Minute, obs)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("empty cache must miss")
	}
	c.Set("k", 42)
	v, ok := c.Get("k")
	if !ok || v != 42 {
		t.Fatalf("expected hit with 42, got %d %v", v, ok)
	}
	if obs.hits.Load() != 1 || obs.misses.Load() != 1 {
		t.Fatalf("observer counts wrong: %d hits %d misses", obs.hits.Load(), obs.misses.Load())
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New[string](10*time.Millisecond, nil)
	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("fresh entry must hit")
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expired entry must miss")
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := New[string](0, nil)
	c.Set("k", "v")
	time.Sleep(15 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("ttl<=0 entries must not expire")
	}
}

func TestGetOrComputeAtMostOncePerKey(t *testing.T) {
	c := New[int](time.Minute, nil)
	var calls atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := c.GetOrCompute("k", false, func() int {
				calls.Add(1)
				time.Sleep(5 * time.Millisecond)
				return 7
			})
			if got != 7 {
				t.Errorf("got %d want 7", got)
			}
		}()
	}
	wg.Wait()
	if calls.Load() != 1 {
		t.Fatalf("compute ran %d times, want exactly once", calls.Load())
	}
}

func TestGetOrComputeForceRefresh(t *testing.T) {
	c := New[int](time.Minute, nil)
	n := 0
	compute := func() int {
		n++
		return n
	}
	if got := c.GetOrCompute("k", false, compute); got != 1 {
		t.Fatalf("first compute must run, got %d", got)
	}
	if got := c.GetOrCompute("k", false, compute); got != 1 {
		t.Fatalf("cached value must be reused, got %d", got)
	}
	if got := c.GetOrCompute("k", true, compute); got != 2 {
		t.Fatalf("force must recompute, got %d", got)
	}
	if got := c.GetOrCompute("k", false, compute); got != 2 {
		t.Fatalf("forced result must be cached, got %d", got)
	}
}

func TestKeysDistinguishEntitiesAndStrategies(t *testing.T) {
	a := RoomKey("hq", "r1", "strict_compliance")
	b := RoomKey("hq", "r2", "strict_compliance")
	cKey := RoomKey("hq", "r1", "balanced_compliance")
	if a == b || a == cKey {
		t.Fatalf("distinct rooms or strategies must not share a key")
	}
	if RoomKey(" HQ ", "R1", "strict_compliance") != a {
		t.Fatalf("key must be canonical in case and whitespace")
	}
	if RoomKey("hq", "r1", "s") == BuildingKey("hq", "s") {
		t.Fatalf("room and building namespaces must not collide")
	}
}
