package ttable

import "testing"

func TestStoreThenGetRoundTrips(t *testing.T) {
	t.Parallel()
	tb := New[int](1024)
	tb.Store(42, 7)
	v, ok := tb.Get(42)
	if !ok || v != 7 {
		t.Fatalf("Get(42) = %d, %v; want 7, true", v, ok)
	}
}

func TestGetMissReportsFalse(t *testing.T) {
	t.Parallel()
	tb := New[int](1024)
	_, ok := tb.Get(99)
	if ok {
		t.Fatalf("Get on empty table reported a hit")
	}
}

func TestMinimumCapacityIsOneSlotPerShard(t *testing.T) {
	t.Parallel()
	tb := New[int](0)
	tb.Store(1, 10)
	v, ok := tb.Get(1)
	if !ok || v != 10 {
		t.Fatalf("Get(1) = %d, %v; want 10, true", v, ok)
	}
}

// TestCollisionDegradesToMissNotWrongValue forces two distinct keys into the
// same shard and slot (a one-slot-per-shard table guarantees this for any
// two keys landing in the same shard) and checks that storing the second
// never lets Get return the first key's value under the second key.
func TestCollisionDegradesToMissNotWrongValue(t *testing.T) {
	t.Parallel()
	tb := New[int](shardCount) // exactly one slot per shard
	var a, b uint64 = 1, 2
	for tb.shardFor(a) != tb.shardFor(b) {
		b++
	}

	tb.Store(a, 111)
	tb.Store(b, 222)

	if v, ok := tb.Get(a); ok {
		t.Fatalf("Get(a) = %d, true; want a miss since b's Store evicted a's slot", v)
	}
	v, ok := tb.Get(b)
	if !ok || v != 222 {
		t.Fatalf("Get(b) = %d, %v; want 222, true", v, ok)
	}
}

func TestStoreAlwaysReplaces(t *testing.T) {
	t.Parallel()
	tb := New[int](1024)
	tb.Store(5, 1)
	tb.Store(5, 2)
	v, ok := tb.Get(5)
	if !ok || v != 2 {
		t.Fatalf("Get(5) = %d, %v; want 2, true (last Store wins)", v, ok)
	}
}

func TestSizeCountsOccupiedSlotsAndClearEmptiesThem(t *testing.T) {
	t.Parallel()
	tb := New[int](1024)
	tb.Store(1, 1)
	tb.Store(2, 2)
	tb.Store(3, 3)
	if got := tb.Size(); got != 3 {
		t.Fatalf("Size() = %d; want 3", got)
	}
	tb.Clear()
	if got := tb.Size(); got != 0 {
		t.Fatalf("Size() after Clear = %d; want 0", got)
	}
	if _, ok := tb.Get(1); ok {
		t.Fatalf("Get(1) after Clear reported a hit")
	}
}
