package cache_test

import (
	"testing"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tailored-agentic-units/spillover/cache"
)

const benchCapacity = 1024

// BenchmarkCache_HotGet measures the hot path: every read lands in the
// in-memory tier.
func BenchmarkCache_HotGet(b *testing.B) {
	c := cache.New(cache.Config[int, []byte]{
		Capacity:   benchCapacity,
		ScratchDir: b.TempDir(),
		Codec:      cache.RawCodec{},
	})
	value := make([]byte, 128)
	for key := 0; key < benchCapacity; key++ {
		if _, _, err := c.Put(key, value); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.Get(i % benchCapacity); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCache_Put measures insertion with steady-state eviction to
// disk once the hot tier is full.
func BenchmarkCache_Put(b *testing.B) {
	c := cache.New(cache.Config[int, []byte]{
		Capacity:   benchCapacity,
		ScratchDir: b.TempDir(),
		Codec:      cache.RawCodec{},
	})
	value := make([]byte, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.Put(i, value); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	if err := c.Clear(); err != nil {
		b.Fatal(err)
	}
}

// BenchmarkCache_Promote forces every read through the spill-and-promote
// cycle: two keys share a single hot slot, so each Get promotes from
// disk and evicts the other.
func BenchmarkCache_Promote(b *testing.B) {
	c := cache.New(cache.Config[int, []byte]{
		Capacity:   1,
		ScratchDir: b.TempDir(),
		Codec:      cache.RawCodec{},
	})
	value := make([]byte, 128)
	if _, _, err := c.Put(0, value); err != nil {
		b.Fatal(err)
	}
	if _, _, err := c.Put(1, value); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.Get(i % 2); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	if err := c.Clear(); err != nil {
		b.Fatal(err)
	}
}

// BenchmarkHashicorpLRU_Get is the memory-only baseline the hot path is
// compared against.
func BenchmarkHashicorpLRU_Get(b *testing.B) {
	c, err := lru.New[int, []byte](benchCapacity)
	if err != nil {
		b.Fatal(err)
	}
	value := make([]byte, 128)
	for key := 0; key < benchCapacity; key++ {
		c.Add(key, value)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i % benchCapacity)
	}
}
