// Package bloom provides dedup-key screening using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter over duplicate-detection keys. A negative
// test means the key is definitely new, which lets the consolidator skip
// the existence query for most records.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a key to the filter.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Test returns true if the key might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of keys in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
