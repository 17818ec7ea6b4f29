// Package bloom provides a fingerprint prefilter backed by a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter answers "have we possibly seen this fingerprint?" without a point
// lookup. A negative answer is exact; a positive one must be confirmed
// against the authoritative index.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected fingerprints with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a fingerprint.
func (f *Filter) Add(fingerprint string) {
	f.f.AddString(fingerprint)
}

// Test reports whether the fingerprint might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(fingerprint string) bool {
	return f.f.TestString(fingerprint)
}

// EstimatedCount returns the approximate number of recorded fingerprints.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
