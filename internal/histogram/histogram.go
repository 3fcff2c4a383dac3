// Package histogram counts byte value occurrences and selects the least used values.
package histogram

import "math"

// Histogram maps each byte value to its number of occurrences.
type Histogram [256]uint64

// New builds the histogram of data with a single scan.
func New(data []byte) *Histogram {
	h := &Histogram{}
	h.Add(data)

	return h
}

// Add counts every byte of data into the histogram.
func (h *Histogram) Add(data []byte) {
	for _, b := range data {
		h[b]++
	}
}

// Count returns the number of occurrences of b.
func (h *Histogram) Count(b byte) uint64 {
	return h[b]
}

// LeastUsed returns the value in [1,255] with the smallest count, skipping the values
// for which skip returns true. Zero is never a candidate.
//
// Values are scanned in ascending order and only a strictly smaller count replaces the
// current candidate, so the lowest value wins ties. If every candidate is skipped,
// LeastUsed returns (1, math.MaxUint64).
func (h *Histogram) LeastUsed(skip func(byte) bool) (byte, uint64) {
	minVal := byte(1)
	minCount := uint64(math.MaxUint64)

	for i := 1; i < len(h); i++ {
		b := byte(i)
		if skip != nil && skip(b) {
			continue
		}
		if h[i] < minCount {
			minCount = h[i]
			minVal = b
		}
	}

	return minVal, minCount
}

// Select picks the null replacement and escape markers for the counted data.
//
// The null replacement is the least used value in [1,255]. When it never occurs, the
// escape marker equals it and no escaping is needed; otherwise the escape marker is the
// second least used value.
func (h *Histogram) Select() (nullReplacement byte, escape byte) {
	nullReplacement, count := h.LeastUsed(nil)
	if count == 0 {
		return nullReplacement, nullReplacement
	}

	escape, _ = h.LeastUsed(func(b byte) bool { return b == nullReplacement })

	return nullReplacement, escape
}
