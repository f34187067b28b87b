package noisehash

import (
	"fmt"
	"strings"
)

// BitTally counts how often each of the 32 bit positions is set across a
// series of words. A well-mixed source sets every position in roughly half
// of the words.
type BitTally struct {
	counts [32]uint64
	total  uint64
}

// Add counts the set bits of v.
func (t *BitTally) Add(v uint32) {
	for i := range t.counts {
		t.counts[i] += uint64(v>>uint(i)) & 1
	}
	t.total++
}

// Merge adds the counts of o into t.
func (t *BitTally) Merge(o *BitTally) {
	for i := range t.counts {
		t.counts[i] += o.counts[i]
	}
	t.total += o.total
}

// Count returns how many words had bit i set.
func (t *BitTally) Count(i int) uint64 {
	return t.counts[i]
}

// Total returns the number of words added.
func (t *BitTally) Total() uint64 {
	return t.total
}

// Average returns the mean per-bit count, rounded down.
func (t *BitTally) Average() uint64 {
	var sum uint64
	for _, c := range t.counts {
		sum += c
	}
	return sum / uint64(len(t.counts))
}

// Check reports whether every per-bit count lies within tolerancePercent of
// the average count. It returns a *DeviationError naming the bits outside
// the band.
func (t *BitTally) Check(tolerancePercent uint64) error {
	avg := t.Average()
	dev := avg * tolerancePercent / 100
	lo, hi := uint64(0), avg+dev
	if dev < avg {
		lo = avg - dev
	}

	var bad []int
	for i, c := range t.counts {
		if c < lo || c > hi {
			bad = append(bad, i)
		}
	}
	traceLog("bit tally: total=%d average=%d band=[%d,%d] outliers=%d", t.total, avg, lo, hi, len(bad))
	if len(bad) == 0 {
		return nil
	}
	return &DeviationError{Bits: bad, Min: lo, Max: hi, counts: t.counts}
}

// DeviationError lists the bit positions whose counts fell outside the
// accepted band.
type DeviationError struct {
	Bits     []int
	Min, Max uint64
	counts   [32]uint64
}

func (e *DeviationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "noisehash: %d bit(s) outside [%d, %d]:", len(e.Bits), e.Min, e.Max)
	for _, b := range e.Bits {
		fmt.Fprintf(&sb, " bit%d=%d", b, e.counts[b])
	}
	return sb.String()
}
