package passcomp

import "math/big"

// lengthHistogram maps an output byte-length to the number of slot
// alternatives that produce it.
type lengthHistogram map[int]*big.Int

func slotHistogram(s SlotProducer) lengthHistogram {
	h := make(lengthHistogram)
	n := s.Size()
	for i := uint64(0); i < n; i++ {
		l := len(s.Nth(i))
		c, ok := h[l]
		if !ok {
			c = new(big.Int)
			h[l] = c
		}
		c.Add(c, big.NewInt(1))
	}
	return h
}

// convolve combines two length histograms the way concatenating two slots'
// outputs combines their lengths: every (l1, l2) pair contributes its
// product count to bucket l1+l2.
func convolve(a, b lengthHistogram) lengthHistogram {
	out := make(lengthHistogram, len(a)+len(b))
	for l1, c1 := range a {
		for l2, c2 := range b {
			l := l1 + l2
			prod := new(big.Int).Mul(c1, c2)
			if existing, ok := out[l]; ok {
				existing.Add(existing, prod)
			} else {
				out[l] = prod
			}
		}
	}
	return out
}

func minMaxSlotLen(s SlotProducer) (int, int) {
	n := s.Size()
	if n == 0 {
		return 0, 0
	}
	min, max := -1, -1
	for i := uint64(0); i < n; i++ {
		l := len(s.Nth(i))
		if min == -1 || l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	return min, max
}

// achievableLenRange returns the minimum and maximum total output length
// slots can produce.
func achievableLenRange(slots []SlotProducer) (int, int) {
	min, max := 0, 0
	for _, s := range slots {
		lo, hi := minMaxSlotLen(s)
		min += lo
		max += hi
	}
	return min, max
}

func validateBounds(slots []SlotProducer, minLen, maxLen *int) error {
	if minLen != nil && maxLen != nil && *minLen > *maxLen {
		return boundsErrorf("min_len %d exceeds max_len %d", *minLen, *maxLen)
	}
	achievableMin, achievableMax := achievableLenRange(slots)
	if maxLen != nil && *maxLen < achievableMin {
		return boundsErrorf("max_len %d is below the mask's minimum achievable length %d", *maxLen, achievableMin)
	}
	if minLen != nil && *minLen > achievableMax {
		return boundsErrorf("min_len %d exceeds the mask's maximum achievable length %d", *minLen, achievableMax)
	}
	return nil
}

// Combinations returns the exact count of strings slots would emit under
// the given length bounds (either may be nil), computed by convolving
// per-slot length histograms rather than by enumeration (§4.6).
func Combinations(slots []SlotProducer, minLen, maxLen *int) (*big.Int, error) {
	if err := validateBounds(slots, minLen, maxLen); err != nil {
		return nil, err
	}

	if minLen == nil && maxLen == nil {
		total := big.NewInt(1)
		for _, s := range slots {
			total.Mul(total, new(big.Int).SetUint64(s.Size()))
		}
		return total, nil
	}

	combined := lengthHistogram{0: big.NewInt(1)}
	for _, s := range slots {
		combined = convolve(combined, slotHistogram(s))
	}

	lo, hi := 0, achievableUpperBound(combined)
	if minLen != nil {
		lo = *minLen
	}
	if maxLen != nil {
		hi = *maxLen
	}

	total := new(big.Int)
	for length, count := range combined {
		if length >= lo && length <= hi {
			total.Add(total, count)
		}
	}
	return total, nil
}

func achievableUpperBound(h lengthHistogram) int {
	max := 0
	for l := range h {
		if l > max {
			max = l
		}
	}
	return max
}
