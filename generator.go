package passcomp

import (
	"bufio"
	"io"
	"math/big"
	"os"
)

// Generator is the C6 word generator's state (§3 "Generator state"): a
// mask's slot producers plus optional length bounds and the current
// odometer counter vector. Counters enumerate in odometer order -- the
// rightmost slot advances fastest, carry propagates left, enumeration ends
// when the leftmost counter would overflow.
type Generator struct {
	slots  []SlotProducer
	sizes  []uint64
	minLen *int
	maxLen *int

	counters []uint64
	leftHi   uint64 // exclusive upper bound for counters[0]; supports chunked ranges
	done     bool
}

// NewGenerator builds a Generator over slots with the given length bounds
// (either may be nil for unbounded). Returns a bounds error if min_len >
// max_len or the bounds are incompatible with the mask's achievable length
// range (§7).
func NewGenerator(slots []SlotProducer, minLen, maxLen *int) (*Generator, error) {
	return newGeneratorRange(slots, minLen, maxLen, 0, leftmostSize(slots))
}

func leftmostSize(slots []SlotProducer) uint64 {
	if len(slots) == 0 {
		return 0
	}
	return slots[0].Size()
}

func newGeneratorRange(slots []SlotProducer, minLen, maxLen *int, leftLo, leftHi uint64) (*Generator, error) {
	if err := validateBounds(slots, minLen, maxLen); err != nil {
		return nil, err
	}
	sizes := make([]uint64, len(slots))
	anyEmpty := false
	for i, s := range slots {
		sizes[i] = s.Size()
		if sizes[i] == 0 {
			anyEmpty = true
		}
	}
	g := &Generator{
		slots:    slots,
		sizes:    sizes,
		minLen:   minLen,
		maxLen:   maxLen,
		counters: make([]uint64, len(slots)),
		leftHi:   leftHi,
	}
	if len(slots) > 0 {
		g.counters[0] = leftLo
	}
	if anyEmpty || leftLo >= leftHi && len(slots) > 0 {
		g.done = true
	}
	return g, nil
}

func (g *Generator) withinBounds(n int) bool {
	if g.minLen != nil && n < *g.minLen {
		return false
	}
	if g.maxLen != nil && n > *g.maxLen {
		return false
	}
	return true
}

func (g *Generator) current() []byte {
	var word []byte
	for i, s := range g.slots {
		word = append(word, s.Nth(g.counters[i])...)
	}
	return word
}

// step advances the odometer by one, rightmost slot fastest, carrying left.
// The leftmost slot's range is bounded by leftHi (not necessarily its full
// Size) so a chunk of the index space can be iterated independently, which
// is how ParallelGenerate partitions work across goroutines.
func (g *Generator) step() {
	if len(g.counters) == 0 {
		g.done = true
		return
	}
	for i := len(g.counters) - 1; i >= 0; i-- {
		g.counters[i]++
		limit := g.sizes[i]
		if i == 0 {
			limit = g.leftHi
		}
		if g.counters[i] < limit {
			return
		}
		if i == 0 {
			g.done = true
			return
		}
		g.counters[i] = 0
	}
}

// Next returns the next emitted word in odometer order within the length
// bounds, or ok == false once the generator is exhausted. Candidates
// outside the bounds are materialized, checked, and skipped without being
// counted as emitted.
func (g *Generator) Next() ([]byte, bool) {
	for !g.done {
		word := g.current()
		g.step()
		if g.withinBounds(len(word)) {
			return word, true
		}
	}
	return nil, false
}

// Combinations returns the exact count of words this generator will emit,
// without enumerating them.
func (g *Generator) Combinations() (*big.Int, error) {
	return Combinations(g.slots, g.minLen, g.maxLen)
}

// WriteAll streams every emitted word to w, one per line (§4.6 "Output
// framing"). Short writes are retried; a write error is wrapped as an io
// Error and returned immediately.
func (g *Generator) WriteAll(w io.Writer) error {
	buf := make([]byte, 0, 256)
	for {
		word, ok := g.Next()
		if !ok {
			return nil
		}
		buf = append(buf[:0], word...)
		buf = append(buf, '\n')
		if err := writeFull(w, buf); err != nil {
			return ioErrorf(err, "writing generator output")
		}
	}
}

func writeFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrNoProgress
		}
		p = p[n:]
	}
	return nil
}

// GenerateMaskFile reads one mask per line from masksPath, parses each with
// cfg, and writes the concatenation of their generated outputs to w in file
// order (§4.6 "Mask-file mode").
func GenerateMaskFile(masksPath string, cfg MaskConfig, minLen, maxLen *int, w io.Writer) error {
	f, err := os.Open(masksPath)
	if err != nil {
		return ioErrorf(err, "opening mask file %q", masksPath)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		slots, err := ParseMask(line, cfg)
		if err != nil {
			return err
		}
		g, err := NewGenerator(slots, minLen, maxLen)
		if err != nil {
			return err
		}
		if err := g.WriteAll(w); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return ioErrorf(err, "reading mask file %q", masksPath)
	}
	return nil
}
