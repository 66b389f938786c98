package passcomp

// SlotProducer is one position in a parsed mask (§3 "Slot producer
// interface"): a producer of alternative byte sequences, total for every
// index below Size.
type SlotProducer interface {
	// Size returns the number of alternatives this slot can produce.
	Size() uint64
	// Nth returns the i-th alternative in producer-native order, 0 <= i < Size.
	// The returned slice must not be mutated by the caller.
	Nth(i uint64) []byte
}

// literalSlot is a single-alternative producer for a mask byte not
// introduced by '?'.
type literalSlot struct {
	b [1]byte
}

func newLiteralSlot(b byte) literalSlot {
	return literalSlot{b: [1]byte{b}}
}

func (s literalSlot) Size() uint64         { return 1 }
func (s literalSlot) Nth(i uint64) []byte  { return s.b[:] }

// tableSlot produces one byte from a fixed, order-significant charset
// table (§6 builtin charset tables).
type tableSlot struct {
	table string
}

func (s tableSlot) Size() uint64 { return uint64(len(s.table)) }
func (s tableSlot) Nth(i uint64) []byte {
	return []byte{s.table[i]}
}

// allBytesSlot is the ?b builtin: all 256 byte values in ascending order.
type allBytesSlot struct{}

func (s allBytesSlot) Size() uint64 { return 256 }
func (s allBytesSlot) Nth(i uint64) []byte {
	return []byte{byte(i)}
}

// customCharsetSlot is a user-supplied ?1-?9 charset. Order is exactly the
// order supplied; duplicates are preserved, not deduplicated (§3).
type customCharsetSlot struct {
	data []byte
}

func (s customCharsetSlot) Size() uint64 { return uint64(len(s.data)) }
func (s customCharsetSlot) Nth(i uint64) []byte {
	return s.data[i : i+1]
}

// wordlistSlot is a user-supplied ?w1-?w9 slot. words must already be
// sorted per Wordlist's loading contract.
type wordlistSlot struct {
	words [][]byte
}

func (s wordlistSlot) Size() uint64 { return uint64(len(s.words)) }
func (s wordlistSlot) Nth(i uint64) []byte {
	return s.words[i]
}
