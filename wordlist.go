package passcomp

import (
	"os"
	"sort"
)

// Wordlist is a loaded, sorted ?w slot source (§3 "Wordlist k"): non-empty
// byte sequences sorted stably by ascending length, ties preserving file
// order. Immutable after loading.
type Wordlist struct {
	words [][]byte
}

// Len returns the number of entries.
func (w *Wordlist) Len() int { return len(w.words) }

// At returns the i-th entry in sorted order.
func (w *Wordlist) At(i int) []byte { return w.words[i] }

// LoadWordlistFile reads path as byte lines separated by '\n', skips empty
// lines, and returns a Wordlist sorted stably by ascending length.
func LoadWordlistFile(path string) (*Wordlist, error) {
	return LoadWordlistFiles(path)
}

// LoadWordlistFiles concatenates the line streams of each path in order
// (mirroring cracken's repeatable -w flag) into a single Wordlist, sorted
// stably by ascending length once across the combined set.
func LoadWordlistFiles(paths ...string) (*Wordlist, error) {
	var words [][]byte
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, ioErrorf(err, "reading wordlist file %q", p)
		}
		words = append(words, splitNonEmptyLines(data)...)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) < len(words[j])
	})
	return &Wordlist{words: words}, nil
}

// splitNonEmptyLines splits data on '\n', stripping each line's trailing
// newline (a final line without one is still accepted), and skips lines
// that are empty (§6 "Wordlist file format": same as smartlist, empty
// lines skipped).
func splitNonEmptyLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b != '\n' {
			continue
		}
		if i > start {
			lines = append(lines, data[start:i])
		}
		start = i + 1
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}
