package passcomp

import (
	"bufio"
	"os"
)

// MaskConfig supplies the indexed custom charsets and wordlists a mask may
// reference via ?1-?9 and ?w1-?w9. Index 0 of each slice corresponds to
// mask digit '1'.
type MaskConfig struct {
	CustomCharsets [][]byte
	Wordlists      []*Wordlist
}

// ParseMask translates mask (§4.4) into an ordered list of slot producers.
// Each '?' introduces a slot; the following character selects a builtin
// charset, a custom-charset/wordlist reference, or is itself an error. Any
// byte not introduced by '?' is a literal slot.
func ParseMask(mask string, cfg MaskConfig) ([]SlotProducer, error) {
	data := []byte(mask)
	slots := make([]SlotProducer, 0, len(data))

	for i := 0; i < len(data); {
		b := data[i]
		if b != '?' {
			slots = append(slots, newLiteralSlot(b))
			i++
			continue
		}

		if i+1 >= len(data) {
			return nil, maskParseErrorf("truncated trailing '?' at offset %d", i)
		}
		c := data[i+1]

		switch {
		case c == 'd':
			slots = append(slots, tableSlot{Digits})
			i += 2
		case c == 'l':
			slots = append(slots, tableSlot{Lower})
			i += 2
		case c == 'u':
			slots = append(slots, tableSlot{Upper})
			i += 2
		case c == 's':
			slots = append(slots, tableSlot{SymbolSpace})
			i += 2
		case c == 'a':
			slots = append(slots, tableSlot{AllPrintable})
			i += 2
		case c == 'b':
			slots = append(slots, allBytesSlot{})
			i += 2
		case c == 'w':
			if i+2 >= len(data) {
				return nil, maskParseErrorf("truncated '?w' sequence at offset %d", i)
			}
			d := data[i+2]
			if d < '1' || d > '9' {
				return nil, maskParseErrorf("unknown mask sequence ?w%c at offset %d", d, i)
			}
			k := int(d - '1')
			if k >= len(cfg.Wordlists) || cfg.Wordlists[k] == nil {
				return nil, maskReferenceErrorf("mask references wordlist %d which was not supplied", k+1)
			}
			slots = append(slots, wordlistSlot{cfg.Wordlists[k].words})
			i += 3
		case c >= '1' && c <= '9':
			k := int(c - '1')
			if k >= len(cfg.CustomCharsets) || cfg.CustomCharsets[k] == nil {
				return nil, maskReferenceErrorf("mask references custom charset %d which was not supplied", k+1)
			}
			slots = append(slots, customCharsetSlot{cfg.CustomCharsets[k]})
			i += 2
		default:
			return nil, maskParseErrorf("unknown mask sequence ?%c at offset %d", c, i)
		}
	}

	return slots, nil
}

// ParseMaskFile reads one mask string per line from path and parses each
// with ParseMask, returning the slot sequences in file order (§4.6
// "mask-file mode").
func ParseMaskFile(path string, cfg MaskConfig) ([][]SlotProducer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(err, "opening mask file %q", path)
	}
	defer f.Close()

	var result [][]SlotProducer
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		slots, err := ParseMask(line, cfg)
		if err != nil {
			return nil, err
		}
		result = append(result, slots)
	}
	if err := scanner.Err(); err != nil {
		return nil, ioErrorf(err, "reading mask file %q", path)
	}
	return result, nil
}

