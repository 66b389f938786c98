// Package passcomp estimates password strength and enumerates candidate
// passwords from a mask grammar.
//
// # Overview
//
// passcomp has two independent halves that share no state:
//
//   - Entropy estimation: given a password and a ranked smartlist vocabulary,
//     estimate its strength two ways — a per-byte charset-class model
//     (MaskCost/MaskString) and a hybrid model that finds the cheapest
//     decomposition of the password into known smartlist tokens
//     (Smartlist.Entropy).
//   - Word generation: given a mask string (builtin character classes,
//     custom charsets, and indexed wordlists), enumerate every concrete
//     expansion in a deterministic order, with exact counting and length
//     filtering (ParseMask, NewGenerator).
//
// # When to Use passcomp
//
// passcomp is a building block for password-strength auditing tools and
// wordlist-based candidate generators:
//   - Scoring user-chosen passwords against a learned subword vocabulary.
//   - Generating structured candidate passwords from a mask grammar
//     (`?u?l?l?l?d?d20?1`-style patterns) combined with custom charsets and
//     wordlists.
//   - Computing exact keyspace sizes for a mask before committing to
//     generating it.
//
// # When NOT to Use passcomp
//
// passcomp does not crack or hash passwords, perform network I/O, provide
// a CLI, or train a smartlist vocabulary from a corpus — those are host
// concerns layered on top.
//
// # Basic Usage
//
//	sl, err := passcomp.LoadSmartlistFiles("smartlist.txt")
//	if err != nil {
//	    // handle err
//	}
//	summary := sl.Summarize([]byte("helloworld123!"))
//	fmt.Println(summary.HybridCost, summary.HybridMask)
//
//	cfg := passcomp.MaskConfig{CustomCharsets: [][]byte{[]byte("01")}}
//	slots, err := passcomp.ParseMask("?l?l?l?l20?1?d", cfg)
//	if err != nil {
//	    // handle err
//	}
//	gen, err := passcomp.NewGenerator(slots, nil, nil)
//	if err != nil {
//	    // handle err
//	}
//	if err := gen.WriteAll(os.Stdout); err != nil {
//	    // handle err
//	}
//
// # Performance Characteristics
//
// Entropy: O(N × L) where N is the password length and L is the longest
// smartlist key, via a dynamic-programming pass over positions.
//
// Generation: streaming, O(1) memory beyond the loaded wordlists/smartlist
// and the longest single emitted line; exact counting is computed by
// convolving per-slot length histograms, never by enumeration.
package passcomp
