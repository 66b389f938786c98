package passcomp

import (
	"math"
	"strings"
)

// Result is the hybrid entropy solver's output (§3 "Entropy result"): the
// minimum summed cost and the segmentation that achieves it, in order.
type Result struct {
	Cost     float64
	Segments [][]byte
}

// HybridMaskString renders the segmentation as a mask string: a multi-byte
// segment (a genuine smartlist token) is wrapped in angle brackets, a
// single-byte segment is rendered as its charset-mask class tag. This
// surface form is not fixed by the external interface (§4.3 leaves it to
// the implementer); it mirrors cracken's min_subword_mask report field.
func (r Result) HybridMaskString() string {
	var b strings.Builder
	for _, seg := range r.Segments {
		if len(seg) == 1 {
			b.WriteByte(classTable[seg[0]])
			continue
		}
		b.WriteByte('<')
		b.Write(seg)
		b.WriteByte('>')
	}
	return b.String()
}

// Summary bundles both entropy models for a password side by side, mirroring
// the quadruple cracken's `entropy` subcommand prints: the hybrid
// segmentation and cost alongside the plain charset-mask cost.
type Summary struct {
	HybridCost     float64
	HybridSegments [][]byte
	HybridMask     string
	CharsetCost    float64
	CharsetMask    string
}

// Summarize computes both entropy models for pwd against sl.
func (sl *Smartlist) Summarize(pwd []byte) Summary {
	res := sl.Entropy(pwd)
	return Summary{
		HybridCost:     res.Cost,
		HybridSegments: res.Segments,
		HybridMask:     res.HybridMaskString(),
		CharsetCost:    MaskCost(pwd),
		CharsetMask:    MaskString(pwd),
	}
}

// Entropy solves the hybrid segmentation problem of §4.3: the minimum-cost
// partition of pwd into segments that are all keys of sl, cost being the
// left-to-right sum of log2(rank(segment)).
//
// This is a DP pass over positions rather than an explicit Dijkstra/A*
// priority-queue search. Because every edge weight is non-negative and the
// graph is a DAG topologically ordered by position, settling node n in
// increasing order and relaxing its outgoing edges is exactly equivalent to
// Dijkstra for this graph (§9 "Graph-search re-expression" recommends this
// as the asymptotically better O(N*L) choice over an explicit heap).
//
// Ties are broken by trying candidate end positions longest-first (i from
// the cap down to n+1) and only overwriting dp[i] on strict improvement, so
// the first (longest) edge to reach a given cost wins — matching the
// reference's longest-match-first expansion order.
//
// sl is total over all byte strings (every single byte is a key after the
// fallback fill), so this never fails to find a cover.
func (sl *Smartlist) Entropy(pwd []byte) Result {
	n := len(pwd)
	dp := make([]float64, n+1)
	back := make([]int, n+1)
	for i := 1; i <= n; i++ {
		dp[i] = math.Inf(1)
		back[i] = -1
	}

	maxLen := sl.MaxKeyLen()
	for start := 0; start < n; start++ {
		limit := start + maxLen
		if limit > n {
			limit = n
		}
		for end := limit; end > start; end-- {
			rank, ok := sl.Rank(pwd[start:end])
			if !ok {
				continue
			}
			cost := dp[start] + math.Log2(float64(rank))
			if cost < dp[end] {
				dp[end] = cost
				back[end] = start
			}
		}
	}

	var segments [][]byte
	for i := n; i > 0; {
		j := back[i]
		segments = append(segments, pwd[j:i])
		i = j
	}
	for l, r := 0, len(segments)-1; l < r; l, r = l+1, r-1 {
		segments[l], segments[r] = segments[r], segments[l]
	}

	return Result{Cost: dp[n], Segments: segments}
}
