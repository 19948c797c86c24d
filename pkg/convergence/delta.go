package convergence

// DeltaMetricName identifies the document-change measure recorded in
// the convergence report so runs are comparable across implementations.
const DeltaMetricName = "levenshtein_ratio"

// Delta measures how much a document changed between two versions as a
// symmetric scalar in [0,1]: 0 iff the strings are identical, 1 when
// exactly one side is empty. The measure is the Levenshtein edit
// distance normalized by the longer length.
func Delta(a, b string) float64 {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein(a, b)) / float64(longest)
}

// levenshtein computes the byte-level edit distance using the
// two-row dynamic programming formulation.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
