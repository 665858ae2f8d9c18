package gazetteer

// Unbounded disables early termination in Distance, forcing an exact
// edit-distance computation.
const Unbounded = -1

// Distance computes the Levenshtein edit distance between a and b
// (insertions, deletions and substitutions at unit cost), operating on runes
// so multi-byte names are measured correctly.
//
// When maxDistance >= 0 the computation is banded: only cells within
// maxDistance of the diagonal are evaluated, bounding the work to
// O(len(a) * (2*maxDistance+1)) instead of O(len(a)*len(b)). As soon as the
// true distance provably exceeds maxDistance the function returns the
// sentinel maxDistance+1 rather than the exact value. This matters when a
// query is scored against every gazetteer entry.
//
// Distance is symmetric: Distance(a, b, k) == Distance(b, a, k).
func Distance(a, b string, maxDistance int) int {
	ra := []rune(a)
	rb := []rune(b)

	// Keep rb the shorter side so the DP rows stay small.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	la, lb := len(ra), len(rb)

	// A length difference alone forces at least that many edits.
	if maxDistance >= 0 && la-lb > maxDistance {
		return maxDistance + 1
	}
	if lb == 0 {
		return la
	}

	// Out-of-band cells hold a value large enough to never win a min()
	// but small enough to not overflow when incremented.
	const inf = int(^uint(0)>>1) / 2

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		lo, hi := 1, lb
		if maxDistance >= 0 {
			if l := i - maxDistance; l > lo {
				lo = l
			}
			if h := i + maxDistance; h < hi {
				hi = h
			}
		}

		curr[0] = i
		for j := 1; j < lo; j++ {
			curr[j] = inf
		}

		rowMin := curr[0]
		for j := lo; j <= hi; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if del := prev[j] + 1; del < d {
				d = del
			}
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		for j := hi + 1; j <= lb; j++ {
			curr[j] = inf
		}

		// Every path through later rows only grows, so once the whole row
		// exceeds the bound the final distance must too.
		if maxDistance >= 0 && rowMin > maxDistance {
			return maxDistance + 1
		}

		prev, curr = curr, prev
	}

	d := prev[lb]
	if maxDistance >= 0 && d > maxDistance {
		return maxDistance + 1
	}
	return d
}
