package search

import "math"

// Ratio scores the similarity of a and b on a 0–100 scale from their indel
// distance (insertions and deletions only):
//
//	100 * (len(a) + len(b) - distance) / (len(a) + len(b))
//
// Lengths are counted in runes. An empty operand scores 0.
func Ratio(a, b string) int {
	return ratio([]rune(a), []rune(b))
}

// PartialRatio is Ratio of the shorter string against the best-scoring
// window of the longer one. Windows have the shorter string's length,
// except at the end of the longer string where they are cut short, so a
// term that runs past the end of the text (e.g. "dragon" in "big drag")
// still scores on its overlap. It rewards a term that appears, possibly
// misspelled, anywhere inside a longer text.
func PartialRatio(a, b string) int {
	needle, haystack := []rune(a), []rune(b)
	if len(needle) > len(haystack) {
		needle, haystack = haystack, needle
	}
	if len(needle) == 0 {
		return 0
	}

	m := len(needle)
	best := 0
	for start := 0; start < len(haystack); start++ {
		end := min(start+m, len(haystack))
		if score := ratio(needle, haystack[start:end]); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

func ratio(a, b []rune) int {
	total := len(a) + len(b)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	dist := indelDistance(a, b)
	return int(math.RoundToEven(100 * float64(total-dist) / float64(total)))
}

// indelDistance is len(a)+len(b)-2*LCS(a, b).
func indelDistance(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return len(a) + len(b) - 2*prev[len(b)]
}
