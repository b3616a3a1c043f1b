package similarity

// Lexical and structural similarity signals between an article and its
// source material. Everything operates on plain strings; callers normalize
// and segment first.

const (
	ngramSize = 5

	// A sentence whose best match against any source sentence reaches
	// reuseCutoff counts as reused; one that stays below noveltyCutoff
	// counts as novel.
	reuseCutoff   = 0.85
	noveltyCutoff = 0.60
)

// CharNgrams returns the set of rune n-grams of a normalized string. A
// string shorter than the window is its own sole n-gram; an empty string
// yields an empty set.
func CharNgrams(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	runes := []rune(normalized)
	if len(runes) == 0 {
		return set
	}
	if len(runes) < ngramSize {
		set[string(runes)] = struct{}{}
		return set
	}
	for i := 0; i+ngramSize <= len(runes); i++ {
		set[string(runes[i:i+ngramSize])] = struct{}{}
	}
	return set
}

// Jaccard returns the Jaccard similarity of two n-gram sets, 0.0 when either
// set is empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	inter := 0
	for g := range a {
		if _, ok := b[g]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// MatchRatio returns a normalized edit similarity in [0,1]:
// 2*LCS(a,b)/(len(a)+len(b)) over runes. Identical strings score 1.0,
// disjoint strings 0.0.
func MatchRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}
	lcs := lcsLength(ra, rb)
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest-common-subsequence length with two rolling
// rows, keyed on the shorter string to bound memory.
func lcsLength(a, b []rune) int {
	if len(b) > len(a) {
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
		for j := range curr {
			curr[j] = 0
		}
	}
	return prev[len(b)]
}

// SentenceReuse scores each article sentence by its best match ratio against
// all source sentences and returns the reused and novel fractions. With no
// comparable sentences on either side the article is maximally novel by
// convention: reuse 0.0, novelty 1.0.
func SentenceReuse(articleSentences, sourceSentences []string) (reuse, novelty float64) {
	if len(articleSentences) == 0 || len(sourceSentences) == 0 {
		return 0.0, 1.0
	}
	reused, novel := 0, 0
	for _, s := range articleSentences {
		best := 0.0
		for _, t := range sourceSentences {
			if r := MatchRatio(s, t); r > best {
				best = r
			}
		}
		if best >= reuseCutoff {
			reused++
		}
		if best < noveltyCutoff {
			novel++
		}
	}
	n := float64(len(articleSentences))
	return float64(reused) / n, float64(novel) / n
}

// StructureSimilarity compares the article's heading signature against each
// source signature individually and returns the maximum ratio, 0.0 when
// there are no sources.
func StructureSimilarity(articleSig string, sourceSigs []string) float64 {
	best := 0.0
	for _, sig := range sourceSigs {
		if r := MatchRatio(articleSig, sig); r > best {
			best = r
		}
	}
	return best
}
