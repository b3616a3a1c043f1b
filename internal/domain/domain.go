package domain

// Label is the coarse register classification of an article. It gates how
// heavily uniformity, diversity and colloquial/emotion expectations apply
// during scoring: academic prose is legitimately more uniform and less
// colloquial than narrative or general prose.
type Label string

const (
	Academic  Label = "academic"
	Narrative Label = "narrative"
	General   Label = "general"
)

// Token density (hits per 100 runes) at or above this labels the register.
const densityCutoff = 0.45

// Classify labels an article from its academic and narrative token
// densities. Academic wins ties.
func Classify(academicDensity, narrativeDensity float64) Label {
	switch {
	case academicDensity >= densityCutoff:
		return Academic
	case narrativeDensity >= densityCutoff:
		return Narrative
	default:
		return General
	}
}
