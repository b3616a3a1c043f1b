package gate

import (
	"math"
	"strings"

	"prosegate/internal/dispersion"
	"prosegate/internal/domain"
	"prosegate/internal/patterns"
	"prosegate/internal/similarity"
	"prosegate/internal/textseg"
)

// Thresholds are the caller-supplied gate parameters. They carry no
// invariant defaults; the CLI layer supplies its own.
type Thresholds struct {
	MinOriginality    float64
	MaxAITone         float64
	MinHumanity       float64
	StrictSourceTrace bool
}

// Signals is the flat bundle of measurements the three scores are computed
// from, exposed on Metrics for diagnostics.
type Signals struct {
	NgramOverlap          float64
	SentenceReuseRatio    float64
	NoveltyRatio          float64
	StructureSimilarity   float64
	SourceTraceHits       int
	AIFillerHits          int
	TemplateSentenceRatio float64
	TemplateChain         bool
	SceneDensity          float64
	ColloquialRatio       float64
	StanceHits            int
	EmotionDensity        float64
	AcademicDensity       float64
	NarrativeDensity      float64
	LexicalDiversity      float64
	SentenceStdDev        float64
	SentenceCV            float64
	ParagraphStdDev       float64
	ParagraphCV           float64
}

// RiskLevel buckets the AI-tone score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Metrics is the gate's full output for one evaluation.
type Metrics struct {
	Originality float64
	AITone      float64
	Humanity    float64
	Signals     Signals
	Domain      domain.Label
	Risk        RiskLevel
	Passed      bool
}

// Originality penalty weights.
const (
	overlapWeight   = 40.0
	reuseWeight     = 25.0
	structureWeight = 15.0
	tracePenalty    = 10.0
	noveltyBonus    = 10.0
)

// Academic prose is legitimately more uniform and repetitive, so those
// penalties are scaled down for that label.
const (
	academicUniformityScale = 0.45
	academicDiversityScale  = 0.5
)

// Evaluate scores an article against zero or more sources and renders the
// pass/fail verdict. It is a pure deterministic function: no I/O, no shared
// state, safe for concurrent callers. Empty articles and empty source lists
// degrade to the documented fallback values, never to an error.
func Evaluate(article string, sources []string, th Thresholds) Metrics {
	sig := collect(article, sources)
	label := domain.Classify(sig.AcademicDensity, sig.NarrativeDensity)

	originality := originalityScore(sig, th.StrictSourceTrace)
	aiTone := aiToneScore(sig, label)
	humanity := humanityScore(sig, aiTone)

	passed := originality >= th.MinOriginality &&
		aiTone <= th.MaxAITone &&
		humanity >= th.MinHumanity

	return Metrics{
		Originality: round2(originality),
		AITone:      round2(aiTone),
		Humanity:    round2(humanity),
		Signals:     sig.rounded(),
		Domain:      label,
		Risk:        riskLevel(aiTone),
		Passed:      passed,
	}
}

// collect computes the full signal bundle for one article/source pair.
func collect(article string, sources []string) Signals {
	norm := textseg.Normalize(article)
	sentences := textseg.Sentences(article)
	paragraphs := textseg.Paragraphs(article)

	sourceText := strings.Join(sources, "\n")
	overlap := similarity.Jaccard(
		similarity.CharNgrams(norm),
		similarity.CharNgrams(textseg.Normalize(sourceText)),
	)
	reuse, novelty := similarity.SentenceReuse(sentences, textseg.Sentences(sourceText))

	sourceSigs := make([]string, len(sources))
	for i, src := range sources {
		sourceSigs[i] = textseg.HeadingSignature(src)
	}
	structure := similarity.StructureSimilarity(textseg.HeadingSignature(article), sourceSigs)

	sentLens := normalizedLengths(sentences)
	paraLens := normalizedLengths(paragraphs)

	return Signals{
		NgramOverlap:          overlap,
		SentenceReuseRatio:    reuse,
		NoveltyRatio:          novelty,
		StructureSimilarity:   structure,
		SourceTraceHits:       patterns.CountMatches(patterns.SourceTrace, article),
		AIFillerHits:          patterns.CountMatches(patterns.AIFiller, article),
		TemplateSentenceRatio: patterns.SentenceTokenRatio(sentences, patterns.TemplateOpeners),
		TemplateChain:         patterns.TemplateChain.MatchString(article),
		SceneDensity:          patterns.TokenDensity(norm, patterns.SceneTokens),
		ColloquialRatio:       patterns.SentenceTokenRatio(sentences, patterns.ColloquialTokens),
		StanceHits:            patterns.CountTokens(patterns.StanceTokens, article),
		EmotionDensity:        patterns.TokenDensity(norm, patterns.EmotionTokens),
		AcademicDensity:       patterns.TokenDensity(norm, patterns.AcademicTokens),
		NarrativeDensity:      patterns.TokenDensity(norm, patterns.NarrativeTokens),
		LexicalDiversity:      patterns.LexicalDiversity(norm),
		SentenceStdDev:        dispersion.StdDev(sentLens),
		SentenceCV:            dispersion.CV(sentLens),
		ParagraphStdDev:       dispersion.StdDev(paraLens),
		ParagraphCV:           dispersion.CV(paraLens),
	}
}

func normalizedLengths(blocks []string) []float64 {
	out := make([]float64, len(blocks))
	for i, b := range blocks {
		out[i] = float64(textseg.RuneLen(textseg.Normalize(b)))
	}
	return out
}

// originalityScore starts at 100, subtracts overlap/reuse/structure/trace
// penalties, adds the novelty bonus, and clamps. With strict tracing any
// source-trace phrase forces 0.
func originalityScore(sig Signals, strictTrace bool) float64 {
	if strictTrace && sig.SourceTraceHits > 0 {
		return 0.0
	}
	score := 100.0
	score -= sig.NgramOverlap * overlapWeight
	score -= sig.SentenceReuseRatio * reuseWeight
	score -= sig.StructureSimilarity * structureWeight
	if sig.SourceTraceHits > 0 {
		score -= tracePenalty
	}
	score += sig.NoveltyRatio * noveltyBonus
	return clamp(score)
}

// aiToneScore accumulates filler, template, uniformity, diversity and style
// penalties, with the uniformity/diversity/style weights conditioned on the
// register label.
func aiToneScore(sig Signals, label domain.Label) float64 {
	score := math.Min(35, float64(sig.AIFillerHits)*3.5)
	score += math.Min(20, sig.TemplateSentenceRatio*50)
	if sig.TemplateChain {
		score += 20
	}

	uniformity := 0.0
	switch {
	case sig.SentenceCV < 0.28:
		uniformity += 12
	case sig.SentenceCV < 0.38:
		uniformity += 6
	}
	switch {
	case sig.ParagraphCV < 0.35:
		uniformity += 10
	case sig.ParagraphCV < 0.50:
		uniformity += 5
	}

	diversity := 0.0
	switch {
	case sig.LexicalDiversity < 0.11:
		diversity = 12
	case sig.LexicalDiversity < 0.14:
		diversity = 6
	}

	style := 0.0
	if label == domain.Academic {
		uniformity *= academicUniformityScale
		diversity *= academicDiversityScale
		if sig.EmotionDensity < 0.06 {
			style += 2
		}
	} else {
		if sig.EmotionDensity < 0.15 {
			style += 8
		}
		if sig.ColloquialRatio < 0.05 {
			style += 5
		}
	}

	return clamp(score + uniformity + diversity + style)
}

// humanityScore starts at 50, rewards scene/colloquial/stance/emotion
// signals, and penalizes uniform sentence lengths, template sentences and a
// high AI-tone score.
func humanityScore(sig Signals, aiTone float64) float64 {
	score := 50.0
	score += math.Min(20, sig.SceneDensity*8)
	score += math.Min(20, sig.ColloquialRatio*80)
	score += math.Min(15, float64(sig.StanceHits)*4)
	score += math.Min(10, sig.EmotionDensity*3)
	switch {
	case sig.SentenceStdDev < 6:
		score -= 20
	case sig.SentenceStdDev < 9:
		score -= 10
	}
	if sig.TemplateSentenceRatio > 0.2 {
		score -= 10
	}
	if aiTone > 40 {
		score -= 10
	}
	return clamp(score)
}

func riskLevel(aiTone float64) RiskLevel {
	switch {
	case aiTone >= 70:
		return RiskHigh
	case aiTone >= 40:
		return RiskMedium
	default:
		return RiskLow
	}
}

// rounded returns a copy with ratio/density signals rounded to 4 decimals
// for reporting.
func (s Signals) rounded() Signals {
	s.NgramOverlap = round4(s.NgramOverlap)
	s.SentenceReuseRatio = round4(s.SentenceReuseRatio)
	s.NoveltyRatio = round4(s.NoveltyRatio)
	s.StructureSimilarity = round4(s.StructureSimilarity)
	s.TemplateSentenceRatio = round4(s.TemplateSentenceRatio)
	s.SceneDensity = round4(s.SceneDensity)
	s.ColloquialRatio = round4(s.ColloquialRatio)
	s.EmotionDensity = round4(s.EmotionDensity)
	s.AcademicDensity = round4(s.AcademicDensity)
	s.NarrativeDensity = round4(s.NarrativeDensity)
	s.LexicalDiversity = round4(s.LexicalDiversity)
	s.SentenceStdDev = round4(s.SentenceStdDev)
	s.SentenceCV = round4(s.SentenceCV)
	s.ParagraphStdDev = round4(s.ParagraphStdDev)
	s.ParagraphCV = round4(s.ParagraphCV)
	return s
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 100 {
		return 100.0
	}
	return v
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
