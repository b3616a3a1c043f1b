package report

import (
	"fmt"
	"strings"

	"prosegate/internal/gate"
	"prosegate/internal/history"
)

// Render returns the line-per-field gate report: the three scores, the
// verdict context, then every raw signal.
func Render(m gate.Metrics) string {
	var b strings.Builder
	b.WriteString("=== Originality Quality Gate ===\n")
	fmt.Fprintf(&b, "originality_score: %.2f\n", m.Originality)
	fmt.Fprintf(&b, "ai_tone_score: %.2f\n", m.AITone)
	fmt.Fprintf(&b, "humanity_score: %.2f\n", m.Humanity)
	fmt.Fprintf(&b, "domain: %s\n", m.Domain)
	fmt.Fprintf(&b, "risk_level: %s\n", m.Risk)
	fmt.Fprintf(&b, "ngram_overlap: %.4f\n", m.Signals.NgramOverlap)
	fmt.Fprintf(&b, "sentence_reuse_ratio: %.4f\n", m.Signals.SentenceReuseRatio)
	fmt.Fprintf(&b, "novelty_ratio: %.4f\n", m.Signals.NoveltyRatio)
	fmt.Fprintf(&b, "structure_similarity: %.4f\n", m.Signals.StructureSimilarity)
	fmt.Fprintf(&b, "source_trace_hits: %d\n", m.Signals.SourceTraceHits)
	fmt.Fprintf(&b, "ai_filler_hits: %d\n", m.Signals.AIFillerHits)
	fmt.Fprintf(&b, "template_sentence_ratio: %.4f\n", m.Signals.TemplateSentenceRatio)
	fmt.Fprintf(&b, "template_chain: %t\n", m.Signals.TemplateChain)
	fmt.Fprintf(&b, "scene_density: %.4f\n", m.Signals.SceneDensity)
	fmt.Fprintf(&b, "colloquial_ratio: %.4f\n", m.Signals.ColloquialRatio)
	fmt.Fprintf(&b, "stance_hits: %d\n", m.Signals.StanceHits)
	fmt.Fprintf(&b, "emotion_density: %.4f\n", m.Signals.EmotionDensity)
	fmt.Fprintf(&b, "academic_density: %.4f\n", m.Signals.AcademicDensity)
	fmt.Fprintf(&b, "narrative_density: %.4f\n", m.Signals.NarrativeDensity)
	fmt.Fprintf(&b, "lexical_diversity: %.4f\n", m.Signals.LexicalDiversity)
	fmt.Fprintf(&b, "sentence_stddev: %.4f\n", m.Signals.SentenceStdDev)
	fmt.Fprintf(&b, "sentence_cv: %.4f\n", m.Signals.SentenceCV)
	fmt.Fprintf(&b, "paragraph_stddev: %.4f\n", m.Signals.ParagraphStdDev)
	fmt.Fprintf(&b, "paragraph_cv: %.4f\n", m.Signals.ParagraphCV)
	fmt.Fprintf(&b, "passed: %t\n", m.Passed)
	return b.String()
}

// Summary returns a one-line verdict for batch output.
func Summary(label string, m gate.Metrics) string {
	status := "PASS"
	if !m.Passed {
		status = "FAIL"
	}
	return fmt.Sprintf("%-4s  orig %5.1f  ai %5.1f  human %5.1f  risk %-6s  %s",
		status, m.Originality, m.AITone, m.Humanity, m.Risk, label)
}

// RunSummary formats a recorded run the way Summary formats a fresh one.
func RunSummary(r history.Run) string {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	return fmt.Sprintf("%-4s  orig %5.1f  ai %5.1f  human %5.1f  risk %-6s  %s",
		status, r.Originality, r.AITone, r.Humanity, r.Risk, r.Label)
}
