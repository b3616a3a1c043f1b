package gate

import (
	"strings"
	"testing"

	"prosegate/internal/domain"
)

// humanArticle has highly variable sentence and paragraph lengths, scene,
// colloquial, stance and emotion tokens, and no filler phrases.
const humanArticle = `今天我在地铁上看见一个人。说白了，这事儿没那么简单，你想想就明白了。

我认为这个行业的变化比大家预期的要快得多，办公室里的讨论已经说明了问题。在我看来，那些被反复转述的说法并不可靠，真正让人感动的是普通人面对变化时的韧性，以及他们愿意一点点把生活过好的耐心。`

// templateArticle is uniform-length enumeration-template prose.
const templateArticle = `首先，我们要明确目标和方向。其次，我们要制定详细计划。最后，我们要坚决执行到位。`

const academicArticle = `本文基于实验数据进行分析，研究方法与理论模型均在文献中有详细讨论，结果表明样本之间差异显著，因此可以得出结论。`

var openThresholds = Thresholds{MinOriginality: 0, MaxAITone: 100, MinHumanity: 0}

func TestDeterminism(t *testing.T) {
	th := Thresholds{MinOriginality: 70, MaxAITone: 30, MinHumanity: 60}
	m1 := Evaluate(humanArticle, []string{templateArticle}, th)
	m2 := Evaluate(humanArticle, []string{templateArticle}, th)
	if m1 != m2 {
		t.Errorf("identical inputs produced different metrics:\n%+v\n%+v", m1, m2)
	}
}

func TestScoreRanges(t *testing.T) {
	inputs := []struct {
		name    string
		article string
		sources []string
	}{
		{"empty", "", nil},
		{"empty with sources", "", []string{humanArticle}},
		{"human", humanArticle, nil},
		{"template", templateArticle, nil},
		{"self-plagiarized", humanArticle, []string{humanArticle}},
		{"filler flood", strings.Repeat("赋能，助力，深耕。", 200), nil},
	}
	for _, tt := range inputs {
		m := Evaluate(tt.article, tt.sources, openThresholds)
		for name, score := range map[string]float64{
			"originality": m.Originality,
			"ai_tone":     m.AITone,
			"humanity":    m.Humanity,
		} {
			if score < 0 || score > 100 {
				t.Errorf("%s: %s out of range: %v", tt.name, name, score)
			}
		}
	}
}

func TestEmptySources(t *testing.T) {
	m := Evaluate(humanArticle, nil, openThresholds)
	if m.Signals.NgramOverlap != 0 {
		t.Errorf("expected overlap 0 with no sources, got %v", m.Signals.NgramOverlap)
	}
	if m.Signals.SentenceReuseRatio != 0 {
		t.Errorf("expected reuse 0 with no sources, got %v", m.Signals.SentenceReuseRatio)
	}
	if m.Signals.NoveltyRatio != 1 {
		t.Errorf("expected novelty 1 with no sources, got %v", m.Signals.NoveltyRatio)
	}
	if m.Signals.StructureSimilarity != 0 {
		t.Errorf("expected structure similarity 0 with no sources, got %v", m.Signals.StructureSimilarity)
	}
}

func TestEmptyArticle(t *testing.T) {
	m := Evaluate("", []string{humanArticle}, openThresholds)
	if m.Signals.NgramOverlap != 0 {
		t.Errorf("expected overlap 0 for empty article, got %v", m.Signals.NgramOverlap)
	}
	if m.Signals.NoveltyRatio != 1 {
		t.Errorf("expected novelty 1 for empty article, got %v", m.Signals.NoveltyRatio)
	}
	if m.Signals.LexicalDiversity != 0 {
		t.Errorf("expected diversity 0 for empty article, got %v", m.Signals.LexicalDiversity)
	}
}

func TestStrictSourceTraceOverride(t *testing.T) {
	article := humanArticle + "\n\n来源：某公众号的旧文章整理。"

	strict := Evaluate(article, nil, Thresholds{StrictSourceTrace: true, MaxAITone: 100})
	if strict.Signals.SourceTraceHits == 0 {
		t.Fatal("expected source trace hits for 来源： phrase")
	}
	if strict.Originality != 0 {
		t.Errorf("strict trace should force originality to 0, got %v", strict.Originality)
	}

	lax := Evaluate(article, nil, Thresholds{StrictSourceTrace: false, MaxAITone: 100})
	if lax.Originality == 0 {
		t.Errorf("without strict trace originality should survive, got %v", lax.Originality)
	}
}

func TestIdenticalArticleAndSource(t *testing.T) {
	m := Evaluate(humanArticle, []string{humanArticle}, openThresholds)
	if m.Signals.NgramOverlap < 0.99 {
		t.Errorf("expected overlap ~1.0 for identical texts, got %v", m.Signals.NgramOverlap)
	}
	if m.Signals.SentenceReuseRatio < 0.99 {
		t.Errorf("expected reuse ~1.0 for identical texts, got %v", m.Signals.SentenceReuseRatio)
	}
	if m.Signals.NoveltyRatio != 0 {
		t.Errorf("expected novelty 0 for identical texts, got %v", m.Signals.NoveltyRatio)
	}
	if m.Originality > 25 {
		t.Errorf("expected near-floor originality for identical texts, got %v", m.Originality)
	}
}

func TestHumanProseScoresWell(t *testing.T) {
	m := Evaluate(humanArticle, nil, openThresholds)
	if m.AITone >= 40 {
		t.Errorf("expected low AI tone for varied human prose, got %v", m.AITone)
	}
	if m.Risk != RiskLow {
		t.Errorf("expected low risk, got %s", m.Risk)
	}
	if m.Humanity <= 60 {
		t.Errorf("expected high humanity, got %v", m.Humanity)
	}
	if m.Domain != domain.General {
		t.Errorf("expected general domain, got %s", m.Domain)
	}
}

func TestTemplateProseFlaggedHighRisk(t *testing.T) {
	m := Evaluate(templateArticle, nil, openThresholds)
	if m.AITone < 70 {
		t.Errorf("expected AI tone >= 70 for template prose, got %v", m.AITone)
	}
	if m.Risk != RiskHigh {
		t.Errorf("expected high risk, got %s", m.Risk)
	}
	if m.Signals.TemplateSentenceRatio < 0.9 {
		t.Errorf("expected near-total template sentence ratio, got %v", m.Signals.TemplateSentenceRatio)
	}
	if !m.Signals.TemplateChain {
		t.Error("expected the 首先…其次…最后… chain to be detected")
	}
	if m.Humanity > 30 {
		t.Errorf("expected low humanity for template prose, got %v", m.Humanity)
	}
}

func TestAcademicDomainLabel(t *testing.T) {
	m := Evaluate(academicArticle, nil, openThresholds)
	if m.Domain != domain.Academic {
		t.Errorf("expected academic label, got %s (density %v)", m.Domain, m.Signals.AcademicDensity)
	}
}

func TestAcademicPenaltiesReduced(t *testing.T) {
	// Same dispersion statistics; only the register label differs.
	sig := Signals{
		SentenceCV:       0.1,
		ParagraphCV:      0.1,
		LexicalDiversity: 0.10,
	}
	academic := aiToneScore(sig, domain.Academic)
	general := aiToneScore(sig, domain.General)
	if academic >= general {
		t.Errorf("academic penalties should be smaller: academic %v, general %v", academic, general)
	}
	narrative := aiToneScore(sig, domain.Narrative)
	if narrative != general {
		t.Errorf("narrative and general should share penalty weights: %v vs %v", narrative, general)
	}
}

func TestFillerMonotonicity(t *testing.T) {
	sig := Signals{
		SentenceCV:       0.5,
		ParagraphCV:      0.6,
		LexicalDiversity: 0.5,
		EmotionDensity:   0.5,
		ColloquialRatio:  0.5,
	}
	prev := -1.0
	for hits := 0; hits <= 30; hits++ {
		sig.AIFillerHits = hits
		score := aiToneScore(sig, domain.General)
		if score < prev {
			t.Fatalf("ai tone decreased from %v to %v at %d filler hits", prev, score, hits)
		}
		prev = score
	}
}

func TestRiskBands(t *testing.T) {
	tests := []struct {
		aiTone float64
		want   RiskLevel
	}{
		{0, RiskLow},
		{39.9, RiskLow},
		{40, RiskMedium},
		{69.9, RiskMedium},
		{70, RiskHigh},
		{100, RiskHigh},
	}
	for _, tt := range tests {
		if got := riskLevel(tt.aiTone); got != tt.want {
			t.Errorf("riskLevel(%v) = %s, want %s", tt.aiTone, got, tt.want)
		}
	}
}

func TestGateDecision(t *testing.T) {
	strict := Thresholds{MinOriginality: 70, MaxAITone: 30, MinHumanity: 60}

	if m := Evaluate(humanArticle, nil, strict); !m.Passed {
		t.Errorf("varied human prose should pass the default gate: %+v", m)
	}
	if m := Evaluate(templateArticle, nil, strict); m.Passed {
		t.Errorf("template prose should fail the default gate: %+v", m)
	}
	if m := Evaluate(humanArticle, []string{humanArticle}, strict); m.Passed {
		t.Errorf("a copied article should fail the default gate: %+v", m)
	}
}

func TestStructureSimilarityUsesPerSourceMax(t *testing.T) {
	article := "# 开篇\n" + humanArticle + "\n# 结尾观察\n"
	sameShape := "# 开篇\n完全不同的正文内容，但是提纲结构一致。\n# 结尾观察\n"
	otherShape := "# 完全无关的标题\n别的内容。\n"

	m := Evaluate(article, []string{otherShape, sameShape}, openThresholds)
	if m.Signals.StructureSimilarity < 0.99 {
		t.Errorf("expected max structural similarity over sources ~1.0, got %v", m.Signals.StructureSimilarity)
	}
}
