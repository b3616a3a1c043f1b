package patterns

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Fixed pattern tables for the gate's density heuristics. These are
// read-only configuration, tuned for short/medium editorial articles in
// mixed Chinese/English prose.

// SourceTrace phrases betray copied source material left in the output.
var SourceTrace = compile(
	`引用原文`,
	`原文如下`,
	`据原文`,
	`来源[:：]`,
	`摘录如下`,
)

// AIFiller phrases are the stock connectives and buzzwords of machine prose.
var AIFiller = compile(
	`首先[，,]`,
	`其次[，,]`,
	`再次[，,]`,
	`最后[，,]`,
	`值得注意的是`,
	`需要指出的是`,
	`总的来说`,
	`综上所述`,
	`在当今社会`,
	`在这个时代`,
	`不可否认`,
	`毋庸置疑`,
	`由此可见`,
	`从某种意义上说`,
	`在一定程度上`,
	`赋能`,
	`助力`,
	`深耕`,
)

// TemplateChain matches the full 首先…其次…最后… enumeration skeleton
// anywhere in a document.
var TemplateChain = regexp.MustCompile(`(?s)首先[，,].*其次[，,].*最后[，,]`)

// TemplateOpeners mark enumeration-template sentences.
var TemplateOpeners = []string{
	"首先", "其次", "再次", "然后", "接着", "最后",
	"第一", "第二", "第三",
}

// SceneTokens anchor prose in concrete time and place.
var SceneTokens = []string{
	"今天", "昨天", "凌晨", "早上", "中午", "晚上",
	"周一", "周末", "地铁", "办公室", "会议室", "出租屋",
	"厨房", "手机", "消息", "走进", "坐下", "抬头",
	"看见", "听到",
}

// ColloquialTokens are spoken-register turns of phrase.
var ColloquialTokens = []string{
	"你可能", "你会发现", "说白了", "讲真", "先别急",
	"这事儿", "你想想", "换句话说", "我更倾向于", "我的判断是",
}

// StanceTokens are explicit first-person positions.
var StanceTokens = []string{
	"我认为", "我更倾向于", "我的判断是", "我不认同",
	"我支持", "我反对", "在我看来",
}

// EmotionTokens carry affective weight.
var EmotionTokens = []string{
	"开心", "难过", "愤怒", "焦虑", "感动", "惊讶",
	"委屈", "兴奋", "害怕", "心疼", "欣慰", "失望",
	"遗憾", "温暖", "孤独", "踏实",
}

// AcademicTokens signal research-register prose.
var AcademicTokens = []string{
	"研究", "数据", "方法", "分析", "理论", "模型",
	"实验", "样本", "文献", "假设", "结论", "表明",
	"显著", "因此", "基于", "机制",
}

// NarrativeTokens signal story-register prose.
var NarrativeTokens = []string{
	"那天", "那年", "后来", "当时", "突然", "他说",
	"她说", "回忆", "故事", "小时候", "那一刻", "遇到",
	"经历", "转身", "沉默",
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// CountMatches returns the total match count of a pattern set in text.
func CountMatches(set []*regexp.Regexp, text string) int {
	total := 0
	for _, re := range set {
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}

// CountTokens returns the total substring occurrences of tokens in text.
func CountTokens(tokens []string, text string) int {
	total := 0
	for _, tok := range tokens {
		total += strings.Count(text, tok)
	}
	return total
}

// TokenDensity returns token hits per 100 runes of normalized text. Texts
// shorter than 100 runes use a denominator of 1, and an empty text has
// density 0.
func TokenDensity(normalized string, tokens []string) float64 {
	n := utf8.RuneCountInString(normalized)
	if n == 0 {
		return 0.0
	}
	denom := float64(n) / 100
	if denom < 1 {
		denom = 1
	}
	return float64(CountTokens(tokens, normalized)) / denom
}

// SentenceTokenRatio returns the fraction of sentences containing at least
// one token from the set, 0.0 when there are no sentences.
func SentenceTokenRatio(sentences, tokens []string) float64 {
	if len(sentences) == 0 {
		return 0.0
	}
	hit := 0
	for _, s := range sentences {
		for _, tok := range tokens {
			if strings.Contains(s, tok) {
				hit++
				break
			}
		}
	}
	return float64(hit) / float64(len(sentences))
}

// LexicalDiversity returns the distinct-rune to total-rune ratio of
// normalized text, a cheap repetitiveness proxy. 0.0 on empty input.
func LexicalDiversity(normalized string) float64 {
	runes := []rune(normalized)
	if len(runes) == 0 {
		return 0.0
	}
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
	}
	return float64(len(seen)) / float64(len(runes))
}
