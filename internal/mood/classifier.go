// Package mood implements the mood classifier: a total, deterministic mapping
// from entry text to one label of the closed mood vocabulary.
//
// The algorithm is a keyword scorer. The text is tokenized, each token is
// looked up in a per-mood lexicon, and the mood with the most hits wins.
// Ties break in domain.AllMoods order and a text with no hits is neutral,
// so the same text always classifies the same way.
package mood

import (
	"strings"

	"github.com/tsawler/prose/v3"

	"github.com/404skill/mood-journal/backend/internal/domain"
)

// lexicon maps lowercase keywords to the mood they signal.
// Keywords are matched against whole tokens, never substrings, so "sadly"
// does not hit "sad" but "sad" in "I feel sad and lonely" does.
var lexicon = map[string]domain.Mood{
	// happy
	"happy": domain.MoodHappy, "happiness": domain.MoodHappy,
	"great": domain.MoodHappy, "wonderful": domain.MoodHappy,
	"joy": domain.MoodHappy, "joyful": domain.MoodHappy,
	"glad": domain.MoodHappy, "delighted": domain.MoodHappy,
	"cheerful": domain.MoodHappy, "grateful": domain.MoodHappy,
	"love": domain.MoodHappy, "loved": domain.MoodHappy,
	"fantastic": domain.MoodHappy, "amazing": domain.MoodHappy,
	"awesome": domain.MoodHappy, "smiling": domain.MoodHappy,

	// sad
	"sad": domain.MoodSad, "sadness": domain.MoodSad,
	"lonely": domain.MoodSad, "unhappy": domain.MoodSad,
	"depressed": domain.MoodSad, "miserable": domain.MoodSad,
	"crying": domain.MoodSad, "cried": domain.MoodSad,
	"tears": domain.MoodSad, "heartbroken": domain.MoodSad,
	"gloomy": domain.MoodSad, "grief": domain.MoodSad,
	"hopeless": domain.MoodSad,

	// angry
	"angry": domain.MoodAngry, "anger": domain.MoodAngry,
	"furious": domain.MoodAngry, "mad": domain.MoodAngry,
	"rage": domain.MoodAngry, "annoyed": domain.MoodAngry,
	"irritated": domain.MoodAngry, "frustrated": domain.MoodAngry,
	"hate": domain.MoodAngry, "outraged": domain.MoodAngry,

	// anxious
	"anxious": domain.MoodAnxious, "anxiety": domain.MoodAnxious,
	"worried": domain.MoodAnxious, "worry": domain.MoodAnxious,
	"nervous": domain.MoodAnxious, "afraid": domain.MoodAnxious,
	"scared": domain.MoodAnxious, "fear": domain.MoodAnxious,
	"stressed": domain.MoodAnxious, "stress": domain.MoodAnxious,
	"overwhelmed": domain.MoodAnxious, "uneasy": domain.MoodAnxious,
	"panic": domain.MoodAnxious,

	// excited
	"excited": domain.MoodExcited, "excitement": domain.MoodExcited,
	"thrilled": domain.MoodExcited, "eager": domain.MoodExcited,
	"pumped": domain.MoodExcited, "stoked": domain.MoodExcited,

	// calm
	"calm": domain.MoodCalm, "peaceful": domain.MoodCalm,
	"relaxed": domain.MoodCalm, "serene": domain.MoodCalm,
	"content": domain.MoodCalm, "tranquil": domain.MoodCalm,
	"rested": domain.MoodCalm,
}

// Classify maps text to a mood label. It is total: any input, including the
// empty string, yields a valid member of domain.AllMoods.
func Classify(text string) domain.Mood {
	scores := make(map[domain.Mood]int, len(domain.AllMoods))
	for _, tok := range tokenize(text) {
		if m, ok := lexicon[tok]; ok {
			scores[m]++
		}
	}

	best := domain.MoodNeutral
	bestScore := 0
	// AllMoods order breaks ties, keeping classification deterministic.
	for _, m := range domain.AllMoods {
		if scores[m] > bestScore {
			best = m
			bestScore = scores[m]
		}
	}
	return best
}

// tokenize splits text into lowercase word tokens using the prose tokenizer.
// Tagging and entity extraction are disabled — only segmentation into tokens
// is needed here. If the tokenizer fails, plain whitespace splitting with
// punctuation trimming keeps Classify total.
func tokenize(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return fallbackTokens(text)
	}

	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, strings.ToLower(t.Text))
	}
	return out
}

func fallbackTokens(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.ToLower(strings.Trim(f, ".,!?;:\"'()[]"))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
