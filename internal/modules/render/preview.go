package render

import "strings"

const (
	previewMaxSentences = 4
	previewMaxWords     = 150
)

// splitSentences breaks text into terminated sentences, each retaining its
// closing punctuation run. Trailing text without a terminator is not a
// sentence; when the text has no terminated sentence at all, the whole text
// counts as one.
func splitSentences(text string) []string {
	var out []string
	i := 0
	for i < len(text) {
		// skip stray terminators between sentences
		for i < len(text) && isTerminator(text[i]) {
			i++
		}
		start := i
		for i < len(text) && !isTerminator(text[i]) {
			i++
		}
		if i >= len(text) {
			// unterminated tail, not a sentence
			break
		}
		for i < len(text) && isTerminator(text[i]) {
			i++
		}
		out = append(out, text[start:i])
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// previewOf computes the truncated description preview: sentences accumulate
// while fewer than four have been taken and the running word count stays
// within 150. A first sentence that alone exceeds the word budget is shown
// whole.
func previewOf(description string) string {
	sentences := splitSentences(description)

	var b strings.Builder
	wordCount := 0
	sentenceCount := 0

	for _, sentence := range sentences {
		words := len(strings.Fields(sentence))
		switch {
		case sentenceCount < previewMaxSentences && wordCount+words <= previewMaxWords:
			b.WriteString(sentence)
			wordCount += words
			sentenceCount++
		case sentenceCount == 0:
			return strings.TrimSpace(sentences[0])
		default:
			return strings.TrimSpace(b.String())
		}
	}
	return strings.TrimSpace(b.String())
}
