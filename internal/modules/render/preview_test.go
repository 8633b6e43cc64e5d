package render

import (
	"strings"
	"testing"
)

func TestPreviewShortDescriptionKeptWhole(t *testing.T) {
	text := "One sentence. Two now! Three at last?"
	if got := previewOf(text); got != text {
		t.Fatalf("expected full text, got %q", got)
	}
}

func TestPreviewCapsAtFourSentences(t *testing.T) {
	text := "A one. B two. C three. D four. E five. F six."
	want := "A one. B two. C three. D four."
	if got := previewOf(text); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPreviewStopsAtWordBudget(t *testing.T) {
	sentence := strings.Repeat("word ", 59) + "end."
	text := sentence + " " + sentence + " " + sentence

	got := previewOf(text)
	if words := len(strings.Fields(got)); words != 120 {
		t.Fatalf("expected 120 words (two sentences), got %d", words)
	}
}

func TestPreviewLongFirstSentenceShownWhole(t *testing.T) {
	sentence := strings.Repeat("word ", 199) + "end."
	text := sentence + " Another one."

	got := previewOf(text)
	if got != strings.TrimSpace(sentence) {
		t.Fatalf("expected the whole first sentence, got %d words", len(strings.Fields(got)))
	}
}

func TestPreviewWithoutTerminator(t *testing.T) {
	text := "no punctuation here at all"
	if got := previewOf(text); got != text {
		t.Fatalf("expected %q, got %q", text, got)
	}
}

func TestPreviewDropsUnterminatedTail(t *testing.T) {
	if got := previewOf("Complete sentence. dangling fragment"); got != "Complete sentence." {
		t.Fatalf("expected the terminated sentence only, got %q", got)
	}
}

func TestSplitSentencesKeepsPunctuationRuns(t *testing.T) {
	got := splitSentences("Wow!! Really?")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(got), got)
	}
	if got[0] != "Wow!!" {
		t.Fatalf("punctuation run should stay attached, got %q", got[0])
	}
}
