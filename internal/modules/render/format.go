package render

import "strings"

// The inline markup grammar is closed and non-recursive: **bold**, *italic*,
// __underline__, lines starting with a bullet marker become grouped list
// items, and blank lines become spacing. Marker pairs that never close stay
// literal text; nested emphasis is not supported.

const bulletMarker = "•"

// SpanKind classifies one run of inline text.
type SpanKind string

const (
	SpanText      SpanKind = "text"
	SpanBold      SpanKind = "bold"
	SpanItalic    SpanKind = "italic"
	SpanUnderline SpanKind = "underline"
)

// Span is a run of text with a single emphasis applied.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
}

// BlockKind classifies one line-level element.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockSpacer    BlockKind = "spacer"
)

// Block is one paragraph, bullet list, or vertical spacer.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Spans []Span    `json:"spans,omitempty"`
	Items [][]Span  `json:"items,omitempty"`
}

// FormatInline parses one line of inline markup into spans.
func FormatInline(text string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		kind, marker := markerAt(text, i)
		if kind == SpanText {
			plain.WriteByte(text[i])
			i++
			continue
		}

		end := strings.Index(text[i+len(marker):], marker)
		if end < 0 {
			// unmatched marker stays literal
			plain.WriteString(marker)
			i += len(marker)
			continue
		}

		flush()
		inner := text[i+len(marker) : i+len(marker)+end]
		spans = append(spans, Span{Kind: kind, Text: inner})
		i += 2*len(marker) + end
	}
	flush()

	if spans == nil {
		return []Span{}
	}
	return spans
}

// markerAt returns the emphasis marker starting at position i, if any.
// "**" is checked before "*" so bold wins over italic, and "__" before
// nothing else since single underscores carry no meaning.
func markerAt(text string, i int) (SpanKind, string) {
	if strings.HasPrefix(text[i:], "**") {
		return SpanBold, "**"
	}
	if strings.HasPrefix(text[i:], "__") {
		return SpanUnderline, "__"
	}
	if text[i] == '*' {
		return SpanItalic, "*"
	}
	return SpanText, ""
}

// FormatText parses multi-line markup into blocks. Consecutive bullet lines
// group into a single list block.
func FormatText(text string) []Block {
	lines := strings.Split(text, "\n")

	var blocks []Block
	var list [][]Span

	flushList := func() {
		if len(list) > 0 {
			blocks = append(blocks, Block{Kind: BlockList, Items: list})
			list = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, bulletMarker):
			content := strings.TrimSpace(strings.TrimPrefix(trimmed, bulletMarker))
			list = append(list, FormatInline(content))
		case trimmed != "":
			flushList()
			blocks = append(blocks, Block{Kind: BlockParagraph, Spans: FormatInline(line)})
		default:
			flushList()
			blocks = append(blocks, Block{Kind: BlockSpacer})
		}
	}
	flushList()

	if blocks == nil {
		return []Block{}
	}
	return blocks
}
