package rrosave

import "strconv"

// TextKind identifies the variant held by a Text.
type TextKind uint8

const (
	// TextNone is an empty text value.
	TextNone TextKind = iota

	// TextSimple is a plain, unformatted string.
	TextSimple

	// TextFormatted is a two-line value rendered through the game's fixed
	// "{0}<br>{1}" format template.
	TextFormatted
)

// Text is a localized text value. The game serializes text as a format tree;
// only the two shapes the game actually produces are representable: a plain
// string, and a two-line value built from a fixed template.
type Text struct {
	Kind TextKind

	// Flags is the leading flag word of the serialized form. It is preserved
	// from decoding so that re-encoding reproduces the original bytes.
	// TextFormatted values always encode with the formatted flag word
	// regardless of this field.
	Flags uint32

	// Value holds the text of a TextSimple.
	Value string

	// First and Second hold the two lines of a TextFormatted.
	First, Second string
}

// NewSimpleText returns a plain text value.
func NewSimpleText(s string) Text {
	return Text{Kind: TextSimple, Flags: 2, Value: s}
}

// NewFormattedText returns a two-line formatted text value.
func NewFormattedText(first, second string) Text {
	return Text{Kind: TextFormatted, Flags: 1, First: first, Second: second}
}

func (t Text) String() string {
	switch t.Kind {
	case TextSimple:
		return strconv.Quote(t.Value)
	case TextFormatted:
		return strconv.Quote(t.First + "<br>" + t.Second)
	default:
		return "None"
	}
}
