package gvas

import (
	"github.com/anaminus/parse"

	rrosave "github.com/the10thWiz/rro-track-editor"
)

// Constants of the serialized FText layout that Railroads Online emits. The
// formatted variant is always the same two-argument "<br>" template keyed by
// a fixed localization hash.
const (
	textFormattedFlags uint32 = 1
	textSimpleFlags    uint32 = 2

	textHistoryArgFormat int8 = 3
	textHistoryBase      int8 = 0
	textHistoryNone      int8 = -1

	textArgTypeText uint8  = 4
	textArgFlags    uint32 = 2

	textFormatKey     = "56F8D27149CC5E2D12103BBEBFCA9097"
	textFormatPattern = "{0}<br>{1}"
)

// readText reads one serialized text value. Any layout other than the two
// shapes the game writes fails with ErrUnsupportedTextFormat.
func (d *decoder) readText() (t rrosave.Text, failed bool) {
	if d.fr.Number(&t.Flags) {
		return t, true
	}

	if t.Flags == textFormattedFlags {
		return d.readFormattedText(t.Flags)
	}

	var history int8
	if d.fr.Number(&history) {
		return t, true
	}
	if history != textHistoryNone {
		d.fr.Add(0, ErrUnsupportedTextFormat)
		return t, true
	}

	var present uint32
	if d.fr.Number(&present) {
		return t, true
	}
	if present == 0 {
		t.Kind = rrosave.TextNone
		return t, false
	}

	t.Kind = rrosave.TextSimple
	if readString(d.fr, &t.Value) {
		return t, true
	}
	return t, false
}

// readFormattedText reads the argument-format variant: a nested source text
// holding the template, followed by the two named arguments.
func (d *decoder) readFormattedText(flags uint32) (t rrosave.Text, failed bool) {
	t.Flags = flags
	t.Kind = rrosave.TextFormatted

	var history int8
	if d.fr.Number(&history) {
		return t, true
	}
	if history != textHistoryArgFormat {
		d.fr.Add(0, ErrUnsupportedTextFormat)
		return t, true
	}

	// Nested source text carrying the format pattern.
	var srcFlags uint32
	if d.fr.Number(&srcFlags) {
		return t, true
	}
	var srcHistory int8
	if d.fr.Number(&srcHistory) {
		return t, true
	}
	if srcFlags != 0 || srcHistory != textHistoryBase {
		d.fr.Add(0, ErrUnsupportedTextFormat)
		return t, true
	}
	var namespace, key, pattern string
	if readString(d.fr, &namespace) ||
		readString(d.fr, &key) ||
		readString(d.fr, &pattern) {
		return t, true
	}
	if namespace != "" || key != textFormatKey || pattern != textFormatPattern {
		d.fr.Add(0, ErrUnsupportedTextFormat)
		return t, true
	}

	var argc int32
	if d.fr.Number(&argc) {
		return t, true
	}
	if argc != 2 {
		d.fr.Add(0, ErrUnsupportedTextFormat)
		return t, true
	}

	for i := int32(0); i < argc; i++ {
		var argName string
		if readString(d.fr, &argName) {
			return t, true
		}
		var argType uint8
		if d.fr.Number(&argType) {
			return t, true
		}
		if argType != textArgTypeText {
			d.fr.Add(0, ErrUnsupportedTextFormat)
			return t, true
		}
		var argFlags uint32
		if d.fr.Number(&argFlags) {
			return t, true
		}
		if argFlags != textArgFlags {
			d.fr.Add(0, ErrUnsupportedTextFormat)
			return t, true
		}
		var argHistory int8
		if d.fr.Number(&argHistory) {
			return t, true
		}
		if argHistory != textHistoryNone {
			d.fr.Add(0, ErrUnsupportedTextFormat)
			return t, true
		}
		var present uint32
		if d.fr.Number(&present) {
			return t, true
		}
		var value string
		if present != 0 {
			if readString(d.fr, &value) {
				return t, true
			}
		}
		switch argName {
		case "0":
			t.First = value
		case "1":
			t.Second = value
		default:
			d.fr.Add(0, ErrUnsupportedTextFormat)
			return t, true
		}
	}

	return t, false
}

// writeText writes one serialized text value in whichever of the two shapes
// matches the kind.
func writeText(fw *parse.BinaryWriter, t rrosave.Text) (failed bool) {
	if t.Kind == rrosave.TextFormatted {
		if fw.Number(textFormattedFlags) {
			return true
		}
		return writeFormattedText(fw, t)
	}

	// A plain value must not carry the formatted flag word, or the output
	// would not decode.
	flags := t.Flags
	if flags == textFormattedFlags {
		flags = textSimpleFlags
	}
	if fw.Number(flags) {
		return true
	}

	if fw.Number(textHistoryNone) {
		return true
	}
	if t.Kind == rrosave.TextNone {
		return fw.Number(uint32(0))
	}
	if fw.Number(uint32(1)) {
		return true
	}
	return writeString(fw, t.Value)
}

func writeFormattedText(fw *parse.BinaryWriter, t rrosave.Text) (failed bool) {
	if fw.Number(textHistoryArgFormat) {
		return true
	}

	// Nested source text.
	if fw.Number(uint32(0)) {
		return true
	}
	if fw.Number(textHistoryBase) {
		return true
	}
	if writeString(fw, "") ||
		writeString(fw, textFormatKey) ||
		writeString(fw, textFormatPattern) {
		return true
	}

	if fw.Number(int32(2)) {
		return true
	}

	for i, value := range []string{t.First, t.Second} {
		if writeString(fw, string(rune('0'+i))) {
			return true
		}
		if fw.Number(textArgTypeText) {
			return true
		}
		if fw.Number(textArgFlags) {
			return true
		}
		if fw.Number(textHistoryNone) {
			return true
		}
		if value == "" {
			if fw.Number(uint32(0)) {
				return true
			}
			continue
		}
		if fw.Number(uint32(1)) {
			return true
		}
		if writeString(fw, value) {
			return true
		}
	}

	return false
}
