package gvas

import (
	"bytes"
	"math"

	"github.com/anaminus/parse"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// sig is the magic tag beginning every save file.
const sig = "GVAS"

// utf16le decodes the wide-string path of the format. Strings are stored
// without a BOM.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// readString reads a length-prefixed string. A positive length selects the
// 8-bit codepage encoding, a negative length selects UTF-16LE, and zero is
// the empty string. Both non-empty encodings carry a mandatory NUL
// terminator, which is validated and stripped.
func readString(fr *parse.BinaryReader, data *string) (failed bool) {
	if fr.Err() != nil {
		return true
	}

	var length int32
	if fr.Number(&length) {
		return true
	}

	switch {
	case length > 0:
		b := make([]byte, length)
		if fr.Bytes(b) {
			return true
		}
		if b[len(b)-1] != 0 {
			return fr.Add(0, ErrMalformedString)
		}
		s, err := charmap.Windows1252.NewDecoder().Bytes(b[:len(b)-1])
		if err != nil {
			return fr.Add(0, err)
		}
		*data = string(s)
	case length < 0:
		n := -int64(length) * 2
		b := make([]byte, n)
		if fr.Bytes(b) {
			return true
		}
		if b[len(b)-1] != 0 || b[len(b)-2] != 0 {
			return fr.Add(0, ErrMalformedString)
		}
		s, err := utf16le.NewDecoder().Bytes(b[:len(b)-2])
		if err != nil {
			return fr.Add(0, err)
		}
		*data = string(s)
	default:
		*data = ""
	}

	return false
}

// writeString writes a length-prefixed string. Only the 8-bit codepage path
// is emitted; the format does not require writing wide strings back.
func writeString(fw *parse.BinaryWriter, data string) (failed bool) {
	if fw.Err() != nil {
		return true
	}

	if data == "" {
		return fw.Number(int32(0))
	}

	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(data))
	if err != nil {
		return fw.Add(0, err)
	}

	if fw.Number(int32(len(b) + 1)) {
		return true
	}
	if fw.Bytes(b) {
		return true
	}
	return fw.Number(uint8(0))
}

func readFloat(fr *parse.BinaryReader, data *float32) (failed bool) {
	var bits uint32
	if fr.Number(&bits) {
		return true
	}
	*data = math.Float32frombits(bits)
	return false
}

func writeFloat(fw *parse.BinaryWriter, data float32) (failed bool) {
	return fw.Number(math.Float32bits(data))
}

// marshal serializes body through a writer backed by a buffer, so that the
// payload's byte length can be written ahead of the payload itself. Errors
// raised by body are transferred to fw.
func marshal(fw *parse.BinaryWriter, body func(*parse.BinaryWriter) bool) (payload []byte, failed bool) {
	var buf bytes.Buffer
	bw := parse.NewBinaryWriter(&buf)
	failed = body(bw)
	if _, err := bw.End(); err != nil {
		return nil, fw.Add(0, err)
	}
	if failed {
		return nil, true
	}
	return buf.Bytes(), false
}
