package gvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"

	rrosave "github.com/the10thWiz/rro-track-editor"
	"github.com/the10thWiz/rro-track-editor/errors"
)

// Dump writes to w a readable representation of the save file decoded from r.
//
// Returns any warnings that occurred while decoding.
func (d Decoder) Dump(w io.Writer, r io.Reader) (warn, err error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	if w == nil {
		return nil, errors.New("nil writer")
	}

	f, warn, err := d.Decode(r)
	if err != nil {
		return warn, err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "SaveGameVersion: %d", f.SaveGameVersion)
	fmt.Fprintf(bw, "\nPackageVersion: %d", f.PackageVersion)
	fmt.Fprintf(bw, "\nEngineVersion: %d.%d.%d-%d+%s",
		f.EngineVersion.Major,
		f.EngineVersion.Minor,
		f.EngineVersion.Patch,
		f.EngineVersion.Build,
		f.EngineVersion.BuildID,
	)
	fmt.Fprintf(bw, "\nCustomFormatVersion: %d", f.CustomFormatVersion)
	fmt.Fprintf(bw, "\nCustomFormats: %d", len(f.CustomFormats))
	for _, c := range f.CustomFormats {
		fmt.Fprintf(bw, "\n\t%s: %d", c.ID, c.Value)
	}
	fmt.Fprint(bw, "\nSaveGameType: ")
	dumpString(bw, 1, f.SaveGameType)
	fmt.Fprint(bw, "\nProperties: {")
	for i, p := range f.Properties {
		dumpProperty(bw, 1, i, p)
	}
	fmt.Fprint(bw, "\n}")
	if len(f.Tail) > 0 {
		fmt.Fprintf(bw, "\nTail: %d bytes", len(f.Tail))
		dumpBytes(bw, 1, f.Tail)
	}
	fmt.Fprint(bw, "\n")

	if err := bw.Flush(); err != nil {
		return warn, err
	}
	return warn, nil
}

func dumpProperty(w *bufio.Writer, indent, i int, p *rrosave.Property) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "%d: ", i)
	dumpString(w, indent, p.Name)
	fmt.Fprintf(w, " (%s)", p.Value.Type())
	switch value := p.Value.(type) {
	case rrosave.ValueNone:
	case rrosave.ValueString:
		w.WriteString(" = ")
		dumpString(w, indent, string(value))
	case rrosave.ValueStringArray:
		fmt.Fprintf(w, "[%d] = {", len(value))
		for _, s := range value {
			dumpNewline(w, indent+1)
			dumpString(w, indent+1, s)
		}
		dumpNewline(w, indent)
		w.WriteString("}")
	case rrosave.ValueIntArray:
		fmt.Fprintf(w, "[%d] = %v", len(value), []int32(value))
	case rrosave.ValueBoolArray:
		fmt.Fprintf(w, "[%d] = %v", len(value), []bool(value))
	case rrosave.ValueFloatArray:
		fmt.Fprintf(w, "[%d] = %v", len(value), []float32(value))
	case rrosave.ValueTextArray:
		fmt.Fprintf(w, "[%d] = {", len(value))
		for _, t := range value {
			dumpNewline(w, indent+1)
			dumpString(w, indent+1, t.String())
		}
		dumpNewline(w, indent)
		w.WriteString("}")
	case rrosave.ValueVectorArray:
		fmt.Fprintf(w, "[%d] = {", len(value))
		for _, v := range value {
			dumpNewline(w, indent+1)
			fmt.Fprintf(w, "(%g, %g, %g)", v.X, v.Y, v.Z)
		}
		dumpNewline(w, indent)
		w.WriteString("}")
	case rrosave.ValueRotatorArray:
		fmt.Fprintf(w, "[%d] = {", len(value))
		for _, r := range value {
			dumpNewline(w, indent+1)
			fmt.Fprintf(w, "(%g, %g, %g)", r.Pitch, r.Yaw, r.Roll)
		}
		dumpNewline(w, indent)
		w.WriteString("}")
	}
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteString("\n")
	for i := 0; i < indent; i++ {
		w.WriteString("\t")
	}
}

func dumpString(w *bufio.Writer, indent int, s string) {
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			w.WriteString(strconv.Quote(s))
			return
		}
	}
	w.WriteString(s)
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else {
				w.WriteString("  ")
			}
			i++
			if i%2 == 0 && i%width != 0 {
				w.WriteString(" ")
			}
		}
		w.WriteString(" |")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteByte(b[i])
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteString("|")
	}
}
