package gvas

import (
	"bytes"
	"io"

	"github.com/anaminus/parse"

	rrosave "github.com/the10thWiz/rro-track-editor"
	"github.com/the10thWiz/rro-track-editor/errors"
)

// Encoder encodes an rrosave.File into a stream of bytes.
type Encoder struct{}

// Encode writes f to w in the GVAS format. The file is serialized into a
// buffer first, so nothing is written to w if encoding fails.
func (e Encoder) Encode(w io.Writer, f *rrosave.File) (err error) {
	if w == nil {
		return errors.New("nil writer")
	}
	if f == nil {
		return errors.New("nil file")
	}

	var buf bytes.Buffer
	enc := &encoder{fw: parse.NewBinaryWriter(&buf)}
	if enc.encode(f) {
		if err := enc.fw.Err(); err != nil {
			return DataError{Offset: enc.fw.N(), Cause: err}
		}
		return errors.New("encode failed")
	}

	_, err = w.Write(buf.Bytes())
	return err
}

type encoder struct {
	fw *parse.BinaryWriter
}

func (e *encoder) encode(f *rrosave.File) (failed bool) {
	if e.fw.Bytes([]byte(sig)) {
		return true
	}

	if e.fw.Number(f.SaveGameVersion) {
		return true
	}
	if e.fw.Number(f.PackageVersion) {
		return true
	}
	if e.writeEngineVersion(f.EngineVersion) {
		return true
	}

	if e.fw.Number(f.CustomFormatVersion) {
		return true
	}
	if e.fw.Number(uint32(len(f.CustomFormats))) {
		return true
	}
	for _, c := range f.CustomFormats {
		if e.fw.Bytes(c.ID.Bytes()) {
			return true
		}
		if e.fw.Number(c.Value) {
			return true
		}
	}

	if writeString(e.fw, f.SaveGameType) {
		return true
	}

	for _, p := range f.Properties {
		if writeString(e.fw, p.Name) {
			return true
		}
		if e.writeValue(p.Name, p.Value) {
			return true
		}
	}

	if len(f.Tail) > 0 {
		return e.fw.Bytes(f.Tail)
	}
	return false
}

func (e *encoder) writeEngineVersion(v rrosave.EngineVersion) (failed bool) {
	if e.fw.Number(v.Major) {
		return true
	}
	if e.fw.Number(v.Minor) {
		return true
	}
	if e.fw.Number(v.Patch) {
		return true
	}
	if e.fw.Number(v.Build) {
		return true
	}
	return writeString(e.fw, v.BuildID)
}
