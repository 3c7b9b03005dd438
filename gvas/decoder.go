package gvas

import (
	"bytes"
	"io"

	"github.com/anaminus/parse"
	uuid "github.com/satori/go.uuid"

	rrosave "github.com/the10thWiz/rro-track-editor"
	"github.com/the10thWiz/rro-track-editor/errors"
)

// Decoder decodes a stream of bytes into an rrosave.File.
type Decoder struct{}

// Decode reads data from r and decodes it into a file according to the GVAS
// format. Bytes after the terminating property that the codec does not
// understand are retained verbatim in the file's Tail, and reported as a
// warning.
func (d Decoder) Decode(r io.Reader) (f *rrosave.File, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	br := bytes.NewReader(data)
	dec := &decoder{
		fr: parse.NewBinaryReader(br),
		br: br,
	}

	f, err = dec.decode()
	if err != nil {
		return nil, nil, err
	}
	if len(f.Tail) > 0 {
		warn = errors.Union(warn, ErrTrailingData)
	}
	return f, warn, nil
}

type decoder struct {
	fr *parse.BinaryReader
	br *bytes.Reader
}

// decodeError wraps the reader's accumulated error, if any, with the offset
// at which decoding stopped.
func (d *decoder) decodeError() error {
	err := d.fr.Err()
	if err == nil {
		return nil
	}
	return DataError{Offset: d.fr.N(), Cause: err}
}

func (d *decoder) decode() (f *rrosave.File, err error) {
	f = &rrosave.File{}

	var magic [4]byte
	if d.fr.Bytes(magic[:]) {
		return nil, d.decodeError()
	}
	if string(magic[:]) != sig {
		return nil, ErrInvalidSig
	}

	if d.fr.Number(&f.SaveGameVersion) {
		return nil, d.decodeError()
	}
	if d.fr.Number(&f.PackageVersion) {
		return nil, d.decodeError()
	}
	if d.readEngineVersion(&f.EngineVersion) {
		return nil, d.decodeError()
	}

	if d.fr.Number(&f.CustomFormatVersion) {
		return nil, d.decodeError()
	}
	var count uint32
	if d.fr.Number(&count) {
		return nil, d.decodeError()
	}
	f.CustomFormats = make([]rrosave.CustomFormat, count)
	for i := range f.CustomFormats {
		if d.readCustomFormat(&f.CustomFormats[i]) {
			return nil, d.decodeError()
		}
	}

	if readString(d.fr, &f.SaveGameType) {
		return nil, d.decodeError()
	}

	// Property list. A property whose value is None terminates the list; it
	// is kept so that reencoding reproduces the terminator. An empty name
	// also terminates; its four zero length bytes belong to the tail.
	for d.br.Len() > 0 {
		var name string
		if readString(d.fr, &name) {
			return nil, d.decodeError()
		}
		if name == "" {
			f.Tail = append(f.Tail, 0, 0, 0, 0)
			break
		}

		value, failed := d.readValue(name)
		if failed {
			err := d.fr.Err()
			if err == nil {
				err = errors.New("value decode failed")
			}
			return nil, DataError{
				Offset: d.fr.N(),
				Cause:  PropertyError{Name: name, Cause: err},
			}
		}

		f.Properties = append(f.Properties, &rrosave.Property{
			Name:  name,
			Value: value,
		})
		if value.Type() == rrosave.TypeNone {
			break
		}
	}

	// Whatever remains is kept opaque so that the file reencodes
	// byte-identically.
	if d.br.Len() > 0 {
		rest := make([]byte, d.br.Len())
		if d.fr.Bytes(rest) {
			return nil, d.decodeError()
		}
		f.Tail = append(f.Tail, rest...)
	}

	return f, nil
}

func (d *decoder) readEngineVersion(v *rrosave.EngineVersion) (failed bool) {
	if d.fr.Number(&v.Major) {
		return true
	}
	if d.fr.Number(&v.Minor) {
		return true
	}
	if d.fr.Number(&v.Patch) {
		return true
	}
	if d.fr.Number(&v.Build) {
		return true
	}
	return readString(d.fr, &v.BuildID)
}

func (d *decoder) readCustomFormat(c *rrosave.CustomFormat) (failed bool) {
	var raw [16]byte
	if d.fr.Bytes(raw[:]) {
		return true
	}
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		return d.fr.Add(0, err)
	}
	c.ID = id
	return d.fr.Number(&c.Value)
}
