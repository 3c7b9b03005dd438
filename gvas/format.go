// Package gvas implements a decoder and encoder for Unreal Engine's GVAS
// save-game format as written by Railroads Online.
//
// The easiest way to decode and encode files is through the functions
// Deserialize, Serialize, ReadFile, and WriteFile. These convert directly
// between byte streams and File structures specified by the rrosave package.
package gvas

import (
	"io"
	"os"
	"path/filepath"

	rrosave "github.com/the10thWiz/rro-track-editor"
)

// Deserialize decodes data from r into a file structure. Warnings are
// discarded; use Decoder directly to receive them.
func Deserialize(r io.Reader) (f *rrosave.File, err error) {
	f, _, err = Decoder{}.Decode(r)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Serialize encodes the file structure to w.
func Serialize(w io.Writer, f *rrosave.File) (err error) {
	return Encoder{}.Encode(w, f)
}

// ReadFile decodes the save file at the given path.
func ReadFile(name string) (f *rrosave.File, warn, err error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	return Decoder{}.Decode(file)
}

// WriteFile encodes f to a temporary file in the target directory, then
// renames it over the given path. A failed encode leaves an existing file at
// the path untouched.
func WriteFile(name string, f *rrosave.File) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = (Encoder{}).Encode(tmp, f); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}
