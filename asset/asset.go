// Package asset carries an embedded empty save file, used as the starting
// point for new tracks.
package asset

import (
	"bytes"
	_ "embed"

	rrosave "github.com/the10thWiz/rro-track-editor"
	"github.com/the10thWiz/rro-track-editor/gvas"
)

//go:embed default.sav
var defaultSave []byte

// Bytes returns a copy of the serialized empty save.
func Bytes() []byte {
	b := make([]byte, len(defaultSave))
	copy(b, defaultSave)
	return b
}

// Default decodes the embedded empty save. The result holds every spline and
// switch property with zero elements, ready for track.SetCurves and
// track.SetSwitches.
func Default() (*rrosave.File, error) {
	f, _, err := gvas.Decoder{}.Decode(bytes.NewReader(defaultSave))
	return f, err
}
