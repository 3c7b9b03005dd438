// The rrosave package handles the decoding, encoding, and manipulation of
// Railroads Online save files.
//
// A save file is a GVAS container: a header with version information, a
// custom-format table, and an ordered list of named, typed properties. The
// decoded form of a file is the File struct. Property values are represented
// by the Value interface; every type that appears in a save implements it,
// and is prefixed with "Value".
//
// Files are decoded from and encoded to bytes by the "gvas" sub-package.
// Property order is significant: the encoder emits properties in the order
// they were decoded, so a decode/encode cycle with no edits reproduces the
// input byte for byte.
//
// The "track" sub-package projects the spline and switch parallel-array
// properties into per-entity records.
package rrosave

import (
	uuid "github.com/satori/go.uuid"
)

// EngineVersion identifies the engine build that wrote a save file.
type EngineVersion struct {
	Major uint16
	Minor uint16
	Patch uint16
	Build uint32

	// BuildID is a free-form build identifier string.
	BuildID string
}

// CustomFormat is one entry of the container's custom-format table. Entries
// are opaque to this package; they are preserved across a decode/encode
// cycle.
type CustomFormat struct {
	// ID identifies the custom format.
	ID uuid.UUID

	// Value is the version of the custom format.
	Value uint32
}

// Property is a single named, typed value within a save file.
type Property struct {
	// Name is the lookup key of the property. Names are expected to be
	// unique within a file, though this is not enforced; lookups return the
	// first match.
	Name string

	// Value is the current value of the property.
	Value Value
}

// File represents a fully decoded save file.
type File struct {
	// SaveGameVersion and PackageVersion are the container's two leading
	// version fields.
	SaveGameVersion uint32
	PackageVersion  uint32

	// EngineVersion identifies the engine build that wrote the file.
	EngineVersion EngineVersion

	// CustomFormatVersion is the version of the custom-format table.
	CustomFormatVersion uint32

	// CustomFormats is the custom-format table.
	CustomFormats []CustomFormat

	// SaveGameType names the save-game class within the game.
	SaveGameType string

	// Properties is the ordered property list, including the terminating
	// "None" property when the file contains one.
	Properties []*Property

	// Tail holds any bytes that follow the property list. Their purpose is
	// unknown; they are preserved so that encoding reproduces the input.
	Tail []byte
}

// Get returns the value of the first property with the given name, or nil if
// no such property exists.
func (f *File) Get(name string) Value {
	for _, p := range f.Properties {
		if p.Name == name {
			return p.Value
		}
	}
	return nil
}

// Set replaces the value of the first property with the given name, keeping
// the property's position in the list. It returns false if no such property
// exists; Set never appends.
func (f *File) Set(name string, value Value) bool {
	for _, p := range f.Properties {
		if p.Name == name {
			p.Value = value
			return true
		}
	}
	return false
}

// Copy returns a deep copy of the file.
func (f *File) Copy() *File {
	c := *f
	c.CustomFormats = make([]CustomFormat, len(f.CustomFormats))
	copy(c.CustomFormats, f.CustomFormats)
	c.Properties = make([]*Property, len(f.Properties))
	for i, p := range f.Properties {
		c.Properties[i] = &Property{Name: p.Name, Value: p.Value.Copy()}
	}
	c.Tail = make([]byte, len(f.Tail))
	copy(c.Tail, f.Tail)
	return &c
}
