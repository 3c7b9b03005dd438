package gvas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// Indicates an unexpected file signature.
	ErrInvalidSig = errors.New("invalid signature")
	// Indicates a string without its mandatory NUL terminator.
	ErrMalformedString = errors.New("string is not NUL-terminated")
	// Indicates a property flag byte with an unexpected non-zero value.
	ErrUnsupportedFlag = errors.New("unsupported property flag")
	// Indicates a non-zero GUID on a struct array, which the codec does not
	// implement.
	ErrUnsupportedGUID = errors.New("unsupported non-zero struct GUID")
	// Indicates a serialized text value outside the two shapes the game
	// produces.
	ErrUnsupportedTextFormat = errors.New("unsupported text format")
	// Indicates a declared payload size that does not match the bytes
	// actually occupied by the payload.
	ErrSizeMismatch = errors.New("declared size does not match payload")
	// Indicates that the file has bytes after the property list. The bytes
	// are preserved; this is a warning, not an error.
	ErrTrailingData = errors.New("unrecognized data after property list")
)

// UnsupportedTypeError indicates a property or array element type not
// implemented by the codec.
type UnsupportedTypeError string

func (err UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported property type %q", string(err))
}

// NameMismatchError indicates a struct array whose embedded property name
// does not match the name of the enclosing property.
type NameMismatchError struct {
	// Outer is the name of the enclosing property.
	Outer string
	// Embedded is the name found inside the struct array header.
	Embedded string
}

func (err NameMismatchError) Error() string {
	return fmt.Sprintf("embedded name %q does not match property name %q", err.Embedded, err.Outer)
}

// PropertyError wraps an error that occurred while decoding or encoding a
// named property.
type PropertyError struct {
	// Name is the name of the property.
	Name string

	Cause error
}

func (err PropertyError) Error() string {
	if err.Cause == nil {
		return fmt.Sprintf("property %q", err.Name)
	}
	return fmt.Sprintf("property %q: %s", err.Name, err.Cause.Error())
}

func (err PropertyError) Unwrap() error {
	return err.Cause
}

// DataError wraps an error that occurred while decoding or encoding byte
// data.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}
