package track

import (
	"fmt"

	rrosave "github.com/the10thWiz/rro-track-editor"
	"github.com/the10thWiz/rro-track-editor/errors"
)

var (
	// ErrShortCurve indicates a curve with fewer than two control points.
	ErrShortCurve = errors.New("curve has fewer than two control points")
	// ErrVisibilityLength indicates a curve whose visibility flags do not
	// cover exactly one segment per pair of adjacent control points.
	ErrVisibilityLength = errors.New("visibility length must be one less than control point count")
)

// MissingPropertyError indicates that a property the projection requires is
// absent from the file.
type MissingPropertyError string

func (err MissingPropertyError) Error() string {
	return "missing property " + string(err)
}

// WrongTypeError indicates a property whose value does not have the expected
// type.
type WrongTypeError struct {
	Name     string
	Expected rrosave.Type
	Got      rrosave.Type
}

func (err WrongTypeError) Error() string {
	return fmt.Sprintf("property %s: expected %s, got %s", err.Name, err.Expected, err.Got)
}

// LengthMismatchError indicates parallel arrays whose lengths disagree.
type LengthMismatchError struct {
	Name     string
	Expected int
	Got      int
}

func (err LengthMismatchError) Error() string {
	return fmt.Sprintf("property %s: expected %d elements, got %d", err.Name, err.Expected, err.Got)
}

// UnknownCodeError indicates a type code with no known meaning.
type UnknownCodeError struct {
	Name string
	Code int32
}

func (err UnknownCodeError) Error() string {
	return fmt.Sprintf("property %s: unknown type code %d", err.Name, err.Code)
}

// IndexError indicates a control point or visibility index range that does
// not address the data arrays correctly.
type IndexError struct {
	Name  string
	Index int
	Start int32
	End   int32
	Len   int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("property %s: record %d: range [%d, %d] out of bounds for %d elements",
		err.Name, err.Index, err.Start, err.End, err.Len)
}

// RecordError wraps an error with the index of the record it occurred in.
type RecordError struct {
	Index int
	Cause error
}

func (err RecordError) Error() string {
	if err.Cause == nil {
		return fmt.Sprintf("record %d", err.Index)
	}
	return fmt.Sprintf("record %d: %s", err.Index, err.Cause)
}

func (err RecordError) Unwrap() error {
	return err.Cause
}
