package rrosave

import (
	"strconv"
	"strings"
)

// Type identifies the variant held by a Value.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeNone
	TypeString
	TypeStringArray
	TypeIntArray
	TypeBoolArray
	TypeFloatArray
	TypeTextArray
	TypeVectorArray
	TypeRotatorArray
)

var typeStrings = map[Type]string{
	TypeNone:         "None",
	TypeString:       "String",
	TypeStringArray:  "StringArray",
	TypeIntArray:     "IntArray",
	TypeBoolArray:    "BoolArray",
	TypeFloatArray:   "FloatArray",
	TypeTextArray:    "TextArray",
	TypeVectorArray:  "VectorArray",
	TypeRotatorArray: "RotatorArray",
}

// String returns a string representation of the type. If the type is not
// valid, then the returned value will be "Invalid".
func (t Type) String() string {
	s, ok := typeStrings[t]
	if !ok {
		return "Invalid"
	}
	return s
}

// Value holds the value of a property. Every variant that appears in a save
// file implements this interface; the set of variants is closed, so decoding
// a property either yields one of the types below or fails.
type Value interface {
	// Type returns an identifier for the type.
	Type() Type

	// String returns a string representation of the current value.
	String() string

	// Copy returns a copy of the value, which can be safely modified.
	Copy() Value
}

////////////////////////////////////////////////////////////////

// ValueNone is the empty value. It terminates the property list of a save
// file and carries no data.
type ValueNone struct{}

func (ValueNone) Type() Type {
	return TypeNone
}

func (ValueNone) String() string {
	return "None"
}

func (v ValueNone) Copy() Value {
	return v
}

////////////////////////////////////////////////////////////////

// ValueString is a single string.
type ValueString string

func (ValueString) Type() Type {
	return TypeString
}

func (v ValueString) String() string {
	return string(v)
}

func (v ValueString) Copy() Value {
	return v
}

////////////////////////////////////////////////////////////////

// ValueStringArray is a homogeneous array of strings.
type ValueStringArray []string

func (ValueStringArray) Type() Type {
	return TypeStringArray
}

func (v ValueStringArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(s))
	}
	b.WriteByte(']')
	return b.String()
}

func (v ValueStringArray) Copy() Value {
	c := make(ValueStringArray, len(v))
	copy(c, v)
	return c
}

////////////////////////////////////////////////////////////////

// ValueIntArray is a homogeneous array of 32-bit integers.
type ValueIntArray []int32

func (ValueIntArray) Type() Type {
	return TypeIntArray
}

func (v ValueIntArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.Write(strconv.AppendInt(nil, int64(n), 10))
	}
	b.WriteByte(']')
	return b.String()
}

func (v ValueIntArray) Copy() Value {
	c := make(ValueIntArray, len(v))
	copy(c, v)
	return c
}

////////////////////////////////////////////////////////////////

// ValueBoolArray is a homogeneous array of booleans.
type ValueBoolArray []bool

func (ValueBoolArray) Type() Type {
	return TypeBoolArray
}

func (v ValueBoolArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatBool(f))
	}
	b.WriteByte(']')
	return b.String()
}

func (v ValueBoolArray) Copy() Value {
	c := make(ValueBoolArray, len(v))
	copy(c, v)
	return c
}

////////////////////////////////////////////////////////////////

// ValueFloatArray is a homogeneous array of 32-bit floats.
type ValueFloatArray []float32

func (ValueFloatArray) Type() Type {
	return TypeFloatArray
}

func (v ValueFloatArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}

func (v ValueFloatArray) Copy() Value {
	c := make(ValueFloatArray, len(v))
	copy(c, v)
	return c
}

////////////////////////////////////////////////////////////////

// ValueTextArray is a homogeneous array of localized text values.
type ValueTextArray []Text

func (ValueTextArray) Type() Type {
	return TypeTextArray
}

func (v ValueTextArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (v ValueTextArray) Copy() Value {
	c := make(ValueTextArray, len(v))
	copy(c, v)
	return c
}

////////////////////////////////////////////////////////////////

// ValueVectorArray is a homogeneous array of 3D vectors.
type ValueVectorArray []Vector

func (ValueVectorArray) Type() Type {
	return TypeVectorArray
}

func (v ValueVectorArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (v ValueVectorArray) Copy() Value {
	c := make(ValueVectorArray, len(v))
	copy(c, v)
	return c
}

////////////////////////////////////////////////////////////////

// ValueRotatorArray is a homogeneous array of rotators. The wire layout is
// identical to ValueVectorArray; only the declared struct name differs.
type ValueRotatorArray []Rotator

func (ValueRotatorArray) Type() Type {
	return TypeRotatorArray
}

func (v ValueRotatorArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (v ValueRotatorArray) Copy() Value {
	c := make(ValueRotatorArray, len(v))
	copy(c, v)
	return c
}
