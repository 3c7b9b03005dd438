package gvas

import (
	"github.com/anaminus/parse"

	rrosave "github.com/the10thWiz/rro-track-editor"
)

// Wire names of the property types implemented by the codec. The outer
// "ArrayProperty" wrapper is shared by every array variant; the inner type
// name is the real discriminator.
const (
	typeStr    = "StrProperty"
	typeArray  = "ArrayProperty"
	typeBool   = "BoolProperty"
	typeInt    = "IntProperty"
	typeFloat  = "FloatProperty"
	typeText   = "TextProperty"
	typeStruct = "StructProperty"

	structVector  = "Vector"
	structRotator = "Rotator"
)

// Number of bytes of one serialized vector or rotator element.
const structElemSize = 12

// readValue reads the value of the property named name. An empty type name,
// or a clean end of stream before the type name, yields ValueNone.
func (d *decoder) readValue(name string) (rrosave.Value, bool) {
	if d.br.Len() == 0 {
		return rrosave.ValueNone{}, false
	}

	var typ string
	if readString(d.fr, &typ) {
		return nil, true
	}

	switch typ {
	case "":
		return rrosave.ValueNone{}, false
	case typeStr:
		return d.readStrProperty()
	case typeArray:
		return d.readArrayProperty(name)
	default:
		d.fr.Add(0, UnsupportedTypeError(typ))
		return nil, true
	}
}

func (d *decoder) readStrProperty() (rrosave.Value, bool) {
	var declared int64
	if d.fr.Number(&declared) {
		return nil, true
	}

	var flag uint8
	if d.fr.Number(&flag) {
		return nil, true
	}
	if flag != 0 {
		d.fr.Add(0, ErrUnsupportedFlag)
		return nil, true
	}

	start := d.fr.N()
	var s string
	if readString(d.fr, &s) {
		return nil, true
	}
	if d.fr.N()-start != declared {
		d.fr.Add(0, ErrSizeMismatch)
		return nil, true
	}

	return rrosave.ValueString(s), false
}

func (d *decoder) readArrayProperty(name string) (rrosave.Value, bool) {
	var declared int64
	if d.fr.Number(&declared) {
		return nil, true
	}

	var inner string
	if readString(d.fr, &inner) {
		return nil, true
	}

	var flag uint8
	if d.fr.Number(&flag) {
		return nil, true
	}
	if flag != 0 {
		d.fr.Add(0, ErrUnsupportedFlag)
		return nil, true
	}

	// The declared length covers the element count and everything after it.
	start := d.fr.N()

	var count uint32
	if d.fr.Number(&count) {
		return nil, true
	}

	var value rrosave.Value
	var failed bool
	switch inner {
	case typeBool:
		value, failed = d.readBoolElements(count)
	case typeInt:
		value, failed = d.readIntElements(count)
	case typeFloat:
		value, failed = d.readFloatElements(count)
	case typeStr:
		value, failed = d.readStringElements(count)
	case typeText:
		value, failed = d.readTextElements(count)
	case typeStruct:
		value, failed = d.readStructElements(name, count)
	default:
		d.fr.Add(0, UnsupportedTypeError(inner))
		return nil, true
	}
	if failed {
		return nil, true
	}

	if d.fr.N()-start != declared {
		d.fr.Add(0, ErrSizeMismatch)
		return nil, true
	}

	return value, false
}

func (d *decoder) readBoolElements(count uint32) (rrosave.Value, bool) {
	elems := make(rrosave.ValueBoolArray, count)
	raw := make([]byte, count)
	if d.fr.Bytes(raw) {
		return nil, true
	}
	for i, b := range raw {
		elems[i] = b != 0
	}
	return elems, false
}

func (d *decoder) readIntElements(count uint32) (rrosave.Value, bool) {
	elems := make(rrosave.ValueIntArray, count)
	for i := range elems {
		if d.fr.Number(&elems[i]) {
			return nil, true
		}
	}
	return elems, false
}

func (d *decoder) readFloatElements(count uint32) (rrosave.Value, bool) {
	elems := make(rrosave.ValueFloatArray, count)
	for i := range elems {
		if readFloat(d.fr, &elems[i]) {
			return nil, true
		}
	}
	return elems, false
}

func (d *decoder) readStringElements(count uint32) (rrosave.Value, bool) {
	elems := make(rrosave.ValueStringArray, count)
	for i := range elems {
		if readString(d.fr, &elems[i]) {
			return nil, true
		}
	}
	return elems, false
}

func (d *decoder) readTextElements(count uint32) (rrosave.Value, bool) {
	elems := make(rrosave.ValueTextArray, count)
	for i := range elems {
		var failed bool
		if elems[i], failed = d.readText(); failed {
			return nil, true
		}
	}
	return elems, false
}

// readStructElements reads the embedded header of a vector or rotator struct
// array, then its elements. The header repeats the property name and carries
// its own element payload size, both of which are cross-checked.
func (d *decoder) readStructElements(name string, count uint32) (rrosave.Value, bool) {
	var embedded string
	if readString(d.fr, &embedded) {
		return nil, true
	}
	if embedded != name {
		d.fr.Add(0, NameMismatchError{Outer: name, Embedded: embedded})
		return nil, true
	}

	var tag string
	if readString(d.fr, &tag) {
		return nil, true
	}
	if tag != typeStruct {
		d.fr.Add(0, UnsupportedTypeError(tag))
		return nil, true
	}

	var innerSize int64
	if d.fr.Number(&innerSize) {
		return nil, true
	}
	if innerSize != int64(count)*structElemSize {
		d.fr.Add(0, ErrSizeMismatch)
		return nil, true
	}

	var structName string
	if readString(d.fr, &structName) {
		return nil, true
	}

	var guid [16]byte
	if d.fr.Bytes(guid[:]) {
		return nil, true
	}
	if guid != [16]byte{} {
		d.fr.Add(0, ErrUnsupportedGUID)
		return nil, true
	}

	var pad uint8
	if d.fr.Number(&pad) {
		return nil, true
	}
	if pad != 0 {
		d.fr.Add(0, ErrUnsupportedFlag)
		return nil, true
	}

	switch structName {
	case structVector:
		elems := make(rrosave.ValueVectorArray, count)
		for i := range elems {
			if readFloat(d.fr, &elems[i].X) ||
				readFloat(d.fr, &elems[i].Y) ||
				readFloat(d.fr, &elems[i].Z) {
				return nil, true
			}
		}
		return elems, false
	case structRotator:
		elems := make(rrosave.ValueRotatorArray, count)
		for i := range elems {
			if readFloat(d.fr, &elems[i].Pitch) ||
				readFloat(d.fr, &elems[i].Yaw) ||
				readFloat(d.fr, &elems[i].Roll) {
				return nil, true
			}
		}
		return elems, false
	default:
		d.fr.Add(0, UnsupportedTypeError(structName))
		return nil, true
	}
}

////////////////////////////////////////////////////////////////

// writeValue writes the type name and body of a property value. Length
// prefixes are derived by serializing the variable-length payload first, so
// edits that change array lengths or names are accounted for structurally.
func (e *encoder) writeValue(name string, value rrosave.Value) (failed bool) {
	switch value := value.(type) {
	case rrosave.ValueNone:
		// An empty type name.
		return e.fw.Number(int32(0))
	case rrosave.ValueString:
		return e.writeStrProperty(string(value))
	case rrosave.ValueBoolArray:
		return e.writeArray(typeBool, func(bw *parse.BinaryWriter) bool {
			for _, b := range value {
				var f uint8
				if b {
					f = 1
				}
				if bw.Number(f) {
					return true
				}
			}
			return false
		}, len(value))
	case rrosave.ValueIntArray:
		return e.writeArray(typeInt, func(bw *parse.BinaryWriter) bool {
			for _, n := range value {
				if bw.Number(n) {
					return true
				}
			}
			return false
		}, len(value))
	case rrosave.ValueFloatArray:
		return e.writeArray(typeFloat, func(bw *parse.BinaryWriter) bool {
			for _, f := range value {
				if writeFloat(bw, f) {
					return true
				}
			}
			return false
		}, len(value))
	case rrosave.ValueStringArray:
		return e.writeArray(typeStr, func(bw *parse.BinaryWriter) bool {
			for _, s := range value {
				if writeString(bw, s) {
					return true
				}
			}
			return false
		}, len(value))
	case rrosave.ValueTextArray:
		return e.writeArray(typeText, func(bw *parse.BinaryWriter) bool {
			for _, t := range value {
				if writeText(bw, t) {
					return true
				}
			}
			return false
		}, len(value))
	case rrosave.ValueVectorArray:
		return e.writeStructArray(name, structVector, len(value), func(bw *parse.BinaryWriter) bool {
			for _, v := range value {
				if writeFloat(bw, v.X) || writeFloat(bw, v.Y) || writeFloat(bw, v.Z) {
					return true
				}
			}
			return false
		})
	case rrosave.ValueRotatorArray:
		return e.writeStructArray(name, structRotator, len(value), func(bw *parse.BinaryWriter) bool {
			for _, r := range value {
				if writeFloat(bw, r.Pitch) || writeFloat(bw, r.Yaw) || writeFloat(bw, r.Roll) {
					return true
				}
			}
			return false
		})
	default:
		return e.fw.Add(0, UnsupportedTypeError(value.Type().String()))
	}
}

func (e *encoder) writeStrProperty(s string) (failed bool) {
	if writeString(e.fw, typeStr) {
		return true
	}

	payload, failed := marshal(e.fw, func(bw *parse.BinaryWriter) bool {
		return writeString(bw, s)
	})
	if failed {
		return true
	}

	if e.fw.Number(int64(len(payload))) {
		return true
	}
	if e.fw.Number(uint8(0)) {
		return true
	}
	return e.fw.Bytes(payload)
}

// writeArray writes the shared ArrayProperty wrapper around a simple element
// payload. The declared length covers the element count and the payload.
func (e *encoder) writeArray(inner string, body func(*parse.BinaryWriter) bool, count int) (failed bool) {
	if writeString(e.fw, typeArray) {
		return true
	}

	payload, failed := marshal(e.fw, func(bw *parse.BinaryWriter) bool {
		if bw.Number(uint32(count)) {
			return true
		}
		return body(bw)
	})
	if failed {
		return true
	}

	if e.fw.Number(int64(len(payload))) {
		return true
	}
	if writeString(e.fw, inner) {
		return true
	}
	if e.fw.Number(uint8(0)) {
		return true
	}
	return e.fw.Bytes(payload)
}

// writeStructArray writes a vector or rotator array, including the embedded
// header that repeats the property name and the element payload size.
func (e *encoder) writeStructArray(name, structName string, count int, body func(*parse.BinaryWriter) bool) (failed bool) {
	return e.writeArray(typeStruct, func(bw *parse.BinaryWriter) bool {
		if writeString(bw, name) {
			return true
		}
		if writeString(bw, typeStruct) {
			return true
		}
		if bw.Number(int64(count) * structElemSize) {
			return true
		}
		if writeString(bw, structName) {
			return true
		}
		var zero [17]byte
		if bw.Bytes(zero[:]) {
			return true
		}
		return body(bw)
	}, count)
}
