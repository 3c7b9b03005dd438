package gvas

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	rrosave "github.com/the10thWiz/rro-track-editor"
)

// Test fixtures are built by hand so that the encoder is checked against
// known wire bytes, not against itself.

func wireString(s string) []byte {
	if s == "" {
		return []byte{0, 0, 0, 0}
	}
	b := binary.LittleEndian.AppendUint32(nil, uint32(len(s)+1))
	b = append(b, s...)
	return append(b, 0)
}

func wireU16(n uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, n)
}

func wireU32(n uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, n)
}

func wireU64(n uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, n)
}

func wireF32(f float32) []byte {
	return binary.LittleEndian.AppendUint32(nil, math.Float32bits(f))
}

// header is the container up to and including the save type, with no
// custom formats.
func header() []byte {
	var b []byte
	b = append(b, sig...)
	b = append(b, wireU32(2)...)
	b = append(b, wireU32(517)...)
	b = append(b, wireU16(4)...)
	b = append(b, wireU16(25)...)
	b = append(b, wireU16(4)...)
	b = append(b, wireU32(14469661)...)
	b = append(b, wireString("++UE4+Release-4.25")...)
	b = append(b, wireU32(3)...)
	b = append(b, wireU32(0)...)
	b = append(b, wireString("/Script/arr.arrSaveGame")...)
	return b
}

func terminator() []byte {
	var b []byte
	b = append(b, wireString("None")...)
	b = append(b, wireU32(0)...)
	return b
}

func floatArrayProperty(name string, elems ...float32) []byte {
	var payload []byte
	payload = append(payload, wireU32(uint32(len(elems)))...)
	for _, f := range elems {
		payload = append(payload, wireF32(f)...)
	}

	var b []byte
	b = append(b, wireString(name)...)
	b = append(b, wireString("ArrayProperty")...)
	b = append(b, wireU64(uint64(len(payload)))...)
	b = append(b, wireString("FloatProperty")...)
	b = append(b, 0)
	b = append(b, payload...)
	return b
}

func vectorArrayProperty(name, structName string, elems ...float32) []byte {
	var payload []byte
	payload = append(payload, wireU32(uint32(len(elems)/3))...)
	payload = append(payload, wireString(name)...)
	payload = append(payload, wireString("StructProperty")...)
	payload = append(payload, wireU64(uint64(len(elems)/3)*12)...)
	payload = append(payload, wireString(structName)...)
	payload = append(payload, make([]byte, 17)...)
	for _, f := range elems {
		payload = append(payload, wireF32(f)...)
	}

	var b []byte
	b = append(b, wireString(name)...)
	b = append(b, wireString("ArrayProperty")...)
	b = append(b, wireU64(uint64(len(payload)))...)
	b = append(b, wireString("StructProperty")...)
	b = append(b, 0)
	b = append(b, payload...)
	return b
}

func strProperty(name, value string) []byte {
	payload := wireString(value)

	var b []byte
	b = append(b, wireString(name)...)
	b = append(b, wireString("StrProperty")...)
	b = append(b, wireU64(uint64(len(payload)))...)
	b = append(b, 0)
	b = append(b, payload...)
	return b
}

func decodeBytes(t *testing.T, data []byte) (*rrosave.File, error) {
	t.Helper()
	f, warn, err := Decoder{}.Decode(bytes.NewReader(data))
	if warn != nil {
		t.Logf("warning: %s", warn)
	}
	return f, err
}

func reencode(t *testing.T, f *rrosave.File) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, f); err != nil {
		t.Fatalf("encode: %s", err)
	}
	return buf.Bytes()
}

func TestDecodeHeader(t *testing.T) {
	data := append(header(), terminator()...)
	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	if f.SaveGameVersion != 2 {
		t.Errorf("SaveGameVersion: expected 2, got %d", f.SaveGameVersion)
	}
	if f.PackageVersion != 517 {
		t.Errorf("PackageVersion: expected 517, got %d", f.PackageVersion)
	}
	if f.EngineVersion.Major != 4 || f.EngineVersion.Minor != 25 || f.EngineVersion.Patch != 4 {
		t.Errorf("unexpected engine version %v", f.EngineVersion)
	}
	if f.EngineVersion.Build != 14469661 {
		t.Errorf("Build: expected 14469661, got %d", f.EngineVersion.Build)
	}
	if f.EngineVersion.BuildID != "++UE4+Release-4.25" {
		t.Errorf("unexpected build ID %q", f.EngineVersion.BuildID)
	}
	if f.CustomFormatVersion != 3 {
		t.Errorf("CustomFormatVersion: expected 3, got %d", f.CustomFormatVersion)
	}
	if len(f.CustomFormats) != 0 {
		t.Errorf("expected no custom formats, got %d", len(f.CustomFormats))
	}
	if f.SaveGameType != "/Script/arr.arrSaveGame" {
		t.Errorf("unexpected save game type %q", f.SaveGameType)
	}
	if len(f.Properties) != 1 || f.Properties[0].Name != "None" {
		t.Fatalf("expected terminator property, got %v", f.Properties)
	}
	if f.Properties[0].Value.Type() != rrosave.TypeNone {
		t.Errorf("expected None value, got %s", f.Properties[0].Value.Type())
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestCustomFormatTable(t *testing.T) {
	guid := []byte{
		0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0,
		0x0f, 0xed, 0xcb, 0xa9, 0x87, 0x65, 0x43, 0x21,
	}

	var data []byte
	data = append(data, sig...)
	data = append(data, wireU32(2)...)
	data = append(data, wireU32(517)...)
	data = append(data, make([]byte, 2+2+2+4)...)
	data = append(data, wireString("")...)
	data = append(data, wireU32(3)...)
	data = append(data, wireU32(1)...)
	data = append(data, guid...)
	data = append(data, wireU32(9)...)
	data = append(data, wireString("/Script/arr.arrSaveGame")...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if len(f.CustomFormats) != 1 {
		t.Fatalf("expected 1 custom format, got %d", len(f.CustomFormats))
	}
	if f.CustomFormats[0].Value != 9 {
		t.Errorf("unexpected value %d", f.CustomFormats[0].Value)
	}
	if !bytes.Equal(f.CustomFormats[0].ID.Bytes(), guid) {
		t.Errorf("unexpected GUID %s", f.CustomFormats[0].ID)
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestDecodeBadSig(t *testing.T) {
	data := append(header(), terminator()...)
	data[0] = 'X'
	if _, err := decodeBytes(t, data); !errors.Is(err, ErrInvalidSig) {
		t.Fatalf("expected ErrInvalidSig, got %v", err)
	}
}

func TestFloatArrayRoundTrip(t *testing.T) {
	data := header()
	data = append(data, floatArrayProperty("SomeFloats", 1, 2.5)...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	v, ok := f.Get("SomeFloats").(rrosave.ValueFloatArray)
	if !ok {
		t.Fatalf("expected float array, got %T", f.Get("SomeFloats"))
	}
	if len(v) != 2 || v[0] != 1 || v[1] != 2.5 {
		t.Fatalf("unexpected elements %v", v)
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestVectorArrayRoundTrip(t *testing.T) {
	data := header()
	data = append(data, vectorArrayProperty("SplineLocationArray", "Vector",
		1, 2, 3,
		4, 5, 6,
	)...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	v, ok := f.Get("SplineLocationArray").(rrosave.ValueVectorArray)
	if !ok {
		t.Fatalf("expected vector array, got %T", f.Get("SplineLocationArray"))
	}
	expected := rrosave.ValueVectorArray{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 5, Z: 6},
	}
	if len(v) != len(expected) || v[0] != expected[0] || v[1] != expected[1] {
		t.Fatalf("unexpected elements %v", v)
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestRotatorArrayRoundTrip(t *testing.T) {
	data := header()
	data = append(data, vectorArrayProperty("SwitchRotationArray", "Rotator",
		0, 90, 0,
	)...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	v, ok := f.Get("SwitchRotationArray").(rrosave.ValueRotatorArray)
	if !ok {
		t.Fatalf("expected rotator array, got %T", f.Get("SwitchRotationArray"))
	}
	if len(v) != 1 || v[0] != (rrosave.Rotator{Pitch: 0, Yaw: 90, Roll: 0}) {
		t.Fatalf("unexpected elements %v", v)
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestStrPropertyRoundTrip(t *testing.T) {
	data := header()
	data = append(data, strProperty("SaveGameDate", "2021-07-10_02-04-12")...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	v, ok := f.Get("SaveGameDate").(rrosave.ValueString)
	if !ok {
		t.Fatalf("expected string, got %T", f.Get("SaveGameDate"))
	}
	if string(v) != "2021-07-10_02-04-12" {
		t.Fatalf("unexpected value %q", v)
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestUnknownStructType(t *testing.T) {
	data := header()
	data = append(data, vectorArrayProperty("Things", "Quat", 1, 2, 3)...)
	data = append(data, terminator()...)

	_, err := decodeBytes(t, data)
	var unsupported UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if string(unsupported) != "Quat" {
		t.Fatalf("unexpected type name %q", unsupported)
	}
}

func TestEmbeddedNameMismatch(t *testing.T) {
	prop := vectorArrayProperty("Inner", "Vector", 1, 2, 3)
	// Rename only the outer property so the embedded name disagrees.
	prop = append(wireString("Outer"), prop[len(wireString("Inner")):]...)

	data := header()
	data = append(data, prop...)
	data = append(data, terminator()...)

	_, err := decodeBytes(t, data)
	var mismatch NameMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected NameMismatchError, got %v", err)
	}
	if mismatch.Outer != "Outer" || mismatch.Embedded != "Inner" {
		t.Fatalf("unexpected names %v", mismatch)
	}
}

func TestDeclaredSizeMismatch(t *testing.T) {
	prop := floatArrayProperty("SomeFloats", 1, 2.5)
	// Corrupt the declared length. It sits right after the two name strings.
	offset := len(wireString("SomeFloats")) + len(wireString("ArrayProperty"))
	prop[offset]++

	data := header()
	data = append(data, prop...)
	data = append(data, terminator()...)

	_, err := decodeBytes(t, data)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestTrailingDataPreserved(t *testing.T) {
	tail := []byte{0xde, 0xad, 0xbe, 0xef}
	data := append(header(), terminator()...)
	data = append(data, tail...)

	f, warn, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if !errors.Is(warn, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData warning, got %v", warn)
	}
	if !bytes.Equal(f.Tail, tail) {
		t.Fatalf("unexpected tail % x", f.Tail)
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestMinimalFile(t *testing.T) {
	// Zeroed versions, no custom formats, empty save type, one float array.
	var data []byte
	data = append(data, sig...)
	data = append(data, make([]byte, 4+4+2+2+2+4)...)
	data = append(data, wireString("")...)
	data = append(data, wireU32(0)...)
	data = append(data, wireU32(0)...)
	data = append(data, wireString("")...)
	data = append(data, floatArrayProperty("X", 1, 2.5)...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	v, ok := f.Get("X").(rrosave.ValueFloatArray)
	if !ok || len(v) != 2 || v[0] != 1 || v[1] != 2.5 {
		t.Fatalf("unexpected value %v", f.Get("X"))
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestEmptyNameTerminator(t *testing.T) {
	// An empty property name ends the list; its zero length word and
	// everything after it belong to the tail.
	data := header()
	data = append(data, wireString("")...)
	data = append(data, 0xab, 0xcd)

	f, warn, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if !errors.Is(warn, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData warning, got %v", warn)
	}
	if len(f.Properties) != 0 {
		t.Fatalf("expected no properties, got %d", len(f.Properties))
	}
	if !bytes.Equal(f.Tail, []byte{0, 0, 0, 0, 0xab, 0xcd}) {
		t.Fatalf("unexpected tail % x", f.Tail)
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestTextArrayRoundTrip(t *testing.T) {
	base := append(header(), terminator()...)
	f, err := decodeBytes(t, base)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	f.Properties = append([]*rrosave.Property{{
		Name: "SplineMarkNamesArray",
		Value: rrosave.ValueTextArray{
			rrosave.NewSimpleText("Mile 5"),
			rrosave.NewFormattedText("Summit", "East"),
			{Kind: rrosave.TextNone, Flags: 2},
		},
	}}, f.Properties...)

	out := reencode(t, f)
	g, err := decodeBytes(t, out)
	if err != nil {
		t.Fatalf("decode reencoded: %s", err)
	}

	v, ok := g.Get("SplineMarkNamesArray").(rrosave.ValueTextArray)
	if !ok || len(v) != 3 {
		t.Fatalf("unexpected value %v", g.Get("SplineMarkNamesArray"))
	}
	want := f.Get("SplineMarkNamesArray").(rrosave.ValueTextArray)
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("text %d: expected %#v, got %#v", i, want[i], v[i])
		}
	}

	if again := reencode(t, g); !bytes.Equal(again, out) {
		t.Error("second encode differs from first")
	}
}

func TestStringArrayRoundTrip(t *testing.T) {
	var payload []byte
	payload = append(payload, wireU32(2)...)
	payload = append(payload, wireString("alpha")...)
	payload = append(payload, wireString("beta")...)

	var prop []byte
	prop = append(prop, wireString("Names")...)
	prop = append(prop, wireString("ArrayProperty")...)
	prop = append(prop, wireU64(uint64(len(payload)))...)
	prop = append(prop, wireString("StrProperty")...)
	prop = append(prop, 0)
	prop = append(prop, payload...)

	data := header()
	data = append(data, prop...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	v, ok := f.Get("Names").(rrosave.ValueStringArray)
	if !ok || len(v) != 2 || v[0] != "alpha" || v[1] != "beta" {
		t.Fatalf("unexpected value %v", f.Get("Names"))
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestBoolIntArrayRoundTrip(t *testing.T) {
	var boolPayload []byte
	boolPayload = append(boolPayload, wireU32(3)...)
	boolPayload = append(boolPayload, 1, 0, 1)

	var intPayload []byte
	intPayload = append(intPayload, wireU32(2)...)
	intPayload = append(intPayload, wireU32(7)...)
	intPayload = append(intPayload, 0xff, 0xff, 0xff, 0xff)

	var props []byte
	props = append(props, wireString("Flags")...)
	props = append(props, wireString("ArrayProperty")...)
	props = append(props, wireU64(uint64(len(boolPayload)))...)
	props = append(props, wireString("BoolProperty")...)
	props = append(props, 0)
	props = append(props, boolPayload...)
	props = append(props, wireString("Codes")...)
	props = append(props, wireString("ArrayProperty")...)
	props = append(props, wireU64(uint64(len(intPayload)))...)
	props = append(props, wireString("IntProperty")...)
	props = append(props, 0)
	props = append(props, intPayload...)

	data := header()
	data = append(data, props...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	flags, ok := f.Get("Flags").(rrosave.ValueBoolArray)
	if !ok || len(flags) != 3 || !flags[0] || flags[1] || !flags[2] {
		t.Fatalf("unexpected value %v", f.Get("Flags"))
	}
	codes, ok := f.Get("Codes").(rrosave.ValueIntArray)
	if !ok || len(codes) != 2 || codes[0] != 7 || codes[1] != -1 {
		t.Fatalf("unexpected value %v", f.Get("Codes"))
	}

	if out := reencode(t, f); !bytes.Equal(out, data) {
		t.Error("reencoded bytes differ")
	}
}

func TestEncodeLengthsFollowEdits(t *testing.T) {
	data := header()
	data = append(data, floatArrayProperty("SomeFloats", 1, 2.5)...)
	data = append(data, terminator()...)

	f, err := decodeBytes(t, data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	// Growing the array must grow the declared length on reencode.
	f.Set("SomeFloats", rrosave.ValueFloatArray{1, 2.5, -1})

	expected := header()
	expected = append(expected, floatArrayProperty("SomeFloats", 1, 2.5, -1)...)
	expected = append(expected, terminator()...)

	if out := reencode(t, f); !bytes.Equal(out, expected) {
		t.Error("reencoded bytes differ from hand-built expectation")
	}
}
