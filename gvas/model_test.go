package gvas

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/anaminus/parse"
)

func readStringBytes(t *testing.T, b string) (s string, err error) {
	t.Helper()
	fr := parse.NewBinaryReader(strings.NewReader(b))
	if readString(fr, &s) {
		return s, fr.Err()
	}
	return s, nil
}

func writeStringBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)
	if writeString(fw, s) {
		t.Fatalf("write %q: %s", s, fw.Err())
	}
	return buf.Bytes()
}

func TestStringCodepage(t *testing.T) {
	s, err := readStringBytes(t, "\x02\x00\x00\x00A\x00")
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if s != "A" {
		t.Fatalf("expected %q, got %q", "A", s)
	}

	if b := writeStringBytes(t, "A"); !bytes.Equal(b, []byte("\x02\x00\x00\x00A\x00")) {
		t.Fatalf("unexpected wire bytes % x", b)
	}
}

func TestStringEmpty(t *testing.T) {
	s, err := readStringBytes(t, "\x00\x00\x00\x00")
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if s != "" {
		t.Fatalf("expected empty string, got %q", s)
	}

	if b := writeStringBytes(t, ""); !bytes.Equal(b, []byte("\x00\x00\x00\x00")) {
		t.Fatalf("unexpected wire bytes % x", b)
	}
}

func TestStringNonASCII(t *testing.T) {
	// 0xE9 is e-acute in Windows-1252.
	s, err := readStringBytes(t, "\x02\x00\x00\x00\xe9\x00")
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if s != "é" {
		t.Fatalf("expected %q, got %q", "é", s)
	}

	if b := writeStringBytes(t, "é"); !bytes.Equal(b, []byte("\x02\x00\x00\x00\xe9\x00")) {
		t.Fatalf("unexpected wire bytes % x", b)
	}
}

func TestStringWide(t *testing.T) {
	// Length -2: one UTF-16 unit plus the two-byte terminator.
	s, err := readStringBytes(t, "\xfe\xff\xff\xffA\x00\x00\x00")
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if s != "A" {
		t.Fatalf("expected %q, got %q", "A", s)
	}
}

func TestStringMissingTerminator(t *testing.T) {
	_, err := readStringBytes(t, "\x02\x00\x00\x00AB")
	if !errors.Is(err, ErrMalformedString) {
		t.Fatalf("expected ErrMalformedString, got %v", err)
	}
}

func TestStringTruncated(t *testing.T) {
	_, err := readStringBytes(t, "\x10\x00\x00\x00AB")
	if err == nil {
		t.Fatal("expected error for truncated string")
	}
}

func TestFloatRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)
	if writeFloat(fw, 2.5) {
		t.Fatalf("write: %s", fw.Err())
	}
	if !bytes.Equal(buf.Bytes(), []byte("\x00\x00\x20\x40")) {
		t.Fatalf("unexpected wire bytes % x", buf.Bytes())
	}

	fr := parse.NewBinaryReader(bytes.NewReader(buf.Bytes()))
	var f float32
	if readFloat(fr, &f) {
		t.Fatalf("read: %s", fr.Err())
	}
	if f != 2.5 {
		t.Fatalf("expected 2.5, got %g", f)
	}
}
