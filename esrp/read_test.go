package esrp

import (
	"bytes"
	"testing"
)

func TestParseLatin1Fallback(t *testing.T) {
	f, err := ParseFile("testdata/latin1.dat")
	if err != nil {
		t.Fatalf("Failed to parse Latin-1 encoded file: %v", err)
	}
	if f.TraceCount() != 1 {
		t.Fatalf("TraceCount() = %d, want 1", f.TraceCount())
	}
	if got := f.Traces[0].YUnit(); got != "dBµV" {
		t.Errorf("YUnit() = %q, want %q", got, "dBµV")
	}
	if got := f.Traces[0].Data.PointCount(); got != 2 {
		t.Errorf("PointCount() = %d, want 2", got)
	}
}

func TestParseBinaryInputDecodingError(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte{0x80, 0x81, 0x82, 0x83}))
	if err == nil {
		t.Fatal("expected decoding error, got nil")
	}
	if !IsKind(err, KindDecoding) {
		t.Errorf("expected KindDecoding, got %v", err)
	}
}

func TestParseNulBytesDecodingError(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("Start;150000;\x00\x00\x00")))
	if err == nil {
		t.Fatal("expected decoding error, got nil")
	}
	if !IsKind(err, KindDecoding) {
		t.Errorf("expected KindDecoding, got %v", err)
	}
}

func TestParseFileNotFound(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.dat")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !IsKind(err, KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}
