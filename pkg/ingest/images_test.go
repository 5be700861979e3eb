package ingest

import (
	"strings"
	"testing"
)

func TestSniffImageFormatPrefersContent(t *testing.T) {
	// PNG magic with a jpg hint must resolve to png.
	if got := sniffImageFormat(pngBytes(16), "jpg"); got != "png" {
		t.Fatalf("expected png got %s", got)
	}
	jpg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
	if got := sniffImageFormat(jpg, "png"); got != "jpg" {
		t.Fatalf("expected jpg got %s", got)
	}
	gif := []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}
	if got := sniffImageFormat(gif, ""); got != "gif" {
		t.Fatalf("expected gif got %s", got)
	}
	// Unknown bytes keep the (normalized) hint.
	if got := sniffImageFormat([]byte{0x00, 0x01, 0x02, 0x03}, ".BMP"); got != "bmp" {
		t.Fatalf("expected bmp got %s", got)
	}
}

func TestExtractImagesMapsRows(t *testing.T) {
	sink := newFakeSink()
	m := ExtractImages([]EmbeddedImage{
		{Row: 3, Data: pngBytes(100), Hint: "png"},
		{Row: 7, Data: pngBytes(100), Hint: "png"},
	}, sink, "public/candidates")
	if len(m) != 2 {
		t.Fatalf("expected 2 entries got %d", len(m))
	}
	for _, row := range []int{3, 7} {
		p, ok := m[row]
		if !ok {
			t.Fatalf("missing entry for row %d", row)
		}
		if !strings.HasPrefix(p, "public/candidates/") || !strings.HasSuffix(p, ".png") {
			t.Fatalf("unexpected path %s", p)
		}
		if _, stored := sink.blobs[p]; !stored {
			t.Fatalf("blob %s not stored", p)
		}
	}
}

func TestExtractImagesLargerImageWinsRowConflict(t *testing.T) {
	sink := newFakeSink()
	m := ExtractImages([]EmbeddedImage{
		{Row: 2, Data: pngBytes(500), Hint: "png"},
		{Row: 2, Data: pngBytes(2000), Hint: "png"},
	}, sink, "public/candidates")
	if len(sink.blobs) != 1 {
		t.Fatalf("expected exactly one stored blob, got %d", len(sink.blobs))
	}
	if got := len(sink.blobs[m[2]]); got != 2000 {
		t.Fatalf("expected the 2000-byte image to survive, got %d bytes", got)
	}
}

func TestExtractImagesSmallerLaterImageIgnored(t *testing.T) {
	sink := newFakeSink()
	m := ExtractImages([]EmbeddedImage{
		{Row: 2, Data: pngBytes(2000), Hint: "png"},
		{Row: 2, Data: pngBytes(500), Hint: "png"},
	}, sink, "public/candidates")
	if len(sink.blobs) != 1 {
		t.Fatalf("expected exactly one stored blob, got %d", len(sink.blobs))
	}
	if got := len(sink.blobs[m[2]]); got != 2000 {
		t.Fatalf("expected the 2000-byte image to survive, got %d bytes", got)
	}
}

func TestExtractImagesSkipsVectorFormats(t *testing.T) {
	sink := newFakeSink()
	m := ExtractImages([]EmbeddedImage{
		{Row: 1, Data: []byte{0x01, 0x00, 0x00, 0x00}, Hint: "emf"},
	}, sink, "public/candidates")
	if len(m) != 0 || len(sink.blobs) != 0 {
		t.Fatalf("vector image must be skipped silently, got map=%v blobs=%d", m, len(sink.blobs))
	}
}
