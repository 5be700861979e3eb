package ingest

import (
	"errors"
	"testing"
)

func TestLocateHeaderSkipsPreamble(t *testing.T) {
	rows := [][]string{
		{"ACME Recruiting — Q3 intake"},
		{},
		{"Name", "Email", "Phone"},
		{"Alice", "alice@x.com", "5551234"},
	}
	hm, idx, err := LocateHeader(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 2 {
		t.Fatalf("expected header row 2 got %d", idx)
	}
	if hm[0] != "name" || hm[1] != "email" || hm[2] != "phone" {
		t.Fatalf("unexpected header map: %v", hm)
	}
}

func TestLocateHeaderNormalizesCells(t *testing.T) {
	rows := [][]string{{" E-mail Address ", "Phone #"}}
	hm, idx, err := LocateHeader(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected row 0 got %d", idx)
	}
	if hm[0] != "emailaddress" || hm[1] != "phone" {
		t.Fatalf("unexpected header map: %v", hm)
	}
}

func TestLocateHeaderTieResolvesToEarliest(t *testing.T) {
	// Both rows qualify; the first one must win even though the second
	// matches more keywords.
	rows := [][]string{
		{"Name", "Age"},
		{"Name", "Email", "Phone", "Experience", "Age"},
	}
	_, idx, err := LocateHeader(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected earliest qualifying row 0 got %d", idx)
	}
}

func TestLocateHeaderSingleKeywordNotEnough(t *testing.T) {
	rows := [][]string{{"Name"}, {"Alice"}}
	if _, _, err := LocateHeader(rows); !errors.Is(err, ErrHeaderNotFound) {
		t.Fatalf("expected ErrHeaderNotFound got %v", err)
	}
}

func TestLocateHeaderOutsideScanWindow(t *testing.T) {
	rows := make([][]string, 0, 25)
	for i := 0; i < 22; i++ {
		rows = append(rows, []string{"filler"})
	}
	rows = append(rows, []string{"Name", "Email"})
	if _, _, err := LocateHeader(rows); !errors.Is(err, ErrHeaderNotFound) {
		t.Fatalf("expected ErrHeaderNotFound for header past row %d, got %v", headerScanLimit, err)
	}
}
