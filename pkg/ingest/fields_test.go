package ingest

import "testing"

func TestMapFieldsSynonyms(t *testing.T) {
	header := HeaderMap{0: "candidatesname", 1: "emailaddress", 2: "mobile", 3: "yearsofexperience", 4: "ageyrs", 5: "previouscompany"}
	row := []string{"Jane Doe", "jane@x.com", "0812345678", "4.5", "29", "Initech"}
	d := MapFields(row, header)
	if d.Name != "Jane Doe" || d.Email != "jane@x.com" || d.Phone != "0812345678" {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if d.Experience != "4.5" || d.Age != "29" || d.Previous != "Initech" {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestMapFieldsSynonymPriority(t *testing.T) {
	// "phone" outranks "contact" regardless of column order.
	header := HeaderMap{0: "contact", 1: "phone"}
	d := MapFields([]string{"111", "222"}, header)
	if d.Phone != "222" {
		t.Fatalf("expected phone column to win, got %q", d.Phone)
	}
}

func TestMapFieldsEmptyCellFallsThrough(t *testing.T) {
	header := HeaderMap{0: "phone", 1: "mobile"}
	d := MapFields([]string{"  ", "999"}, header)
	if d.Phone != "999" {
		t.Fatalf("expected fallthrough to mobile, got %q", d.Phone)
	}
}

func TestMapFieldsUnresolvedStaysEmpty(t *testing.T) {
	header := HeaderMap{0: "name"}
	d := MapFields([]string{"Bob"}, header)
	if d.Email != "" || d.Phone != "" || d.Age != "" {
		t.Fatalf("expected unresolved fields empty: %+v", d)
	}
}
