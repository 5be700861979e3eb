package ingest

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/xuri/excelize/v2"
)

// buildFixtureWorkbook writes a small recruiting sheet: two preamble rows,
// the header at sheet row 3, one data row at sheet row 4 with an embedded
// photo anchored next to it.
func buildFixtureWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ACME Recruiting"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if err := f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Name", "Email", "Phone"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if err := f.SetSheetRow("Sheet1", "A4", &[]interface{}{"Alice", "alice@x.com", "5551234"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	var pic bytes.Buffer
	img := imaging.New(8, 8, color.NRGBA{200, 30, 30, 255})
	if err := imaging.Encode(&pic, img, imaging.PNG); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := f.AddPictureFromBytes("Sheet1", "D4", &excelize.Picture{Extension: ".png", File: pic.Bytes()}); err != nil {
		t.Fatalf("add picture: %v", err)
	}
	out, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return out.Bytes()
}

func TestReadWorkbookRoundTrip(t *testing.T) {
	wb, err := ReadWorkbook(bytes.NewReader(buildFixtureWorkbook(t)))
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	if len(wb.Rows) < 4 {
		t.Fatalf("expected at least 4 rows got %d", len(wb.Rows))
	}
	if wb.Rows[2][0] != "Name" || wb.Rows[3][1] != "alice@x.com" {
		t.Fatalf("unexpected rows: %v", wb.Rows)
	}
	if len(wb.Images) != 1 {
		t.Fatalf("expected 1 embedded image got %d", len(wb.Images))
	}
	img := wb.Images[0]
	if img.Row != 3 {
		t.Fatalf("expected image anchored at sheet row 3 got %d", img.Row)
	}
	if sniffImageFormat(img.Data, img.Hint) != "png" {
		t.Fatal("embedded image did not round-trip as png")
	}
}

func TestRunOnRealWorkbook(t *testing.T) {
	wb, err := ReadWorkbook(bytes.NewReader(buildFixtureWorkbook(t)))
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	store := newFakeStore()
	sink := newFakeSink()
	report, err := Run(wb, Options{Store: store, Sink: sink, PhotoDir: "public/candidates", CreatedBy: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Added != 1 || len(report.Errors) != 0 {
		t.Fatalf("expected added=1 errors=0 got %+v", report)
	}
	if len(store.inserted) != 1 || store.inserted[0].PhotoPath == "" {
		t.Fatalf("inserted record missing photo: %+v", store.inserted)
	}
}
