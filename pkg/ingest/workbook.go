package ingest

import (
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"
)

// Workbook is the parsed view of one uploaded spreadsheet: the primary
// sheet's raw cell grid plus every embedded image with its anchor row.
type Workbook struct {
	Rows   [][]string
	Images []EmbeddedImage
}

// ReadWorkbook parses xlsx bytes into a Workbook. Only the first sheet is
// read; recruiting workbooks in the wild keep everything on one sheet.
func ReadWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	wb := &Workbook{Rows: rows}

	cells, err := f.GetPictureCells(sheet)
	if err != nil {
		// Rows are still usable; ingestion proceeds without photos.
		log.Printf("ingest: enumerate pictures: %v", err)
		return wb, nil
	}
	for _, cell := range cells {
		pics, err := f.GetPictures(sheet, cell)
		if err != nil {
			log.Printf("ingest: read picture at %s: %v", cell, err)
			continue
		}
		_, rowNum, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			continue
		}
		for _, p := range pics {
			wb.Images = append(wb.Images, EmbeddedImage{
				Row:  rowNum - 1,
				Data: p.File,
				Hint: p.Extension,
			})
		}
	}
	return wb, nil
}
