// Package ingest reconciles human-authored recruiting workbooks into
// validated candidate records: it locates the header row, maps synonym
// columns onto canonical fields, extracts embedded photos by sheet row,
// recovers contact fields from composite free-text cells, and deduplicates
// against the backing store. Heuristics are bounded and best-effort; every
// skipped row lands in the returned report.
package ingest

import (
	"fmt"
	"strings"
)

// Report summarizes one ingestion run. Added counts both fresh inserts and
// photo patches onto existing records.
type Report struct {
	Added  int      `json:"added"`
	Errors []string `json:"errors"`
}

// Options carries the per-run collaborators and caller identity. Each run
// builds its own state from these, so independent uploads can be processed
// by independent pipeline instances.
type Options struct {
	Store     RecordStore
	Sink      BlobSink
	PhotoDir  string // blob directory for extracted photos
	CreatedBy uint   // stamped on every inserted candidate
}

// Run drives one workbook through header detection, image extraction,
// field mapping, fallback extraction and row reconciliation, then performs
// a single batch insert. Row-level problems are recorded in the report and
// never abort the run; only header detection and store failures propagate.
// Header detection runs first so a headerless workbook persists nothing,
// not even blobs.
func Run(wb *Workbook, opts Options) (*Report, error) {
	header, headerRow, err := LocateHeader(wb.Rows)
	if err != nil {
		return nil, err
	}
	imageMap := ExtractImages(wb.Images, opts.Sink, opts.PhotoDir)

	report := &Report{Errors: []string{}}
	staged := map[string]bool{}
	var batch []NewCandidate
	firstDataRow := true
	for i := headerRow + 1; i < len(wb.Rows); i++ {
		row := wb.Rows[i]
		draft := MapFields(row, header)
		text := strings.TrimSpace(strings.Join(row, " "))
		if needsFallback(draft, text) {
			draft = ExtractComposite(draft, text)
		}
		out, err := Reconcile(row, draft, i-headerRow, firstDataRow, imageMap[i], opts.Store, staged)
		if err != nil {
			return nil, err
		}
		if out.Kind != OutcomeBlank {
			firstDataRow = false
		}
		switch out.Kind {
		case OutcomeNew:
			out.Candidate.CreatedBy = opts.CreatedBy
			if out.Candidate.Email != "" {
				staged[strings.ToLower(out.Candidate.Email)] = true
			}
			batch = append(batch, out.Candidate)
		case OutcomeUpdatePhoto:
			if err := opts.Store.SetPhoto(out.UpdateID, out.PhotoPath); err != nil {
				return nil, fmt.Errorf("patch photo: %w", err)
			}
			report.Added++
		case OutcomeInvalid, OutcomeDuplicate:
			report.Errors = append(report.Errors, out.Err)
		}
	}
	if len(batch) > 0 {
		n, err := opts.Store.InsertMany(batch)
		if err != nil {
			return nil, fmt.Errorf("insert candidates: %w", err)
		}
		report.Added += n
	}
	return report, nil
}
