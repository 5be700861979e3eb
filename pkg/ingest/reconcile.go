package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// OutcomeKind enumerates the terminal states of one reconciled row.
type OutcomeKind int

const (
	OutcomeBlank       OutcomeKind = iota // nothing in the row, skipped silently
	OutcomeNoise                          // boilerplate/footer text, skipped silently
	OutcomeInvalid                        // missing required fields, skipped with error
	OutcomeNew                            // staged for the batch insert
	OutcomeUpdatePhoto                    // photo patched onto an existing photoless record
	OutcomeDuplicate                      // email already known, skipped with error
)

// Outcome is the tagged decision for a single row.
type Outcome struct {
	Kind      OutcomeKind
	Err       string       // skip reason for the report, empty for silent kinds
	Candidate NewCandidate // populated for OutcomeNew
	UpdateID  uint         // populated for OutcomeUpdatePhoto
	PhotoPath string       // populated for OutcomeUpdatePhoto
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// isBoilerplateRow flags rows that look like footer or branding text: both
// name and email unresolved past the first data row. This is a fragile
// proxy — a genuine candidate row that lost both fields to bad column
// mapping is dropped silently too — which is why it lives in its own
// function instead of the validation branch.
func isBoilerplateRow(d Draft, firstDataRow bool) bool {
	return d.Name == "" && d.Email == "" && !firstDataRow
}

// Reconcile decides the fate of one mapped row. rowNum is the 1-based data
// row number used in skip messages, photoPath is the extracted image for
// this row's sheet position (may be empty), and staged holds the lowercased
// emails already accepted earlier in this run so a workbook cannot insert
// the same address twice.
func Reconcile(row []string, d Draft, rowNum int, firstDataRow bool, photoPath string, store RecordStore, staged map[string]bool) (Outcome, error) {
	if isBlankRow(row) {
		return Outcome{Kind: OutcomeBlank}, nil
	}
	if isBoilerplateRow(d, firstDataRow) {
		return Outcome{Kind: OutcomeNoise}, nil
	}
	if d.Name == "" || (d.Email == "" && d.Phone == "") {
		return Outcome{
			Kind: OutcomeInvalid,
			Err:  fmt.Sprintf("row %d: missing required fields (%s)", rowNum, describeFields(d)),
		}, nil
	}
	if d.Email != "" {
		if staged[strings.ToLower(d.Email)] {
			return Outcome{
				Kind: OutcomeDuplicate,
				Err:  fmt.Sprintf("row %d: duplicate email %s in file", rowNum, d.Email),
			}, nil
		}
		existing, err := store.FindByEmail(d.Email)
		if err != nil {
			return Outcome{}, fmt.Errorf("lookup %s: %w", d.Email, err)
		}
		if existing != nil {
			if existing.PhotoPath == "" && photoPath != "" {
				return Outcome{Kind: OutcomeUpdatePhoto, UpdateID: existing.ID, PhotoPath: photoPath}, nil
			}
			return Outcome{
				Kind: OutcomeDuplicate,
				Err:  fmt.Sprintf("row %d: email %s already exists", rowNum, d.Email),
			}, nil
		}
	}
	return Outcome{Kind: OutcomeNew, Candidate: coerce(d, photoPath)}, nil
}

// coerce applies the accepted-row type rules: phone stays text, experience
// and age become numeric with 0 for anything absent or unparseable.
func coerce(d Draft, photoPath string) NewCandidate {
	exp, _ := strconv.ParseFloat(strings.TrimSpace(d.Experience), 64)
	age := 0
	if f, err := strconv.ParseFloat(strings.TrimSpace(d.Age), 64); err == nil {
		age = int(f)
	}
	return NewCandidate{
		Name:               d.Name,
		Email:              strings.TrimSpace(d.Email),
		Phone:              d.Phone,
		ExperienceYears:    exp,
		PreviousExperience: d.Previous,
		Age:                age,
		PhotoPath:          photoPath,
	}
}

func describeFields(d Draft) string {
	var found []string
	if d.Name != "" {
		found = append(found, "name")
	}
	if d.Email != "" {
		found = append(found, "email")
	}
	if d.Phone != "" {
		found = append(found, "phone")
	}
	if len(found) == 0 {
		return "no usable fields"
	}
	return "found only " + strings.Join(found, ", ")
}
