package ingest

import "strings"

// HeaderMap maps column position to the normalized field-header name.
// Built once per workbook, immutable afterwards.
type HeaderMap map[int]string

// normalizeCell lowercases and strips everything but letters and digits, so
// "E-mail Address " and "EmailAddress" collapse to the same key.
func normalizeCell(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LocateHeader scans the first headerScanLimit rows top to bottom for a row
// whose normalized cells contain at least headerMatchThreshold of the
// domain keywords, and returns its header map plus its row index. Ties
// resolve to the earliest qualifying row, not the best match.
func LocateHeader(rows [][]string) (HeaderMap, int, error) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		norm := make([]string, len(rows[i]))
		for j, cell := range rows[i] {
			norm[j] = normalizeCell(cell)
		}
		matched := 0
		for _, kw := range headerKeywords {
			for _, cell := range norm {
				if cell != "" && strings.Contains(cell, kw) {
					matched++
					break
				}
			}
		}
		if matched >= headerMatchThreshold {
			hm := HeaderMap{}
			for j, cell := range norm {
				if cell != "" {
					hm[j] = cell
				}
			}
			return hm, i, nil
		}
	}
	return nil, 0, ErrHeaderNotFound
}
