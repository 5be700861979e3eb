package ingest

import "strings"

// needsFallback reports whether the composite-text extractor should run for
// this row: a contact field is still missing and the row text carries a
// colon, the usual tell of a free-text block pasted into the sheet.
func needsFallback(d Draft, rowText string) bool {
	return (d.Email == "" || d.Phone == "") && strings.Contains(rowText, ":")
}

// ExtractComposite re-parses the concatenated row text with pattern rules
// and fills only the still-absent fields of d. The mapped name is replaced
// only when absent or implausibly long (an overlong "name" usually means
// the whole free-text block landed in the name column).
func ExtractComposite(d Draft, text string) Draft {
	if d.Email == "" {
		d.Email = emailRE.FindString(text)
	}
	if d.Phone == "" {
		d.Phone = strings.TrimSpace(phoneRE.FindString(text))
	}
	if m := nameLabelRE.FindStringSubmatch(text); m != nil {
		if d.Name == "" || len(d.Name) > nameOverrideLen {
			d.Name = strings.TrimSpace(m[1])
		}
	}
	if d.Age == "" {
		if m := ageLabelRE.FindStringSubmatch(text); m != nil {
			d.Age = m[1]
		}
	}
	return d
}
