package ingest

import "strings"

// Draft is the working record recovered from one data row. Everything stays
// a raw string until reconciliation coerces the accepted rows; any field
// may be absent until the fallback extractor has run.
type Draft struct {
	Name       string
	Email      string
	Phone      string
	Experience string
	Previous   string
	Age        string
}

// MapFields reads one raw row through the header map and resolves each
// canonical field via its synonym table. The first synonym whose column
// holds a non-empty cell wins; unresolved fields stay empty.
func MapFields(row []string, header HeaderMap) Draft {
	cols := map[string]int{}
	for pos, name := range header {
		if prev, ok := cols[name]; !ok || pos < prev {
			cols[name] = pos
		}
	}
	pick := func(synonyms []string) string {
		for _, syn := range synonyms {
			pos, ok := cols[syn]
			if !ok || pos >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[pos]); v != "" {
				return v
			}
		}
		return ""
	}
	return Draft{
		Name:       pick(nameSynonyms),
		Email:      pick(emailSynonyms),
		Phone:      pick(phoneSynonyms),
		Experience: pick(experienceSynonyms),
		Previous:   pick(previousSynonyms),
		Age:        pick(ageSynonyms),
	}
}
