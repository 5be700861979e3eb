package ingest

import "regexp"

// Heuristic knobs for workbook reconciliation, kept as package data so
// tests can exercise them directly and tuning never touches control flow.

// headerScanLimit bounds how many leading rows are inspected for a header
// row; anything below that is assumed to be data or noise.
const headerScanLimit = 20

// headerMatchThreshold is the minimum number of distinct keywords a row
// must contain to qualify as the field-header row.
const headerMatchThreshold = 2

// nameOverrideLen: a mapped "name" longer than this is assumed to be
// mis-mapped composite text and may be replaced by the labeled extraction.
const nameOverrideLen = 50

// headerKeywords are matched as substrings of normalized header cells.
var headerKeywords = []string{"name", "email", "phone", "contact", "mobile", "experience", "age"}

// Column-name synonym tables, normalized form, priority order.
var (
	nameSynonyms       = []string{"name", "candidate", "fullname", "applicantname", "candidatesname"}
	emailSynonyms      = []string{"email", "emailaddress", "eaddress"}
	phoneSynonyms      = []string{"phone", "phonenumber", "contact", "mobile", "cell"}
	experienceSynonyms = []string{"experienceyears", "yearsofexperience", "experience", "totalexperience", "yearsexperience"}
	previousSynonyms   = []string{"previousexperience", "pastexperience", "previouscompany", "lastcompany"}
	ageSynonyms        = []string{"age", "candidateage", "ageyrs"}
)

// Composite-text extraction patterns. The phone run is 8-16 characters of
// digits, dashes and spaces with an optional leading plus.
var (
	emailRE     = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRE     = regexp.MustCompile(`\+?[0-9][0-9\- ]{6,14}[0-9]`)
	nameLabelRE = regexp.MustCompile(`(?i)\bname\s*:\s*(.+?)\s*(?:\b(?:age|location|university|degree)\s*:|$)`)
	ageLabelRE  = regexp.MustCompile(`(?i)\bage\s*:\s*([0-9]+(?:\.[0-9]+)?)`)
)
