package ingest

import "errors"

// ErrHeaderNotFound means no row in the scan window looked like a field
// header. The whole upload is rejected; no rows or blobs are persisted.
var ErrHeaderNotFound = errors.New("headers not found in sheet")
