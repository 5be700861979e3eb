package ingest

// ExistingRecord is the slice of a stored candidate the reconciler needs
// for duplicate and photo-merge decisions.
type ExistingRecord struct {
	ID        uint
	PhotoPath string
}

// NewCandidate is a fully validated, coerced row staged for insertion.
type NewCandidate struct {
	Name               string
	Email              string
	Phone              string
	ExperienceYears    float64
	PreviousExperience string
	Age                int
	PhotoPath          string
	CreatedBy          uint
}

// RecordStore is the keyed candidate store ingestion reconciles against.
// FindByEmail returns (nil, nil) when no record matches; a non-nil error
// means the store itself failed and aborts the run.
type RecordStore interface {
	FindByEmail(email string) (*ExistingRecord, error)
	InsertMany(cands []NewCandidate) (int, error)
	SetPhoto(id uint, photoPath string) error
}

// BlobSink stores extracted photo bytes. Path generation for uniqueness is
// the caller's responsibility; Put is never asked to overwrite.
type BlobSink interface {
	Put(path string, data []byte) error
	Delete(path string) error
	EnsureDir(dir string) error
}
