package ingest

import (
	"fmt"
	"strings"
)

// fakeStore is an in-memory RecordStore keyed by lowercased email.
type fakeStore struct {
	nextID   uint
	byEmail  map[string]*ExistingRecord
	inserted []NewCandidate
	photos   map[uint]string
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byEmail: map[string]*ExistingRecord{}, photos: map[uint]string{}}
}

func (s *fakeStore) seed(email, photoPath string) uint {
	s.nextID++
	s.byEmail[strings.ToLower(email)] = &ExistingRecord{ID: s.nextID, PhotoPath: photoPath}
	return s.nextID
}

func (s *fakeStore) FindByEmail(email string) (*ExistingRecord, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	rec, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeStore) InsertMany(cands []NewCandidate) (int, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}
	for _, c := range cands {
		s.nextID++
		s.inserted = append(s.inserted, c)
		if c.Email != "" {
			s.byEmail[strings.ToLower(c.Email)] = &ExistingRecord{ID: s.nextID, PhotoPath: c.PhotoPath}
		}
	}
	return len(cands), nil
}

func (s *fakeStore) SetPhoto(id uint, photoPath string) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.photos[id] = photoPath
	for _, rec := range s.byEmail {
		if rec.ID == id {
			rec.PhotoPath = photoPath
		}
	}
	return nil
}

// fakeSink is an in-memory BlobSink that refuses overwrites, matching the
// contract that path uniqueness is the caller's job.
type fakeSink struct {
	blobs map[string][]byte
}

func newFakeSink() *fakeSink { return &fakeSink{blobs: map[string][]byte{}} }

func (s *fakeSink) Put(path string, data []byte) error {
	if _, exists := s.blobs[path]; exists {
		return fmt.Errorf("blob %s already exists", path)
	}
	s.blobs[path] = append([]byte(nil), data...)
	return nil
}

func (s *fakeSink) Delete(path string) error {
	if _, exists := s.blobs[path]; !exists {
		return fmt.Errorf("blob %s not found", path)
	}
	delete(s.blobs, path)
	return nil
}

func (s *fakeSink) EnsureDir(dir string) error { return nil }

// pngBytes builds a buffer with a PNG signature padded to n bytes.
func pngBytes(n int) []byte {
	b := make([]byte, n)
	copy(b, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	return b
}
