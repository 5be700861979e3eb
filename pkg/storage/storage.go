// Package storage provides the gorm-backed record store and the local-disk
// blob sink consumed by the ingestion pipeline, shared between the server
// and the drop-folder watcher.
package storage

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"

	"rekrut/models"
	"rekrut/pkg/ingest"

	"github.com/disintegration/imaging"
	"gorm.io/gorm"
)

// CandidateStore adapts gorm to the ingest.RecordStore contract.
type CandidateStore struct {
	DB *gorm.DB
}

func (s *CandidateStore) FindByEmail(email string) (*ingest.ExistingRecord, error) {
	var cand models.Candidate
	err := s.DB.Where("email = ?", email).First(&cand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingest.ExistingRecord{ID: cand.ID, PhotoPath: cand.PhotoPath}, nil
}

func (s *CandidateStore) InsertMany(cands []ingest.NewCandidate) (int, error) {
	if len(cands) == 0 {
		return 0, nil
	}
	rows := make([]models.Candidate, 0, len(cands))
	for _, nc := range cands {
		rows = append(rows, models.Candidate{
			Name:               nc.Name,
			Email:              nc.Email,
			Phone:              nc.Phone,
			ExperienceYears:    nc.ExperienceYears,
			PreviousExperience: nc.PreviousExperience,
			Age:                nc.Age,
			PhotoPath:          nc.PhotoPath,
			Status:             models.StatusPending,
			CreatedBy:          nc.CreatedBy,
		})
	}
	if err := s.DB.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *CandidateStore) SetPhoto(id uint, photoPath string) error {
	return s.DB.Model(&models.Candidate{}).Where("id = ?", id).Update("photo_path", photoPath).Error
}

// DiskSink stores extracted photos on the local filesystem. Photos over
// maxPhotoBytes are downscaled before writing; anything undecodable is
// stored as-is.
type DiskSink struct{}

const maxPhotoBytes = 1_000_000

func (DiskSink) EnsureDir(dir string) error { return os.MkdirAll(dir, 0o755) }

func (DiskSink) Delete(path string) error { return os.Remove(path) }

func (DiskSink) Put(path string, data []byte) error {
	if len(data) > maxPhotoBytes {
		if shrunk, err := shrinkPhoto(data, filepath.Ext(path)); err == nil {
			data = shrunk
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// shrinkPhoto downscales an oversized image toward the byte budget. Encoded
// size scales roughly with pixel area, so the edge scale is
// sqrt(budget/current).
func shrinkPhoto(data []byte, ext string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	scale := math.Sqrt(float64(maxPhotoBytes) / float64(len(data)))
	if scale > 0.95 {
		scale = 0.95
	}
	if scale < 0.1 {
		scale = 0.1
	}
	w := int(math.Max(1, math.Round(float64(img.Bounds().Dx())*scale)))
	img = imaging.Resize(img, w, 0, imaging.Lanczos)
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		format = imaging.JPEG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
