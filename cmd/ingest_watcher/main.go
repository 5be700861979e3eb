// ingest_watcher watches a drop folder for recruiting workbooks (.xlsx)
// and runs each one through the ingestion pipeline as the seeded admin (or
// the user named in WATCH_AS). Processed files are moved aside so a restart
// never re-ingests them.
package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rekrut/models"
	"rekrut/pkg/ingest"
	"rekrut/pkg/storage"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	dir := os.Getenv("WATCH_DIR")
	if dir == "" {
		dir = "dropbox"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("failed to create watch dir %s: %v", dir, err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	asUser := os.Getenv("WATCH_AS")
	if asUser == "" {
		asUser = "admin"
	}
	var user models.User
	if err := db.Where("username = ?", asUser).First(&user).Error; err != nil {
		log.Fatalf("watcher user %q not found: %v", asUser, err)
	}

	// Ingest anything already sitting in the folder before watching.
	if entries, err := os.ReadDir(dir); err == nil {
		for _, e := range entries {
			if !e.IsDir() && isWorkbook(e.Name()) {
				ingestFile(db, user.ID, filepath.Join(dir, e.Name()))
			}
		}
	}

	if err := watchDirectory(dir, db, user.ID); err != nil {
		log.Fatalf("watch failed: %v", err)
	}
}

func isWorkbook(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".xlsx") && !strings.HasPrefix(name, "~$")
}

// watchDirectory blocks forever, debouncing create events so half-copied
// files are not opened mid-write.
func watchDirectory(dir string, db *gorm.DB, createdBy uint) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("Watching %s (debounced) ...", dir)

	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == fsnotify.Create || ev.Op&fsnotify.Write == fsnotify.Write {
				name := filepath.Base(ev.Name)
				if isWorkbook(name) {
					pending[name] = time.Now()
				}
			}
		case <-ticker.C:
			now := time.Now()
			for name, t := range pending {
				if now.Sub(t) > 500*time.Millisecond { // stable
					delete(pending, name)
					ingestFile(db, createdBy, filepath.Join(dir, name))
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// ingestFile runs one workbook through the pipeline and moves it to a
// processed/ or failed/ sibling folder.
func ingestFile(db *gorm.DB, createdBy uint, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("open %s: %v", path, err)
		return
	}
	wb, err := ingest.ReadWorkbook(f)
	f.Close()
	if err != nil {
		log.Printf("parse %s: %v", path, err)
		moveAside(path, "failed")
		return
	}
	report, err := ingest.Run(wb, ingest.Options{
		Store:     &storage.CandidateStore{DB: db},
		Sink:      storage.DiskSink{},
		PhotoDir:  filepath.Join(photoBase(), "candidates"),
		CreatedBy: createdBy,
	})
	if err != nil {
		log.Printf("ingest %s: %v", path, err)
		moveAside(path, "failed")
		return
	}
	log.Printf("ingested %s: added=%d errors=%d", filepath.Base(path), report.Added, len(report.Errors))
	for _, e := range report.Errors {
		log.Printf("  skip: %s", e)
	}
	moveAside(path, "processed")
}

func moveAside(path, sub string) {
	dst := filepath.Join(filepath.Dir(path), sub)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		log.Printf("mkdir %s: %v", dst, err)
		return
	}
	if err := os.Rename(path, filepath.Join(dst, filepath.Base(path))); err != nil {
		log.Printf("move %s: %v", path, err)
	}
}

func photoBase() string {
	if v := os.Getenv("PHOTO_BASE"); v != "" {
		return v
	}
	return "public"
}
