package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"rekrut/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	// Roles first so the users FK can be applied safely.
	if shouldMigrate {
		if err := db.AutoMigrate(&models.Role{}); err != nil {
			log.Printf("migration warning (roles): %v", err)
		}
	}
	seedRoles()

	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Candidate{}); err != nil {
			log.Printf("migration warning (candidates): %v", err)
		}
		if err := db.AutoMigrate(&models.Interview{}); err != nil {
			log.Printf("migration warning (interviews): %v", err)
		}
		if err := db.AutoMigrate(&models.RefreshToken{}); err != nil {
			log.Printf("migration warning (refresh_tokens): %v", err)
		}
	}
	seedDB()
}

func seedRoles() {
	roles := []models.Role{
		{Name: "administrator", Description: "full access"},
		{Name: "recruiter", Description: "reviews candidates and schedules interviews"},
	}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", r.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}
}

func seedDB() {
	seedRoles()

	// Seed the admin account once.
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		var role models.Role
		if err := db.Where("name = ?", "administrator").First(&role).Error; err != nil {
			log.Printf("failed to find administrator role: %v", err)
		}
		rid := role.ID
		admin := models.User{
			Username: "admin",
			RoleID:   &rid,
		}
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin.HashedPassword = hashedPassword
		db.Create(&admin)
		log.Println("Seeded admin user: username=admin, password=admin123")
	}
	ensurePhotoBase()
}

// ensurePhotoBase creates the base directory extracted candidate photos
// land under. Pre-existing directories and mkdir races are tolerated.
func ensurePhotoBase() {
	dir := candidatePhotoDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("failed to create photo dir %s: %v", dir, err)
	}
}

// photoBaseDir returns the base directory for stored photos (configurable
// via PHOTO_BASE env). It is also the directory served at /public.
func photoBaseDir() string {
	if v := os.Getenv("PHOTO_BASE"); v != "" {
		return v
	}
	return "public"
}

// candidatePhotoDir is where workbook-extracted photos are stored.
func candidatePhotoDir() string {
	return filepath.Join(photoBaseDir(), "candidates")
}
