package database

import (
	"fmt"
	"log"
	"os"

	"inventory-app/config"
	"inventory-app/internal/domain/art"
	"inventory-app/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	if err := SeedDemoProfile(DB); err != nil {
		log.Fatal("❌ Seed error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate is split out of InitDB so the test suites can run the same
// schema against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.UserProfile{},

		&art.Artist{},
		&art.Artwork{},
		&art.ArtworkImage{},
		&art.Collection{},
		&art.CollectionArtwork{},
		&art.Appraisal{},
	)
}

// SeedDemoProfile creates an initial login when the profile table is empty
// and SEED_USERNAME/SEED_PASSWORD are configured. Deployments that manage
// accounts some other way simply leave both unset.
func SeedDemoProfile(db *gorm.DB) error {
	if config.SEED_USERNAME == "" || config.SEED_PASSWORD == "" {
		return nil
	}

	var count int64
	if err := db.Model(&users.UserProfile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.SEED_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(hashed)

	profile := users.UserProfile{
		Username:     config.SEED_USERNAME,
		PasswordHash: &hash,
		AuthProvider: "local",
		UserRole:     "manager",
	}
	if err := db.Create(&profile).Error; err != nil {
		return err
	}

	fmt.Println("✅ Seeded initial profile:", profile.Username)
	return nil
}
