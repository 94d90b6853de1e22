package database

import (
	"fmt"
	"log"
	"os"

	"inventory-app/internal/domain/store"
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

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate runs AutoMigrate for every domain model. Split out from InitDB so
// tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// identity
		&users.User{},

		// store
		&store.Supplier{},
		&store.Buyer{},
		&store.Season{},
		&store.Drop{},
		&store.Product{},
		&store.Order{},
		&store.Delivery{},
	)
}

// SeedAdmin creates the administrator account if it does not exist yet.
// Safe to run on every startup.
func SeedAdmin(db *gorm.DB, username, email, password string) error {
	var count int64
	if err := db.Model(&users.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hashed)

	admin := users.User{
		Username:     username,
		Email:        email,
		Password:     &h,
		AuthProvider: "local",
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	fmt.Println("✅ Seeded admin user:", username)
	return nil
}
