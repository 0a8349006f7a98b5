package database

import (
	"log"

	"novelas-app/config"
	"novelas-app/internal/domain/novelas"
	"novelas-app/internal/domain/usuarios"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
}

// Migrate creates or updates the three tables and their indexes.
// Shared with the test setup, which runs it against SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&usuarios.Usuario{},
		&novelas.Novela{},
		&novelas.Capitulo{},
	)
}
