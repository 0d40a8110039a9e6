package config

import (
	"log"
	"os"

	"pizza-store/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

func init() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "pizza_store_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = Open(getEnv("PIZZA_DB", "pizza_store.db"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected and migrated successfully")
}

// Open connects to the sqlite database at path and migrates the schema.
// Tests open their own in-memory instance through this.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Store{},
		&models.FoodOrder{},
		&models.ItemInOrder{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
