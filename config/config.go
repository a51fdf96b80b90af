package config

import (
	"errors"
	"fmt"
	"os"

	"medimeal/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is built once at startup and passed to whatever needs it. Nothing
// reads the environment after Load returns.
type Config struct {
	Env       string
	Port      string
	JWTSecret []byte

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

func (c *Config) Production() bool { return c.Env == "production" }

// Load reads .env (if present) and the process environment. A missing JWT
// secret is fatal: tokens signed with an empty secret are worthless.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:        os.Getenv("ENV"),
		Port:       os.Getenv("PORT"),
		JWTSecret:  []byte(os.Getenv("JWT_SECRET")),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}

var DB *gorm.DB

func InitDB(cfg *Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.DietChart{},
		&models.Meal{},
		&models.PantryTask{},
		&models.Pantry{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}
