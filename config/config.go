package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port              string
	AdminEmail        string
	AdminName         string
	AdminPasswordHash []byte
	SeedDemoData      bool
}

// Load reads the service configuration from the environment. The admin
// password is bcrypt-hashed once at startup so the plaintext never
// sticks around past this function.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@skillswap.com"
	}

	adminName := os.Getenv("ADMIN_NAME")
	if adminName == "" {
		adminName = "System Administrator"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
		log.Println("ADMIN_PASSWORD not set, using default demo credentials")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	return &Config{
		Port:              port,
		AdminEmail:        adminEmail,
		AdminName:         adminName,
		AdminPasswordHash: hash,
		SeedDemoData:      os.Getenv("SEED_DEMO_DATA") == "true",
	}
}
