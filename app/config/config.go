package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Everything comes from the environment
// with sensible local defaults, .env is honored if present.
type Config struct {
	Port     string
	DataFile string
}

var AppConfig *Config

// Init loads .env (if any) and builds the global config.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	AppConfig = &Config{
		Port:     getEnv("PORT", "8080"),
		DataFile: getEnv("DATA_FILE", "data/quanlydaotao.json"),
	}
	log.Printf("Config loaded: port=%s data_file=%s", AppConfig.Port, AppConfig.DataFile)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
