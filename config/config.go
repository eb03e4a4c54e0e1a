package config

import (
	"log"
	"os"
)

type Config struct {
	DiscordToken    string
	SpreadsheetID   string
	CredentialsFile string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	HTTPAddr        string
}

func LoadConfig() *Config {
	return &Config{
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "gamenight"),
		DBPassword:      getEnv("DB_PASSWORD", "gamenight"),
		DBName:          getEnv("DB_NAME", "gamenight"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8000"),
	}
}

// getEnv reads an environment variable and returns its value or a default value
func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = defaultValue
		log.Printf("Environment variable %s not set, using default value: %s", key, defaultValue)
	}
	return value
}
