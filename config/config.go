package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port   string
	AppEnv string

	// Persistence
	DataFile string

	// Logging
	LogLevel string
	LogFile  string

	// LINE report sharing (optional)
	LineChannelSecret      string
	LineChannelAccessToken string
	LineRecipientID        string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		DataFile: getEnv("DATA_FILE", "data/halaqa.json"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "logs/app.log"),

		LineChannelSecret:      getEnv("LINE_CHANNEL_SECRET", ""),
		LineChannelAccessToken: getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
		LineRecipientID:        getEnv("LINE_RECIPIENT_ID", ""),
	}

	validateConfig(AppConfig)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func validateConfig(c *Config) {
	if strings.TrimSpace(c.DataFile) == "" {
		log.Fatal("DATA_FILE must not be empty")
	}
	// A partially configured LINE channel is almost always a mistake.
	set := 0
	for _, v := range []string{c.LineChannelSecret, c.LineChannelAccessToken, c.LineRecipientID} {
		if v != "" {
			set++
		}
	}
	if set > 0 && set < 3 {
		log.Println("Warning: LINE sharing needs LINE_CHANNEL_SECRET, LINE_CHANNEL_ACCESS_TOKEN and LINE_RECIPIENT_ID; sharing stays disabled")
	}
}
