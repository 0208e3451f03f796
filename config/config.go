package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env    string
	Port   string
	JWTKey string

	// Backend selects the gateway adapter: "script", "db" or "" (mock only)
	Backend string

	ScriptApiUrl string

	DBDialect  string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	AdminEmail    string
	AdminPassword string

	AiApiUrl string
	AiApiKey string

	SendgridApiKey   string
	EmailSender      string
	MaintenanceEmail string

	// StatsSeed seeds the mock admin-stats generator
	StatsSeed int64
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Env:    getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		Backend: getEnv("BACKEND", ""),

		ScriptApiUrl: getEnv("SCRIPT_API_URL", ""),

		DBDialect:  getEnv("DB_DIALECT", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "learnhub"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@learnhub.io"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		AiApiUrl: getEnv("AI_API_URL", ""),
		AiApiKey: getEnv("AI_API_KEY", ""),

		SendgridApiKey:   getEnv("SENDGRID_API_KEY", ""),
		EmailSender:      getEnv("EMAIL_SENDER", "noreply@learnhub.io"),
		MaintenanceEmail: getEnv("MAINTENANCE_EMAIL", ""),

		StatsSeed: getEnvInt64("STATS_SEED", 42),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.Backend == "" {
		log.Println("Warning: No BACKEND configured. Serving mock data only.")
	}
	if AppConfig.Backend == "script" && AppConfig.ScriptApiUrl == "" {
		log.Println("Warning: BACKEND=script but SCRIPT_API_URL is empty. Serving mock data only.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt64 retrieves an environment variable as an int64 or returns the default value
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
