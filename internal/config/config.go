package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Editor   EditorConfig
	PDF      PDFConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
}

type EditorConfig struct {
	Password   string
	SessionTTL time.Duration
}

type PDFConfig struct {
	Disabled bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			SQLitePath: resolveSQLitePath(getEnv("CV_DB_PATH", "")),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "cv_portfolio"),
		},
		Editor: EditorConfig{
			Password:   getEnv("CV_EDITOR_PASSWORD", ""),
			SessionTTL: getEnvAsDuration("CV_SESSION_TTL", "12h"),
		},
		PDF: PDFConfig{
			Disabled: getEnvAsBool("CV_DISABLE_PDF", false),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

// resolveSQLitePath picks the database file location: an explicit path (parent
// created if needed), else a file in the working directory, else the temp dir
// when the working directory is not writable.
func resolveSQLitePath(explicit string) string {
	if explicit != "" {
		if parent := filepath.Dir(explicit); parent != "." {
			_ = os.MkdirAll(parent, 0755)
		}
		return explicit
	}

	defaultPath := filepath.Join(".", "cv_portfolio.db")
	if f, err := os.OpenFile(defaultPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		f.Close()
		return defaultPath
	}
	return filepath.Join(os.TempDir(), "cv_portfolio.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
