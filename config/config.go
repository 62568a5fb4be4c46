package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	MenuSourceStatic   = "static"
	MenuSourcePostgres = "postgres"
)

var (
	Port       string
	MenuSource string
	DefaultDay string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
)

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded, using environment as-is")
	}

	Port = getenv("PORT", ":8080")
	MenuSource = getenv("MENU_SOURCE", MenuSourceStatic)
	DefaultDay = getenv("DEFAULT_DAY", "Monday")

	DBHost = getenv("DB_HOST", "localhost")
	DBPort = getenv("DB_PORT", "5432")
	DBUser = getenv("DB_USER", "postgres")
	DBPassword = os.Getenv("DB_PASSWORD")
	DBName = getenv("DB_NAME", "kaiui")
	DBSSLMode = getenv("DB_SSLMODE", "disable")

	if MenuSource != MenuSourceStatic && MenuSource != MenuSourcePostgres {
		logrus.Fatalf("MENU_SOURCE must be %q or %q, got %q", MenuSourceStatic, MenuSourcePostgres, MenuSource)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
