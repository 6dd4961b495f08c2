package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Database DatabaseConfig
	Banking  BankingConfig
	Gateway  GatewayConfig
	Ledger   LedgerConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type LoggingConfig struct {
	Level string
}

type DatabaseConfig struct {
	// URL is the Postgres connection string. Empty selects the in-memory
	// store, which is enough for local development.
	URL string
}

type GatewayConfig struct {
	BankAURL string
	BankBURL string
}

type LedgerConfig struct {
	// URL of the accounting system's balance API.
	URL string
}

type BankingConfig struct {
	// Timezone is the zone the banks report calendar days in.
	Timezone string
	Accounts *Accounts
	BankABIC string
	BankBBIC string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Banking: BankingConfig{
			Timezone: getEnv("BANK_TIMEZONE", "Europe/Tallinn"),
			Accounts: loadAccounts(),
			BankABIC: getEnv("BANK_A_BIC", "HABAEE2X"),
			BankBBIC: getEnv("BANK_B_BIC", "EEUHEE2X"),
		},
		Gateway: GatewayConfig{
			BankAURL: getEnv("BANK_A_GATEWAY_URL", ""),
			BankBURL: getEnv("BANK_B_GATEWAY_URL", ""),
		},
		Ledger: LedgerConfig{
			URL: getEnv("LEDGER_API_URL", "http://localhost:9090"),
		},
	}
}

// Location resolves the configured bank timezone, falling back to UTC when
// the zone name is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Banking.Timezone)
	if err != nil {
		log.Printf("Invalid timezone %s, using UTC", c.Banking.Timezone)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
