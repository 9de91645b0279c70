package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT                      string
	SERVICE_NAME                     string
	LOG_LEVEL                        string
	OTEL_URL                         string
	BANK_API_BASE_URL                string
	BANK_API_TIMEOUT_SECONDS         int
	EXTERNAL_BANK_TIMEOUT_SECONDS    int
	LOCAL_PRODUCT_CATALOG_BASE_URL   string
	ADDITIONAL_PRODUCT_CATALOG_URL   string
	USE_MOCK_DATA                    bool
	USE_MOCK_EXTERNAL_BANKS          bool
	FORCE_REAL_REFINANCE_APPLICATIONS bool
	PROMO_PRODUCT_KEYWORD            string
	EXTERNAL_BANKS_CONFIG_FILE       string
	WORKER_POOL                      int
	REDIS_ADDR                       string
	REDIS_PASSWORD                   string
	REDIS_DB                         int
	CATALOG_CACHE_TTL_SECONDS        int
	KAFKA_SERVER                     string
	KAFKA_TOPIC                      string
	KAFKA_CLIENT_ID                  string
	KAFKA_SECURITY_PROTOCOL          string
	KAFKA_SASL_MECHANISM             string
	KAFKA_SASL_USERNAME              string
	KAFKA_SASL_PASSWORD              string
	KAFKA_SESSION_TIMEOUT_MS         int
)

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8100")
	SERVICE_NAME = GetEnv("SERVICE_NAME", "creditanalytics")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
	OTEL_URL = GetEnv("OTEL_URL", "")

	BANK_API_BASE_URL = GetEnv("BANK_API_BASE_URL", "http://localhost:8080")
	BANK_API_TIMEOUT_SECONDS, _ = strconv.Atoi(GetEnv("BANK_API_TIMEOUT_SECONDS", "10"))
	EXTERNAL_BANK_TIMEOUT_SECONDS, _ = strconv.Atoi(GetEnv("EXTERNAL_BANK_TIMEOUT_SECONDS", GetEnv("BANK_API_TIMEOUT_SECONDS", "10")))

	LOCAL_PRODUCT_CATALOG_BASE_URL = GetEnv("LOCAL_PRODUCT_CATALOG_BASE_URL", "http://localhost:8080")
	ADDITIONAL_PRODUCT_CATALOG_URL = GetEnv("ADDITIONAL_PRODUCT_CATALOG_URL", "")

	USE_MOCK_DATA, _ = strconv.ParseBool(GetEnv("USE_MOCK_DATA", "false"))
	USE_MOCK_EXTERNAL_BANKS, _ = strconv.ParseBool(GetEnv("USE_MOCK_EXTERNAL_BANKS", "false"))
	FORCE_REAL_REFINANCE_APPLICATIONS, _ = strconv.ParseBool(GetEnv("FORCE_REAL_REFINANCE_APPLICATIONS", "false"))

	PROMO_PRODUCT_KEYWORD = GetEnv("PROMO_PRODUCT_KEYWORD", "айтишная ипотека")
	EXTERNAL_BANKS_CONFIG_FILE = GetEnv("EXTERNAL_BANKS_CONFIG_FILE", "")

	WORKER_POOL, _ = strconv.Atoi(GetEnv("WORKER_POOL", "5"))

	REDIS_ADDR = GetEnv("REDIS_ADDR", "")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB, _ = strconv.Atoi(GetEnv("REDIS_DB", "0"))
	CATALOG_CACHE_TTL_SECONDS, _ = strconv.Atoi(GetEnv("CATALOG_CACHE_TTL_SECONDS", "60"))

	KAFKA_SERVER = GetEnv("KAFKA_SERVER", "")
	KAFKA_TOPIC = GetEnv("KAFKA_TOPIC", "refinance-applications")
	KAFKA_CLIENT_ID = GetEnv("KAFKA_CLIENT_ID", "creditanalytics")
	KAFKA_SECURITY_PROTOCOL = GetEnv("KAFKA_SECURITY_PROTOCOL", "")
	KAFKA_SASL_MECHANISM = GetEnv("KAFKA_SASL_MECHANISM", "")
	KAFKA_SASL_USERNAME = GetEnv("KAFKA_SASL_USERNAME", "")
	KAFKA_SASL_PASSWORD = GetEnv("KAFKA_SASL_PASSWORD", "")
	KAFKA_SESSION_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("KAFKA_SESSION_TIMEOUT_MS", "45000"))

	loadExternalBanks()
}

// BankAPITimeout returns the timeout applied to core-banking API calls.
func BankAPITimeout() time.Duration {
	return time.Duration(BANK_API_TIMEOUT_SECONDS) * time.Second
}

// ExternalBankTimeout returns the timeout applied to partner-bank API calls.
func ExternalBankTimeout() time.Duration {
	return time.Duration(EXTERNAL_BANK_TIMEOUT_SECONDS) * time.Second
}

// GetEnv fetches the value of an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
