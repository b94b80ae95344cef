package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName            string
	AppVersion         string
	AppPort            string
	Debug              bool
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbParams           string
	TokenExpiryMinutes int
	TrustedProxies     []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppName:            getEnv("APP_NAME", "taskdesk"),
		AppVersion:         getEnv("APP_VERSION", "dev"),
		AppPort:            getEnv("APP_PORT", "8080"),
		Debug:              getEnvBool("APP_DEBUG", false),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "taskdesk"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "taskdesk"),
		DbName:             getEnv("MYSQL_DATABASE", "taskdesk"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TokenExpiryMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		TrustedProxies:     parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
