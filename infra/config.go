package infra

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerName          string
	ServerPort          string
	Environment         string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBDatabase          string
	DBSSLMode           string
	DBDriver            string
	AwsAccessKeyID      string
	AwsSecretAccessKey  string
	AwsRegion           string
	AwsBucketName       string
	GoogleMapsKey       string
	RedisUrl            string
	DirectionsTimeout   time.Duration
	GeocodeTimeout      time.Duration
	ProcessBudget       time.Duration
	TempoEmbarquePadrao int32
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			panic("Error loading env file")
		}
	}

	return Config{
		ServerName:          os.Getenv("SERVER_NAME"),
		ServerPort:          os.Getenv("SERVER_PORT"),
		Environment:         os.Getenv("ENVIRONMENT"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBDatabase:          os.Getenv("DB_DATABASE"),
		DBSSLMode:           os.Getenv("DB_SSL_MODE"),
		DBDriver:            os.Getenv("DB_DRIVER"),
		AwsAccessKeyID:      os.Getenv("AWS_ACCESS_KEY_ID"),
		AwsSecretAccessKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AwsRegion:           os.Getenv("AWS_REGION"),
		AwsBucketName:       os.Getenv("AWS_BUCKET_NAME"),
		GoogleMapsKey:       os.Getenv("GOOGLE_MAPS_KEY"),
		RedisUrl:            os.Getenv("REDIS_URL"),
		DirectionsTimeout:   envSeconds("DIRECTIONS_TIMEOUT_SECONDS", 30),
		GeocodeTimeout:      envSeconds("GEOCODE_TIMEOUT_SECONDS", 10),
		ProcessBudget:       envSeconds("PROCESS_BUDGET_SECONDS", 240),
		TempoEmbarquePadrao: envInt32("TEMPO_EMBARQUE_PADRAO", 30),
	}
}

func envSeconds(name string, def int) time.Duration {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	return time.Duration(def) * time.Second
}

func envInt32(name string, def int32) int32 {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return int32(v)
		}
	}
	return def
}
