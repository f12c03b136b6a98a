package config

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port            string
	RateLimit       int   // requests per IP per minute
	MaxUploadBytes  int64 // cap on a submitted form or JSON body
	NatsEnabled     bool
	NatsUrl         string
	NatsToken       string
	ValidateSubject string // subject the broker listens on
	ResultSubject   string // fallback subject when a request has no reply inbox
	QueueGroup      string
}

func Load() Config {
	return Config{
		Port:            getEnv("VALIDATOR_SERVICE_PORT", "8080"),
		RateLimit:       getEnvInt("RATE_LIMIT", 100),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 1<<20)),
		NatsEnabled:     getEnvBool("NATS_ENABLED", true),
		NatsUrl:         os.Getenv("NATS_URL"),
		NatsToken:       os.Getenv("NATS_TOKEN"),
		ValidateSubject: getEnv("VALIDATE_SUBJECT", "card.validate"),
		ResultSubject:   getEnv("RESULT_SUBJECT", "validator.service"),
		QueueGroup:      getEnv("QUEUE_GROUP", "validator"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warnf("invalid %s value %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("invalid %s value %q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
