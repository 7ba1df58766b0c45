package config

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

type Config struct {
	Port        string
	PostgresDSN string
	SQLitePath  string

	SessionSecret string
	SessionTTL    time.Duration
	RedisURL      string

	LoginRatePerSecond float64
	LoginBurst         int
}

// Load reads everything from the environment. With no SESSION_SECRET set,
// a random one is generated; sessions then die on restart, which is fine
// single-node.
func Load() *Config {
	return &Config{
		Port:        GetEnvAsString("PORT", "8080"),
		PostgresDSN: GetEnvAsString("DATABASE_URL", ""),
		SQLitePath:  GetEnvAsString("SQLITE_PATH", "taskboard.db"),

		SessionSecret: GetEnvAsString("SESSION_SECRET", randomSecret()),
		SessionTTL:    GetEnvAsDuration("SESSION_TTL", 24*time.Hour),
		RedisURL:      GetEnvAsString("REDIS_URL", ""),

		LoginRatePerSecond: GetEnvAsFloat("LOGIN_RATE", 1),
		LoginBurst:         GetEnvAsInt("LOGIN_BURST", 5),
	}
}

func randomSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
