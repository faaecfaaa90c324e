package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Redis       RedisConfig
	Server      ServerConfig
	Matchmaking MatchmakingConfig
	Profile     ProfileConfig
	Database    DatabaseConfig
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// MatchmakingConfig carries the pairing and rating knobs.
type MatchmakingConfig struct {
	RatingWindow  int    // max rating gap between paired players
	KFactor       int    // Elo k-factor applied on results
	DefaultRating int    // rating used when the profile store has none
	PollInterval  int    // client poll period, seconds
	TierTable     string // "classic" or "extended"
	QualityMode   string // "elo" or "trueskill"
	StoreBackend  string // "redis" or "memory"
}

type ProfileConfig struct {
	URL        string
	RateLimit  int // outbound calls allowed per window
	RateWindow int // window length, seconds
}

type DatabaseConfig struct {
	DSN string
}

var GlobalConfig *Config

func NewConfig() *Config {
	godotenv.Load(".env")

	GlobalConfig = &Config{
		Redis: RedisConfig{
			Host:     readEnvVar("REDIS_HOST", "localhost"),
			Port:     readEnvVar("REDIS_PORT", "6379"),
			Password: readEnvVar("REDIS_PASSWORD", ""),
			DB:       readEnvInt("REDIS_DB", 0),
		},
		Server: ServerConfig{
			Port: readEnvVar("SERVER_PORT", "8080"),
		},
		Matchmaking: MatchmakingConfig{
			RatingWindow:  readEnvInt("MM_RATING_WINDOW", 200),
			KFactor:       readEnvInt("MM_K_FACTOR", 24),
			DefaultRating: readEnvInt("MM_DEFAULT_RATING", 1200),
			PollInterval:  readEnvInt("MM_POLL_INTERVAL", 2),
			TierTable:     readEnvVar("MM_TIER_TABLE", "classic"),
			QualityMode:   readEnvVar("MM_QUALITY_MODE", "elo"),
			StoreBackend:  readEnvVar("MM_STORE_BACKEND", "redis"),
		},
		Profile: ProfileConfig{
			URL:        readEnvVar("PROFILE_SERVICE_URL", ""),
			RateLimit:  readEnvInt("PROFILE_RATE_LIMIT", 60),
			RateWindow: readEnvInt("PROFILE_RATE_WINDOW", 60),
		},
		Database: DatabaseConfig{
			DSN: readEnvVar("DATABASE_URL", ""),
		},
	}

	return GlobalConfig
}

func readEnvVar(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func readEnvInt(name string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return v
}
