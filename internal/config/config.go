package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// StoreRedis persists bookmarks in Redis (the default).
	StoreRedis = "redis"
	// StoreMemory keeps bookmarks in process memory, for dev and tests.
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreBackend string // "redis" | "memory"
	UsersFile    string // path to the users file (user:bcrypt-hash:roles per line)
	SeedFile     string // path to a YAML bookmark fixture file (optional, empty = no seeding)

	SessionIdleTTL   time.Duration // evict session selections idle for this long
	SessionMaxCount  int           // cap on live sessions (0 = unbounded)
	ScrapeTimeout    time.Duration // timeout for page title scraping
	ScrapeUserAgent  string        // user agent sent when scraping titles
	TitleScrapeOnAdd bool          // scrape missing titles during bulk upload

	// Redis (only read when StoreBackend == "redis")
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("TAGMARK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("TAGMARK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("TAGMARK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("TAGMARK_PRETTY_LOG", true),

		// Storage and data
		StoreBackend: getenv("TAGMARK_STORE", StoreRedis),
		UsersFile:    requireEnv("TAGMARK_USERS_FILE"),
		SeedFile:     getenv("TAGMARK_SEED_FILE", ""),

		// Sessions and scraping
		SessionIdleTTL:   mustDuration("TAGMARK_SESSION_IDLE_TTL", 30*time.Minute),
		SessionMaxCount:  getenvInt("TAGMARK_SESSION_MAX_COUNT", 10000),
		ScrapeTimeout:    mustDuration("TAGMARK_SCRAPE_TIMEOUT", 5*time.Second),
		ScrapeUserAgent:  getenv("TAGMARK_SCRAPE_USER_AGENT", ""),
		TitleScrapeOnAdd: mustBool("TAGMARK_TITLE_SCRAPE_ON_ADD", true),
	}

	if cfg.StoreBackend != StoreRedis && cfg.StoreBackend != StoreMemory {
		panic(fmt.Sprintf("FATAL: invalid TAGMARK_STORE value %q (want %q or %q)",
			cfg.StoreBackend, StoreRedis, StoreMemory))
	}

	if cfg.StoreBackend == StoreRedis {
		cfg.RedisAddr = requireEnv("TAGMARK_REDIS_ADDR")
		cfg.RedisUser = getenv("TAGMARK_REDIS_USERNAME", "default")
		cfg.RedisPasswordRequired = mustBool("TAGMARK_REDIS_PASSWORD_REQUIRED", true)
		cfg.RedisPassword = getenv("TAGMARK_REDIS_PASSWORD", "")
		cfg.RedisDB = getenvInt("TAGMARK_REDIS_DB", 0)
		cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
		cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
		cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
		cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
		cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
		cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
		cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
		cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
		cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)

		if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
			panic("FATAL: TAGMARK_REDIS_PASSWORD is required when TAGMARK_REDIS_PASSWORD_REQUIRED=true")
		}
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// SplitAndTrim splits a comma separated value, trimming whitespace and
// surrounding quotes, dropping empty parts.
func SplitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
