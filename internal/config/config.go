package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Env             string
	Port            string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	JWTExpire       time.Duration
	CookieExpire    time.Duration
	LoginRateLimit  int
	ShutdownTimeout time.Duration
	S3              S3Config
}

type S3Config struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

// Enabled reports whether short videos can be uploaded.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads the optional .env file of the working directory and then the
// environment. Variables already present in the environment win over .env.
//
// PORT and MONGODB_URL have no defaults: an empty URL is reported by the
// driver when connecting and an empty port binds a kernel-chosen one.
func Load() Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("JWT_EXPIRE", "72h")
	v.SetDefault("COOKIE_EXPIRE", 5)
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range []string{
		"PORT", "MONGODB_URL", "MONGODB_DB", "JWT_SECRET",
		"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_PUBLIC_BASE_URL",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

func FromViper(v *viper.Viper) Config {
	cfg := Config{
		Env:             v.GetString("APP_ENV"),
		Port:            strings.TrimSpace(v.GetString("PORT")),
		MongoURI:        strings.TrimSpace(v.GetString("MONGODB_URL")),
		MongoDatabase:   strings.TrimSpace(v.GetString("MONGODB_DB")),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTExpire:       v.GetDuration("JWT_EXPIRE"),
		CookieExpire:    time.Duration(v.GetInt("COOKIE_EXPIRE")) * 24 * time.Hour,
		LoginRateLimit:  v.GetInt("LOGIN_RATE_PER_MINUTE"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		S3: S3Config{
			Bucket:        v.GetString("S3_BUCKET"),
			Region:        v.GetString("S3_REGION"),
			Endpoint:      v.GetString("S3_ENDPOINT"),
			PublicBaseURL: strings.TrimRight(v.GetString("S3_PUBLIC_BASE_URL"), "/"),
		},
	}

	if cfg.JWTExpire <= 0 {
		cfg.JWTExpire = 72 * time.Hour
	}
	if cfg.CookieExpire <= 0 {
		cfg.CookieExpire = 5 * 24 * time.Hour
	}
	if cfg.LoginRateLimit <= 0 {
		cfg.LoginRateLimit = 10
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 15 * time.Second
	}
	return cfg
}
