package configuration

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port      int
	BaseURL   string
	StaticDir string
}

type MongoConfig struct {
	Uri      string
	Database string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type RateLimitConfig struct {
	Window       time.Duration
	GlobalLimit  int64
	AuthLimit    int64
	PaymentLimit int64
}

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Auth      AuthConfig
	Razorpay  RazorpayConfig
	SMTP      SMTPConfig
	RateLimit RateLimitConfig
}

// LoadConfig reads configuration from the environment, with an optional
// .env file for local development. Missing keys fall back to defaults;
// secrets have no defaults and stay empty when unset.
func LoadConfig() (*Config, error) {
	// Best effort; production has no .env file.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("STATIC_DIR", "./static")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "isrc")
	v.SetDefault("TOKEN_TTL", "72h")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")
	v.SetDefault("RATE_LIMIT_GLOBAL", 500)
	v.SetDefault("RATE_LIMIT_AUTH", 50)
	v.SetDefault("RATE_LIMIT_PAYMENT", 30)

	cfg := &Config{
		Server: ServerConfig{
			Port:      v.GetInt("PORT"),
			BaseURL:   v.GetString("BASE_URL"),
			StaticDir: v.GetString("STATIC_DIR"),
		},
		Mongo: MongoConfig{
			Uri:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DATABASE"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("TOKEN_TTL"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     v.GetString("RZP_KEY_ID"),
			KeySecret: v.GetString("RZP_SECRET_KEY"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		RateLimit: RateLimitConfig{
			Window:       v.GetDuration("RATE_LIMIT_WINDOW"),
			GlobalLimit:  v.GetInt64("RATE_LIMIT_GLOBAL"),
			AuthLimit:    v.GetInt64("RATE_LIMIT_AUTH"),
			PaymentLimit: v.GetInt64("RATE_LIMIT_PAYMENT"),
		},
	}
	return cfg, nil
}
