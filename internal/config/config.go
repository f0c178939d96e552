package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv        string `mapstructure:"APP_ENV"`
	Port          string `mapstructure:"PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	RedisURL      string `mapstructure:"REDIS_URL"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// BaseURL is the external origin used to build short URLs. When empty,
	// handlers fall back to the request's own scheme and host.
	BaseURL string `mapstructure:"BASE_URL"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	JWTIssuer         string `mapstructure:"JWT_ISSUER"`
	JWTAudience       string `mapstructure:"JWT_AUDIENCE"`
	JWTExpiresMinutes int    `mapstructure:"JWT_EXPIRES_MINUTES"`

	GeoIPDBPath string `mapstructure:"GEOIP_DB_PATH"`

	// SweepIntervalMinutes controls how often expired links are purged.
	SweepIntervalMinutes int `mapstructure:"SWEEP_INTERVAL_MINUTES"`
}

func LoadConfig() (config Config, err error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "sqlite://urlshortner.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("BASE_URL", "")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_ISSUER", "urlshortner")
	viper.SetDefault("JWT_AUDIENCE", "urlshortner-client")
	viper.SetDefault("JWT_EXPIRES_MINUTES", 60)
	viper.SetDefault("GEOIP_DB_PATH", "")
	viper.SetDefault("SWEEP_INTERVAL_MINUTES", 10)

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Printf("unable to decode into struct, %v", err)
		return
	}

	return
}
