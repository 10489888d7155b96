package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"scrapquote/internal/ivr"
	"scrapquote/internal/storage"
)

const DefaultVpicURL = "https://vpic.nhtsa.dot.gov/api/vehicles/GetCanadianVehicleSpecifications/"

type Config struct {
	Port            string
	LogLevel        zerolog.Level
	VpicURL         string
	VpicTimeout     time.Duration
	StoreBackend    string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	DatabaseURL     string
	IVR             ivr.Destinations
	ShutdownTimeout time.Duration
}

// Load reads config from the environment, a changed --port flag wins over PORT
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VPIC_URL", DefaultVpicURL)
	v.SetDefault("VPIC_TIMEOUT", "0s")
	v.SetDefault("STORE_BACKEND", storage.BackendRedis)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", "0")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("IVR_SALES_NUMBER", "+12494965822")
	v.SetDefault("IVR_REMOVAL_NUMBER", "")
	v.SetDefault("IVR_PARTS_NUMBER", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	if flags != nil {
		if f := flags.Lookup("port"); f != nil {
			if err := v.BindPFlag("PORT", f); err != nil {
				return Config{}, err
			}
		}
	}

	cfg := Config{
		Port:          v.GetString("PORT"),
		VpicURL:       v.GetString("VPIC_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		IVR: ivr.Destinations{
			Sales:   v.GetString("IVR_SALES_NUMBER"),
			Removal: v.GetString("IVR_REMOVAL_NUMBER"),
			Parts:   v.GetString("IVR_PARTS_NUMBER"),
		},
	}

	var err error
	if cfg.LogLevel, err = zerolog.ParseLevel(v.GetString("LOG_LEVEL")); err != nil {
		return Config{}, parseErr("LOG_LEVEL", err)
	}
	if cfg.VpicTimeout, err = time.ParseDuration(v.GetString("VPIC_TIMEOUT")); err != nil {
		return Config{}, parseErr("VPIC_TIMEOUT", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT")); err != nil {
		return Config{}, parseErr("SHUTDOWN_TIMEOUT", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(v.GetString("REDIS_DB")); err != nil {
		return Config{}, parseErr("REDIS_DB", err)
	}
	if cfg.StoreBackend, err = storage.ParseBackend(v.GetString("STORE_BACKEND")); err != nil {
		return Config{}, parseErr("STORE_BACKEND", err)
	}
	if cfg.StoreBackend == storage.BackendPostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required for the %s backend", storage.BackendPostgres)
	}

	return cfg, nil
}

func parseErr(key string, err error) error {
	return fmt.Errorf("can't parse %s: %w", key, err)
}
