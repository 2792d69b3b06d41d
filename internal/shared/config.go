package shared

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	DBUsername      string
	DBPassword      string
	DBHost          string
	DBPort          int
	DBName          string
	LogPath         string
	AppPort         string
	DemoMode        bool
	DuplicatePolicy string
	VoucherUnit     float64
	FollowURL       string
}

func NewConfig() *Config {
	cfg := Config{}
	cfg.DBUsername = os.Getenv("DB_USERNAME")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = cfg.getEnvInt("DB_PORT", 5432)
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.LogPath = os.Getenv("LOG_PATH")
	cfg.AppPort = os.Getenv("APP_PORT")
	cfg.DemoMode = os.Getenv("DEMO_MODE") == "true"
	cfg.DuplicatePolicy = os.Getenv("DUPLICATE_POLICY")
	cfg.VoucherUnit = cfg.getEnvFloat("VOUCHER_UNIT", 50)
	cfg.FollowURL = os.Getenv("FOLLOW_URL")
	return &cfg
}

func (cfg *Config) getEnvInt(key string, def int) int {
	env, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		log.Printf("Invalid %s environment variable, %s set to %d\n", key, key, def)
		env = def
	}
	return env
}

func (cfg *Config) getEnvFloat(key string, def float64) float64 {
	env, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || env <= 0 {
		log.Printf("Invalid %s environment variable, %s set to %g\n", key, key, def)
		env = def
	}
	return env
}
