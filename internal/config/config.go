package config

import (
	"os"
	"strconv"
)

type Config struct {
	// HTTPAddr is the listen address for the API server.
	HTTPAddr string
	// DealSeed seeds the shuffle when non-zero, for reproducible games.
	DealSeed int64
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr: getenvStr("HTTP_ADDR", ":8080"),
		DealSeed: getenvInt64("DEAL_SEED", 0),
	}
}
