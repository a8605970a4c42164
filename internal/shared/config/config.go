package config

import "time"

type Config interface {
	GetString(key string) string
	GetStringList(key string) []string
	GetDuration(key string, def time.Duration) time.Duration
	GetInt(key string, def int) int
	GetBool(key string, def bool) bool
}

func IsProduction(cfg Config) bool {
	return cfg.GetString("GO_ENV") == "prod"
}

func IsDevelopment(cfg Config) bool {
	return cfg.GetString("GO_ENV") == "dev"
}
