package redis

import (
	"errors"
	"fmt"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/reporemover/reporemover-api/internal/shared/config"
)

func IsConfigured(cfg config.Config) bool {
	return cfg.GetString("REDIS_URL") != "" || cfg.GetString("REDIS_HOST") != ""
}

func GetPool(cfg config.Config) (*redis.Pool, error) {
	redisURL, err := GetURL(cfg)
	if err != nil {
		return nil, err
	}

	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		TestOnBorrow: func(c redis.Conn, _ time.Time) error {
			_, pingErr := c.Do("PING")
			return pingErr
		},
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(redisURL)
		},
	}, nil
}

func GetURL(cfg config.Config) (string, error) {
	if redisURL := cfg.GetString("REDIS_URL"); redisURL != "" {
		return redisURL, nil
	}

	host := cfg.GetString("REDIS_HOST")
	if host == "" {
		return "", errors.New("no REDIS_URL or REDIS_HOST in config")
	}

	password := cfg.GetString("REDIS_PASSWORD")
	if password == "" {
		return fmt.Sprintf("redis://%s", host), nil
	}

	return fmt.Sprintf("redis://h:%s@%s", password, host), nil
}
