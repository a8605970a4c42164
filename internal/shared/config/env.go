package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/reporemover/reporemover-api/internal/shared/logutil"
)

type EnvConfig struct {
	log logutil.Log
}

var _ Config = &EnvConfig{}

func NewEnvConfig(log logutil.Log) *EnvConfig {
	return &EnvConfig{
		log: log,
	}
}

func (c EnvConfig) getValue(key string) string {
	return strings.TrimSpace(os.Getenv(strings.ToUpper(key)))
}

func (c EnvConfig) GetString(key string) string {
	return c.getValue(key)
}

// GetStringList splits a comma separated value, empty items are dropped.
func (c EnvConfig) GetStringList(key string) []string {
	var ret []string
	for _, item := range strings.Split(c.getValue(key), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			ret = append(ret, item)
		}
	}

	return ret
}

func (c EnvConfig) GetDuration(key string, def time.Duration) time.Duration {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	d, err := time.ParseDuration(cfgStr)
	if err != nil {
		c.log.Warnf("Config: invalid duration %s=%q: %s", key, cfgStr, err)
		return def
	}

	return d
}

func (c EnvConfig) GetInt(key string, def int) int {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	v, err := strconv.Atoi(cfgStr)
	if err != nil {
		c.log.Warnf("Config: invalid int %s=%q: %s", key, cfgStr, err)
		return def
	}

	return v
}

func (c EnvConfig) GetBool(key string, def bool) bool {
	switch cfgStr := strings.ToLower(c.getValue(key)); cfgStr {
	case "":
		return def
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		c.log.Warnf("Config: invalid bool %s=%q", key, cfgStr)
		return def
	}
}
