package config

import (
	"os"
	"testing"
	"time"

	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/stretchr/testify/assert"
)

func setEnv(t *testing.T, k, v string) {
	prev, had := os.LookupEnv(k)
	assert.NoError(t, os.Setenv(k, v))
	t.Cleanup(func() {
		if had {
			os.Setenv(k, prev)
		} else {
			os.Unsetenv(k)
		}
	})
}

func TestEnvConfig(t *testing.T) {
	cfg := NewEnvConfig(logutil.NewStderrLog("test"))

	setEnv(t, "RR_TEST_INT", "42")
	setEnv(t, "RR_TEST_BAD_INT", "4x")
	assert.Equal(t, 42, cfg.GetInt("rr_test_int", 1))
	assert.Equal(t, 1, cfg.GetInt("RR_TEST_BAD_INT", 1))
	assert.Equal(t, 7, cfg.GetInt("RR_TEST_MISSING", 7))

	setEnv(t, "RR_TEST_BOOL", "true")
	setEnv(t, "RR_TEST_BAD_BOOL", "maybe")
	assert.True(t, cfg.GetBool("RR_TEST_BOOL", false))
	assert.True(t, cfg.GetBool("RR_TEST_BAD_BOOL", true))

	setEnv(t, "RR_TEST_DURATION", "3s")
	assert.Equal(t, 3*time.Second, cfg.GetDuration("RR_TEST_DURATION", time.Second))

	setEnv(t, "RR_TEST_LIST", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetStringList("RR_TEST_LIST"))
	assert.Empty(t, cfg.GetStringList("RR_TEST_MISSING"))
}
