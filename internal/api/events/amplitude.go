package events

import (
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/savaki/amplitude-go"
)

func newAmplitudeClient(cfg config.Config) *amplitude.Client {
	apiKey := cfg.GetString("AMPLITUDE_API_KEY")
	if apiKey == "" {
		return nil
	}

	return amplitude.New(apiKey)
}
