package events

import (
	"github.com/dukex/mixpanel"
	"github.com/reporemover/reporemover-api/internal/shared/config"
)

func newMixpanelClient(cfg config.Config) mixpanel.Mixpanel {
	apiKey := cfg.GetString("MIXPANEL_API_KEY")
	if apiKey == "" {
		return nil
	}

	// empty url means the public mixpanel api
	return mixpanel.New(apiKey, cfg.GetString("MIXPANEL_API_URL"))
}
