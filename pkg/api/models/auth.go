package models

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const GithubProvider = "github"

// Auth is a provider authorization kept in the user's auth session.
type Auth struct {
	Provider       string `json:"provider"`
	AccessToken    string `json:"accessToken"`
	Login          string `json:"login"`
	Name           string `json:"name"`
	AvatarURL      string `json:"avatarUrl"`
	ProviderUserID uint64 `json:"providerUserId"`
}

func (a Auth) Marshal() (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal auth")
	}

	return string(data), nil
}

func UnmarshalAuth(s string) (*Auth, error) {
	var a Auth
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal auth")
	}

	if a.AccessToken == "" {
		return nil, errors.New("no access token in auth")
	}

	return &a, nil
}

// GoString hides the access token from logs.
func (a Auth) GoString() string {
	return "models.Auth{Provider:" + a.Provider + ", Login:" + a.Login + "}"
}
