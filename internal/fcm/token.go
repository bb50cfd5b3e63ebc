// internal/fcm/token.go
package fcm

import (
	"context"

	"golang.org/x/oauth2/google"

	"fcm-sender/internal/common/errors"
)

// TokenProvider yields a short-lived OAuth2 access token for a send.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// googleTokenProvider exchanges a service-account key for an access token via
// the JWT-bearer grant against the key's token_uri. A fresh token source is
// built per call; nothing is cached across invocations.
type googleTokenProvider struct {
	keyJSON []byte
	scopes  []string
}

func NewGoogleTokenProvider(creds *Credentials, scopes []string) TokenProvider {
	return &googleTokenProvider{
		keyJSON: creds.KeyJSON(),
		scopes:  scopes,
	}
}

func (p *googleTokenProvider) AccessToken(ctx context.Context) (string, error) {
	cfg, err := google.JWTConfigFromJSON(p.keyJSON, p.scopes...)
	if err != nil {
		return "", errors.NewTokenExchangeError(err)
	}

	tok, err := cfg.TokenSource(ctx).Token()
	if err != nil {
		return "", errors.NewTokenExchangeError(err)
	}

	return tok.AccessToken, nil
}
