package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// refreshBuffer is how long before expiry a token is treated as stale
const refreshBuffer = 60 * time.Second

// TokenSource refreshes Strava tokens as needed and hands each new token to
// onRefresh so it survives restarts. Strava rotates the refresh token on every
// refresh, so a token that fails to persist is not returned.
type TokenSource struct {
	ctx       context.Context
	config    *oauth2.Config
	token     *oauth2.Token
	onRefresh func(*oauth2.Token) error
	mu        sync.Mutex
}

// NewTokenSource creates a TokenSource starting from token. ctx is used for
// refresh requests and may carry an *http.Client under oauth2.HTTPClient.
func NewTokenSource(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token, onRefresh func(*oauth2.Token) error) *TokenSource {
	return &TokenSource{
		ctx:       ctx,
		config:    cfg,
		token:     token,
		onRefresh: onRefresh,
	}
}

// Token returns a valid token, refreshing if necessary
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if !expiresSoon(ts.token) {
		return ts.token, nil
	}

	// Force a refresh by handing the config a copy with no access token
	stale := &oauth2.Token{RefreshToken: ts.token.RefreshToken}
	newToken, err := ts.config.TokenSource(ts.ctx, stale).Token()
	if err != nil {
		return nil, err
	}

	if ts.onRefresh != nil {
		if err := ts.onRefresh(newToken); err != nil {
			return nil, err
		}
	}

	ts.token = newToken
	return newToken, nil
}

// IsExpired checks if the current token is expired or will expire within the buffer
func (ts *TokenSource) IsExpired() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return expiresSoon(ts.token)
}

// CurrentToken returns the current token without refreshing
func (ts *TokenSource) CurrentToken() *oauth2.Token {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.token
}

func expiresSoon(token *oauth2.Token) bool {
	return token == nil || time.Until(token.Expiry) <= refreshBuffer
}
