// Package auth persists OAuth credentials on disk and implements the
// token provider port with transparent refresh.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/formery-dev/formery/internal/adapters/driven/oauth"
	"github.com/formery-dev/formery/internal/core/domain"
	"github.com/formery-dev/formery/internal/core/ports/driven"
	"github.com/formery-dev/formery/internal/logger"
)

// TokenFileName is the credentials file name within the config directory.
const TokenFileName = "token.json"

// refreshLeeway refreshes tokens slightly before their actual expiry so
// an in-flight API call never races the deadline.
const refreshLeeway = 30 * time.Second

// Credentials is the on-disk token record.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
}

// Ensure TokenFile implements the interface.
var _ driven.TokenProvider = (*TokenFile)(nil)

// TokenFile stores OAuth credentials in a JSON file (0600) and
// refreshes the access token through Google's token endpoint when it
// is close to expiry.
type TokenFile struct {
	mu           sync.Mutex
	path         string
	tokenURL     string
	clientID     string
	clientSecret string
	cached       *Credentials
}

// NewTokenFile creates a token provider backed by configDir/token.json.
func NewTokenFile(configDir, tokenURL, clientID, clientSecret string) *TokenFile {
	return &TokenFile{
		path:         filepath.Join(configDir, TokenFileName),
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Path returns the credentials file path.
func (t *TokenFile) Path() string {
	return t.path
}

// Exists reports whether stored credentials are present.
func (t *TokenFile) Exists() bool {
	_, err := os.Stat(t.path)
	return err == nil
}

// Save persists credentials with restricted permissions.
func (t *TokenFile) Save(creds Credentials) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	t.cached = &creds
	return nil
}

// Load reads the stored credentials. Returns domain.ErrAuthRequired
// when none exist.
func (t *TokenFile) Load() (*Credentials, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadLocked()
}

func (t *TokenFile) loadLocked() (*Credentials, error) {
	if t.cached != nil {
		return t.cached, nil
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrAuthRequired
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	t.cached = &creds
	return t.cached, nil
}

// Clear removes the stored credentials. Clearing absent credentials is
// not an error.
func (t *TokenFile) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cached = nil
	if err := os.Remove(t.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// GetToken implements driven.TokenProvider. It returns the stored
// access token, refreshing it first when expired or about to expire.
func (t *TokenFile) GetToken(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	creds, err := t.loadLocked()
	if err != nil {
		return "", err
	}

	if time.Until(creds.Expiry) > refreshLeeway {
		return creds.AccessToken, nil
	}

	if creds.RefreshToken == "" {
		return "", domain.ErrAuthExpired
	}

	logger.Debug("access token expired, refreshing")
	resp, err := oauth.RefreshAccessToken(ctx, t.tokenURL, t.clientID, t.clientSecret, creds.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthExpired, err)
	}

	refreshed := Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Expiry:       resp.Expiry,
	}
	data, err := json.MarshalIndent(refreshed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0600); err != nil {
		return "", fmt.Errorf("write credentials: %w", err)
	}
	t.cached = &refreshed

	return refreshed.AccessToken, nil
}
