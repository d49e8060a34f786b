// Package tokens owns the OAuth credential lifecycle: the connect
// handshake, expiry detection, bounded refresh with failure
// classification, and disconnect.
package tokens

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"parkpilot/internal/domain"
	"parkpilot/internal/store"
)

var (
	// ErrNotConnected means no usable credential exists for the user.
	ErrNotConnected = errors.New("calendar not connected")

	// ErrRefreshUnavailable means the stored credential could not be
	// refreshed right now but remains stored for a future attempt.
	ErrRefreshUnavailable = errors.New("token refresh unavailable")

	// ErrInvalidState means the OAuth callback state failed verification.
	ErrInvalidState = errors.New("invalid oauth state")
)

const refreshAttempts = 2

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	Scopes       []string

	// StateSecret signs the userID carried through the OAuth redirect.
	StateSecret string

	// RefreshBackoff separates the two refresh attempts of one call.
	RefreshBackoff time.Duration

	// ExpiryMargin treats a token lapsing within the margin as expired.
	ExpiryMargin time.Duration
}

type Manager struct {
	repo        store.CredentialRepository
	oauth       *oauth2.Config
	provider    string
	stateSecret []byte
	backoff     time.Duration
	margin      time.Duration
	log         *slog.Logger

	group singleflight.Group
	now   func() time.Time
}

func NewManager(repo store.CredentialRepository, cfg Config, log *slog.Logger) (*Manager, error) {
	if repo == nil {
		return nil, errors.New("credential repository is required")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RedirectURL == "" {
		return nil, errors.New("oauth client configuration is incomplete")
	}
	if cfg.StateSecret == "" {
		return nil, errors.New("oauth state secret is required")
	}
	if log == nil {
		log = slog.Default()
	}

	backoff := cfg.RefreshBackoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	margin := cfg.ExpiryMargin
	if margin <= 0 {
		margin = 30 * time.Second
	}

	return &Manager{
		repo: repo,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		provider:    domain.CalendarProviderGoogle,
		stateSecret: []byte(cfg.StateSecret),
		backoff:     backoff,
		margin:      margin,
		log:         log.With(slog.String("component", "tokens")),
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

// BeginConnect returns the provider authorization URL for the user, with
// the user identity signed into the state parameter.
func (m *Manager) BeginConnect(userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user_id is required")
	}
	state, err := m.signState(userID)
	if err != nil {
		return "", err
	}
	return m.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

// CompleteConnect exchanges the authorization code and persists the
// resulting token pair for the user recovered from state.
func (m *Manager) CompleteConnect(ctx context.Context, code, state string) error {
	userID, err := m.verifyState(state)
	if err != nil {
		return err
	}

	token, err := m.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("code exchange failed: %w", err)
	}

	if token.RefreshToken == "" {
		existing, err := m.repo.Get(ctx, userID, m.provider)
		if err != nil || !existing.Usable() {
			return errors.New("provider returned no refresh token; re-run consent")
		}
	}

	_, err = m.repo.Upsert(ctx, domain.CalendarCredential{
		UserID:       userID,
		Provider:     m.provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Scope:        tokenScope(token),
		ExpiresAt:    token.Expiry.UTC(),
	})
	if err != nil {
		return err
	}

	m.log.Info("calendar connected", slog.String("user_id", userID))
	return nil
}

// IsConnected reports whether a credential with a refresh token is stored.
// It deliberately never talks to the provider, so a transient outage does
// not read as a disconnect.
func (m *Manager) IsConnected(ctx context.Context, userID string) (bool, error) {
	cred, err := m.repo.Get(ctx, userID, m.provider)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return cred.Usable(), nil
}

// Disconnect deletes the stored credential. Missing rows are not an error.
func (m *Manager) Disconnect(ctx context.Context, userID string) error {
	if err := m.repo.Delete(ctx, userID, m.provider); err != nil {
		return err
	}
	m.log.Info("calendar disconnected", slog.String("user_id", userID))
	return nil
}

// AccessToken returns a currently valid access token for the user,
// refreshing first when the stored one has lapsed. Refresh is serialized
// per user and attempted at most twice per call.
func (m *Manager) AccessToken(ctx context.Context, userID string) (string, error) {
	cred, err := m.repo.Get(ctx, userID, m.provider)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotConnected
		}
		return "", err
	}
	if !cred.Usable() {
		return "", ErrNotConnected
	}
	if cred.Fresh(m.now(), m.margin) {
		return cred.AccessToken, nil
	}

	token, err, _ := m.group.Do(userID, func() (any, error) {
		return m.refresh(ctx, cred)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (m *Manager) refresh(ctx context.Context, cred domain.CalendarCredential) (string, error) {
	log := m.log.With(slog.String("user_id", cred.UserID))

	var lastErr error
	for attempt := 1; attempt <= refreshAttempts; attempt++ {
		token, err := m.refreshOnce(ctx, cred.RefreshToken)
		if err == nil {
			updated := cred
			updated.AccessToken = token.AccessToken
			updated.ExpiresAt = token.Expiry.UTC()
			if token.RefreshToken != "" {
				updated.RefreshToken = token.RefreshToken
			}
			if token.TokenType != "" {
				updated.TokenType = token.TokenType
			}
			if _, err := m.repo.Upsert(ctx, updated); err != nil {
				return "", err
			}
			log.Debug("token refreshed", slog.Time("expires_at", updated.ExpiresAt))
			return token.AccessToken, nil
		}

		if classifyRefreshError(err) == PermanentFailure {
			log.Warn("refresh rejected; dropping credential", slog.Any("err", err))
			if delErr := m.repo.Delete(ctx, cred.UserID, cred.Provider); delErr != nil {
				log.Error("credential delete failed", slog.Any("err", delErr))
			}
			return "", ErrNotConnected
		}

		lastErr = err
		log.Warn("transient refresh failure", slog.Int("attempt", attempt), slog.Any("err", err))
		if attempt < refreshAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(m.backoff):
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrRefreshUnavailable, lastErr)
}

func (m *Manager) refreshOnce(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	src := m.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	return src.Token()
}

// RefreshFailureClass classifies one failed refresh attempt.
type RefreshFailureClass int

const (
	TransientFailure RefreshFailureClass = iota
	PermanentFailure
)

// classifyRefreshError maps provider token-endpoint failures onto the
// two-valued classification. Unknown shapes stay Transient so a provider
// hiccup never deletes a working credential.
func classifyRefreshError(err error) RefreshFailureClass {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return TransientFailure
	}

	switch retrieveErr.ErrorCode {
	case "invalid_grant", "invalid_token", "unauthorized_client", "access_denied":
		return PermanentFailure
	}

	if retrieveErr.Response != nil {
		switch retrieveErr.Response.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return PermanentFailure
		}
	}
	return TransientFailure
}

func tokenScope(token *oauth2.Token) string {
	if scope, ok := token.Extra("scope").(string); ok {
		return scope
	}
	return ""
}

func (m *Manager) signState(userID string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	payload := fmt.Sprintf("%s|%x", userID, nonce)
	mac := hmac.New(sha256.New, m.stateSecret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." +
		base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

func (m *Manager) verifyState(state string) (string, error) {
	encodedPayload, encodedMAC, ok := strings.Cut(state, ".")
	if !ok {
		return "", ErrInvalidState
	}
	payload, err := base64.RawURLEncoding.DecodeString(encodedPayload)
	if err != nil {
		return "", ErrInvalidState
	}
	gotMAC, err := base64.RawURLEncoding.DecodeString(encodedMAC)
	if err != nil {
		return "", ErrInvalidState
	}

	mac := hmac.New(sha256.New, m.stateSecret)
	mac.Write(payload)
	if !hmac.Equal(gotMAC, mac.Sum(nil)) {
		return "", ErrInvalidState
	}

	userID, _, ok := strings.Cut(string(payload), "|")
	if !ok || userID == "" {
		return "", ErrInvalidState
	}
	return userID, nil
}
