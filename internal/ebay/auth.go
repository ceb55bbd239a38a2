package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bookmint/bookmint/internal/metrics"
	domain "github.com/bookmint/bookmint/pkg/types"
)

const (
	defaultTokenURL     = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultAuthorizeURL = "https://auth.ebay.com/oauth2/authorize"

	// refreshBuffer is the safety margin before expiry: a token within
	// 5 minutes of expiring is refreshed before being handed out, so the
	// caller always holds a token valid for at least that long.
	refreshBuffer = 5 * time.Minute
)

// TokenManager implements TokenSource for user tokens: it loads the
// per-user Credential from the store, refreshes it via the eBay OAuth2
// refresh grant when it is near expiry, and persists the result. Refreshes
// for the same user are serialized through a per-user mutex; different
// users never contend.
type TokenManager struct {
	creds        CredentialStore
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	authorizeURL string
	scopes       string
	client       *http.Client
	nowFunc      func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// TokenOption configures the TokenManager.
type TokenOption func(*TokenManager)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.tokenURL = u
	}
}

// WithAuthorizeURL overrides the default eBay consent endpoint.
func WithAuthorizeURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.authorizeURL = u
	}
}

// WithScopes overrides the default OAuth scopes.
func WithScopes(scopes []string) TokenOption {
	return func(m *TokenManager) {
		m.scopes = strings.Join(scopes, " ")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) TokenOption {
	return func(m *TokenManager) {
		m.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.nowFunc = f
	}
}

// NewTokenManager creates a TokenManager backed by the given credential
// store and eBay application keys.
func NewTokenManager(
	creds CredentialStore,
	clientID, clientSecret, redirectURI string,
	opts ...TokenOption,
) *TokenManager {
	m := &TokenManager{
		creds:        creds,
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		tokenURL:     defaultTokenURL,
		authorizeURL: defaultAuthorizeURL,
		scopes:       "https://api.ebay.com/oauth/api_scope/sell.inventory",
		client:       &http.Client{Timeout: 10 * time.Second},
		nowFunc:      time.Now,
		locks:        make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// AccessToken returns a valid access token for the user, refreshing and
// persisting the credential if it expires within the safety buffer. The
// returned token is good for at least the buffer duration, barring clock
// skew.
func (m *TokenManager) AccessToken(ctx context.Context, userID string) (string, error) {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cred, err := m.creds.GetCredential(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading credential: %w", err)
	}
	if cred == nil {
		return "", ErrNotAuthenticated
	}

	if m.nowFunc().Add(refreshBuffer).Before(cred.ExpiresAt) {
		return cred.AccessToken, nil
	}

	refreshed, err := m.refresh(ctx, cred)
	if err != nil {
		return "", err
	}

	return refreshed.AccessToken, nil
}

// refresh exchanges the stored refresh token for a new access token and
// persists the updated credential. The stored record is not mutated on
// failure. eBay only sometimes rotates the refresh token; when the
// response omits one, the prior refresh token is retained.
func (m *TokenManager) refresh(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {cred.RefreshToken},
		"scope":         {m.scopes},
	}

	tok, err := m.requestToken(ctx, form)
	if err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		// A timeout says nothing about the refresh token itself, so it
		// must not carry the reconnect-required sentinel.
		if errors.Is(err, ErrMarketplaceTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenRefreshFailed, err)
	}

	now := m.nowFunc()
	updated := *cred
	updated.AccessToken = tok.AccessToken
	updated.ExpiresAt = now.Add(time.Duration(tok.ExpiresIn) * time.Second)
	updated.UpdatedAt = now
	if tok.RefreshToken != "" {
		updated.RefreshToken = tok.RefreshToken
	}

	if err := m.creds.UpsertCredential(ctx, &updated); err != nil {
		return nil, fmt.Errorf("persisting refreshed credential: %w", err)
	}

	metrics.TokenRefreshesTotal.Inc()
	return &updated, nil
}

// Exchange trades an authorization code for tokens and stores them as the
// user's credential, replacing any previous one.
func (m *TokenManager) Exchange(ctx context.Context, userID, code string) error {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {m.redirectURI},
	}

	tok, err := m.requestToken(ctx, form)
	if err != nil {
		return err
	}

	now := m.nowFunc()
	cred := &domain.Credential{
		UserID:       userID,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(tok.ExpiresIn) * time.Second),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := m.creds.UpsertCredential(ctx, cred); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}

	return nil
}

// Disconnect deletes the user's stored credential.
func (m *TokenManager) Disconnect(ctx context.Context, userID string) error {
	return m.creds.DeleteCredential(ctx, userID)
}

// ConsentURL builds the eBay OAuth consent page URL for the user to
// authorize the application.
func (m *TokenManager) ConsentURL(state string) string {
	params := url.Values{
		"client_id":     {m.clientID},
		"redirect_uri":  {m.redirectURI},
		"response_type": {"code"},
		"scope":         {m.scopes},
	}
	if state != "" {
		params.Set("state", state)
	}
	return m.authorizeURL + "?" + params.Encode()
}

func (m *TokenManager) requestToken(ctx context.Context, form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(m.clientID + ":" + m.clientSecret),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := m.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("token request: %w", ErrMarketplaceTimeout)
		}
		return nil, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return nil, fmt.Errorf(
			"token request rejected (status %d): %s - %s",
			resp.StatusCode,
			errResp.Error,
			errResp.ErrorDescription,
		)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	return &tok, nil
}

// userLock returns the serialization mutex for one user, creating it on
// first use. Two concurrent callers observing the same near-expiry token
// would otherwise both refresh, and the marketplace may invalidate the
// refresh token the loser still holds.
func (m *TokenManager) userLock(userID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	return lock
}
