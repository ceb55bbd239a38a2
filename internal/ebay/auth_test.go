package ebay_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookmint/bookmint/internal/ebay"
	domain "github.com/bookmint/bookmint/pkg/types"
)

// memCredStore is an in-memory CredentialStore for tests.
type memCredStore struct {
	mu    sync.Mutex
	creds map[string]*domain.Credential
}

func newMemCredStore() *memCredStore {
	return &memCredStore{creds: make(map[string]*domain.Credential)}
}

func (s *memCredStore) GetCredential(_ context.Context, userID string) (*domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.creds[userID]
	if !ok {
		return nil, nil
	}
	cp := *cred
	return &cp, nil
}

func (s *memCredStore) UpsertCredential(_ context.Context, cred *domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *cred
	s.creds[cred.UserID] = &cp
	return nil
}

func (s *memCredStore) DeleteCredential(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, userID)
	return nil
}

// tokenJSON returns a valid eBay OAuth2 token response as JSON bytes.
// refreshToken may be empty to simulate a response without rotation.
func tokenJSON(token, refreshToken string, expiresIn int) []byte {
	if refreshToken == "" {
		return fmt.Appendf(nil,
			`{"access_token":%q,"expires_in":%d,"token_type":"User Access Token"}`,
			token, expiresIn,
		)
	}
	return fmt.Appendf(nil,
		`{"access_token":%q,"refresh_token":%q,"expires_in":%d,"token_type":"User Access Token"}`,
		token, refreshToken, expiresIn,
	)
}

func seedCredential(s *memCredStore, userID string, expiresAt time.Time) {
	_ = s.UpsertCredential(context.Background(), &domain.Credential{
		UserID:       userID,
		AccessToken:  "stored-access",
		RefreshToken: "stored-refresh",
		ExpiresAt:    expiresAt,
	})
}

func TestTokenManager_NotAuthenticated(t *testing.T) {
	t.Parallel()

	m := ebay.NewTokenManager(newMemCredStore(), "app", "cert", "https://cb.example")

	_, err := m.AccessToken(context.Background(), "user-1")
	require.ErrorIs(t, err, ebay.ErrNotAuthenticated)
}

func TestTokenManager_RefreshBuffer(t *testing.T) {
	t.Parallel()

	// Credential created at t0 with expires_in=7200.
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := t0.Add(7200 * time.Second)

	tests := []struct {
		name        string
		now         time.Time
		wantRefresh bool
	}{
		{
			name:        "well before buffer",
			now:         t0.Add(100 * time.Second),
			wantRefresh: false,
		},
		{
			name: "5s before buffer boundary",
			// 7195s elapsed: 5s of validity beyond the 5-minute safety
			// buffer is not enough.
			now:         t0.Add(7195 * time.Second),
			wantRefresh: true,
		},
		{
			name:        "already expired",
			now:         t0.Add(8000 * time.Second),
			wantRefresh: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(tokenJSON("fresh-access", "", 7200))
			}))
			defer srv.Close()

			creds := newMemCredStore()
			seedCredential(creds, "user-1", expiresAt)

			m := ebay.NewTokenManager(creds, "app", "cert", "https://cb.example",
				ebay.WithTokenURL(srv.URL),
				ebay.WithNowFunc(func() time.Time { return tt.now }),
			)

			token, err := m.AccessToken(context.Background(), "user-1")
			require.NoError(t, err)

			if tt.wantRefresh {
				assert.Equal(t, "fresh-access", token)
				assert.Equal(t, int32(1), calls.Load())
			} else {
				assert.Equal(t, "stored-access", token)
				assert.Equal(t, int32(0), calls.Load())
			}
		})
	}
}

func TestTokenManager_RefreshPersistsCredential(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		response        []byte
		wantRefreshTok  string
		wantAccessToken string
	}{
		{
			name:            "refresh token rotated when supplied",
			response:        tokenJSON("new-access", "new-refresh", 7200),
			wantRefreshTok:  "new-refresh",
			wantAccessToken: "new-access",
		},
		{
			name:            "refresh token retained when omitted",
			response:        tokenJSON("new-access", "", 7200),
			wantRefreshTok:  "stored-refresh",
			wantAccessToken: "new-access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(tt.response)
			}))
			defer srv.Close()

			creds := newMemCredStore()
			oldExpiry := now.Add(time.Minute) // inside the buffer, forces refresh
			seedCredential(creds, "user-1", oldExpiry)

			m := ebay.NewTokenManager(creds, "app", "cert", "https://cb.example",
				ebay.WithTokenURL(srv.URL),
				ebay.WithNowFunc(func() time.Time { return now }),
			)

			token, err := m.AccessToken(context.Background(), "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccessToken, token)

			stored, err := creds.GetCredential(context.Background(), "user-1")
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tt.wantAccessToken, stored.AccessToken)
			assert.Equal(t, tt.wantRefreshTok, stored.RefreshToken)
			assert.True(t, stored.ExpiresAt.After(oldExpiry),
				"expiry must move strictly later on refresh")
			assert.Equal(t, now.Add(7200*time.Second), stored.ExpiresAt)
		})
	}
}

func TestTokenManager_RefreshRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"refresh token revoked"}`))
	}))
	defer srv.Close()

	now := time.Now()
	creds := newMemCredStore()
	seedCredential(creds, "user-1", now.Add(time.Minute))

	m := ebay.NewTokenManager(creds, "app", "cert", "https://cb.example",
		ebay.WithTokenURL(srv.URL),
	)

	_, err := m.AccessToken(context.Background(), "user-1")
	require.ErrorIs(t, err, ebay.ErrTokenRefreshFailed)
	assert.Contains(t, err.Error(), "invalid_grant")

	// Stored record must be untouched on failure.
	stored, err := creds.GetCredential(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "stored-access", stored.AccessToken)
	assert.Equal(t, "stored-refresh", stored.RefreshToken)
	assert.Equal(t, now.Add(time.Minute).Unix(), stored.ExpiresAt.Unix())
}

func TestTokenManager_RefreshTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	creds := newMemCredStore()
	seedCredential(creds, "user-1", time.Now().Add(time.Minute))

	m := ebay.NewTokenManager(creds, "app", "cert", "https://cb.example",
		ebay.WithTokenURL(srv.URL),
		ebay.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}),
	)

	_, err := m.AccessToken(context.Background(), "user-1")
	require.ErrorIs(t, err, ebay.ErrMarketplaceTimeout)
	// A slow token endpoint is not a revoked grant; the user must not be
	// told to reconnect.
	assert.NotErrorIs(t, err, ebay.ErrTokenRefreshFailed)
}

func TestTokenManager_ExchangeRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"code expired"}`))
	}))
	defer srv.Close()

	m := ebay.NewTokenManager(newMemCredStore(), "app", "cert", "https://cb.example",
		ebay.WithTokenURL(srv.URL),
	)

	err := m.Exchange(context.Background(), "user-1", "stale-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_grant")
	assert.NotErrorIs(t, err, ebay.ErrTokenRefreshFailed,
		"a failed code exchange is not a refresh failure")
}

func TestTokenManager_RefreshRequestFormat(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Contains(t, r.Header.Get("Authorization"), "Basic ")

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		assert.Equal(t, "stored-refresh", r.FormValue("refresh_token"))
		assert.Contains(t, r.FormValue("scope"), "sell.inventory")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("fresh-access", "", 7200))
	}))
	defer srv.Close()

	creds := newMemCredStore()
	seedCredential(creds, "user-1", time.Now().Add(time.Minute))

	m := ebay.NewTokenManager(creds, "app", "cert", "https://cb.example",
		ebay.WithTokenURL(srv.URL),
	)

	token, err := m.AccessToken(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "fresh-access", token)
}

func TestTokenManager_Exchange(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		assert.Equal(t, "consent-code-123", r.FormValue("code"))
		assert.Equal(t, "https://cb.example/ebay/callback", r.FormValue("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("first-access", "first-refresh", 7200))
	}))
	defer srv.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	creds := newMemCredStore()

	m := ebay.NewTokenManager(creds, "app", "cert", "https://cb.example/ebay/callback",
		ebay.WithTokenURL(srv.URL),
		ebay.WithNowFunc(func() time.Time { return now }),
	)

	require.NoError(t, m.Exchange(context.Background(), "user-1", "consent-code-123"))

	stored, err := creds.GetCredential(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "first-access", stored.AccessToken)
	assert.Equal(t, "first-refresh", stored.RefreshToken)
	assert.Equal(t, now.Add(7200*time.Second), stored.ExpiresAt)
}

func TestTokenManager_Disconnect(t *testing.T) {
	t.Parallel()

	creds := newMemCredStore()
	seedCredential(creds, "user-1", time.Now().Add(time.Hour))

	m := ebay.NewTokenManager(creds, "app", "cert", "https://cb.example")
	require.NoError(t, m.Disconnect(context.Background(), "user-1"))

	stored, err := creds.GetCredential(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestTokenManager_ConsentURL(t *testing.T) {
	t.Parallel()

	m := ebay.NewTokenManager(newMemCredStore(), "my-app", "cert", "https://cb.example/ebay/callback",
		ebay.WithAuthorizeURL("https://auth.sandbox.ebay.com/oauth2/authorize"),
	)

	u := m.ConsentURL("state-xyz")
	assert.Contains(t, u, "https://auth.sandbox.ebay.com/oauth2/authorize?")
	assert.Contains(t, u, "client_id=my-app")
	assert.Contains(t, u, "response_type=code")
	assert.Contains(t, u, "state=state-xyz")
}

func TestTokenManager_ConcurrentRefreshSerialized(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("concurrent-access", "", 7200))
	}))
	defer srv.Close()

	creds := newMemCredStore()
	seedCredential(creds, "user-1", time.Now().Add(time.Minute))

	m := ebay.NewTokenManager(creds, "app", "cert", "https://cb.example",
		ebay.WithTokenURL(srv.URL),
	)

	const goroutines = 10

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			token, err := m.AccessToken(context.Background(), "user-1")
			assert.NoError(t, err)
			assert.Equal(t, "concurrent-access", token)
		}()
	}

	wg.Wait()

	// The per-user lock serializes callers; after the first refresh the
	// rest observe a fresh credential and skip the token endpoint.
	assert.Equal(t, int32(1), calls.Load())
}
