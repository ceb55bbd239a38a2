package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBase = `
database:
  host: localhost
  name: testdb
  user: testuser
ebay:
  client_id: app-id
  client_secret: cert-id
  webhook_secret: topsecret
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: validBase,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "app-id", cfg.Ebay.ClientID)
				assert.Equal(t, "topsecret", cfg.Ebay.WebhookSecret)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: validBase,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://api.ebay.com/identity/v1/oauth2/token", cfg.Ebay.TokenURL)
				assert.Equal(t, "https://api.ebay.com", cfg.Ebay.APIURL)
				assert.Equal(t, "EBAY_US", cfg.Ebay.Marketplace)
				assert.Equal(t, 30*time.Second, cfg.Ebay.Timeout)
				assert.Equal(t, 5.0, cfg.Ebay.RateLimit.PerSecond)
				assert.Equal(t, int64(5000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, "https://www.googleapis.com/books/v1/volumes", cfg.Catalog.URL)
				assert.Equal(t, 6*time.Hour, cfg.Sync.Interval)
				assert.Equal(t, 100, cfg.Sync.PageSize)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
ebay:
  client_id: app-id
  client_secret: "${TEST_EBAY_SECRET}"
  webhook_secret: topsecret
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_EBAY_SECRET": "cert-from-env",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "cert-from-env", cfg.Ebay.ClientSecret)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
ebay:
  client_id: app-id
  client_secret: cert-id
  webhook_secret: topsecret
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required ebay.client_id",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
ebay:
  client_secret: cert-id
  webhook_secret: topsecret
`,
			wantErr: "ebay.client_id is required",
		},
		{
			name: "missing required ebay.webhook_secret",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
ebay:
  client_id: app-id
  client_secret: cert-id
`,
			wantErr: "ebay.webhook_secret is required",
		},
		{
			name: "telemetry enabled requires endpoint",
			yaml: validBase + `
telemetry:
  enabled: true
`,
			wantErr: "telemetry.endpoint is required",
		},
		{
			name:    "invalid YAML",
			yaml:    "::: not yaml :::",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Name:     "bookmint",
		User:     "app",
		Password: "pw",
		SSLMode:  "require",
	}

	assert.Equal(
		t,
		"host=db.internal port=5433 dbname=bookmint user=app password=pw sslmode=require",
		d.DSN(),
	)
}
