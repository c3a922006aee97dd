package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_EarlierLayersWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "flags:1111"}},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "env:2222", RequestTimeout: 10 * time.Second},
			Storage: Storage{DB: DB{DSN: "env.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "flags:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
}

func TestConfigBuilder_EmptyLayers(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_MapsVariables(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/db")
	t.Setenv("APP_TOKEN_SIGN_KEY", "sekrit")
	t.Setenv("APP_TOKEN_DURATION", "12h")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sekrit", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
}

func TestParseEnv_ClientVariables(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://api.example:8080")
	t.Setenv("LOOKUP_BASE_URL", "https://lookup.example")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://api.example:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "https://lookup.example", cfg.Lookup.BaseURL)
}

func TestParseJSON_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-key",
			"token_issuer":   "json-issuer",
			"token_duration": "6h",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
		"server":  map[string]any{"http_address": "json:3333", "request_timeout": "45s"},
	}
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 6*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "json:3333", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")

	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"30s"`, want: 30 * time.Second},
		{name: "hours", input: `"24h"`, want: 24 * time.Hour},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "garbage string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestValidate_Server(t *testing.T) {
	cfg := &StructuredConfig{}
	require.ErrorIs(t, cfg.validate(), ErrMissingTokenSignKey)

	cfg.App.TokenSignKey = "key"
	require.NoError(t, cfg.validate())
}

func TestValidate_Client(t *testing.T) {
	cfg := &ClientConfig{}
	require.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg.Adapter = ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second}
	require.ErrorIs(t, cfg.validate(), ErrInvalidLookupConfigs)

	cfg.Lookup = Lookup{BaseURL: "https://world.openfoodfacts.org", RequestTimeout: time.Second}
	require.NoError(t, cfg.validate())
}
