package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"bcrypt_cost":         10,
			"session_duration":    "12h",
			"session_cookie_name": "notes_session",
			"secure_cookies":      true,
			"version":             "1.0.0",
		},
		"storage": map[string]any{
			"db": map[string]any{
				"driver": "sqlite3",
				"dsn":    "notes.db",
			},
		},
		"server": map[string]any{
			"http_address":    "localhost:8081",
			"request_timeout": "45s",
		},
		"workers": map[string]any{
			"session_sweep_interval": "5m",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, 12*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, "notes_session", cfg.App.SessionCookieName)
	assert.True(t, cfg.App.SecureCookies)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SessionSweepInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	f := writeTempJSONConfig(t, "not an object")
	_, err := parseJSON(f)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON_String(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))
}

func TestDuration_UnmarshalJSON_Number(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(data))
}
