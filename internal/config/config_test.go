package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL())
	require.Equal(t, 10*time.Second, cfg.API.UserListTimeout)
	require.Equal(t, time.Second, cfg.API.AckTimeout)
	require.Equal(t, "file", cfg.Store.Backend)
	require.NotEmpty(t, cfg.Store.Path)
	require.Equal(t, "syntheo:", cfg.Store.Prefix)
	require.False(t, cfg.Session.DevFallback)
	require.Equal(t, ":8000", cfg.HTTP.Addr)
}

func TestLoadFrom_DeviceContext(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"API_CONTEXT":         "device",
		"API_BASE_URL_DEVICE": "http://192.168.1.20:8000/api/",
	})
	require.NoError(t, err)
	require.Equal(t, "http://192.168.1.20:8000/api", cfg.APIBaseURL())
}

func TestLoadFrom_ExplicitBaseURLWins(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"API_CONTEXT":  "device",
		"API_BASE_URL": "https://zorg.example.nl/api",
	})
	require.NoError(t, err)
	require.Equal(t, "https://zorg.example.nl/api", cfg.APIBaseURL())
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom(map[string]string{"API_CONTEXT": "desktop"})
	require.Error(t, err)

	_, err = LoadFrom(map[string]string{"STORE_BACKEND": "sqlite"})
	require.Error(t, err)

	_, err = LoadFrom(map[string]string{"ACK_TIMEOUT": "soon"})
	require.Error(t, err)
}
