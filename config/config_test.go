package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	// Run from an empty directory so no .env file leaks into the test.
	chdir(t, t.TempDir())
	for _, key := range []string{
		"SERPAPI_KEY", "OPENAI_API_KEY", "SERPAPI_BASE_URL", "OPENAI_BASE_URL",
		"OPENAI_MODEL", "HTTP_TIMEOUT", "PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"SERPAPI_KEY":    "serp",
		"OPENAI_API_KEY": "sk",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "serp", cfg.SearchAPIKey)
	assert.Equal(t, "sk", cfg.CompletionAPIKey)
	assert.Equal(t, "https://serpapi.com", cfg.SearchBaseURL)
	assert.Equal(t, "https://api.openai.com/v1", cfg.CompletionBaseURL)
	assert.Equal(t, "gpt-4-turbo", cfg.CompletionModel)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"SERPAPI_KEY":      "serp",
		"OPENAI_API_KEY":   "sk",
		"SERPAPI_BASE_URL": "http://localhost:9001",
		"OPENAI_BASE_URL":  "http://localhost:9002/v1",
		"OPENAI_MODEL":     "gpt-4o",
		"HTTP_TIMEOUT":     "45s",
		"PORT":             "9090",
		"GIN_MODE":         "debug",
		"LOG_LEVEL":        "debug",
		"LOG_FORMAT":       "json",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9001", cfg.SearchBaseURL)
	assert.Equal(t, "http://localhost:9002/v1", cfg.CompletionBaseURL)
	assert.Equal(t, "gpt-4o", cfg.CompletionModel)
	assert.Equal(t, 45*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadMissingKeys(t *testing.T) {
	setEnv(t, map[string]string{})

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERPAPI_KEY is required")
	assert.Contains(t, err.Error(), "OPENAI_API_KEY is required")
}

func TestLoadInvalidTimeout(t *testing.T) {
	setEnv(t, map[string]string{
		"SERPAPI_KEY":    "serp",
		"OPENAI_API_KEY": "sk",
		"HTTP_TIMEOUT":   "soon",
	})

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestValidate(t *testing.T) {
	valid := Config{SearchAPIKey: "a", CompletionAPIKey: "b", GinMode: "release"}
	assert.NoError(t, valid.Validate())

	blank := valid
	blank.SearchAPIKey = "   "
	assert.ErrorContains(t, blank.Validate(), "SERPAPI_KEY")

	badMode := valid
	badMode.GinMode = "verbose"
	assert.ErrorContains(t, badMode.Validate(), "GIN_MODE")

	negative := valid
	negative.HTTPTimeout = -time.Second
	assert.ErrorContains(t, negative.Validate(), "HTTP_TIMEOUT")
}

// chdir changes the working directory for the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
