package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/audit-api/audit"
)

func TestAuditCommand(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<title>Example</title><meta name="description" content="A test page">`)
	}))
	defer page.Close()

	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "serp-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "widgets", r.URL.Query().Get("q"))
		_, _ = io.WriteString(w, `{"organic_results":[{"link":"https://a.com"},{"link":"https://b.com"}]}`)
	}))
	defer search.Close()

	completion := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-key", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Use bold colors."}}]}`)
	}))
	defer completion.Close()

	chdir(t, t.TempDir())
	t.Setenv("SERPAPI_KEY", "serp-key")
	t.Setenv("OPENAI_API_KEY", "sk-key")
	t.Setenv("SERPAPI_BASE_URL", search.URL)
	t.Setenv("OPENAI_BASE_URL", completion.URL)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"audit", "--url", page.URL, "--keyword", "widgets"})
	require.NoError(t, Execute())

	var result audit.AuditResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 75, result.SEOScore)
	assert.Equal(t, audit.MetaTags{Title: "Example", Description: "A test page"}, result.MetaTags)
	assert.Equal(t, []audit.CompetitorEntry{{URL: "https://a.com"}, {URL: "https://b.com"}}, result.CompetitorComparison)
	assert.Equal(t, result.BrandVoiceSuggestions, result.VisualSuggestions)
}

func TestAuditCommandMissingKeys(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERPAPI_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"audit", "--url", "https://example.com", "--keyword", "widgets"})
	err := Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERPAPI_KEY is required")
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
