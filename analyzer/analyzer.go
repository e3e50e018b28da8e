// Package analyzer fetches a webpage and extracts its title and meta description.
package analyzer

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/seo-optimizer/audit-api/audit"
)

const userAgent = "SEOAuditor/1.0"

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Analyzer fetches pages over HTTP and parses them with goquery
type Analyzer struct {
	client *http.Client
}

// NewHTTPClient returns a client with connection pooling. A zero timeout means
// outbound calls are bounded only by the request context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// New creates an Analyzer. A nil client falls back to NewHTTPClient(0).
func New(client *http.Client) *Analyzer {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &Analyzer{client: client}
}

// FetchMetaTags downloads url and returns the UTF-8 text of the first <title> and the
// content of the first <meta name="description">. Missing elements yield empty
// strings. The body is parsed regardless of the response status.
func (a *Analyzer) FetchMetaTags(ctx context.Context, url string) (audit.MetaTags, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return audit.MetaTags{}, audit.Upstreamf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return audit.MetaTags{}, audit.Upstream(err)
	}
	defer resp.Body.Close()

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	if _, err := io.Copy(buf, resp.Body); err != nil {
		return audit.MetaTags{}, audit.Upstreamf("read body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(newUTF8Reader(buf.Bytes(), resp.Header.Get("Content-Type")))
	if err != nil {
		return audit.MetaTags{}, audit.Malformedf("parse html: %w", err)
	}

	return ExtractMetaTags(doc), nil
}

// newUTF8Reader decodes body to UTF-8 using the Content-Type charset, a BOM or a
// <meta charset> declaration. Bodies the detector cannot read (e.g. empty) are
// returned as is.
func newUTF8Reader(body []byte, contentType string) io.Reader {
	if r, err := charset.NewReader(bytes.NewReader(body), contentType); err == nil {
		return r
	}
	return bytes.NewReader(body)
}

// ExtractMetaTags reads the title and description from a parsed document
func ExtractMetaTags(doc *goquery.Document) audit.MetaTags {
	meta := audit.MetaTags{
		Title: doc.Find("title").First().Text(),
	}
	meta.Description, _ = doc.Find("meta[name='description']").First().Attr("content")
	return meta
}
