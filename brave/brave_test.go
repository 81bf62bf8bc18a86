package brave

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smadan/folionews"
)

const payload = `{
	"type": "news",
	"results": [
		{"title": " ACME posts record quarter ", "description": "Profit up 20%", "url": "https://news.example/1", "source": "Example Wire", "page_age": "2026-03-01T10:00:00"},
		{"title": "ACME opens new plant", "url": "https://news.example/2"}
	]
}`

func TestDecodeResults(t *testing.T) {
	articles, err := decodeResults(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decodeResults() error = %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("decodeResults() returned %d articles, want 2", len(articles))
	}
	want := folionews.Article{
		Title:       "ACME posts record quarter",
		Description: "Profit up 20%",
		URL:         "https://news.example/1",
		Source:      "Example Wire",
		PublishedAt: "2026-03-01T10:00:00",
	}
	if articles[0] != want {
		t.Errorf("decodeResults()[0] = %+v, want %+v", articles[0], want)
	}
	if articles[0].Sentiment != nil {
		t.Error("decodeResults() attached a sentiment")
	}
}

func TestDecodeResults_garbage(t *testing.T) {
	if _, err := decodeResults(strings.NewReader("<html>rate limited</html>")); err == nil {
		t.Error("decodeResults() on garbage expected an error")
	}
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotToken = r.Header.Get("X-Subscription-Token")
		if r.URL.Query().Get("freshness") != "pd7" {
			t.Errorf("freshness = %q, want pd7", r.URL.Query().Get("freshness"))
		}
		if r.URL.Query().Get("count") != "5" {
			t.Errorf("count = %q, want 5", r.URL.Query().Get("count"))
		}
		w.Write([]byte(payload))
	}))
	defer server.Close()

	c := &Client{Key: "secret", Endpoint: server.URL}
	opts := folionews.SearchOptions{MaxResults: 5, Freshness: "pd7", Exclude: []string{"simplywall.st"}}
	articles, err := c.Search(context.Background(), `"ACME Corp"`, opts)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("Search() returned %d articles, want 2", len(articles))
	}
	if want := `"ACME Corp" -site:simplywall.st`; gotQuery != want {
		t.Errorf("Search() query = %q, want %q", gotQuery, want)
	}
	if gotToken != "secret" {
		t.Errorf("Search() token = %q, want the client key", gotToken)
	}
}

func TestClient_Search_httpError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := &Client{Key: "secret", Endpoint: server.URL}
	if _, err := c.Search(context.Background(), "ACME", folionews.SearchOptions{}); err == nil {
		t.Error("Search() on a 429 expected an error")
	}
}

func TestClient_TopHeadlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("country") != "in" || q.Get("search_lang") != "en" || q.Get("count") != "10" {
			t.Errorf("unexpected headline params: %v", q)
		}
		w.Write([]byte(payload))
	}))
	defer server.Close()

	c := &Client{Key: "secret", Endpoint: server.URL}
	articles, err := c.TopHeadlines(context.Background(), "India business", "in", "en", 10)
	if err != nil {
		t.Fatalf("TopHeadlines() error = %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("TopHeadlines() returned %d articles, want 2", len(articles))
	}
}
