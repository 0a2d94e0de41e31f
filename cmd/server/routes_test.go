package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/newdev/autoflow/internal/config"
)

func testConfig(webhookURL string) config.Config {
	return config.Config{
		SlackWebhookURL: webhookURL,
		WebhookTimeout:  time.Second,
		SiteURL:         "https://site.example",
		LandingURL:      "https://landing.example",
		AssetsDir:       "../../assets",
	}
}

func TestRouterServesPublicPages(t *testing.T) {
	t.Parallel()

	router := newRouter(testConfig(""), time.UTC)
	for _, path := range []string{"/", "/sitemap.xml", "/healthz", "/assets/js/landing.js", "/assets/css/landing.css"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("path %q status = %d, want %d", path, rr.Code, http.StatusOK)
		}
	}
}

func TestRouterContactRejectsOtherMethods(t *testing.T) {
	t.Parallel()

	router := newRouter(testConfig(""), time.UTC)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/contact", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s status = %d, want %d", method, rr.Code, http.StatusMethodNotAllowed)
		}
	}
}

func TestRouterRelaysContactToWebhook(t *testing.T) {
	t.Parallel()

	bodies := make(chan string, 1)
	slackStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer slackStub.Close()

	router := newRouter(testConfig(slackStub.URL), time.UTC)
	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"홍길동","contact":"010-1234-5678","solution":"blog-solution"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"success":true}` {
		t.Fatalf("body = %s", got)
	}
	posted := <-bodies
	if !strings.Contains(posted, "네이버 블로그 솔루션 프로그램") {
		t.Fatalf("webhook payload missing label: %s", posted)
	}
	if !strings.Contains(posted, "https://landing.example") {
		t.Fatalf("webhook payload missing landing link: %s", posted)
	}
}
