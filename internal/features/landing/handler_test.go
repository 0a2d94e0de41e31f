package landing

import (
	"encoding/xml"
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/newdev/autoflow/internal/features/contact"
)

func TestHandleIndexRendersPage(t *testing.T) {
	t.Parallel()

	h := NewHandler("https://site.example")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.HandleIndex(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", got)
	}
	body := html.UnescapeString(rr.Body.String())
	for _, marker := range []string{
		`<html lang="ko">`,
		"<title>AutoFlow - 네이버 블로그 & 카페 마케팅 자동화</title>",
		`id="contact-form"`,
		`action="/api/contact"`,
		"/assets/js/landing.js",
		"수작업은 이제 끝",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("page missing %q", marker)
		}
	}
}

func TestHandleIndexListsEverySolutionOption(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewHandler("").HandleIndex(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	body := html.UnescapeString(rr.Body.String())

	for _, s := range contact.Solutions() {
		option := `<option value="` + s.Code + `">` + s.OptionText() + `</option>`
		if !strings.Contains(body, option) {
			t.Fatalf("page missing option %q", option)
		}
	}
	for _, group := range []string{contact.GroupProducts, contact.GroupPackages} {
		if !strings.Contains(body, `<optgroup label="`+group+`">`) {
			t.Fatalf("page missing optgroup %q", group)
		}
	}
}

func TestHandleIndexRendersFAQ(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewHandler("").HandleIndex(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rr.Body.String()

	if got := strings.Count(body, "data-faq-question"); got != len(DefaultContent().FAQ) {
		t.Fatalf("faq items = %d, want %d", got, len(DefaultContent().FAQ))
	}
}

func TestHandleSitemap(t *testing.T) {
	t.Parallel()

	h := NewHandler("https://auto10x.newdev.it")
	h.now = func() time.Time { return time.Date(2026, 10, 17, 1, 2, 3, 0, time.UTC) }

	rr := httptest.NewRecorder()
	h.HandleSitemap(rr, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/xml") {
		t.Fatalf("Content-Type = %q", got)
	}

	var set urlSet
	if err := xml.Unmarshal(rr.Body.Bytes(), &set); err != nil {
		t.Fatalf("decode sitemap: %v", err)
	}
	if len(set.URLs) != 1 {
		t.Fatalf("urls = %d, want 1", len(set.URLs))
	}
	u := set.URLs[0]
	if u.Loc != "https://auto10x.newdev.it" {
		t.Fatalf("loc = %q", u.Loc)
	}
	if u.LastMod != "2026-10-17T01:02:03Z" {
		t.Fatalf("lastmod = %q", u.LastMod)
	}
	if u.ChangeFreq != "weekly" || u.Priority != "1" {
		t.Fatalf("changefreq/priority = %q/%q", u.ChangeFreq, u.Priority)
	}
	if !strings.Contains(rr.Body.String(), sitemapNS) {
		t.Fatal("sitemap missing namespace")
	}
}

func TestGroupSolutionsKeepsOrder(t *testing.T) {
	t.Parallel()

	groups := groupSolutions([]contact.Solution{
		{Code: "a", Group: "x"},
		{Code: "b", Group: "y"},
		{Code: "c", Group: "x"},
	})
	if len(groups) != 2 || groups[0].Label != "x" || groups[1].Label != "y" {
		t.Fatalf("groups = %+v", groups)
	}
	if len(groups[0].Solutions) != 2 || groups[0].Solutions[1].Code != "c" {
		t.Fatalf("group x = %+v", groups[0].Solutions)
	}
}
