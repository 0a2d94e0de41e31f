package landing

import (
	"log"
	"net/http"
	"time"
)

// Handler handles landing page HTTP requests
type Handler struct {
	content Content
	siteURL string
	now     func() time.Time
}

// NewHandler creates a new landing handler
func NewHandler(siteURL string) *Handler {
	return &Handler{
		content: DefaultContent(),
		siteURL: siteURL,
		now:     time.Now,
	}
}

// HandleIndex renders the public landing page
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := LandingPage(h.content).Render(r.Context(), w); err != nil {
		log.Printf("render landing page: %v", err)
	}
}

// HandleSitemap serves sitemap.xml
func (h *Handler) HandleSitemap(w http.ResponseWriter, r *http.Request) {
	body, err := Sitemap(h.siteURL, h.now())
	if err != nil {
		http.Error(w, "Failed to build sitemap", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}
