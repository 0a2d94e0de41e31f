package landing

import (
	"encoding/xml"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap encodes the single-page sitemap for siteURL.
func Sitemap(siteURL string, lastModified time.Time) ([]byte, error) {
	set := urlSet{
		XMLNS: sitemapNS,
		URLs: []sitemapURL{{
			Loc:        siteURL,
			LastMod:    lastModified.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "1",
		}},
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
