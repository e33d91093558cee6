package pages

import (
	"encoding/xml"
	"strings"
	"time"

	"homeswerv/internal/domain"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapXML renders the XML sitemap for the marketing routes plus the given
// CMS pages under siteURL.
func SitemapXML(siteURL string, published []domain.Page) ([]byte, error) {
	base := strings.TrimRight(siteURL, "/")
	set := urlSet{NS: sitemapNS}
	for _, path := range PublicPaths() {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + path})
	}
	for _, p := range published {
		u := sitemapURL{Loc: base + "/p/" + p.Slug}
		if !p.UpdatedAt.IsZero() {
			u.LastMod = p.UpdatedAt.UTC().Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, u)
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
