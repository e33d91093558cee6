package seo

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/publicsuffix"

	"homeswerv/internal/domain"
	"homeswerv/internal/validation"
)

const (
	MaxTitleLength       = 60
	MaxDescriptionLength = 160
)

// Hint is an advisory note about a page's metadata. Hints never block a save.
type Hint struct {
	Field   string
	Message string
}

// Check reports metadata that search engines are likely to truncate or reject.
func Check(p domain.Page) []Hint {
	var hints []Hint
	if p.MetaTitle == nil {
		hints = append(hints, Hint{Field: FieldMetaTitle, Message: "No meta title; the page title will be used"})
	} else if n := utf8.RuneCountInString(*p.MetaTitle); n > MaxTitleLength {
		hints = append(hints, Hint{Field: FieldMetaTitle, Message: fmt.Sprintf("Meta title is %d characters; keep it under %d", n, MaxTitleLength)})
	}
	if p.MetaDescription == nil {
		hints = append(hints, Hint{Field: FieldMetaDescription, Message: "No meta description; an excerpt of the content will be used"})
	} else if n := utf8.RuneCountInString(*p.MetaDescription); n > MaxDescriptionLength {
		hints = append(hints, Hint{Field: FieldMetaDescription, Message: fmt.Sprintf("Meta description is %d characters; keep it under %d", n, MaxDescriptionLength)})
	}
	if p.OGImage != nil && !validation.IsValidURL(*p.OGImage) {
		hints = append(hints, Hint{Field: FieldOGImage, Message: "Social image must be an absolute http(s) URL"})
	}
	return hints
}

// Snippet is the search-result preview shown beside the editor.
type Snippet struct {
	Title       string
	Description string
	DisplayURL  string
}

// BuildSnippet renders the search preview of p as it would appear under siteURL.
func BuildSnippet(p domain.Page, siteURL string) Snippet {
	title := p.Title
	if p.MetaTitle != nil {
		title = *p.MetaTitle
	}
	desc := ""
	if p.MetaDescription != nil {
		desc = *p.MetaDescription
	} else {
		desc = TextExcerpt(p.Content)
	}
	return Snippet{
		Title:       truncate(title, MaxTitleLength),
		Description: truncate(desc, MaxDescriptionLength),
		DisplayURL:  displayURL(siteURL, p.Slug),
	}
}

// TextExcerpt strips markup from HTML content and collapses whitespace.
func TextExcerpt(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}
	doc.Find("script, style").Remove()

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			b.WriteByte(' ')
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// blockElements end a run of text; inline elements do not.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "br": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "tr": true, "td": true, "th": true,
}

// displayURL shows the registrable domain followed by the page path, the way
// search engines render breadcrumbs.
func displayURL(siteURL, slug string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Hostname() == "" {
		return "/p/" + slug
	}
	host := u.Hostname()
	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		host = d
	}
	return host + " › p › " + slug
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
