package analyze

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLSniff summarizes one HTML member of a wrong-format export.
type HTMLSniff struct {
	Title       string
	IsInstagram bool
}

// SniffHTML inspects an HTML document for Instagram export markers so
// the HTML_FORMAT diagnostic can say whether the user at least exported
// from the right place. A document that cannot be parsed sniffs as
// not-Instagram; the caller falls back to the plain diagnostic.
func SniffHTML(content []byte) HTMLSniff {
	document, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if parseErr != nil {
		return HTMLSniff{}
	}
	sniff := HTMLSniff{
		Title: strings.TrimSpace(document.Find("title").First().Text()),
	}
	lowerTitle := strings.ToLower(sniff.Title)
	if strings.Contains(lowerTitle, "instagram") {
		sniff.IsInstagram = true
		return sniff
	}
	document.Find("a[href]").EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		href, _ := anchor.Attr("href")
		if strings.Contains(strings.ToLower(href), "instagram.com") {
			sniff.IsInstagram = true
			return false
		}
		return true
	})
	return sniff
}
