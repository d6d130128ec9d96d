package pipeline

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"
	"github.com/markusmobius/go-dateparser"
)

// Metadata is the four-field record the distilled metadata extractor
// promises: title, description, published, and modified, each an optional
// string (empty means absent, matching the spec's rule that an empty
// attribute value is treated the same as a missing one).
type Metadata struct {
	Title       string
	Description string
	Published   string
	Modified    string
}

// RawMetadata supplements Metadata with parsed date forms, kept separate so
// the core record's contract doesn't grow a new invariant every time a date
// string turns out to be machine-parseable.
type RawMetadata struct {
	Metadata
	ParsedPublished *time.Time
	ParsedModified  *time.Time
}

// ExtractMetadata scans doc's meta tags (anywhere in the document) and the
// <title> in <head> for the title, description, published, and modified
// fields, trims a trailing site name
// off the title when one is confidently recognisable, and attempts to
// normalise published/modified into parsed times.
func ExtractMetadata(doc *goquery.Document) RawMetadata {
	var meta RawMetadata

	meta.Title = firstMeta(doc, `meta[property="og:title"]`)
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("head title").First().Text())
	}

	meta.Description = firstMeta(doc, `meta[property="og:description"]`)
	if meta.Description == "" {
		meta.Description = firstMeta(doc, `meta[name="description"]`)
	}

	meta.Published = firstMeta(doc,
		`meta[property="article:published_time"]`,
		`meta[property="og:article:published_time"]`,
		`meta[name="date"]`,
	)
	meta.Modified = firstMeta(doc,
		`meta[property="article:modified_time"]`,
		`meta[property="og:updated_time"]`,
	)

	if siteName := firstMeta(doc, `meta[property="og:site_name"]`); siteName != "" {
		meta.Title = trimSiteNameFromTitle(meta.Title, siteName)
	}

	meta.ParsedPublished = parseMetaDate(meta.Published)
	meta.ParsedModified = parseMetaDate(meta.Modified)

	return meta
}

// firstMeta tries each selector in order and returns the content of the
// first meta tag found whose content attribute is non-empty.
func firstMeta(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		val, ok := doc.Find(sel).First().Attr("content")
		if ok && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

var titleSeparators = []string{" — ", " | ", " » ", " - "}

// trimSiteNameFromTitle drops a trailing "- Site Name" style suffix from
// title when the segment after the last recognised separator is close
// enough, by edit distance, to the site's own name. Titles with no
// separator at all are returned untouched.
func trimSiteNameFromTitle(title, siteName string) string {
	if title == "" || siteName == "" {
		return title
	}

	bestIdx := -1
	bestSep := ""
	for _, sep := range titleSeparators {
		if idx := strings.LastIndex(title, sep); idx > bestIdx {
			bestIdx = idx
			bestSep = sep
		}
	}
	if bestIdx < 0 {
		return title
	}

	head := title[:bestIdx]
	tail := title[bestIdx+len(bestSep):]

	dist := levenshtein.ComputeDistance(strings.ToLower(tail), strings.ToLower(siteName))
	threshold := len(tail) / 3
	if threshold < 2 {
		threshold = 2
	}
	if dist > threshold {
		return title
	}
	return strings.TrimSpace(head)
}

func parseMetaDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	cfg := &dateparser.Configuration{CurrentTime: time.Now(), StrictParsing: false}
	dt, err := dateparser.Parse(cfg, raw)
	if err != nil {
		return nil
	}
	t := dt.Time
	return &t
}
