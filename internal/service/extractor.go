package service

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"seoscan/internal/model"
	"seoscan/internal/util/analyzer"
)

// Extract builds the SEO record for doc. baseURL is the normalized page URL
// used to resolve a relative favicon. It is a pure function of its inputs.
func Extract(doc *goquery.Document, baseURL string) model.SeoRecord {
	return model.SeoRecord{
		Title:              field(doc, analyzer.FieldTitle),
		Description:        field(doc, analyzer.FieldDescription),
		Favicon:            resolveFavicon(doc, baseURL),
		OGTitle:            field(doc, analyzer.FieldOGTitle),
		OGDescription:      field(doc, analyzer.FieldOGDescription),
		OGImage:            field(doc, analyzer.FieldOGImage),
		TwitterCard:        field(doc, analyzer.FieldTwitterCard),
		TwitterTitle:       field(doc, analyzer.FieldTwitterTitle),
		TwitterDescription: field(doc, analyzer.FieldTwitterDescription),
		TwitterImage:       field(doc, analyzer.FieldTwitterImage),
		H1:                 analyzer.Count(doc, analyzer.H1),
		H2:                 analyzer.Count(doc, analyzer.H2),
		AltTags:            countAltTags(doc),
		Canonical:          field(doc, analyzer.FieldCanonical),
		Viewport:           field(doc, analyzer.FieldViewport),
	}
}

func field(doc *goquery.Document, f analyzer.Field) *string {
	if v, ok := analyzer.First(doc, f); ok {
		return &v
	}
	return nil
}

// resolveFavicon returns the first icon href as an absolute URL. A reference
// that cannot be resolved is treated as no favicon at all.
func resolveFavicon(doc *goquery.Document, baseURL string) *string {
	href, ok := analyzer.First(doc, analyzer.FieldFavicon)
	if !ok {
		return nil
	}

	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	if ref.IsAbs() {
		return &href
	}

	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil
	}

	resolved := base.ResolveReference(ref).String()
	return &resolved
}

// countAltTags puts every <img> into exactly one bucket. Missing, empty and
// whitespace-only alt attributes all count as without alt.
func countAltTags(doc *goquery.Document) model.AltTags {
	var tags model.AltTags
	doc.FindMatcher(analyzer.Images).Each(func(_ int, s *goquery.Selection) {
		if alt, exists := s.Attr("alt"); exists && strings.TrimSpace(alt) != "" {
			tags.WithAlt++
			return
		}
		tags.WithoutAlt++
	})
	return tags
}
