package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Field names a value of the SEO record that is looked up through the
// selector table.
type Field string

const (
	FieldTitle              Field = "title"
	FieldDescription        Field = "description"
	FieldCanonical          Field = "canonical"
	FieldViewport           Field = "viewport"
	FieldFavicon            Field = "favicon"
	FieldOGTitle            Field = "ogTitle"
	FieldOGDescription      Field = "ogDescription"
	FieldOGImage            Field = "ogImage"
	FieldTwitterCard        Field = "twitterCard"
	FieldTwitterTitle       Field = "twitterTitle"
	FieldTwitterDescription Field = "twitterDescription"
	FieldTwitterImage       Field = "twitterImage"
)

// Text marks a lookup that reads the element's text instead of an attribute.
const Text = ""

// Lookup is one candidate for a field: a CSS selector and what to read from
// the matched element.
type Lookup struct {
	Selector string
	Attr     string
	matcher  cascadia.Selector
}

func lookup(selector, attr string) Lookup {
	return Lookup{Selector: selector, Attr: attr, matcher: cascadia.MustCompile(selector)}
}

// Rules is the selector table. Candidates are tried in order and the first
// non-empty value wins. It is compiled once and never mutated.
var Rules = map[Field][]Lookup{
	FieldTitle: {
		lookup("head > title", Text),
		lookup("title", Text),
	},
	FieldDescription: {lookup(`meta[name="description"]`, "content")},
	FieldCanonical:   {lookup(`link[rel="canonical"]`, "href")},
	FieldViewport:    {lookup(`meta[name="viewport"]`, "content")},
	FieldFavicon: {
		lookup(`link[rel="icon"]`, "href"),
		lookup(`link[rel="shortcut icon"]`, "href"),
		lookup(`link[rel="apple-touch-icon"]`, "href"),
	},
	FieldOGTitle:       {lookup(`meta[property="og:title"]`, "content")},
	FieldOGDescription: {lookup(`meta[property="og:description"]`, "content")},
	FieldOGImage:       {lookup(`meta[property="og:image"]`, "content")},
	FieldTwitterCard: {
		lookup(`meta[name="twitter:card"]`, "content"),
		lookup(`meta[property="twitter:card"]`, "content"),
	},
	FieldTwitterTitle: {
		lookup(`meta[name="twitter:title"]`, "content"),
		lookup(`meta[property="twitter:title"]`, "content"),
	},
	FieldTwitterDescription: {
		lookup(`meta[name="twitter:description"]`, "content"),
		lookup(`meta[property="twitter:description"]`, "content"),
	},
	FieldTwitterImage: {
		lookup(`meta[name="twitter:image"]`, "content"),
		lookup(`meta[property="twitter:image"]`, "content"),
	},
}

var (
	H1     = cascadia.MustCompile("h1")
	H2     = cascadia.MustCompile("h2")
	Images = cascadia.MustCompile("img")
)

// First applies the rule for field and returns the first non-empty trimmed
// value. ok is false when no candidate produced a value.
func First(doc *goquery.Document, field Field) (value string, ok bool) {
	for _, l := range Rules[field] {
		doc.FindMatcher(l.matcher).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			value = strings.TrimSpace(l.read(s))
			return value == ""
		})
		if value != "" {
			return value, true
		}
	}
	return "", false
}

// Count returns how many elements in doc match m.
func Count(doc *goquery.Document, m cascadia.Selector) int {
	return doc.FindMatcher(m).Length()
}

func (l Lookup) read(s *goquery.Selection) string {
	if l.Attr == Text {
		return s.Text()
	}
	v, _ := s.Attr(l.Attr)
	return v
}
