package model

// SeoRecord is the metadata extracted from a single page. Optional fields are
// nil when the page does not provide them and serialize as null.
type SeoRecord struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	Favicon            *string `json:"favicon"`
	OGTitle            *string `json:"ogTitle"`
	OGDescription      *string `json:"ogDescription"`
	OGImage            *string `json:"ogImage"`
	TwitterCard        *string `json:"twitterCard"`
	TwitterTitle       *string `json:"twitterTitle"`
	TwitterDescription *string `json:"twitterDescription"`
	TwitterImage       *string `json:"twitterImage"`
	H1                 int     `json:"h1"`
	H2                 int     `json:"h2"`
	AltTags            AltTags `json:"alt_tags"`
	Canonical          *string `json:"canonical"`
	Viewport           *string `json:"viewport"`
}

type AltTags struct {
	WithAlt    int `json:"with_alt"`
	WithoutAlt int `json:"without_alt"`
}

// Images returns the total number of <img> elements seen on the page.
func (a AltTags) Images() int {
	return a.WithAlt + a.WithoutAlt
}

// Value dereferences an optional field, returning "" when absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
