package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"net/url"

	"seoscan/internal/config"
	"seoscan/internal/model"
	"seoscan/internal/util"
)

//go:embed templates/*.html
var templateFS embed.FS

var colors = map[model.Kind]string{
	model.KindGood:    "#28a745",
	model.KindWarning: "#ffc107",
	model.KindBad:     "#dc3545",
}

const neutralColor = "#e0e0e0"

// chartRadius is the radius of the summary doughnut in SVG user units.
const chartRadius = 54

// Renderer owns the parsed page templates. Build one with New and share it;
// it is safe for concurrent use.
type Renderer struct {
	page *template.Template
}

func New() (*Renderer, error) {
	page, err := template.New("index.html").Funcs(template.FuncMap{
		"color": func(k model.Kind) string { return colors[k] },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{page: page}, nil
}

// Page is everything the template needs. Exactly one of Error and Report is
// set after a scan; neither is set on the empty form.
type Page struct {
	Input  string
	Error  string
	Report *model.Report
}

type property struct {
	Name  string
	Value string
}

type chart struct {
	Score         int
	Color         string
	Neutral       string
	Radius        int
	Circumference float64
	Filled        float64
}

type googlePreview struct {
	Title       string
	URL         string
	Description string
}

type socialPreview struct {
	Title       string
	Description string
	Image       string
	Host        string
}

type issueGroup struct {
	Kind   model.Kind
	Titles []string
}

type view struct {
	Page
	Chart      chart
	Google     googlePreview
	Social     socialPreview
	Properties []property
	Issues     []issueGroup
}

func (r *Renderer) Render(w io.Writer, p Page) error {
	v := view{Page: p}
	if p.Report != nil {
		v.Chart = newChart(p.Report.Score, p.Report.Band)
		v.Google = newGooglePreview(p.Report)
		v.Social = newSocialPreview(p.Report)
		v.Properties = properties(p.Report.Data)
		v.Issues = issues(p.Report.Feedback)
	}
	return r.page.Execute(w, v)
}

func newChart(score int, band model.Kind) chart {
	circumference := 2 * math.Pi * chartRadius
	return chart{
		Score:         score,
		Color:         colors[band],
		Neutral:       neutralColor,
		Radius:        chartRadius,
		Circumference: circumference,
		Filled:        circumference * float64(score) / 100,
	}
}

func newGooglePreview(report *model.Report) googlePreview {
	title := model.Value(report.Data.Title)
	if title == "" {
		title = report.URL
	}
	return googlePreview{
		Title:       util.TruncateText(title, config.DefaultSEOLimits.TitleMaxLength),
		URL:         util.TruncateText(report.URL, config.DefaultSEOLimits.URLTruncateLength),
		Description: util.TruncateText(model.Value(report.Data.Description), config.DefaultSEOLimits.DescriptionMaxLength),
	}
}

func newSocialPreview(report *model.Report) socialPreview {
	d := report.Data
	preview := socialPreview{
		Title:       firstOf(d.OGTitle, d.TwitterTitle, d.Title),
		Description: firstOf(d.OGDescription, d.TwitterDescription, d.Description),
		Image:       firstOf(d.OGImage, d.TwitterImage),
	}
	if u, err := url.Parse(report.URL); err == nil {
		preview.Host = u.Host
	}
	return preview
}

func firstOf(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

func properties(d model.SeoRecord) []property {
	optional := func(s *string) string {
		if s == nil {
			return "Not found"
		}
		return *s
	}
	return []property{
		{"Title", optional(d.Title)},
		{"Description", optional(d.Description)},
		{"Canonical", optional(d.Canonical)},
		{"Viewport", optional(d.Viewport)},
		{"Favicon", optional(d.Favicon)},
		{"og:title", optional(d.OGTitle)},
		{"og:description", optional(d.OGDescription)},
		{"og:image", optional(d.OGImage)},
		{"twitter:card", optional(d.TwitterCard)},
		{"twitter:title", optional(d.TwitterTitle)},
		{"twitter:description", optional(d.TwitterDescription)},
		{"twitter:image", optional(d.TwitterImage)},
		{"H1 tags", fmt.Sprint(d.H1)},
		{"H2 tags", fmt.Sprint(d.H2)},
		{"Images with alt", fmt.Sprint(d.AltTags.WithAlt)},
		{"Images without alt", fmt.Sprint(d.AltTags.WithoutAlt)},
	}
}

// issues groups feedback titles by kind, good first, dropping empty groups.
func issues(feedback []model.FeedbackItem) []issueGroup {
	var groups []issueGroup
	for _, kind := range []model.Kind{model.KindGood, model.KindWarning, model.KindBad} {
		group := issueGroup{Kind: kind}
		for _, item := range feedback {
			if item.Kind == kind {
				group.Titles = append(group.Titles, item.Title)
			}
		}
		if len(group.Titles) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}
