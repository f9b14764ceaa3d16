package service

import (
	"fmt"
	"unicode/utf8"

	"seoscan/internal/config"
	"seoscan/internal/model"
)

// Evaluate runs the fixed list of checks against record. The result always
// has one item per check, in this order: title, description, favicon, h1,
// alt tags, canonical, viewport.
func Evaluate(record model.SeoRecord, limits config.SEOLimits) []model.FeedbackItem {
	return []model.FeedbackItem{
		checkTitle(record.Title, limits),
		checkDescription(record.Description, limits),
		checkFavicon(record.Favicon),
		checkH1(record.H1),
		checkAltTags(record.AltTags),
		checkCanonical(record.Canonical),
		checkViewport(record.Viewport),
	}
}

func checkTitle(title *string, limits config.SEOLimits) model.FeedbackItem {
	switch {
	case title == nil || *title == "":
		return model.FeedbackItem{
			Kind:           model.KindBad,
			Title:          "Title Missing",
			Description:    "The title tag is essential for SEO and should be present on every page.",
			Recommendation: "Add a unique and descriptive title tag to your page.",
		}
	case utf8.RuneCountInString(*title) > limits.TitleMaxLength:
		return model.FeedbackItem{
			Kind:  model.KindWarning,
			Title: "Title Too Long",
			Description: fmt.Sprintf("Your title is %d characters, over the %d character limit. It may be truncated in search results.",
				utf8.RuneCountInString(*title), limits.TitleMaxLength),
			Recommendation: fmt.Sprintf("Keep your title tag under %d characters.", limits.TitleMaxLength),
		}
	default:
		return model.FeedbackItem{
			Kind:        model.KindGood,
			Title:       "Title Length",
			Description: "Your title tag is a good length.",
		}
	}
}

func checkDescription(description *string, limits config.SEOLimits) model.FeedbackItem {
	switch {
	case description == nil || *description == "":
		return model.FeedbackItem{
			Kind:        model.KindBad,
			Title:       "Meta Description Missing",
			Description: "The meta description provides a summary of your page in search results.",
			Recommendation: fmt.Sprintf("Add a unique meta description, ideally between %d-%d characters.",
				limits.DescriptionMinLength, limits.DescriptionMaxLength),
		}
	case utf8.RuneCountInString(*description) > limits.DescriptionMaxLength:
		return model.FeedbackItem{
			Kind:  model.KindWarning,
			Title: "Meta Description Too Long",
			Description: fmt.Sprintf("Your meta description is %d characters, over the %d character limit, and may be cut off.",
				utf8.RuneCountInString(*description), limits.DescriptionMaxLength),
			Recommendation: fmt.Sprintf("Keep your meta description under %d characters.", limits.DescriptionMaxLength),
		}
	default:
		return model.FeedbackItem{
			Kind:        model.KindGood,
			Title:       "Meta Description Length",
			Description: "Your meta description is a good length.",
		}
	}
}

func checkFavicon(favicon *string) model.FeedbackItem {
	if favicon != nil {
		return model.FeedbackItem{
			Kind:        model.KindGood,
			Title:       "Favicon Present",
			Description: "A favicon helps with brand recognition in browser tabs and bookmarks.",
		}
	}
	return model.FeedbackItem{
		Kind:           model.KindWarning,
		Title:          "Favicon Missing",
		Description:    "A favicon is missing. It helps with brand recognition.",
		Recommendation: "Add a favicon to your site.",
	}
}

func checkH1(count int) model.FeedbackItem {
	if count == 1 {
		return model.FeedbackItem{
			Kind:        model.KindGood,
			Title:       "Single H1 Tag",
			Description: "You have one H1 tag, which is great for defining the main topic of your page.",
		}
	}
	return model.FeedbackItem{
		Kind:           model.KindBad,
		Title:          "H1 Tag Issue",
		Description:    fmt.Sprintf("You have %d H1 tags. Each page should have exactly one H1 tag.", count),
		Recommendation: "Ensure there is one and only one H1 tag on the page.",
	}
}

func checkAltTags(tags model.AltTags) model.FeedbackItem {
	if tags.WithoutAlt > 0 {
		return model.FeedbackItem{
			Kind:  model.KindWarning,
			Title: "Missing Alt Tags",
			Description: fmt.Sprintf("You have %d images missing alt tags. Alt tags are important for accessibility and image SEO.",
				tags.WithoutAlt),
			Recommendation: "Add descriptive alt tags to all your images.",
		}
	}
	return model.FeedbackItem{
		Kind:        model.KindGood,
		Title:       "Alt Tags",
		Description: "All your images have alt tags.",
	}
}

func checkCanonical(canonical *string) model.FeedbackItem {
	if canonical != nil {
		return model.FeedbackItem{
			Kind:        model.KindGood,
			Title:       "Canonical URL",
			Description: "You have a canonical URL, which helps prevent duplicate content issues.",
		}
	}
	return model.FeedbackItem{
		Kind:           model.KindWarning,
		Title:          "Canonical URL Missing",
		Description:    "A canonical URL is recommended to specify the preferred version of a page.",
		Recommendation: `Add a rel="canonical" link tag to your page.`,
	}
}

func checkViewport(viewport *string) model.FeedbackItem {
	if viewport != nil {
		return model.FeedbackItem{
			Kind:        model.KindGood,
			Title:       "Mobile Viewport",
			Description: "You have a viewport meta tag, which is essential for mobile-friendliness.",
		}
	}
	return model.FeedbackItem{
		Kind:           model.KindBad,
		Title:          "Mobile Viewport Missing",
		Description:    "The viewport meta tag is missing. Your site may not render correctly on mobile devices.",
		Recommendation: "Add a viewport meta tag to your page.",
	}
}
