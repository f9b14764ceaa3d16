package config

import "time"

// SEOLimits holds the length thresholds used by the feedback checks.
type SEOLimits struct {
	TitleMaxLength       int
	DescriptionMaxLength int
	// DescriptionMinLength only appears in the recommendation text.
	DescriptionMinLength int
	URLTruncateLength    int
	HostnameMinLength    int
}

// ScoreThresholds controls how a score is banded for display and how much a
// warning counts towards it.
type ScoreThresholds struct {
	Good          int
	Warning       int
	WarningWeight float64
}

var DefaultSEOLimits = SEOLimits{
	TitleMaxLength:       60,
	DescriptionMaxLength: 160,
	DescriptionMinLength: 50,
	URLTruncateLength:    100,
	HostnameMinLength:    3,
}

var DefaultScoreThresholds = ScoreThresholds{
	Good:          70,
	Warning:       40,
	WarningWeight: 0.5,
}

const (
	RequestTimeout = 10 * time.Second
	UserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// MaxBodyBytes caps how much of a page is read before parsing.
	MaxBodyBytes = 10 << 20
)

const (
	ErrURLRequired       = "URL is required"
	ErrDomainNotFound    = "Domain not found. Please check the URL."
	ErrConnectionRefused = "Connection refused. The server might be down."
	ErrRequestTimeout    = "Request timed out. The server took too long to respond."
	ErrInvalidURL        = "Please enter a valid URL (e.g., example.com or https://example.com)"
	ErrEmptyURL          = "Please enter a valid URL"
	ErrUnknown           = "An unknown error occurred"
)
