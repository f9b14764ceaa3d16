package model

type Kind string

const (
	KindGood    Kind = "good"
	KindWarning Kind = "warning"
	KindBad     Kind = "bad"
)

type FeedbackItem struct {
	Kind           Kind   `json:"kind"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Report bundles a record with the server-side verdicts so clients never
// recompute the score themselves.
type Report struct {
	URL      string         `json:"url"`
	Data     SeoRecord      `json:"data"`
	Feedback []FeedbackItem `json:"feedback"`
	Score    int            `json:"score"`
	Band     Kind           `json:"band"`
}
