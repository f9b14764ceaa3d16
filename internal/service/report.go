package service

import (
	"context"

	"seoscan/internal/config"
	"seoscan/internal/metrics"
	"seoscan/internal/model"
	"seoscan/internal/util"
)

// BuildReport evaluates record with the default limits and attaches the
// score and its band.
func BuildReport(target string, record model.SeoRecord) model.Report {
	feedback := Evaluate(record, config.DefaultSEOLimits)
	score := Score(feedback, config.DefaultScoreThresholds)

	return model.Report{
		URL:      target,
		Data:     record,
		Feedback: feedback,
		Score:    score,
		Band:     Band(score, config.DefaultScoreThresholds),
	}
}

// Report scans rawURL and returns the full report, or a *ScanError.
func (s *Scanner) Report(ctx context.Context, rawURL string) (*model.Report, error) {
	record, err := s.Scan(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	report := BuildReport(util.NormalizeURL(rawURL), *record)
	metrics.Scores.Observe(float64(report.Score))

	return &report, nil
}
