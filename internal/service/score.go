package service

import (
	"math"

	"seoscan/internal/config"
	"seoscan/internal/model"
)

// Score is the weighted pass rate of feedback as a percentage: good items
// count fully, warnings count WarningWeight, bad items count nothing.
// An empty list scores 0.
func Score(feedback []model.FeedbackItem, thresholds config.ScoreThresholds) int {
	if len(feedback) == 0 {
		return 0
	}

	var good, warning int
	for _, item := range feedback {
		switch item.Kind {
		case model.KindGood:
			good++
		case model.KindWarning:
			warning++
		}
	}

	passed := float64(good) + float64(warning)*thresholds.WarningWeight
	return int(math.Round(passed / float64(len(feedback)) * 100))
}

// Band maps a score to its display tier.
func Band(score int, thresholds config.ScoreThresholds) model.Kind {
	switch {
	case score >= thresholds.Good:
		return model.KindGood
	case score >= thresholds.Warning:
		return model.KindWarning
	default:
		return model.KindBad
	}
}
