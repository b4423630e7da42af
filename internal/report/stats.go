// Package report consumes a score card: it computes summary statistics
// and renders a localized text report.
package report

import (
	"fmt"

	"github.com/pavelanni/scorecard/internal/model"
)

// DefaultPassRatio is the share of the full score needed to pass a stage.
const DefaultPassRatio = 0.6

// Summarize computes ScoreStats over items. A stage passes when its score
// reaches passRatio of its full score. An empty collection yields zero
// stats.
func Summarize(items []model.ScoreItem, passRatio float64) (model.ScoreStats, error) {
	if passRatio < 0 || passRatio > 1 {
		return model.ScoreStats{}, fmt.Errorf("pass ratio %v outside [0, 1]", passRatio)
	}
	var st model.ScoreStats
	if len(items) == 0 {
		return st, nil
	}

	var sum float64
	st.HighestScore = items[0].Score
	st.LowestScore = items[0].Score
	for _, it := range items {
		sum += it.Score
		st.HighestScore = max(st.HighestScore, it.Score)
		st.LowestScore = min(st.LowestScore, it.Score)
		if it.Score >= passRatio*it.FullScore {
			st.PassedStages++
		}
	}
	st.TotalStages = len(items)
	st.AverageScore = sum / float64(len(items))
	return st, nil
}
