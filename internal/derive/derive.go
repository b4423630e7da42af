// Package derive builds the chart datasets that are projections of a
// ScoreItem collection. Every function is pure and keeps record order.
package derive

import (
	"fmt"
	"strings"

	"github.com/pavelanni/scorecard/internal/model"
)

// SubjectComparison emits (subject, score, classAverage-or-0) for each
// record in order. Records are never filtered.
func SubjectComparison(items []model.ScoreItem) model.SubjectComparison {
	out := model.SubjectComparison{
		Labels:             make([]string, 0, len(items)),
		StudentScores:      make([]float64, 0, len(items)),
		ClassAverageScores: make([]float64, 0, len(items)),
	}
	for _, it := range items {
		out.Labels = append(out.Labels, it.Subject)
		out.StudentScores = append(out.StudentScores, it.Score)
		out.ClassAverageScores = append(out.ClassAverageScores, it.ClassAverageOrZero())
	}
	return out
}

// ScoreTrend emits (stage label, score, classAverage-or-0) for each record
// in order.
func ScoreTrend(items []model.ScoreItem) model.ScoreTrend {
	out := model.ScoreTrend{
		Labels:             make([]string, 0, len(items)),
		StudentScores:      make([]float64, 0, len(items)),
		ClassAverageScores: make([]float64, 0, len(items)),
	}
	for _, it := range items {
		out.Labels = append(out.Labels, StageLabel(it))
		out.StudentScores = append(out.StudentScores, it.Score)
		out.ClassAverageScores = append(out.ClassAverageScores, it.ClassAverageOrZero())
	}
	return out
}

// StageLabel returns the lesson range in the subject's trailing full-width
// parentheses, e.g. "第1-10课" for "Scratch 基础（第1-10课）". Subjects
// without one are labelled "Stage N".
func StageLabel(it model.ScoreItem) string {
	open := strings.LastIndex(it.Subject, "（")
	if open >= 0 {
		rest := it.Subject[open+len("（"):]
		if end := strings.Index(rest, "）"); end > 0 {
			return rest[:end]
		}
	}
	return fmt.Sprintf("Stage %d", it.Stage)
}

// Charts assembles every chart dataset for ds.
func Charts(ds model.Dataset) model.Charts {
	return model.Charts{
		KnowledgeMastery:  ds.KnowledgeMastery,
		SubjectComparison: SubjectComparison(ds.Scores),
		KnowledgeTrend:    ds.KnowledgeTrend,
		ScoreTrend:        ScoreTrend(ds.Scores),
	}
}
