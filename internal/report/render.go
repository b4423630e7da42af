package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	appI18n "github.com/pavelanni/scorecard/internal/i18n"
	"github.com/pavelanni/scorecard/internal/model"
	"github.com/pavelanni/scorecard/internal/store"
)

// Render writes the student profile, summary statistics and one line per
// stage, localized from ctx.
func Render(ctx context.Context, w io.Writer, s *store.Store, passRatio float64) error {
	scores := s.ListScores()
	stats, err := Summarize(scores, passRatio)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", appI18n.T(ctx, "ReportTitle"))
	writeStudent(ctx, &b, s.Student())
	b.WriteString("\n")

	if len(scores) == 0 {
		fmt.Fprintln(&b, appI18n.T(ctx, "NoScores"))
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintln(&b, appI18n.Tp(ctx, "StagesRecorded", stats.TotalStages))
	fmt.Fprintf(&b, "%s: %s\n", appI18n.T(ctx, "AverageScore"), formatScore(stats.AverageScore))
	fmt.Fprintf(&b, "%s: %s\n", appI18n.T(ctx, "HighestScore"), formatScore(stats.HighestScore))
	fmt.Fprintf(&b, "%s: %s\n", appI18n.T(ctx, "LowestScore"), formatScore(stats.LowestScore))
	fmt.Fprintln(&b, appI18n.Td(ctx, "StagesPassed", map[string]any{
		"Passed": stats.PassedStages,
		"Total":  stats.TotalStages,
	}))
	b.WriteString("\n")

	for _, it := range scores {
		writeStage(ctx, &b, it)
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func writeStudent(ctx context.Context, b *strings.Builder, st model.StudentInfo) {
	field := func(id, value string) {
		fmt.Fprintf(b, "%s: %s\n", appI18n.T(ctx, id), value)
	}
	field("StudentName", st.Name)
	switch st.Version {
	case model.SchemaV1:
		field("Age", strconv.Itoa(st.Age))
		field("ClassNumber", st.ClassNumber)
	case model.SchemaV2:
		field("Grade", st.Grade)
		field("StudentID", st.StudentID)
	}
	level := string(st.ProgrammingLevel)
	if st.ProgrammingLevel.IsCustom() {
		level = appI18n.Td(ctx, "CustomLevel", map[string]any{"Level": level})
	}
	field("ProgrammingLevel", level)
}

func writeStage(ctx context.Context, b *strings.Builder, it model.ScoreItem) {
	parts := []string{
		fmt.Sprintf("%s/%s", formatScore(it.Score), formatScore(it.FullScore)),
		it.TestDate,
	}
	if it.Rank != nil {
		parts = append(parts, appI18n.Td(ctx, "Rank", map[string]any{"Rank": *it.Rank}))
	}
	if it.ClassAverage != nil {
		parts = append(parts, appI18n.Td(ctx, "ClassAverage", map[string]any{"Average": formatScore(*it.ClassAverage)}))
	}
	fmt.Fprintf(b, "%s  %s  %s\n",
		appI18n.Td(ctx, "StageHeader", map[string]any{"Stage": it.Stage}),
		it.Subject,
		strings.Join(parts, ", "),
	)
	if it.Comment != "" {
		fmt.Fprintf(b, "    %s\n", it.Comment)
	}
}

// formatScore rounds to two decimals and prints whole scores as integers.
func formatScore(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
