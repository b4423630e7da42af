// Package validate rejects malformed score cards before they reach the
// store. A malformed card is a defect in the data, so nothing here tries
// to repair it.
package validate

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/pavelanni/scorecard/internal/derive"
	"github.com/pavelanni/scorecard/internal/model"
)

const epsilon = 1e-9

// Violation is one broken invariant at a field path such as
// "scores[2].classAverage".
type Violation struct {
	Field   string
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type collector struct {
	errs []error
}

func (c *collector) add(field, format string, args ...any) {
	c.errs = append(c.errs, &Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *collector) err() error {
	return errors.Join(c.errs...)
}

// Dataset checks every invariant of ds and returns all violations joined,
// or nil.
func Dataset(ds model.Dataset) error {
	var c collector
	if !ds.Version.Valid() {
		c.add("version", "unknown schema version %q", ds.Version)
	}
	if ds.Student.Version != ds.Version {
		c.add("student.version", "student version %q does not match dataset version %q", ds.Student.Version, ds.Version)
	}
	checkStudent(&c, ds.Student)
	checkScores(&c, ds.Version, ds.Scores)
	if ds.KnowledgeMastery != nil {
		checkMastery(&c, *ds.KnowledgeMastery)
	}
	if ds.KnowledgeTrend != nil {
		checkTrend(&c, *ds.KnowledgeTrend)
	}
	return c.err()
}

// Export validates the dataset and checks that any derived views it
// carries still match a fresh projection of its scores.
func Export(ex model.Export) error {
	var c collector
	if err := Dataset(ex.Dataset); err != nil {
		c.errs = append(c.errs, err)
	}
	if ex.SubjectComparison != nil {
		want := derive.SubjectComparison(ex.Scores)
		if !reflect.DeepEqual(*ex.SubjectComparison, want) {
			c.add("subjectComparison", "stale: does not match projection of scores")
		}
	}
	if ex.ScoreTrend != nil {
		want := derive.ScoreTrend(ex.Scores)
		if !reflect.DeepEqual(*ex.ScoreTrend, want) {
			c.add("scoreTrend", "stale: does not match projection of scores")
		}
	}
	return c.err()
}

func checkStudent(c *collector, s model.StudentInfo) {
	if s.Name == "" {
		c.add("student.name", "required")
	}
	switch s.Version {
	case model.SchemaV1:
		if s.Age <= 0 {
			c.add("student.age", "must be positive, got %d", s.Age)
		}
		if s.ClassNumber == "" {
			c.add("student.classNumber", "required")
		}
		if !s.ProgrammingLevel.IsKnown() {
			c.add("student.programmingLevel", "%q is not one of %v", s.ProgrammingLevel, model.KnownLevels())
		}
		if s.Grade != "" || s.StudentID != "" {
			c.add("student", "v1 profile must not set grade or studentId")
		}
	case model.SchemaV2:
		if s.Grade == "" {
			c.add("student.grade", "required")
		}
		if s.StudentID == "" {
			c.add("student.studentId", "required")
		}
		if s.ProgrammingLevel == "" {
			c.add("student.programmingLevel", "required")
		}
		if s.Age != 0 || s.ClassNumber != "" {
			c.add("student", "v2 profile must not set age or classNumber")
		}
	}
}

func checkScores(c *collector, version model.SchemaVersion, items []model.ScoreItem) {
	seen := make(map[string]int, len(items))
	prevStage := 0
	for i, it := range items {
		f := func(name string) string { return fmt.Sprintf("scores[%d].%s", i, name) }

		if it.ID == "" {
			c.add(f("id"), "required")
		} else if j, dup := seen[it.ID]; dup {
			c.add(f("id"), "duplicate of scores[%d]", j)
		} else {
			seen[it.ID] = i
		}

		if it.Stage <= 0 {
			c.add(f("stage"), "must be positive, got %d", it.Stage)
		}
		if i > 0 && it.Stage <= prevStage {
			c.add(f("stage"), "must be greater than previous stage %d, got %d", prevStage, it.Stage)
		}
		prevStage = it.Stage

		if it.Subject == "" {
			c.add(f("subject"), "required")
		}
		if it.FullScore <= 0 {
			c.add(f("fullScore"), "must be positive, got %v", it.FullScore)
		}
		if it.Score < 0 || it.Score > it.FullScore {
			c.add(f("score"), "%v outside [0, %v]", it.Score, it.FullScore)
		}
		// Same rule as the schema's "date" format, for datasets built in Go.
		if _, err := time.Parse(time.DateOnly, it.TestDate); err != nil {
			c.add(f("testDate"), "%q is not a YYYY-MM-DD date", it.TestDate)
		}
		if it.Rank != nil && *it.Rank <= 0 {
			c.add(f("rank"), "must be positive, got %d", *it.Rank)
		}
		if it.ClassAverage != nil && (*it.ClassAverage < 0 || *it.ClassAverage > it.FullScore) {
			c.add(f("classAverage"), "%v outside [0, %v]", *it.ClassAverage, it.FullScore)
		}
		if it.Skills == nil {
			c.add(f("skills"), "required, use an empty list when no skills were assessed")
		}
		for k, sk := range it.Skills {
			if sk.Name == "" {
				c.add(f(fmt.Sprintf("skills[%d].name", k)), "required")
			}
			if sk.Score < 0 || sk.Score > 100 {
				c.add(f(fmt.Sprintf("skills[%d].score", k)), "%v outside [0, 100]", sk.Score)
			}
		}
		if it.ScoreComposition != nil {
			if version == model.SchemaV2 {
				c.add(f("scoreComposition"), "not part of the v2 schema")
			}
			checkComposition(c, f("scoreComposition"), it, *it.ScoreComposition)
		}
	}
}

func checkComposition(c *collector, field string, it model.ScoreItem, sc model.ScoreComposition) {
	for _, p := range sc.Parts() {
		pf := field + "." + string(p.Category)
		if p.Count < 0 {
			c.add(pf+".count", "must not be negative, got %d", p.Count)
		}
		if p.Score < 0 || p.Score > p.Total {
			c.add(pf+".score", "%v outside [0, %v]", p.Score, p.Total)
		}
	}
	if total := sc.TotalPossible(); math.Abs(total-it.FullScore) > epsilon {
		c.add(field, "category totals sum to %v, want fullScore %v", total, it.FullScore)
	}
	if score := sc.TotalScore(); math.Abs(score-it.Score) > epsilon {
		c.add(field, "category scores sum to %v, want score %v", score, it.Score)
	}
}

func checkMastery(c *collector, m model.KnowledgeMastery) {
	if len(m.Labels) != len(m.MasteryLevels) {
		c.add("knowledgeMastery", "%d labels but %d mastery levels", len(m.Labels), len(m.MasteryLevels))
	}
	for i, lvl := range m.MasteryLevels {
		if lvl < 0 || lvl > 100 {
			c.add(fmt.Sprintf("knowledgeMastery.masteryLevels[%d]", i), "%v outside [0, 100]", lvl)
		}
	}
}

func checkTrend(c *collector, t model.KnowledgeTrend) {
	for i, s := range t.Skills {
		if len(s.Data) != len(t.Labels) {
			c.add(fmt.Sprintf("knowledgeTrend.skills[%d]", i), "%q has %d points for %d labels", s.Name, len(s.Data), len(t.Labels))
		}
	}
}
