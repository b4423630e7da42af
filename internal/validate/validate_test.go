package validate

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pavelanni/scorecard/internal/dataset"
	"github.com/pavelanni/scorecard/internal/derive"
	"github.com/pavelanni/scorecard/internal/model"
)

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	if err == nil {
		return nil
	}
	var fields []string
	var walk func(error)
	walk = func(e error) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		var v *Violation
		if errors.As(e, &v) {
			fields = append(fields, v.Field)
		}
	}
	walk(err)
	return fields
}

func hasField(fields []string, want string) bool {
	for _, f := range fields {
		if f == want {
			return true
		}
	}
	return false
}

func TestBuiltinDatasetsAreValid(t *testing.T) {
	for _, ds := range []model.Dataset{dataset.ScoreCardV1(), dataset.ScoreCardV2()} {
		t.Run(string(ds.Version), func(t *testing.T) {
			if err := Dataset(ds); err != nil {
				t.Fatalf("Dataset: %v", err)
			}
		})
	}
}

func TestDatasetViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Dataset)
		field  string
	}{
		{"score above full score", func(d *model.Dataset) { d.Scores[0].Score = 101 }, "scores[0].score"},
		{"negative score", func(d *model.Dataset) { d.Scores[1].Score = -1 }, "scores[1].score"},
		{"class average above full score", func(d *model.Dataset) { d.Scores[2].ClassAverage = model.FloatPtr(120) }, "scores[2].classAverage"},
		{"duplicate id", func(d *model.Dataset) { d.Scores[1].ID = "1" }, "scores[1].id"},
		{"missing id", func(d *model.Dataset) { d.Scores[0].ID = "" }, "scores[0].id"},
		{"stage not increasing", func(d *model.Dataset) { d.Scores[2].Stage = 2 }, "scores[2].stage"},
		{"bad test date", func(d *model.Dataset) { d.Scores[0].TestDate = "15/03/2024" }, "scores[0].testDate"},
		{"zero rank", func(d *model.Dataset) { d.Scores[0].Rank = model.IntPtr(0) }, "scores[0].rank"},
		{"nil skills", func(d *model.Dataset) { d.Scores[2].Skills = nil }, "scores[2].skills"},
		{"skill out of range", func(d *model.Dataset) { d.Scores[3].Skills[1].Score = 101 }, "scores[3].skills[1].score"},
		{"composition total drift", func(d *model.Dataset) { d.Scores[0].ScoreComposition.Programming.Total = 55 }, "scores[0].scoreComposition"},
		{"composition part over total", func(d *model.Dataset) { d.Scores[0].ScoreComposition.TrueFalse.Score = 11 }, "scores[0].scoreComposition.trueFalse.score"},
		{"unknown v1 level", func(d *model.Dataset) { d.Student.ProgrammingLevel = "Go" }, "student.programmingLevel"},
		{"v1 with v2 fields", func(d *model.Dataset) { d.Student.StudentID = "x" }, "student"},
		{"student version mismatch", func(d *model.Dataset) { d.Student.Version = model.SchemaV2 }, "student.version"},
		{"mastery length mismatch", func(d *model.Dataset) {
			d.KnowledgeMastery.MasteryLevels = d.KnowledgeMastery.MasteryLevels[:3]
		}, "knowledgeMastery"},
		{"trend length mismatch", func(d *model.Dataset) {
			d.KnowledgeTrend.Skills[2].Data = []float64{1, 2}
		}, "knowledgeTrend.skills[2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := dataset.ScoreCardV1()
			tt.mutate(&ds)
			err := Dataset(ds)
			if err == nil {
				t.Fatal("expected a violation")
			}
			if fields := violationFields(t, err); !hasField(fields, tt.field) {
				t.Errorf("expected violation at %q, got %v", tt.field, fields)
			}
		})
	}
}

func TestV2Rules(t *testing.T) {
	t.Run("custom level accepted", func(t *testing.T) {
		ds := dataset.ScoreCardV2()
		if !ds.Student.ProgrammingLevel.IsCustom() {
			t.Fatalf("expected custom level, got %q", ds.Student.ProgrammingLevel)
		}
		if err := Dataset(ds); err != nil {
			t.Fatalf("Dataset: %v", err)
		}
	})

	t.Run("composition rejected", func(t *testing.T) {
		ds := dataset.ScoreCardV2()
		ds.Scores[0].ScoreComposition = dataset.ScoreCardV1().Scores[0].ScoreComposition
		fields := violationFields(t, Dataset(ds))
		if !hasField(fields, "scores[0].scoreComposition") {
			t.Errorf("expected composition violation, got %v", fields)
		}
	})

	t.Run("v1 fields rejected", func(t *testing.T) {
		ds := dataset.ScoreCardV2()
		ds.Student.Age = 12
		fields := violationFields(t, Dataset(ds))
		if !hasField(fields, "student") {
			t.Errorf("expected student violation, got %v", fields)
		}
	})
}

func TestExportStaleness(t *testing.T) {
	ds := dataset.ScoreCardV1()
	sc := derive.SubjectComparison(ds.Scores)
	tr := derive.ScoreTrend(ds.Scores)

	fresh := model.Export{Dataset: ds, SubjectComparison: &sc, ScoreTrend: &tr}
	if err := Export(fresh); err != nil {
		t.Fatalf("Export(fresh): %v", err)
	}

	stale := derive.SubjectComparison(ds.Scores)
	stale.StudentScores[0] = 90
	ex := model.Export{Dataset: ds, SubjectComparison: &stale}
	fields := violationFields(t, Export(ex))
	if !hasField(fields, "subjectComparison") {
		t.Errorf("expected stale subjectComparison, got %v", fields)
	}
}

func TestDocumentSchema(t *testing.T) {
	raw, err := json.Marshal(dataset.ScoreCardV1())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := Document(raw); err != nil {
		t.Fatalf("Document(v1): %v", err)
	}

	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing scores", `{"version":"v1","student":{"version":"v1","name":"a","programmingLevel":"C"}}`},
		{"unknown version", `{"version":"v3","student":{"version":"v1","name":"a","programmingLevel":"C"},"scores":[]}`},
		{"fractional stage", `{"version":"v2","student":{"version":"v2","name":"a","programmingLevel":"x"},"scores":[{"id":"1","stage":1.5,"subject":"s","score":1,"fullScore":100,"testDate":"2024-01-01","skills":[]}]}`},
		{"impossible date", `{"version":"v2","student":{"version":"v2","name":"a","programmingLevel":"x"},"scores":[{"id":"1","stage":1,"subject":"s","score":1,"fullScore":100,"testDate":"2024-02-30","skills":[]}]}`},
		{"timestamp instead of date", `{"version":"v2","student":{"version":"v2","name":"a","programmingLevel":"x"},"scores":[{"id":"1","stage":1,"subject":"s","score":1,"fullScore":100,"testDate":"2024-03-15T00:00:00Z","skills":[]}]}`},
		{"extra field", `{"version":"v2","student":{"version":"v2","name":"a","programmingLevel":"x","nickname":"b"},"scores":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Document([]byte(tt.doc)); err == nil {
				t.Error("expected schema error")
			}
		})
	}
}

func TestViolationError(t *testing.T) {
	v := &Violation{Field: "scores[0].score", Message: "101 outside [0, 100]"}
	if got := v.Error(); !strings.HasPrefix(got, "scores[0].score: ") {
		t.Errorf("unexpected message %q", got)
	}
}
