package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pavelanni/scorecard/internal/dataset"
	"github.com/pavelanni/scorecard/internal/model"
)

func newTestStore(t *testing.T, ds model.Dataset) *Store {
	t.Helper()
	s, err := New(ds)
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	return s
}

func TestScoreLookups(t *testing.T) {
	s := newTestStore(t, dataset.ScoreCardV1())

	if s.Version() != model.SchemaV1 {
		t.Errorf("expected version v1, got %q", s.Version())
	}
	if s.ScoreCount() != 4 {
		t.Fatalf("expected 4 scores, got %d", s.ScoreCount())
	}

	it, err := s.GetScore("1")
	if err != nil {
		t.Fatalf("GetScore: %v", err)
	}
	if it.Stage != 1 {
		t.Errorf("expected stage 1, got %d", it.Stage)
	}
	if it.Subject != "Scratch 基础（第1-10课）" {
		t.Errorf("unexpected subject %q", it.Subject)
	}
	if it.Score != 95 || it.FullScore != 100 {
		t.Errorf("expected 95/100, got %v/%v", it.Score, it.FullScore)
	}
	if it.ScoreComposition == nil {
		t.Fatal("expected score composition")
	}
	if got := it.ScoreComposition.TotalPossible(); got != 100 {
		t.Errorf("composition totals = %v, want 100", got)
	}
	if got := it.ScoreComposition.TotalScore(); got != 95 {
		t.Errorf("composition scores = %v, want 95", got)
	}

	byStage, err := s.GetScoreByStage(3)
	if err != nil {
		t.Fatalf("GetScoreByStage: %v", err)
	}
	if byStage.ID != "3" {
		t.Errorf("expected id 3, got %q", byStage.ID)
	}

	// Not found.
	if _, err := s.GetScore("99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetScoreByStage(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListScoresOrder(t *testing.T) {
	s := newTestStore(t, dataset.ScoreCardV2())
	scores := s.ListScores()
	if len(scores) != 5 {
		t.Fatalf("expected 5 scores, got %d", len(scores))
	}
	for i := 1; i < len(scores); i++ {
		if scores[i].Stage <= scores[i-1].Stage {
			t.Errorf("stages not increasing at %d: %d after %d", i, scores[i].Stage, scores[i-1].Stage)
		}
	}
	// Skill order is kept as declared.
	if scores[0].Skills[0].Name != "角色设计" || scores[0].Skills[3].Name != "条件判断" {
		t.Errorf("skill order changed: %+v", scores[0].Skills)
	}
}

func TestStoreIsReadOnly(t *testing.T) {
	ds := dataset.ScoreCardV1()
	s := newTestStore(t, ds)

	// Mutating the source after New must not leak in.
	ds.Scores[0].Score = 1
	ds.Scores[0].Skills[0].Score = 1
	*ds.Scores[0].ClassAverage = 1

	// Mutating returned copies must not leak back.
	list := s.ListScores()
	list[0].Subject = "changed"
	list[0].ScoreComposition.Programming.Score = 0
	got, _ := s.GetScore("1")
	got.Skills[1].Name = "changed"
	mastery := s.KnowledgeMastery()
	mastery.MasteryLevels[0] = 0
	sc := s.SubjectComparison()
	sc.Labels[0] = "changed"

	fresh, err := s.GetScore("1")
	if err != nil {
		t.Fatalf("GetScore: %v", err)
	}
	want := dataset.ScoreCardV1().Scores[0]
	if !reflect.DeepEqual(fresh, want) {
		t.Errorf("record changed:\n got %+v\nwant %+v", fresh, want)
	}
	if s.KnowledgeMastery().MasteryLevels[0] != 90 {
		t.Error("mastery snapshot changed")
	}
	if s.SubjectComparison().Labels[0] != want.Subject {
		t.Error("subject comparison changed")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	ds := dataset.ScoreCardV1()
	ds.Scores[1].ClassAverage = model.FloatPtr(101)
	if _, err := New(ds); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDerivedViews(t *testing.T) {
	s := newTestStore(t, dataset.ScoreCardV2())

	tr := s.ScoreTrend()
	want := []float64{95, 92, 88, 85, 90}
	if !reflect.DeepEqual(tr.StudentScores, want) {
		t.Errorf("studentScores = %v, want %v", tr.StudentScores, want)
	}
	var fromScores []float64
	for _, it := range s.ListScores() {
		fromScores = append(fromScores, it.Score)
	}
	if !reflect.DeepEqual(tr.StudentScores, fromScores) {
		t.Errorf("trend %v does not match scores %v", tr.StudentScores, fromScores)
	}

	sc := s.SubjectComparison()
	if len(sc.Labels) != s.ScoreCount() || len(sc.StudentScores) != s.ScoreCount() || len(sc.ClassAverageScores) != s.ScoreCount() {
		t.Errorf("subject comparison lengths do not match %d records", s.ScoreCount())
	}
	if sc.ClassAverageScores[4] != 0 {
		t.Errorf("missing class average should default to 0, got %v", sc.ClassAverageScores[4])
	}

	charts := s.Charts()
	if !reflect.DeepEqual(charts.ScoreTrend, tr) {
		t.Error("charts score trend differs from ScoreTrend")
	}
}

func TestExport(t *testing.T) {
	s := newTestStore(t, dataset.ScoreCardV1())

	plain := s.Export(false, &model.ScoreStats{TotalStages: 4})
	if plain.SubjectComparison != nil || plain.ScoreTrend != nil || plain.Stats != nil {
		t.Error("plain export should carry no derived views")
	}
	if !reflect.DeepEqual(plain.Dataset, dataset.ScoreCardV1()) {
		t.Error("exported dataset differs from source")
	}

	full := s.Export(true, &model.ScoreStats{TotalStages: 4})
	if full.SubjectComparison == nil || full.ScoreTrend == nil {
		t.Fatal("expected derived views")
	}
	if full.Stats == nil || full.Stats.TotalStages != 4 {
		t.Errorf("expected stats to be attached, got %+v", full.Stats)
	}
}
