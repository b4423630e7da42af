package store

import (
	"errors"
	"fmt"

	"github.com/pavelanni/scorecard/internal/derive"
	"github.com/pavelanni/scorecard/internal/model"
	"github.com/pavelanni/scorecard/internal/validate"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("score record not found")

// Store is a read-only snapshot of one score card. Nothing mutates it after
// New returns, so it is safe for concurrent readers. Every accessor returns
// copies.
type Store struct {
	version   model.SchemaVersion
	student   model.StudentInfo
	scores    []model.ScoreItem
	byID      map[string]int
	byStage   map[int]int
	mastery   *model.KnowledgeMastery
	trend     *model.KnowledgeTrend
	subjects  model.SubjectComparison
	scoreLine model.ScoreTrend
}

// New validates ds and freezes a private copy of it.
func New(ds model.Dataset) (*Store, error) {
	if err := validate.Dataset(ds); err != nil {
		return nil, fmt.Errorf("validate dataset %s: %w", ds.Version, err)
	}

	scores := cloneScores(ds.Scores)
	s := &Store{
		version: ds.Version,
		student: ds.Student,
		scores:  scores,
		byID:    make(map[string]int, len(scores)),
		byStage: make(map[int]int, len(scores)),
		mastery: cloneMastery(ds.KnowledgeMastery),
		trend:   cloneTrend(ds.KnowledgeTrend),
	}
	for i, it := range scores {
		s.byID[it.ID] = i
		s.byStage[it.Stage] = i
	}
	s.subjects = derive.SubjectComparison(scores)
	s.scoreLine = derive.ScoreTrend(scores)
	return s, nil
}

// Version returns the schema version of the stored card.
func (s *Store) Version() model.SchemaVersion {
	return s.version
}

// Student returns the learner profile.
func (s *Store) Student() model.StudentInfo {
	return s.student
}

// ListScores returns all records in stage order.
func (s *Store) ListScores() []model.ScoreItem {
	return cloneScores(s.scores)
}

// GetScore returns a record by ID.
func (s *Store) GetScore(id string) (model.ScoreItem, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.ScoreItem{}, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	return s.scores[i].Clone(), nil
}

// GetScoreByStage returns the record of a stage.
func (s *Store) GetScoreByStage(stage int) (model.ScoreItem, error) {
	i, ok := s.byStage[stage]
	if !ok {
		return model.ScoreItem{}, fmt.Errorf("stage %d: %w", stage, ErrNotFound)
	}
	return s.scores[i].Clone(), nil
}

// ScoreCount returns the number of records.
func (s *Store) ScoreCount() int {
	return len(s.scores)
}

// KnowledgeMastery returns the mastery snapshot, or nil if the card has none.
func (s *Store) KnowledgeMastery() *model.KnowledgeMastery {
	return cloneMastery(s.mastery)
}

// KnowledgeTrend returns the per-skill trend, or nil if the card has none.
func (s *Store) KnowledgeTrend() *model.KnowledgeTrend {
	return cloneTrend(s.trend)
}

// SubjectComparison returns the projection computed when the store was built.
func (s *Store) SubjectComparison() model.SubjectComparison {
	return model.SubjectComparison{
		Labels:             append([]string{}, s.subjects.Labels...),
		StudentScores:      append([]float64{}, s.subjects.StudentScores...),
		ClassAverageScores: append([]float64{}, s.subjects.ClassAverageScores...),
	}
}

// ScoreTrend returns the projection computed when the store was built.
func (s *Store) ScoreTrend() model.ScoreTrend {
	return model.ScoreTrend{
		Labels:             append([]string{}, s.scoreLine.Labels...),
		StudentScores:      append([]float64{}, s.scoreLine.StudentScores...),
		ClassAverageScores: append([]float64{}, s.scoreLine.ClassAverageScores...),
	}
}

// Dataset returns a copy of the stored card.
func (s *Store) Dataset() model.Dataset {
	return model.Dataset{
		Version:          s.version,
		Student:          s.student,
		Scores:           s.ListScores(),
		KnowledgeMastery: s.KnowledgeMastery(),
		KnowledgeTrend:   s.KnowledgeTrend(),
	}
}

// Charts returns every chart dataset.
func (s *Store) Charts() model.Charts {
	return derive.Charts(s.Dataset())
}

func cloneScores(in []model.ScoreItem) []model.ScoreItem {
	out := make([]model.ScoreItem, len(in))
	for i, it := range in {
		out[i] = it.Clone()
	}
	return out
}

func cloneMastery(m *model.KnowledgeMastery) *model.KnowledgeMastery {
	if m == nil {
		return nil
	}
	return &model.KnowledgeMastery{
		Labels:        append([]string{}, m.Labels...),
		MasteryLevels: append([]float64{}, m.MasteryLevels...),
	}
}

func cloneTrend(t *model.KnowledgeTrend) *model.KnowledgeTrend {
	if t == nil {
		return nil
	}
	out := &model.KnowledgeTrend{
		Labels: append([]string{}, t.Labels...),
		Skills: make([]model.SkillSeries, len(t.Skills)),
	}
	for i, sk := range t.Skills {
		out.Skills[i] = model.SkillSeries{Name: sk.Name, Data: append([]float64{}, sk.Data...)}
	}
	return out
}
