package model

// KnowledgeMastery is a standalone mastery snapshot: Labels[i] has mastery
// MasteryLevels[i] on a 0-100 scale.
type KnowledgeMastery struct {
	Labels        []string  `json:"labels" yaml:"labels"`
	MasteryLevels []float64 `json:"masteryLevels" yaml:"masteryLevels"`
}

// SubjectComparison compares the student against the class per subject.
// It is always derived from a ScoreItem collection.
type SubjectComparison struct {
	Labels             []string  `json:"labels" yaml:"labels"`
	StudentScores      []float64 `json:"studentScores" yaml:"studentScores"`
	ClassAverageScores []float64 `json:"classAverageScores" yaml:"classAverageScores"`
}

// SkillSeries is one skill's score across the stages of a trend.
type SkillSeries struct {
	Name string    `json:"name" yaml:"name"`
	Data []float64 `json:"data" yaml:"data"`
}

// KnowledgeTrend tracks per-skill scores across stage labels.
type KnowledgeTrend struct {
	Labels []string      `json:"labels" yaml:"labels"`
	Skills []SkillSeries `json:"skills" yaml:"skills"`
}

// ScoreTrend tracks the student's and class's overall score across stages.
// It is always derived from a ScoreItem collection.
type ScoreTrend struct {
	Labels             []string  `json:"labels" yaml:"labels"`
	StudentScores      []float64 `json:"studentScores" yaml:"studentScores"`
	ClassAverageScores []float64 `json:"classAverageScores" yaml:"classAverageScores"`
}
