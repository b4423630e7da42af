package model

// Dataset is the primary, hand-authored content of one score card: the
// student, one record per stage in stage order, and the two hand-authored
// reference datasets.
type Dataset struct {
	Version          SchemaVersion     `json:"version" yaml:"version"`
	Student          StudentInfo       `json:"student" yaml:"student"`
	Scores           []ScoreItem       `json:"scores" yaml:"scores"`
	KnowledgeMastery *KnowledgeMastery `json:"knowledgeMastery,omitempty" yaml:"knowledgeMastery,omitempty"`
	KnowledgeTrend   *KnowledgeTrend   `json:"knowledgeTrend,omitempty" yaml:"knowledgeTrend,omitempty"`
}

// Export is the top-level document written by the export command. The
// derived fields are optional; when present they must match a fresh
// projection of Scores.
type Export struct {
	Dataset `yaml:",inline"`

	SubjectComparison *SubjectComparison `json:"subjectComparison,omitempty" yaml:"subjectComparison,omitempty"`
	ScoreTrend        *ScoreTrend        `json:"scoreTrend,omitempty" yaml:"scoreTrend,omitempty"`
	Stats             *ScoreStats        `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Charts bundles the four chart datasets handed to a rendering layer.
type Charts struct {
	KnowledgeMastery  *KnowledgeMastery `json:"knowledgeMastery,omitempty"`
	SubjectComparison SubjectComparison `json:"subjectComparison"`
	KnowledgeTrend    *KnowledgeTrend   `json:"knowledgeTrend,omitempty"`
	ScoreTrend        ScoreTrend        `json:"scoreTrend"`
}
