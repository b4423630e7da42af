package model

// SchemaVersion tags which of the two record layouts a dataset uses.
type SchemaVersion string

const (
	// SchemaV1 carries age and class number on the student and score
	// composition on each record.
	SchemaV1 SchemaVersion = "v1"
	// SchemaV2 carries a free-text grade and student ID, without score
	// composition.
	SchemaV2 SchemaVersion = "v2"
)

// Valid reports whether v is a known schema version.
func (v SchemaVersion) Valid() bool {
	return v == SchemaV1 || v == SchemaV2
}

// ProgrammingLevel is the learner's current track. The four tracks below
// are the known levels; any other non-empty value is a custom level.
type ProgrammingLevel string

const (
	LevelC       ProgrammingLevel = "C"
	LevelCPP     ProgrammingLevel = "C++"
	LevelPython  ProgrammingLevel = "Python"
	LevelScratch ProgrammingLevel = "Scratch"
)

// KnownLevels returns the closed set of tracks in display order.
func KnownLevels() []ProgrammingLevel {
	return []ProgrammingLevel{LevelC, LevelCPP, LevelPython, LevelScratch}
}

// IsKnown reports whether l is one of KnownLevels.
func (l ProgrammingLevel) IsKnown() bool {
	switch l {
	case LevelC, LevelCPP, LevelPython, LevelScratch:
		return true
	default:
		return false
	}
}

// IsCustom reports whether l is a non-empty level outside KnownLevels.
func (l ProgrammingLevel) IsCustom() bool {
	return l != "" && !l.IsKnown()
}

// StudentInfo is the learner profile. Version selects which of the
// variant-specific fields are meaningful; fields of the other variant
// must stay empty.
type StudentInfo struct {
	Version          SchemaVersion    `json:"version" yaml:"version"`
	Name             string           `json:"name" yaml:"name"`
	ProgrammingLevel ProgrammingLevel `json:"programmingLevel" yaml:"programmingLevel"`

	// v1 only.
	Age         int    `json:"age,omitempty" yaml:"age,omitempty"`
	ClassNumber string `json:"classNumber,omitempty" yaml:"classNumber,omitempty"`

	// v2 only.
	Grade     string `json:"grade,omitempty" yaml:"grade,omitempty"`
	StudentID string `json:"studentId,omitempty" yaml:"studentId,omitempty"`
}

// SkillScore is one per-skill sub-score within a stage.
type SkillScore struct {
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

// CompositionPart is one question category of a score composition.
type CompositionPart struct {
	Count int     `json:"count" yaml:"count"`
	Score float64 `json:"score" yaml:"score"`
	Total float64 `json:"total" yaml:"total"`
}

// ScoreComposition breaks a stage score down by question type.
type ScoreComposition struct {
	MultipleChoice CompositionPart `json:"multipleChoice" yaml:"multipleChoice"`
	MultipleSelect CompositionPart `json:"multipleSelect" yaml:"multipleSelect"`
	TrueFalse      CompositionPart `json:"trueFalse" yaml:"trueFalse"`
	Programming    CompositionPart `json:"programming" yaml:"programming"`
}

// CompositionCategory names one of the four fixed categories.
type CompositionCategory string

const (
	CategoryMultipleChoice CompositionCategory = "multipleChoice"
	CategoryMultipleSelect CompositionCategory = "multipleSelect"
	CategoryTrueFalse      CompositionCategory = "trueFalse"
	CategoryProgramming    CompositionCategory = "programming"
)

// NamedPart pairs a composition part with its category.
type NamedPart struct {
	Category CompositionCategory
	CompositionPart
}

// Parts returns the four categories in declaration order.
func (c ScoreComposition) Parts() []NamedPart {
	return []NamedPart{
		{CategoryMultipleChoice, c.MultipleChoice},
		{CategoryMultipleSelect, c.MultipleSelect},
		{CategoryTrueFalse, c.TrueFalse},
		{CategoryProgramming, c.Programming},
	}
}

// TotalScore sums the score of every category.
func (c ScoreComposition) TotalScore() float64 {
	var sum float64
	for _, p := range c.Parts() {
		sum += p.Score
	}
	return sum
}

// TotalPossible sums the total of every category.
func (c ScoreComposition) TotalPossible() float64 {
	var sum float64
	for _, p := range c.Parts() {
		sum += p.Total
	}
	return sum
}

// ScoreItem is the evaluation record of one curriculum stage.
type ScoreItem struct {
	ID               string            `json:"id" yaml:"id"`
	Stage            int               `json:"stage" yaml:"stage"`
	Subject          string            `json:"subject" yaml:"subject"`
	Score            float64           `json:"score" yaml:"score"`
	FullScore        float64           `json:"fullScore" yaml:"fullScore"`
	TestDate         string            `json:"testDate" yaml:"testDate"`
	Rank             *int              `json:"rank,omitempty" yaml:"rank,omitempty"`
	ClassAverage     *float64          `json:"classAverage,omitempty" yaml:"classAverage,omitempty"`
	Comment          string            `json:"comment,omitempty" yaml:"comment,omitempty"`
	ScoreComposition *ScoreComposition `json:"scoreComposition,omitempty" yaml:"scoreComposition,omitempty"`
	Skills           []SkillScore      `json:"skills" yaml:"skills"`
}

// ClassAverageOrZero returns the class average, or 0 when absent.
func (s ScoreItem) ClassAverageOrZero() float64 {
	if s.ClassAverage == nil {
		return 0
	}
	return *s.ClassAverage
}

// Clone returns a deep copy of s.
func (s ScoreItem) Clone() ScoreItem {
	c := s
	if s.Rank != nil {
		r := *s.Rank
		c.Rank = &r
	}
	if s.ClassAverage != nil {
		a := *s.ClassAverage
		c.ClassAverage = &a
	}
	if s.ScoreComposition != nil {
		sc := *s.ScoreComposition
		c.ScoreComposition = &sc
	}
	if s.Skills != nil {
		c.Skills = append([]SkillScore{}, s.Skills...)
	}
	return c
}

// ScoreStats summarises a ScoreItem collection. The store never fills it;
// consumers compute it.
type ScoreStats struct {
	AverageScore float64 `json:"averageScore" yaml:"averageScore"`
	HighestScore float64 `json:"highestScore" yaml:"highestScore"`
	LowestScore  float64 `json:"lowestScore" yaml:"lowestScore"`
	TotalStages  int     `json:"totalStages" yaml:"totalStages"`
	PassedStages int     `json:"passedStages" yaml:"passedStages"`
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }
