package store

import "github.com/pavelanni/scorecard/internal/model"

// Export builds an export document for the stored card. Derived views are
// included only when withDerived is set; stats is attached as given.
func (s *Store) Export(withDerived bool, stats *model.ScoreStats) model.Export {
	ex := model.Export{Dataset: s.Dataset()}
	if !withDerived {
		return ex
	}
	sc := s.SubjectComparison()
	tr := s.ScoreTrend()
	ex.SubjectComparison = &sc
	ex.ScoreTrend = &tr
	ex.Stats = stats
	return ex
}
