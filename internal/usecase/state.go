package usecase

import (
	"NewsAnalyst/internal/domain"
)

// State is the single record threaded through all pipeline stages. Each
// stage reads fields populated by earlier stages and contributes its own
// through an Update; the orchestrator owns the record and hands it to one
// stage at a time.
type State struct {
	Query           string
	Sources         []string
	RawArticles     []domain.FeedItem
	CleanedArticles []domain.Article
	TrustScores     []domain.TrustScore
	FactSheets      []domain.FactSheet
	FinalReport     string
	Errors          []string
}

// NewState creates the initial record with sources and query populated.
func NewState(query string, sources []string) State {
	return State{Query: query, Sources: sources}
}

// Update is the typed partial result a stage returns. Collection fields
// replace the state field when non-nil; Errors always append. A stage that
// legitimately produced zero items returns an empty non-nil slice so the
// field is still marked as populated.
type Update struct {
	Sources         []string
	RawArticles     []domain.FeedItem
	CleanedArticles []domain.Article
	TrustScores     []domain.TrustScore
	FactSheets      []domain.FactSheet
	FinalReport     string
	Errors          []string
}

// Apply merges a stage update into the state.
func (s *State) Apply(u Update) {
	if u.Sources != nil {
		s.Sources = u.Sources
	}
	if u.RawArticles != nil {
		s.RawArticles = u.RawArticles
	}
	if u.CleanedArticles != nil {
		s.CleanedArticles = u.CleanedArticles
	}
	if u.TrustScores != nil {
		s.TrustScores = u.TrustScores
	}
	if u.FactSheets != nil {
		s.FactSheets = u.FactSheets
	}
	if u.FinalReport != "" {
		s.FinalReport = u.FinalReport
	}
	s.Errors = append(s.Errors, u.Errors...)
}

// Stats reports per-stage result counts for the CLI summary.
func (s State) Stats() domain.RunStats {
	return domain.RunStats{
		Gathered:  len(s.RawArticles),
		Cleaned:   len(s.CleanedArticles),
		Scored:    len(s.TrustScores),
		Extracted: len(s.FactSheets),
		Errors:    len(s.Errors),
	}
}
