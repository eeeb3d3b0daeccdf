package storage

import (
	"github.com/renato0307/gittree/internal/domain"
)

// detailsModelToDomain converts a CommitDetailsModel (GORM) to domain.CommitDetails
func detailsModelToDomain(m CommitDetailsModel) *domain.CommitDetails {
	stats := make(map[string]domain.FileStat, len(m.Stats))
	for name, s := range m.Stats {
		stats[name] = domain.FileStat{Additions: s.Additions, Deletions: s.Deletions}
	}

	return &domain.CommitDetails{
		Author:  m.Author,
		Date:    m.Date.UTC(),
		Email:   m.Email,
		Files:   m.Files,
		Hash:    m.Hash,
		Message: m.Message,
		Parents: m.Parents,
		Stats:   stats,
	}
}

// domainToDetailsModel converts domain.CommitDetails to CommitDetailsModel (GORM)
func domainToDetailsModel(d *domain.CommitDetails) CommitDetailsModel {
	stats := make(map[string]FileStatModel, len(d.Stats))
	for name, s := range d.Stats {
		stats[name] = FileStatModel{Additions: s.Additions, Deletions: s.Deletions}
	}

	return CommitDetailsModel{
		Author:  d.Author,
		Date:    d.Date.UTC(),
		Email:   d.Email,
		Files:   d.Files,
		Hash:    d.Hash,
		Message: d.Message,
		Parents: d.Parents,
		Stats:   stats,
	}
}
