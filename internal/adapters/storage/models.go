package storage

import "time"

// CommitDetailsModel is the cached detail view of one commit.
// Commits are immutable, so rows never go stale; only LastAccessed changes.
type CommitDetailsModel struct {
	Author       string                   `gorm:"not null;default:''"`
	CreatedAt    time.Time                `gorm:"not null"`
	Date         time.Time                `gorm:"not null"`
	Email        string                   `gorm:"not null;default:''"`
	Files        []string                 `gorm:"serializer:json"`
	Hash         string                   `gorm:"primaryKey"`
	LastAccessed time.Time                `gorm:"not null;index:idx_last_accessed"`
	Message      string                   `gorm:"not null;default:''"`
	Parents      []string                 `gorm:"serializer:json"`
	Stats        map[string]FileStatModel `gorm:"serializer:json"`
}

// TableName overrides the default table name
func (CommitDetailsModel) TableName() string {
	return "commit_details"
}

// FileStatModel is the JSON shape of a per-file stat
type FileStatModel struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}
