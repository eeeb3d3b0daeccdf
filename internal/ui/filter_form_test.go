package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/gittree/internal/domain"
)

func TestValidateMaxCommits(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty means unlimited", value: ""},
		{name: "blank means unlimited", value: "  "},
		{name: "zero", value: "0"},
		{name: "positive", value: "25"},
		{name: "negative", value: "-1", wantErr: true},
		{name: "not a number", value: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMaxCommits(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilterForm_ValidateRange(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := NewFilterForm(domain.FilterOptions{}, func() time.Time { return now })

	tests := []struct {
		name    string
		since   string
		until   string
		wantErr bool
	}{
		{name: "both empty"},
		{name: "only since", since: "2w"},
		{name: "only until", until: "2024-05-01"},
		{name: "ordered", since: "2024-01-01", until: "2024-02-01"},
		{name: "same instant", since: "2024-01-01", until: "2024-01-01"},
		{name: "relative ordered", since: "2w", until: "3d"},
		{name: "since after until", since: "2024-03-01", until: "2024-02-01", wantErr: true},
		{name: "relative since after until", since: "1d", until: "2w", wantErr: true},
		{name: "invalid since", since: "yesterday", wantErr: true},
		{name: "invalid until", until: "0d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.validateRange(tt.since, tt.until)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilterForm_ResultIgnoresNonPositiveMaxCommits(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := NewFilterForm(domain.FilterOptions{Author: "Ann", MaxCommits: 10}, func() time.Time { return now })

	got := f.Result()
	assert.Equal(t, "Ann", got.Author)
	assert.Equal(t, 10, got.MaxCommits)

	f.maxCommits = "0"
	assert.Zero(t, f.Result().MaxCommits)
}
