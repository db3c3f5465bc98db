// Package service contains the application core: input validation,
// duplicate handling, and the create/get/list workflows for authors
// and papers. Handlers talk to services, services talk to repositories.
package service

import (
	"time"

	"github.com/scholarly/paper-catalog/internal/domain"
)

// CreateAuthorInput is the payload for creating an author. All fields are
// trimmed before validation.
type CreateAuthorInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Bio   string `json:"bio" validate:"omitempty"`
	Email string `json:"email" validate:"required,email,max=120"`
}

// AuthorRecord is the outward-facing shape of a stored author.
type AuthorRecord struct {
	ID        int64     `json:"id" validate:"required,gt=0"`
	Name      string    `json:"name" validate:"required,max=100"`
	Bio       string    `json:"bio"`
	Email     string    `json:"email" validate:"required,email,max=120"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePaperInput is the payload for creating a paper. All fields are
// trimmed before validation.
type CreatePaperInput struct {
	Title    string `json:"title" validate:"required,max=255"`
	Abstract string `json:"abstract" validate:"omitempty"`
	DOI      string `json:"doi" validate:"required,max=100"`
	AuthorID int64  `json:"author_id" validate:"required,gt=0"`
}

// PaperRecord is the outward-facing shape of a stored paper.
type PaperRecord struct {
	ID        int64     `json:"id" validate:"required,gt=0"`
	Title     string    `json:"title" validate:"required,max=255"`
	Abstract  string    `json:"abstract"`
	DOI       string    `json:"doi" validate:"required,max=100"`
	AuthorID  int64     `json:"author_id" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePaperResult pairs the resulting record with whether the call actually
// inserted it. Created is false when an existing paper with the same DOI was
// returned instead.
type CreatePaperResult struct {
	Paper   *PaperRecord
	Created bool
}

// ListPage carries pagination metadata alongside a page of records.
type ListPage struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

func authorToRecord(a *domain.Author) *AuthorRecord {
	return &AuthorRecord{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func paperToRecord(p *domain.Paper) *PaperRecord {
	return &PaperRecord{
		ID:        p.ID,
		Title:     p.Title,
		Abstract:  p.Abstract,
		DOI:       p.DOI,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
