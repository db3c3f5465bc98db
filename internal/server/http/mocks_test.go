package httpserver

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/scholarly/paper-catalog/internal/observability"
	"github.com/scholarly/paper-catalog/internal/service"
)

// mockAuthorService is a hand-rolled AuthorService with per-method hooks.
type mockAuthorService struct {
	createFunc func(ctx context.Context, input service.CreateAuthorInput) (*service.AuthorRecord, error)
	getFunc    func(ctx context.Context, id int64) (*service.AuthorRecord, error)
	listFunc   func(ctx context.Context, limit, offset int) ([]*service.AuthorRecord, int64, error)
}

func (m *mockAuthorService) CreateAuthor(ctx context.Context, input service.CreateAuthorInput) (*service.AuthorRecord, error) {
	if m.createFunc == nil {
		panic("unexpected call to CreateAuthor")
	}
	return m.createFunc(ctx, input)
}

func (m *mockAuthorService) GetAuthor(ctx context.Context, id int64) (*service.AuthorRecord, error) {
	if m.getFunc == nil {
		panic("unexpected call to GetAuthor")
	}
	return m.getFunc(ctx, id)
}

func (m *mockAuthorService) ListAuthors(ctx context.Context, limit, offset int) ([]*service.AuthorRecord, int64, error) {
	if m.listFunc == nil {
		panic("unexpected call to ListAuthors")
	}
	return m.listFunc(ctx, limit, offset)
}

// mockPaperService is a hand-rolled PaperService with per-method hooks.
type mockPaperService struct {
	createFunc func(ctx context.Context, input service.CreatePaperInput) (*service.CreatePaperResult, error)
	getFunc    func(ctx context.Context, id int64) (*service.PaperRecord, error)
	listFunc   func(ctx context.Context, limit, offset int) ([]*service.PaperRecord, int64, error)
}

func (m *mockPaperService) CreatePaper(ctx context.Context, input service.CreatePaperInput) (*service.CreatePaperResult, error) {
	if m.createFunc == nil {
		panic("unexpected call to CreatePaper")
	}
	return m.createFunc(ctx, input)
}

func (m *mockPaperService) GetPaper(ctx context.Context, id int64) (*service.PaperRecord, error) {
	if m.getFunc == nil {
		panic("unexpected call to GetPaper")
	}
	return m.getFunc(ctx, id)
}

func (m *mockPaperService) ListPapers(ctx context.Context, limit, offset int) ([]*service.PaperRecord, int64, error) {
	if m.listFunc == nil {
		panic("unexpected call to ListPapers")
	}
	return m.listFunc(ctx, limit, offset)
}

// newTestServer wires a Server over mock services with no database and a
// private metrics registry.
func newTestServer(authors AuthorService, papers PaperService) *Server {
	if authors == nil {
		authors = &mockAuthorService{}
	}
	if papers == nil {
		papers = &mockPaperService{}
	}
	return NewServer(
		Config{Address: "127.0.0.1:0"},
		authors,
		papers,
		nil,
		observability.NewMetrics(prometheus.NewRegistry()),
		zerolog.Nop(),
	)
}
