package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/scholarly/paper-catalog/internal/domain"
	"github.com/scholarly/paper-catalog/internal/observability"
)

// mockAuthorRepository is a hand-rolled AuthorRepository with per-method
// function hooks. Unset hooks panic so tests fail loudly on unexpected calls.
type mockAuthorRepository struct {
	createFunc     func(ctx context.Context, author *domain.Author) (*domain.Author, error)
	getByIDFunc    func(ctx context.Context, id int64) (*domain.Author, error)
	getByEmailFunc func(ctx context.Context, email string) (*domain.Author, error)
	listFunc       func(ctx context.Context, limit, offset int) ([]*domain.Author, int64, error)
	updateFunc     func(ctx context.Context, author *domain.Author) (*domain.Author, error)
	deleteFunc     func(ctx context.Context, id int64) error
}

func (m *mockAuthorRepository) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if m.createFunc == nil {
		panic("unexpected call to Create")
	}
	return m.createFunc(ctx, author)
}

func (m *mockAuthorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	if m.getByIDFunc == nil {
		panic("unexpected call to GetByID")
	}
	return m.getByIDFunc(ctx, id)
}

func (m *mockAuthorRepository) GetByEmail(ctx context.Context, email string) (*domain.Author, error) {
	if m.getByEmailFunc == nil {
		panic("unexpected call to GetByEmail")
	}
	return m.getByEmailFunc(ctx, email)
}

func (m *mockAuthorRepository) List(ctx context.Context, limit, offset int) ([]*domain.Author, int64, error) {
	if m.listFunc == nil {
		panic("unexpected call to List")
	}
	return m.listFunc(ctx, limit, offset)
}

func (m *mockAuthorRepository) Update(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if m.updateFunc == nil {
		panic("unexpected call to Update")
	}
	return m.updateFunc(ctx, author)
}

func (m *mockAuthorRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc == nil {
		panic("unexpected call to Delete")
	}
	return m.deleteFunc(ctx, id)
}

// mockPaperRepository is a hand-rolled PaperRepository with per-method hooks.
type mockPaperRepository struct {
	createFunc   func(ctx context.Context, paper *domain.Paper) (*domain.Paper, error)
	getByIDFunc  func(ctx context.Context, id int64) (*domain.Paper, error)
	getByDOIFunc func(ctx context.Context, doi string) (*domain.Paper, error)
	listFunc     func(ctx context.Context, limit, offset int) ([]*domain.Paper, int64, error)
	updateFunc   func(ctx context.Context, paper *domain.Paper) (*domain.Paper, error)
	deleteFunc   func(ctx context.Context, id int64) error
}

func (m *mockPaperRepository) Create(ctx context.Context, paper *domain.Paper) (*domain.Paper, error) {
	if m.createFunc == nil {
		panic("unexpected call to Create")
	}
	return m.createFunc(ctx, paper)
}

func (m *mockPaperRepository) GetByID(ctx context.Context, id int64) (*domain.Paper, error) {
	if m.getByIDFunc == nil {
		panic("unexpected call to GetByID")
	}
	return m.getByIDFunc(ctx, id)
}

func (m *mockPaperRepository) GetByDOI(ctx context.Context, doi string) (*domain.Paper, error) {
	if m.getByDOIFunc == nil {
		panic("unexpected call to GetByDOI")
	}
	return m.getByDOIFunc(ctx, doi)
}

func (m *mockPaperRepository) List(ctx context.Context, limit, offset int) ([]*domain.Paper, int64, error) {
	if m.listFunc == nil {
		panic("unexpected call to List")
	}
	return m.listFunc(ctx, limit, offset)
}

func (m *mockPaperRepository) Update(ctx context.Context, paper *domain.Paper) (*domain.Paper, error) {
	if m.updateFunc == nil {
		panic("unexpected call to Update")
	}
	return m.updateFunc(ctx, paper)
}

func (m *mockPaperRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc == nil {
		panic("unexpected call to Delete")
	}
	return m.deleteFunc(ctx, id)
}

// newTestMetrics builds metrics on a private registry so tests do not collide.
func newTestMetrics() *observability.Metrics {
	return observability.NewMetrics(prometheus.NewRegistry())
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
