package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarly/paper-catalog/internal/domain"
	"github.com/scholarly/paper-catalog/internal/service"
)

func testPaperRecord(id int64) *service.PaperRecord {
	now := time.Now().UTC()
	return &service.PaperRecord{
		ID:        id,
		Title:     "Quantum Physics",
		DOI:       "10.0001/qp",
		AuthorID:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreatePaperHandler(t *testing.T) {
	validBody := `{"title":"Quantum Physics","doi":"10.0001/qp","author_id":1}`

	t.Run("returns 201 for a fresh paper", func(t *testing.T) {
		papers := &mockPaperService{
			createFunc: func(ctx context.Context, input service.CreatePaperInput) (*service.CreatePaperResult, error) {
				return &service.CreatePaperResult{Paper: testPaperRecord(10), Created: true}, nil
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodPost, "/api/papers/", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var body service.PaperRecord
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, int64(10), body.ID)
	})

	t.Run("returns 200 with existing paper for duplicate DOI", func(t *testing.T) {
		papers := &mockPaperService{
			createFunc: func(ctx context.Context, input service.CreatePaperInput) (*service.CreatePaperResult, error) {
				return &service.CreatePaperResult{Paper: testPaperRecord(5), Created: false}, nil
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodPost, "/api/papers/", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body service.PaperRecord
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, int64(5), body.ID)
	})

	t.Run("returns 404 when the author does not exist", func(t *testing.T) {
		papers := &mockPaperService{
			createFunc: func(ctx context.Context, input service.CreatePaperInput) (*service.CreatePaperResult, error) {
				return nil, domain.NewNotFoundError("author", "author not found")
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodPost, "/api/papers/", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "author not found", decodeError(t, rec).Message)
	})

	t.Run("returns 400 with field errors for invalid input", func(t *testing.T) {
		papers := &mockPaperService{
			createFunc: func(ctx context.Context, input service.CreatePaperInput) (*service.CreatePaperResult, error) {
				return nil, &domain.ValidationErrors{Errors: []domain.FieldError{
					{Field: "title", Reason: "is required"},
					{Field: "doi", Reason: "is required"},
				}}
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodPost, "/api/papers/", strings.NewReader(`{"author_id":1}`))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "validation failed", body.Message)
		require.NotNil(t, body.Payload)
	})

	t.Run("returns 400 for malformed JSON", func(t *testing.T) {
		srv := newTestServer(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/papers/", strings.NewReader("[["))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPaperHandler(t *testing.T) {
	t.Run("returns 200 with paper", func(t *testing.T) {
		papers := &mockPaperService{
			getFunc: func(ctx context.Context, id int64) (*service.PaperRecord, error) {
				assert.Equal(t, int64(7), id)
				return testPaperRecord(7), nil
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodGet, "/api/papers/7", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("returns 404 with fixed message when missing", func(t *testing.T) {
		papers := &mockPaperService{
			getFunc: func(ctx context.Context, id int64) (*service.PaperRecord, error) {
				return nil, domain.NewNotFoundError("paper", "paper not found")
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodGet, "/api/papers/404", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "paper not found", decodeError(t, rec).Message)
	})

	t.Run("returns 400 for non-numeric id", func(t *testing.T) {
		srv := newTestServer(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/papers/xyz", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListPapersHandler(t *testing.T) {
	t.Run("returns page with pagination metadata", func(t *testing.T) {
		papers := &mockPaperService{
			listFunc: func(ctx context.Context, limit, offset int) ([]*service.PaperRecord, int64, error) {
				return []*service.PaperRecord{testPaperRecord(1), testPaperRecord(2)}, 2, nil
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodGet, "/api/papers/", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body listResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, int64(2), body.Total)
		assert.Equal(t, defaultPageLimit, body.Limit)
	})

	t.Run("returns 500 for a corrupt stored row", func(t *testing.T) {
		papers := &mockPaperService{
			listFunc: func(ctx context.Context, limit, offset int) ([]*service.PaperRecord, int64, error) {
				return nil, 0, fmt.Errorf("stored paper 2 failed validation: %w", domain.ErrInternalError)
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodGet, "/api/papers/", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "internal server error", body.Message)
		assert.Nil(t, body.Payload)
		assert.NotContains(t, rec.Body.String(), "failed validation")
	})

	t.Run("returns 500 when listing fails", func(t *testing.T) {
		papers := &mockPaperService{
			listFunc: func(ctx context.Context, limit, offset int) ([]*service.PaperRecord, int64, error) {
				return nil, 0, context.DeadlineExceeded
			},
		}
		srv := newTestServer(nil, papers)

		req := httptest.NewRequest(http.MethodGet, "/api/papers/", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", decodeError(t, rec).Message)
	})
}
