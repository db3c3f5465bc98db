package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scholarly/paper-catalog/internal/service"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// parsePaginationParams extracts limit/offset query params with defaults
// and caps.
func parsePaginationParams(r *http.Request) (limit, offset int) {
	limit = defaultPageLimit
	offset = 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	return limit, offset
}

// parseID parses a positive int64 path parameter, writing a 400 on failure.
func parseID(w http.ResponseWriter, raw, name string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, name+" must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// createAuthor handles POST /api/authors/.
func (s *Server) createAuthor(w http.ResponseWriter, r *http.Request) {
	var input service.CreateAuthorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}

	author, err := s.authors.CreateAuthor(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, author)
}

// getAuthor handles GET /api/authors/{authorID}.
func (s *Server) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "authorID"), "author_id")
	if !ok {
		return
	}

	author, err := s.authors.GetAuthor(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, author)
}

// listAuthors handles GET /api/authors/.
func (s *Server) listAuthors(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePaginationParams(r)

	authors, total, err := s.authors.ListAuthors(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Items:  authors,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	})
}
