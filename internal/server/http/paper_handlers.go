package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scholarly/paper-catalog/internal/service"
)

// createPaper handles POST /api/papers/. A fresh paper returns 201; a
// resubmitted DOI returns the stored paper with 200.
func (s *Server) createPaper(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePaperInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}

	result, err := s.papers.CreatePaper(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, result.Paper)
}

// getPaper handles GET /api/papers/{paperID}.
func (s *Server) getPaper(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "paperID"), "paper_id")
	if !ok {
		return
	}

	paper, err := s.papers.GetPaper(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paper)
}

// listPapers handles GET /api/papers/.
func (s *Server) listPapers(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePaginationParams(r)

	papers, total, err := s.papers.ListPapers(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Items:  papers,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	})
}
