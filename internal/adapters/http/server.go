package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	pg "tradesafe/internal/adapters/postgres"
	"tradesafe/internal/domain"
	"tradesafe/internal/ports"
	"tradesafe/internal/services/documents"
)

// Server exposes document generation over HTTP.
type Server struct {
	docs *documents.Service
	jobs ports.JobRepository
}

func New(docs *documents.Service, jobs ports.JobRepository) *Server {
	return &Server{docs: docs, jobs: jobs}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID, middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/documents/{type}/{id}/generate", s.handleGenerate)
	r.Get("/jobs/{id}", s.handleJobStatus)
	return r
}

// requestID tags each request so concurrent generations can be told apart
// in the logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		log.Printf("[%s] %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGenerate runs the generation synchronously when wait=true, and
// otherwise enqueues a background job.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	docType := domain.DocType(chi.URLParam(r, "type"))
	recordID := chi.URLParam(r, "id")
	if !docType.Valid() {
		writeError(w, http.StatusBadRequest, "unknown document type")
		return
	}
	if recordID == "" {
		writeError(w, http.StatusBadRequest, "missing record id")
		return
	}

	if r.URL.Query().Get("wait") == "true" {
		res, err := s.docs.Generate(r.Context(), docType, recordID, nil)
		if err != nil {
			status := http.StatusInternalServerError
			if isNotFound(err) {
				status = http.StatusNotFound
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, res)
		return
	}

	jobID, err := s.jobs.Enqueue(r.Context(), docType, recordID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"job_id": jobID})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	st, err := s.jobs.Status(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := map[string]any{
		"id":           st.ID,
		"status":       st.Status,
		"current_step": st.CurrentStep,
		"progress":     st.Progress,
	}
	if st.Error != nil {
		out["error"] = *st.Error
	}
	if len(st.Result) > 0 {
		out["result"] = json.RawMessage(st.Result)
	}
	writeJSON(w, http.StatusOK, out)
}

func isNotFound(err error) bool {
	return errors.Is(err, pg.ErrNotFound)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
