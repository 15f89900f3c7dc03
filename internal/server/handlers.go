package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/wordspin/pkg/cloud"
	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/palette"
	"github.com/matzehuels/wordspin/pkg/pipeline"
)

// maxRequestBody caps generate request bodies. Word-cloud inputs are
// plain text; anything past this is almost certainly a mistake.
const maxRequestBody = 1 << 20

type generateResponse struct {
	ID        string            `json:"id,omitempty"`
	TextHash  string            `json:"text_hash"`
	Cached    bool              `json:"cached"`
	Report    cloud.Report      `json:"report"`
	Artifacts map[string][]byte `json:"artifacts"`
}

type themeResponse struct {
	Name       string   `json:"name"`
	Background string   `json:"background"`
	Colors     []string `json:"colors"`
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body: %v", err))
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := generateResponse{
		TextHash:  result.TextHash,
		Cached:    result.CacheInfo.ArtifactHit,
		Report:    result.Report,
		Artifacts: result.Artifacts,
	}

	if s.history != nil {
		rec := NewRunRecord(uuid.New().String(), opts, result)
		if err := s.history.Insert(r.Context(), rec); err != nil {
			s.logger.Warn("history insert failed", "err", err)
		} else {
			resp.ID = rec.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "run history is not configured"))
		return
	}
	records, err := s.history.List(r.Context(), 50)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "run history is not configured"))
		return
	}
	rec, err := s.history.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	names := palette.ThemeNames()
	out := make([]themeResponse, 0, len(names))
	for _, name := range names {
		t, err := palette.LookupTheme(name)
		if err != nil {
			continue
		}
		colors := make([]string, 0, len(t.Colors))
		for _, c := range t.Colors {
			colors = append(colors, c.Hex())
		}
		out = append(out, themeResponse{
			Name:       t.Name,
			Background: t.Background.Hex(),
			Colors:     colors,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, statusForCode(code), errorResponse{
		Error: errors.UserMessage(err),
		Code:  code,
	})
}

// statusForCode maps structured error codes to HTTP statuses.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidTheme, errors.ErrCodeInvalidCanvas,
		errors.ErrCodeInvalidPath, errors.ErrCodeEmptyPalette:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
