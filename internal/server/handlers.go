package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mkoenig/framesmith/pkg/errors"
	"github.com/mkoenig/framesmith/pkg/history"
	"github.com/mkoenig/framesmith/pkg/pipeline"
	"github.com/mkoenig/framesmith/pkg/scene"
)

// compileResponse is the JSON body returned by POST /api/v1/compile.
type compileResponse struct {
	Name       string       `json:"name"`
	Markup     string       `json:"markup"`
	Stylesheet string       `json:"stylesheet"`
	Stats      compileStats `json:"stats"`
}

type compileStats struct {
	Roots      int   `json:"roots"`
	Nodes      int   `json:"nodes"`
	Emitted    int   `json:"emitted"`
	Pruned     int   `json:"pruned"`
	Families   int   `json:"families"`
	CompileMS  int64 `json:"compile_ms"`
	FontsMS    int64 `json:"fonts_ms"`
	AssembleMS int64 `json:"assemble_ms"`
	Cached     bool  `json:"cached"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	doc, err := scene.ReadDocument(r.Body)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidDocument, err, "failed to parse scene document"))
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Target:  q.Get("target"),
		Name:    q.Get("name"),
		Fonts:   q.Get("fonts") != "false",
		Refresh: q.Get("refresh") == "true",
		Logger:  s.Logger,
	}
	target := opts.Target
	if target == "" {
		target = pipeline.DefaultTarget
	}

	result, err := s.Runner.Execute(ctx, doc, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.History != nil {
		rec := history.NewRecord(result.Unit.Name, result.Stats.Roots, result.Stats.Nodes, target, time.Since(start))
		if err := s.History.Append(ctx, rec); err != nil {
			s.Logger.Warn("failed to record history entry", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, compileResponse{
		Name:       result.Unit.Name,
		Markup:     result.Unit.Markup,
		Stylesheet: result.Unit.Stylesheet,
		Stats: compileStats{
			Roots:      result.Stats.Roots,
			Nodes:      result.Stats.Nodes,
			Emitted:    result.Stats.Emitted,
			Pruned:     result.Stats.Pruned,
			Families:   len(result.Stats.Families),
			CompileMS:  result.Stats.CompileTime.Milliseconds(),
			FontsMS:    result.Stats.FontsTime.Milliseconds(),
			AssembleMS: result.Stats.AssembleTime.Milliseconds(),
			Cached:     result.CacheInfo.UnitHit,
		},
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorBody{
			Code:    "HISTORY_DISABLED",
			Message: "history storage is not configured",
		}})
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	records, err := s.History.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps validation errors to 400 and everything else to 500,
// exposing only the error code and user-facing message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	}})
}
