package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/carewell-lab/saheli/pkg/repository/memory"
	"github.com/carewell-lab/saheli/pkg/repository/sqlite"
	"github.com/carewell-lab/saheli/pkg/utils/errutil"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

// recordResponse is the wire form of an interaction record. Serialization
// is a presentation concern; the domain model carries no wire format.
type recordResponse struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	State        string    `json:"state"`
	Triggers     []string  `json:"triggers"`
	Source       string    `json:"source"`
	Utterance    string    `json:"utterance,omitempty"`
	Response     string    `json:"response,omitempty"`
	ClinicalNote string    `json:"clinical_note,omitempty"`
}

func toRecordResponse(record *model.InteractionRecord) recordResponse {
	triggers := make([]string, 0, len(record.Triggers))
	for _, t := range record.Triggers {
		triggers = append(triggers, t.String())
	}
	return recordResponse{
		ID:           record.ID.String(),
		Timestamp:    record.Timestamp,
		State:        record.State.String(),
		Triggers:     triggers,
		Source:       record.Source.String(),
		Utterance:    record.Utterance,
		Response:     record.Response,
		ClinicalNote: record.ClinicalNote,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type interactionRequest struct {
	Utterance string    `json:"utterance"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handlePostInteraction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid interaction request body"), http.StatusBadRequest)
		return
	}
	if req.Timestamp.IsZero() {
		errutil.HandleHTTP(ctx, w, goerr.New("timestamp is required"), http.StatusBadRequest)
		return
	}

	record, err := s.uc.Companion.Respond(ctx, req.Utterance, req.Timestamp)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(record))
}

type annotationRequest struct {
	Timestamp time.Time `json:"timestamp"`
	State     string    `json:"state"`
	Triggers  []string  `json:"triggers"`
	Note      string    `json:"note"`
}

func (s *Server) handlePostAnnotation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req annotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid annotation request body"), http.StatusBadRequest)
		return
	}
	if req.Timestamp.IsZero() {
		errutil.HandleHTTP(ctx, w, goerr.New("timestamp is required"), http.StatusBadRequest)
		return
	}

	state, err := types.ParseCognitiveState(req.State)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	triggers := make([]types.EmotionalTrigger, 0, len(req.Triggers))
	for _, raw := range req.Triggers {
		trigger, err := types.ParseEmotionalTrigger(raw)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}
		triggers = append(triggers, trigger)
	}

	record, err := s.uc.Companion.Annotate(ctx, req.Timestamp, state, triggers, req.Note)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(record))
}

func (s *Server) handleGetInteraction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := model.InteractionID(chi.URLParam(r, "id"))
	record, err := s.repo.Interaction().Get(ctx, id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, memory.ErrNotFound) || errors.Is(err, sqlite.ErrNotFound) {
			status = http.StatusNotFound
		}
		errutil.HandleHTTP(ctx, w, err, status)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(record))
}

func (s *Server) handleSchedulePrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	at := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid 'at' parameter"), http.StatusBadRequest)
			return
		}
		at = parsed
	}

	prompt := s.uc.Schedule.Lookup(at)
	if prompt == nil {
		writeJSON(w, http.StatusOK, map[string]any{"prompt": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"prompt": map[string]string{
			"purpose":   prompt.Purpose.String(),
			"utterance": prompt.Utterance,
		},
	})
}
